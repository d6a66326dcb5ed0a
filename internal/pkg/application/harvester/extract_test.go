package harvester

import (
	"strings"
	"testing"
	"time"

	"github.com/diwise/catalog-harvester/internal/pkg/application/services/ckan"
	"github.com/matryer/is"
)

func TestExtractCategoriesFromGroupsAndExtras(t *testing.T) {
	is := is.New(t)

	dataset := &ckan.Dataset{
		Groups: []ckan.Group{{Title: "Transport"}, {Title: "  "}, {Title: "Urbanisme "}},
		Extras: []ckan.Extra{{Key: "categories", Value: "Mobilité"}, {Key: "theme", Value: "ignored"}},
	}

	is.Equal(ExtractCategories(dataset), "Transport; Urbanisme; Mobilité")
	is.Equal(ExtractCategories(&ckan.Dataset{}), "")
	is.Equal(ExtractCategories(nil), "")
}

func TestExtractTags(t *testing.T) {
	is := is.New(t)

	dataset := &ckan.Dataset{
		Tags: []ckan.Tag{{Name: "Cyclisme"}, {Name: ""}, {Name: "Mobilité"}},
	}

	is.Equal(ExtractTags(dataset), "Cyclisme; Mobilité")
	is.Equal(ExtractTags(&ckan.Dataset{}), "")
}

func TestInferOrganizationCategory(t *testing.T) {
	is := is.New(t)

	is.Equal(InferOrganizationCategory("Ville de Montréal"), "City")
	is.Equal(InferOrganizationCategory("Municipalité de Chelsea"), "City")
	is.Equal(InferOrganizationCategory("Ministère des Transports"), "Ministry")
	is.Equal(InferOrganizationCategory("AGENCE du revenu"), "Agency")
	is.Equal(InferOrganizationCategory("Université Laval"), "Educational Institution")
	is.Equal(InferOrganizationCategory("Hydro-Québec"), DefaultOrganizationCategory)
	is.Equal(InferOrganizationCategory(""), DefaultOrganizationCategory)
}

func TestFirstMatchingRuleWins(t *testing.T) {
	is := is.New(t)

	// contains both "ville" and "ministère", the earlier rule decides
	is.Equal(InferOrganizationCategory("Ministère des affaires de la ville"), "City")
}

func TestParseRemoteTimestamp(t *testing.T) {
	is := is.New(t)

	ts := ParseRemoteTimestamp("2024-01-15T10:30:00Z")
	is.True(ts != nil)
	is.True(ts.Equal(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)))

	ts = ParseRemoteTimestamp("2024-01-15T10:30:00.123456")
	is.True(ts != nil)
	is.True(ts.Equal(time.Date(2024, 1, 15, 10, 30, 0, 123456000, time.UTC)))

	ts = ParseRemoteTimestamp("2024-01-15T10:30:00-05:00")
	is.True(ts != nil)
	is.True(ts.Equal(time.Date(2024, 1, 15, 15, 30, 0, 0, time.UTC)))

	is.Equal(ParseRemoteTimestamp(""), nil)
	is.Equal(ParseRemoteTimestamp("not-a-date"), nil)
}

func TestResourceNameFallbacks(t *testing.T) {
	is := is.New(t)

	is.Equal(ResourceName(ckan.Resource{Name: "pistes.csv", ID: "abc"}), "pistes.csv")
	is.Equal(ResourceName(ckan.Resource{Name: " ", ID: "abc"}), "abc")
	is.Equal(ResourceName(ckan.Resource{URL: "https://example.com/a.csv"}), "Resource-https://example.com/a.csv")
	is.Equal(ResourceName(ckan.Resource{}), "Resource-unknown")

	long := "https://example.com/" + strings.Repeat("é", 100)
	name := ResourceName(ckan.Resource{URL: long})
	is.Equal(len([]rune(name)), len("Resource-")+50)
}

func TestResourceTypeDefault(t *testing.T) {
	is := is.New(t)

	is.Equal(ResourceType(ckan.Resource{ResourceType: "api"}), "api")
	is.Equal(ResourceType(ckan.Resource{}), DefaultResourceType)
}

func TestAccessLevel(t *testing.T) {
	is := is.New(t)

	is.Equal(AccessLevel(false), AccessOpen)
	is.Equal(AccessLevel(true), AccessPrivate)
}

func TestLoadCategoryRules(t *testing.T) {
	is := is.New(t)

	rules, err := LoadCategoryRules(strings.NewReader(categoryRulesYAML))
	is.NoErr(err)
	is.Equal(len(rules), 2)
	is.Equal(rules.Infer("Société de transport de Montréal"), "Transit")
	is.Equal(rules.Infer("Ville de Laval"), "City")
	is.Equal(rules.Infer("Ministère des Finances"), DefaultOrganizationCategory)
}

func TestLoadCategoryRulesRejectsIncompleteRules(t *testing.T) {
	is := is.New(t)

	_, err := LoadCategoryRules(strings.NewReader("rules:\n  - label: City\n"))
	is.True(err != nil)

	_, err = LoadCategoryRules(strings.NewReader("something: else\n"))
	is.True(err != nil)

	_, err = LoadCategoryRules(strings.NewReader("rules: [\n"))
	is.True(err != nil)
}

const categoryRulesYAML string = `
rules:
  - label: Transit
    keywords:
      - société de transport
  - label: City
    keywords: [ville, municipalité]
`
