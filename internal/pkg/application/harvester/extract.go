package harvester

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/diwise/catalog-harvester/internal/pkg/application/services/ckan"
	"gopkg.in/yaml.v2"
)

const (
	DefaultOrganizationCategory string = "Other"
	DefaultResourceType         string = "Data"

	AccessOpen    string = "Open"
	AccessPrivate string = "Private"

	listSeparator string = "; "
)

type CategoryRule struct {
	Keywords []string `yaml:"keywords"`
	Label    string   `yaml:"label"`
}

// CategoryRules are evaluated in order and the first rule with a keyword
// contained in an organization name decides its category.
type CategoryRules []CategoryRule

var DefaultCategoryRules = CategoryRules{
	{Keywords: []string{"ville", "municipalité"}, Label: "City"},
	{Keywords: []string{"ministère"}, Label: "Ministry"},
	{Keywords: []string{"agence"}, Label: "Agency"},
	{Keywords: []string{"université", "collège"}, Label: "Educational Institution"},
}

func (rules CategoryRules) Infer(name string) string {
	name = strings.ToLower(name)

	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if keyword != "" && strings.Contains(name, strings.ToLower(keyword)) {
				return rule.Label
			}
		}
	}

	return DefaultOrganizationCategory
}

// LoadCategoryRules reads an ordered rule list from yaml, e.g.
//
//	rules:
//	  - label: City
//	    keywords: [ville, municipalité]
func LoadCategoryRules(r io.Reader) (CategoryRules, error) {
	doc := struct {
		Rules CategoryRules `yaml:"rules"`
	}{}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read category rules: %w", err)
	}

	if err = yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse category rules: %w", err)
	}

	if len(doc.Rules) == 0 {
		return nil, fmt.Errorf("no category rules found")
	}

	for i, rule := range doc.Rules {
		if rule.Label == "" || len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("category rule %d must have a label and at least one keyword", i+1)
		}
	}

	return doc.Rules, nil
}

func InferOrganizationCategory(name string) string {
	return DefaultCategoryRules.Infer(name)
}

// ExtractCategories joins the titles of the dataset groups and any "categories" extra.
func ExtractCategories(dataset *ckan.Dataset) string {
	if dataset == nil {
		return ""
	}

	categories := make([]string, 0, len(dataset.Groups)+1)

	for _, g := range dataset.Groups {
		categories = append(categories, g.Title)
	}

	for _, e := range dataset.Extras {
		if e.Key == "categories" {
			categories = append(categories, e.Value.String())
		}
	}

	return joinNonEmpty(categories)
}

func ExtractTags(dataset *ckan.Dataset) string {
	if dataset == nil {
		return ""
	}

	tags := make([]string, 0, len(dataset.Tags))
	for _, t := range dataset.Tags {
		tags = append(tags, t.Name)
	}

	return joinNonEmpty(tags)
}

// ParseRemoteTimestamp returns nil for anything that is not an ISO 8601
// timestamp. Timestamps without an offset are taken to be UTC.
func ParseRemoteTimestamp(text string) *time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if strings.HasSuffix(text, "Z") {
		text = strings.TrimSuffix(text, "Z") + "+00:00"
	}

	if t, err := time.Parse(time.RFC3339Nano, text); err == nil {
		return &t
	}

	if t, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", text, time.UTC); err == nil {
		return &t
	}

	return nil
}

func AccessLevel(private bool) string {
	if private {
		return AccessPrivate
	}
	return AccessOpen
}

// ResourceName falls back on the remote id, and then on the resource url, for
// resources that have no name.
func ResourceName(r ckan.Resource) string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}

	if r.ID != "" {
		return r.ID
	}

	url := r.URL
	if url == "" {
		url = "unknown"
	}

	if runes := []rune(url); len(runes) > 50 {
		url = string(runes[:50])
	}

	return "Resource-" + url
}

func ResourceType(r ckan.Resource) string {
	if t := strings.TrimSpace(r.ResourceType.String()); t != "" {
		return t
	}
	return DefaultResourceType
}

func joinNonEmpty(values []string) string {
	kept := make([]string, 0, len(values))

	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}

	return strings.Join(kept, listSeparator)
}
