package harvester

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/diwise/catalog-harvester/internal/pkg/application/services/ckan"
	"github.com/diwise/catalog-harvester/internal/pkg/domain"
	"github.com/diwise/catalog-harvester/internal/pkg/infrastructure/repositories/database"
	"github.com/matryer/is"
)

func TestHarvestMirrorsTheRemoteCatalog(t *testing.T) {
	is, ctx, store := testSetup(t)
	remote := newFakeCatalog().client()

	run := NewRun()
	state, counters, err := New(remote, store, nil, 0).Harvest(ctx, run)
	is.NoErr(err)

	is.Equal(state, domain.StateCompleted)
	is.Equal(counters.Organizations, 3) // two listed organizations and one resolved on demand
	is.Equal(counters.Datasets, 3)
	is.Equal(counters.Resources, 4)
	is.Equal(counters.Errors, 0)

	status := run.Status()
	is.Equal(status.Progress, 100)
	is.True(!status.Active)
	is.True(strings.Contains(status.Message, "3 organizations, 3 datasets, 4 resources"))

	stats, err := store.Count(ctx)
	is.NoErr(err)
	is.Equal(stats.Organizations, int64(3))
	is.Equal(stats.Datasets, int64(3))
	is.Equal(stats.Resources, int64(4))
	is.Equal(stats.Categories, int64(2)) // Transport and Urbanisme

	dataset, err := store.FindDataset(ctx, "Pistes cyclables")
	is.NoErr(err)
	is.Equal(dataset.Organization.Name, "Ville de Montréal")
	is.Equal(dataset.Organization.Category, "City")
	is.Equal(dataset.Categories, "Transport; Urbanisme")
	is.Equal(dataset.Tags, "Cyclisme; Mobilité")
	is.Equal(dataset.AccessLevel, AccessOpen)
	is.Equal(dataset.MetadataCreated.Year(), 2024)

	resources, err := store.FindResources(ctx, dataset.ID)
	is.NoErr(err)
	is.Equal(len(resources), 2)
	is.Equal(resources[0].Name, "pistes.csv")
	is.Equal(*resources[0].Size, int64(1024000))
	is.Equal(resources[1].Name, "resource-2") // unnamed resources fall back on their id

	agency, err := store.FindDataset(ctx, "Stationnement")
	is.NoErr(err)
	is.Equal(agency.Organization.Name, "Agence de mobilité durable")
	is.Equal(agency.Organization.Category, "Agency")
}

func TestHarvestIsIdempotent(t *testing.T) {
	is, ctx, store := testSetup(t)
	remote := newFakeCatalog().client()
	h := New(remote, store, nil, 0)

	_, first, err := h.Harvest(ctx, NewRun())
	is.NoErr(err)
	statsAfterFirst, _ := store.Count(ctx)
	datasetAfterFirst, _ := store.FindDataset(ctx, "Pistes cyclables")

	_, second, err := h.Harvest(ctx, NewRun())
	is.NoErr(err)
	statsAfterSecond, _ := store.Count(ctx)
	datasetAfterSecond, _ := store.FindDataset(ctx, "Pistes cyclables")

	is.Equal(statsAfterFirst, statsAfterSecond)
	is.Equal(first.Datasets, second.Datasets)
	is.Equal(second.Organizations, 2) // the on demand organization is matched locally the second time

	is.Equal(datasetAfterFirst.ID, datasetAfterSecond.ID)
	is.Equal(datasetAfterFirst.Description, datasetAfterSecond.Description)
	is.Equal(datasetAfterFirst.Categories, datasetAfterSecond.Categories)
	is.Equal(datasetAfterFirst.OrganizationID, datasetAfterSecond.OrganizationID)
	is.True(datasetAfterFirst.CreatedAt.Equal(datasetAfterSecond.CreatedAt))
}

func TestHarvestRefreshesChangedRecords(t *testing.T) {
	is, ctx, store := testSetup(t)
	catalog := newFakeCatalog()
	h := New(catalog.client(), store, nil, 0)

	_, _, err := h.Harvest(ctx, NewRun())
	is.NoErr(err)

	ds := catalog.datasets["pistes-cyclables"]
	ds.Notes = ""
	ds.Private = true
	ds.Tags = nil
	catalog.datasets["pistes-cyclables"] = ds

	_, _, err = h.Harvest(ctx, NewRun())
	is.NoErr(err)

	dataset, err := store.FindDataset(ctx, "Pistes cyclables")
	is.NoErr(err)
	is.Equal(dataset.Description, "") // updates overwrite every field, even with empty values
	is.Equal(dataset.Tags, "")
	is.Equal(dataset.AccessLevel, AccessPrivate)
}

func TestRefreshedOrganizationIsCountedOnce(t *testing.T) {
	is, ctx, store := testSetup(t)
	catalog := newFakeCatalog()
	catalog.addDataset(ckan.Dataset{
		Name:         "marches-publics",
		Title:        "Marchés publics",
		Organization: &ckan.OrganizationRef{Name: "ville-de-montreal", Title: "VDM"},
	})

	_, counters, err := New(catalog.client(), store, nil, 0).Harvest(ctx, NewRun())
	is.NoErr(err)

	is.Equal(counters.Organizations, 3) // the fetched organization is already stored and not counted again
	is.Equal(counters.Datasets, 4)

	dataset, err := store.FindDataset(ctx, "Marchés publics")
	is.NoErr(err)
	is.Equal(dataset.Organization.Name, "Ville de Montréal")
}

func TestDatasetWithoutResolvableOrganizationIsSkipped(t *testing.T) {
	is, ctx, store := testSetup(t)
	catalog := newFakeCatalog()
	catalog.addDataset(ckan.Dataset{
		Name:         "orphelin",
		Title:        "Jeu orphelin",
		Organization: &ckan.OrganizationRef{Name: "inconnue", Title: "Organisation inconnue"},
		Resources:    []ckan.Resource{{Name: "orphelin.csv"}},
	})

	_, counters, err := New(catalog.client(), store, nil, 0).Harvest(ctx, NewRun())
	is.NoErr(err)

	is.Equal(counters.Datasets, 3)
	is.Equal(counters.Errors, 1)

	_, err = store.FindDataset(ctx, "Jeu orphelin")
	is.True(errors.Is(err, database.ErrNotFound))
}

func TestDatasetWithoutOrganizationIsSkipped(t *testing.T) {
	is, ctx, store := testSetup(t)
	catalog := newFakeCatalog()
	catalog.addDataset(ckan.Dataset{Name: "sans-org", Title: "Sans organisation"})

	_, counters, err := New(catalog.client(), store, nil, 0).Harvest(ctx, NewRun())
	is.NoErr(err)

	is.Equal(counters.Errors, 1)
	_, err = store.FindDataset(ctx, "Sans organisation")
	is.True(errors.Is(err, database.ErrNotFound))
}

func TestTransportFailureOnOneDatasetIsIsolated(t *testing.T) {
	is, ctx, store := testSetup(t)
	catalog := newFakeCatalog()
	catalog.unreachable["pistes-cyclables"] = true

	remote := catalog.client()
	_, counters, err := New(remote, store, nil, 0).Harvest(ctx, NewRun())
	is.NoErr(err)

	is.Equal(counters.Datasets, 2)
	is.Equal(counters.Resources, 2)
	is.Equal(counters.Errors, 1)
	is.Equal(len(remote.GetDatasetCalls()), 3) // every dataset should still have been attempted
}

func TestCancelStopsBeforeTheNextDataset(t *testing.T) {
	is, ctx, store := testSetup(t)
	remote := newFakeCatalog().client()

	run := NewRun()
	tracker := &cancelAfterFirstDataset{Run: run}

	state, counters, err := New(remote, store, nil, 0).Harvest(ctx, tracker)
	is.NoErr(err)

	is.Equal(state, domain.StateCancelled)
	is.Equal(counters.Datasets, 1)
	is.Equal(counters.Resources, 2)
	is.Equal(len(remote.GetDatasetCalls()), 1)

	status := run.Status()
	is.Equal(status.State, domain.StateCancelled)
	is.True(!status.Active)
	is.True(status.CancelRequested)

	stats, err := store.Count(ctx)
	is.NoErr(err)
	is.Equal(stats.Datasets, int64(1))
	is.Equal(stats.Resources, int64(2))

	_, err = store.FindDataset(ctx, "Débits de circulation")
	is.True(errors.Is(err, database.ErrNotFound))
}

func TestProgressStaysWithinItsPhases(t *testing.T) {
	is, ctx, store := testSetup(t)
	remote := newFakeCatalog().client()

	tracker := &recordingTracker{Run: NewRun()}
	_, _, err := New(remote, store, nil, 0).Harvest(ctx, tracker)
	is.NoErr(err)

	previous := 0
	for _, r := range tracker.reports {
		is.True(r.progress >= previous) // progress should never go backwards
		previous = r.progress

		switch r.state {
		case domain.StateFetchingOrganizations:
			is.True(r.progress >= 5 && r.progress <= 25)
		case domain.StateFetchingDatasets:
			is.Equal(r.progress, 25)
		case domain.StateProcessingDatasets:
			is.True(r.progress > 25 && r.progress <= 95)
		}
	}

	last := tracker.reports[len(tracker.reports)-1]
	is.Equal(last.state, domain.StateProcessingDatasets)
	is.Equal(last.progress, 95)
	is.Equal(tracker.Status().Progress, 100)
}

func TestDatasetLimitIsHonoured(t *testing.T) {
	is, ctx, store := testSetup(t)
	remote := newFakeCatalog().client()

	_, counters, err := New(remote, store, nil, 2).Harvest(ctx, NewRun())
	is.NoErr(err)

	is.Equal(counters.Datasets, 2)
	is.Equal(len(remote.GetDatasetCalls()), 2)
}

func TestUnexpectedFailureFailsTheRun(t *testing.T) {
	is, ctx, store := testSetup(t)
	remote := newFakeCatalog().client()
	remote.ListDatasetsFunc = func(ctx context.Context) []string {
		panic("remote catalog exploded")
	}

	run := NewRun()
	state, _, err := New(remote, store, nil, 0).Harvest(ctx, run)

	is.True(err != nil)
	is.Equal(state, domain.StateFailed)

	status := run.Status()
	is.Equal(status.State, domain.StateFailed)
	is.True(!status.Active)
	is.True(strings.Contains(status.Message, "remote catalog exploded"))
}

func TestCancelledContextFailsTheRun(t *testing.T) {
	is, _, store := testSetup(t)
	remote := newFakeCatalog().client()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run := NewRun()
	state, _, err := New(remote, store, nil, 0).Harvest(ctx, run)

	is.True(errors.Is(err, context.Canceled))
	is.Equal(state, domain.StateFailed)
	is.Equal(run.Status().State, domain.StateFailed)
}

type cancelAfterFirstDataset struct {
	*Run
}

func (c *cancelAfterFirstDataset) Report(state domain.HarvestState, progress int, message string, counters domain.Counters) {
	c.Run.Report(state, progress, message, counters)

	if state == domain.StateProcessingDatasets {
		c.Run.RequestCancel()
	}
}

type report struct {
	state    domain.HarvestState
	progress int
}

type recordingTracker struct {
	*Run
	reports []report
}

func (r *recordingTracker) Report(state domain.HarvestState, progress int, message string, counters domain.Counters) {
	r.reports = append(r.reports, report{state: state, progress: progress})
	r.Run.Report(state, progress, message, counters)
}

func testSetup(t *testing.T) (*is.I, context.Context, database.Datastore) {
	is := is.New(t)
	ctx := context.Background()

	store, err := database.NewDatabaseConnection(ctx, database.NewSQLiteConnector(""))
	is.NoErr(err)

	return is, ctx, store
}

type fakeCatalog struct {
	orgIDs        []string
	organizations map[string]ckan.Organization
	datasetIDs    []string
	datasets      map[string]ckan.Dataset
	unreachable   map[string]bool
}

func newFakeCatalog() *fakeCatalog {
	f := &fakeCatalog{
		organizations: map[string]ckan.Organization{},
		datasets:      map[string]ckan.Dataset{},
		unreachable:   map[string]bool{},
	}

	f.addOrganization(ckan.Organization{Name: "ville-de-montreal", Title: "Ville de Montréal", Description: "Administration municipale", PackageCount: 60}, true)
	f.addOrganization(ckan.Organization{Name: "ministere-des-transports", Title: "Ministère des Transports", PackageCount: 30}, true)
	f.addOrganization(ckan.Organization{Name: "agence-mobilite", Title: "Agence de mobilité durable", PackageCount: 3}, false)

	f.addDataset(ckan.Dataset{
		Name:             "pistes-cyclables",
		Title:            "Pistes cyclables",
		Notes:            "Localisation des pistes cyclables",
		MetadataCreated:  "2024-01-15T10:30:00Z",
		MetadataModified: "2024-02-01T08:00:00.123456",
		Organization:     &ckan.OrganizationRef{Name: "ville-de-montreal", Title: "Ville de Montréal"},
		Groups:           []ckan.Group{{Title: "Transport"}, {Title: "Urbanisme"}},
		Tags:             []ckan.Tag{{Name: "Cyclisme"}, {Name: "Mobilité"}},
		Resources: []ckan.Resource{
			{Name: "pistes.csv", Format: "CSV", URL: "https://example.com/pistes.csv", Size: ckan.Size{Value: 1024000, Valid: true}},
			{ID: "resource-2", Format: "GeoJSON", URL: "https://example.com/pistes.geojson"},
		},
	})
	f.addDataset(ckan.Dataset{
		Name:         "debits-circulation",
		Title:        "Débits de circulation",
		Organization: &ckan.OrganizationRef{Name: "ministere-des-transports", Title: "Ministère des Transports"},
		Groups:       []ckan.Group{{Title: "Transport"}},
		Resources:    []ckan.Resource{{Name: "debits.csv", Format: "CSV"}},
	})
	f.addDataset(ckan.Dataset{
		Name:         "stationnement",
		Title:        "Stationnement",
		Organization: &ckan.OrganizationRef{Name: "agence-mobilite", Title: "Agence de mobilité durable"},
		Resources:    []ckan.Resource{{Name: "places.json", Format: "JSON"}},
	})

	return f
}

func (f *fakeCatalog) addOrganization(org ckan.Organization, listed bool) {
	f.organizations[org.Name] = org
	if listed {
		f.orgIDs = append(f.orgIDs, org.Name)
	}
}

func (f *fakeCatalog) addDataset(ds ckan.Dataset) {
	f.datasets[ds.Name] = ds
	f.datasetIDs = append(f.datasetIDs, ds.Name)
}

func (f *fakeCatalog) client() *ckan.ClientMock {
	return &ckan.ClientMock{
		ListOrganizationsFunc: func(ctx context.Context) []string {
			return f.orgIDs
		},
		GetOrganizationFunc: func(ctx context.Context, id string) *ckan.Organization {
			org, ok := f.organizations[id]
			if !ok || f.unreachable[id] {
				return nil
			}
			return &org
		},
		ListDatasetsFunc: func(ctx context.Context) []string {
			return f.datasetIDs
		},
		GetDatasetFunc: func(ctx context.Context, id string) *ckan.Dataset {
			ds, ok := f.datasets[id]
			if !ok || f.unreachable[id] {
				return nil
			}
			return &ds
		},
	}
}
