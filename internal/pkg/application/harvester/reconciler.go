package harvester

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diwise/catalog-harvester/internal/pkg/application/services/ckan"
	"github.com/diwise/catalog-harvester/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/catalog-harvester/internal/pkg/infrastructure/repositories/persistence"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

var ErrOrganizationUnresolved = errors.New("organization could not be resolved")

// Reconciler maps remote records onto local entities. Every upsert replaces all
// the fields a harvest owns, so a record that is seen again is fully refreshed.
type Reconciler struct {
	store  database.Datastore
	remote ckan.Client
	rules  CategoryRules
}

func NewReconciler(store database.Datastore, remote ckan.Client, rules CategoryRules) *Reconciler {
	if len(rules) == 0 {
		rules = DefaultCategoryRules
	}

	return &Reconciler{
		store:  store,
		remote: remote,
		rules:  rules,
	}
}

func (r *Reconciler) UpsertOrganization(ctx context.Context, org ckan.Organization) (*persistence.Organization, error) {
	name := organizationKey(org)

	return r.store.UpsertOrganization(ctx, persistence.Organization{
		Name:         name,
		FullName:     org.Title,
		Category:     r.rules.Infer(name),
		Description:  org.Description,
		URL:          org.URL.String(),
		DatasetCount: org.PackageCount,
	})
}

// ResolveOrganization finds the local organization that owns a dataset. Existing
// organizations are matched exactly and then by a case insensitive substring of
// their name. If neither matches, the organization is fetched from the remote
// catalog and stored. The returned flag is true when that created a new organization,
// and false when the fetched record refreshed one that was already stored.
func (r *Reconciler) ResolveOrganization(ctx context.Context, ref *ckan.OrganizationRef) (*persistence.Organization, bool, error) {
	if ref == nil {
		return nil, false, ErrOrganizationUnresolved
	}

	keys := make([]string, 0, 2)
	for _, k := range []string{ref.Title, ref.Name} {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}

	if len(keys) == 0 {
		return nil, false, ErrOrganizationUnresolved
	}

	for _, key := range keys {
		org, err := r.store.FindOrganization(ctx, key)
		if err == nil {
			return org, false, nil
		} else if !errors.Is(err, database.ErrNotFound) {
			return nil, false, err
		}
	}

	for i := len(keys) - 1; i >= 0; i-- {
		org, err := r.store.FindOrganizationContaining(ctx, keys[i])
		if err == nil {
			return org, false, nil
		} else if !errors.Is(err, database.ErrNotFound) {
			return nil, false, err
		}
	}

	remoteID := ref.Name
	if remoteID == "" {
		remoteID = ref.Title
	}

	remoteOrg := r.remote.GetOrganization(ctx, remoteID)
	if remoteOrg == nil {
		return nil, false, fmt.Errorf("%w: %s", ErrOrganizationUnresolved, remoteID)
	}

	_, err := r.store.FindOrganization(ctx, organizationKey(*remoteOrg))
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, false, err
	}
	created := err != nil

	org, err := r.UpsertOrganization(ctx, *remoteOrg)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrOrganizationUnresolved, err.Error())
	}

	return org, created, nil
}

// organizationKey is the display title, or the machine name for untitled organizations.
func organizationKey(org ckan.Organization) string {
	if name := strings.TrimSpace(org.Title); name != "" {
		return name
	}
	return strings.TrimSpace(org.Name)
}

func (r *Reconciler) UpsertDataset(ctx context.Context, dataset ckan.Dataset, owner *persistence.Organization) (*persistence.Dataset, error) {
	if owner == nil || owner.ID == 0 {
		return nil, ErrOrganizationUnresolved
	}

	return r.store.UpsertDataset(ctx, persistence.Dataset{
		Title:            strings.TrimSpace(dataset.Title),
		Description:      dataset.Notes,
		OrganizationID:   owner.ID,
		Categories:       ExtractCategories(&dataset),
		Tags:             ExtractTags(&dataset),
		AccessLevel:      AccessLevel(dataset.Private),
		OriginURL:        dataset.URL.String(),
		MetadataCreated:  ParseRemoteTimestamp(dataset.MetadataCreated),
		MetadataModified: ParseRemoteTimestamp(dataset.MetadataModified),
	})
}

func (r *Reconciler) UpsertResource(ctx context.Context, resource ckan.Resource, owner *persistence.Dataset) (*persistence.Resource, error) {
	return r.store.UpsertResource(ctx, persistence.Resource{
		Name:              ResourceName(resource),
		DatasetID:         owner.ID,
		Format:            resource.Format,
		Type:              ResourceType(resource),
		URL:               resource.URL,
		Size:              resource.Size.Int64(),
		Description:       resource.Description.String(),
		CollectionMethod:  resource.Methodology.String(),
		CollectionContext: resource.Context.String(),
		Attributes:        resource.Attributes.String(),
	})
}

// UpsertResources stores every resource listed in a dataset. A resource that
// fails to save does not prevent its siblings from being saved.
func (r *Reconciler) UpsertResources(ctx context.Context, dataset ckan.Dataset, owner *persistence.Dataset) (saved, failed int) {
	log := logging.GetFromContext(ctx)

	for _, resource := range dataset.Resources {
		if _, err := r.UpsertResource(ctx, resource, owner); err != nil {
			log.Error().Err(err).Msgf("failed to save resource %s of dataset %s", ResourceName(resource), owner.Title)
			failed++
			continue
		}
		saved++
	}

	return saved, failed
}
