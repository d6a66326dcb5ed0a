package harvester

import (
	"context"
	"fmt"

	"github.com/diwise/catalog-harvester/internal/pkg/application/services/ckan"
	"github.com/diwise/catalog-harvester/internal/pkg/domain"
	"github.com/diwise/catalog-harvester/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("catalog-harvester/harvester")

const (
	progressOrganizationsStart = 5
	progressDatasetsStart      = 25
	progressDatasetsEnd        = 95
)

// Harvester mirrors the remote catalog into the local store, one record at a time.
//
// Organizations are harvested first, then every dataset together with its
// resources. A record that can not be fetched or saved is counted as an error
// and skipped. Cancellation is only honoured between two datasets, so the
// records of a dataset are either all written or not attempted.
type Harvester struct {
	remote       ckan.Client
	store        database.Datastore
	reconciler   *Reconciler
	datasetLimit int
}

// New creates a Harvester. A datasetLimit of zero or less harvests the whole catalog.
func New(remote ckan.Client, store database.Datastore, rules CategoryRules, datasetLimit int) *Harvester {
	return &Harvester{
		remote:       remote,
		store:        store,
		reconciler:   NewReconciler(store, remote, rules),
		datasetLimit: datasetLimit,
	}
}

// Harvest runs a complete harvest, reporting to tracker as it goes. It always
// leaves tracker in a terminal state before it returns.
func (h *Harvester) Harvest(ctx context.Context, tracker Tracker) (state domain.HarvestState, counters domain.Counters, err error) {
	ctx, span := tracer.Start(ctx, "harvest")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("harvest aborted: %v", r)
		}

		if err != nil {
			state = domain.StateFailed
			log.Error().Err(err).Msg("harvest failed")
			tracker.Finish(state, fmt.Sprintf("Harvest failed: %s", err.Error()), counters)
		}
	}()

	log.Info().Msg("starting harvest")

	if err = h.harvestOrganizations(ctx, log, tracker, &counters); err != nil {
		return
	}

	tracker.Report(domain.StateFetchingDatasets, progressDatasetsStart, "Fetching the list of datasets", counters)

	datasetIDs := h.remote.ListDatasets(ctx)
	if h.datasetLimit > 0 && len(datasetIDs) > h.datasetLimit {
		log.Info().Msgf("limiting harvest to %d of %d datasets", h.datasetLimit, len(datasetIDs))
		datasetIDs = datasetIDs[:h.datasetLimit]
	}

	total := len(datasetIDs)
	span.SetAttributes(attribute.Int("harvest.datasets", total))

	for i, id := range datasetIDs {
		if tracker.CancelRequested() {
			state = domain.StateCancelled
			message := fmt.Sprintf("Harvest cancelled after %d of %d datasets", i, total)
			log.Info().Msg(message)
			tracker.Finish(state, message, counters)
			return
		}

		if err = ctx.Err(); err != nil {
			return
		}

		if dserr := h.harvestDataset(ctx, id, &counters); dserr != nil {
			counters.Errors++
			log.Error().Err(dserr).Msgf("failed to harvest dataset %s", id)
		}

		progress := progressDatasetsStart + (progressDatasetsEnd-progressDatasetsStart)*(i+1)/total
		tracker.Report(domain.StateProcessingDatasets, progress, fmt.Sprintf("Dataset %d of %d: %s", i+1, total, id), counters)
	}

	created, updated, syncErr := h.store.SyncCategories(ctx)
	if syncErr != nil {
		log.Warn().Err(syncErr).Msg("failed to synchronize categories")
	} else {
		log.Info().Msgf("categories synchronized (%d created, %d updated)", created, updated)
	}

	state = domain.StateCompleted
	message := fmt.Sprintf(
		"Harvest completed: %d organizations, %d datasets, %d resources saved (%d errors)",
		counters.Organizations, counters.Datasets, counters.Resources, counters.Errors,
	)

	log.Info().Msg(message)
	tracker.Finish(state, message, counters)

	return
}

func (h *Harvester) harvestOrganizations(ctx context.Context, log zerolog.Logger, tracker Tracker, counters *domain.Counters) error {
	tracker.Report(domain.StateFetchingOrganizations, progressOrganizationsStart, "Fetching the list of organizations", *counters)

	orgIDs := h.remote.ListOrganizations(ctx)
	total := len(orgIDs)

	for i, id := range orgIDs {
		if err := ctx.Err(); err != nil {
			return err
		}

		org := h.remote.GetOrganization(ctx, id)
		if org == nil {
			counters.Errors++
		} else if _, err := h.reconciler.UpsertOrganization(ctx, *org); err != nil {
			counters.Errors++
			log.Error().Err(err).Msgf("failed to save organization %s", id)
		} else {
			counters.Organizations++
		}

		progress := progressOrganizationsStart + (progressDatasetsStart-progressOrganizationsStart)*(i+1)/total
		tracker.Report(domain.StateFetchingOrganizations, progress, fmt.Sprintf("Organization %d of %d: %s", i+1, total, id), *counters)
	}

	return nil
}

func (h *Harvester) harvestDataset(ctx context.Context, id string, counters *domain.Counters) error {
	remote := h.remote.GetDataset(ctx, id)
	if remote == nil {
		return fmt.Errorf("dataset %s could not be retrieved", id)
	}

	owner, stored, err := h.reconciler.ResolveOrganization(ctx, remote.Organization)
	if err != nil {
		return err
	}

	if stored {
		counters.Organizations++
	}

	dataset, err := h.reconciler.UpsertDataset(ctx, *remote, owner)
	if err != nil {
		return err
	}

	counters.Datasets++

	saved, failed := h.reconciler.UpsertResources(ctx, *remote, dataset)
	counters.Resources += saved
	counters.Errors += failed

	return nil
}
