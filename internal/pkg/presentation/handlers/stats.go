package handlers

import (
	"net/http"

	"github.com/diwise/catalog-harvester/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

func NewRetrieveStatsHandler(logger zerolog.Logger, db database.Datastore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-stats")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		stats, err := db.Count(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to count stored records")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeData(w, log, http.StatusOK, stats)
	})
}

func NewSyncCategoriesHandler(logger zerolog.Logger, db database.Datastore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "sync-categories")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		created, updated, err := db.SyncCategories(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to synchronize categories")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		categories, err := db.Categories(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to retrieve categories")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeData(w, log, http.StatusOK, map[string]any{
			"created":    created,
			"updated":    updated,
			"categories": categories,
		})
	})
}
