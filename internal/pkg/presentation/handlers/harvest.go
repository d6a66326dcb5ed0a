package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diwise/catalog-harvester/internal/pkg/application/services/jobs"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("catalog-harvester/api")

func NewStartHarvestHandler(logger zerolog.Logger, runner jobs.Runner) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "start-harvest")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		status, startErr := runner.Start(ctx)
		if startErr != nil {
			if errors.Is(startErr, jobs.ErrRunActive) {
				log.Info().Msg("refusing to start a harvest while another one is running")
				writeData(w, log, http.StatusConflict, status)
				return
			}

			err = startErr
			log.Error().Err(err).Msg("failed to start harvest")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		span.SetAttributes(attribute.String("harvest.run", status.RunID))
		writeData(w, log, http.StatusAccepted, status)
	})
}

func NewRetrieveHarvestStatusHandler(logger zerolog.Logger, runner jobs.Runner) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Cache-Control", "no-cache")
		writeData(w, logger, http.StatusOK, runner.Status())
	})
}

func NewCancelHarvestHandler(logger zerolog.Logger, runner jobs.Runner) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "cancel-harvest")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		if !runner.Cancel() {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		log.Info().Msg("harvest cancellation requested")
		writeData(w, log, http.StatusAccepted, runner.Status())
	})
}

// writeData wraps v in a {"data": ...} envelope
func writeData(w http.ResponseWriter, log zerolog.Logger, code int, v any) {
	body, err := json.Marshal(struct {
		Data any `json:"data"`
	}{v})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response body to json")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}
