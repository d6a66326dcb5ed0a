package presentation

import (
	"compress/flate"
	"context"
	"net/http"

	"github.com/diwise/catalog-harvester/internal/pkg/application/services/jobs"
	"github.com/diwise/catalog-harvester/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/catalog-harvester/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
	Router() chi.Router
}

type harvesterAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(ctx context.Context, r chi.Router, runner jobs.Runner, db database.Datastore) API {
	return newHarvesterAPI(ctx, r, runner, db)
}

func newHarvesterAPI(ctx context.Context, r chi.Router, runner jobs.Runner, db database.Datastore) *harvesterAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(flate.DefaultCompression, "application/json")
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("catalog-harvester", otelchi.WithChiRoutes(r)))

	a := &harvesterAPI{
		router: r,
		log:    log,
	}

	a.addHarvestHandlers(r, runner, db)
	a.addProbeHandlers(r)

	return a
}

func (a *harvesterAPI) Start(port string) error {
	a.log.Info().Msgf("Starting catalog-harvester on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *harvesterAPI) Router() chi.Router {
	return a.router
}

func (a *harvesterAPI) addHarvestHandlers(r chi.Router, runner jobs.Runner, db database.Datastore) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/harvest", handlers.NewStartHarvestHandler(a.log, runner))
		r.Get("/harvest/status", handlers.NewRetrieveHarvestStatusHandler(a.log, runner))
		r.Post("/harvest/cancel", handlers.NewCancelHarvestHandler(a.log, runner))

		r.Get("/stats", handlers.NewRetrieveStatsHandler(a.log, db))
		r.Post("/categories/sync", handlers.NewSyncCategoriesHandler(a.log, db))
	})
}

func (a *harvesterAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Handle("/metrics", promhttp.Handler())
}
