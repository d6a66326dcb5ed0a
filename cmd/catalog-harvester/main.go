package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/diwise/catalog-harvester/internal/pkg/application/harvester"
	"github.com/diwise/catalog-harvester/internal/pkg/application/services/ckan"
	"github.com/diwise/catalog-harvester/internal/pkg/application/services/jobs"
	"github.com/diwise/catalog-harvester/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/catalog-harvester/internal/pkg/presentation"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func loadCategoryRules(ctx context.Context, path string) harvester.CategoryRules {
	log := logging.GetFromContext(ctx)

	if path == "" {
		return harvester.DefaultCategoryRules
	}

	rulesfile, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Msgf("failed to open the category rules file %s", path)
	}
	defer rulesfile.Close()

	rules, err := harvester.LoadCategoryRules(rulesfile)
	if err != nil {
		log.Fatal().Err(err).Msgf("failed to load category rules from %s", path)
	}

	log.Info().Msgf("loaded %d category rules from %s", len(rules), path)

	return rules
}

func connectToDatabase(ctx context.Context, log zerolog.Logger) database.Datastore {
	connect := database.NewSQLiteConnector(env.GetVariableOrDefault(log, "HARVEST_DB_PATH", "catalog.db"))

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		log.Info().Msg("using postgres database")
		connect = database.NewPostgresConnector(dsn)
	}

	db, err := database.NewDatabaseConnection(ctx, connect)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database, shutting down...")
	}

	return db
}

var categoryRulesFileName string
var harvestOnce bool

func main() {
	serviceName := "catalog-harvester"
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.StringVar(&categoryRulesFileName, "rules", "", "A yaml file with the rules used to categorize organizations")
	flag.BoolVar(&harvestOnce, "once", false, "Run a single harvest and exit")
	flag.Parse()

	rules := loadCategoryRules(ctx, categoryRulesFileName)
	db := connectToDatabase(ctx, log)

	remote := ckan.NewClient(
		env.GetVariableOrDefault(log, "CKAN_API_URL", ckan.DefaultBaseURL),
		ckan.DefaultUserAgent,
	)

	datasetLimit, err := strconv.Atoi(env.GetVariableOrDefault(log, "HARVEST_DATASET_LIMIT", "0"))
	if err != nil {
		log.Fatal().Err(err).Msg("HARVEST_DATASET_LIMIT must be a number")
	}

	runner := jobs.NewRunner(ctx, harvester.New(remote, db, rules, datasetLimit))

	if harvestOnce {
		if _, err := runner.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to start harvest")
		}
		runner.Wait()

		status := runner.Status()
		log.Info().Msgf("harvest finished in state %s: %s", status.State, status.Message)
		return
	}

	interval, err := time.ParseDuration(env.GetVariableOrDefault(log, "HARVEST_INTERVAL", "0"))
	if err != nil {
		log.Fatal().Err(err).Msg("HARVEST_INTERVAL must be a duration such as 24h")
	}

	runner.Schedule(interval)
	defer runner.Shutdown()

	port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8880")

	api := presentation.NewAPI(ctx, chi.NewRouter(), runner, db)
	err = api.Start(port)
	if err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}
