package jobs

import (
	"github.com/diwise/catalog-harvester/internal/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_harvester_runs_total",
		Help: "The number of finished harvest runs, by final state",
	}, []string{"state"})

	recordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_harvester_records_total",
		Help: "The number of records saved by harvest runs, by kind",
	}, []string{"kind"})

	runErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_harvester_run_errors_total",
		Help: "The number of records that harvest runs failed to fetch or save",
	})
)

func recordRun(status domain.Status) {
	runsTotal.WithLabelValues(string(status.State)).Inc()

	recordsTotal.WithLabelValues("organization").Add(float64(status.Organizations))
	recordsTotal.WithLabelValues("dataset").Add(float64(status.Datasets))
	recordsTotal.WithLabelValues("resource").Add(float64(status.Resources))

	runErrorsTotal.Add(float64(status.Errors))
}
