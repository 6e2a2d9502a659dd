package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// Service holds all the Prometheus metrics for the application.
// Defining them in one place keeps naming and labeling consistent.
type Service struct {
	Loads              prometheus.Counter
	Saves              prometheus.Counter
	SaveFailures       prometheus.Counter
	LegacyMigrations   prometheus.Counter
	ColorRewrites      prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Loads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "optcg_tracker_loads_total",
			Help: "The total number of full-collection loads from the blob store.",
		}),
		Saves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "optcg_tracker_saves_total",
			Help: "The total number of full-collection saves to the blob store.",
		}),
		SaveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "optcg_tracker_save_failures_total",
			Help: "The total number of saves that failed and were swallowed.",
		}),
		LegacyMigrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "optcg_tracker_legacy_migrations_total",
			Help: "The total number of legacy plain-JSON blobs migrated to the versioned key.",
		}),
		ColorRewrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "optcg_tracker_color_rewrites_total",
			Help: "The total number of loads that rewrote legacy color emoji to letter codes.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "optcg_tracker_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Loads,
		s.Saves,
		s.SaveFailures,
		s.LegacyMigrations,
		s.ColorRewrites,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncLoads()            { s.Loads.Inc() }
func (s *Service) IncSaves()            { s.Saves.Inc() }
func (s *Service) IncSaveFailures()     { s.SaveFailures.Inc() }
func (s *Service) IncLegacyMigrations() { s.LegacyMigrations.Inc() }
func (s *Service) IncColorRewrites()    { s.ColorRewrites.Inc() }

func (s *Service) SetStartupTime(seconds float64) { s.StartupTimeSeconds.Set(seconds) }
