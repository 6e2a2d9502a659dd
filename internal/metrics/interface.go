package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the tracker from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncLoads()
	IncSaves()
	IncSaveFailures()
	IncLegacyMigrations()
	IncColorRewrites()
	SetStartupTime(seconds float64)
}
