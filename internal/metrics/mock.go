package metrics

import "sync"

// Mock is a no-op Metrics implementation for tests that records counts.
type Mock struct {
	mu sync.Mutex

	Loads            int
	Saves            int
	SaveFailures     int
	LegacyMigrations int
	ColorRewrites    int
	StartupTime      float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncLoads()            { m.mu.Lock(); m.Loads++; m.mu.Unlock() }
func (m *Mock) IncSaves()            { m.mu.Lock(); m.Saves++; m.mu.Unlock() }
func (m *Mock) IncSaveFailures()     { m.mu.Lock(); m.SaveFailures++; m.mu.Unlock() }
func (m *Mock) IncLegacyMigrations() { m.mu.Lock(); m.LegacyMigrations++; m.mu.Unlock() }
func (m *Mock) IncColorRewrites()    { m.mu.Lock(); m.ColorRewrites++; m.mu.Unlock() }

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	m.StartupTime = seconds
	m.mu.Unlock()
}
