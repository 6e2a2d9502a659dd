package tracker

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	LoadAllFunc       func() []Tournament
	SaveAllFunc       func(list []Tournament)
	GetFunc           func(tournamentID string) *Tournament
	CreateFunc        func(params TournamentParams) Tournament
	AppendRoundFunc   func(tournamentID string, input RoundInput) *Tournament
	RemoveRoundFunc   func(tournamentID, roundID string) *Tournament
	SetFinalizedFunc  func(tournamentID string, finalized bool) *Tournament
	UpdateDetailsFunc func(tournamentID string, details DetailsUpdate) *Tournament
	DeleteFunc        func(tournamentID string) bool

	SaveAllCalls     [][]Tournament
	CreateCalls      []TournamentParams
	AppendRoundCalls []struct {
		TournamentID string
		Input        RoundInput
	}
	DeleteCalls []string
}

var _ Store = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) LoadAll(_ context.Context) []Tournament {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadAllFunc != nil {
		return m.LoadAllFunc()
	}
	return nil
}

func (m *MockStore) SaveAll(_ context.Context, list []Tournament) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveAllCalls = append(m.SaveAllCalls, list)
	if m.SaveAllFunc != nil {
		m.SaveAllFunc(list)
	}
}

func (m *MockStore) Get(_ context.Context, tournamentID string) *Tournament {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(tournamentID)
	}
	return nil
}

func (m *MockStore) Create(_ context.Context, params TournamentParams) Tournament {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, params)
	if m.CreateFunc != nil {
		return m.CreateFunc(params)
	}
	return NewTournament(params)
}

func (m *MockStore) AppendRound(_ context.Context, tournamentID string, input RoundInput) *Tournament {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AppendRoundCalls = append(m.AppendRoundCalls, struct {
		TournamentID string
		Input        RoundInput
	}{tournamentID, input})
	if m.AppendRoundFunc != nil {
		return m.AppendRoundFunc(tournamentID, input)
	}
	return nil
}

func (m *MockStore) RemoveRound(_ context.Context, tournamentID, roundID string) *Tournament {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RemoveRoundFunc != nil {
		return m.RemoveRoundFunc(tournamentID, roundID)
	}
	return nil
}

func (m *MockStore) SetFinalized(_ context.Context, tournamentID string, finalized bool) *Tournament {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetFinalizedFunc != nil {
		return m.SetFinalizedFunc(tournamentID, finalized)
	}
	return nil
}

func (m *MockStore) UpdateDetails(_ context.Context, tournamentID string, details DetailsUpdate) *Tournament {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateDetailsFunc != nil {
		return m.UpdateDetailsFunc(tournamentID, details)
	}
	return nil
}

func (m *MockStore) Delete(_ context.Context, tournamentID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, tournamentID)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(tournamentID)
	}
	return false
}
