package mocks

import "github.com/mikiasgoitom/likeboard/internal/domain/contract"

// MockReadiness reports a fixed connection state.
type MockReadiness struct {
	Current contract.ConnState
}

func (m *MockReadiness) State() contract.ConnState {
	return m.Current
}
