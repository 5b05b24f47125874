package wallpaper

import (
	"context"
	"sync"
)

// MockSetter is a mock implementation of SetterInterface for testing
type MockSetter struct {
	mu    sync.Mutex
	calls []string
	err   error
}

// Ensure MockSetter implements the SetterInterface
var _ SetterInterface = (*MockSetter)(nil)

// NewMockSetter creates a new MockSetter
func NewMockSetter() *MockSetter {
	return &MockSetter{}
}

// FailWith makes every subsequent Set call return err
func (m *MockSetter) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Set records the call and returns the configured error
func (m *MockSetter) Set(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, path)
	return m.err
}

// Name identifies the mechanism in use
func (m *MockSetter) Name() string {
	return "mock"
}

// Calls returns the paths Set was invoked with, in order
func (m *MockSetter) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}
