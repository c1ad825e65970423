package core

import (
	"testing"

	"github.com/stretchr/testify/mock"

	coreport "github.com/fintrackhq/fintrack-api/internal/domain/port/core"
)

// MockLogger is a mock implementation of core.Logger
type MockLogger struct {
	mock.Mock
}

// NewMockLogger creates a new MockLogger and registers expectation
// checks with the test's cleanup.
func NewMockLogger(t *testing.T) *MockLogger {
	m := &MockLogger{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// SetLevel provides a mock function
func (m *MockLogger) SetLevel(level coreport.LogLevel) {
	m.Called(level)
}

// Debug provides a mock function
func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Info provides a mock function
func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Warn provides a mock function
func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Error provides a mock function
func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Flush provides a mock function
func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}
