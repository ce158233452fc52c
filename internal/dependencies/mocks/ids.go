package mocks

import (
	"fmt"

	"github.com/mcoot/wordmove/internal/dependencies/ids"
)

// MockIDs is a mock implementation of ids.Generator for testing
type MockIDs struct {
	// Queued is a queue of ids to hand out before falling back to a counter
	Queued []string
	index  int
	count  int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// NewID returns the next queued id, or "id-N" once the queue is exhausted
func (m *MockIDs) NewID() string {
	if m.index < len(m.Queued) {
		id := m.Queued[m.index]
		m.index++
		return id
	}
	m.count++
	return fmt.Sprintf("id-%d", m.count)
}

// Queue adds values to the id queue
func (m *MockIDs) Queue(values ...string) {
	m.Queued = append(m.Queued, values...)
}
