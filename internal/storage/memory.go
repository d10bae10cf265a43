package storage

import (
	"context"
	"sync"

	"github.com/gramcare/caselink/internal/shared"
)

type memoryEntry struct {
	value    string
	revision int64
}

// Memory is an in-process Slot used by tests. It honors the same
// compare-and-swap contract as the SQLite implementation.
type Memory struct {
	mu    sync.Mutex
	slots map[string]memoryEntry
}

func NewMemory() *Memory {
	return &Memory{slots: make(map[string]memoryEntry)}
}

func (m *Memory) Get(_ context.Context, key string) (string, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.slots[key]
	if !ok {
		return "", 0, nil
	}
	return e.value, e.revision, nil
}

func (m *Memory) Put(_ context.Context, key, value string, expectRevision int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var current int64
	if e, ok := m.slots[key]; ok {
		current = e.revision
	}
	if current != expectRevision {
		return 0, shared.ErrorStaleRevision
	}

	newRevision := current + 1
	m.slots[key] = memoryEntry{value: value, revision: newRevision}
	return newRevision, nil
}
