// internal/store/memory.go
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// Memory is the in-process fallback tier. It holds marshaled blobs behind a
// RWMutex and can never fail; durability ends with the process.
type Memory struct {
	mu     sync.RWMutex
	data   map[string][]byte
	logger *logrus.Logger
}

// NewMemory creates an empty in-memory store
func NewMemory(logger *logrus.Logger) *Memory {
	return &Memory{
		data:   make(map[string][]byte),
		logger: logger,
	}
}

// Get unmarshals the stored blob into dest
func (m *Memory) Get(ctx context.Context, key string, dest interface{}) bool {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false
	}

	if err := decode(raw, dest); err != nil {
		// Corrupted value: treat as absent
		m.logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Discarding corrupted value in memory store")
		return false
	}
	return true
}

// Set stores the marshaled value
func (m *Memory) Set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		m.logger.WithFields(logrus.Fields{"key": key, "error": err}).Error("Failed to marshal value for memory store")
		return
	}

	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
}

// Delete removes the key
func (m *Memory) Delete(ctx context.Context, key string) {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
}
