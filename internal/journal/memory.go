package journal

import (
	"context"
	"sync"
	"time"

	"github.com/saqib40/kit-and-adapter/internal/model"
)

const memoryCapacity = 256

// Memory is the journal used when no database is configured. It keeps the
// most recent entries only.
type Memory struct {
	mu      sync.Mutex
	nextID  int64
	entries []model.Activity
}

var _ Journal = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Record(ctx context.Context, entry model.Activity) (model.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	entry.ID = m.nextID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	m.entries = append(m.entries, entry)
	if len(m.entries) > memoryCapacity {
		m.entries = m.entries[len(m.entries)-memoryCapacity:]
	}
	return entry, nil
}

func (m *Memory) Recent(ctx context.Context, limit int) ([]model.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	limit = normalizeLimit(limit)
	out := make([]model.Activity, 0, min(limit, len(m.entries)))
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

func (m *Memory) Lookup(ctx context.Context, signature string) (*model.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].Signature == signature && signature != "" {
			entry := m.entries[i]
			return &entry, nil
		}
	}
	return nil, nil
}

func (m *Memory) Close() error {
	return nil
}
