package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/riks17/Document-OCR/internal/common"
	"github.com/riks17/Document-OCR/internal/entity"
)

// MemoryResultStore is an in-memory ResultStore for tests. SaveErr, when set,
// is returned from Save to exercise storage failure paths.
type MemoryResultStore struct {
	mu      sync.Mutex
	results map[uuid.UUID]*entity.ProcessingResult

	SaveErr error
}

func NewMemoryResultStore() *MemoryResultStore {
	return &MemoryResultStore{
		results: make(map[uuid.UUID]*entity.ProcessingResult),
	}
}

func (m *MemoryResultStore) Save(_ context.Context, result *entity.ProcessingResult) (*entity.ProcessingResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return nil, fmt.Errorf("%v: %w", m.SaveErr, common.ErrStorageUnavailable)
	}
	saved := *result
	saved.ID = uuid.New()
	saved.CreatedAt = time.Now().UTC()
	m.results[saved.ID] = &saved
	return &saved, nil
}

func (m *MemoryResultStore) GetByID(_ context.Context, id, userID uuid.UUID) (*entity.ProcessingResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.results[id]
	if !ok || r.OwnerID != userID {
		return nil, fmt.Errorf("result %s: %w", id, common.ErrUnauthorized)
	}
	cp := *r
	return &cp, nil
}

func (m *MemoryResultStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.ProcessingResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.ProcessingResult
	for _, r := range m.results {
		if r.OwnerID == userID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Len reports the number of stored results.
func (m *MemoryResultStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.results)
}
