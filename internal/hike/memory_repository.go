package hike

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository for tests and local development.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]map[string]Record // familyID -> hikeID -> record
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]map[string]Record)}
}

func (r *MemoryRepository) Create(_ context.Context, record Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	family, ok := r.records[record.FamilyID]
	if !ok {
		family = make(map[string]Record)
		r.records[record.FamilyID] = family
	}
	if _, exists := family[record.ID]; exists {
		return fmt.Errorf("%w: %s", ErrConflict, record.ID)
	}
	family[record.ID] = record
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, familyID, hikeID string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[familyID][hikeID]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, hikeID)
	}
	return record, nil
}

func (r *MemoryRepository) Update(_ context.Context, familyID, hikeID string, updates UpdateInput, updatedAt time.Time) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[familyID][hikeID]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, hikeID)
	}

	if updates.Date != nil {
		record.Date = *updates.Date
	}
	if updates.Distance != nil {
		record.Distance = *updates.Distance
	}
	if updates.ElevationGain != nil {
		record.ElevationGain = *updates.ElevationGain
	}
	if updates.Location != nil {
		record.Location = *updates.Location
	}
	if updates.Difficulty != nil {
		record.Difficulty = *updates.Difficulty
	}
	if updates.Notes != nil {
		record.Notes = *updates.Notes
	}
	record.UpdatedAt = updatedAt

	r.records[familyID][hikeID] = record
	return record, nil
}

func (r *MemoryRepository) Delete(_ context.Context, familyID, hikeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[familyID][hikeID]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, hikeID)
	}
	delete(r.records[familyID], hikeID)
	return nil
}

func (r *MemoryRepository) ListByFamily(_ context.Context, familyID string) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]Record, 0, len(r.records[familyID]))
	for _, record := range r.records[familyID] {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records, nil
}
