package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/neexbeast/amadeus/internal/model"
	"github.com/neexbeast/amadeus/internal/normalize"
)

// RegionMemory is a concurrency-safe in-memory RegionRepository.
type RegionMemory struct {
	mu      sync.RWMutex
	regions []model.Region
	nextID  int64
}

// NewRegionMemory creates a store holding copies of the given regions.
func NewRegionMemory(seed ...model.Region) *RegionMemory {
	m := &RegionMemory{nextID: 1}
	for _, r := range seed {
		m.regions = append(m.regions, r)
		if r.ID >= m.nextID {
			m.nextID = r.ID + 1
		}
	}
	return m
}

// FetchByID returns nil, nil when no region has the id.
func (m *RegionMemory) FetchByID(_ context.Context, id int64) (*model.Region, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.indexOf(id); i >= 0 {
		r := m.regions[i]
		return &r, nil
	}
	return nil, nil
}

// FetchAll returns a copy of every region sorted by name.
func (m *RegionMemory) FetchAll(_ context.Context) ([]model.Region, error) {
	m.mu.RLock()
	out := make([]model.Region, len(m.regions))
	copy(out, m.regions)
	m.mu.RUnlock()

	sortByName(out)
	return out, nil
}

// FetchByName returns the first region, by name order, matching name loosely.
func (m *RegionMemory) FetchByName(ctx context.Context, name string) (*model.Region, error) {
	all, _ := m.FetchAll(ctx)
	for _, r := range all {
		if MatchName(name, r.Name) {
			return &r, nil
		}
	}
	return nil, nil
}

// Create assigns the next identifier and stores the region with defaults applied.
func (m *RegionMemory) Create(_ context.Context, patch model.RegionPatch) (*model.Region, error) {
	r := normalize.NewRegion(patch)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nameTaken(r.Name, 0) {
		return nil, ErrDuplicateName
	}

	r.ID = m.nextID
	m.nextID++
	m.regions = append(m.regions, r)
	return &r, nil
}

// Update overwrites the supplied fields. It returns nil, nil when the id is unknown.
func (m *RegionMemory) Update(_ context.Context, id int64, patch model.RegionPatch) (*model.Region, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	if patch.Name != nil && m.nameTaken(*patch.Name, id) {
		return nil, ErrDuplicateName
	}

	normalize.ApplyPatch(&m.regions[i], patch)
	r := m.regions[i]
	return &r, nil
}

// Delete removes the region and reports whether it existed.
func (m *RegionMemory) Delete(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false, nil
	}
	m.regions = append(m.regions[:i], m.regions[i+1:]...)
	return true, nil
}

// indexOf must be called with mu held.
func (m *RegionMemory) indexOf(id int64) int {
	for i, r := range m.regions {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// nameTaken must be called with mu held.
func (m *RegionMemory) nameTaken(name string, exceptID int64) bool {
	for _, r := range m.regions {
		if r.ID != exceptID && strings.EqualFold(r.Name, name) {
			return true
		}
	}
	return false
}

func sortByName(rs []model.Region) {
	sort.SliceStable(rs, func(i, j int) bool {
		return strings.ToLower(rs[i].Name) < strings.ToLower(rs[j].Name)
	})
}
