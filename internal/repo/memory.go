package repo

import (
	"context"
	"sync"

	"gridpermit/internal/domain"
)

// Memory keeps projects in process memory as encoded snapshots, so callers
// never share nested slices or maps with the store.
type Memory struct {
	mu       sync.RWMutex
	projects map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{projects: map[string][]byte{}}
}

func (m *Memory) Get(ctx context.Context, id string) (domain.Project, error) {
	m.mu.RLock()
	b, ok := m.projects[id]
	m.mu.RUnlock()
	if !ok {
		return domain.Project{}, ErrNotFound
	}
	return decodeProject(b)
}

func (m *Memory) Put(ctx context.Context, p domain.Project) error {
	b, err := encodeProject(p)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.projects[p.ID] = b
	m.mu.Unlock()
	return nil
}

func (m *Memory) List(ctx context.Context) ([]domain.Project, error) {
	m.mu.RLock()
	snap := make([][]byte, 0, len(m.projects))
	for _, b := range m.projects {
		snap = append(snap, b)
	}
	m.mu.RUnlock()

	res := make([]domain.Project, 0, len(snap))
	for _, b := range snap {
		p, err := decodeProject(b)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	sortProjects(res)
	return res, nil
}
