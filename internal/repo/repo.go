package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gridpermit/internal/domain"
)

var ErrNotFound = errors.New("not found")

// Repository stores whole projects. Get and List return copies owned by the
// caller; Put replaces the stored project (last write wins).
type Repository interface {
	Get(ctx context.Context, id string) (domain.Project, error)
	Put(ctx context.Context, p domain.Project) error
	List(ctx context.Context) ([]domain.Project, error)
}

func encodeProject(p domain.Project) ([]byte, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode project %s: %w", p.ID, err)
	}
	return b, nil
}

func decodeProject(b []byte) (domain.Project, error) {
	var p domain.Project
	if err := json.Unmarshal(b, &p); err != nil {
		return domain.Project{}, fmt.Errorf("decode project: %w", err)
	}
	return p, nil
}

func sortProjects(ps []domain.Project) {
	sort.Slice(ps, func(i, j int) bool {
		if !ps[i].CreatedAt.Equal(ps[j].CreatedAt) {
			return ps[i].CreatedAt.Before(ps[j].CreatedAt)
		}
		return ps[i].ID < ps[j].ID
	})
}
