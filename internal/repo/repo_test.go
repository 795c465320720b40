package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpermit/internal/db"
	"gridpermit/internal/domain"
	"gridpermit/internal/events"
	"gridpermit/internal/migrate"
)

func sampleProject(id string, created time.Time) domain.Project {
	return domain.Project{
		ID:            id,
		Name:          "Projekt " + id,
		Pfad:          domain.PfadNABEG,
		KVLevel:       380,
		StatesCrossed: []string{"Bayern", "Hessen"},
		Stages: []domain.StageInstance{{
			ID:         id + "-s1",
			TemplateID: "s1_scope_recht",
			Status:     domain.StageActive,
			Tasks: []domain.TaskInstance{{
				ID:                 id + "-t1",
				TemplateID:         "s1_t1",
				Status:             domain.TaskInProgress,
				FormData:           map[string]string{"rechtsrahmen": "NABEG"},
				CompletedChecklist: []int{0, 2},
			}},
		}},
		CreatedAt: created.UTC(),
	}
}

func openSQLite(t *testing.T, workspace string) SQLite {
	t.Helper()
	conn, err := db.Open(db.Config{Workspace: workspace})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	_, err = migrate.Migrate(context.Background(), conn)
	require.NoError(t, err)
	return SQLite{DB: conn}
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	p := sampleProject("p1", time.Unix(100, 0))
	require.NoError(t, m.Put(ctx, p))

	p.Stages[0].Tasks[0].FormData["rechtsrahmen"] = "changed"
	got, err := m.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "NABEG", got.Stages[0].Tasks[0].FormData["rechtsrahmen"])

	got.Stages[0].Status = domain.StageCompleted
	again, err := m.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.StageActive, again.Stages[0].Status)
}

func TestMemoryNotFound(t *testing.T) {
	_, err := NewMemory().Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryListOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Put(ctx, sampleProject("b", time.Unix(200, 0))))
	require.NoError(t, m.Put(ctx, sampleProject("c", time.Unix(100, 0))))
	require.NoError(t, m.Put(ctx, sampleProject("a", time.Unix(200, 0))))

	list, err := m.List(ctx)
	require.NoError(t, err)
	var ids []string
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestSQLiteRoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()
	ws := t.TempDir()
	want := sampleProject("p1", time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC))

	r := openSQLite(t, ws)
	require.NoError(t, r.Put(ctx, want))
	want.Stages[0].Tasks[0].Status = domain.TaskDone
	require.NoError(t, r.Put(ctx, want))
	require.NoError(t, r.DB.Close())

	r2 := openSQLite(t, ws)
	got, err := r2.Get(ctx, "p1")
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("project mismatch (-want +got):\n%s", diff)
	}

	list, err := r2.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = r2.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := openSQLite(t, t.TempDir())
	v, err := migrate.Migrate(ctx, r.DB)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestLatestEvents(t *testing.T) {
	ctx := context.Background()
	r := openSQLite(t, t.TempDir())
	w := events.Writer{DB: r.DB, Now: func() time.Time { return time.Unix(0, 0) }}
	require.NoError(t, w.Record(ctx, events.Event{Type: events.ProjectCreated, ProjectID: "p1", EntityKind: "project", EntityID: "p1"}))
	require.NoError(t, w.Record(ctx, events.Event{Type: events.TaskSaved, ProjectID: "p1", EntityKind: "task", EntityID: "t1", Payload: events.Payload{"status": "in_progress"}}))
	require.NoError(t, w.Record(ctx, events.Event{Type: events.EmailAction, EntityKind: "email", EntityID: "m1"}))

	all, err := r.LatestEvents(ctx, 10, EventFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, events.EmailAction, all[0].Type)
	assert.Equal(t, "", all[0].ProjectID)

	tasks, err := r.LatestEvents(ctx, 10, EventFilter{ProjectID: "p1", EntityKind: "task"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.JSONEq(t, `{"status":"in_progress"}`, tasks[0].Payload)
	assert.Equal(t, "1970-01-01T00:00:00Z", tasks[0].TS)
}
