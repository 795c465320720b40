package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpermit/internal/config"
	"gridpermit/internal/domain"
	"gridpermit/internal/engine"
	"gridpermit/internal/events"
	"gridpermit/internal/repo"
	"gridpermit/internal/seed"
)

func TestOpenMemorySeedsDemo(t *testing.T) {
	ctx := context.Background()
	a, err := Open(ctx, config.Default(), nil)
	require.NoError(t, err)
	defer a.Close()
	assert.Nil(t, a.DB)

	wf, err := a.Engine.Workflow(ctx, seed.DemoProjectID, domain.LangDE)
	require.NoError(t, err)
	require.Len(t, wf.Project.Sections, 3)
	assert.Equal(t, domain.StageActive, wf.Project.Sections[0].Stages[2].Status)

	n, err := SeedDemo(ctx, a.Engine)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpenWithoutSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Seed.Demo = false
	a, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	list, err := a.Engine.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSQLiteKeepsChangesAcrossRestart(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Store.Driver = config.DriverSQLite
	cfg.Store.Workspace = t.TempDir()

	a, err := Open(ctx, cfg, nil)
	require.NoError(t, err)
	require.NotNil(t, a.DB)
	_, err = a.Engine.CompleteTask(ctx, seed.DemoProjectID, "ti-c-s1-t2", engine.TaskInput{
		FormData: map[string]string{"trassenlaenge": "24,2 km"},
	}, domain.LangDE)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	a, err = Open(ctx, cfg, nil)
	require.NoError(t, err)
	defer a.Close()
	p, err := a.Engine.Repo.Get(ctx, seed.DemoProjectID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDone, p.Sections[2].Stages[0].Tasks[1].Status)

	evts, err := repo.SQLite{DB: a.DB}.LatestEvents(ctx, 10, repo.EventFilter{ProjectID: seed.DemoProjectID})
	require.NoError(t, err)
	require.Len(t, evts, 2)
	assert.Equal(t, events.TaskCompleted, evts[0].Type)
	assert.Equal(t, events.ProjectCreated, evts[1].Type)
}
