package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpermit/internal/app"
	"gridpermit/internal/config"
	"gridpermit/internal/domain"
	"gridpermit/internal/engine"
	"gridpermit/internal/repo"
	"gridpermit/internal/seed"
	"gridpermit/internal/workflow"
)

func TestResolveConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	v := viper.New()
	v.Set("workspace", dir)

	cfg, err := resolveConfig(v)
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, cfg.Store.Driver)
	assert.Equal(t, dir, cfg.Store.Workspace)
	assert.Equal(t, "/api", cfg.Server.BasePath)
	assert.True(t, cfg.Seed.Demo)
}

func TestResolveConfigOverlaysFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gridpermit.yml"), []byte("store:\n  driver: sqlite\nlog:\n  level: warn\n"), 0o644))
	v := viper.New()
	v.Set("workspace", dir)
	v.Set("log-level", "debug")
	v.Set("jwt-secret", "s3cret")
	v.Set("seed-demo", false)
	v.Set("cors-origins", []string{"http://localhost:5173"})

	cfg, err := resolveConfig(v)
	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.False(t, cfg.Seed.Demo)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
}

func TestResolveConfigRejectsInvalid(t *testing.T) {
	v := viper.New()
	v.Set("workspace", t.TempDir())
	v.Set("driver", "postgres")

	_, err := resolveConfig(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver")
}

func TestResolveConfigExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("default_lang: en\nserver:\n  addr: 0.0.0.0:9000\n"), 0o644))
	v := viper.New()
	v.Set("config", path)

	cfg, err := resolveConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.DefaultLang)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, ".", cfg.Store.Workspace)
}

func TestRunTaskAction(t *testing.T) {
	ctx := context.Background()
	e := engine.New(repo.NewMemory(), nil, nil)
	_, err := app.SeedDemo(ctx, e)
	require.NoError(t, err)

	status := func(p domain.Project, id string) domain.TaskStatus {
		loc, ok := workflow.FindTask(&p, id)
		require.True(t, ok)
		return workflow.Task(&p, loc).Status
	}
	in := engine.TaskInput{FormData: map[string]string{"notiz": "Entwurf"}, CompletedChecklist: []int{0}}

	p, err := runTaskAction(ctx, e, taskSave, seed.DemoProjectID, "ti-c-s2-t1", in, domain.LangDE)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, status(p, "ti-c-s2-t1"))

	p, err = runTaskAction(ctx, e, taskComplete, seed.DemoProjectID, "ti-c-s2-t1", in, domain.LangDE)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDone, status(p, "ti-c-s2-t1"))

	p, err = runTaskAction(ctx, e, taskReopen, seed.DemoProjectID, "ti-c-s2-t1", engine.TaskInput{}, domain.LangDE)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, status(p, "ti-c-s2-t1"))

	_, err = runTaskAction(ctx, e, "archive", seed.DemoProjectID, "ti-c-s2-t1", in, domain.LangDE)
	assert.ErrorContains(t, err, "unknown task action")

	_, err = runTaskAction(ctx, e, taskReopen, seed.DemoProjectID, "ti-missing", engine.TaskInput{}, domain.LangEN)
	var nf engine.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Task not found", nf.Error())
}
