package engine_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpermit/internal/domain"
	"gridpermit/internal/engine"
	"gridpermit/internal/events"
	"gridpermit/internal/repo"
	"gridpermit/internal/workflow"
)

type captured struct {
	mu     sync.Mutex
	events []events.Event
}

func (c *captured) Record(ctx context.Context, e events.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
	return nil
}

func (c *captured) types() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, e := range c.events {
		out = append(out, e.Type)
	}
	return out
}

type testEnv struct {
	Engine engine.Engine
	Events *captured
	Ctx    context.Context
}

var fixedNow = time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	rec := &captured{}
	eng := engine.New(repo.NewMemory(), rec, nil)
	eng.Now = func() time.Time { return fixedNow }
	n := 0
	eng.NewID = func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
	return testEnv{Engine: eng, Events: rec, Ctx: context.Background()}
}

func (env testEnv) create(t *testing.T, kv int) domain.Project {
	t.Helper()
	wf, err := env.Engine.CreateProject(env.Ctx, engine.CreateProjectInput{Name: "Testleitung", KVLevel: kv})
	require.NoError(t, err)
	return wf.Project
}

func TestCreateProjectSelectsProcedure(t *testing.T) {
	env := newTestEnv(t)
	for kv, want := range map[int]domain.Pfad{380: domain.PfadNABEG, 220: domain.PfadNABEG, 219: domain.PfadEnWG, 110: domain.PfadEnWG} {
		wf, err := env.Engine.CreateProject(env.Ctx, engine.CreateProjectInput{Name: "P", KVLevel: kv})
		require.NoError(t, err)
		assert.Equal(t, want, wf.Project.Pfad, "kv=%d", kv)
		assert.Equal(t, want, wf.Template.Pfad, "kv=%d", kv)
		require.Len(t, wf.Project.Stages, 3)
		assert.Equal(t, domain.StageActive, wf.Project.Stages[0].Status)
		assert.Equal(t, domain.StagePending, wf.Project.Stages[1].Status)
		assert.Equal(t, domain.StagePending, wf.Project.Stages[2].Status)
		workflow.Tasks(&wf.Project, func(task *domain.TaskInstance) {
			assert.Equal(t, domain.TaskPending, task.Status)
		})
	}
}

func TestCreateProjectValidation(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.Engine.CreateProject(env.Ctx, engine.CreateProjectInput{KVLevel: 380})
	var verr engine.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "required", verr.Details()["name"])

}

func TestCreateProjectAcceptsAnyVoltage(t *testing.T) {
	env := newTestEnv(t)
	cases := []struct {
		kv   int
		want domain.Pfad
	}{
		{kv: 1500, want: domain.PfadNABEG},
		{kv: 220, want: domain.PfadNABEG},
		{kv: 219, want: domain.PfadEnWG},
		{kv: 0, want: domain.PfadEnWG},
		{kv: -5, want: domain.PfadEnWG},
	}
	for _, tc := range cases {
		wf, err := env.Engine.CreateProject(env.Ctx, engine.CreateProjectInput{Name: "P", KVLevel: tc.kv})
		require.NoError(t, err, "kv=%d", tc.kv)
		assert.Equal(t, tc.want, wf.Project.Pfad, "kv=%d", tc.kv)
		assert.Equal(t, tc.want, wf.Template.Pfad, "kv=%d", tc.kv)
		assert.Equal(t, tc.kv, wf.Project.KVLevel)
	}
}

func TestCompleteStageOneAdvances(t *testing.T) {
	env := newTestEnv(t)
	p := env.create(t, 380)
	for _, task := range p.Stages[0].Tasks {
		var err error
		p, err = env.Engine.CompleteTask(env.Ctx, p.ID, task.ID, engine.TaskInput{
			FormData:           map[string]string{"x": "y"},
			CompletedChecklist: []int{0},
		}, domain.LangDE)
		require.NoError(t, err)
	}
	assert.Equal(t, domain.StageCompleted, p.Stages[0].Status)
	assert.Equal(t, 1, p.CurrentStageIndex)
	assert.Equal(t, domain.TaskDone, p.Stages[0].Tasks[0].Status)
	assert.Equal(t, map[string]string{"x": "y"}, p.Stages[0].Tasks[0].FormData)
	require.NotNil(t, p.Stages[0].Tasks[0].UpdatedAt)
	assert.True(t, p.Stages[0].Tasks[0].UpdatedAt.Equal(fixedNow))

	stored, err := env.Engine.Workflow(env.Ctx, p.ID, domain.LangDE)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Project.CurrentStageIndex)
}

func TestSaveOnlyLeavesPending(t *testing.T) {
	env := newTestEnv(t)
	p := env.create(t, 110)
	taskID := p.Stages[0].Tasks[0].ID

	p, err := env.Engine.SaveTask(env.Ctx, p.ID, taskID, engine.TaskInput{FormData: map[string]string{"behoerde": "BR Köln"}}, domain.LangDE)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, p.Stages[0].Tasks[0].Status)
	assert.Equal(t, []int{}, p.Stages[0].Tasks[0].CompletedChecklist)

	p, err = env.Engine.SaveTask(env.Ctx, p.ID, taskID, engine.TaskInput{}, domain.LangDE)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, p.Stages[0].Tasks[0].Status)
	assert.Empty(t, p.Stages[0].Tasks[0].FormData)

	_, err = env.Engine.CompleteTask(env.Ctx, p.ID, taskID, engine.TaskInput{}, domain.LangDE)
	require.NoError(t, err)
	p, err = env.Engine.SaveTask(env.Ctx, p.ID, taskID, engine.TaskInput{FormData: map[string]string{"termin": "2026-03-01"}}, domain.LangDE)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDone, p.Stages[0].Tasks[0].Status)
	assert.Equal(t, domain.StageCompleted, p.Stages[0].Status)
}

func TestReopenRegressesStage(t *testing.T) {
	env := newTestEnv(t)
	p := env.create(t, 110)
	taskID := p.Stages[0].Tasks[0].ID
	p, err := env.Engine.CompleteTask(env.Ctx, p.ID, taskID, engine.TaskInput{FormData: map[string]string{"a": "b"}}, domain.LangDE)
	require.NoError(t, err)
	require.Equal(t, domain.StageCompleted, p.Stages[0].Status)
	require.Equal(t, 1, p.CurrentStageIndex)

	p, err = env.Engine.ReopenTask(env.Ctx, p.ID, taskID, domain.LangDE)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, p.Stages[0].Tasks[0].Status)
	assert.Equal(t, domain.StageActive, p.Stages[0].Status)
	assert.Equal(t, 0, p.CurrentStageIndex)
	assert.Equal(t, map[string]string{"a": "b"}, p.Stages[0].Tasks[0].FormData)

	assert.Equal(t, []string{events.ProjectCreated, events.TaskCompleted, events.TaskReopened}, env.Events.types())
}

func TestNotFoundIsLocalized(t *testing.T) {
	env := newTestEnv(t)
	p := env.create(t, 380)

	_, err := env.Engine.Workflow(env.Ctx, "missing", domain.LangEN)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repo.ErrNotFound))
	assert.Equal(t, "Project not found", err.Error())

	_, err = env.Engine.CompleteTask(env.Ctx, "missing", "x", engine.TaskInput{}, domain.LangDE)
	assert.Equal(t, "Projekt nicht gefunden", err.Error())

	_, err = env.Engine.SaveTask(env.Ctx, p.ID, "missing", engine.TaskInput{}, domain.LangEN)
	var nf engine.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, engine.KindTask, nf.Kind)
	assert.Equal(t, "Task not found", err.Error())

	_, err = env.Engine.ReopenTask(env.Ctx, p.ID, "missing", domain.LangDE)
	assert.Equal(t, "Task nicht gefunden", err.Error())

	_, err = env.Engine.GenerateField(env.Ctx, engine.FieldRequest{ProjectID: p.ID, TaskInstanceID: "missing", FieldName: "betreff"})
	assert.Equal(t, "Task nicht gefunden", err.Error())
}

func TestWorkflowTranslatesForEnglish(t *testing.T) {
	env := newTestEnv(t)
	p := domain.Project{
		ID:        "P-1",
		Name:      "Demo",
		Pfad:      domain.PfadNABEG,
		KVLevel:   380,
		Sections:  []domain.Section{{ID: "sec_a", Name: "Bayern Nord", Stages: workflow.NewStages(workflow.Template(domain.PfadNABEG, domain.LangDE), env.Engine.NewID)}},
		CreatedAt: fixedNow,
	}
	require.NoError(t, env.Engine.ImportProject(env.Ctx, p))

	en, err := env.Engine.Workflow(env.Ctx, "P-1", domain.LangEN)
	require.NoError(t, err)
	assert.Equal(t, "Northern Bavaria", en.Project.Sections[0].Name)
	assert.Equal(t, "Scope & Legal Framework", en.Template.Stages[0].Title)

	de, err := env.Engine.Workflow(env.Ctx, "P-1", domain.Lang(""))
	require.NoError(t, err)
	assert.Equal(t, "Bayern Nord", de.Project.Sections[0].Name)
	assert.Equal(t, "Scope & Rechtsrahmen", de.Template.Stages[0].Title)
}

func TestImportRejectsDuplicateTaskIDs(t *testing.T) {
	env := newTestEnv(t)
	stages := workflow.NewStages(workflow.Template(domain.PfadEnWG, domain.LangDE), func() string { return "same" })
	err := env.Engine.ImportProject(env.Ctx, domain.Project{ID: "dup", Pfad: domain.PfadEnWG, Stages: stages})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate task ids")
}

func TestListProjectsOrdered(t *testing.T) {
	env := newTestEnv(t)
	first := env.create(t, 380)
	env.Engine.Now = func() time.Time { return fixedNow.Add(time.Minute) }
	second := env.create(t, 110)

	list, err := env.Engine.ListProjects(env.Ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestGenerateField(t *testing.T) {
	env := newTestEnv(t)
	p := env.create(t, 380)
	text, err := env.Engine.GenerateField(env.Ctx, engine.FieldRequest{
		ProjectID:      p.ID,
		TaskInstanceID: p.Stages[0].Tasks[1].ID,
		FieldName:      "vorhaben_titel",
		FieldLabel:     "Vorhabenbezeichnung",
	})
	require.NoError(t, err)
	assert.Equal(t, "Testleitung", text)

	text, err = env.Engine.GenerateField(env.Ctx, engine.FieldRequest{
		ProjectID:      p.ID,
		TaskInstanceID: p.Stages[2].Tasks[5].ID,
		FieldName:      "immissionsorte",
		FieldLabel:     "Relevant immission points",
		Lang:           domain.LangEN,
	})
	require.NoError(t, err)
	assert.Contains(t, text, "[Relevant immission points] – Draft for the project \"Testleitung\"")
}

func TestEmailAction(t *testing.T) {
	env := newTestEnv(t)
	ack, err := env.Engine.EmailAction(env.Ctx, "mail-7", "")
	require.NoError(t, err)
	assert.Equal(t, engine.EmailAck{Status: "ok", EmailID: "mail-7", Action: engine.DefaultEmailAction}, ack)
	assert.Equal(t, []string{events.EmailAction}, env.Events.types())
}
