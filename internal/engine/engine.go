package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gridpermit/internal/domain"
	"gridpermit/internal/events"
	"gridpermit/internal/repo"
	"gridpermit/internal/textgen"
	"gridpermit/internal/workflow"
)

type Engine struct {
	Repo     repo.Repository
	Events   events.Recorder
	Text     *textgen.Generator
	Log      *zap.Logger
	Validate *validator.Validate
	Now      func() time.Time
	NewID    func() string
}

func New(r repo.Repository, rec events.Recorder, log *zap.Logger) Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return Engine{
		Repo:     r,
		Events:   rec,
		Text:     textgen.New(),
		Log:      log,
		Validate: NewValidator(),
		Now:      time.Now,
		NewID:    func() string { return uuid.NewString() },
	}
}

func (e Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e Engine) newID() string {
	if e.NewID != nil {
		return e.NewID()
	}
	return uuid.NewString()
}

func (e Engine) logger() *zap.Logger {
	if e.Log != nil {
		return e.Log
	}
	return zap.NewNop()
}

func (e Engine) validate(v any) error {
	if e.Validate == nil {
		return nil
	}
	if err := e.Validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return ValidationError{Fields: verrs}
		}
		return err
	}
	return nil
}

func (e Engine) record(ctx context.Context, evt events.Event) {
	if e.Events == nil {
		return
	}
	if err := e.Events.Record(ctx, evt); err != nil {
		e.logger().Warn("record event", zap.String("type", evt.Type), zap.Error(err))
	}
}

// Workflow is a project together with the template it follows.
type Workflow struct {
	Project  domain.Project         `json:"project"`
	Template domain.ProcessTemplate `json:"template"`
}

type CreateProjectInput struct {
	Name    string `json:"name" validate:"required"`
	KVLevel int    `json:"kv_level"`
}

// CreateProject instantiates the procedure matching the voltage level.
func (e Engine) CreateProject(ctx context.Context, in CreateProjectInput) (Workflow, error) {
	if err := e.validate(in); err != nil {
		return Workflow{}, err
	}
	pfad := workflow.DeterminePfad(in.KVLevel)
	tpl := workflow.Template(pfad, domain.LangDE)
	p := emptyProject(e.newID(), in.Name, pfad, in.KVLevel, e.now().UTC())
	p.Stages = workflow.NewStages(tpl, e.newID)

	if err := e.Repo.Put(ctx, p); err != nil {
		return Workflow{}, fmt.Errorf("store project: %w", err)
	}
	e.logger().Debug("project created", zap.String("project_id", p.ID), zap.String("pfad", string(pfad)))
	e.record(ctx, events.Event{
		Type:       events.ProjectCreated,
		ProjectID:  p.ID,
		EntityKind: "project",
		EntityID:   p.ID,
		Payload:    events.Payload{"name": p.Name, "kv_level": p.KVLevel, "pfad": string(pfad)},
	})
	return Workflow{Project: p, Template: tpl}, nil
}

func emptyProject(id, name string, pfad domain.Pfad, kv int, created time.Time) domain.Project {
	return domain.Project{
		ID:                     id,
		Name:                   name,
		Pfad:                   pfad,
		KVLevel:                kv,
		StatesCrossed:          []string{},
		Stages:                 []domain.StageInstance{},
		Sections:               []domain.Section{},
		Permits:                []domain.PermitStatus{},
		Blockers:               []domain.Blocker{},
		GeoLayers:              []domain.GeoLayer{},
		LandParcels:            []domain.LandParcel{},
		Stakeholders:           []domain.Stakeholder{},
		HistoricalCases:        []domain.HistoricalCase{},
		Documents:              []domain.ProjectDocument{},
		ProjectTasks:           []domain.ProjectTask{},
		Risks:                  []domain.Risk{},
		RegulatoryRequirements: []domain.RegulatoryRequirement{},
		DraftTemplates:         []domain.DraftTemplate{},
		CreatedAt:              created,
	}
}

// ImportProject stores a fully formed project, such as demo data. Stage
// statuses are recomputed before storing.
func (e Engine) ImportProject(ctx context.Context, p domain.Project) error {
	if p.ID == "" {
		return errors.New("project id is required")
	}
	if !p.Pfad.Valid() {
		return fmt.Errorf("project %s: invalid procedure path %q", p.ID, p.Pfad)
	}
	if dups := workflow.DuplicateTaskIDs(&p); len(dups) > 0 {
		return fmt.Errorf("project %s: duplicate task ids %v", p.ID, dups)
	}
	workflow.Tasks(&p, func(t *domain.TaskInstance) {
		if t.FormData == nil {
			t.FormData = map[string]string{}
		}
		if t.CompletedChecklist == nil {
			t.CompletedChecklist = []int{}
		}
	})
	if p.CreatedAt.IsZero() {
		p.CreatedAt = e.now().UTC()
	}
	workflow.Evaluate(&p)
	if err := e.Repo.Put(ctx, p); err != nil {
		return fmt.Errorf("store project: %w", err)
	}
	e.record(ctx, events.Event{
		Type:       events.ProjectCreated,
		ProjectID:  p.ID,
		EntityKind: "project",
		EntityID:   p.ID,
		Payload:    events.Payload{"name": p.Name, "source": "import"},
	})
	return nil
}

// Workflow returns the project and its template in lang. Display strings
// of the project are translated when lang is English.
func (e Engine) Workflow(ctx context.Context, projectID string, lang domain.Lang) (Workflow, error) {
	lang = domain.ParseLang(string(lang))
	p, err := e.project(ctx, projectID, lang)
	if err != nil {
		return Workflow{}, err
	}
	workflow.TranslateProject(&p, lang)
	return Workflow{Project: p, Template: workflow.Template(p.Pfad, lang)}, nil
}

func (e Engine) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return e.Repo.List(ctx)
}

func (e Engine) project(ctx context.Context, id string, lang domain.Lang) (domain.Project, error) {
	p, err := e.Repo.Get(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return domain.Project{}, NotFoundError{Kind: KindProject, ID: id, Lang: lang}
	}
	if err != nil {
		return domain.Project{}, fmt.Errorf("load project %s: %w", id, err)
	}
	return p, nil
}

// TaskInput replaces a task's form data and checked checklist items.
type TaskInput struct {
	FormData           map[string]string `json:"form_data"`
	CompletedChecklist []int             `json:"completed_checklist" validate:"dive,min=0"`
}

func (in TaskInput) normalize() TaskInput {
	if in.FormData == nil {
		in.FormData = map[string]string{}
	}
	if in.CompletedChecklist == nil {
		in.CompletedChecklist = []int{}
	}
	return in
}

// CompleteTask marks the task done and stores the submitted data.
func (e Engine) CompleteTask(ctx context.Context, projectID, taskID string, in TaskInput, lang domain.Lang) (domain.Project, error) {
	if err := e.validate(in); err != nil {
		return domain.Project{}, err
	}
	in = in.normalize()
	return e.mutateTask(ctx, projectID, taskID, lang, events.TaskCompleted, func(t *domain.TaskInstance) {
		t.Status = domain.TaskDone
		t.FormData = in.FormData
		t.CompletedChecklist = in.CompletedChecklist
	})
}

// SaveTask stores a draft. A pending task moves to in_progress; other
// statuses are kept.
func (e Engine) SaveTask(ctx context.Context, projectID, taskID string, in TaskInput, lang domain.Lang) (domain.Project, error) {
	if err := e.validate(in); err != nil {
		return domain.Project{}, err
	}
	in = in.normalize()
	return e.mutateTask(ctx, projectID, taskID, lang, events.TaskSaved, func(t *domain.TaskInstance) {
		t.FormData = in.FormData
		t.CompletedChecklist = in.CompletedChecklist
		if t.Status == domain.TaskPending {
			t.Status = domain.TaskInProgress
		}
	})
}

// ReopenTask puts the task back to in_progress, keeping its data.
func (e Engine) ReopenTask(ctx context.Context, projectID, taskID string, lang domain.Lang) (domain.Project, error) {
	return e.mutateTask(ctx, projectID, taskID, lang, events.TaskReopened, func(t *domain.TaskInstance) {
		t.Status = domain.TaskInProgress
	})
}

func (e Engine) mutateTask(ctx context.Context, projectID, taskID string, lang domain.Lang, evtType string, apply func(*domain.TaskInstance)) (domain.Project, error) {
	lang = domain.ParseLang(string(lang))
	p, err := e.project(ctx, projectID, lang)
	if err != nil {
		return domain.Project{}, err
	}
	loc, ok := workflow.FindTask(&p, taskID)
	if !ok {
		return domain.Project{}, NotFoundError{Kind: KindTask, ID: taskID, Lang: lang}
	}
	task := workflow.Task(&p, loc)
	from := task.Status
	apply(task)
	now := e.now().UTC()
	task.UpdatedAt = &now
	to := task.Status

	workflow.Evaluate(&p)
	if err := e.Repo.Put(ctx, p); err != nil {
		return domain.Project{}, fmt.Errorf("store project: %w", err)
	}
	e.logger().Debug("task updated",
		zap.String("project_id", projectID),
		zap.String("task_id", taskID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)
	e.record(ctx, events.Event{
		Type:       evtType,
		ProjectID:  projectID,
		EntityKind: "task",
		EntityID:   taskID,
		Payload:    events.Payload{"from": string(from), "to": string(to), "section_id": loc.SectionID},
	})
	return p, nil
}

type FieldRequest struct {
	ProjectID      string      `json:"project_id" validate:"required"`
	TaskInstanceID string      `json:"task_instance_id" validate:"required"`
	FieldName      string      `json:"field_name" validate:"required"`
	FieldLabel     string      `json:"field_label"`
	Lang           domain.Lang `json:"lang"`
}

// GenerateField drafts text for one form field of a task.
func (e Engine) GenerateField(ctx context.Context, req FieldRequest) (string, error) {
	if err := e.validate(req); err != nil {
		return "", err
	}
	lang := domain.ParseLang(string(req.Lang))
	p, err := e.project(ctx, req.ProjectID, lang)
	if err != nil {
		return "", err
	}
	tplID, ok := workflow.TaskTemplateID(&p, req.TaskInstanceID)
	if !ok {
		return "", NotFoundError{Kind: KindTask, ID: req.TaskInstanceID, Lang: lang}
	}
	text, err := e.Text.Generate(textgen.FactsOf(p), textgen.Request{
		TemplateID: tplID,
		FieldName:  req.FieldName,
		FieldLabel: req.FieldLabel,
		Lang:       lang,
	})
	if err != nil {
		return "", fmt.Errorf("generate field %s: %w", req.FieldName, err)
	}
	return text, nil
}

const DefaultEmailAction = "assign_task"

type EmailAck struct {
	Status  string `json:"status"`
	EmailID string `json:"email_id"`
	Action  string `json:"action"`
}

// EmailAction acknowledges an inbox action. Nothing is delivered.
func (e Engine) EmailAction(ctx context.Context, emailID, action string) (EmailAck, error) {
	if emailID == "" {
		return EmailAck{}, errors.New("email id is required")
	}
	if action == "" {
		action = DefaultEmailAction
	}
	e.record(ctx, events.Event{
		Type:       events.EmailAction,
		EntityKind: "email",
		EntityID:   emailID,
		Payload:    events.Payload{"action": action},
	})
	return EmailAck{Status: "ok", EmailID: emailID, Action: action}, nil
}
