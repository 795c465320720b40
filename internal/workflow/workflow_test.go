package workflow

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpermit/internal/domain"
)

func seqID() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newProject(kv int) *domain.Project {
	pfad := DeterminePfad(kv)
	return &domain.Project{
		ID:      "p1",
		Name:    "Test",
		Pfad:    pfad,
		KVLevel: kv,
		Stages:  NewStages(Template(pfad, domain.LangDE), seqID()),
	}
}

func assertInvariants(t *testing.T, stages []domain.StageInstance, idx int) {
	t.Helper()
	first := -1
	for i, st := range stages {
		allDone := len(st.Tasks) > 0
		for _, task := range st.Tasks {
			if task.Status != domain.TaskDone {
				allDone = false
			}
		}
		assert.Equal(t, allDone, st.Status == domain.StageCompleted, "stage %d", i)
		if first < 0 && st.Status != domain.StageCompleted {
			first = i
		}
	}
	if first < 0 {
		first = len(stages) - 1
	}
	assert.Equal(t, first, idx)
}

func TestDeterminePfad(t *testing.T) {
	cases := map[int]domain.Pfad{
		110: domain.PfadEnWG,
		219: domain.PfadEnWG,
		220: domain.PfadNABEG,
		380: domain.PfadNABEG,
	}
	for kv, want := range cases {
		assert.Equal(t, want, DeterminePfad(kv), "kv=%d", kv)
	}
}

func TestTemplateShapes(t *testing.T) {
	nabeg := Template(domain.PfadNABEG, domain.LangDE)
	require.Len(t, nabeg.Stages, 3)
	assert.Len(t, nabeg.Stages[0].Tasks, 3)
	assert.Len(t, nabeg.Stages[1].Tasks, 4)
	assert.Len(t, nabeg.Stages[2].Tasks, 6)

	enwg := Template(domain.PfadEnWG, domain.LangDE)
	require.Len(t, enwg.Stages, 3)
	for _, st := range enwg.Stages {
		assert.Len(t, st.Tasks, 1)
	}
}

func TestTemplateLanguagesShareStructure(t *testing.T) {
	for _, pfad := range []domain.Pfad{domain.PfadNABEG, domain.PfadEnWG} {
		de := Template(pfad, domain.LangDE)
		en := Template(pfad, domain.LangEN)
		require.Len(t, en.Stages, len(de.Stages))
		for i := range de.Stages {
			assert.Equal(t, de.Stages[i].ID, en.Stages[i].ID)
			require.Len(t, en.Stages[i].Tasks, len(de.Stages[i].Tasks))
			for j := range de.Stages[i].Tasks {
				dt, et := de.Stages[i].Tasks[j], en.Stages[i].Tasks[j]
				assert.Equal(t, dt.ID, et.ID)
				assert.Len(t, et.Checklist, len(dt.Checklist), dt.ID)
				require.Len(t, et.FormFields, len(dt.FormFields), dt.ID)
				for k := range dt.FormFields {
					assert.Equal(t, dt.FormFields[k].Name, et.FormFields[k].Name)
				}
			}
		}
	}
	assert.Equal(t, "Scope & Legal Framework", Template(domain.PfadNABEG, domain.LangEN).Stages[0].Title)
	assert.Equal(t, "Scope & Rechtsrahmen", Template(domain.PfadNABEG, domain.Lang("fr")).Stages[0].Title)
}

func TestNewStagesInitialState(t *testing.T) {
	p := newProject(380)
	require.Len(t, p.Stages, 3)
	assert.Equal(t, domain.StageActive, p.Stages[0].Status)
	for _, st := range p.Stages[1:] {
		assert.Equal(t, domain.StagePending, st.Status)
	}
	Tasks(p, func(task *domain.TaskInstance) {
		assert.Equal(t, domain.TaskPending, task.Status)
		assert.NotNil(t, task.FormData)
	})
	assert.Empty(t, DuplicateTaskIDs(p))
}

func TestCompletingFirstStageAdvancesPointer(t *testing.T) {
	p := newProject(380)
	for i := range p.Stages[0].Tasks {
		p.Stages[0].Tasks[i].Status = domain.TaskDone
	}
	Evaluate(p)

	assert.Equal(t, domain.StageCompleted, p.Stages[0].Status)
	assert.Equal(t, 1, p.CurrentStageIndex)
	assertInvariants(t, p.Stages, p.CurrentStageIndex)
}

func TestAllCompletedPointsAtLastStage(t *testing.T) {
	p := newProject(110)
	Tasks(p, func(task *domain.TaskInstance) { task.Status = domain.TaskDone })
	Evaluate(p)
	assert.Equal(t, 2, p.CurrentStageIndex)
	assertInvariants(t, p.Stages, p.CurrentStageIndex)
}

func TestReopenRegressesStage(t *testing.T) {
	p := newProject(380)
	for i := range p.Stages[0].Tasks {
		p.Stages[0].Tasks[i].Status = domain.TaskDone
	}
	Evaluate(p)
	require.Equal(t, domain.StageCompleted, p.Stages[0].Status)

	p.Stages[0].Tasks[1].Status = domain.TaskInProgress
	Evaluate(p)
	assert.Equal(t, domain.StageActive, p.Stages[0].Status)
	assert.Equal(t, 0, p.CurrentStageIndex)
}

func TestStaleCompletedDropsToPending(t *testing.T) {
	stages := []domain.StageInstance{{
		ID:     "s",
		Status: domain.StageCompleted,
		Tasks:  []domain.TaskInstance{{ID: "t", Status: domain.TaskPending}},
	}}
	idx := evaluateStages(stages)
	assert.Equal(t, domain.StagePending, stages[0].Status)
	assert.Equal(t, 0, idx)
}

func TestEmptyStageNeverCompletes(t *testing.T) {
	stages := []domain.StageInstance{
		{ID: "a", Status: domain.StageActive},
		{ID: "b", Status: domain.StageCompleted},
	}
	idx := evaluateStages(stages)
	assert.Equal(t, domain.StageActive, stages[0].Status)
	assert.Equal(t, domain.StagePending, stages[1].Status)
	assert.Equal(t, 0, idx)

	assert.Equal(t, 0, evaluateStages(nil))
}

func TestEvaluateSectionsIndependently(t *testing.T) {
	tpl := Template(domain.PfadNABEG, domain.LangDE)
	gen := seqID()
	p := &domain.Project{
		Pfad: domain.PfadNABEG,
		Sections: []domain.Section{
			{ID: "a", Stages: NewStages(tpl, gen)},
			{ID: "b", Stages: NewStages(tpl, gen)},
		},
	}
	for i := range p.Sections[0].Stages[0].Tasks {
		p.Sections[0].Stages[0].Tasks[i].Status = domain.TaskDone
	}
	p.Sections[0].Stages[1].Tasks[0].Status = domain.TaskInProgress
	Evaluate(p)

	assert.Equal(t, 1, p.Sections[0].CurrentStageIndex)
	assert.Equal(t, domain.StageActive, p.Sections[0].Stages[1].Status)
	assert.Equal(t, 0, p.Sections[1].CurrentStageIndex)
	assert.Equal(t, 0, p.CurrentStageIndex)
	for _, sec := range p.Sections {
		assertInvariants(t, sec.Stages, sec.CurrentStageIndex)
	}
}

func TestFindTask(t *testing.T) {
	tpl := Template(domain.PfadEnWG, domain.LangDE)
	gen := seqID()
	p := &domain.Project{
		Sections: []domain.Section{{ID: "sec", Stages: NewStages(tpl, gen)}},
		Stages:   NewStages(tpl, gen),
	}
	secTask := p.Sections[0].Stages[2].Tasks[0].ID
	topTask := p.Stages[1].Tasks[0].ID

	loc, ok := FindTask(p, secTask)
	require.True(t, ok)
	if diff := cmp.Diff(Locator{SectionID: "sec", StageIndex: 2, TaskIndex: 0}, loc); diff != "" {
		t.Fatalf("locator mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, secTask, Task(p, loc).ID)

	loc, ok = FindTask(p, topTask)
	require.True(t, ok)
	assert.Equal(t, Locator{StageIndex: 1}, loc)

	tplID, ok := TaskTemplateID(p, topTask)
	require.True(t, ok)
	assert.Equal(t, "enwg_s2_t1", tplID)

	_, ok = FindTask(p, "missing")
	assert.False(t, ok)
	_, ok = TaskTemplateID(p, "missing")
	assert.False(t, ok)
	assert.Nil(t, Task(p, Locator{SectionID: "nope"}))
}

func TestDuplicateTaskIDs(t *testing.T) {
	p := newProject(110)
	p.Stages[2].Tasks[0].ID = p.Stages[0].Tasks[0].ID
	assert.Equal(t, []string{p.Stages[0].Tasks[0].ID}, DuplicateTaskIDs(p))
}

func TestTranslateProject(t *testing.T) {
	p := &domain.Project{
		Sections: []domain.Section{{Name: "Bayern Nord", Region: "Bayern"}},
		Permits:  []domain.PermitStatus{{Label: "Naturschutzgenehmigung"}, {Label: "Sonderfall"}},
	}
	TranslateProject(p, domain.LangDE)
	assert.Equal(t, "Bayern Nord", p.Sections[0].Name)

	TranslateProject(p, domain.LangEN)
	assert.Equal(t, "Northern Bavaria", p.Sections[0].Name)
	assert.Equal(t, "Bavaria", p.Sections[0].Region)
	assert.Equal(t, "Nature conservation permit", p.Permits[0].Label)
	assert.Equal(t, "Sonderfall", p.Permits[1].Label)
}
