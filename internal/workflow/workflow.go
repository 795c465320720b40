package workflow

import (
	"gridpermit/internal/domain"
)

// NABEGThresholdKV is the lowest voltage level that falls under the
// cross-state procedure.
const NABEGThresholdKV = 220

func DeterminePfad(kv int) domain.Pfad {
	if kv >= NABEGThresholdKV {
		return domain.PfadNABEG
	}
	return domain.PfadEnWG
}

// Template returns the procedure template for pfad in lang. Unknown
// languages fall back to German. The returned value shares backing arrays
// with the registry and must not be mutated.
func Template(pfad domain.Pfad, lang domain.Lang) domain.ProcessTemplate {
	en := lang == domain.LangEN
	switch {
	case pfad == domain.PfadEnWG && en:
		return enwgEN
	case pfad == domain.PfadEnWG:
		return enwgDE
	case en:
		return nabegEN
	default:
		return nabegDE
	}
}

// NewStages instantiates empty stage and task instances for tpl. The first
// stage starts active.
func NewStages(tpl domain.ProcessTemplate, newID func() string) []domain.StageInstance {
	stages := make([]domain.StageInstance, 0, len(tpl.Stages))
	for i, st := range tpl.Stages {
		tasks := make([]domain.TaskInstance, 0, len(st.Tasks))
		for _, tt := range st.Tasks {
			tasks = append(tasks, domain.TaskInstance{
				ID:                 newID(),
				TemplateID:         tt.ID,
				Status:             domain.TaskPending,
				FormData:           map[string]string{},
				CompletedChecklist: []int{},
			})
		}
		status := domain.StagePending
		if i == 0 {
			status = domain.StageActive
		}
		stages = append(stages, domain.StageInstance{
			ID:         newID(),
			TemplateID: st.ID,
			Status:     status,
			Tasks:      tasks,
		})
	}
	return stages
}

// Evaluate re-derives every stage status and current-stage pointer of p.
// Each section is evaluated on its own, then the top-level stage list once.
func Evaluate(p *domain.Project) {
	for i := range p.Sections {
		sec := &p.Sections[i]
		sec.CurrentStageIndex = evaluateStages(sec.Stages)
	}
	p.CurrentStageIndex = evaluateStages(p.Stages)
}

func evaluateStages(stages []domain.StageInstance) int {
	for i := range stages {
		stages[i].Status = stageStatus(stages[i])
	}
	for i, st := range stages {
		if st.Status != domain.StageCompleted {
			return i
		}
	}
	if len(stages) == 0 {
		return 0
	}
	return len(stages) - 1
}

func stageStatus(st domain.StageInstance) domain.StageStatus {
	allDone := true
	anyStarted := false
	for _, t := range st.Tasks {
		if t.Status != domain.TaskDone {
			allDone = false
		}
		if t.Status != domain.TaskPending {
			anyStarted = true
		}
	}
	switch {
	case allDone && len(st.Tasks) > 0:
		return domain.StageCompleted
	case anyStarted:
		return domain.StageActive
	case st.Status == domain.StageCompleted:
		return domain.StagePending
	default:
		return st.Status
	}
}
