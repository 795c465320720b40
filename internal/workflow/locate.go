package workflow

import (
	"sort"

	"gridpermit/internal/domain"
)

// Locator addresses a task inside a project. SectionID is empty for tasks
// in the top-level stage list.
type Locator struct {
	SectionID  string
	StageIndex int
	TaskIndex  int
}

// FindTask searches sections in order, then the top-level stages. Task ids
// are expected to be unique within a project; the first match wins.
func FindTask(p *domain.Project, taskID string) (Locator, bool) {
	for _, sec := range p.Sections {
		if si, ti, ok := findIn(sec.Stages, taskID); ok {
			return Locator{SectionID: sec.ID, StageIndex: si, TaskIndex: ti}, true
		}
	}
	if si, ti, ok := findIn(p.Stages, taskID); ok {
		return Locator{StageIndex: si, TaskIndex: ti}, true
	}
	return Locator{}, false
}

func findIn(stages []domain.StageInstance, taskID string) (int, int, bool) {
	for si, st := range stages {
		for ti, t := range st.Tasks {
			if t.ID == taskID {
				return si, ti, true
			}
		}
	}
	return 0, 0, false
}

// Task resolves loc to a pointer into p. It returns nil when loc does not
// address an existing task.
func Task(p *domain.Project, loc Locator) *domain.TaskInstance {
	stages := p.Stages
	if loc.SectionID != "" {
		stages = nil
		for i := range p.Sections {
			if p.Sections[i].ID == loc.SectionID {
				stages = p.Sections[i].Stages
				break
			}
		}
	}
	if loc.StageIndex < 0 || loc.StageIndex >= len(stages) {
		return nil
	}
	tasks := stages[loc.StageIndex].Tasks
	if loc.TaskIndex < 0 || loc.TaskIndex >= len(tasks) {
		return nil
	}
	return &tasks[loc.TaskIndex]
}

// TaskTemplateID returns the template id of the task instance taskID.
func TaskTemplateID(p *domain.Project, taskID string) (string, bool) {
	loc, ok := FindTask(p, taskID)
	if !ok {
		return "", false
	}
	return Task(p, loc).TemplateID, true
}

// DuplicateTaskIDs lists task ids that occur more than once in p, sorted.
func DuplicateTaskIDs(p *domain.Project) []string {
	seen := map[string]int{}
	count := func(stages []domain.StageInstance) {
		for _, st := range stages {
			for _, t := range st.Tasks {
				seen[t.ID]++
			}
		}
	}
	for _, sec := range p.Sections {
		count(sec.Stages)
	}
	count(p.Stages)

	var dups []string
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	sort.Strings(dups)
	return dups
}

// Tasks visits every task instance of p in lookup order.
func Tasks(p *domain.Project, fn func(t *domain.TaskInstance)) {
	for i := range p.Sections {
		visit(p.Sections[i].Stages, fn)
	}
	visit(p.Stages, fn)
}

func visit(stages []domain.StageInstance, fn func(t *domain.TaskInstance)) {
	for si := range stages {
		for ti := range stages[si].Tasks {
			fn(&stages[si].Tasks[ti])
		}
	}
}
