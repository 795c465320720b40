package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTaskStatusDecodeRejectsUnknown(t *testing.T) {
	var task TaskInstance
	err := json.Unmarshal([]byte(`{"id":"t1","template_id":"s1_t1","status":"review"}`), &task)
	require.Error(t, err)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"t1","template_id":"s1_t1","status":"in_progress"}`), &task))
	assert.Equal(t, TaskInProgress, task.Status)
}

func TestStageStatusYAML(t *testing.T) {
	var stage StageInstance
	require.NoError(t, yaml.Unmarshal([]byte("id: s\ntemplate_id: x\nstatus: completed\n"), &stage))
	assert.Equal(t, StageCompleted, stage.Status)

	err := yaml.Unmarshal([]byte("id: s\ntemplate_id: x\nstatus: finished\n"), &stage)
	assert.Error(t, err)
}

func TestParseLang(t *testing.T) {
	assert.Equal(t, LangEN, ParseLang("en"))
	assert.Equal(t, LangDE, ParseLang("de"))
	assert.Equal(t, LangDE, ParseLang("fr"))
	assert.Equal(t, LangDE, ParseLang(""))
}

func TestPfadDecode(t *testing.T) {
	var p Pfad
	require.NoError(t, p.UnmarshalText([]byte("EnWG")))
	assert.Equal(t, PfadEnWG, p)
	assert.Error(t, p.UnmarshalText([]byte("ROG")))
}
