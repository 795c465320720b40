package server

import (
	"gridpermit/internal/domain"
	"gridpermit/internal/engine"
)

// Request payloads

type CreateProjectRequest struct {
	Name    string `json:"name" example:"Nord-Süd-Link Abschnitt B"`
	KVLevel int    `json:"kv_level" example:"380" doc:"Voltage level in kV; 220 and above follows NABEG"`
}

type TaskRequest struct {
	FormData           map[string]string `json:"form_data,omitempty"`
	CompletedChecklist []int             `json:"completed_checklist,omitempty" doc:"Indices of checked checklist items"`
}

func (r TaskRequest) input() engine.TaskInput {
	return engine.TaskInput{FormData: r.FormData, CompletedChecklist: r.CompletedChecklist}
}

type GenerateFieldRequest struct {
	ProjectID      string `json:"project_id"`
	TaskInstanceID string `json:"task_instance_id"`
	FieldName      string `json:"field_name"`
	FieldLabel     string `json:"field_label,omitempty"`
	Lang           string `json:"lang,omitempty" example:"de"`
}

// Response payloads

type WorkflowResponse struct {
	Project  domain.Project         `json:"project"`
	Template domain.ProcessTemplate `json:"template"`
}

func workflowResponse(wf engine.Workflow) WorkflowResponse {
	return WorkflowResponse{Project: wf.Project, Template: wf.Template}
}

type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

type CompleteTaskResponse struct {
	Status  string         `json:"status" example:"ok"`
	Project domain.Project `json:"project"`
}

type GenerateFieldResponse struct {
	Text string `json:"text"`
}

type EmailActionResponse struct {
	Status  string `json:"status" example:"ok"`
	EmailID string `json:"email_id"`
	Action  string `json:"action" example:"assign_task"`
}
