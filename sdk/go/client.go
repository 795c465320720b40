package gridpermitsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal GridPermit HTTP API client.
type Client struct {
	BaseURL     string
	BasePath    string
	Lang        string
	BearerToken string
	HTTPClient  *http.Client
	Timeout     time.Duration
}

// New creates a client with sane defaults. An empty Lang leaves the
// language to the server default.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:  baseURL,
		BasePath: "/api",
		Timeout:  10 * time.Second,
	}
}

// Task represents a task instance.
type Task struct {
	ID                 string            `json:"id"`
	TemplateID         string            `json:"template_id"`
	Status             string            `json:"status"`
	FormData           map[string]string `json:"form_data"`
	CompletedChecklist []int             `json:"completed_checklist"`
	UpdatedAt          *time.Time        `json:"updated_at"`
}

// Stage represents a stage instance.
type Stage struct {
	ID         string `json:"id"`
	TemplateID string `json:"template_id"`
	Status     string `json:"status"`
	Tasks      []Task `json:"tasks"`
}

// Section is a route section with its own stage progress.
type Section struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	KmStart           float64 `json:"km_start"`
	KmEnd             float64 `json:"km_end"`
	Region            string  `json:"region"`
	CurrentStageIndex int     `json:"current_stage_index"`
	Stages            []Stage `json:"stages"`
}

// Permit is one permit tracked for a section.
type Permit struct {
	ID         string `json:"id"`
	SectionID  string `json:"section_id"`
	PermitType string `json:"permit_type"`
	Label      string `json:"label"`
	Status     string `json:"status"`
}

// Project represents the API project model (partial).
type Project struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Pfad              string    `json:"pfad"`
	KVLevel           int       `json:"kv_level"`
	CurrentStageIndex int       `json:"current_stage_index"`
	Stages            []Stage   `json:"stages"`
	Sections          []Section `json:"sections"`
	Permits           []Permit  `json:"permits"`
	CreatedAt         time.Time `json:"created_at"`
}

// TaskTemplate describes one task of a stage template (partial).
type TaskTemplate struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Checklist []string `json:"checklist"`
}

// StageTemplate describes one stage of a procedure (partial).
type StageTemplate struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	LawReference string         `json:"law_reference"`
	Tasks        []TaskTemplate `json:"tasks"`
}

// Template is a procedure template.
type Template struct {
	Pfad   string          `json:"pfad"`
	Label  string          `json:"label"`
	Stages []StageTemplate `json:"stages"`
}

// Workflow pairs a project with its template.
type Workflow struct {
	Project  Project  `json:"project"`
	Template Template `json:"template"`
}

// TaskUpdate is the body of complete and save calls.
type TaskUpdate struct {
	FormData           map[string]string `json:"form_data,omitempty"`
	CompletedChecklist []int             `json:"completed_checklist,omitempty"`
}

// FieldRequest asks for a drafted form field.
type FieldRequest struct {
	ProjectID      string `json:"project_id"`
	TaskInstanceID string `json:"task_instance_id"`
	FieldName      string `json:"field_name"`
	FieldLabel     string `json:"field_label,omitempty"`
	Lang           string `json:"lang,omitempty"`
}

// EmailAck acknowledges an inbox action.
type EmailAck struct {
	Status  string `json:"status"`
	EmailID string `json:"email_id"`
	Action  string `json:"action"`
}

// APIError wraps non-2xx responses.
type APIError struct {
	StatusCode int
	Detail     string
	Code       string
	Body       string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error: status=%d code=%s detail=%s", e.StatusCode, e.Code, e.Detail)
	}
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}

// Health checks the API is up.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "health", nil, nil)
}

// CreateProject creates a project; the procedure follows from kvLevel.
func (c *Client) CreateProject(ctx context.Context, name string, kvLevel int) (Workflow, error) {
	body := map[string]any{
		"name":     name,
		"kv_level": kvLevel,
	}
	var resp Workflow
	err := c.do(ctx, http.MethodPost, "project/create", body, &resp)
	return resp, err
}

// Workflow fetches a project with its template in the client language.
func (c *Client) Workflow(ctx context.Context, projectID string) (Workflow, error) {
	var resp Workflow
	endpoint := fmt.Sprintf("project/%s/workflow", url.PathEscape(projectID))
	if c.Lang != "" {
		endpoint += "?lang=" + url.QueryEscape(c.Lang)
	}
	err := c.do(ctx, http.MethodGet, endpoint, nil, &resp)
	return resp, err
}

// ListProjects returns every project.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var resp []Project
	err := c.do(ctx, http.MethodGet, "projects", nil, &resp)
	return resp, err
}

// CompleteTask marks a task done and returns the updated project.
func (c *Client) CompleteTask(ctx context.Context, projectID, taskID string, update TaskUpdate) (Project, error) {
	var resp struct {
		Status  string  `json:"status"`
		Project Project `json:"project"`
	}
	err := c.do(ctx, http.MethodPost, c.taskPath(projectID, taskID, "complete"), update, &resp)
	return resp.Project, err
}

// SaveTask stores a draft of a task.
func (c *Client) SaveTask(ctx context.Context, projectID, taskID string, update TaskUpdate) error {
	return c.do(ctx, http.MethodPost, c.taskPath(projectID, taskID, "save"), update, nil)
}

// ReopenTask moves a task back to in_progress.
func (c *Client) ReopenTask(ctx context.Context, projectID, taskID string) error {
	return c.do(ctx, http.MethodPatch, c.taskPath(projectID, taskID, "reopen"), nil, nil)
}

// GenerateField returns drafted text for a form field.
func (c *Client) GenerateField(ctx context.Context, req FieldRequest) (string, error) {
	if req.Lang == "" {
		req.Lang = c.Lang
	}
	var resp struct {
		Text string `json:"text"`
	}
	err := c.do(ctx, http.MethodPost, "ai/generate-field", req, &resp)
	return resp.Text, err
}

// EmailAction triggers an inbox action. An empty action uses the server default.
func (c *Client) EmailAction(ctx context.Context, emailID, action string) (EmailAck, error) {
	endpoint := fmt.Sprintf("email/%s/action", url.PathEscape(emailID))
	if action != "" {
		endpoint += "?action_type=" + url.QueryEscape(action)
	}
	var resp EmailAck
	err := c.do(ctx, http.MethodPost, endpoint, nil, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	url := c.base() + "/" + strings.TrimLeft(endpoint, "/")
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.BearerToken)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(b)}
		var env struct {
			Detail string `json:"detail"`
			Error  struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if json.Unmarshal(b, &env) == nil {
			apiErr.Detail = env.Detail
			apiErr.Code = env.Error.Code
		}
		return apiErr
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) taskPath(projectID, taskID, action string) string {
	q := url.Values{"project_id": {projectID}}
	if c.Lang != "" {
		q.Set("lang", c.Lang)
	}
	return fmt.Sprintf("task/%s/%s?%s", url.PathEscape(taskID), action, q.Encode())
}

func (c *Client) base() string {
	base := strings.TrimRight(c.BaseURL, "/")
	if p := strings.Trim(c.BasePath, "/"); p != "" {
		base += "/" + p
	}
	return base
}
