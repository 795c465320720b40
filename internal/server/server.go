package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"gridpermit/internal/domain"
	"gridpermit/internal/engine"
)

// Config for the HTTP API handler.
type Config struct {
	Engine      engine.Engine
	BasePath    string
	Auth        AuthConfig
	CORSOrigins []string
	// StaticDir holds a built SPA served for non-API paths. Empty disables it.
	StaticDir   string
	// DefaultLang applies when a request names no language. Empty means de.
	DefaultLang domain.Lang
	Log         *zap.Logger
}

// langDefault resolves the lang query or body field of a request.
type langDefault domain.Lang

func (d langDefault) resolve(q string) domain.Lang {
	if q == "" {
		return domain.ParseLang(string(d))
	}
	return domain.ParseLang(q)
}

type apiErrorBody struct {
	Code    string         `json:"code" example:"not_found"`
	Message string         `json:"message" example:"Projekt nicht gefunden"`
	Details map[string]any `json:"details,omitempty" jsonschema:"type=object,additionalProperties=true" example:"{\"id\":\"P-1\"}"`
}

// apiError models the error envelope. Detail repeats the message at the top
// level for clients that only read "detail".
type apiError struct {
	status int
	Detail string       `json:"detail"`
	Body   apiErrorBody `json:"error"`
}

func (e *apiError) GetStatus() int { return e.status }
func (e *apiError) Error() string  { return e.Body.Message }

// New returns an HTTP handler exposing the GridPermit API.
func New(cfg Config) (http.Handler, error) {
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "/api"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	if basePath == "" {
		return nil, errors.New("base path must not be the root")
	}
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	huma.DefaultArrayNullable = false
	// Override Huma errors to use the envelope.
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		return newAPIError(status, "", msg, nil)
	}
	huma.NewErrorWithContext = func(_ huma.Context, status int, msg string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			// Schema/request validation errors are 400 bad_request.
			status = http.StatusBadRequest
		}
		var details map[string]any
		if len(errs) > 0 {
			details = map[string]any{"errors": errs}
		}
		return newAPIError(status, "", msg, details)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(requestLogger(log))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.Use(newAuthMiddleware(basePath, cfg.Auth))

	hcfg := huma.DefaultConfig("GridPermit API", "0.1.0")
	hcfg.Info.Description = "Workflow tracker for grid-expansion permitting procedures"
	hcfg.OpenAPIPath = "" // served below with the error schema attached
	hcfg.DocsPath = ""    // custom Swagger UI below
	api := humachi.New(router, hcfg)
	group := huma.NewGroup(api, basePath)

	registerDocs(router)
	registerHealth(group)
	lang := langDefault(cfg.DefaultLang)
	registerProjects(group, cfg.Engine, lang)
	registerTasks(group, cfg.Engine, lang)
	registerGenerateField(group, cfg.Engine, lang)
	registerEmail(group, cfg.Engine)
	registerOpenAPI(router, api, basePath, cfg.Auth.enabled())
	if cfg.StaticDir != "" {
		st, err := os.Stat(cfg.StaticDir)
		if err != nil {
			return nil, fmt.Errorf("static dir: %w", err)
		}
		if !st.IsDir() {
			return nil, fmt.Errorf("static dir %s is not a directory", cfg.StaticDir)
		}
		router.Get("/*", spaHandler(cfg.StaticDir, basePath))
	}
	return router, nil
}

func newAPIError(status int, code, message string, details map[string]any) huma.StatusError {
	if code == "" {
		code = defaultCodeForStatus(status)
	}
	return &apiError{
		status: status,
		Detail: message,
		Body: apiErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

func handleError(err error) huma.StatusError {
	if err == nil {
		return nil
	}
	var nf engine.NotFoundError
	if errors.As(err, &nf) {
		return newAPIError(http.StatusNotFound, "not_found", nf.Error(), map[string]any{"kind": nf.Kind, "id": nf.ID})
	}
	var ve engine.ValidationError
	if errors.As(err, &ve) {
		details := map[string]any{}
		for field, tag := range ve.Details() {
			details[field] = tag
		}
		return newAPIError(http.StatusBadRequest, "bad_request", ve.Error(), details)
	}
	return newAPIError(http.StatusInternalServerError, "internal_error", "internal error", map[string]any{"error": err.Error()})
}

func defaultCodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusUnprocessableEntity:
		return "validation_failed"
	case http.StatusInternalServerError:
		return "internal_error"
	default:
		return strings.ToLower(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	}
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			}
			log.Info("request", fields...)
		})
	}
}

func registerDocs(r chi.Router) {
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, swaggerHTML())
	})
}

func registerOpenAPI(r chi.Router, api huma.API, basePath string, auth bool) {
	var (
		once sync.Once
		doc  []byte
	)
	r.Get("/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() {
			oas := api.OpenAPI()
			ensureDefaultErrorResponses(oas)
			if auth {
				applyAuthSecurity(oas, basePath)
			}
			doc, _ = json.Marshal(oas)
		})
		w.Header().Set("Content-Type", "application/json")
		w.Write(doc)
	})
}

func ensureDefaultErrorResponses(oas *huma.OpenAPI) {
	if oas == nil || oas.Paths == nil || oas.Components == nil || oas.Components.Schemas == nil {
		return
	}
	errSchema := oas.Components.Schemas.Schema(reflect.TypeOf(apiError{}), true, "ApiError")
	for _, item := range oas.Paths {
		for _, op := range []*huma.Operation{
			item.Get, item.Put, item.Post, item.Delete, item.Options, item.Head, item.Patch, item.Trace,
		} {
			if op == nil {
				continue
			}
			if op.Responses == nil {
				op.Responses = map[string]*huma.Response{}
			}
			op.Responses["default"] = &huma.Response{
				Description: "Error",
				Content: map[string]*huma.MediaType{
					"application/json": {
						Schema: errSchema,
					},
				},
			}
		}
	}
}

func applyAuthSecurity(oas *huma.OpenAPI, basePath string) {
	if oas.Components == nil {
		oas.Components = &huma.Components{}
	}
	if oas.Components.SecuritySchemes == nil {
		oas.Components.SecuritySchemes = map[string]*huma.SecurityScheme{}
	}
	oas.Components.SecuritySchemes["bearerAuth"] = &huma.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
	}
	security := []map[string][]string{{"bearerAuth": {}}}
	oas.Security = security
	healthPath := path.Join(basePath, "health")
	for route, item := range oas.Paths {
		for _, op := range []*huma.Operation{
			item.Get, item.Put, item.Post, item.Delete, item.Options, item.Head, item.Patch, item.Trace,
		} {
			if op == nil {
				continue
			}
			if route == healthPath {
				op.Security = []map[string][]string{}
				continue
			}
			op.Security = security
		}
	}
}

func swaggerHTML() string {
	return `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>GridPermit API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
    <script>
      window.onload = () => {
        SwaggerUIBundle({
          url: '/openapi.json',
          dom_id: '#swagger-ui'
        });
      };
    </script>
  </body>
</html>`
}

// spaHandler serves files from dir and falls back to index.html so client
// side routes resolve. Unknown API paths get a JSON 404 instead.
func spaHandler(dir, basePath string) http.HandlerFunc {
	root := http.Dir(dir)
	files := http.FileServer(root)
	index := filepath.Join(dir, "index.html")
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == basePath || strings.HasPrefix(r.URL.Path, basePath+"/") {
			respondStatusError(w, newAPIError(http.StatusNotFound, "not_found", "Not Found", nil))
			return
		}
		name := path.Clean("/" + r.URL.Path)
		if f, err := root.Open(name); err == nil {
			st, serr := f.Stat()
			f.Close()
			if serr == nil && !st.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
		}
		http.ServeFile(w, r, index)
	}
}

func registerHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body StatusResponse `json:"body"`
	}, error) {
		return &struct {
			Body StatusResponse `json:"body"`
		}{Body: StatusResponse{Status: "ok"}}, nil
	})
}

func registerProjects(api huma.API, e engine.Engine, lang langDefault) {
	huma.Register(api, huma.Operation{
		OperationID: "create-project",
		Method:      http.MethodPost,
		Path:        "/project/create",
		Summary:     "Create project",
		Description: "Instantiates the NABEG workflow for 220 kV and above, EnWG otherwise.",
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, func(ctx context.Context, input *struct {
		Body CreateProjectRequest `json:"body"`
	}) (*struct {
		Body WorkflowResponse `json:"body"`
	}, error) {
		wf, err := e.CreateProject(ctx, engine.CreateProjectInput{Name: input.Body.Name, KVLevel: input.Body.KVLevel})
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body WorkflowResponse `json:"body"`
		}{Body: workflowResponse(wf)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-workflow",
		Method:      http.MethodGet,
		Path:        "/project/{project_id}/workflow",
		Summary:     "Project with its workflow template",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ProjectID string `path:"project_id"`
		Lang      string `query:"lang" doc:"de or en; empty uses the server default, anything else falls back to de"`
	}) (*struct {
		Body WorkflowResponse `json:"body"`
	}, error) {
		wf, err := e.Workflow(ctx, input.ProjectID, lang.resolve(input.Lang))
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body WorkflowResponse `json:"body"`
		}{Body: workflowResponse(wf)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-projects",
		Method:      http.MethodGet,
		Path:        "/projects",
		Summary:     "List projects",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body []domain.Project `json:"body"`
	}, error) {
		items, err := e.ListProjects(ctx)
		if err != nil {
			return nil, handleError(err)
		}
		if items == nil {
			items = []domain.Project{}
		}
		return &struct {
			Body []domain.Project `json:"body"`
		}{Body: items}, nil
	})
}

// TaskParams addresses one task of a project.
type TaskParams struct {
	TaskID    string `path:"task_id"`
	ProjectID string `query:"project_id" required:"true"`
	Lang      string `query:"lang" doc:"de or en; empty uses the server default"`
}

func registerTasks(api huma.API, e engine.Engine, lang langDefault) {
	huma.Register(api, huma.Operation{
		OperationID: "complete-task",
		Method:      http.MethodPost,
		Path:        "/task/{task_id}/complete",
		Summary:     "Complete task",
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		TaskParams
		Body TaskRequest `json:"body"`
	}) (*struct {
		Body CompleteTaskResponse `json:"body"`
	}, error) {
		p, err := e.CompleteTask(ctx, input.ProjectID, input.TaskID, input.Body.input(), lang.resolve(input.Lang))
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body CompleteTaskResponse `json:"body"`
		}{Body: CompleteTaskResponse{Status: "ok", Project: p}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "save-task",
		Method:      http.MethodPost,
		Path:        "/task/{task_id}/save",
		Summary:     "Save task draft",
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		TaskParams
		Body TaskRequest `json:"body"`
	}) (*struct {
		Body StatusResponse `json:"body"`
	}, error) {
		if _, err := e.SaveTask(ctx, input.ProjectID, input.TaskID, input.Body.input(), lang.resolve(input.Lang)); err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body StatusResponse `json:"body"`
		}{Body: StatusResponse{Status: "ok"}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "reopen-task",
		Method:      http.MethodPatch,
		Path:        "/task/{task_id}/reopen",
		Summary:     "Reopen task",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *TaskParams) (*struct {
		Body StatusResponse `json:"body"`
	}, error) {
		if _, err := e.ReopenTask(ctx, input.ProjectID, input.TaskID, lang.resolve(input.Lang)); err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body StatusResponse `json:"body"`
		}{Body: StatusResponse{Status: "ok"}}, nil
	})
}

func registerGenerateField(api huma.API, e engine.Engine, lang langDefault) {
	huma.Register(api, huma.Operation{
		OperationID: "generate-field",
		Method:      http.MethodPost,
		Path:        "/ai/generate-field",
		Summary:     "Draft text for a form field",
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		Body GenerateFieldRequest `json:"body"`
	}) (*struct {
		Body GenerateFieldResponse `json:"body"`
	}, error) {
		text, err := e.GenerateField(ctx, engine.FieldRequest{
			ProjectID:      input.Body.ProjectID,
			TaskInstanceID: input.Body.TaskInstanceID,
			FieldName:      input.Body.FieldName,
			FieldLabel:     input.Body.FieldLabel,
			Lang:           lang.resolve(input.Body.Lang),
		})
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body GenerateFieldResponse `json:"body"`
		}{Body: GenerateFieldResponse{Text: text}}, nil
	})
}

func registerEmail(api huma.API, e engine.Engine) {
	huma.Register(api, huma.Operation{
		OperationID: "email-action",
		Method:      http.MethodPost,
		Path:        "/email/{email_id}/action",
		Summary:     "Acknowledge an inbox action",
	}, func(ctx context.Context, input *struct {
		EmailID    string `path:"email_id"`
		ActionType string `query:"action_type" default:"assign_task"`
	}) (*struct {
		Body EmailActionResponse `json:"body"`
	}, error) {
		ack, err := e.EmailAction(ctx, input.EmailID, input.ActionType)
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body EmailActionResponse `json:"body"`
		}{Body: EmailActionResponse{Status: ack.Status, EmailID: ack.EmailID, Action: ack.Action}}, nil
	})
}
