package engine

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"gridpermit/internal/domain"
	"gridpermit/internal/repo"
)

const (
	KindProject = "project"
	KindTask    = "task"
)

// NotFoundError reports an unresolved project or task id. The message is
// in the caller's language.
type NotFoundError struct {
	Kind string
	ID   string
	Lang domain.Lang
}

func (e NotFoundError) Error() string {
	en := e.Lang == domain.LangEN
	switch {
	case e.Kind == KindTask && en:
		return "Task not found"
	case e.Kind == KindTask:
		return "Task nicht gefunden"
	case en:
		return "Project not found"
	default:
		return "Projekt nicht gefunden"
	}
}

func (e NotFoundError) Unwrap() error { return repo.ErrNotFound }

// NewValidator reports fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError wraps rejected input fields.
type ValidationError struct {
	Fields validator.ValidationErrors
}

func (e ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s failed %s", f.Field(), f.Tag()))
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

// Details lists each failing field by its json name.
func (e ValidationError) Details() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field()] = f.Tag()
	}
	return out
}
