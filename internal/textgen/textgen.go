// Package textgen produces canned draft text for task form fields. Known
// (task template, field) pairs come from a static table; everything else
// falls through an ordered chain of name and label matchers.
package textgen

import (
	"fmt"
	"strings"
	"text/template"

	"gridpermit/internal/domain"
)

// Facts are the project properties the texts are rendered with.
type Facts struct {
	Name       string
	KVLevel    int
	Technology string
	LengthKm   float64
	States     []string
}

func FactsOf(p domain.Project) Facts {
	return Facts{
		Name:       p.Name,
		KVLevel:    p.KVLevel,
		Technology: p.Technology,
		LengthKm:   p.LengthKm,
		States:     p.StatesCrossed,
	}
}

type Request struct {
	TemplateID string
	FieldName  string
	FieldLabel string
	Lang       domain.Lang
}

type matcher struct {
	match func(name, label string) bool
	text  string
	tmpl  *template.Template
}

func contains(s, sub string) bool { return strings.Contains(s, sub) }

func nameHas(subs ...string) func(name, label string) bool {
	return func(name, _ string) bool {
		for _, s := range subs {
			if strings.Contains(name, s) {
				return true
			}
		}
		return false
	}
}

func always(string, string) bool { return true }

var funcs = template.FuncMap{"join": strings.Join}

type Generator struct {
	table    map[domain.Lang]map[string]*template.Template
	fallback map[domain.Lang][]matcher
}

// New parses the built-in tables. It panics if a built-in template is
// malformed.
func New() *Generator {
	g := &Generator{
		table:    map[domain.Lang]map[string]*template.Template{},
		fallback: map[domain.Lang][]matcher{},
	}
	g.table[domain.LangDE] = parseTable("de", tableDE)
	g.table[domain.LangEN] = parseTable("en", tableEN)
	g.fallback[domain.LangDE] = parseChain("de", fallbackDE)
	g.fallback[domain.LangEN] = parseChain("en", fallbackEN)
	return g
}

func parseTable(lang string, src map[string]string) map[string]*template.Template {
	out := make(map[string]*template.Template, len(src))
	for key, text := range src {
		out[key] = template.Must(template.New(lang + ":" + key).Funcs(funcs).Parse(text))
	}
	return out
}

func parseChain(lang string, src []matcher) []matcher {
	out := make([]matcher, len(src))
	for i, m := range src {
		m.tmpl = template.Must(template.New(fmt.Sprintf("%s:fallback:%d", lang, i)).Funcs(funcs).Parse(m.text))
		out[i] = m
	}
	return out
}

type renderData struct {
	Facts
	Label string
}

// Generate returns the draft text for req. Unknown languages use German.
func (g *Generator) Generate(f Facts, req Request) (string, error) {
	lang := domain.ParseLang(string(req.Lang))
	data := renderData{Facts: f, Label: req.FieldLabel}

	if t, ok := g.table[lang][req.TemplateID+"/"+req.FieldName]; ok {
		return render(t, data)
	}
	name := strings.ToLower(req.FieldName)
	label := strings.ToLower(req.FieldLabel)
	for _, m := range g.fallback[lang] {
		if m.match(name, label) {
			return render(m.tmpl, data)
		}
	}
	return "", fmt.Errorf("no text for field %q", req.FieldName)
}

func render(t *template.Template, data renderData) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return b.String(), nil
}
