package textgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpermit/internal/domain"
)

var demoFacts = Facts{
	Name:       "Nord-Süd-Link Abschnitt Demo A",
	KVLevel:    380,
	Technology: "DC",
	LengthKm:   74.2,
	States:     []string{"BY", "HE"},
}

func TestTableEntriesRenderFacts(t *testing.T) {
	g := New()
	got, err := g.Generate(demoFacts, Request{TemplateID: "s1_t1", FieldName: "begruendung", Lang: domain.LangDE})
	require.NoError(t, err)
	assert.Contains(t, got, "BY und HE auf einer Länge von 74.2 km")

	got, err = g.Generate(demoFacts, Request{TemplateID: "s1_t2", FieldName: "bundeslaender", Lang: domain.LangEN})
	require.NoError(t, err)
	assert.Equal(t, "BY, HE", got)

	got, err = g.Generate(demoFacts, Request{TemplateID: "s1_t1", FieldName: "rechtsrahmen", Lang: domain.LangEN})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, `The project "Nord-Süd-Link Abschnitt Demo A" is listed`), got)
}

func TestEveryBuiltinTemplateRenders(t *testing.T) {
	g := New()
	for lang, table := range map[domain.Lang]map[string]string{domain.LangDE: tableDE, domain.LangEN: tableEN} {
		for key := range table {
			parts := strings.SplitN(key, "/", 2)
			got, err := g.Generate(demoFacts, Request{TemplateID: parts[0], FieldName: parts[1], Lang: lang})
			require.NoError(t, err, key)
			assert.NotEmpty(t, got, key)
			assert.NotContains(t, got, "{{", key)
		}
	}
	assert.Len(t, tableEN, len(tableDE))
}

func TestFallbackChainOrder(t *testing.T) {
	g := New()
	cases := []struct {
		name  string
		req   Request
		wants string
	}{
		{"recipient by label", Request{FieldName: "adresse", FieldLabel: "Empfänger", Lang: domain.LangDE}, "Tulpenfeld 4"},
		{"subject", Request{FieldName: "betreff_x", FieldLabel: "Betreff Antrag", Lang: domain.LangDE}, "– Betreff Antrag"},
		{"letter", Request{FieldName: "schreiben_behoerde", Lang: domain.LangDE}, "Sehr geehrte Damen und Herren"},
		{"justification by label", Request{FieldName: "x", FieldLabel: "Begründung", Lang: domain.LangDE}, "Die Maßnahme ist erforderlich"},
		{"methodology", Request{FieldName: "methodik_laerm", Lang: domain.LangEN}, "recognized methods"},
		{"summary", Request{FieldName: "ergebnis_kurz", Lang: domain.LangEN}, "comprises the construction of a 380 kV"},
		{"attachments", Request{FieldName: "anlagen_liste", Lang: domain.LangEN}, "Overview map (1:25,000)"},
		{"template id without table entry", Request{TemplateID: "s3_t4", FieldName: "grundwasser", FieldLabel: "Grundwasserbetroffenheit"}, "[Grundwasserbetroffenheit] – Entwurf"},
		{"unknown language", Request{FieldName: "foo", FieldLabel: "Foo", Lang: domain.Lang("fr")}, "Bundesländer: BY, HE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.Generate(demoFacts, tc.req)
			require.NoError(t, err)
			assert.Contains(t, got, tc.wants)
		})
	}
}

func TestFactsOf(t *testing.T) {
	p := domain.Project{Name: "X", KVLevel: 110, Technology: "AC", LengthKm: 12.5, StatesCrossed: []string{"NW"}}
	assert.Equal(t, Facts{Name: "X", KVLevel: 110, Technology: "AC", LengthKm: 12.5, States: []string{"NW"}}, FactsOf(p))
}
