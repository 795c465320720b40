package workflow

import "gridpermit/internal/domain"

// displayEN holds English renderings of the German display strings used in
// the demo data. Unknown strings are left as they are.
var displayEN = map[string]string{
	// sections
	"Bayern Nord":        "Northern Bavaria",
	"Grenzbereich BY-HE": "Border Area BY-HE",
	"Hessen Süd":         "Southern Hesse",
	"Bayern":             "Bavaria",
	"Hessen":             "Hesse",
	"Bayern/Hessen":      "Bavaria/Hesse",

	// permits
	"Naturschutzgenehmigung":                             "Nature conservation permit",
	"FFH-Verträglichkeitsprüfung":                        "Habitats Directive assessment",
	"Waldumwandlungsgenehmigung":                         "Forest conversion permit",
	"Waldumwandlungsgenehmigung (Grenzbereich)":          "Forest conversion permit (border area)",
	"Waldausgleichsnachweis":                             "Forest compensation evidence",
	"Wasserrechtliche Erlaubnis":                         "Water law permit",
	"Wasserrechtliche Erlaubnis (Hessen)":                "Water law permit (Hesse)",
	"Gewässerquerungsgenehmigung":                        "Water crossing permit",
	"Kreuzungsvereinbarung DB":                           "Crossing agreement DB",
	"Kreuzungsvereinbarung BAB":                          "Crossing agreement motorway",
	"Immissionsschutznachweis":                           "Immission control evidence",
	"Immissionsschutznachweis (Grenzbereich)":            "Immission control evidence (border area)",
	"Denkmalschutzrechtliche Genehmigung":                "Monument protection permit",
	"Denkmalschutzrechtliche Genehmigung (Bodendenkmal)": "Monument protection permit (archaeological)",
	"Denkmalschutzrechtliche Genehmigung (Hessen)":       "Monument protection permit (Hesse)",

	// context payload
	"Artenschutzkartierung unvollständig":           "Species survey incomplete",
	"Umweltplanung":                                 "Environmental planning",
	"Wegerechtsteam":                                "Rights-of-way team",
	"Projektsteckbrief":                             "Project profile",
	"Korridoralternativenbericht":                   "Corridor alternatives report",
	"Artenschutzbeitrag":                            "Species protection report",
	"Kartierung Brutzeitfenster abschließen":        "Complete breeding season survey",
	"Flurstücksliste mit Korridor V2 synchronisieren": "Synchronise parcel list with corridor V2",
	"Vollständige Artenliste + Kartenanhänge":       "Complete species list + map annexes",
	"Keine Geometrie-Konflikte > 5m":                "No geometry conflicts > 5m",
	"Zusatzkartierung + Trassenmikroshift":          "Additional survey + route micro-shift",
	"Frühzeitige Eigentümerdialoge + Alternativzufahrten": "Early owner dialogues + alternative access roads",
	"Eigentümergruppe A (Demo)":                     "Owner Group A (demo)",
	"Zuständige Planfeststellungsbehörde (Demo)":    "Responsible plan approval authority (demo)",
	"380-kV Leitung Waldquerung Süd":                "380 kV line forest crossing south",
	"Erdkabelabschnitt nahe Siedlung":               "Underground cable section near settlement",
}

func tr(s string) string {
	if v, ok := displayEN[s]; ok {
		return v
	}
	return s
}

// TranslateProject rewrites the display strings of p in place for lang.
// German is the stored language, so only LangEN changes anything. Callers
// must pass a copy they own.
func TranslateProject(p *domain.Project, lang domain.Lang) {
	if lang != domain.LangEN {
		return
	}
	for i := range p.Sections {
		p.Sections[i].Name = tr(p.Sections[i].Name)
		p.Sections[i].Region = tr(p.Sections[i].Region)
	}
	for i := range p.Permits {
		p.Permits[i].Label = tr(p.Permits[i].Label)
	}
	for i := range p.Blockers {
		p.Blockers[i].Title = tr(p.Blockers[i].Title)
		p.Blockers[i].OwnerRole = tr(p.Blockers[i].OwnerRole)
	}
	for i := range p.Documents {
		p.Documents[i].DocType = tr(p.Documents[i].DocType)
	}
	for i := range p.ProjectTasks {
		t := &p.ProjectTasks[i]
		t.Title = tr(t.Title)
		t.OwnerRole = tr(t.OwnerRole)
		t.DoneDefinition = tr(t.DoneDefinition)
	}
	for i := range p.Risks {
		p.Risks[i].Mitigation = tr(p.Risks[i].Mitigation)
		p.Risks[i].Owner = tr(p.Risks[i].Owner)
	}
	for i := range p.Stakeholders {
		p.Stakeholders[i].Name = tr(p.Stakeholders[i].Name)
	}
	for i := range p.HistoricalCases {
		p.HistoricalCases[i].Title = tr(p.HistoricalCases[i].Title)
	}
}
