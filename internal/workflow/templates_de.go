package workflow

import "gridpermit/internal/domain"

func field(name, label, typ string) domain.FormField {
	return domain.FormField{Name: name, Label: label, Type: typ}
}

var nabegDE = domain.ProcessTemplate{
	Pfad:        domain.PfadNABEG,
	Label:       "NABEG – Bundesfachplanung (Höchstspannung)",
	Description: "Verfahren nach dem Netzausbaubeschleunigungsgesetz für Höchstspannungsleitungen (ab 220 kV).",
	Stages: []domain.StageTemplate{
		{
			ID:           "s1_scope_recht",
			Title:        "Scope & Rechtsrahmen",
			LawReference: "§ 4ff. NABEG / BBPlG",
			Description:  "Identifikation des anwendbaren Rechtsrahmens, Erstellung des Projektsteckbriefs und initiale Stakeholder-Erfassung.",
			InfoText: "§ 4 NABEG i.V.m. BBPlG: Die im Bundesbedarfsplangesetz als länderübergreifend " +
				"oder grenzüberschreitend gekennzeichneten Vorhaben unterliegen dem NABEG. " +
				"Der Vorhabenträger identifiziert den anwendbaren Rechtsrahmen und bereitet " +
				"die erforderlichen Antragsunterlagen vor.",
			Tasks: []domain.TaskTemplate{
				{
					ID:          "s1_t1",
					Title:       "Anwendbares Recht identifizieren",
					Description: "Prüfen Sie den anwendbaren Rechtsrahmen (NABEG vs. EnWG) und identifizieren Sie die zuständige Behörde.",
					FormFields: []domain.FormField{
						field("rechtsrahmen", "Anwendbarer Rechtsrahmen", "textarea"),
						field("zustaendige_behoerde", "Zuständige Behörde", "text"),
						field("begruendung", "Begründung der Zuordnung", "textarea"),
					},
				},
				{
					ID:          "s1_t2",
					Title:       "Projektsteckbrief erstellen",
					Description: "Erstellen Sie den Projektsteckbrief mit allen technischen und räumlichen Eckdaten.",
					FormFields: []domain.FormField{
						field("vorhaben_titel", "Vorhabenbezeichnung", "text"),
						field("technologie", "Technologie & Spannungsebene", "text"),
						field("trassenlaenge", "Trassenlänge", "text"),
						field("bundeslaender", "Betroffene Bundesländer", "text"),
						field("zusammenfassung", "Projektzusammenfassung", "textarea"),
					},
				},
				{
					ID:          "s1_t3",
					Title:       "Stakeholder-Ersterfassung durchführen",
					Description: "Identifizieren Sie alle relevanten Stakeholder: Behörden, Grundeigentümer, Verbände.",
					FormFields: []domain.FormField{
						field("behoerden", "Beteiligte Behörden", "textarea"),
						field("eigentuemer", "Betroffene Grundeigentümer", "textarea"),
						field("verbaende", "Relevante Verbände & TöB", "textarea"),
					},
				},
			},
		},
		{
			ID:           "s2_korridor",
			Title:        "Korridorfindung",
			LawReference: "§ 6 NABEG",
			Description:  "Definition und Bewertung von Trassenkorridoralternativen, GIS-Analyse und Erstellung des Korridoralternativenberichts.",
			InfoText: "§ 6 NABEG: Der Vorhabenträger beantragt die Bundesfachplanung bei der " +
				"Bundesnetzagentur. Hierzu gehört die Darstellung der in Betracht kommenden " +
				"Trassenkorridore mit einer Bewertung der Raumverträglichkeit. Die BNetzA " +
				"führt anschließend eine Antragskonferenz durch.",
			Tasks: []domain.TaskTemplate{
				{
					ID:          "s2_t1",
					Title:       "Korridoralternativen definieren",
					Description: "Definieren Sie mindestens zwei Trassenkorridore mit technischer Bewertung.",
					FormFields: []domain.FormField{
						field("korridor_a", "Korridor A – Beschreibung", "textarea"),
						field("korridor_b", "Korridor B – Beschreibung", "textarea"),
						field("vorzugskorridor", "Vorzugskorridor", "text"),
						field("begruendung_auswahl", "Begründung der Vorzugswahl", "textarea"),
					},
				},
				{
					ID:          "s2_t2",
					Title:       "GIS-Verschneidung durchführen",
					Description: "Führen Sie eine GIS-gestützte Raumanalyse mit Schutzgebiets- und Infrastruktur-Layern durch.",
					FormFields: []domain.FormField{
						field("schutzgebiete", "Betroffene Schutzgebiete", "textarea"),
						field("waldanteil", "Waldquerungen", "textarea"),
						field("siedlungsabstand", "Siedlungsabstände", "textarea"),
						field("konflikte", "Identifizierte Konflikte", "textarea"),
					},
				},
				{
					ID:          "s2_t3",
					Title:       "Korridoralternativenbericht erstellen",
					Description: "Erstellen Sie den formellen Bericht zum Vergleich der Korridoralternativen.",
					FormFields: []domain.FormField{
						field("methodik", "Bewertungsmethodik", "textarea"),
						field("bewertungsergebnis", "Bewertungsergebnis", "textarea"),
						field("empfehlung", "Empfehlung", "textarea"),
					},
				},
				{
					ID:          "s2_t4",
					Title:       "Kreuzungsvereinbarungen abstimmen",
					Description: "Stimmen Sie Kreuzungen mit Bahn, Straßen, Wasserstraßen und Fremdleitungen mit den Baulastträgern ab.",
					FormFields: []domain.FormField{
						field("kreuzung_bahn", "Kreuzungen Bahnstrecken", "textarea"),
						field("kreuzung_strasse", "Kreuzungen Straßen/BAB", "textarea"),
						field("kreuzung_wasserstrasse", "Kreuzungen Bundeswasserstraßen", "textarea"),
						field("kreuzung_sonstige", "Sonstige Kreuzungen (Gewässer, Fremdleitungen)", "textarea"),
						field("profilplaene", "Profilpläne", "textarea"),
						field("schutzmassnahmen_kreuzung", "Schutzmaßnahmen während Bau", "textarea"),
						field("kostenteilung", "Kostenteilung", "textarea"),
						field("vereinbarungen_status", "Status der Vereinbarungen", "text"),
					},
					Checklist: []string{
						"Kreuzungsobjekte vollständig erfasst",
						"Baulastträger identifiziert",
						"DB-Antrag (Ril 878) eingereicht",
						"Zustimmung Autobahn GmbH eingeholt",
						"WSV-Strom- und schifffahrtspolizeiliche Genehmigung geprüft",
						"Fremdleitungsbetreiber angefragt",
						"Profilpläne erstellt",
						"Schutzmaßnahmenkonzept abgestimmt",
						"Kostenteilung geklärt",
						"Vereinbarungen unterzeichnet",
					},
				},
			},
		},
		{
			ID:           "s3_untersuchungsrahmen",
			Title:        "Untersuchungsrahmen",
			LawReference: "§ 7 NABEG",
			Description:  "Erstellung des Artenschutzbeitrags, der umweltfachlichen Scoping-Unterlage und behördlicher Anfragen.",
			InfoText: "§ 7 NABEG: Die BNetzA legt nach Durchführung der Antragskonferenz den " +
				"Untersuchungsrahmen für die Bundesfachplanung fest. Der Vorhabenträger " +
				"erstellt die festgelegten Unterlagen, darunter den Umweltbericht und " +
				"artenschutzrechtliche Prüfungen.",
			Tasks: []domain.TaskTemplate{
				{
					ID:          "s3_t1",
					Title:       "Artenschutzbeitrag erstellen",
					Description: "Erstellen Sie den Artenschutzbeitrag (ASP Stufe I/II) mit Kartierungsdaten und Maßnahmenkonzept.",
					FormFields: []domain.FormField{
						field("betroffene_arten", "Betroffene Arten", "textarea"),
						field("kartierungsstatus", "Kartierungsstatus", "textarea"),
						field("vermeidungsmassnahmen", "Vermeidungsmaßnahmen", "textarea"),
						field("kompensation", "Kompensationsmaßnahmen", "textarea"),
					},
				},
				{
					ID:          "s3_t2",
					Title:       "Umweltfachliche Scoping-Unterlage erstellen",
					Description: "Erstellen Sie die Scoping-Unterlage für die Umweltverträglichkeitsprüfung.",
					FormFields: []domain.FormField{
						field("schutzgueter", "Betroffene Schutzgüter", "textarea"),
						field("untersuchungsraum", "Untersuchungsraum & Abgrenzung", "textarea"),
						field("methodik_umwelt", "UVP-Methodik", "textarea"),
					},
					Checklist: []string{
						"Schutzgut Mensch bewertet",
						"Schutzgut Tiere/Pflanzen/Biodiversität bewertet",
						"Schutzgut Boden/Fläche bewertet",
						"Schutzgut Wasser bewertet",
						"Schutzgut Klima/Luft bewertet",
						"Schutzgut Landschaft bewertet",
						"Schutzgut kulturelles Erbe bewertet",
					},
				},
				{
					ID:          "s3_t3",
					Title:       "Forstbehördliche Anfrage vorbereiten",
					Description: "Erstellen Sie die formelle Anfrage an die zuständige Forstbehörde zur Waldumwandlung.",
					FormFields: []domain.FormField{
						field("empfaenger", "Empfänger (Forstbehörde)", "text"),
						field("betreff", "Betreff", "text"),
						field("anschreiben", "Anschreiben", "textarea"),
						field("anlagen", "Anlagenverzeichnis", "textarea"),
					},
				},
				{
					ID:          "s3_t4",
					Title:       "Wasserrechtliche Belange klären",
					Description: "Erfassen Sie Gewässerquerungen und Grundwasserbetroffenheit und bereiten Sie die wasserrechtliche Erlaubnis vor.",
					FormFields: []domain.FormField{
						field("gewaesserquerungen", "Gewässerquerungen", "textarea"),
						field("grundwasser", "Grundwasserbetroffenheit", "textarea"),
						field("schutzgebiete_wasser", "Wasserschutz- und Überschwemmungsgebiete", "textarea"),
						field("hydrogeologie", "Hydrogeologisches Gutachten", "textarea"),
						field("schutzmassnahmen_wasser", "Gewässerschutzmaßnahmen", "textarea"),
						field("antrag_status_wasser", "Antragsstatus", "text"),
					},
					Checklist: []string{
						"Gewässerquerungen erfasst",
						"Grundwasserflurabstände ermittelt",
						"Wasserschutzgebiete geprüft",
						"Überschwemmungsgebiete geprüft",
						"Hydrogeologisches Gutachten beauftragt",
						"Bauwasserhaltung bemessen",
						"Gewässerschutzkonzept erstellt",
						"Unterlagen an Wasserbehörde übermittelt",
						"Erlaubnis erteilt",
					},
				},
				{
					ID:          "s3_t5",
					Title:       "Denkmalschutz prüfen",
					Description: "Prüfen Sie Bau- und Bodendenkmäler im Trassenbereich und stimmen Sie Prospektion und Auflagen mit dem Landesamt ab.",
					FormFields: []domain.FormField{
						field("bodendenkmale", "Bodendenkmäler", "textarea"),
						field("baudenkmale", "Baudenkmäler & Ensembles", "textarea"),
						field("prospektion", "Prospektion", "textarea"),
						field("rettungsgrabung", "Rettungsgrabung", "textarea"),
						field("trassenoptimierung", "Trassenoptimierung", "textarea"),
						field("auflagen_denkmal", "Auflagen Denkmalbehörde", "textarea"),
					},
					Checklist: []string{
						"Denkmalliste ausgewertet",
						"Landesamt für Denkmalpflege beteiligt",
						"Feldbegehung durchgeführt",
						"Geomagnetische Prospektion durchgeführt",
						"Trassenvarianten geprüft",
						"Grabungskonzept abgestimmt",
						"Denkmalrechtliche Erlaubnis beantragt",
					},
				},
				{
					ID:          "s3_t6",
					Title:       "Immissionsschutz nachweisen",
					Description: "Weisen Sie die Einhaltung der Grenzwerte nach 26. BImSchV und TA Lärm an den maßgeblichen Immissionsorten nach.",
					FormFields: []domain.FormField{
						field("leitungstyp", "Leitungstyp & Betriebsdaten", "text"),
						field("immissionsorte", "Maßgebliche Immissionsorte", "textarea"),
						field("emf_berechnung", "EMF-Berechnung (26. BImSchV)", "textarea"),
						field("schallprognose", "Schallprognose (TA Lärm)", "textarea"),
						field("grenzwertvergleich", "Grenzwertvergleich", "textarea"),
						field("minimierung", "Minimierungsprüfung (26. BImSchVVwV)", "textarea"),
						field("anzeige_behoerde", "Anzeige an Immissionsschutzbehörde", "textarea"),
					},
					Checklist: []string{
						"Immissionsorte festgelegt",
						"Betriebsdaten bestätigt",
						"Feldstärkeberechnung durchgeführt",
						"Koronageräusche prognostiziert",
						"Grenzwerte eingehalten",
						"Minimierungsmaßnahmen geprüft",
						"Vorsorgewerte bewertet",
						"Gutachten plausibilisiert",
						"Anzeige nach § 7 26. BImSchV erstellt",
					},
				},
			},
		},
	},
}

var enwgDE = domain.ProcessTemplate{
	Pfad:        domain.PfadEnWG,
	Label:       "EnWG – Planfeststellung (110 kV)",
	Description: "Planfeststellungsverfahren nach dem Energiewirtschaftsgesetz für 110-kV-Leitungen.",
	Stages: []domain.StageTemplate{
		{
			ID:           "enwg_s1",
			Title:        "Scoping-Termin",
			LawReference: "§ 43 EnWG / § 15 UVPG",
			Description:  "Abstimmung mit der Bezirksregierung über den Untersuchungsumfang.",
			InfoText:     "§ 43 EnWG i.V.m. § 15 UVPG: Scoping-Termin mit der Anhörungsbehörde.",
			Tasks: []domain.TaskTemplate{
				{
					ID:          "enwg_s1_t1",
					Title:       "Scoping-Unterlagen vorbereiten",
					Description: "Erstellen Sie die Unterlagen für den Scoping-Termin.",
					FormFields: []domain.FormField{
						field("behoerde", "Zuständige Bezirksregierung", "text"),
						field("termin", "Geplanter Termin", "date"),
						field("tagesordnung", "Tagesordnung", "textarea"),
					},
				},
			},
		},
		{
			ID:           "enwg_s2",
			Title:        "Planfeststellungsunterlagen",
			LawReference: "§ 43 EnWG",
			Description:  "Erstellung der vollständigen Planfeststellungsunterlagen.",
			InfoText:     "§ 43 EnWG: Einreichung der Planfeststellungsunterlagen.",
			Tasks: []domain.TaskTemplate{
				{
					ID:          "enwg_s2_t1",
					Title:       "Bauwerksverzeichnis erstellen",
					Description: "Erstellen Sie das Bauwerksverzeichnis.",
					FormFields: []domain.FormField{
						field("anzahl_masten", "Anzahl Masten", "text"),
						field("masttypen", "Masttypen", "textarea"),
					},
				},
			},
		},
		{
			ID:           "enwg_s3",
			Title:        "Anhörungsverfahren",
			LawReference: "§ 43a EnWG",
			Description:  "Durchführung des Anhörungsverfahrens.",
			InfoText:     "§ 43a EnWG i.V.m. § 73 VwVfG: Öffentliche Auslegung und Erörterung.",
			Tasks: []domain.TaskTemplate{
				{
					ID:          "enwg_s3_t1",
					Title:       "Einwendungen bearbeiten",
					Description: "Sichten und beantworten Sie die Einwendungen.",
					FormFields: []domain.FormField{
						field("anzahl_einwendungen", "Anzahl Einwendungen", "text"),
						field("kategorien", "Kategorien", "textarea"),
						field("erwiderung", "Erwiderung", "textarea"),
					},
				},
			},
		},
	},
}
