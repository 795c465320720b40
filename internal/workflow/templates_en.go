package workflow

import "gridpermit/internal/domain"

var nabegEN = domain.ProcessTemplate{
	Pfad:        domain.PfadNABEG,
	Label:       "NABEG – Federal Sectoral Planning (Extra-High Voltage)",
	Description: "Procedure under the Grid Expansion Acceleration Act for extra-high voltage lines (220 kV and above).",
	Stages: []domain.StageTemplate{
		{
			ID:           "s1_scope_recht",
			Title:        "Scope & Legal Framework",
			LawReference: "§ 4ff. NABEG / BBPlG",
			Description:  "Identification of the applicable legal framework, preparation of the project profile and initial stakeholder mapping.",
			InfoText: "§ 4 NABEG in conjunction with BBPlG: Projects designated as cross-state or " +
				"cross-border in the Federal Requirements Plan Act are subject to NABEG. " +
				"The project developer identifies the applicable legal framework and prepares " +
				"the required application documents.",
			Tasks: []domain.TaskTemplate{
				{
					ID:          "s1_t1",
					Title:       "Identify applicable law",
					Description: "Check the applicable legal framework (NABEG vs. EnWG) and identify the responsible authority.",
					FormFields: []domain.FormField{
						field("rechtsrahmen", "Applicable legal framework", "textarea"),
						field("zustaendige_behoerde", "Responsible authority", "text"),
						field("begruendung", "Justification of assignment", "textarea"),
					},
				},
				{
					ID:          "s1_t2",
					Title:       "Create project profile",
					Description: "Create the project profile with all technical and spatial key data.",
					FormFields: []domain.FormField{
						field("vorhaben_titel", "Project title", "text"),
						field("technologie", "Technology & voltage level", "text"),
						field("trassenlaenge", "Route length", "text"),
						field("bundeslaender", "Affected federal states", "text"),
						field("zusammenfassung", "Project summary", "textarea"),
					},
				},
				{
					ID:          "s1_t3",
					Title:       "Conduct initial stakeholder mapping",
					Description: "Identify all relevant stakeholders: authorities, landowners, associations.",
					FormFields: []domain.FormField{
						field("behoerden", "Involved authorities", "textarea"),
						field("eigentuemer", "Affected landowners", "textarea"),
						field("verbaende", "Relevant associations & public agencies", "textarea"),
					},
				},
			},
		},
		{
			ID:           "s2_korridor",
			Title:        "Corridor Selection",
			LawReference: "§ 6 NABEG",
			Description:  "Definition and assessment of route corridor alternatives, GIS analysis and preparation of the corridor alternatives report.",
			InfoText: "§ 6 NABEG: The project developer applies to the Federal Network Agency for " +
				"federal sectoral planning. This includes presenting the route corridors under " +
				"consideration with an assessment of spatial compatibility. The BNetzA then " +
				"holds an application conference.",
			Tasks: []domain.TaskTemplate{
				{
					ID:          "s2_t1",
					Title:       "Define corridor alternatives",
					Description: "Define at least two route corridors with a technical assessment.",
					FormFields: []domain.FormField{
						field("korridor_a", "Corridor A – Description", "textarea"),
						field("korridor_b", "Corridor B – Description", "textarea"),
						field("vorzugskorridor", "Preferred corridor", "text"),
						field("begruendung_auswahl", "Justification of preference", "textarea"),
					},
				},
				{
					ID:          "s2_t2",
					Title:       "Perform GIS overlay",
					Description: "Perform a GIS-based spatial analysis with protected-area and infrastructure layers.",
					FormFields: []domain.FormField{
						field("schutzgebiete", "Affected protected areas", "textarea"),
						field("waldanteil", "Forest crossings", "textarea"),
						field("siedlungsabstand", "Settlement distances", "textarea"),
						field("konflikte", "Identified conflicts", "textarea"),
					},
				},
				{
					ID:          "s2_t3",
					Title:       "Prepare corridor alternatives report",
					Description: "Prepare the formal report comparing the corridor alternatives.",
					FormFields: []domain.FormField{
						field("methodik", "Assessment methodology", "textarea"),
						field("bewertungsergebnis", "Assessment result", "textarea"),
						field("empfehlung", "Recommendation", "textarea"),
					},
				},
				{
					ID:          "s2_t4",
					Title:       "Coordinate crossing agreements",
					Description: "Coordinate crossings of railways, roads, waterways and third-party lines with the responsible operators.",
					FormFields: []domain.FormField{
						field("kreuzung_bahn", "Railway crossings", "textarea"),
						field("kreuzung_strasse", "Road/motorway crossings", "textarea"),
						field("kreuzung_wasserstrasse", "Federal waterway crossings", "textarea"),
						field("kreuzung_sonstige", "Other crossings (water bodies, third-party lines)", "textarea"),
						field("profilplaene", "Profile drawings", "textarea"),
						field("schutzmassnahmen_kreuzung", "Protective measures during construction", "textarea"),
						field("kostenteilung", "Cost sharing", "textarea"),
						field("vereinbarungen_status", "Agreement status", "text"),
					},
					Checklist: []string{
						"Crossing objects fully recorded",
						"Responsible operators identified",
						"DB application (Ril 878) submitted",
						"Autobahn GmbH consent obtained",
						"Waterway authority permit checked",
						"Third-party line operators contacted",
						"Profile drawings prepared",
						"Protection concept agreed",
						"Cost sharing clarified",
						"Agreements signed",
					},
				},
			},
		},
		{
			ID:           "s3_untersuchungsrahmen",
			Title:        "Scope of Investigation",
			LawReference: "§ 7 NABEG",
			Description:  "Preparation of the species protection report, the environmental scoping document and authority requests.",
			InfoText: "§ 7 NABEG: After the application conference the BNetzA determines the scope " +
				"of investigation for federal sectoral planning. The project developer prepares " +
				"the specified documents, including the environmental report and species " +
				"protection assessments.",
			Tasks: []domain.TaskTemplate{
				{
					ID:          "s3_t1",
					Title:       "Prepare species protection report",
					Description: "Prepare the species protection report (stage I/II) with survey data and a measures concept.",
					FormFields: []domain.FormField{
						field("betroffene_arten", "Affected species", "textarea"),
						field("kartierungsstatus", "Survey status", "textarea"),
						field("vermeidungsmassnahmen", "Avoidance measures", "textarea"),
						field("kompensation", "Compensation measures", "textarea"),
					},
				},
				{
					ID:          "s3_t2",
					Title:       "Prepare environmental scoping document",
					Description: "Prepare the scoping document for the environmental impact assessment.",
					FormFields: []domain.FormField{
						field("schutzgueter", "Affected protected assets", "textarea"),
						field("untersuchungsraum", "Study area & delimitation", "textarea"),
						field("methodik_umwelt", "EIA methodology", "textarea"),
					},
					Checklist: []string{
						"Humans assessed",
						"Wildlife/flora/biodiversity assessed",
						"Soil/land assessed",
						"Water assessed",
						"Climate/air assessed",
						"Landscape assessed",
						"Cultural heritage assessed",
					},
				},
				{
					ID:          "s3_t3",
					Title:       "Prepare forestry authority request",
					Description: "Prepare the formal request to the responsible forestry authority regarding forest conversion.",
					FormFields: []domain.FormField{
						field("empfaenger", "Recipient (forestry authority)", "text"),
						field("betreff", "Subject", "text"),
						field("anschreiben", "Cover letter", "textarea"),
						field("anlagen", "List of attachments", "textarea"),
					},
				},
				{
					ID:          "s3_t4",
					Title:       "Clarify water law matters",
					Description: "Record water body crossings and groundwater impact and prepare the water law permit.",
					FormFields: []domain.FormField{
						field("gewaesserquerungen", "Water body crossings", "textarea"),
						field("grundwasser", "Groundwater impact", "textarea"),
						field("schutzgebiete_wasser", "Water protection and flood areas", "textarea"),
						field("hydrogeologie", "Hydrogeological report", "textarea"),
						field("schutzmassnahmen_wasser", "Water protection measures", "textarea"),
						field("antrag_status_wasser", "Application status", "text"),
					},
					Checklist: []string{
						"Water body crossings recorded",
						"Groundwater depths determined",
						"Water protection areas checked",
						"Flood areas checked",
						"Hydrogeological report commissioned",
						"Construction dewatering dimensioned",
						"Water protection concept prepared",
						"Documents sent to water authority",
						"Permit granted",
					},
				},
				{
					ID:          "s3_t5",
					Title:       "Check monument protection",
					Description: "Check architectural and archaeological monuments in the route area and agree survey and conditions with the state office.",
					FormFields: []domain.FormField{
						field("bodendenkmale", "Archaeological monuments", "textarea"),
						field("baudenkmale", "Architectural monuments & ensembles", "textarea"),
						field("prospektion", "Prospection", "textarea"),
						field("rettungsgrabung", "Rescue excavation", "textarea"),
						field("trassenoptimierung", "Route optimisation", "textarea"),
						field("auflagen_denkmal", "Conditions of monument authority", "textarea"),
					},
					Checklist: []string{
						"Monument list evaluated",
						"State office for monument preservation involved",
						"Field walk carried out",
						"Geomagnetic prospection carried out",
						"Route variants checked",
						"Excavation concept agreed",
						"Monument permit applied for",
					},
				},
				{
					ID:          "s3_t6",
					Title:       "Demonstrate immission control",
					Description: "Demonstrate compliance with the limits of the 26th BImSchV and TA Lärm at the relevant immission points.",
					FormFields: []domain.FormField{
						field("leitungstyp", "Line type & operating data", "text"),
						field("immissionsorte", "Relevant immission points", "textarea"),
						field("emf_berechnung", "EMF calculation (26th BImSchV)", "textarea"),
						field("schallprognose", "Noise forecast (TA Lärm)", "textarea"),
						field("grenzwertvergleich", "Limit value comparison", "textarea"),
						field("minimierung", "Minimisation review (26th BImSchVVwV)", "textarea"),
						field("anzeige_behoerde", "Notification to immission control authority", "textarea"),
					},
					Checklist: []string{
						"Immission points defined",
						"Operating data confirmed",
						"Field strength calculation performed",
						"Corona noise forecast",
						"Limit values met",
						"Minimisation measures checked",
						"Precautionary values assessed",
						"Report checked for plausibility",
						"Notification under § 7 26th BImSchV prepared",
					},
				},
			},
		},
	},
}

var enwgEN = domain.ProcessTemplate{
	Pfad:        domain.PfadEnWG,
	Label:       "EnWG – Plan Approval (110 kV)",
	Description: "Plan approval procedure under the Energy Industry Act for 110 kV lines.",
	Stages: []domain.StageTemplate{
		{
			ID:           "enwg_s1",
			Title:        "Scoping Meeting",
			LawReference: "§ 43 EnWG / § 15 UVPG",
			Description:  "Coordination with the district government on the scope of investigation.",
			InfoText:     "§ 43 EnWG in conjunction with § 15 UVPG: Scoping meeting with the hearing authority.",
			Tasks: []domain.TaskTemplate{
				{
					ID:          "enwg_s1_t1",
					Title:       "Prepare scoping documents",
					Description: "Prepare the documents for the scoping meeting.",
					FormFields: []domain.FormField{
						field("behoerde", "Responsible district government", "text"),
						field("termin", "Planned date", "date"),
						field("tagesordnung", "Agenda", "textarea"),
					},
				},
			},
		},
		{
			ID:           "enwg_s2",
			Title:        "Plan Approval Documents",
			LawReference: "§ 43 EnWG",
			Description:  "Preparation of the complete plan approval documents.",
			InfoText:     "§ 43 EnWG: Submission of the plan approval documents.",
			Tasks: []domain.TaskTemplate{
				{
					ID:          "enwg_s2_t1",
					Title:       "Create structure register",
					Description: "Create the register of structures.",
					FormFields: []domain.FormField{
						field("anzahl_masten", "Number of masts", "text"),
						field("masttypen", "Mast types", "textarea"),
					},
				},
			},
		},
		{
			ID:           "enwg_s3",
			Title:        "Hearing Procedure",
			LawReference: "§ 43a EnWG",
			Description:  "Conduct of the hearing procedure.",
			InfoText:     "§ 43a EnWG in conjunction with § 73 VwVfG: Public display and discussion.",
			Tasks: []domain.TaskTemplate{
				{
					ID:          "enwg_s3_t1",
					Title:       "Process objections",
					Description: "Review and respond to the objections.",
					FormFields: []domain.FormField{
						field("anzahl_einwendungen", "Number of objections", "text"),
						field("kategorien", "Categories", "textarea"),
						field("erwiderung", "Response", "textarea"),
					},
				},
			},
		},
	},
}
