package textgen

var tableEN = map[string]string{
	"s1_t1/rechtsrahmen": `The project "{{.Name}}" is listed as a cross-state extra-high voltage line ` +
		`({{.KVLevel}} kV {{.Technology}}) in the Federal Requirements Plan (BBPlG). ` +
		`Pursuant to § 2(1) NABEG, NABEG applies as the project crosses the federal states ` +
		`{{join .States " and "}} and has a voltage level ≥ 220 kV. ` +
		`Federal sectoral planning pursuant to §§ 4–17 NABEG is required.`,
	"s1_t1/zustaendige_behoerde": `Federal Network Agency (BNetzA), Grid Expansion Division`,
	"s1_t1/begruendung": `The assignment to NABEG results from the designation in the BBPlG as cross-state ` +
		`(§ 2(1) BBPlG). The BNetzA is the responsible authority pursuant to § 31 NABEG. ` +
		`The project crosses the federal states ` +
		`{{join .States " and "}} over a length of {{.LengthKm}} km.`,

	"s1_t2/vorhaben_titel":  `{{.Name}}`,
	"s1_t2/technologie":     `HVDC ({{.Technology}}), {{.KVLevel}} kV, mixed construction (overhead line/underground cable)`,
	"s1_t2/trassenlaenge":   `{{.LengthKm}} km`,
	"s1_t2/bundeslaender":   `{{join .States ", "}}`,
	"s1_t2/zusammenfassung": `Construction of a {{.KVLevel}} kV HVDC connection ({{.Technology}}) as part of ` +
		`the North-South Link for transmitting wind energy from northern Germany to ` +
		`consumption centers in southern Germany. The route runs in mixed construction ` +
		`over {{.LengthKm}} km through {{join .States " and "}}. The project ` +
		`serves the implementation of the energy transition and is designated as a ` +
		`priority need in the Federal Requirements Plan.`,

	"s1_t3/behoerden": "• Federal Network Agency (BNetzA) – Permitting authority\n" +
		"• Government of Upper Franconia – Spatial planning BY\n" +
		"• District Government Kassel – Spatial planning HE\n" +
		"• Bavarian State Office for the Environment (LfU)\n" +
		"• HLNUG Hesse",
	"s1_t3/eigentuemer": "• Owner Group A – Parcel BY-091-223-17 (private, not contacted)\n" +
		"• Municipality Demohausen – Parcel HE-044-887-03 (municipal, negotiation initiated)",
	"s1_t3/verbaende": "• BUND State Association Bavaria\n• NABU Hesse\n" +
		"• LBV Bavaria\n• Citizens' Initiative Route Alternative e.V.",

	"s2_t1/korridor_a": `Western Corridor: Routing along BAB A7, length 76.3 km, predominantly overhead ` +
		`line. Crossing of 2 FFH areas, forest share 18%. Minimum settlement distance 450 m.`,
	"s2_t1/korridor_b": `Eastern Corridor: Routing parallel to DB railway line, 72.8 km, underground cable ` +
		`share 35%. Crossing of 1 FFH area, forest share 12%. Good bundling potential with ` +
		`railway infrastructure.`,
	"s2_t1/vorzugskorridor": `Corridor B (eastern)`,
	"s2_t1/begruendung_auswahl": `Corridor B is recommended: (1) lower FFH impact, (2) shorter route, ` +
		`(3) better infrastructure bundling, (4) lower overall spatial resistance ` +
		`(Class II vs. III).`,

	"s2_t2/schutzgebiete": "• FFH area 'Forest area east of Demo': 2.3 km crossing\n" +
		"• Water protection zone III: 1.1 km edge contact",
	"s2_t2/waldanteil": `Forest crossing approx. 8.7 km (12% of total route). Predominantly commercial ` +
		`forest (spruce), 2.1 km mixed deciduous forest with biotope function.`,
	"s2_t2/siedlungsabstand": "• Musterstadt: 320 m (overhead line)\n" +
		"• Demohausen: 220 m (underground cable planned)\n" +
		"• Beispielhof: 580 m (overhead line)",
	"s2_t2/konflikte": "2 geometry conflicts >5m:\n" +
		"• BY-091-223-17: Overlap with mast location M-34\n" +
		"• HE-044-887-03: Underground cable route tangent to municipal road",

	"s2_t3/methodik": `Spatial resistance analysis per BNetzA guideline (2023), 3-stage assessment: ` +
		`(1) Spatial resistance mapping 1:25,000, (2) Multi-criteria assessment with ` +
		`14 criteria, (3) Overall evaluation incl. technical feasibility.`,
	"s2_t3/bewertungsergebnis": "Corridor B: Spatial resistance class II (medium) – 67/100 pts.\n" +
		"Corridor A: Spatial resistance class III (high) – 48/100 pts.",
	"s2_t3/empfehlung": `Recommendation: Continue with Corridor B (eastern) as preferred corridor ` +
		`in federal sectoral planning.`,

	"s3_t1/betroffene_arten": "• Red kite (Milvus milvus) – 3 breeding pairs within 1 km radius\n" +
		"• Black stork (Ciconia nigra) – 1 nest, 800 m distance\n" +
		"• Bats (Myotis spp.) – Roost suspicion at km 34.5",
	"s3_t1/kartierungsstatus": `Breeding season survey for red kite and black stork ongoing. ` +
		`Bat detector surveys 60% completed. Deadline: 20.02.2026.`,
	"s3_t1/vermeidungsmassnahmen": "• Construction timing restriction: No construction March–July within 500 m " +
		"of red kite nests\n" +
		"• Bird protection markers on earth wires in section km 12–18\n" +
		"• Ecological construction supervision throughout\n" +
		"• Night construction ban near bat roosts",
	"s3_t1/kompensation": "• Red kite replacement habitat: Creation of 3 ha extensive grassland as " +
		"foraging habitat (ratio 1:1.5)\n" +
		"• Bat boxes: Installation of 20 boxes in adjacent forest\n" +
		"• CEF measure black stork: Buffer zone 500 m around nest",

	"s3_t2/schutzgueter": "• Humans (residential, recreation): Settlement distances, noise emissions\n" +
		"• Wildlife/flora/biodiversity: FFH compatibility, species protection\n" +
		"• Soil/land use: Sealing, soil compaction for underground cable\n" +
		"• Water: WPA Zone III impact, groundwater protection\n" +
		"• Climate/air: Cold air corridors, forest clearing\n" +
		"• Landscape: Visibility of overhead line masts, landscape character\n" +
		"• Cultural heritage: Ground monuments in route area",
	"s3_t2/untersuchungsraum": `Study area: 1,000 m on both sides of the route axis (Corridor B). ` +
		`Total area approx. 145 km². Delimitation based on the range of relevant ` +
		`impact factors (EMF, noise, visual impact). Extended study area (3 km) for ` +
		`avifaunal surveys.`,
	"s3_t2/methodik_umwelt": "EIA methodology pursuant to § 16 UVPG:\n" +
		"1. Baseline survey: Analysis of existing data + field mapping\n" +
		"2. Impact assessment: Overlay of sensitivity × impact intensity\n" +
		"3. Evaluation: 5-level significance scale (not significant to very high)\n" +
		"4. Mitigation concept: Avoidance, minimization, compensation\n" +
		"5. Alternatives comparison: Comparison of environmental impacts",

	"s3_t3/empfaenger": "Office for Food, Agriculture and Forestry (AELF)\n" +
		"Forestry Department\nBeispielstraße 12\n95000 Musterstadt",
	"s3_t3/betreff": `Request for forest conversion pursuant to Art. 9 BayWaldG – Project "{{.Name}}"`,
	"s3_t3/anschreiben": "Dear Sir or Madam,\n\n" +
		`In the context of the project "{{.Name}}" ({{.KVLevel}} kV {{.Technology}}, ` +
		"federal sectoral planning under NABEG), the use of forest areas in the area " +
		"of Corridor B (eastern) is required.\n\n" +
		"Affected: approx. 8.7 km forest crossing (12% of total route of " +
		"{{.LengthKm}} km), thereof:\n" +
		"• approx. 6.6 km commercial forest (spruce)\n" +
		"• approx. 2.1 km mixed deciduous forest with biotope function\n\n" +
		"We request early coordination regarding:\n" +
		"1. Scope of required forest conversion permit\n" +
		"2. Requirements for forest compensation\n" +
		"3. Possible conditions and stipulations\n\n" +
		"Detailed documents are enclosed.\n\n" +
		"Yours sincerely",
	"s3_t3/anlagen": "1. Overview map of route in forest area (1:10,000)\n" +
		"2. Forest type inventory map (1:5,000)\n" +
		"3. List of affected parcels\n" +
		"4. Preliminary forest compensation concept\n" +
		"5. Extract from corridor alternatives report (DOC-017, v0.9)",
}

var fallbackEN = []matcher{
	{
		match: func(name, label string) bool { return contains(name, "empfaenger") || contains(label, "empfänger") },
		text:  "Federal Network Agency\nGrid Expansion Division\nTulpenfeld 4\n53113 Bonn",
	},
	{
		match: nameHas("betreff"),
		text:  `Re: Project "{{.Name}}" – {{.KVLevel}} kV {{.Technology}} – {{.Label}}`,
	},
	{
		match: nameHas("anschreiben", "schreiben"),
		text: "Dear Sir or Madam,\n\n" +
			`In the context of the project "{{.Name}}" ({{.KVLevel}} kV {{.Technology}}), ` +
			"we submit the following documents for review.\n\n" +
			"The project extends over {{.LengthKm}} km through the federal states " +
			`{{join .States " and "}}.` + "\n\n" +
			"We are available for any questions.\n\n" +
			"Yours sincerely",
	},
	{
		match: func(name, label string) bool { return contains(name, "begruendung") || contains(label, "begründung") },
		text: `The measure is required within the scope of the project "{{.Name}}" ` +
			`({{.KVLevel}} kV {{.Technology}}). The necessity arises from the designation ` +
			`in the Federal Requirements Plan as a priority need project to ensure ` +
			`security of supply.`,
	},
	{
		match: nameHas("methodik"),
		text: `The assessment follows recognized methods per the current BNetzA guideline. ` +
			`A multi-stage procedure is applied that considers quantitative and qualitative ` +
			`criteria.`,
	},
	{
		match: nameHas("zusammenfassung", "beschreibung", "ergebnis"),
		text: `The project "{{.Name}}" comprises the construction of a {{.KVLevel}} kV ` +
			`HVDC line ({{.Technology}}) over {{.LengthKm}} km through ` +
			`{{join .States " and "}}. The mixed construction (overhead line/` +
			`underground cable) takes local conditions into account.`,
	},
	{
		match: nameHas("anlagen"),
		text: "1. Overview map (1:25,000)\n" +
			"2. Detailed maps of affected sections\n" +
			"3. Technical explanations\n" +
			"4. Relevant reports and evidence",
	},
	{
		match: always,
		text: `[{{.Label}}] – Draft for the project "{{.Name}}" ` +
			`({{.KVLevel}} kV {{.Technology}}, {{.LengthKm}} km, ` +
			`Federal states: {{join .States ", "}}). ` +
			`This text block was automatically generated and should be reviewed ` +
			`and supplemented by experts.`,
	},
}
