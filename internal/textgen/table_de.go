package textgen

var tableDE = map[string]string{
	"s1_t1/rechtsrahmen": `Das Vorhaben "{{.Name}}" ist als länderübergreifende Höchstspannungsleitung ` +
		`({{.KVLevel}} kV {{.Technology}}) im Bundesbedarfsplan (BBPlG) enthalten. ` +
		`Gemäß § 2 Abs. 1 NABEG findet das NABEG Anwendung, da das Vorhaben die ` +
		`Bundesländer {{join .States " und "}} quert und eine Spannungsebene ` +
		`≥ 220 kV aufweist. Die Bundesfachplanung nach §§ 4–17 NABEG ist durchzuführen.`,
	"s1_t1/zustaendige_behoerde": `Bundesnetzagentur (BNetzA), Referat für Netzausbau`,
	"s1_t1/begruendung": `Die Zuordnung zum NABEG ergibt sich aus der Kennzeichnung im BBPlG als ` +
		`länderübergreifend (§ 2 Abs. 1 BBPlG). Die BNetzA ist gemäß § 31 NABEG ` +
		`zuständige Behörde. Das Vorhaben quert die Bundesländer ` +
		`{{join .States " und "}} auf einer Länge von {{.LengthKm}} km.`,

	"s1_t2/vorhaben_titel":  `{{.Name}}`,
	"s1_t2/technologie":     `HGÜ ({{.Technology}}), {{.KVLevel}} kV, gemischte Bauweise (Freileitung/Erdkabel)`,
	"s1_t2/trassenlaenge":   `{{.LengthKm}} km`,
	"s1_t2/bundeslaender":   `{{join .States ", "}}`,
	"s1_t2/zusammenfassung": `Neubau einer {{.KVLevel}}-kV-HGÜ-Verbindung ({{.Technology}}) als Teil des ` +
		`Nord-Süd-Links zur Übertragung von Windenergie aus Norddeutschland in die ` +
		`Verbrauchszentren Süddeutschlands. Die Trasse verläuft in gemischter Bauweise ` +
		`über {{.LengthKm}} km durch {{join .States " und "}}. Das Vorhaben ` +
		`dient der Umsetzung der Energiewende und ist im Bundesbedarfsplan als ` +
		`vordringlicher Bedarf gekennzeichnet.`,

	"s1_t3/behoerden": "• Bundesnetzagentur (BNetzA) – Genehmigungsbehörde\n" +
		"• Regierung von Oberfranken – Raumordnung BY\n" +
		"• Regierungspräsidium Kassel – Raumordnung HE\n" +
		"• Bayerisches Landesamt für Umwelt (LfU)\n" +
		"• HLNUG Hessen",
	"s1_t3/eigentuemer": "• Eigentümergruppe A – Flurstück BY-091-223-17 (privat, nicht kontaktiert)\n" +
		"• Gemeinde Demohausen – Flurstück HE-044-887-03 (kommunal, Verhandlung eingeleitet)",
	"s1_t3/verbaende": "• BUND Landesverband Bayern\n• NABU Hessen\n" +
		"• LBV Bayern\n• Bürgerinitiative Trassenalternative e.V.",

	"s2_t1/korridor_a": `Westlicher Korridor: Verlauf entlang BAB A7, Länge 76,3 km, überwiegend ` +
		`Freileitung. Querung von 2 FFH-Gebieten, Waldanteil 18%. ` +
		`Minimaler Siedlungsabstand 450 m.`,
	"s2_t1/korridor_b": `Östlicher Korridor: Trassenführung parallel zur DB-Strecke, 72,8 km, ` +
		`Erdkabelanteil 35%. Querung von 1 FFH-Gebiet, Waldanteil 12%. ` +
		`Gute Bündelungsmöglichkeit mit Bahninfrastruktur.`,
	"s2_t1/vorzugskorridor": `Korridor B (östlich)`,
	"s2_t1/begruendung_auswahl": `Korridor B wird empfohlen: (1) geringere FFH-Betroffenheit, ` +
		`(2) kürzere Strecke, (3) bessere Infrastrukturbündelung, ` +
		`(4) geringerer Gesamtraumwiderstand (Klasse II vs. III).`,

	"s2_t2/schutzgebiete": "• FFH-Gebiet 'Waldgebiet östlich Demo': 2,3 km Querung\n" +
		"• Wasserschutzgebiet Zone III: 1,1 km Randberührung",
	"s2_t2/waldanteil": `Waldquerung ca. 8,7 km (12% der Gesamtstrecke). ` +
		`Überwiegend Wirtschaftswald (Fichte), 2,1 km Laubmischwald mit Biotopfunktion.`,
	"s2_t2/siedlungsabstand": "• Musterstadt: 320 m (Freileitung)\n" +
		"• Demohausen: 220 m (Erdkabel geplant)\n" +
		"• Beispielhof: 580 m (Freileitung)",
	"s2_t2/konflikte": "2 Geometrie-Konflikte >5m:\n" +
		"• BY-091-223-17: Überlappung mit Maststandort M-34\n" +
		"• HE-044-887-03: Erdkabeltrasse tangiert Gemeindestraße",

	"s2_t3/methodik": `Raumwiderstandsanalyse nach BNetzA-Leitfaden (2023), 3-stufiges ` +
		`Bewertungsverfahren: (1) Raumwiderstandskartierung 1:25.000, ` +
		`(2) Multikriterielle Bewertung mit 14 Kriterien, ` +
		`(3) Gesamtabwägung inkl. technischer Realisierbarkeit.`,
	"s2_t3/bewertungsergebnis": "Korridor B: Raumwiderstandsklasse II (mittel) – 67/100 Pkt.\n" +
		"Korridor A: Raumwiderstandsklasse III (hoch) – 48/100 Pkt.",
	"s2_t3/empfehlung": `Empfehlung: Weiterverfolgung Korridor B (östlich) als Vorzugskorridor ` +
		`in der Bundesfachplanung.`,

	"s3_t1/betroffene_arten": "• Rotmilan (Milvus milvus) – 3 Brutpaare im 1-km-Radius\n" +
		"• Schwarzstorch (Ciconia nigra) – 1 Horst, 800 m Abstand\n" +
		"• Fledermäuse (Myotis spp.) – Quartiersverdacht bei km 34,5",
	"s3_t1/kartierungsstatus": `Brutzeitfenster-Kartierung für Rotmilan und Schwarzstorch läuft. ` +
		`Fledermaus-Detektorbegehungen zu 60% abgeschlossen. ` +
		`Frist: 20.02.2026.`,
	"s3_t1/vermeidungsmassnahmen": "• Bauzeitenregelung: Keine Bauarbeiten März–Juli im Umkreis " +
		"von 500 m um Rotmilan-Horste\n" +
		"• Vogelschutzmarker an Erdseilen im Bereich km 12–18\n" +
		"• Ökologische Baubegleitung während der gesamten Bauphase\n" +
		"• Nächtliches Bauverbot im Bereich der Fledermausquartiere",
	"s3_t1/kompensation": "• Ersatzhabitat Rotmilan: Anlage von 3 ha extensivem Grünland " +
		"als Nahrungshabitat (Verhältnis 1:1,5)\n" +
		"• Fledermauskästen: Installation von 20 Kästen in angrenzenden " +
		"Waldbeständen\n" +
		"• CEF-Maßnahme Schwarzstorch: Beruhigungszone 500 m um Horst",

	"s3_t2/schutzgueter": "• Mensch (Wohnen, Erholung): Siedlungsabstände, Lärmimmissionen\n" +
		"• Tiere/Pflanzen/Biodiversität: FFH-Verträglichkeit, Artenschutz\n" +
		"• Boden/Fläche: Versiegelung, Bodenverdichtung bei Erdkabel\n" +
		"• Wasser: WSG Zone III Betroffenheit, Grundwasserschutz\n" +
		"• Klima/Luft: Kaltluftschneisen, Waldrodung\n" +
		"• Landschaft: Sichtbarkeit Freileitungsmasten, Landschaftsbild\n" +
		"• Kulturelles Erbe: Bodendenkmäler im Trassenbereich",
	"s3_t2/untersuchungsraum": `Untersuchungsraum: 1.000 m beiderseits der Trassenachse (Korridor B). ` +
		`Gesamtfläche ca. 145 km². Abgrenzung basierend auf der Reichweite ` +
		`relevanter Wirkfaktoren (EMF, Schall, visuelle Wirkung). ` +
		`Erweiterter Untersuchungsraum (3 km) für avifaunistische Kartierung.`,
	"s3_t2/methodik_umwelt": "UVP-Methodik gemäß § 16 UVPG:\n" +
		"1. Bestandsaufnahme: Auswertung vorhandener Daten + Geländekartierung\n" +
		"2. Wirkungsprognose: Überlagerung Empfindlichkeit × Wirkintensität\n" +
		"3. Bewertung: 5-stufige Erheblichkeitsskala (nicht erheblich bis sehr hoch)\n" +
		"4. Maßnahmenkonzept: Vermeidung, Minimierung, Kompensation\n" +
		"5. Variantenvergleich: Gegenüberstellung der Umweltauswirkungen",

	"s3_t3/empfaenger": "Amt für Ernährung, Landwirtschaft und Forsten (AELF)\n" +
		"Abteilung Forsten\nBeispielstraße 12\n95000 Musterstadt",
	"s3_t3/betreff": `Anfrage zur Waldumwandlung gemäß Art. 9 BayWaldG – Vorhaben "{{.Name}}"`,
	"s3_t3/anschreiben": "Sehr geehrte Damen und Herren,\n\n" +
		`im Rahmen des Vorhabens "{{.Name}}" ({{.KVLevel}} kV {{.Technology}}, ` +
		"Bundesfachplanung nach NABEG) ist die Inanspruchnahme von Waldflächen " +
		"im Bereich des Korridors B (östlich) erforderlich.\n\n" +
		"Betroffen sind ca. 8,7 km Waldquerung (12% der Gesamtstrecke von " +
		"{{.LengthKm}} km), davon:\n" +
		"• ca. 6,6 km Wirtschaftswald (Fichte)\n" +
		"• ca. 2,1 km Laubmischwald mit Biotopfunktion\n\n" +
		"Wir bitten um eine frühzeitige Abstimmung hinsichtlich:\n" +
		"1. Umfang der erforderlichen Waldumwandlungsgenehmigung\n" +
		"2. Anforderungen an den Waldausgleich\n" +
		"3. Mögliche Auflagen und Bedingungen\n\n" +
		"Die detaillierten Unterlagen sind als Anlagen beigefügt.\n\n" +
		"Mit freundlichen Grüßen",
	"s3_t3/anlagen": "1. Übersichtskarte Trassenführung im Waldbereich (1:10.000)\n" +
		"2. Bestandskarte Waldtypen (1:5.000)\n" +
		"3. Flächenaufstellung der betroffenen Flurstücke\n" +
		"4. Vorläufiges Konzept zum Waldausgleich\n" +
		"5. Auszug aus dem Korridoralternativenbericht (DOC-017, v0.9)",
}

var fallbackDE = []matcher{
	{
		match: func(name, label string) bool { return contains(name, "empfaenger") || contains(label, "empfänger") },
		text:  "Bundesnetzagentur\nReferat für Netzausbau\nTulpenfeld 4\n53113 Bonn",
	},
	{
		match: nameHas("betreff"),
		text:  `Betr.: Vorhaben "{{.Name}}" – {{.KVLevel}} kV {{.Technology}} – {{.Label}}`,
	},
	{
		match: nameHas("anschreiben", "schreiben"),
		text: "Sehr geehrte Damen und Herren,\n\n" +
			`im Rahmen des Vorhabens "{{.Name}}" ({{.KVLevel}} kV {{.Technology}}) ` +
			"übersenden wir Ihnen die nachfolgenden Unterlagen zur Prüfung.\n\n" +
			"Das Vorhaben erstreckt sich über {{.LengthKm}} km durch die Bundesländer " +
			`{{join .States " und "}}.` + "\n\n" +
			"Für Rückfragen stehen wir Ihnen jederzeit zur Verfügung.\n\n" +
			"Mit freundlichen Grüßen",
	},
	{
		match: func(name, label string) bool { return contains(name, "begruendung") || contains(label, "begründung") },
		text: `Die Maßnahme ist erforderlich im Rahmen des Vorhabens "{{.Name}}" ` +
			`({{.KVLevel}} kV {{.Technology}}). Die Notwendigkeit ergibt sich aus ` +
			`der Einstufung im Bundesbedarfsplan als Vorhaben mit vordringlichem Bedarf ` +
			`zur Sicherstellung der Versorgungssicherheit.`,
	},
	{
		match: nameHas("methodik"),
		text: `Die Bewertung erfolgt nach anerkannten Methoden gemäß dem aktuellen ` +
			`BNetzA-Leitfaden. Es wird ein mehrstufiges Verfahren angewandt, das ` +
			`quantitative und qualitative Kriterien berücksichtigt.`,
	},
	{
		match: nameHas("zusammenfassung", "beschreibung", "ergebnis"),
		text: `Das Vorhaben "{{.Name}}" umfasst den Neubau einer {{.KVLevel}}-kV-` +
			`HGÜ-Leitung ({{.Technology}}) über {{.LengthKm}} km durch ` +
			`{{join .States " und "}}. ` +
			`Die gemischte Bauweise (Freileitung/Erdkabel) trägt den örtlichen ` +
			`Gegebenheiten Rechnung.`,
	},
	{
		match: nameHas("anlagen"),
		text: "1. Übersichtskarte (1:25.000)\n" +
			"2. Detailkarten der betroffenen Abschnitte\n" +
			"3. Technische Erläuterungen\n" +
			"4. Relevante Gutachten und Nachweise",
	},
	{
		match: always,
		text: `[{{.Label}}] – Entwurf für das Vorhaben "{{.Name}}" ` +
			`({{.KVLevel}} kV {{.Technology}}, {{.LengthKm}} km, ` +
			`Bundesländer: {{join .States ", "}}). ` +
			`Dieser Textbaustein wurde automatisch generiert und sollte ` +
			`fachlich geprüft und ergänzt werden.`,
	},
}
