package seed

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"gridpermit/internal/domain"
)

// DemoProjectID identifies the bundled demo project.
const DemoProjectID = "P-DE-TSO-001"

//go:embed demo.yaml
var demoYAML []byte

// Demo decodes the bundled demo projects. Each call returns fresh values.
func Demo() ([]domain.Project, error) {
	dec := yaml.NewDecoder(bytes.NewReader(demoYAML))
	dec.KnownFields(true)
	var projects []domain.Project
	if err := dec.Decode(&projects); err != nil {
		return nil, fmt.Errorf("decode demo seed: %w", err)
	}
	return projects, nil
}
