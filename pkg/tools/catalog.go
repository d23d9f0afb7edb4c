// Package tools exposes the Mailchimp client as a catalog of named, read-only
// MCP tools and dispatches tool calls to the client.
package tools

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Param types accepted in catalog.yaml
const (
	ParamString = "string"
	ParamNumber = "number"
)

// Param describes a single tool argument. All params are required.
type Param struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// Descriptor is a catalog entry as declared in catalog.yaml
type Descriptor struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Params      []Param `yaml:"params"`
}

// Definition is the wire form of a tool in a tools/list response.
type Definition struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// InputSchema is the JSON Schema object advertised for a tool's arguments.
type InputSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]SchemaProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

// SchemaProperty describes one property of an InputSchema
type SchemaProperty struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// LoadCatalog parses the embedded catalog and checks it for duplicates and
// unsupported param types.
func LoadCatalog() ([]Descriptor, error) {
	return parseCatalog(catalogYAML)
}

func parseCatalog(data []byte) ([]Descriptor, error) {
	var descriptors []Descriptor
	if err := yaml.Unmarshal(data, &descriptors); err != nil {
		return nil, fmt.Errorf("failed to parse tool catalog: %w", err)
	}

	seen := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		if d.Name == "" {
			return nil, fmt.Errorf("tool catalog entry without a name")
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("duplicate tool %q in catalog", d.Name)
		}
		seen[d.Name] = true

		for _, p := range d.Params {
			if p.Type != ParamString && p.Type != ParamNumber {
				return nil, fmt.Errorf("tool %q: param %q has unsupported type %q", d.Name, p.Name, p.Type)
			}
		}
	}
	return descriptors, nil
}

// Definition converts the descriptor into its tools/list form.
func (d Descriptor) Definition() Definition {
	schema := InputSchema{
		Type:       "object",
		Properties: make(map[string]SchemaProperty, len(d.Params)),
		Required:   make([]string, 0, len(d.Params)),
	}
	for _, p := range d.Params {
		schema.Properties[p.Name] = SchemaProperty{Type: p.Type, Description: p.Description}
		schema.Required = append(schema.Required, p.Name)
	}
	return Definition{
		Name:        d.Name,
		Description: d.Description,
		InputSchema: schema,
	}
}
