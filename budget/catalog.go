// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package budget

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed facilities.yaml
var defaultCatalogYAML []byte

// Facility is one row of the cost reference table.
type Facility struct {
	Kind       string          `json:"kind"`
	SetupCost  decimal.Decimal `json:"setupCost"`
	AnnualCost decimal.Decimal `json:"annualCost"`
	Label      string          `json:"displayLabel"`
}

// Catalog is the immutable facility cost table.
type Catalog struct {
	entries []Facility
	byKind  map[string]Facility
}

type catalogFile struct {
	Facilities []struct {
		Kind       string `yaml:"kind"`
		SetupCost  amount `yaml:"setupCost"`
		AnnualCost amount `yaml:"annualCost"`
		Label      string `yaml:"label"`
	} `yaml:"facilities"`
}

// amount decodes a YAML scalar straight into a decimal.
type amount struct {
	decimal.Decimal
}

func (a *amount) UnmarshalYAML(n *yaml.Node) error {
	d, err := decimal.NewFromString(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid amount %q", n.Line, n.Value)
	}
	a.Decimal = d
	return nil
}

// DefaultCatalog returns the built-in cost table.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// LoadCatalog reads a cost table from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read facility costs: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses and validates a YAML cost table.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse facility costs: %w", err)
	}
	if len(file.Facilities) == 0 {
		return nil, errors.New("facility cost table is empty")
	}

	c := &Catalog{
		entries: make([]Facility, 0, len(file.Facilities)),
		byKind:  make(map[string]Facility, len(file.Facilities)),
	}
	for _, f := range file.Facilities {
		if f.Kind == "" {
			return nil, errors.New("facility kind is required")
		}
		if _, dup := c.byKind[f.Kind]; dup {
			return nil, fmt.Errorf("duplicate facility kind %q", f.Kind)
		}
		if f.SetupCost.IsNegative() || f.AnnualCost.IsNegative() {
			return nil, fmt.Errorf("facility %q has a negative cost", f.Kind)
		}
		label := f.Label
		if label == "" {
			label = f.Kind
		}
		entry := Facility{
			Kind:       f.Kind,
			SetupCost:  f.SetupCost.Decimal,
			AnnualCost: f.AnnualCost.Decimal,
			Label:      label,
		}
		c.entries = append(c.entries, entry)
		c.byKind[f.Kind] = entry
	}
	return c, nil
}

// Lookup returns the cost entry for kind.
func (c *Catalog) Lookup(kind string) (Facility, bool) {
	f, ok := c.byKind[kind]
	return f, ok
}

// Entries returns the table in file order. The slice is a copy.
func (c *Catalog) Entries() []Facility {
	out := make([]Facility, len(c.entries))
	copy(out, c.entries)
	return out
}
