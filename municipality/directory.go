// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package municipality holds the static directory of municipalities and
// their known statistics.
package municipality

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

//go:embed municipalities.yaml
var directoryYAML []byte

// Severity levels for a reported problem.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

type Problem struct {
	Name       string `yaml:"name" json:"name"`
	Severity   string `yaml:"severity" json:"severity"`
	Percentage int    `yaml:"percentage" json:"percentage"`
}

type Municipality struct {
	Slug            string         `yaml:"slug" json:"slug"`
	Name            string         `yaml:"name" json:"name"`
	Province        string         `yaml:"province" json:"province"`
	Population      int64          `yaml:"population" json:"population"`
	PopulationLabel string         `yaml:"-" json:"populationLabel"`
	Coordinates     []float64      `yaml:"coordinates" json:"coordinates,omitempty"`
	Problems        []Problem      `yaml:"problems" json:"problems,omitempty"`
	Facilities      map[string]int `yaml:"facilities" json:"facilities,omitempty"`
}

// Directory is a read-only lookup over the known municipalities.
type Directory struct {
	list   []Municipality
	bySlug map[string]int
}

// Default returns the built-in directory.
func Default() (*Directory, error) {
	return Parse(directoryYAML)
}

// Parse builds a directory from YAML.
func Parse(data []byte) (*Directory, error) {
	var doc struct {
		Municipalities []Municipality `yaml:"municipalities"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse municipality directory: %w", err)
	}

	d := &Directory{bySlug: make(map[string]int, len(doc.Municipalities))}
	for _, m := range doc.Municipalities {
		if m.Name == "" {
			return nil, fmt.Errorf("municipality %q has no name", m.Slug)
		}
		if m.Slug == "" {
			m.Slug = Slugify(m.Name)
		}
		if _, dup := d.bySlug[m.Slug]; dup {
			return nil, fmt.Errorf("duplicate municipality slug %q", m.Slug)
		}
		for _, p := range m.Problems {
			switch p.Severity {
			case SeverityLow, SeverityMedium, SeverityHigh:
			default:
				return nil, fmt.Errorf("municipality %q: unknown severity %q", m.Slug, p.Severity)
			}
		}
		if m.Population > 0 {
			m.PopulationLabel = humanize.Comma(m.Population)
		}
		d.bySlug[m.Slug] = len(d.list)
		d.list = append(d.list, m)
	}
	return d, nil
}

// All returns every municipality in directory order.
func (d *Directory) All() []Municipality {
	out := make([]Municipality, len(d.list))
	copy(out, d.list)
	return out
}

// BySlug looks a municipality up by slug, case-insensitively.
func (d *Directory) BySlug(slug string) (Municipality, bool) {
	i, ok := d.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return Municipality{}, false
	}
	return d.list[i], true
}

// ByName looks a municipality up by display name.
func (d *Directory) ByName(name string) (Municipality, bool) {
	return d.BySlug(Slugify(name))
}

// Slugify turns a display name into its URL slug: "Den Haag" -> "den-haag".
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
