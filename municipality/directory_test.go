// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package municipality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	all := d.All()
	require.Len(t, all, 7)
	assert.Equal(t, "amsterdam", all[0].Slug)

	ams, ok := d.BySlug("amsterdam")
	require.True(t, ok)
	assert.Equal(t, "Noord-Holland", ams.Province)
	assert.Equal(t, "873,000", ams.PopulationLabel)
	assert.Equal(t, 120, ams.Facilities["school"])
	require.Len(t, ams.Problems, 3)
	assert.Equal(t, SeverityHigh, ams.Problems[0].Severity)

	leiden, ok := d.BySlug("leiden")
	require.True(t, ok)
	assert.Empty(t, leiden.Problems)
}

func TestLookups(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	m, ok := d.ByName("Den Haag")
	require.True(t, ok)
	assert.Equal(t, "den-haag", m.Slug)

	_, ok = d.BySlug(" Rotterdam ")
	assert.True(t, ok)

	_, ok = d.BySlug("atlantis")
	assert.False(t, ok)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Amsterdam":              "amsterdam",
		"Den Haag":               "den-haag",
		"  Alphen aan den Rijn ": "alphen-aan-den-rijn",
		"":                       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"no name":      "municipalities:\n  - slug: x\n",
		"duplicate":    "municipalities:\n  - name: A\n  - name: a\n",
		"bad severity": "municipalities:\n  - name: A\n    problems:\n      - {name: p, severity: extreme, percentage: 1}\n",
		"not yaml":     "municipalities: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_DerivesSlug(t *testing.T) {
	d, err := Parse([]byte("municipalities:\n  - name: Bergen op Zoom\n"))
	require.NoError(t, err)

	m, ok := d.BySlug("bergen-op-zoom")
	require.True(t, ok)
	assert.Empty(t, m.PopulationLabel)
}
