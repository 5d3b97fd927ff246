// Copyright 2025 The varplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `sample	gene	cdna	chrom	position	ref	alt	type	variant fraction	filter
S1	BRCA1	c.181T>G	17	41197701	C	T	SNV	23.5%	PASS
S1	TP53	c.743G>A	17	7577538	G	A	SNV	41.2%	PASS
S2	BRCA2	c.68_69del	13	32907425	TAA	T	INDEL	100%	strand_bias
`

func TestParse(t *testing.T) {
	vs, err := Parse(strings.NewReader(sampleTable))
	require.NoError(t, err)
	require.Len(t, vs, 3)

	assert.Equal(t, &Variant{
		Sample:      "S1",
		Gene:        "BRCA1",
		CDNA:        "c.181T>G",
		Chrom:       "17",
		Position:    41197701,
		Ref:         "C",
		Alt:         "T",
		Type:        "SNV",
		FractionRaw: "23.5%",
		Filter:      "PASS",
	}, vs[0])
	assert.Equal(t, "INDEL", vs[2].Type)
	assert.Equal(t, 32907425, vs[2].Position)
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		name, input string
	}{
		{"empty", ""},
		{"badHeader", "sample\tgene\nS1\tBRCA1\n"},
		{"badPosition", strings.Replace(sampleTable, "41197701", "x", 1)},
		{"raggedRow", sampleTable + "S3\tBRCA1\n"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(test.input))
			assert.Error(t, err)
		})
	}
}

func TestParseFraction(t *testing.T) {
	for _, test := range []struct {
		raw  string
		want float64
	}{
		{"23.5%", 23.5},
		{"100%", 100},
		{"0%", 0},
		{"0.1%", 0.1},
	} {
		got, err := ParseFraction(test.raw)
		require.NoError(t, err, "raw %q", test.raw)
		assert.Equal(t, test.want, got, "raw %q", test.raw)
	}

	for _, raw := range []string{"23.5", "", "%", "x%"} {
		_, err := ParseFraction(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestDeaminated(t *testing.T) {
	for _, test := range []struct {
		ref, alt string
		want     bool
	}{
		{"C", "T", true},
		{"G", "A", true},
		{"T", "C", false},
		{"A", "G", false},
		{"C", "A", false},
		{"G", "T", false},
		{"TAA", "T", false},
	} {
		v := &Variant{Ref: test.ref, Alt: test.alt}
		assert.Equal(t, test.want, v.Deaminated(), "%s>%s", test.ref, test.alt)
	}
}

func TestDerived(t *testing.T) {
	v := &Variant{
		Sample: "S1", Gene: "BRCA1", CDNA: "c.181T>G",
		Chrom: "17", Position: 41197701, Ref: "C", Alt: "T",
	}
	assert.Equal(t, "C>T", v.Substitution())
	assert.Equal(t, "BRCA1-c.181T>G", v.ID())
	assert.Equal(t, "BRCA1-17-41197701-C-T", v.Locus())
}
