// Copyright 2025 The varplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fusion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `sample	gene1	gene2	chrom1	position1	chrom2	position2	reads
S1	BCR	ABL1	22	23632600	9	133729451	184
S2	EML4	ALK	2	42522656	2	29446394	31
`

func TestParse(t *testing.T) {
	fs, err := Parse(strings.NewReader(sampleTable))
	require.NoError(t, err)
	require.Len(t, fs, 2)

	assert.Equal(t, &Fusion{
		Sample:    "S1",
		G1:        "BCR",
		G2:        "ABL1",
		Chrom1:    "22",
		Position1: 23632600,
		Chrom2:    "9",
		Position2: 133729451,
		Reads:     184,
	}, fs[0])
	assert.Equal(t, "BCR/ABL1", fs[0].Name())
	assert.Equal(t, "EML4/ALK", fs[1].Name())
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		name, input string
	}{
		{"empty", ""},
		{"badHeader", "sample\tgene1\nS1\tBCR\n"},
		{"badReads", strings.Replace(sampleTable, "184", "many", 1)},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(test.input))
			assert.Error(t, err)
		})
	}
}
