// Copyright 2025 The varplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fusion reads gene-fusion call tables.
//
// A fusion table is a tab-separated file with a header row and one
// row per detected fusion event per sample.
package fusion

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Columns is the header of a fusion table, in order.
var Columns = []string{
	"sample", "gene1", "gene2",
	"chrom1", "position1", "chrom2", "position2", "reads",
}

// Fusion records a detected hybrid gene event joining two previously
// separate loci (one line of a fusion table). Gene 1 is the 5'
// partner and gene 2 the 3' partner.
type Fusion struct {
	// Sample is the sequencing library the fusion was called in.
	Sample string

	// G1 and G2 are the 5' and 3' partner gene symbols.
	G1, G2 string

	// Chrom1/Position1 and Chrom2/Position2 are the breakpoints
	// on the two partner loci. Positions are 1-based.
	Chrom1    string
	Position1 int
	Chrom2    string
	Position2 int

	// Reads is the number of read pairs supporting the event.
	Reads int
}

// Name returns the conventional gene-pair label, e.g. "BCR/ABL1".
func (f *Fusion) Name() string {
	return f.G1 + "/" + f.G2
}

// Parse parses a tab-separated fusion table from r. The first row
// must be a header matching Columns.
func Parse(r io.Reader) ([]*Fusion, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("missing header row")
	}
	if len(recs[0]) != len(Columns) {
		return nil, errors.Errorf("header has %d columns; want %d", len(recs[0]), len(Columns))
	}
	for i, col := range Columns {
		if recs[0][i] != col {
			return nil, errors.Errorf("header column %d is %q; want %q", i+1, recs[0][i], col)
		}
	}

	fs := make([]*Fusion, 0, len(recs)-1)
	for i, rec := range recs[1:] {
		f := &Fusion{
			Sample: rec[0],
			G1:     rec[1],
			G2:     rec[2],
			Chrom1: rec[3],
			Chrom2: rec[5],
		}
		for _, fld := range []struct {
			dst *int
			val string
		}{
			{&f.Position1, rec[4]},
			{&f.Position2, rec[6]},
			{&f.Reads, rec[7]},
		} {
			n, err := strconv.Atoi(fld.val)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d: bad count %q", i+2, fld.val)
			}
			*fld.dst = n
		}
		fs = append(fs, f)
	}
	return fs, nil
}
