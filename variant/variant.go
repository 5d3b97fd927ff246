// Copyright 2025 The varplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package variant reads variant call tables.
//
// A variant table is a tab-separated file with a header row and one
// row per detected variant. The column names and their order are the
// only contract; see Columns for the expected set.
package variant

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Columns is the header of a variant table, in order.
var Columns = []string{
	"sample", "gene", "cdna", "chrom", "position",
	"ref", "alt", "type", "variant fraction", "filter",
}

// Variant records a single detected difference between a sample's
// sequenced DNA and the reference genome (one line of a variant
// table).
type Variant struct {
	// Sample is the sequencing library the variant was called in.
	Sample string

	// Gene is the annotated gene symbol at the variant position.
	Gene string

	// CDNA is the coding-DNA change in HGVS notation (e.g.
	// "c.68_69del").
	CDNA string

	// Chrom and Position locate the variant on the reference
	// genome. Position is 1-based.
	Chrom    string
	Position int

	// Ref and Alt are the reference and alternate alleles.
	Ref, Alt string

	// Type classifies the variant (e.g. "SNV", "INDEL").
	Type string

	// FractionRaw is the variant fraction exactly as written in
	// the table, with a trailing percent sign (e.g. "23.5%"). Use
	// Fraction to get the numeric value.
	FractionRaw string

	// Filter is the caller's filter status (e.g. "PASS").
	Filter string
}

// Parse parses a tab-separated variant table from r. The first row
// must be a header matching Columns.
func Parse(r io.Reader) ([]*Variant, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("missing header row")
	}
	if err := checkHeader(recs[0], Columns); err != nil {
		return nil, err
	}

	vs := make([]*Variant, 0, len(recs)-1)
	for i, rec := range recs[1:] {
		pos, err := strconv.Atoi(rec[4])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: bad position %q", i+2, rec[4])
		}
		vs = append(vs, &Variant{
			Sample:      rec[0],
			Gene:        rec[1],
			CDNA:        rec[2],
			Chrom:       rec[3],
			Position:    pos,
			Ref:         rec[5],
			Alt:         rec[6],
			Type:        rec[7],
			FractionRaw: rec[8],
			Filter:      rec[9],
		})
	}
	return vs, nil
}

func checkHeader(got, want []string) error {
	if len(got) != len(want) {
		return errors.Errorf("header has %d columns; want %d", len(got), len(want))
	}
	for i, col := range want {
		if got[i] != col {
			return errors.Errorf("header column %d is %q; want %q", i+1, got[i], col)
		}
	}
	return nil
}

// Fraction parses the percentage-formatted variant fraction. The
// result is in percentage points: "23.5%" yields 23.5 and "100%"
// yields 100.
func (v *Variant) Fraction() (float64, error) {
	return ParseFraction(v.FractionRaw)
}

// ParseFraction parses a percentage-formatted variant fraction
// string such as "23.5%".
func ParseFraction(s string) (float64, error) {
	t := strings.TrimSuffix(s, "%")
	if t == s {
		return 0, errors.Errorf("variant fraction %q missing %% sign", s)
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "bad variant fraction %q", s)
	}
	return f, nil
}

// Deaminated reports whether the variant looks like a cytosine
// deamination artifact: a C→T substitution, or its reverse-strand
// image G→A. Elevated deamination counts indicate a degraded or
// low-quality library.
func (v *Variant) Deaminated() bool {
	return (v.Ref == "C" && v.Alt == "T") || (v.Ref == "G" && v.Alt == "A")
}

// Substitution returns the ref>alt substitution label (e.g. "C>T").
func (v *Variant) Substitution() string {
	return v.Ref + ">" + v.Alt
}

// ID returns a synthesized variant identifier joining the gene and
// coding-DNA change, e.g. "BRCA1-c.68_69del".
func (v *Variant) ID() string {
	return v.Gene + "-" + v.CDNA
}

// Locus returns the gene, chromosome, position and alleles united
// into one delimited string, e.g. "BRCA1-17-41197701-C-T".
func (v *Variant) Locus() string {
	return strings.Join([]string{
		v.Gene, v.Chrom, strconv.Itoa(v.Position), v.Ref, v.Alt,
	}, "-")
}
