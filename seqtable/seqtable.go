// Copyright 2025 The varplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqtable bridges variant and fusion call records into go-gg
// tables and provides the handful of table transforms the report
// needs that the table package does not have natively.
package seqtable

import (
	"encoding/csv"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/omidi/varplot/fusion"
	"github.com/omidi/varplot/variant"
	"github.com/pkg/errors"
)

// ReadTSV reads a tab-separated table with a header row from r into
// a go-gg table. Column types are inferred by string coercion:
// columns whose every value parses as an integer or a float become
// numeric, all others stay strings.
func ReadTSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("missing header row")
	}
	return table.TableFromStrings(recs[0], recs[1:], true), nil
}

// VariantTable builds a table with one row per variant and the
// columns of variant.Columns.
func VariantTable(vs []*variant.Variant) *table.Table {
	n := len(vs)
	var (
		sample = make([]string, n)
		gene   = make([]string, n)
		cdna   = make([]string, n)
		chrom  = make([]string, n)
		pos    = make([]int, n)
		ref    = make([]string, n)
		alt    = make([]string, n)
		typ    = make([]string, n)
		frac   = make([]string, n)
		filter = make([]string, n)
	)
	for i, v := range vs {
		sample[i] = v.Sample
		gene[i] = v.Gene
		cdna[i] = v.CDNA
		chrom[i] = v.Chrom
		pos[i] = v.Position
		ref[i] = v.Ref
		alt[i] = v.Alt
		typ[i] = v.Type
		frac[i] = v.FractionRaw
		filter[i] = v.Filter
	}
	return new(table.Builder).
		Add("sample", sample).
		Add("gene", gene).
		Add("cdna", cdna).
		Add("chrom", chrom).
		Add("position", pos).
		Add("ref", ref).
		Add("alt", alt).
		Add("type", typ).
		Add("variant fraction", frac).
		Add("filter", filter).
		Done()
}

// AugmentedVariantTable builds VariantTable plus the derived columns
// the report works with: "variant id" (gene and coding-DNA change
// united), a numeric "variant fraction" replacing the percent
// string, "substitution" (ref>alt), and "deaminated" ("Yes"/"No").
func AugmentedVariantTable(vs []*variant.Variant) (*table.Table, error) {
	n := len(vs)
	var (
		ids   = make([]string, n)
		fracs = make([]float64, n)
		subs  = make([]string, n)
		deam  = make([]string, n)
	)
	for i, v := range vs {
		f, err := v.Fraction()
		if err != nil {
			return nil, errors.Wrapf(err, "variant %s", v.ID())
		}
		ids[i] = v.ID()
		fracs[i] = f
		subs[i] = v.Substitution()
		deam[i] = "No"
		if v.Deaminated() {
			deam[i] = "Yes"
		}
	}
	return table.NewBuilder(VariantTable(vs)).
		Add("variant id", ids).
		Add("variant fraction", fracs).
		Add("substitution", subs).
		Add("deaminated", deam).
		Done(), nil
}

// FusionTable builds a table with one row per fusion event and the
// columns of fusion.Columns, plus the derived "fusion" gene-pair
// column.
func FusionTable(fs []*fusion.Fusion) *table.Table {
	n := len(fs)
	var (
		sample = make([]string, n)
		g1     = make([]string, n)
		g2     = make([]string, n)
		chrom1 = make([]string, n)
		pos1   = make([]int, n)
		chrom2 = make([]string, n)
		pos2   = make([]int, n)
		reads  = make([]int, n)
		name   = make([]string, n)
	)
	for i, f := range fs {
		sample[i] = f.Sample
		g1[i] = f.G1
		g2[i] = f.G2
		chrom1[i] = f.Chrom1
		pos1[i] = f.Position1
		chrom2[i] = f.Chrom2
		pos2[i] = f.Position2
		reads[i] = f.Reads
		name[i] = f.Name()
	}
	return new(table.Builder).
		Add("sample", sample).
		Add("gene1", g1).
		Add("gene2", g2).
		Add("chrom1", chrom1).
		Add("position1", pos1).
		Add("chrom2", chrom2).
		Add("position2", pos2).
		Add("reads", reads).
		Add("fusion", name).
		Done()
}
