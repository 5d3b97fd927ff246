// Copyright 2025 The varplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"regexp"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/omidi/varplot/seqtable"
)

// A section is one step of the report: a title plus either a table
// or a plot.
type section struct {
	Title string
	Note  string

	Table table.Grouping

	Plot *gg.Plot
	W, H int
}

// cdnaSubRe matches coding-DNA changes that are plain single-base
// substitutions (e.g. "c.181T>G"), as opposed to indels.
var cdnaSubRe = regexp.MustCompile(`^c\.[0-9]+[ACGT]>[ACGT]$`)

// genesOfInterest is the gene set the membership filter step keys on.
var genesOfInterest = []string{"BRCA1", "BRCA2", "TP53"}

// buildSections runs the fixed transform sequence over the loaded
// tables. Every transform produces a fresh table; the inputs are
// never mutated. head caps the rows shown for the larger tables.
func buildSections(in *inputs, rng *rand.Rand, head int) ([]section, error) {
	aug, err := seqtable.AugmentedVariantTable(in.variants)
	if err != nil {
		return nil, err
	}
	ft := seqtable.FusionTable(in.fusions)
	sum := deamSummary(aug)

	secs := []section{
		{Title: "Overview", Note: overview(in, aug)},
		{
			Title: "Variant calls",
			Note:  fmt.Sprintf("First rows of the variant table (%d total).", in.rawVariants.Len()),
			Table: seqtable.HeadRows(in.rawVariants, head),
		},
		{
			Title: "Fusion calls",
			Note:  fmt.Sprintf("First rows of the fusion table (%d total).", in.rawFusions.Len()),
			Table: seqtable.HeadRows(in.rawFusions, head),
		},
		{
			Title: "Derived columns",
			Note: "Adds a variant id (gene plus coding-DNA change), the numeric " +
				"variant fraction parsed from the percent string, the ref>alt " +
				"substitution, and the deamination flag; keeps a column subset " +
				"and renames chrom to chromosome.",
			Table: seqtable.HeadRows(table.Rename(
				seqtable.Keep(aug, "sample", "variant id", "chrom", "position",
					"substitution", "deaminated", "variant fraction"),
				"chrom", "chromosome"), head),
		},
		{
			Title: "Passing SNVs",
			Note:  "filter = PASS and type = SNV.",
			Table: seqtable.HeadRows(
				table.FilterEq(table.FilterEq(aug, "filter", "PASS"), "type", "SNV"), head),
		},
		{
			Title: "Substitutions in genes of interest",
			Note: fmt.Sprintf("gene in %v and cdna matching %s (both conditions at once).",
				genesOfInterest, cdnaSubRe),
			Table: seqtable.HeadRows(
				seqtable.FilterMatch(
					seqtable.FilterIn(aug, "gene", genesOfInterest...),
					"cdna", cdnaSubRe), head),
		},
		{
			Title: "Non-indels or high fraction",
			Note:  "not INDEL, or variant fraction at least 50%.",
			Table: seqtable.HeadRows(table.Filter(aug,
				func(typ string, vf float64) bool { return typ != "INDEL" || vf >= 50 },
				"type", "variant fraction"), head),
		},
		{
			Title: "Top variants by fraction",
			Table: seqtable.HeadRows(seqtable.SortByDesc(aug, "variant fraction"), head),
		},
		{
			Title: "By gene and position",
			Table: seqtable.HeadRows(table.SortBy(aug, "gene", "position"), head),
		},
		{
			Title: "Random sample of 5 variants",
			Table: seqtable.SampleN(aug, 5, rng),
		},
		{
			Title: "Random 25% sample",
			Table: seqtable.SampleFrac(aug, 0.25, rng),
		},
		{
			Title: "Deamination summary",
			Note: "SNVs grouped by sample and substitution: row count and mean " +
				"variant fraction (two decimal places). C>T and G>A dominating " +
				"a sample indicates deamination damage.",
			Table: sum,
		},
		{
			Title: "Variant loci",
			Note:  "gene, chromosome, position and alleles united into one column.",
			Table: seqtable.HeadRows(
				seqtable.Unite(aug, "locus", "-", "gene", "chrom", "position", "ref", "alt"), head),
		},
	}

	for _, p := range []struct {
		title string
		f     func(table.Grouping) (*gg.Plot, int, int)
		data  table.Grouping
	}{
		{"Variants by substitution", plotCounts, sum},
		{"Mean variant fraction by substitution", plotMeanFraction, sum},
		{"Variant fraction by position", plotFractions, aug},
		{"Fusion supporting reads", plotFusionReads, ft},
	} {
		plot, w, h := p.f(p.data)
		secs = append(secs, section{Title: p.title, Plot: plot, W: w, H: h})
	}

	return secs, nil
}

// deamSummary groups the SNVs of the augmented variant table by
// sample and substitution and summarizes each group with its row
// count and mean variant fraction, rounded to two decimal places.
func deamSummary(aug table.Grouping) table.Grouping {
	snv := table.FilterEq(aug, "type", "SNV")
	sum := ggstat.Agg("sample", "substitution")(
		ggstat.AggCount("count"), ggstat.AggMean("variant fraction")).F(snv)
	return seqtable.Round(sum, 2, "mean variant fraction")
}

// overview summarizes both inputs in one line of prose.
func overview(in *inputs, aug table.Grouping) string {
	var fracs []float64
	for _, gid := range aug.Tables() {
		fracs = append(fracs, aug.Table(gid).MustColumn("variant fraction").([]float64)...)
	}
	mean := 0.0
	if len(fracs) > 0 {
		mean = stats.Mean(fracs)
	}

	samples := distinct(aug, "sample")
	var reads []float64
	for _, f := range in.fusions {
		reads = append(reads, float64(f.Reads))
	}
	geo := 0.0
	if len(reads) > 0 {
		geo = stats.GeoMean(reads)
	}
	return fmt.Sprintf("%d variants across %d samples, mean variant fraction %.1f%%; "+
		"%d fusion events, geomean %.0f supporting reads.",
		len(in.variants), samples, mean, len(in.fusions), geo)
}
