// Copyright 2025 The varplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// bars is a Stat that expands one row per (category, group, value)
// into dodged bar geometry: each row becomes its own two-row table
// bracketing the bar's left and right edge, so a LayerArea over the
// "bar" column draws each bar as a separate filled rectangle.
//
// X names a string category column and Y a numeric value column.
// Fill optionally names a string column to dodge by within each
// category; bars of the same category are laid out side by side in
// group order. All other columns are carried over as constants, so
// the result can still be faceted. Each bar also gets a "tooltip"
// column labeling it.
type bars struct {
	X, Y, Fill string

	// Gap is the fraction of each category slot left empty,
	// split evenly on both sides. 0 means the default of 0.2.
	Gap float64
}

func (b bars) F(g table.Grouping) table.Grouping {
	gap := b.Gap
	if gap == 0 {
		gap = 0.2
	}
	var out table.GroupingBuilder
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		xs := t.MustColumn(b.X).([]string)
		var ys []float64
		slice.Convert(&ys, t.MustColumn(b.Y))
		fills := make([]string, len(xs))
		if b.Fill != "" {
			fills = t.MustColumn(b.Fill).([]string)
		}

		// With no Fill, or Fill equal to the category column,
		// every category holds a single full-width bar;
		// otherwise bars dodge by global group order so the
		// same group aligns across categories.
		_, catIdx := levels(xs)
		grps, grpIdx := levels(fills)
		w := 1 - gap
		if b.Fill != "" && b.Fill != b.X {
			w /= float64(len(grps))
		} else {
			for k := range grpIdx {
				grpIdx[k] = 0
			}
		}

		rest := []string{}
		for _, col := range t.Columns() {
			if col != b.X && col != b.Y && col != b.Fill {
				rest = append(rest, col)
			}
		}

		for i := range ys {
			xl := float64(catIdx[xs[i]]) - 0.5 + gap/2 + float64(grpIdx[fills[i]])*w
			label := xs[i]
			if fills[i] != "" && fills[i] != xs[i] {
				label += " " + fills[i]
			}
			bt := new(table.Builder).
				Add("bar", []float64{xl, xl + w}).
				Add(b.Y, []float64{ys[i], ys[i]}).
				AddConst(b.X, xs[i]).
				AddConst("tooltip", fmt.Sprintf("%s: %v", label, ys[i]))
			if b.Fill != "" {
				bt.AddConst(b.Fill, fills[i])
			}
			for _, col := range rest {
				bt.AddConst(col, reflect.ValueOf(t.MustColumn(col)).Index(i).Interface())
			}
			out.Add(gid.Extend(i), bt.Done())
		}
	}
	return out.Done()
}

// levels returns the distinct values of xs in first-appearance order
// and the index of each value.
func levels(xs []string) ([]string, map[string]int) {
	var vals []string
	idx := make(map[string]int)
	for _, x := range xs {
		if _, ok := idx[x]; !ok {
			idx[x] = len(vals)
			vals = append(vals, x)
		}
	}
	return vals, idx
}

// log10Col is a Stat that adds column Out holding log10 of column
// Col.
type log10Col struct {
	Col, Out string
}

func (s log10Col) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(s.Col))
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = math.Log10(x)
		}
		return table.NewBuilder(t).Add(s.Out, out).Done()
	})
}

// plotCounts builds a dodged bar chart of per-sample variant counts
// split by substitution, from the deamination summary table.
func plotCounts(sum table.Grouping) (*gg.Plot, int, int) {
	nsamples := distinct(sum, "sample")
	plot := gg.NewPlot(sum)
	plot.Stat(bars{X: "substitution", Y: "count", Fill: "substitution"})
	plot.Add(gg.FacetX{Col: "sample"})
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.LayerArea{X: "bar", Upper: "count", Fill: "substitution"})
	plot.Add(gg.LayerTooltips{X: "bar", Y: "count", Label: "tooltip"})
	plot.Add(gg.Title("Variants by substitution"),
		gg.AxisLabel("x", "substitution"),
		gg.AxisLabel("y", "variants"))
	return plot, 300 * nsamples, 300
}

// plotMeanFraction builds a dodged bar chart of per-sample mean
// variant fraction split by substitution, from the deamination
// summary table.
func plotMeanFraction(sum table.Grouping) (*gg.Plot, int, int) {
	nsamples := distinct(sum, "sample")
	plot := gg.NewPlot(sum)
	plot.Stat(bars{X: "substitution", Y: "mean variant fraction", Fill: "substitution"})
	plot.Add(gg.FacetX{Col: "sample"})
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.LayerArea{X: "bar", Upper: "mean variant fraction", Fill: "substitution"})
	plot.Add(gg.LayerTooltips{X: "bar", Y: "mean variant fraction", Label: "tooltip"})
	plot.Add(gg.Title("Mean variant fraction by substitution"),
		gg.AxisLabel("x", "substitution"),
		gg.AxisLabel("y", "mean variant fraction (%)"))
	return plot, 300 * nsamples, 300
}

// plotFractions builds a scatter of variant fraction against genome
// position, one facet per chromosome, colored by variant type.
func plotFractions(aug table.Grouping) (*gg.Plot, int, int) {
	nchroms := distinct(aug, "chrom")
	plot := gg.NewPlot(aug)
	plot.Add(gg.FacetX{Col: "chrom", SplitXScales: true})
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.LayerPoints{X: "position", Y: "variant fraction", Color: "type"})
	plot.Add(gg.Title("Variant fraction by position"),
		gg.AxisLabel("y", "variant fraction (%)"))
	return plot, 250 * nchroms, 350
}

// plotFusionReads builds a scatter of supporting reads (log10)
// against the 5' breakpoint position, colored by sample.
func plotFusionReads(ft table.Grouping) (*gg.Plot, int, int) {
	plot := gg.NewPlot(ft)
	plot.Stat(log10Col{Col: "reads", Out: "log10 reads"})
	plot.Add(gg.LayerPoints{X: "position1", Y: "log10 reads", Color: "sample"})
	plot.Add(gg.LayerTooltips{X: "position1", Y: "log10 reads", Label: "fusion"})
	plot.Add(gg.Title("Fusion supporting reads"),
		gg.AxisLabel("x", "5' breakpoint position"),
		gg.AxisLabel("y", "log10(reads)"))
	return plot, 600, 350
}

// distinct counts the distinct string values of col across g.
func distinct(g table.Grouping, col string) int {
	seen := make(map[string]bool)
	for _, gid := range g.Tables() {
		for _, v := range g.Table(gid).MustColumn(col).([]string) {
			seen[v] = true
		}
	}
	if len(seen) == 0 {
		return 1
	}
	return len(seen)
}
