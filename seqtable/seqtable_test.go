// Copyright 2025 The varplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqtable

import (
	"strings"
	"testing"

	"github.com/omidi/varplot/fusion"
	"github.com/omidi/varplot/variant"
)

func TestReadTSV(t *testing.T) {
	tab, err := ReadTSV(strings.NewReader("gene\tposition\tvf\nBRCA1\t41197701\t23.5\nTP53\t7577538\t41.2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if v, w := tab.Columns(), []string{"gene", "position", "vf"}; !de(v, w) {
		t.Fatalf("columns should be %v; got %v", w, v)
	}
	// Types are inferred by coercion.
	if v, w := tab.Column("gene"), []string{"BRCA1", "TP53"}; !de(v, w) {
		t.Fatalf("want %v; got %v", w, v)
	}
	if v, w := tab.Column("position"), []int{41197701, 7577538}; !de(v, w) {
		t.Fatalf("want %v; got %v", w, v)
	}
	if v, w := tab.Column("vf"), []float64{23.5, 41.2}; !de(v, w) {
		t.Fatalf("want %v; got %v", w, v)
	}

	if _, err := ReadTSV(strings.NewReader("")); err == nil {
		t.Fatal("empty input should be an error")
	}
}

func testVariants() []*variant.Variant {
	return []*variant.Variant{
		{Sample: "S1", Gene: "BRCA1", CDNA: "c.181T>G", Chrom: "17", Position: 41197701,
			Ref: "C", Alt: "T", Type: "SNV", FractionRaw: "23.5%", Filter: "PASS"},
		{Sample: "S2", Gene: "TP53", CDNA: "c.743G>A", Chrom: "17", Position: 7577538,
			Ref: "T", Alt: "C", Type: "SNV", FractionRaw: "100%", Filter: "PASS"},
	}
}

func TestVariantTable(t *testing.T) {
	tab := VariantTable(testVariants())
	if v, w := tab.Columns(), variant.Columns; !de(v, w) {
		t.Fatalf("columns should be %v; got %v", w, v)
	}
	if v, w := tab.Column("position"), []int{41197701, 7577538}; !de(v, w) {
		t.Fatalf("want %v; got %v", w, v)
	}
	if v, w := tab.Column("variant fraction"), []string{"23.5%", "100%"}; !de(v, w) {
		t.Fatalf("want %v; got %v", w, v)
	}
}

func TestAugmentedVariantTable(t *testing.T) {
	tab, err := AugmentedVariantTable(testVariants())
	if err != nil {
		t.Fatal(err)
	}
	if v, w := tab.Column("variant id"), []string{"BRCA1-c.181T>G", "TP53-c.743G>A"}; !de(v, w) {
		t.Fatalf("want %v; got %v", w, v)
	}
	if v, w := tab.Column("variant fraction"), []float64{23.5, 100}; !de(v, w) {
		t.Fatalf("want %v; got %v", w, v)
	}
	if v, w := tab.Column("substitution"), []string{"C>T", "T>C"}; !de(v, w) {
		t.Fatalf("want %v; got %v", w, v)
	}
	if v, w := tab.Column("deaminated"), []string{"Yes", "No"}; !de(v, w) {
		t.Fatalf("want %v; got %v", w, v)
	}

	vs := testVariants()
	vs[0].FractionRaw = "23.5"
	if _, err := AugmentedVariantTable(vs); err == nil {
		t.Fatal("malformed fraction should be an error")
	}
}

func TestFusionTable(t *testing.T) {
	tab := FusionTable([]*fusion.Fusion{
		{Sample: "S1", G1: "BCR", G2: "ABL1", Chrom1: "22", Position1: 23632600,
			Chrom2: "9", Position2: 133729451, Reads: 184},
	})
	if v, w := tab.Column("fusion"), []string{"BCR/ABL1"}; !de(v, w) {
		t.Fatalf("want %v; got %v", w, v)
	}
	if v, w := tab.Column("reads"), []int{184}; !de(v, w) {
		t.Fatalf("want %v; got %v", w, v)
	}
}
