// Copyright 2025 The varplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command varreport renders a QC report over a variant call table
// and a gene-fusion table.
//
// Both inputs are tab-separated files with a header row. varreport
// loads them once and runs a fixed sequence of tabular transforms
// (derived columns, projections, filters, sorts, random samples, a
// grouped deamination summary, and column unification), printing
// each result as a table. With -html it additionally renders bar and
// scatter charts and emits a self-contained HTML report.
//
// Flag defaults may be supplied through VARPLOT_* environment
// variables (see config).
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/omidi/varplot/fusion"
	"github.com/omidi/varplot/seqtable"
	"github.com/omidi/varplot/variant"
	"github.com/pkg/errors"

	"github.com/aclements/go-gg/table"
)

// config holds environment-sourced flag defaults.
type config struct {
	Variants string `envconfig:"VARPLOT_VARIANTS"`
	Fusions  string `envconfig:"VARPLOT_FUSIONS"`
	Seed     int64  `envconfig:"VARPLOT_SEED"`
	Out      string `envconfig:"VARPLOT_OUT"`
}

func main() {
	log.SetPrefix("varreport: ")
	log.SetFlags(0)

	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal(err)
	}

	var (
		flagVariants = flag.String("variants", cfg.Variants, "read variant table from `file`")
		flagFusions  = flag.String("fusions", cfg.Fusions, "read fusion table from `file`")
		flagOut      = flag.String("o", cfg.Out, "write output to `file` (default: stdout)")
		flagHTML     = flag.Bool("html", false, "write an HTML report with plots")
		flagSeed     = flag.Int64("seed", cfg.Seed, "seed the sampling steps with `n` (0: time-based)")
		flagHead     = flag.Int("head", 6, "show at most `n` rows per table")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *flagVariants == "" || *flagFusions == "" || flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	seed := *flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	in, err := loadInputs(*flagVariants, *flagFusions)
	if err != nil {
		log.Fatal(err)
	}

	secs, err := buildSections(in, rng, *flagHead)
	if err != nil {
		log.Fatal(err)
	}

	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	w := bufio.NewWriter(f)
	defer w.Flush()

	if *flagHTML {
		err = writeHTML(w, secs)
	} else {
		err = writeText(w, secs)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// inputs holds both source tables, as typed records and as
// string-coerced go-gg tables.
type inputs struct {
	variants []*variant.Variant
	fusions  []*fusion.Fusion

	// rawVariants and rawFusions mirror the input files with
	// column types inferred by string coercion, for display.
	rawVariants *table.Table
	rawFusions  *table.Table
}

func loadInputs(variantPath, fusionPath string) (*inputs, error) {
	in := new(inputs)

	data, err := os.ReadFile(variantPath)
	if err != nil {
		return nil, err
	}
	if in.variants, err = variant.Parse(bytes.NewReader(data)); err != nil {
		return nil, errors.Wrapf(err, "%s", variantPath)
	}
	if in.rawVariants, err = seqtable.ReadTSV(bytes.NewReader(data)); err != nil {
		return nil, errors.Wrapf(err, "%s", variantPath)
	}

	data, err = os.ReadFile(fusionPath)
	if err != nil {
		return nil, err
	}
	if in.fusions, err = fusion.Parse(bytes.NewReader(data)); err != nil {
		return nil, errors.Wrapf(err, "%s", fusionPath)
	}
	if in.rawFusions, err = seqtable.ReadTSV(bytes.NewReader(data)); err != nil {
		return nil, errors.Wrapf(err, "%s", fusionPath)
	}

	return in, nil
}
