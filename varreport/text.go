// Copyright 2025 The varplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/kballard/go-shellquote"
)

// invocation returns the command line that produced this report,
// quoted so it can be rerun as-is.
func invocation() string {
	return shellquote.Join(os.Args...)
}

// writeText prints every section as a plain-text table. Chart
// sections are only rendered in HTML mode.
func writeText(w io.Writer, secs []section) error {
	fmt.Fprintf(w, "generated by: %s\n", invocation())
	for _, sec := range secs {
		fmt.Fprintf(w, "\n== %s ==\n", sec.Title)
		if sec.Note != "" {
			fmt.Fprintf(w, "%s\n", sec.Note)
		}
		switch {
		case sec.Table != nil:
			fmt.Fprintln(w)
			table.Fprint(w, sec.Table)
		case sec.Plot != nil:
			fmt.Fprintln(w, "(chart omitted; rerun with -html)")
		}
	}
	return nil
}
