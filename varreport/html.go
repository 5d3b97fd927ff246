// Copyright 2025 The varplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"reflect"

	"github.com/aclements/go-gg/table"
)

const htmlReport = `
<html>
  <head>
    <meta charset="utf-8" />
    <title>Variant and fusion report</title>
    <style>
body {
  font-family: sans-serif;
  color: #222;
}
p.note {
  color: #777;
  max-width: 50em;
}
p.invocation {
  color: #777;
  font-family: monospace;
}
table {
  border-spacing: 0;
  border-collapse: collapse;
}
table>tbody>tr>td, table>tbody>tr>th, table>thead>tr>th {
  padding: 4px 12px;
  line-height: 1.4;
}
table>tbody>tr>td {
  border-top: 1px solid #ddd;
}
table>thead>tr>th {
  vertical-align: bottom;
  border-bottom: 2px solid #ddd;
  text-align: left;
}
    </style>
  </head>
  <body>
    <h1>Variant and fusion report</h1>
    <p class="invocation">generated by: {{.Invocation}}</p>
    {{range .Sections}}
    <h2>{{.Title}}</h2>
    {{if .Note}}<p class="note">{{.Note}}</p>{{end}}
    {{if .Cols}}
    <table>
      <thead>
        <tr>{{range .Cols}}<th>{{.}}</th>{{end}}</tr>
      </thead>
      <tbody>
        {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
        {{end}}
      </tbody>
    </table>
    {{end}}
    {{.SVG}}
    {{end}}
  </body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlReport))

type htmlSection struct {
	Title string
	Note  string
	Cols  []string
	Rows  [][]string
	SVG   template.HTML
}

// writeHTML renders every section into a self-contained HTML report,
// with plots inlined as SVG.
func writeHTML(w io.Writer, secs []section) error {
	data := struct {
		Invocation string
		Sections   []htmlSection
	}{Invocation: invocation()}

	for _, sec := range secs {
		hs := htmlSection{Title: sec.Title, Note: sec.Note}
		switch {
		case sec.Table != nil:
			hs.Cols, hs.Rows = tableCells(sec.Table)
		case sec.Plot != nil:
			var buf bytes.Buffer
			if err := sec.Plot.WriteSVG(&buf, sec.W, sec.H); err != nil {
				return err
			}
			hs.SVG = template.HTML(buf.String())
		}
		data.Sections = append(data.Sections, hs)
	}

	return htmlTemplate.Execute(w, data)
}

// tableCells flattens g into a header row and formatted body cells.
func tableCells(g table.Grouping) (cols []string, rows [][]string) {
	cols = g.Columns()
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		vals := make([]reflect.Value, len(cols))
		for j, col := range cols {
			vals[j] = reflect.ValueOf(t.MustColumn(col))
		}
		for i := 0; i < t.Len(); i++ {
			row := make([]string, len(cols))
			for j := range cols {
				row[j] = fmt.Sprint(vals[j].Index(i).Interface())
			}
			rows = append(rows, row)
		}
	}
	return cols, rows
}
