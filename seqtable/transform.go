// Copyright 2025 The varplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqtable

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// HeadRows returns the first n rows of each table in g, or the whole
// table if it has fewer than n rows.
func HeadRows(g table.Grouping, n int) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		k := n
		if t.Len() < k {
			k = t.Len()
		}
		return selectRows(t, rowIndexes(t)[:k])
	})
}

// Keep projects each table in g down to cols, in the given order.
// It is the complement of table.Remove.
func Keep(g table.Grouping, cols ...string) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var b table.Builder
		for _, col := range cols {
			b.Add(col, t.MustColumn(col))
		}
		return b.Done()
	})
}

// FilterIn filters g to rows whose col value is one of vals.
func FilterIn(g table.Grouping, col string, vals ...string) table.Grouping {
	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return table.Filter(g, func(v string) bool { return set[v] }, col)
}

// FilterMatch filters g to rows whose col value matches re.
func FilterMatch(g table.Grouping, col string, re *regexp.Regexp) table.Grouping {
	return table.Filter(g, re.MatchString, col)
}

// SortByDesc sorts each table in g by one or more columns in
// descending order, using later columns to break ties in earlier
// columns. The sort is stable. It is the descending counterpart of
// table.SortBy.
func SortByDesc(g table.Grouping, cols ...string) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		idxs := rowIndexes(t)
		sort.SliceStable(idxs, func(i, j int) bool {
			for _, col := range cols {
				switch c := less(t.MustColumn(col), idxs[i], idxs[j]); c {
				case -1:
					return false
				case 1:
					return true
				}
			}
			return false
		})
		return selectRows(t, idxs)
	})
}

// less compares rows i and j of column slice col, returning -1, 0,
// or 1. It understands the column types TableFromStrings coercion
// produces.
func less(col table.Slice, i, j int) int {
	switch c := col.(type) {
	case []int:
		switch {
		case c[i] < c[j]:
			return -1
		case c[i] > c[j]:
			return 1
		}
	case []float64:
		switch {
		case c[i] < c[j]:
			return -1
		case c[i] > c[j]:
			return 1
		}
	case []string:
		switch {
		case c[i] < c[j]:
			return -1
		case c[i] > c[j]:
			return 1
		}
	default:
		panic(fmt.Sprintf("cannot sort column of type %T", col))
	}
	return 0
}

// SampleN draws n rows from each table in g without replacement, in
// random order. If a table has fewer than n rows the whole table is
// drawn.
func SampleN(g table.Grouping, n int, rng *rand.Rand) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		k := n
		if t.Len() < k {
			k = t.Len()
		}
		return selectRows(t, rng.Perm(t.Len())[:k])
	})
}

// SampleFrac draws the given fraction of each table's rows without
// replacement, in random order. The row count rounds half away from
// zero.
func SampleFrac(g table.Grouping, frac float64, rng *rand.Rand) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		k := int(float64(t.Len())*frac + 0.5)
		if t.Len() < k {
			k = t.Len()
		}
		return selectRows(t, rng.Perm(t.Len())[:k])
	})
}

// Unite concatenates the values of cols row-wise into a single
// delimited string column named newCol. The new column takes the
// place of the first of cols; the source columns are dropped.
func Unite(g table.Grouping, newCol, sep string, cols ...string) table.Grouping {
	drop := make(map[string]bool, len(cols))
	for _, col := range cols {
		drop[col] = true
	}
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		united := make([]string, t.Len())
		parts := make([]string, len(cols))
		vals := make([]reflect.Value, len(cols))
		for j, col := range cols {
			vals[j] = reflect.ValueOf(t.MustColumn(col))
		}
		for i := range united {
			for j := range cols {
				parts[j] = fmt.Sprint(vals[j].Index(i).Interface())
			}
			united[i] = strings.Join(parts, sep)
		}

		var b table.Builder
		added := false
		for _, col := range t.Columns() {
			if !drop[col] {
				b.Add(col, t.Column(col))
			} else if !added {
				b.Add(newCol, united)
				added = true
			}
		}
		return b.Done()
	})
}

// Round rounds the named float64 columns of g to the given number of
// decimal places, in place.
func Round(g table.Grouping, digits int, cols ...string) table.Grouping {
	pow := math.Pow(10, float64(digits))
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		b := table.NewBuilder(t)
		for _, col := range cols {
			var xs []float64
			slice.Convert(&xs, t.MustColumn(col))
			out := make([]float64, len(xs))
			for i, x := range xs {
				out[i] = math.Round(x*pow) / pow
			}
			b.Add(col, out)
		}
		return b.Done()
	})
}

func rowIndexes(t *table.Table) []int {
	idxs := make([]int, t.Len())
	for i := range idxs {
		idxs[i] = i
	}
	return idxs
}

// selectRows builds a new table holding the rows of t given by idxs,
// in order. Indexes may repeat.
func selectRows(t *table.Table, idxs []int) *table.Table {
	var b table.Builder
	for _, col := range t.Columns() {
		b.Add(col, slice.Select(t.Column(col), idxs))
	}
	return b.Done()
}
