// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"
	"github.com/lazy-cpp/serialstat/benchname"
	"github.com/lazy-cpp/serialstat/benchunit"
)

// A Dim is a dimension records can be grouped by. Its value is the
// name of the corresponding table column.
type Dim string

const (
	ByAdapter   Dim = "Adapter"
	ByData      Dim = "Data"
	ByOperation Dim = "Operation"
)

// A Group is a set of timings that share the values of one or more
// dimensions.
type Group struct {
	// Labels are the group's dimension values, in the order the
	// dimensions were requested.
	Labels []string

	// Values are the timings in the group, in input order.
	Values []float64

	// Mean is the arithmetic mean of Values.
	Mean float64
}

// Count returns the number of timings in g.
func (g Group) Count() int {
	return len(g.Values)
}

// row is the table form of a Record. Column names are field names.
type row struct {
	Category  string
	Adapter   string
	Data      string
	Operation string
	NS        float64
}

// newTable returns recs as a table.
func newTable(recs []Record) *table.Table {
	rows := make([]row, len(recs))
	for i, r := range recs {
		rows[i] = row{string(r.Category), r.Adapter, r.Data, r.Operation, r.NS}
	}
	return table.TableFromStructs(rows)
}

// GroupMeans selects the records of category cat, groups their
// timings by the dimensions in by, and returns each group and its
// mean. Groups are in order of first appearance in recs. With no
// dimensions, all records of cat form a single group.
func GroupMeans(recs []Record, cat benchname.Category, by ...Dim) []Group {
	var g table.Grouping = table.FilterEq(newTable(recs), "Category", string(cat))
	cols := make([]string, len(by))
	for i, d := range by {
		cols[i] = string(d)
	}
	g = table.GroupBy(g, cols...)
	return groups(g, len(cols))
}

// groups returns the non-empty tables of g as Groups. depth is the
// number of GroupBy columns that produced g.
func groups(g table.Grouping, depth int) []Group {
	var out []Group
	for _, gid := range g.Tables() {
		ns := g.Table(gid).MustColumn("NS").([]float64)
		if len(ns) == 0 {
			continue
		}
		out = append(out, Group{
			Labels: labels(gid, depth),
			Values: ns,
			Mean:   mean(ns),
		})
	}
	return out
}

// labels returns the innermost depth labels of gid, outermost first.
func labels(gid table.GroupID, depth int) []string {
	ls := make([]string, depth)
	for i := depth - 1; i >= 0; i-- {
		ls[i] = gid.Label().(string)
		gid = gid.Parent()
	}
	return ls
}

// mean returns the arithmetic mean of xs, summed in order.
func mean(xs []float64) float64 {
	return vec.Sum(xs) / float64(len(xs))
}

// A ScalingRow compares an adapter's mean timing across two data
// shapes.
type ScalingRow struct {
	Adapter  string
	From, To Group
}

// Overhead returns the overhead of s.To's mean over s.From's mean.
func (s ScalingRow) Overhead() benchunit.Delta {
	return benchunit.Overhead(s.From.Mean, s.To.Mean)
}

// Scaling selects the records of category cat and, for each adapter
// that has records with data from and records with data to, returns
// the mean timing of each. Adapters missing either are omitted.
// Rows are in order of each adapter's first appearance in recs.
func Scaling(recs []Record, cat benchname.Category, from, to string) []ScalingRow {
	var g table.Grouping = table.FilterEq(newTable(recs), "Category", string(cat))
	if len(g.Tables()) == 0 {
		return nil
	}
	g = table.Filter(g, func(data string) bool {
		return data == from || data == to
	}, string(ByData))
	g = table.GroupBy(g, string(ByAdapter), string(ByData))

	var out []ScalingRow
	byAdapter := make(map[string]int)
	for _, grp := range groups(g, 2) {
		adapter, data := grp.Labels[0], grp.Labels[1]
		i, ok := byAdapter[adapter]
		if !ok {
			i = len(out)
			byAdapter[adapter] = i
			out = append(out, ScalingRow{Adapter: adapter})
		}
		if data == from {
			out[i].From = grp
		} else {
			out[i].To = grp
		}
	}

	// Drop adapters with only one of the two shapes.
	keep := out[:0]
	for _, r := range out {
		if r.From.Count() > 0 && r.To.Count() > 0 {
			keep = append(keep, r)
		}
	}
	return keep
}
