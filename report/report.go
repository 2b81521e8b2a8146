// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders the serialization benchmark report.
//
// A report is a header followed by a sequence of sections, each a
// banner and a table:
//
//   - one comparison section per data shape, comparing the adapters'
//     serialize and deserialize timings and their runtime overhead
//     over statically bound code;
//   - a ranking of adapters by mean timing;
//   - a scaling analysis of each adapter from simple to complex data.
//
// Each section is computed independently from the full record set.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/lazy-cpp/serialstat/benchagg"
	"github.com/lazy-cpp/serialstat/gbench"
	"github.com/lazy-cpp/serialstat/internal/texttab"
)

// Operation names of the comparison table columns.
const (
	opSerialize   = "Serialize"
	opDeserialize = "Deserialize"
)

// Meta describes the input a report was computed from.
type Meta struct {
	// Measurements is the number of benchmark results in the
	// input, including any whose names weren't recognized.
	Measurements int

	Context gbench.Context
}

// Write writes the full report for recs to w.
func Write(w io.Writer, recs []benchagg.Record, l Layout, meta Meta) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Serialization Benchmark Analysis\n")
	fmt.Fprintf(&buf, "Generated from %d benchmark measurements\n", meta.Measurements)
	if line := contextLine(meta.Context); line != "" {
		fmt.Fprintf(&buf, "%s\n", line)
	}

	for _, data := range l.Comparisons {
		if err := Comparison(&buf, recs, l, data); err != nil {
			return err
		}
	}
	if err := Ranking(&buf, recs, l); err != nil {
		return err
	}
	if err := ScalingAnalysis(&buf, recs, l); err != nil {
		return err
	}

	rule := strings.Repeat("=", l.Width)
	fmt.Fprintf(&buf, "\n%s\nAnalysis complete!\n%s\n", rule, rule)

	_, err := w.Write(buf.Bytes())
	return err
}

// contextLine summarizes the machine the benchmarks ran on, or
// returns "" if nothing is known about it.
func contextLine(c gbench.Context) string {
	var parts []string
	if c.HostName != "" {
		parts = append(parts, "host: "+c.HostName)
	}
	if c.NumCPUs > 0 {
		parts = append(parts, fmt.Sprintf("cpus: %d", c.NumCPUs))
	}
	if c.Date != "" {
		parts = append(parts, "date: "+c.Date)
	}
	return strings.Join(parts, "  ")
}

// section writes a section banner to w.
func section(w io.Writer, title string, l Layout) error {
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}
	return texttab.Banner(w, title, l.Width, '=')
}

// newTable returns a table whose columns have the given minimum
// widths.
func newTable(widths ...int) *texttab.Table {
	tab := new(texttab.Table)
	for col, w := range widths {
		tab.SetMinWidth(col, w)
	}
	return tab
}
