// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"
	"strings"

	"github.com/lazy-cpp/serialstat/benchagg"
	"github.com/lazy-cpp/serialstat/benchunit"
)

// Comparison writes the comparison section for data shape data.
//
// There is one row for each adapter in l.Adapters that has any timing
// of category l.Category for data. A row shows the adapter's
// serialize and deserialize timings and, for each operation, the
// overhead of the first of l.Runtime with a timing over l.Static.
// Anything missing is shown as N/A.
func Comparison(w io.Writer, recs []benchagg.Record, l Layout, data string) error {
	if err := section(w, strings.ToUpper(data)+" DATA PERFORMANCE", l); err != nil {
		return err
	}

	p := benchagg.Pivot(recs, l.Category, data)
	tab := newTable(12, 12, 12, 20, 20)
	tab.Row().Cell("Adapter").Cell(opSerialize).Cell(opDeserialize)
	tab.Cell("Runtime vs Static (S)").Cell("Runtime vs Static (D)")
	tab.Rule('-')
	for _, adapter := range l.Adapters {
		if !p.Has(adapter) {
			continue
		}
		tab.Row().Cell(adapter)
		for _, op := range []string{opSerialize, opDeserialize} {
			if ns, ok := p.Get(adapter, op); ok {
				tab.Cell(benchunit.FormatTime(ns))
			} else {
				tab.Cell(benchunit.NotAvailable)
			}
		}
		for _, op := range []string{opSerialize, opDeserialize} {
			k := benchagg.Key{Adapter: adapter, Data: data, Operation: op}
			tab.Cell(benchagg.CorrelateAny(recs, k, l.Static, l.Runtime...).String())
		}
	}
	return tab.Format(w)
}
