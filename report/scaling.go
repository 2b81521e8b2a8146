// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/lazy-cpp/serialstat/benchagg"
	"github.com/lazy-cpp/serialstat/benchunit"
)

// ScalingAnalysis writes the complexity scaling section. Adapters
// without timings for both data shapes of l.Scaling are left out.
func ScalingAnalysis(w io.Writer, recs []benchagg.Record, l Layout) error {
	if err := section(w, "COMPLEXITY SCALING ANALYSIS", l); err != nil {
		return err
	}

	tab := newTable(12, 12, 12, 12)
	tab.Row().Cell("Adapter").Cell(l.Scaling.From + " Avg").Cell(l.Scaling.To + " Avg").Cell("Scaling")
	tab.Rule('-')
	for _, r := range benchagg.Scaling(recs, l.Category, l.Scaling.From, l.Scaling.To) {
		tab.Row().Cell(r.Adapter)
		tab.Cell(benchunit.FormatTime(r.From.Mean)).Cell(benchunit.FormatTime(r.To.Mean))
		tab.Cell(r.Overhead().String())
	}
	return tab.Format(w)
}
