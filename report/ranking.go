// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/lazy-cpp/serialstat/benchagg"
	"github.com/lazy-cpp/serialstat/benchunit"
)

// A rankRow is an adapter's place in the ranking.
type rankRow struct {
	Adapter string
	Mean    float64
	Count   int

	// VsMiddle is the overhead of Mean over the median adapter's
	// mean, or "baseline" for the median adapter itself.
	VsMiddle string
}

// rank orders the adapters by their mean timing of category l.Category
// over all data and operations, fastest first. Ties keep the order of
// first appearance in recs.
func rank(recs []benchagg.Record, l Layout) []rankRow {
	groups := benchagg.GroupMeans(recs, l.Category, benchagg.ByAdapter)
	if len(groups) == 0 {
		return nil
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Mean < groups[j].Mean
	})

	mid := len(groups) / 2
	rows := make([]rankRow, len(groups))
	for i, g := range groups {
		vs := "baseline"
		if i != mid {
			vs = benchunit.FormatOverhead(groups[mid].Mean, g.Mean)
		}
		rows[i] = rankRow{g.Labels[0], g.Mean, g.Count(), vs}
	}
	return rows
}

// rankLabel returns the label of 0-based rank i.
func rankLabel(i int) string {
	switch i {
	case 0:
		return "1st"
	case 1:
		return "2nd"
	case 2:
		return "3rd"
	}
	return fmt.Sprintf("%d.", i+1)
}

// Ranking writes the overall ranking section.
func Ranking(w io.Writer, recs []benchagg.Record, l Layout) error {
	if err := section(w, "OVERALL PERFORMANCE RANKING", l); err != nil {
		return err
	}

	tab := newTable(6, 12, 12, 12, 12)
	tab.Row().Cell("Rank").Cell("Adapter").Cell("Avg Time").Cell("Benchmarks").Cell("vs Middle")
	tab.Rule('-')
	for i, r := range rank(recs, l) {
		tab.Row().Cell(rankLabel(i)).Cell(r.Adapter).Cell(benchunit.FormatTime(r.Mean))
		tab.Cell(fmt.Sprintf("%dx", r.Count)).Cell(r.VsMiddle)
	}
	return tab.Format(w)
}
