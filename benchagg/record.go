// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchagg correlates and aggregates decoded serialization
// benchmark results.
//
// Every function in this package is a pure view over a []Record. When
// more than one record shares the same category and key, lookups
// (Lookup, Correlate, Pivot) use the last such record in input order.
// Averaging functions (GroupMeans, Scaling) use all of them.
package benchagg

import (
	"github.com/lazy-cpp/serialstat/benchname"
	"github.com/lazy-cpp/serialstat/gbench"
)

// A Record is a benchmark result with its decoded name.
type Record struct {
	benchname.Name

	// NS is the benchmark's CPU time per iteration in nanoseconds.
	NS float64

	// Index is the position of the result in the input document.
	Index int
}

// Key returns r's adapter, data, and operation.
func (r Record) Key() Key {
	return Key{r.Adapter, r.Data, r.Operation}
}

// A Key identifies a measured operation independent of its category.
type Key struct {
	Adapter   string
	Data      string
	Operation string
}

// Decode decodes the names of results and returns the records of
// those in a recognized category, in input order. It also returns the
// number of results whose names were not recognized.
func Decode(results []*gbench.Result) (recs []Record, unknown int) {
	recs = make([]Record, 0, len(results))
	for i, res := range results {
		name := benchname.Parse(res.Name)
		if !name.Known() {
			unknown++
			continue
		}
		recs = append(recs, Record{Name: name, NS: res.CPUTime, Index: i})
	}
	return recs, unknown
}
