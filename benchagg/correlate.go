// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"github.com/lazy-cpp/serialstat/benchname"
	"github.com/lazy-cpp/serialstat/benchunit"
)

// Lookup returns the timing of the last record in recs with category
// cat and key k.
func Lookup(recs []Record, cat benchname.Category, k Key) (ns float64, ok bool) {
	for _, r := range recs {
		if r.Category == cat && r.Key() == k {
			ns, ok = r.NS, true
		}
	}
	return
}

// Correlate returns the overhead of the cmp record for k over the
// base record for k. The result is not available if recs lacks either
// record.
func Correlate(recs []Record, k Key, base, cmp benchname.Category) benchunit.Delta {
	b, ok := Lookup(recs, base, k)
	if !ok {
		return benchunit.Delta{}
	}
	c, ok := Lookup(recs, cmp, k)
	if !ok {
		return benchunit.Delta{}
	}
	return benchunit.Overhead(b, c)
}

// CorrelateAny is like Correlate, but compares against the first
// category in cmps that has a record for k.
func CorrelateAny(recs []Record, k Key, base benchname.Category, cmps ...benchname.Category) benchunit.Delta {
	for _, cmp := range cmps {
		if _, ok := Lookup(recs, cmp, k); ok {
			return Correlate(recs, k, base, cmp)
		}
	}
	return benchunit.Delta{}
}
