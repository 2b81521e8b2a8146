// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

// Tidy normalizes a timing recorded in a Google Benchmark time unit
// ("ns", "us", "ms", or "s") to nanoseconds. An empty unit means
// nanoseconds, which is Google Benchmark's default. ok is false if
// unit is not one of these.
func Tidy(value float64, unit string) (ns float64, ok bool) {
	factor, ok := tidyUnit(unit)
	return value * factor, ok
}

// tidyUnit returns the multiplicative factor that converts a value in
// unit to nanoseconds.
func tidyUnit(unit string) (factor float64, ok bool) {
	switch unit {
	case "", "ns":
		return 1, true
	case "us":
		return 1e3, true
	case "ms":
		return 1e6, true
	case "s":
		return 1e9, true
	}
	return 0, false
}
