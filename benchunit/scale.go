// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit formats benchmark timings, and the relative
// change between two timings, for display.
package benchunit

import "strconv"

// A Scaler represents a scaling factor for a timing and its display
// unit.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Nanoseconds in one Unit
	Unit   string  // "ns", "µs" or "ms"
}

// Format formats val, in nanoseconds, and appends the unit according
// to the given scale. For example, Scaler{1, 1e3, "µs"}.Format(1250)
// returns "1.2µs".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Unit...)
	return string(buf)
}

var (
	nanoseconds  = Scaler{0, 1, "ns"}
	microseconds = Scaler{1, 1e3, "µs"}
	milliseconds = Scaler{1, 1e6, "ms"}
)

// TimeScaler returns the Scaler for a timing of ns nanoseconds.
// Timings below 1000ns are shown in whole nanoseconds, timings below
// 1,000,000ns in microseconds, and everything else in milliseconds,
// the latter two with one decimal place.
func TimeScaler(ns float64) Scaler {
	switch {
	case ns < 1e3:
		return nanoseconds
	case ns < 1e6:
		return microseconds
	}
	return milliseconds
}

// FormatTime formats a timing of ns nanoseconds using TimeScaler.
func FormatTime(ns float64) string {
	return TimeScaler(ns).Format(ns)
}
