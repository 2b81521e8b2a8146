// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "strconv"

// NotAvailable is the text of a Delta that could not be computed.
const NotAvailable = "N/A"

// A Delta is the signed percent change of a timing relative to a
// baseline timing. The zero Delta is not available.
type Delta struct {
	Percent float64
	Valid   bool
}

// Overhead returns the percent change from baseline to comparison,
// (comparison - baseline) / baseline * 100. It is not available if
// baseline is zero.
func Overhead(baseline, comparison float64) Delta {
	if baseline == 0 {
		return Delta{}
	}
	return Delta{((comparison - baseline) / baseline) * 100, true}
}

// String formats d with one decimal place and a trailing "%".
// Positive changes carry an explicit "+"; zero and negative changes
// keep their natural sign. An unavailable Delta formats as
// NotAvailable.
func (d Delta) String() string {
	if !d.Valid {
		return NotAvailable
	}
	buf := make([]byte, 0, 12)
	if d.Percent > 0 {
		buf = append(buf, '+')
	}
	buf = strconv.AppendFloat(buf, d.Percent, 'f', 1, 64)
	buf = append(buf, '%')
	return string(buf)
}

// FormatOverhead formats the Overhead of comparison over baseline.
func FormatOverhead(baseline, comparison float64) string {
	return Overhead(baseline, comparison).String()
}
