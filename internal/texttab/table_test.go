// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	check := func(s string, a align, w int, want string) {
		t.Helper()
		got := a.lpad(s, w)
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", alignLeft, 10, "abc")
	check("abc", alignCenter, 10, "   abc")
	check("abc", alignCenter, 11, "    abc")
	check("abc", alignRight, 10, "       abc")
	check("☃", alignRight, 4, "   ☃")
}

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		tab.Format(&gotBuf)
		got := gotBuf.String()
		if want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
		// Reset tab.
		tab = Table{}
	}

	// Basic test.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a b c\nd e f\n")

	// Basic cell padding. Also checks that we don't print
	// unnecessary spaces at the ends of lines.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("long").Cell("e").Cell("long")
	check("a    b c\nlong e long\n")

	// Cell alignment.
	tab.Row().Cell("a", Left).Cell("b", Center).Cell("c", Right)
	tab.Row().Cell("xxx").Cell("xxx").Cell("xxx")
	check("a    b    c\nxxx xxx xxx\n")

	// Margins.
	tab.Row().Cell("a").Cell("b", LeftMargin("  "))
	tab.Row().Cell("c").Cell("d")
	tab.Row().Cell("e").Cell("f", LeftMargin("|"))
	check("a  b\nc  d\ne |f\n")

	// Missing cell in the middle.
	tab.Row().Cell("a").Col(2).Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a   c\nd e f\n")

	// Missing cells at the end.
	tab.Row().Cell("a")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a\nd e f\n")

	// Blank rows.
	tab.Row().Cell("a")
	tab.Row()
	tab.Row()
	tab.Row().Cell("b")
	check("a\n\n\nb\n")

	// Cells without an explicit first row.
	tab.Cell("a").Cell("b")
	check("a b\n")

	// Multi-byte runes count as one column.
	tab.Row().Cell("1.5µs").Cell("x")
	tab.Row().Cell("10ns").Cell("y")
	check("1.5µs x\n10ns  y\n")

	// Nothing at all.
	check("")
}

func TestRule(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		got := gotBuf.String()
		if want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
		tab = Table{}
	}

	// A rule spans every column and its margins. Cells after a
	// rule start a new row.
	tab.Row().Cell("Adapter").Cell("Time")
	tab.Rule('-')
	tab.Cell("Text").Cell("1ns")
	check("Adapter Time\n------------\nText    1ns\n")

	// A rule with no rows after it.
	tab.Row().Cell("a").Cell("b")
	tab.Rule('=')
	check("a b\n===\n")

	// Rules with no cells.
	tab.Rule('-')
	tab.Rule('-')
	check("\n\n")
}

func TestMinWidth(t *testing.T) {
	var tab Table
	tab.SetMinWidth(0, 6)
	tab.SetMinWidth(1, 3)
	tab.Row().Cell("a").Cell("b")
	tab.Row().Cell("abcdefgh").Cell("c")
	tab.Rule('-')

	if got, want := tab.Width(), 12; got != want {
		t.Errorf("Width() = %d, want %d", got, want)
	}

	var buf strings.Builder
	if err := tab.Format(&buf); err != nil {
		t.Fatal(err)
	}
	want := "a        b\nabcdefgh c\n------------\n"
	if got := buf.String(); got != want {
		t.Errorf("want:\n%sgot:\n%s", want, got)
	}

	// Minimum widths apply to columns with no cells.
	var headers Table
	for i := 0; i < 3; i++ {
		headers.SetMinWidth(i, 4)
	}
	headers.Row().Cell("x")
	headers.Rule('-')
	buf.Reset()
	headers.Format(&buf)
	if got, want := buf.String(), "x\n--------------\n"; got != want {
		t.Errorf("want:\n%sgot:\n%s", want, got)
	}
}

func TestBanner(t *testing.T) {
	check := func(title string, width int, want string) {
		t.Helper()
		var buf strings.Builder
		if err := Banner(&buf, title, width, '='); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != want {
			t.Errorf("Banner(%q, %d):\nwant:\n%sgot:\n%s", title, width, want, got)
		}
	}
	check("abc", 10, "==========\n   abc\n==========\n")
	check("abcd", 10, "==========\n   abcd\n==========\n")
	check("µ", 5, "=====\n  µ\n=====\n")
	check("abcdefghijkl", 10, "==========\nabcdefghijkl\n==========\n")
	check("", 4, "====\n\n====\n")
}
