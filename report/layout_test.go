// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lazy-cpp/serialstat/benchname"
)

func TestDefaultLayout(t *testing.T) {
	if err := DefaultLayout.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadLayout(t *testing.T) {
	test := func(src string, want Layout) {
		t.Helper()
		got, err := LoadLayout(strings.NewReader(src))
		if err != nil {
			t.Errorf("%q: %v", src, err)
			return
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%q: layout mismatch (-want +got):\n%s", src, diff)
		}
	}

	test("", DefaultLayout)
	test("# nothing to change\n", DefaultLayout)

	want := DefaultLayout
	want.Adapters = []string{"Proto", "Text"}
	want.Width = 72
	test("adapters: [Proto, Text]\nwidth: 72\n", want)

	want = DefaultLayout
	want.Runtime = []benchname.Category{benchname.Adapter}
	want.Scaling = ScalingPair{From: "Small", To: "Large"}
	test("runtime:\n  - Adapter\nscaling:\n  from: Small\n  to: Large\n", want)

	// Loading a layout must not modify the defaults.
	if got := DefaultLayout.Adapters[0]; got != "Text" {
		t.Errorf("DefaultLayout.Adapters[0] = %q after loading", got)
	}
}

func TestLoadLayoutErrors(t *testing.T) {
	test := func(src, want string) {
		t.Helper()
		_, err := LoadLayout(strings.NewReader(src))
		if err == nil {
			t.Errorf("%q: want error", src)
			return
		}
		if !strings.Contains(err.Error(), want) {
			t.Errorf("%q: got %q, want error containing %q", src, err, want)
		}
	}
	test("adaptors: [Text]\n", "adaptors")
	test("adapters: Text: Binary\n", "yaml")
	test("static: Dynamic\n", `static: unknown category "Dynamic"`)
	test("runtime: [MultiSerializable, Dynamic]\n", `runtime: unknown category "Dynamic"`)
	test("category: unknown\n", `category: unknown category "unknown"`)
	test("scaling: {from: Simple, to: \"\"}\n", "scaling: from and to are required")
	test("scaling: {from: Simple, to: Simple}\n", `scaling: from and to are both "Simple"`)
	test("width: 0\n", "width: must be positive")
}
