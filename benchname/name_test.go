// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchname

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	test := func(name string, want Name) {
		t.Helper()
		got := Parse(name)
		if got != want {
			t.Errorf("Parse(%q) = %+v, want %+v", name, got, want)
		}
	}

	test("BM_Adapter_Binary_Simple_Serialize",
		Name{Adapter, "Binary", "Simple", "Serialize"})
	test("BM_Serializable_Text_Complex_Deserialize",
		Name{Serializable, "Text", "Complex", "Deserialize"})
	test("BM_MultiSerializable_LazyJson_Simple_Serialize",
		Name{MultiSerializable, "LazyJson", "Simple", "Serialize"})

	// Missing trailing tokens.
	test("BM_Adapter_Yaml_Complex", Name{Adapter, "Yaml", "Complex", DefaultOperation})
	test("BM_Adapter_Yaml", Name{Adapter, "Yaml", Unknown, DefaultOperation})

	// Extra tokens are ignored.
	test("BM_Adapter_Binary_Simple_Serialize_mean",
		Name{Adapter, "Binary", "Simple", "Serialize"})

	// Empty tokens are kept as they are.
	test("BM_Adapter__Simple_Serialize", Name{Adapter, "", "Simple", "Serialize"})

	// Unrecognized categories.
	test("BM_Other_Binary_Simple_Serialize", unknownName)
	test("BM_adapter_Binary_Simple_Serialize", unknownName)
	test("BM_unknown_Binary_Simple_Serialize", unknownName)
}

func TestParseShort(t *testing.T) {
	// Anything with fewer than three tokens is unknown, whatever
	// the tokens are.
	for _, name := range []string{
		"",
		"_",
		"BM",
		"BM_Adapter",
		"BM_Serializable",
		"Adapter_Binary",
		"BM_MultiSerializable",
	} {
		if got := Parse(name); got != unknownName {
			t.Errorf("Parse(%q) = %+v, want all unknown", name, got)
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	names := []string{
		"BM_Adapter_Binary_Simple_Serialize",
		"BM_Setup",
		strings.Repeat("_", 10),
		"BM_Serializable_Text",
	}
	for _, name := range names {
		a, b := Parse(name), Parse(name)
		if a != b {
			t.Errorf("Parse(%q) not deterministic: %+v != %+v", name, a, b)
		}
	}
}

func TestParseAdapterForm(t *testing.T) {
	// X_Adapter_A_D_Op decodes to its tokens for any tokens
	// without underscores.
	for _, prefix := range []string{"BM", "X", ""} {
		for _, adapter := range []string{"A", "Binary", "RapidJson"} {
			for _, data := range []string{"D", "Simple", "Complex"} {
				for _, op := range []string{"Op", "Serialize", "Deserialize"} {
					name := strings.Join([]string{prefix, "Adapter", adapter, data, op}, "_")
					want := Name{Adapter, adapter, data, op}
					if got := Parse(name); got != want {
						t.Errorf("Parse(%q) = %+v, want %+v", name, got, want)
					}
				}
			}
		}
	}
}

func TestKnown(t *testing.T) {
	for _, c := range Categories {
		if !c.Known() {
			t.Errorf("%s.Known() = false", c)
		}
	}
	if Category(Unknown).Known() {
		t.Errorf("unknown category reports Known")
	}
	if Parse("BM").Known() {
		t.Errorf("undecodable name reports Known")
	}
	if !Parse("BM_Adapter_Binary").Known() {
		t.Errorf("adapter name reports !Known")
	}
}

func TestString(t *testing.T) {
	got := Parse("BM_Adapter_Binary_Simple_Serialize").String()
	if want := "Adapter/Binary/Simple/Serialize"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
