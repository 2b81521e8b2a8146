// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchname decodes the machine-generated names of the
// serialization benchmarks.
//
// A benchmark name is a sequence of underscore-separated tokens of
// the form
//
//	<prefix>_<category>_<adapter>_<data>_<operation>
//
// for example "BM_MultiSerializable_Binary_Complex_Deserialize". The
// prefix is ignored. The category selects the comparison group the
// benchmark belongs to, the adapter names the serialization backend
// under test, and data names the shape of the serialized value.
//
// Decoding never fails: names that don't follow this form decode to
// a Name whose fields are all Unknown.
package benchname

import "strings"

// A Category is the comparison group of a benchmark.
type Category string

const (
	// Serializable benchmarks bind the adapter at compile time.
	Serializable Category = "Serializable"
	// MultiSerializable benchmarks select the adapter at run time.
	MultiSerializable Category = "MultiSerializable"
	// Adapter benchmarks compare adapters through the run-time
	// selected interface.
	Adapter Category = "Adapter"
)

// Categories lists the recognized categories.
var Categories = []Category{Serializable, MultiSerializable, Adapter}

const (
	// Unknown is the value of every field of a Name that could
	// not be decoded, and of missing adapter and data tokens.
	Unknown = "unknown"

	// DefaultOperation is the operation of a name that has no
	// operation token.
	DefaultOperation = "serialize"
)

// Known reports whether c is one of the recognized categories.
func (c Category) Known() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// A Name is a decoded benchmark name.
type Name struct {
	Category  Category
	Adapter   string
	Data      string
	Operation string
}

var unknownName = Name{Unknown, Unknown, Unknown, Unknown}

// Parse decodes a benchmark name. It is total: any string, including
// "", yields a Name.
func Parse(name string) Name {
	parts := strings.Split(name, "_")
	if len(parts) < 3 {
		return unknownName
	}
	cat := Category(parts[1])
	if !cat.Known() {
		return unknownName
	}
	return Name{
		Category:  cat,
		Adapter:   part(parts, 2, Unknown),
		Data:      part(parts, 3, Unknown),
		Operation: part(parts, 4, DefaultOperation),
	}
}

// part returns parts[i], or def if there is no such token.
func part(parts []string, i int, def string) string {
	if i < len(parts) {
		return parts[i]
	}
	return def
}

// Known reports whether n was decoded from a recognized name.
func (n Name) Known() bool {
	return n.Category != Unknown
}

// String returns n as category/adapter/data/operation.
func (n Name) String() string {
	return string(n.Category) + "/" + n.Adapter + "/" + n.Data + "/" + n.Operation
}
