// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lazy-cpp/serialstat/benchname"
	"gopkg.in/yaml.v3"
)

// A Layout selects what a report shows.
type Layout struct {
	// Adapters lists the adapters shown in comparison tables, in
	// row order. Adapters not listed are left out of comparison
	// tables but still ranked and scaled.
	Adapters []string `yaml:"adapters"`

	// Comparisons lists the data shapes that get a comparison
	// table, in section order.
	Comparisons []string `yaml:"comparisons"`

	// Static is the category timings are compared against in the
	// runtime-vs-static columns.
	Static benchname.Category `yaml:"static"`

	// Runtime lists the categories compared against Static, in
	// order of preference.
	Runtime []benchname.Category `yaml:"runtime"`

	// Category is the category of the timings shown in comparison
	// tables, the ranking, and the scaling analysis.
	Category benchname.Category `yaml:"category"`

	Scaling ScalingPair `yaml:"scaling"`

	// Width is the width of section banners.
	Width int `yaml:"width"`
}

// A ScalingPair names the two data shapes compared by the scaling
// analysis.
type ScalingPair struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// DefaultLayout is the layout of the serialization benchmark suite.
var DefaultLayout = Layout{
	Adapters:    []string{"Text", "Binary", "LazyJson", "RapidJson", "Yaml"},
	Comparisons: []string{"Simple", "Complex"},
	Static:      benchname.Serializable,
	Runtime:     []benchname.Category{benchname.MultiSerializable, benchname.Adapter},
	Category:    benchname.Adapter,
	Scaling:     ScalingPair{From: "Simple", To: "Complex"},
	Width:       90,
}

// LoadLayout reads a YAML layout from r. Keys missing from r keep
// their values from DefaultLayout. Unknown keys are an error.
func LoadLayout(r io.Reader) (Layout, error) {
	l := DefaultLayout
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil && !errors.Is(err, io.EOF) {
		return Layout{}, err
	}
	if err := l.Check(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// LoadLayoutFile reads a YAML layout from the named file.
func LoadLayoutFile(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, err
	}
	defer f.Close()
	l, err := LoadLayout(f)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Check returns an error if l can't be used to render a report.
func (l Layout) Check() error {
	if !l.Static.Known() {
		return fmt.Errorf("static: unknown category %q", l.Static)
	}
	for _, cat := range l.Runtime {
		if !cat.Known() {
			return fmt.Errorf("runtime: unknown category %q", cat)
		}
	}
	if !l.Category.Known() {
		return fmt.Errorf("category: unknown category %q", l.Category)
	}
	if l.Scaling.From == "" || l.Scaling.To == "" {
		return errors.New("scaling: from and to are required")
	}
	if l.Scaling.From == l.Scaling.To {
		return fmt.Errorf("scaling: from and to are both %q", l.Scaling.From)
	}
	if l.Width <= 0 {
		return fmt.Errorf("width: must be positive, got %d", l.Width)
	}
	return nil
}
