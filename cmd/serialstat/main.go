// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Serialstat summarizes the results of the serialization benchmark
// suite.
//
// Usage:
//
//	serialstat [-layout file.yaml] [-filter regexp] [-v] results.json
//
// The input is the JSON output of a Google Benchmark binary, as
// written by --benchmark_out=results.json or
// --benchmark_format=json. Benchmark names have the form
//
//	BM_<category>_<adapter>_<data>_<operation>
//
// where category is Serializable (adapter bound at compile time),
// MultiSerializable (adapter selected at run time), or Adapter
// (adapter used through the generic adapter interface), and data is
// the shape of the serialized value, such as Simple or Complex.
// Benchmarks with other names are ignored.
//
// Serialstat prints a report with one section per data shape
// comparing the serialize and deserialize timings of each adapter
// and the overhead of run-time selection over static binding, a
// ranking of adapters by average timing relative to the median
// adapter, and an analysis of how each adapter scales from simple to
// complex data. All timings are CPU times, and averages are plain
// arithmetic means.
//
// The -layout flag reads the adapters, data shapes, and categories
// the report uses from a YAML file. For example, the default layout is
//
//	adapters: [Text, Binary, LazyJson, RapidJson, Yaml]
//	comparisons: [Simple, Complex]
//	static: Serializable
//	runtime: [MultiSerializable, Adapter]
//	category: Adapter
//	scaling: {from: Simple, to: Complex}
//	width: 90
//
// Keys left out of the file keep their default values.
//
// The -filter flag restricts the report to benchmarks whose full name
// matches the regular expression.
//
// The -v flag reports how many benchmark names were not recognized.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"

	"github.com/lazy-cpp/serialstat/benchagg"
	"github.com/lazy-cpp/serialstat/gbench"
	"github.com/lazy-cpp/serialstat/report"
)

// errUsage is returned for bad command lines, after the usage message
// has been printed.
var errUsage = errors.New("bad usage")

func main() {
	log.SetPrefix("serialstat: ")
	log.SetFlags(0)

	err := serialstat(os.Stdout, os.Stderr, os.Args[1:])
	if err != nil && !errors.Is(err, errUsage) {
		log.Print(err)
	}
	os.Exit(exitStatus(err))
}

// exitStatus returns the process exit status for the result of
// serialstat.
func exitStatus(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	}
	return 1
}

func serialstat(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("serialstat", flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: serialstat [flags] <benchmark_results.json>\n")
		flags.PrintDefaults()
	}
	flagLayout := flags.String("layout", "", "read the report layout from YAML `file`")
	flagFilter := flags.String("filter", "", "only report benchmarks whose names match `regexp`")
	flagVerbose := flags.Bool("v", false, "report how many benchmark names were not recognized")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errUsage
	}

	layout := report.DefaultLayout
	if *flagLayout != "" {
		var err error
		layout, err = report.LoadLayoutFile(*flagLayout)
		if err != nil {
			return err
		}
	}
	var filter *regexp.Regexp
	if *flagFilter != "" {
		var err error
		filter, err = regexp.Compile(*flagFilter)
		if err != nil {
			return fmt.Errorf("parsing -filter: %w", err)
		}
	}

	f, err := gbench.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}
	results := f.Benchmarks
	if filter != nil {
		results = filterResults(results, filter)
		if len(results) == 0 {
			return fmt.Errorf("%s: %w matching %q", f.Name, gbench.ErrNoBenchmarks, *flagFilter)
		}
	}

	recs, unknown := benchagg.Decode(results)
	if *flagVerbose {
		fmt.Fprintf(wErr, "%d of %d benchmark names not recognized\n", unknown, len(results))
	}

	meta := report.Meta{Measurements: len(results), Context: f.Context}
	return report.Write(w, recs, layout, meta)
}

// filterResults returns the results whose names match re.
func filterResults(results []*gbench.Result, re *regexp.Regexp) []*gbench.Result {
	var out []*gbench.Result
	for _, res := range results {
		if re.MatchString(res.Name) {
			out = append(out, res)
		}
	}
	return out
}
