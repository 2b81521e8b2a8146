// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gbench reads the JSON results format written by Google
// Benchmark (--benchmark_format=json or --benchmark_out).
//
// A results document is an object with a "context" describing the
// machine and a "benchmarks" array with one entry per benchmark run:
//
//	{
//	  "context": {"host_name": "bench01", "num_cpus": 8, ...},
//	  "benchmarks": [
//	    {"name": "BM_Adapter_Binary_Simple_Serialize",
//	     "iterations": 2241179, "real_time": 312.4,
//	     "cpu_time": 311.9, "time_unit": "ns"},
//	    ...
//	  ]
//	}
//
// Only "name" and "cpu_time" are required of each benchmark. Other
// fields are optional, and fields this package doesn't know about are
// ignored.
package gbench

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/lazy-cpp/serialstat/benchunit"
)

// A File is a parsed results document.
type File struct {
	// Name is the file name the document was read from. It is
	// purely diagnostic.
	Name string

	Context Context

	// Benchmarks are the benchmark results in document order.
	// Their timings are in nanoseconds.
	Benchmarks []*Result
}

// Context is the machine description Google Benchmark records along
// with the results.
type Context struct {
	Date             string  `json:"date"`
	HostName         string  `json:"host_name"`
	Executable       string  `json:"executable"`
	NumCPUs          int     `json:"num_cpus"`
	MHzPerCPU        float64 `json:"mhz_per_cpu"`
	LibraryBuildType string  `json:"library_build_type"`
}

// A Result is a single benchmark result.
type Result struct {
	Name       string
	RunName    string
	RunType    string // "iteration" or "aggregate"
	Iterations int64

	// RealTime and CPUTime are in nanoseconds.
	RealTime float64
	CPUTime  float64

	// OrigTimeUnit is the time unit the timings were recorded in,
	// before being converted to nanoseconds.
	OrigTimeUnit string
}

// ErrNoBenchmarks is returned, wrapped, when a document contains no
// benchmark results.
var ErrNoBenchmarks = errors.New("no benchmark data found")

// A SyntaxError reports a document that is not a valid results
// document.
type SyntaxError struct {
	FileName string
	// Index is the offending entry in the "benchmarks" array, or
	// -1 if the error concerns the whole document.
	Index int
	Msg   string
}

func (e *SyntaxError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", e.FileName, e.Msg)
	}
	return fmt.Sprintf("%s: benchmarks[%d]: %s", e.FileName, e.Index, e.Msg)
}

type document struct {
	Context    Context     `json:"context"`
	Benchmarks []benchmark `json:"benchmarks"`
}

// benchmark is the encoded form of a Result. Required fields are
// pointers so we can tell missing from zero.
type benchmark struct {
	Name       *string  `json:"name"`
	RunName    string   `json:"run_name"`
	RunType    string   `json:"run_type"`
	Iterations int64    `json:"iterations"`
	RealTime   float64  `json:"real_time"`
	CPUTime    *float64 `json:"cpu_time"`
	TimeUnit   string   `json:"time_unit"`
}

// ReadFile reads the results document at path.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read reads a results document from r. fileName is used in error
// messages; it is purely diagnostic.
func Read(r io.Reader, fileName string) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return Parse(data, fileName)
}

// Parse parses a results document.
//
// If data is not a results document, Parse returns a *SyntaxError.
// If the document has no benchmarks, it returns an error wrapping
// ErrNoBenchmarks.
func Parse(data []byte, fileName string) (*File, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SyntaxError{fileName, -1, err.Error()}
	}
	if len(doc.Benchmarks) == 0 {
		return nil, fmt.Errorf("%s: %w", fileName, ErrNoBenchmarks)
	}

	f := &File{Name: fileName, Context: doc.Context}
	f.Benchmarks = make([]*Result, 0, len(doc.Benchmarks))
	for i, b := range doc.Benchmarks {
		res, err := b.result()
		if err != nil {
			return nil, &SyntaxError{fileName, i, err.Error()}
		}
		f.Benchmarks = append(f.Benchmarks, res)
	}
	return f, nil
}

func (b *benchmark) result() (*Result, error) {
	if b.Name == nil {
		return nil, errors.New("missing name")
	}
	if b.CPUTime == nil {
		return nil, fmt.Errorf("%s: missing cpu_time", *b.Name)
	}
	cpu, ok := benchunit.Tidy(*b.CPUTime, b.TimeUnit)
	if !ok {
		return nil, fmt.Errorf("%s: unknown time_unit %q", *b.Name, b.TimeUnit)
	}
	wall, _ := benchunit.Tidy(b.RealTime, b.TimeUnit)
	return &Result{
		Name:         *b.Name,
		RunName:      b.RunName,
		RunType:      b.RunType,
		Iterations:   b.Iterations,
		RealTime:     wall,
		CPUTime:      cpu,
		OrigTimeUnit: b.TimeUnit,
	}, nil
}
