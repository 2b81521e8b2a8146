// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"strings"

	"github.com/lazy-cpp/serialstat/benchname"
)

// A PivotTable maps adapters to operation timings for a single
// category.
type PivotTable struct {
	adapters []string
	ops      map[string]map[string]float64
}

// Pivot selects the records of category cat and indexes their
// timings by adapter and operation. If data is not "", it also
// selects only records whose data matches data, ignoring case.
//
// If several records share an adapter and operation, the last one
// wins.
func Pivot(recs []Record, cat benchname.Category, data string) *PivotTable {
	p := &PivotTable{ops: make(map[string]map[string]float64)}
	for _, r := range recs {
		if r.Category != cat {
			continue
		}
		if data != "" && !strings.EqualFold(r.Data, data) {
			continue
		}
		ops, ok := p.ops[r.Adapter]
		if !ok {
			ops = make(map[string]float64)
			p.ops[r.Adapter] = ops
			p.adapters = append(p.adapters, r.Adapter)
		}
		ops[r.Operation] = r.NS
	}
	return p
}

// Adapters returns the adapters in p in order of first appearance.
func (p *PivotTable) Adapters() []string {
	return p.adapters
}

// Has reports whether p has any timing for adapter.
func (p *PivotTable) Has(adapter string) bool {
	_, ok := p.ops[adapter]
	return ok
}

// Get returns the timing of operation op of adapter.
func (p *PivotTable) Get(adapter, op string) (ns float64, ok bool) {
	ns, ok = p.ops[adapter][op]
	return
}
