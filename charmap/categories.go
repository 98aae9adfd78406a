/*
Copyright 2014 Google Inc. All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package charmap

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/infosecual/textfuzz/intervals"
)

// MaxCodepoint is the largest Unicode scalar value.
const MaxCodepoint = unicode.MaxRune

// Surrogate is the category excluded when a query names no categories.
const Surrogate = "Cs"

const unassigned = "Cn"

var (
	tablesOnce sync.Once
	tables     map[string]*intervals.Set
	tableNames []string
)

// loadTables converts the unicode package's two-letter category tables into
// interval sets and derives Cn from whatever none of them covers.
func loadTables() {
	tables = make(map[string]*intervals.Set)
	var assigned []*unicode.RangeTable
	for name, rt := range unicode.Categories {
		if len(name) != 2 || name == "LC" || name == unassigned {
			continue
		}
		tables[name] = fromRangeTable(rt)
		assigned = append(assigned, rt)
	}
	all := intervals.New(intervals.Interval{Low: 0, High: MaxCodepoint})
	tables[unassigned] = all.Subtract(fromRangeTable(rangetable.Merge(assigned...)))

	for name := range tables {
		tableNames = append(tableNames, name)
	}
	sort.Strings(tableNames)
}

func fromRangeTable(rt *unicode.RangeTable) *intervals.Set {
	var ivs []intervals.Interval
	add := func(lo, hi, stride uint32) {
		if stride == 1 {
			ivs = append(ivs, intervals.Interval{Low: rune(lo), High: rune(hi)})
			return
		}
		for c := lo; c <= hi; c += stride {
			ivs = append(ivs, intervals.Interval{Low: rune(c), High: rune(c)})
		}
	}
	for _, r := range rt.R16 {
		add(uint32(r.Lo), uint32(r.Hi), uint32(r.Stride))
	}
	for _, r := range rt.R32 {
		add(r.Lo, r.Hi, r.Stride)
	}
	return intervals.New(ivs...)
}

// Categories returns the sorted two-letter general category names known to
// the catalog.
func Categories() []string {
	tablesOnce.Do(loadTables)
	out := make([]string, len(tableNames))
	copy(out, tableNames)
	return out
}

// Category returns the codepoints of a single two-letter category.
func Category(name string) (*intervals.Set, error) {
	tablesOnce.Do(loadTables)
	s, ok := tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return s, nil
}

// expand resolves category names into a sorted, deduplicated list of
// two-letter categories. A one-letter major class such as "L" stands for
// every category starting with that letter.
func expand(names []string) ([]string, error) {
	tablesOnce.Do(loadTables)
	seen := make(map[string]bool)
	for _, name := range names {
		if _, ok := tables[name]; ok {
			seen[name] = true
			continue
		}
		matched := false
		if len(name) == 1 {
			for _, full := range tableNames {
				if strings.HasPrefix(full, name) {
					seen[full] = true
					matched = true
				}
			}
		}
		if !matched {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}
