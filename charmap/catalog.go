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

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/infosecual/textfuzz/intervals"
)

// Query describes a character filter. The zero Query admits every
// codepoint outside the surrogate category.
type Query struct {
	// Include lists the admitted categories. Empty means all but Cs.
	Include []string
	// Exclude lists categories removed after Include is applied.
	Exclude []string
	// MinCodepoint and MaxCodepoint bound the result. Nil is unbounded.
	MinCodepoint *rune
	MaxCodepoint *rune
	// IncludeCharacters are added to the result regardless of categories
	// and bounds.
	IncludeCharacters string
}

// Catalog resolves queries into interval sets and keeps every result for
// the lifetime of the Catalog. It is safe for concurrent use.
type Catalog struct {
	logger logrus.FieldLogger

	mu    sync.RWMutex
	cache map[string]*intervals.Set
	// collapses concurrent misses on the same key into one computation
	group singleflight.Group
}

// NewCatalog returns an empty Catalog that logs cache misses at debug level.
func NewCatalog(logger logrus.FieldLogger) *Catalog {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Catalog{
		logger: logger.WithField("component", "charmap"),
		cache:  make(map[string]*intervals.Set),
	}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide Catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = NewCatalog(nil)
	})
	return defaultCatalog
}

// resolved is a validated, canonical form of a Query.
type resolved struct {
	include, exclude []string
	min, max         rune
	chars            []rune
}

func (r resolved) key() string {
	return fmt.Sprintf("%s|%s|%d|%d|%s",
		strings.Join(r.include, ","), strings.Join(r.exclude, ","), r.min, r.max, string(r.chars))
}

func canonicalize(q Query) (resolved, error) {
	r := resolved{min: 0, max: MaxCodepoint}
	if q.MinCodepoint != nil {
		r.min = *q.MinCodepoint
	}
	if q.MaxCodepoint != nil {
		r.max = *q.MaxCodepoint
	}
	if r.min < 0 || r.max > MaxCodepoint || r.min > r.max {
		return r, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.min, r.max)
	}

	var err error
	if len(q.Include) == 0 {
		r.include = without(Categories(), Surrogate)
	} else if r.include, err = expand(q.Include); err != nil {
		return r, err
	}
	if r.exclude, err = expand(q.Exclude); err != nil {
		return r, err
	}

	seen := make(map[rune]bool)
	for _, c := range q.IncludeCharacters {
		if !seen[c] {
			seen[c] = true
			r.chars = append(r.chars, c)
		}
	}
	sort.Slice(r.chars, func(i, j int) bool { return r.chars[i] < r.chars[j] })
	return r, nil
}

func without(names []string, drop string) []string {
	out := names[:0]
	for _, n := range names {
		if n != drop {
			out = append(out, n)
		}
	}
	return out
}

// Resolve returns the set of codepoints admitted by q. Results are
// memoized, so repeated calls with an equivalent Query return the same
// pointer. The returned Set may be empty.
func (c *Catalog) Resolve(q Query) (*intervals.Set, error) {
	r, err := canonicalize(q)
	if err != nil {
		return nil, err
	}
	key := r.key()

	c.mu.RLock()
	s, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return s, nil
	}

	v, _, _ := c.group.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		s, ok := c.cache[key]
		c.mu.RUnlock()
		if ok {
			return s, nil
		}

		s = compute(r)
		c.mu.Lock()
		c.cache[key] = s
		c.mu.Unlock()

		c.logger.WithFields(logrus.Fields{
			"include": r.include,
			"exclude": r.exclude,
			"min":     r.min,
			"max":     r.max,
		}).Debugf("resolved %d codepoints in %d intervals", s.Size(), len(s.Intervals()))
		return s, nil
	})
	return v.(*intervals.Set), nil
}

func compute(r resolved) *intervals.Set {
	result := intervals.New()
	for _, name := range r.include {
		result = result.Union(tables[name])
	}
	for _, name := range r.exclude {
		result = result.Subtract(tables[name])
	}
	return result.Clip(r.min, r.max).Union(intervals.FromRunes(r.chars...))
}

// Len returns the number of distinct queries resolved so far.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
