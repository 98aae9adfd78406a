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

// Package intervals stores sets of Unicode codepoints as sorted, disjoint,
// non-adjacent closed ranges and supports rank-indexing into them.
//
// A Set never changes after New returns it. Every operation that combines
// sets returns a fresh Set, so a *Set may be shared between goroutines.
package intervals

import (
	"fmt"
	"sort"
)

// Interval describes a closed range of codepoints. Low must not be
// numerically greater than High for the interval to contain anything.
type Interval struct {
	Low, High rune
}

// Width returns the number of codepoints covered by iv.
func (iv Interval) Width() int {
	if iv.High < iv.Low {
		return 0
	}
	return int(iv.High-iv.Low) + 1
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%U, %U]", iv.Low, iv.High)
}

// Set is a normalized, rank-indexed set of codepoints.
type Set struct {
	intervals []Interval
	// offsets[i] is the rank of intervals[i].Low.
	offsets []int
	size    int
}

// New builds a Set from arbitrary intervals. Inverted intervals are
// dropped; overlapping and adjacent ones are merged.
func New(ivs ...Interval) *Set {
	sorted := make([]Interval, 0, len(ivs))
	for _, iv := range ivs {
		if iv.Low <= iv.High {
			sorted = append(sorted, iv)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Low < sorted[j].Low
	})

	merged := sorted[:0]
	for _, iv := range sorted {
		if n := len(merged); n > 0 && iv.Low <= merged[n-1].High+1 {
			if iv.High > merged[n-1].High {
				merged[n-1].High = iv.High
			}
			continue
		}
		merged = append(merged, iv)
	}
	return fromNormalized(merged)
}

// FromRunes builds a Set holding exactly the given runes.
func FromRunes(runes ...rune) *Set {
	ivs := make([]Interval, len(runes))
	for i, r := range runes {
		ivs[i] = Interval{r, r}
	}
	return New(ivs...)
}

func fromNormalized(ivs []Interval) *Set {
	s := &Set{
		intervals: ivs,
		offsets:   make([]int, len(ivs)),
	}
	for i, iv := range ivs {
		s.offsets[i] = s.size
		s.size += iv.Width()
	}
	return s
}

// Size returns the number of codepoints in s.
func (s *Set) Size() int { return s.size }

// Empty reports whether s holds no codepoints.
func (s *Set) Empty() bool { return s.size == 0 }

// Intervals returns a copy of the normalized intervals of s.
func (s *Set) Intervals() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

// At returns the codepoint with the given 0-based rank. It panics if rank
// is outside [0, Size()).
func (s *Set) At(rank int) rune {
	if rank < 0 || rank >= s.size {
		panic(fmt.Sprintf("intervals: rank %d out of range [0, %d)", rank, s.size))
	}
	i := sort.Search(len(s.offsets), func(i int) bool {
		return s.offsets[i] > rank
	}) - 1
	return s.intervals[i].Low + rune(rank-s.offsets[i])
}

// Contains reports whether c is a member of s.
func (s *Set) Contains(c rune) bool {
	i := s.search(c)
	return i < len(s.intervals) && s.intervals[i].Low <= c
}

// IndexAbove returns the smallest rank whose codepoint is >= c, or Size()
// if every member of s is below c.
func (s *Set) IndexAbove(c rune) int {
	i := s.search(c)
	if i == len(s.intervals) {
		return s.size
	}
	if c <= s.intervals[i].Low {
		return s.offsets[i]
	}
	return s.offsets[i] + int(c-s.intervals[i].Low)
}

// search returns the index of the first interval whose High is >= c.
func (s *Set) search(c rune) int {
	return sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].High >= c
	})
}

func (s *Set) String() string {
	return fmt.Sprint(s.intervals)
}
