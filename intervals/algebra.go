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

package intervals

// Union returns the codepoints that are in s or in any of others.
func (s *Set) Union(others ...*Set) *Set {
	all := s.Intervals()
	for _, o := range others {
		all = append(all, o.intervals...)
	}
	return New(all...)
}

// Subtract returns the codepoints of s that are not in o.
func (s *Set) Subtract(o *Set) *Set {
	var out []Interval
	j := 0
	for _, iv := range s.intervals {
		low := iv.Low
		for j < len(o.intervals) && o.intervals[j].High < low {
			j++
		}
		k := j
		for k < len(o.intervals) && o.intervals[k].Low <= iv.High {
			cut := o.intervals[k]
			if cut.Low > low {
				out = append(out, Interval{low, cut.Low - 1})
			}
			low = cut.High + 1
			if low > iv.High {
				break
			}
			k++
		}
		if low <= iv.High {
			out = append(out, Interval{low, iv.High})
		}
	}
	return fromNormalized(out)
}

// Clip returns the codepoints of s inside [low, high].
func (s *Set) Clip(low, high rune) *Set {
	var out []Interval
	for _, iv := range s.intervals {
		if iv.High < low || iv.Low > high {
			continue
		}
		if iv.Low < low {
			iv.Low = low
		}
		if iv.High > high {
			iv.High = high
		}
		out = append(out, iv)
	}
	return fromNormalized(out)
}
