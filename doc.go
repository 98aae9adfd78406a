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

// Package fuzz generates characters, strings and byte strings for
// property-based tests.
//
// Every strategy draws from a data.Source, which owns all randomness. The
// same recorded buffer replayed through the same strategy yields the same
// value, and shorter, smaller buffers yield simpler values:
//
//	chars, err := fuzz.Characters(fuzz.CharacterOptions{
//		WhitelistCategories: []string{"L", "Nd"},
//		BlacklistCharacters: "lI1O0",
//	})
//	if err != nil {
//		return err
//	}
//	s, err := fuzz.Text(chars, 1, 12).Draw(data.NewRandom(seed, 0))
//
// Characters are drawn biased toward '0' and resampled when blacklisted.
// String and BinaryString pack a sequence strategy's output; how many
// elements the sequence has is up to that strategy (see Lists).
// FixedSizeBytes hands out raw source bytes without any bias or filtering.
//
// Configuration errors are reported when a strategy is built and match
// ErrInvalidArgument. Draws only ever fail with the Source's own errors.
package fuzz
