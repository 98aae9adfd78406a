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

package fuzz

import (
	"strings"

	"github.com/infosecual/textfuzz/data"
)

// String returns a strategy that concatenates the characters drawn by
// chars, in draw order. The number of characters is entirely up to chars.
func String(chars Strategy[[]rune]) Strategy[string] {
	return Map(chars, packString)
}

func packString(rs []rune) string {
	sb := strings.Builder{}
	sb.Grow(len(rs))
	for _, r := range rs {
		sb.WriteRune(r)
	}
	return sb.String()
}

// BinaryString returns a strategy that packs the byte values drawn by
// values into a byte slice, in draw order. Values are expected to lie in
// [0, 255]; anything else is truncated.
func BinaryString(values Strategy[[]int]) Strategy[[]byte] {
	return Map(values, packBytes)
}

func packBytes(vs []int) []byte {
	out := make([]byte, len(vs))
	for i, v := range vs {
		out[i] = byte(v)
	}
	return out
}

// Text returns a strategy for strings of between minSize and maxSize
// characters drawn from chars.
func Text(chars Strategy[rune], minSize, maxSize int) Strategy[string] {
	return String(Lists(chars, minSize, maxSize))
}

// Binary returns a strategy for byte slices of between minSize and maxSize
// bytes. Unlike FixedSizeBytes, each byte is drawn biased toward zero.
func Binary(minSize, maxSize int) Strategy[[]byte] {
	return BinaryString(Lists(Integers(0, 255), minSize, maxSize))
}

// FixedBytesStrategy draws a fixed number of raw, unbiased bytes.
type FixedBytesStrategy struct {
	size int
}

var _ Strategy[[]byte] = FixedBytesStrategy{}

// FixedSizeBytes returns a strategy for byte slices of exactly size bytes,
// taken straight from the source. It panics if size is negative.
func FixedSizeBytes(size int) FixedBytesStrategy {
	if size < 0 {
		panic("size must be >= 0")
	}
	return FixedBytesStrategy{size: size}
}

// Size returns the number of bytes every draw produces.
func (f FixedBytesStrategy) Size() int { return f.size }

// Draw returns the bytes the source supplies, unmodified.
func (f FixedBytesStrategy) Draw(src data.Source) ([]byte, error) {
	return src.DrawBytes(f.size)
}
