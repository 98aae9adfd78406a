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

package data

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
	"math/rand"

	"github.com/google/gofuzz/bytesource"
)

//go:generate mockgen -destination=mock_data/mock_data.go github.com/infosecual/textfuzz/data Source

// DefaultMaxSize is the byte budget used when a constructor is given a
// non-positive maximum.
const DefaultMaxSize = 8 * 1024

// Source is what strategies draw from.
type Source interface {
	// DrawBiasedInt returns an integer in [lower, upper] skewed toward
	// center. It panics if lower > upper.
	DrawBiasedInt(lower, upper, center int) (int, error)
	// DrawBytes returns exactly n unbiased bytes.
	DrawBytes(n int) ([]byte, error)
}

// Data is the standard Source. See the package documentation.
type Data struct {
	src       io.Reader
	buffer    []byte
	maxSize   int
	exhausted bool
}

var _ Source = (*Data)(nil)

// NewReplay returns a Data that hands out exactly the bytes of buf and is
// exhausted afterwards.
func NewReplay(buf []byte) *Data {
	b := make([]byte, len(buf))
	copy(b, buf)
	return &Data{src: bytes.NewReader(b), maxSize: len(b)}
}

// NewRandom returns a Data drawing up to maxSize bytes from a math/rand
// generator seeded with seed.
func NewRandom(seed int64, maxSize int) *Data {
	return newStream(rand.NewSource(seed), maxSize)
}

// NewFromBytes bridges go-fuzz style inputs: the bytes of input are used
// first, then a generator seeded from them takes over, until maxSize bytes
// have been drawn. The same input always yields the same draws.
func NewFromBytes(input []byte, maxSize int) *Data {
	return newStream(bytesource.New(input), maxSize)
}

func newStream(src rand.Source, maxSize int) *Data {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Data{src: newPRNG(src), maxSize: maxSize}
}

// Exhausted reports whether a draw has already failed with ErrExhausted.
func (d *Data) Exhausted() bool { return d.exhausted }

// Len returns the number of bytes drawn so far.
func (d *Data) Len() int { return len(d.buffer) }

// Buffer returns a copy of every byte drawn so far.
func (d *Data) Buffer() []byte {
	out := make([]byte, len(d.buffer))
	copy(out, d.buffer)
	return out
}

// DrawBytes returns exactly n bytes. Once the budget would be exceeded the
// Data is marked exhausted and this and every later draw fail.
func (d *Data) DrawBytes(n int) ([]byte, error) {
	if n < 0 {
		panic(fmt.Sprintf("data: negative byte count %d", n))
	}
	if d.exhausted || len(d.buffer)+n > d.maxSize {
		d.exhausted = true
		return nil, ErrExhausted
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(d.src, out); err != nil {
		d.exhausted = true
		return nil, ErrExhausted
	}
	d.buffer = append(d.buffer, out...)
	return out, nil
}

// drawBits returns a uniformly distributed integer of n bits, read
// big-endian from the fewest whole bytes that hold them.
func (d *Data) drawBits(n int) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	b, err := d.DrawBytes((n + 7) / 8)
	if err != nil {
		return 0, err
	}
	var word [8]byte
	copy(word[8-len(b):], b)
	v := binary.BigEndian.Uint64(word[:])
	if n < 64 {
		v &= 1<<uint(n) - 1
	}
	return v, nil
}

// DrawBiasedInt picks a side of center, then rejection-samples a distance
// from center in [0, gap] on that side. Half the mass lands on each side
// regardless of its width, and all-zero bytes yield center itself, so
// smaller buffers produce values closer to center.
func (d *Data) DrawBiasedInt(lower, upper, center int) (int, error) {
	if lower > upper {
		panic(fmt.Sprintf("data: invalid range [%d, %d]", lower, upper))
	}
	if d.exhausted {
		return 0, ErrExhausted
	}
	if lower == upper {
		return lower, nil
	}
	if center < lower {
		center = lower
	}
	if center > upper {
		center = upper
	}

	var above bool
	switch center {
	case upper:
		above = false
	case lower:
		above = true
	default:
		bit, err := d.drawBits(1)
		if err != nil {
			return 0, err
		}
		above = bit == 1
	}

	var gap uint64
	if above {
		gap = uint64(upper) - uint64(center)
	} else {
		gap = uint64(center) - uint64(lower)
	}
	n := bits.Len64(gap)
	for {
		probe, err := d.drawBits(n)
		if err != nil {
			return 0, err
		}
		if probe > gap {
			continue
		}
		if above {
			return center + int(probe), nil
		}
		return center - int(probe), nil
	}
}
