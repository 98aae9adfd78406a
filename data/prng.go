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
	"math/rand"
)

// prng turns a rand.Source into an unbounded byte stream.
type prng struct {
	src rand.Source

	// readVal holds what is left of the last Int63 so consecutive Reads
	// continue the same stream; readPos counts its unread low-order bytes.
	readVal int64
	readPos int8
}

func newPRNG(src rand.Source) *prng {
	return &prng{src: src}
}

// Read fills p with pseudo-random bytes. It never fails.
func (r *prng) Read(p []byte) (n int, err error) {
	pos := r.readPos
	val := r.readVal
	for n = 0; n < len(p); n++ {
		if pos == 0 {
			val = r.src.Int63()
			pos = 7
		}
		p[n] = byte(val)
		val >>= 8
		pos--
	}
	r.readPos = pos
	r.readVal = val
	return n, nil
}
