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
	"fmt"

	"github.com/infosecual/textfuzz/charmap"
	"github.com/infosecual/textfuzz/data"
	"github.com/infosecual/textfuzz/intervals"
)

// zeroPoint is the character draws are skewed toward. Values near it are
// what an engine shrinking toward small buffers ends up with.
const zeroPoint = '0'

// CharacterOptions filters the characters a CharStrategy may produce. The
// zero value admits every codepoint except surrogates.
type CharacterOptions struct {
	// WhitelistCategories and BlacklistCategories name Unicode general
	// categories ("Lu", "Nd") or major classes ("L", "N").
	WhitelistCategories []string
	BlacklistCategories []string
	// WhitelistCharacters are always admitted, whatever their category or
	// codepoint.
	WhitelistCharacters string
	// BlacklistCharacters are never produced.
	BlacklistCharacters string
	MinCodepoint        *rune
	MaxCodepoint        *rune
	// Catalog resolves the filter. Nil means charmap.Default().
	Catalog *charmap.Catalog
}

// CharStrategy draws single characters from a filtered set of codepoints.
type CharStrategy struct {
	intervals *intervals.Set
	// only blacklisted runes that are actually in intervals
	blacklist map[rune]struct{}
	whitelist map[rune]struct{}
	zeroPoint int
}

var _ Strategy[rune] = (*CharStrategy)(nil)

// Characters validates opts and returns a strategy for the characters they
// admit. It fails with ErrNoCharacters if opts admit nothing, and with an
// error wrapping both ErrInvalidArgument and the charmap error if the
// filter itself is malformed. WhitelistCharacters only rescue a fully
// blacklisted set through characters that are not blacklisted themselves.
func Characters(opts CharacterOptions) (*CharStrategy, error) {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = charmap.Default()
	}
	set, err := catalog.Resolve(charmap.Query{
		Include:           opts.WhitelistCategories,
		Exclude:           opts.BlacklistCategories,
		MinCodepoint:      opts.MinCodepoint,
		MaxCodepoint:      opts.MaxCodepoint,
		IncludeCharacters: opts.WhitelistCharacters,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if set.Empty() {
		return nil, ErrNoCharacters
	}

	c := &CharStrategy{
		intervals: set,
		blacklist: make(map[rune]struct{}),
		whitelist: make(map[rune]struct{}),
	}
	for _, r := range opts.WhitelistCharacters {
		c.whitelist[r] = struct{}{}
	}
	for _, r := range opts.BlacklistCharacters {
		if set.Contains(r) {
			c.blacklist[r] = struct{}{}
		}
	}
	if len(c.blacklist) == set.Size() && !c.whitelistSurvives() {
		return nil, ErrNoCharacters
	}
	c.zeroPoint = set.IndexAbove(zeroPoint)
	return c, nil
}

// MustCharacters is like Characters but panics on error.
func MustCharacters(opts CharacterOptions) *CharStrategy {
	c, err := Characters(opts)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *CharStrategy) whitelistSurvives() bool {
	for r := range c.whitelist {
		if _, banned := c.blacklist[r]; !banned {
			return true
		}
	}
	return false
}

// Draw returns one admitted character. Blacklisted characters are
// rejected and redrawn; construction guarantees at least one character is
// not blacklisted, so the loop ends with probability one.
func (c *CharStrategy) Draw(src data.Source) (rune, error) {
	for {
		i, err := src.DrawBiasedInt(0, c.intervals.Size()-1, c.zeroPoint)
		if err != nil {
			return 0, err
		}
		r := c.intervals.At(i)
		if _, banned := c.blacklist[r]; !banned {
			return r, nil
		}
	}
}

// Intervals returns the resolved codepoint set.
func (c *CharStrategy) Intervals() *intervals.Set { return c.intervals }

// ZeroPoint returns the rank draws are biased toward.
func (c *CharStrategy) ZeroPoint() int { return c.zeroPoint }

// Blacklisted reports whether r is in the effective blacklist.
func (c *CharStrategy) Blacklisted(r rune) bool {
	_, ok := c.blacklist[r]
	return ok
}

// BlacklistSize returns the number of blacklisted characters that the
// resolved set actually contains.
func (c *CharStrategy) BlacklistSize() int { return len(c.blacklist) }
