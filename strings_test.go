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

package fuzz_test

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fuzz "github.com/infosecual/textfuzz"
	"github.com/infosecual/textfuzz/data"
	"github.com/infosecual/textfuzz/data/mock_data"
)

// fixed returns a strategy that always yields v without touching the source.
func fixed[T any](v T) fuzz.Strategy[T] {
	return fuzz.StrategyFunc[T](func(data.Source) (T, error) { return v, nil })
}

func TestString_Packs(t *testing.T) {
	cases := []struct {
		name string
		in   []rune
		want string
	}{
		{"Empty", []rune{}, ""},
		{"Nil", nil, ""},
		{"ASCII", []rune{'a', 'b', 'c'}, "abc"},
		{"Multibyte", []rune{'ж', '中', '🙂'}, "ж中🙂"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fuzz.String(fixed(tc.in)).Draw(data.NewReplay(nil))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBinaryString_Packs(t *testing.T) {
	got, err := fuzz.BinaryString(fixed([]int{104, 105})).Draw(data.NewReplay(nil))
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), got)

	got, err = fuzz.BinaryString(fixed([]int{})).Draw(data.NewReplay(nil))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFixedSizeBytes_ReturnsSourceBytes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payloads := [][]byte{
		{0, 0, 0, 0},
		{0xde, 0xad, 0xbe, 0xef},
		{0xff, 0x00, 0x7f, 0x80},
	}
	strategy := fuzz.FixedSizeBytes(4)
	assert.Equal(t, 4, strategy.Size())
	for _, p := range payloads {
		src := mock_data.NewMockSource(ctrl)
		src.EXPECT().DrawBytes(4).Return(p, nil)
		got, err := strategy.Draw(src)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestFixedSizeBytes_MatchesBuffer(t *testing.T) {
	src := data.NewRandom(9, 0)
	strategy := fuzz.FixedSizeBytes(4)
	for i := 0; i < 20; i++ {
		before := src.Len()
		got, err := strategy.Draw(src)
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, src.Buffer()[before:], got)
	}

	empty, err := fuzz.FixedSizeBytes(0).Draw(src)
	require.NoError(t, err)
	assert.Empty(t, empty)

	assert.Panics(t, func() { fuzz.FixedSizeBytes(-1) })
}

func TestText(t *testing.T) {
	chars, err := fuzz.Characters(fuzz.CharacterOptions{WhitelistCategories: []string{"L"}})
	require.NoError(t, err)
	text := fuzz.Text(chars, 2, 8)

	src := data.NewRandom(31, 1<<20)
	for i := 0; i < 300; i++ {
		s, err := text.Draw(src)
		require.NoError(t, err)
		n := utf8.RuneCountInString(s)
		require.GreaterOrEqual(t, n, 2)
		require.LessOrEqual(t, n, 8)
		for _, c := range s {
			require.True(t, chars.Intervals().Contains(c))
		}
	}
}

func TestBinary(t *testing.T) {
	bin := fuzz.Binary(0, 16)
	src := data.NewRandom(8, 1<<20)
	sawNonEmpty := false
	for i := 0; i < 300; i++ {
		b, err := bin.Draw(src)
		require.NoError(t, err)
		require.LessOrEqual(t, len(b), 16)
		sawNonEmpty = sawNonEmpty || len(b) > 0
	}
	assert.True(t, sawNonEmpty)

	// With every byte zero the simplest value comes out.
	b, err := bin.Draw(data.NewReplay(make([]byte, 64)))
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestDraws_PropagateExhaustion(t *testing.T) {
	chars, err := fuzz.Characters(fuzz.CharacterOptions{})
	require.NoError(t, err)

	cases := []struct {
		name string
		draw func(data.Source) error
	}{
		{"Text", func(src data.Source) error { _, err := fuzz.Text(chars, 1, 5).Draw(src); return err }},
		{"Binary", func(src data.Source) error { _, err := fuzz.Binary(1, 5).Draw(src); return err }},
		{"FixedSizeBytes", func(src data.Source) error { _, err := fuzz.FixedSizeBytes(4).Draw(src); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draw(data.NewReplay([]byte{1, 2}))
			assert.Equal(t, data.ErrExhausted, err)
		})
	}
}

func TestMap_PropagatesSourceErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("boom")
	src := mock_data.NewMockSource(ctrl)
	src.EXPECT().DrawBiasedInt(0, 3, 0).Return(0, boom)

	_, err := fuzz.Binary(0, 3).Draw(src)
	assert.Equal(t, boom, err)
}

func TestLists(t *testing.T) {
	src := data.NewRandom(4, 1<<20)
	lists := fuzz.Lists(fuzz.Integers(-3, 3), 1, 4)
	for i := 0; i < 300; i++ {
		xs, err := lists.Draw(src)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(xs), 1)
		require.LessOrEqual(t, len(xs), 4)
		for _, x := range xs {
			require.GreaterOrEqual(t, x, -3)
			require.LessOrEqual(t, x, 3)
		}
	}

	assert.Panics(t, func() { fuzz.Lists(fuzz.Integers(0, 1), 3, 2) })
	assert.Panics(t, func() { fuzz.Lists(fuzz.Integers(0, 1), -1, 2) })
	assert.Panics(t, func() { fuzz.Integers(1, 0) })
}

func TestDraws_FailAfterExhaustionWithoutConsumingBytes(t *testing.T) {
	src := data.NewReplay(nil)
	_, err := src.DrawBytes(1)
	require.Equal(t, data.ErrExhausted, err)

	single, err := fuzz.Characters(fuzz.CharacterOptions{WhitelistCharacters: "x", MaxCodepoint: cp(0), BlacklistCategories: []string{"Cc"}})
	require.NoError(t, err)
	require.Equal(t, 1, single.Intervals().Size())

	_, err = fuzz.Lists(fuzz.Integers(7, 7), 2, 2).Draw(src)
	assert.Equal(t, data.ErrExhausted, err)
	_, err = single.Draw(src)
	assert.Equal(t, data.ErrExhausted, err)
}
