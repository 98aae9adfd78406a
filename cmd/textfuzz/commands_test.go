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

package main

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fuzz "github.com/infosecual/textfuzz"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestSample_FixedSizeBytes(t *testing.T) {
	out, err := run(t, "sample", "--kind", "bytes", "--size", "4", "--count", "5", "--show-buffer")
	require.NoError(t, err)

	ls := lines(out)
	require.Len(t, ls, 5)
	for _, l := range ls {
		parts := strings.Split(l, "\t")
		require.Len(t, parts, 2)
		raw, err := hex.DecodeString(parts[1])
		require.NoError(t, err)
		require.Len(t, raw, 4)
		value, err := strconv.Unquote(parts[0])
		require.NoError(t, err)
		assert.Equal(t, string(raw), value)
	}
}

func TestSample_DeterministicAcrossWorkers(t *testing.T) {
	args := []string{"sample", "--kind", "text", "--count", "40", "--seed", "17", "--categories", "L,Nd"}
	one, err := run(t, append(args, "--workers", "1")...)
	require.NoError(t, err)
	many, err := run(t, append(args, "--workers", "8")...)
	require.NoError(t, err)
	assert.Equal(t, one, many)
	assert.Len(t, lines(one), 40)
}

func TestReplay_ReproducesSample(t *testing.T) {
	flags := []string{"--kind", "text", "--categories", "Lu", "--exclude-chars", "AEIOU", "--min-size", "1"}
	out, err := run(t, append([]string{"sample", "--count", "3", "--seed", "5", "--show-buffer"}, flags...)...)
	require.NoError(t, err)

	for _, l := range lines(out) {
		parts := strings.Split(l, "\t")
		require.Len(t, parts, 2)
		value, err := strconv.Unquote(parts[0])
		require.NoError(t, err)
		assert.NotEmpty(t, value)
		assert.NotContains(t, value, "A")

		replayed, err := run(t, append([]string{"replay", "--buffer", parts[1]}, flags...)...)
		require.NoError(t, err)
		assert.Equal(t, parts[0]+"\n", replayed)
	}
}

func TestReplay_ShortBuffer(t *testing.T) {
	_, err := run(t, "replay", "--kind", "bytes", "--size", "4", "--buffer", "0102")
	assert.Error(t, err)

	_, err = run(t, "replay", "--kind", "bytes", "--buffer", "zz")
	assert.Error(t, err)
}

func TestSample_ConfigurationErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		err  error
	}{
		{"UnknownKind", []string{"--kind", "floats"}, fuzz.ErrInvalidArgument},
		{"NoCharacters", []string{"--kind", "char", "--categories", "Lu", "--min-codepoint", "48", "--max-codepoint", "57"}, fuzz.ErrNoCharacters},
		{"BadSizes", []string{"--kind", "binary", "--min-size", "5", "--max-size", "2"}, fuzz.ErrInvalidArgument},
		{"NegativeSize", []string{"--kind", "bytes", "--size", "-1"}, fuzz.ErrInvalidArgument},
		{"NegativeCount", []string{"--kind", "bytes", "--count", "-1"}, fuzz.ErrInvalidArgument},
		{"NegativeMinCodepoint", []string{"--kind", "char", "--min-codepoint", "-5"}, fuzz.ErrInvalidArgument},
		{"NegativeMaxCodepoint", []string{"--kind", "text", "--max-codepoint", "-2"}, fuzz.ErrInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, append([]string{"sample"}, tc.args...)...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestSample_FlagsFromEnvironment(t *testing.T) {
	t.Setenv("TEXTFUZZ_COUNT", "3")
	t.Setenv("TEXTFUZZ_KIND", "char")
	t.Setenv("TEXTFUZZ_CATEGORIES", "Nd")
	t.Setenv("TEXTFUZZ_MAX_CODEPOINT", "127")

	out, err := run(t, "sample")
	require.NoError(t, err)
	ls := lines(out)
	require.Len(t, ls, 3)
	for _, l := range ls {
		r, _, tail, err := strconv.UnquoteChar(strings.Trim(l, "'"), '\'')
		require.NoError(t, err)
		assert.Empty(t, tail)
		assert.True(t, r >= '0' && r <= '9', "%q", r)
	}

	// Explicit flags win over the environment.
	out, err = run(t, "sample", "--count", "1")
	require.NoError(t, err)
	assert.Len(t, lines(out), 1)
}

func TestSample_BudgetExhaustionSkipsExamples(t *testing.T) {
	out, err := run(t, "sample", "--kind", "bytes", "--size", "64", "--max-bytes", "16", "--count", "4")
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out))
}

func TestCategories(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "Nd\t")
	assert.Contains(t, out, "Cs\t2048\n")
}

func TestSetupLogger_InvalidLevel(t *testing.T) {
	_, err := setupLogger("loud")
	assert.Error(t, err)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"categories", "--log-level", "loud"})
	assert.Error(t, cmd.Execute())
}
