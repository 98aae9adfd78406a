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
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	fuzz "github.com/infosecual/textfuzz"
	"github.com/infosecual/textfuzz/charmap"
	"github.com/infosecual/textfuzz/data"
)

type rootOptions struct {
	logLevel string
	logger   log.FieldLogger
}

// strategyOptions holds the flags that describe what to generate.
type strategyOptions struct {
	kind              string
	categories        []string
	excludeCategories []string
	includeChars      string
	excludeChars      string
	minCodepoint      int32
	maxCodepoint      int32
	minSize           int
	maxSize           int
	size              int
}

type sampleOptions struct {
	strategyOptions
	count      int
	seed       int64
	workers    int
	maxBytes   int
	showBuffer bool
}

type replayOptions struct {
	strategyOptions
	buffer string
}

func newRootCmd() *cobra.Command {
	root := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "textfuzz",
		Short:         "generates characters, strings and byte strings for property-based tests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := SetFlagsFromEnv(cmd.Flags(), envPrefix); err != nil {
				return err
			}
			logger, err := setupLogger(root.logLevel)
			if err != nil {
				return err
			}
			root.logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVar(&root.logLevel, "log-level", log.InfoLevel.String(), "log level")

	rootCmd.AddCommand(newSampleCmd(root), newReplayCmd(root), newCategoriesCmd())
	return rootCmd
}

func addStrategyFlags(cmd *cobra.Command, o *strategyOptions) {
	cmd.Flags().StringVar(&o.kind, "kind", "text", "what to generate: char, text, binary or bytes")
	cmd.Flags().StringSliceVar(&o.categories, "categories", nil, "unicode categories to admit, e.g. Lu,Nd or L; empty admits all but Cs")
	cmd.Flags().StringSliceVar(&o.excludeCategories, "exclude-categories", nil, "unicode categories to remove")
	cmd.Flags().StringVar(&o.includeChars, "include-chars", "", "characters always admitted")
	cmd.Flags().StringVar(&o.excludeChars, "exclude-chars", "", "characters never produced")
	cmd.Flags().Int32Var(&o.minCodepoint, "min-codepoint", -1, "smallest admitted codepoint, -1 for no bound")
	cmd.Flags().Int32Var(&o.maxCodepoint, "max-codepoint", -1, "largest admitted codepoint, -1 for no bound")
	cmd.Flags().IntVar(&o.minSize, "min-size", 0, "minimum length for text and binary")
	cmd.Flags().IntVar(&o.maxSize, "max-size", 20, "maximum length for text and binary")
	cmd.Flags().IntVar(&o.size, "size", 8, "number of raw bytes for kind bytes")
}

func newSampleCmd(root *rootOptions) *cobra.Command {
	o := &sampleOptions{}
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "prints freshly generated examples, one per line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSample(cmd.OutOrStdout(), root.logger, o)
		},
	}
	addStrategyFlags(cmd, &o.strategyOptions)
	cmd.Flags().IntVar(&o.count, "count", 10, "number of examples")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "seed of the first example; example i uses seed+i")
	cmd.Flags().IntVar(&o.workers, "workers", 4, "number of examples generated concurrently")
	cmd.Flags().IntVar(&o.maxBytes, "max-bytes", data.DefaultMaxSize, "byte budget per example")
	cmd.Flags().BoolVar(&o.showBuffer, "show-buffer", false, "also print the hex buffer that replays each example")
	return cmd
}

func newReplayCmd(root *rootOptions) *cobra.Command {
	o := &replayOptions{}
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "regenerates the example recorded in a hex buffer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReplay(cmd.OutOrStdout(), root.logger, o)
		},
	}
	addStrategyFlags(cmd, &o.strategyOptions)
	cmd.Flags().StringVar(&o.buffer, "buffer", "", "hex encoded buffer printed by sample --show-buffer")
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "lists the unicode general categories and their sizes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range charmap.Categories() {
				s, err := charmap.Category(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%d\n", name, s.Size())
			}
			return nil
		},
	}
}

// buildStrategy turns the flags into a strategy whose values are already
// formatted for printing.
func buildStrategy(o strategyOptions, logger log.FieldLogger) (fuzz.Strategy[string], error) {
	newChars := func() (*fuzz.CharStrategy, error) {
		opts := fuzz.CharacterOptions{
			WhitelistCategories: o.categories,
			BlacklistCategories: o.excludeCategories,
			WhitelistCharacters: o.includeChars,
			BlacklistCharacters: o.excludeChars,
			Catalog:             charmap.NewCatalog(logger),
		}
		if o.minCodepoint < -1 || o.maxCodepoint < -1 {
			return nil, fmt.Errorf("%w: codepoint bounds must be >= 0 or -1 for no bound, got %d and %d", fuzz.ErrInvalidArgument, o.minCodepoint, o.maxCodepoint)
		}
		if o.minCodepoint >= 0 {
			opts.MinCodepoint = &o.minCodepoint
		}
		if o.maxCodepoint >= 0 {
			opts.MaxCodepoint = &o.maxCodepoint
		}
		return fuzz.Characters(opts)
	}
	checkSizes := func() error {
		if o.minSize < 0 || o.minSize > o.maxSize {
			return fmt.Errorf("%w: need 0 <= min-size <= max-size, got %d and %d", fuzz.ErrInvalidArgument, o.minSize, o.maxSize)
		}
		return nil
	}
	quote := func(b []byte) string { return fmt.Sprintf("%q", b) }

	switch o.kind {
	case "char":
		chars, err := newChars()
		if err != nil {
			return nil, err
		}
		return fuzz.Map[rune](chars, func(r rune) string { return fmt.Sprintf("%q", r) }), nil
	case "text":
		chars, err := newChars()
		if err != nil {
			return nil, err
		}
		if err := checkSizes(); err != nil {
			return nil, err
		}
		return fuzz.Map(fuzz.Text(chars, o.minSize, o.maxSize), func(s string) string { return fmt.Sprintf("%q", s) }), nil
	case "binary":
		if err := checkSizes(); err != nil {
			return nil, err
		}
		return fuzz.Map(fuzz.Binary(o.minSize, o.maxSize), quote), nil
	case "bytes":
		if o.size < 0 {
			return nil, fmt.Errorf("%w: size must be >= 0, got %d", fuzz.ErrInvalidArgument, o.size)
		}
		return fuzz.Map[[]byte](fuzz.FixedSizeBytes(o.size), quote), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", fuzz.ErrInvalidArgument, o.kind)
	}
}

type sample struct {
	value  string
	buffer []byte
	err    error
}

func runSample(out io.Writer, logger log.FieldLogger, o *sampleOptions) error {
	if o.count < 0 {
		return fmt.Errorf("%w: count must be >= 0, got %d", fuzz.ErrInvalidArgument, o.count)
	}
	strategy, err := buildStrategy(o.strategyOptions, logger)
	if err != nil {
		return err
	}
	if o.workers < 1 {
		o.workers = 1
	}

	// One Data per example; the strategy itself is shared by all workers.
	samples := make([]sample, o.count)
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := range samples {
		i := i
		g.Go(func() error {
			src := data.NewRandom(o.seed+int64(i), o.maxBytes)
			v, err := strategy.Draw(src)
			if err != nil && !errors.Is(err, data.ErrExhausted) {
				return err
			}
			samples[i] = sample{value: v, buffer: src.Buffer(), err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	exhausted := 0
	for i, s := range samples {
		if s.err != nil {
			exhausted++
			logger.WithFields(log.Fields{"example": i, "bytes": len(s.buffer)}).Debug("byte budget exhausted")
			continue
		}
		if o.showBuffer {
			fmt.Fprintf(out, "%s\t%s\n", s.value, hex.EncodeToString(s.buffer))
			continue
		}
		fmt.Fprintln(out, s.value)
	}
	if exhausted > 0 {
		logger.Warnf("%d of %d examples exceeded the %d byte budget and were skipped", exhausted, o.count, o.maxBytes)
	}
	return nil
}

func runReplay(out io.Writer, logger log.FieldLogger, o *replayOptions) error {
	buf, err := hex.DecodeString(o.buffer)
	if err != nil {
		return fmt.Errorf("invalid --buffer: %v", err)
	}
	strategy, err := buildStrategy(o.strategyOptions, logger)
	if err != nil {
		return err
	}
	v, err := strategy.Draw(data.NewReplay(buf))
	if err != nil {
		return fmt.Errorf("replaying %d bytes: %w", len(buf), err)
	}
	fmt.Fprintln(out, v)
	return nil
}
