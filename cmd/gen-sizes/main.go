// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// gen-sizes writes the SizeN types and the FitsN and HoldsN constraints used
// by the bitset package.  It is run through go generate.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bpowers/sizedbit/internal/sizegen"
)

type options struct {
	output  string
	config  sizegen.Config
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := options{config: sizegen.DefaultConfig()}
	cmd := &cobra.Command{
		Use:          "gen-sizes",
		Short:        "Generate bitset size/width constraints",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			if opts.verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			}
			return run(opts, logger)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "sizes_gen.go", "File to write")
	cmd.Flags().StringVarP(&opts.config.Package, "package", "p", opts.config.Package, "Package clause of the generated file")
	cmd.Flags().IntVar(&opts.config.Max, "max", opts.config.Max, "Largest bitset size")
	cmd.Flags().IntSliceVar(&opts.config.Widths, "widths", opts.config.Widths, "Integer widths to generate conversions for")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")
	return cmd
}

func run(opts options, logger *slog.Logger) error {
	src, err := sizegen.Render(opts.config)
	if err != nil {
		return err
	}
	logger.Info("rendered sizes", "package", opts.config.Package, "max", opts.config.Max, "widths", opts.config.Widths, "bytes", len(src))
	if err := writeFile(opts.output, src); err != nil {
		return err
	}
	logger.Info("wrote", "path", opts.output)
	return nil
}

// writeFile replaces path atomically so an interrupted run never leaves a
// truncated file behind.
func writeFile(path string, src []byte) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("filepath.Abs: %w", err)
	}
	f, err := os.CreateTemp(filepath.Dir(path), "gen-sizes.*.go.tmp")
	if err != nil {
		return fmt.Errorf("CreateTemp: %w", err)
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(src); err != nil {
		f.Close()
		return fmt.Errorf("f.Write: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("f.Close: %w", err)
	}
	if err := os.Chmod(f.Name(), 0o644); err != nil {
		return fmt.Errorf("os.Chmod(0644): %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
