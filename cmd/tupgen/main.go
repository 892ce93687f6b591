// Copyright 2025 tuplevector Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command tupgen generates Go named-tuple shape types from a YAML
// declaration file. The generated types implement tup.Tuple, so they can
// be passed straight into the vector operations and survive reconstruction
// with their field names and element types intact.
//
// Usage:
//
//	tupgen generate --input shapes.yaml --output ./geometry
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/connorferster/tuplevector/internal/decls"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inputPath string
		outputDir string
		pkgName   string
		debug     bool
	)

	rootCmd := &cobra.Command{
		Use:           "tupgen",
		Short:         "Generate named-tuple shape types for tuplevector",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go types from a YAML shape declaration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(debug)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck // stderr sync failure is uninteresting
			return runGenerate(logger, inputPath, outputDir, pkgName)
		},
	}
	generateCmd.Flags().StringVar(&inputPath, "input", "", "YAML shape declaration file (required)")
	generateCmd.Flags().StringVar(&outputDir, "output", ".", "directory to write generated Go source into")
	generateCmd.Flags().StringVar(&pkgName, "package", "", "override the package name declared in the input file")
	generateCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	_ = generateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(generateCmd)
	return rootCmd
}

// newLogger returns a zap logger. When debug is true, uses development
// config (human-readable, debug level); otherwise production config.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// runGenerate loads the declaration file, renders the shape types, and
// writes them next to the other sources of the target package.
func runGenerate(logger *zap.Logger, inputPath, outputDir, pkgName string) error {
	f, err := decls.Load(inputPath)
	if err != nil {
		return err
	}
	if pkgName != "" {
		f.Package = pkgName
		if err := f.Validate(); err != nil {
			return err
		}
	}
	logger.Debug("loaded declarations",
		zap.String("input", inputPath),
		zap.String("package", f.Package),
		zap.Int("shapes", len(f.Shapes)))

	src, err := Generate(f)
	if err != nil {
		return err
	}

	outPath := filepath.Join(outputDir, outputFileName(inputPath))
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("failed to write generated code: %w", err)
	}
	logger.Info("generated shapes",
		zap.String("output", outPath),
		zap.Int("shapes", len(f.Shapes)))
	return nil
}

// outputFileName derives the generated file name from the input file:
// shapes.yaml becomes shapes_gen.go.
func outputFileName(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "_gen.go"
}
