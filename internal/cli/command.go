// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
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

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rtbench/internal/suite"
)

// Version information, set at build time with -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// CommandName is the binary name for a benchmark: underscores become dashes.
func CommandName(b suite.Benchmark) string { return strings.ReplaceAll(b.Name(), "_", "-") }

// NewCommand builds the root command of a single-benchmark binary. It takes
// no arguments; running it prints that benchmark's report.
func NewCommand(b suite.Benchmark) *cobra.Command {
	var opts Options
	cmd := &cobra.Command{
		Use:           CommandName(b),
		Short:         b.Summary(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ApplyEnv(os.Getenv)
			return Run(cmd.Context(), b, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

// NewRootCommand builds the rtbench umbrella: list, run <name> and version.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "rtbench",
		Short: "Language runtime micro-benchmarks",
		Long: `rtbench runs small CPU-bound workloads and prints a fixed-format report.

Usage:
  rtbench list                  List benchmarks
  rtbench run <name>            Run one benchmark
  rtbench version               Print version`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newListCommand(), newRunCommand(), newVersionCommand())
	return root
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available benchmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, b := range suite.All() {
				fmt.Fprintf(tw, "%s\t%s\n", b.Name(), b.Summary())
			}
			return tw.Flush()
		},
	}
}

func newRunCommand() *cobra.Command {
	var opts Options
	cmd := &cobra.Command{
		Use:       "run <name>",
		Short:     "Run one benchmark and print its report",
		Args:      cobra.ExactArgs(1),
		ValidArgs: suite.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := suite.Lookup(args[0])
			if err != nil {
				return err
			}
			opts.ApplyEnv(os.Getenv)
			return Run(cmd.Context(), b, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of rtbench",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rtbench version %s\n", Version)
			if GitCommit != "unknown" {
				fmt.Fprintf(cmd.OutOrStdout(), "  Git commit: %s\n", GitCommit)
			}
		},
	}
}

// Execute runs cmd with a context cancelled on SIGINT/SIGTERM. Errors are
// printed to stderr and exit with status 1.
func Execute(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
