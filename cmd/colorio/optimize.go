// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"cogentcore.org/colorio/base/iox/tomlx"
	"cogentcore.org/colorio/fit"
	"github.com/spf13/cobra"
)

func newOptimizeCmd() *cobra.Command {
	var maxIter int
	var seed int64
	var writeConfig string
	cmd := &cobra.Command{
		Use:   "optimize CONFIG...",
		Short: "Fit the TestLab parameters to color-difference datasets",
		Long: `Reads a TOML configuration naming the datasets and their weights,
and searches the 19 TestLab parameters that minimize the combined
STRESS: a global annealing search followed by a local BFGS refinement.
Later config files override the settings of earlier ones, and dataset
files are relative to the directory of the first one.

With --write-config, a configuration with the default settings is
written to the given file instead, as a starting point.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if writeConfig != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if writeConfig != "" {
				cfg := &fit.Config{}
				cfg.Defaults()
				cfg.Terms = []fit.TermConfig{{File: "dataset.yaml", Weight: 1}}
				return tomlx.Save(cfg, writeConfig)
			}

			cfg, err := fit.OpenConfig(args...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("maxiter") {
				cfg.MaxIter = maxIter
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			terms, err := cfg.LoadTerms(filepath.Dir(args[0]))
			if err != nil {
				return err
			}
			res, err := fit.Run(cfg.Objective(terms), cfg, nil)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "residual\t%.6g\n", res.F)
			fmt.Fprintf(w, "power\t%.6g\n", res.Params.Power)
			fmt.Fprintf(w, "linear1\t%.6g\n", res.Params.Linear1)
			fmt.Fprintf(w, "linear2\t%.6g\n", res.Params.Linear2)
			if len(res.Report) == 0 {
				return nil
			}
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TERM\tSTRESS")
			for _, ts := range res.Report {
				fmt.Fprintf(tw, "%s\t%.4g\n", ts.Name, ts.Score)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&maxIter, "maxiter", 0, "Override the iteration limit of the config")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Override the random seed of the config")
	cmd.Flags().StringVar(&writeConfig, "write-config", "", "Write a default config to this file and exit")
	return cmd
}
