// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/colorio/logx"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

// newRootCmd returns the root command with all subcommands attached.
func newRootCmd() *cobra.Command {
	var debug, quiet bool
	root := &cobra.Command{
		Use:   "colorio",
		Short: "Color space transforms, STRESS evaluation and TestLab fitting",
		Long: `colorio converts colors between color spaces, scores color spaces
against color-difference datasets with the STRESS measure, and fits
the 19 parameters of a TestLab space to a set of datasets.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.SetUserLevel(debug, quiet)
			logx.Init()
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Show debug log messages")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only show warnings and errors")

	root.AddCommand(newSpacesCmd(), newConvertCmd(), newStressCmd(), newOptimizeCmd())
	return root
}
