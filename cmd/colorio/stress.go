// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"cogentcore.org/colorio/cie"
	"cogentcore.org/colorio/cs"
	"cogentcore.org/colorio/dataset"
	"cogentcore.org/colorio/stress"
	"github.com/spf13/cobra"
)

func newStressCmd() *cobra.Command {
	var spaces []string
	var white string
	cmd := &cobra.Command{
		Use:   "stress DATASET...",
		Short: "Score color spaces against color-difference datasets",
		Long: `Prints the STRESS of every color space against every dataset YAML file.
Lower is better; 0 means the color space distances are exactly
proportional to the visual differences of the dataset.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wp, err := cie.Whitepoint(white)
			if err != nil {
				return err
			}
			if len(spaces) == 0 {
				spaces = cs.Names()
			}
			sps := make([]cs.ColorSpace, len(spaces))
			for i, name := range spaces {
				c, err := cs.NewWithWhitepoint(name, wp)
				if err != nil {
					return err
				}
				sps[i] = c
			}
			dss := make([]*dataset.Dataset, len(args))
			for i, fn := range args {
				ds, err := dataset.OpenFile(fn)
				if err != nil {
					return err
				}
				slog.Debug("loaded dataset", "name", ds.Name, "groups", len(ds.Groups), "pairs", ds.NumPairs(), "valid", ds.NumValid())
				dss[i] = ds
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprint(tw, "SPACE")
			for _, ds := range dss {
				fmt.Fprintf(tw, "\t%s", ds.Name)
			}
			fmt.Fprintln(tw)
			for _, c := range sps {
				fmt.Fprint(tw, c.Name())
				for _, ds := range dss {
					s, err := stress.STRESS(c, ds)
					if err != nil {
						slog.Warn("stress failed", "space", c.Name(), "dataset", ds.Name, "err", err)
						fmt.Fprint(tw, "\t-")
						continue
					}
					fmt.Fprintf(tw, "\t%.4g", s)
				}
				fmt.Fprintln(tw)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringSliceVarP(&spaces, "space", "s", nil, "Color spaces to score (default all)")
	cmd.Flags().StringVarP(&white, "whitepoint", "w", "D65", "Illuminant of the white of the color spaces")
	return cmd
}
