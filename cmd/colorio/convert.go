// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/colorio/cie"
	"cogentcore.org/colorio/cs"
	"cogentcore.org/colorio/mat3"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var hex, white string
	var inverse, srgb, lightnessLast bool
	cmd := &cobra.Command{
		Use:   "convert SPACE [X Y Z]",
		Short: "Convert a color to or from a color space",
		Long: `Converts a 100-based XYZ color, or an sRGB hex color given with --hex,
to the coordinates of SPACE. With --inverse the three values are
coordinates of SPACE and the XYZ color is printed instead.
Spaces relative to a white use the illuminant given with --whitepoint.

Flags must come before SPACE, so that negative values are not read as flags.`,
		Example: `  colorio convert CAM16-UCS 19.01 20 21.78
  colorio convert --hex "#ff8800" OKLAB
  colorio convert --inverse CIELAB 50 10 -10
  colorio convert --whitepoint D50 --srgb CIELAB 41.24 21.26 1.93`,
		Args: func(cmd *cobra.Command, args []string) error {
			if hex != "" {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(4)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if inverse && (hex != "" || lightnessLast) {
				return fmt.Errorf("--inverse cannot be combined with --hex or --lightness-last")
			}
			wp, err := cie.Whitepoint(white)
			if err != nil {
				return err
			}
			c, err := cs.NewWithWhitepoint(args[0], wp)
			if err != nil {
				return err
			}
			var v mat3.Vec3
			if hex != "" {
				if v, err = cie.HexToXYZ100(hex); err != nil {
					return err
				}
			} else if v, err = parseVec3(args[1:]); err != nil {
				return err
			}

			labels := [3]string{"X", "Y", "Z"}
			xyz := v
			var out []mat3.Vec3
			if inverse {
				out, err = c.ToXYZ100([]mat3.Vec3{v})
				if err == nil {
					xyz = out[0]
				}
			} else {
				labels = c.Labels()
				out, err = c.FromXYZ100([]mat3.Vec3{v})
				if err == nil && lightnessLast {
					labels, out = cs.Reorder(c, out)
				}
			}
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, l := range labels {
				fmt.Fprintf(w, "%s\t%.6g\n", l, out[0][i])
			}
			if srgb {
				r, g, b, err := cie.XYZ100ToSRGB(xyz)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "sRGB\t%.6g %.6g %.6g\n", r, g, b)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&hex, "hex", "", "sRGB hex color to convert instead of XYZ values")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "Convert coordinates of SPACE to XYZ")
	cmd.Flags().StringVarP(&white, "whitepoint", "w", "D65", "Illuminant of the white, one of "+strings.Join(cie.Illuminants(), ", "))
	cmd.Flags().BoolVar(&srgb, "srgb", false, "Also print the gamma-encoded sRGB values of the XYZ color")
	cmd.Flags().BoolVar(&lightnessLast, "lightness-last", false, "Print the lightness axis last")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func parseVec3(args []string) (mat3.Vec3, error) {
	var v mat3.Vec3
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return v, fmt.Errorf("value %d: %w", i+1, err)
		}
		v[i] = f
	}
	return v, nil
}
