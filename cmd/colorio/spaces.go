// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"cogentcore.org/colorio/cs"
	"github.com/spf13/cobra"
)

func newSpacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spaces",
		Short: "List the known color spaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tAXES\tLIGHTNESS\tORIGIN")
			for _, name := range cs.Names() {
				c, err := cs.New(name)
				if err != nil {
					return err
				}
				labels := c.Labels()
				fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", c.Name(), strings.Join(labels[:], ", "), labels[c.K0()], c.IsOriginWellDefined())
			}
			return tw.Flush()
		},
	}
}
