// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Check that a file holds a square numeric matrix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pm, source, err := a.loadMatrix(args)
			if err != nil {
				return err
			}
			st := newStyles(cmd.OutOrStdout())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d×%d matrix\n",
				st.ok.Render("valid"), source, pm.RowCount, pm.ColumnCount)
			return err
		},
	}
	addInputFlags(cmd)

	return cmd
}
