package main

import (
	"fmt"

	"github.com/clinmetrics/edss/internal/naming"
	"github.com/spf13/cobra"
)

func newSchemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List built-in field naming schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := naming.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				sch, err := naming.LoadBuiltin(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", name, sch.Description)
			}
			return nil
		},
	}
}
