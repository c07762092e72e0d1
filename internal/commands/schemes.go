package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/encbox/internal/logic"
)

// NewSchemesCommand creates a new cobra command listing the supported schemes.
func NewSchemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "schemes",
		Aliases: []string{"ls"},
		Short:   "List the supported encryption schemes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Schemes(cmd.OutOrStdout())
		},
	}
}
