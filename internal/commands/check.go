package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/encbox/internal/config"
	"github.com/idelchi/encbox/internal/logic"
)

// NewCheckCommand creates a new cobra command for the check subcommand.
func NewCheckCommand(cfg *config.Config, prompt logic.Prompter) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check [flags] [ciphertext]",
		Short:   "Verify that the fields and password produce the ciphertext",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Check(withLogger(cmd, cfg), cfg, streams(cmd, prompt))
		},
	}

	cmd.Flags().StringArrayP("field", "f", nil, "Field to add, repeatable")
	cmd.Flags().String("fields-from", "", "JSONC file with an array of fields, appended after --field values")

	return cmd
}
