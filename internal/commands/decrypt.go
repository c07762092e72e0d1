package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/encbox/internal/config"
	"github.com/idelchi/encbox/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config, prompt logic.Prompter) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] [ciphertext]",
		Aliases: []string{"dec"},
		Short:   "Decrypt a base64 ciphertext, read from stdin when no argument is given",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Decrypt(withLogger(cmd, cfg), cfg, streams(cmd, prompt))
		},
	}

	cmd.Flags().StringP("output", "o", "", "Write the fields to a file instead of stdout")
	cmd.Flags().Bool("stats", false, "Print statistics to stderr")

	return cmd
}
