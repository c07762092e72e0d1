package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/encbox/internal/config"
	"github.com/idelchi/encbox/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config, prompt logic.Prompter) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags]",
		Aliases: []string{"enc"},
		Short:   "Encrypt fields",
		Example: `  encbox encrypt -p secret -f alice -f 42 -s 9
  encbox encrypt --fields-from fields.jsonc --all`,
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Encrypt(withLogger(cmd, cfg), cfg, streams(cmd, prompt))
		},
	}

	cmd.Flags().StringArrayP("field", "f", nil, "Field to add, repeatable")
	cmd.Flags().String("fields-from", "", "JSONC file with an array of fields, appended after --field values")
	cmd.Flags().Bool("all", false, "Encrypt under every scheme, one line per scheme")
	cmd.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers for --all")
	cmd.Flags().StringP("output", "o", "", "Write the result to a file instead of stdout")
	cmd.Flags().Bool("stats", false, "Print statistics to stderr")

	return cmd
}
