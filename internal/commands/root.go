package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/encbox/internal/config"
	"github.com/idelchi/encbox/internal/logger"
	"github.com/idelchi/encbox/internal/logic"
)

// NewRootCommand creates the root command with common configuration.
// prompt is used to ask for a password when neither flag nor file supply one; it may be nil.
func NewRootCommand(cfg *config.Config, version string, prompt logic.Prompter) *cobra.Command {
	root := &cobra.Command{
		Use:   "encbox [flags] command [flags]",
		Short: "Password-keyed AES field encryption",
		Long: `Encrypt any number of fields into a single AES ciphertext keyed by a password.

The fields are concatenated without delimiters and encrypted with one of twelve
AES variants, selected by --scheme index or --cipher name. The variant is not
recorded in the output, so the same scheme must be passed to decrypt.
Output is base64.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	flags := root.PersistentFlags()

	flags.StringP("password", "p", "", "Password for encryption/decryption (supersedes --password-file)")
	flags.String("password-file", config.DefaultPasswordFile, "Path to a file holding the password, used verbatim")
	flags.Uint32P("scheme", "s", 0, "Encryption scheme index, see the schemes command")
	flags.StringP("cipher", "c", "", "Encryption scheme name, e.g. aes-256-cbc (overrides --scheme)")
	flags.BoolP("verbose", "v", false, "Log debug information to stderr")
	flags.String("log-format", string(logger.FormatConsole), "Log format: console or json")
	flags.String("config", "", "Path to a config file (yaml, json or toml) with flag values")

	root.AddCommand(
		NewEncryptCommand(cfg, prompt),
		NewDecryptCommand(cfg, prompt),
		NewCheckCommand(cfg, prompt),
		NewSchemesCommand(),
	)

	return root
}
