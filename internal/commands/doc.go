// Package commands provides the command-line interface for the encbox tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - checking a ciphertext against its fields
//   - listing the supported schemes
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/encbox/internal/config"
	"github.com/idelchi/encbox/internal/logger"
	"github.com/idelchi/encbox/internal/logic"
)

// EnvPrefix prefixes the environment variable of every flag, e.g. ENCBOX_PASSWORD.
const EnvPrefix = "ENCBOX"

// preRun returns a PreRunE handler that merges flags, environment and config file into cfg,
// resolves the optional ciphertext argument and validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		v := viper.New()

		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if path := v.GetString("config"); path != "" {
			v.SetConfigFile(path)

			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config file: %w", err)
			}
		}

		if err := v.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.PasswordSet = v.IsSet("password")

		if len(args) > 0 {
			cfg.Ciphertext = args[0]
		}

		return cfg.Validate()
	}
}

// streams binds the command's streams and the password prompt into a logic.IO.
func streams(cmd *cobra.Command, prompt logic.Prompter) logic.IO {
	return logic.IO{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Err:    cmd.ErrOrStderr(),
		Prompt: prompt,
	}
}

// withLogger returns the command context carrying a logger configured from cfg.
func withLogger(cmd *cobra.Command, cfg *config.Config) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return logger.New(cmd.ErrOrStderr(), cfg.Verbose, cfg.LogFormat).WithContext(ctx)
}
