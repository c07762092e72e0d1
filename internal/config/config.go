// Package config holds the runtime configuration of the encbox command line.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/idelchi/encbox/internal/encryption"
	"github.com/idelchi/encbox/internal/logger"
)

// DefaultPasswordFile is read when no password is given on the command line.
const DefaultPasswordFile = ".pass"

// Config is populated from flags, ENCBOX_* environment variables and an optional config file.
type Config struct {
	// Password takes precedence over PasswordFile.
	Password     string `mapstructure:"password"`
	PasswordFile string `mapstructure:"password-file"`
	// PasswordSet records whether Password was given explicitly, so that an empty password is honored.
	PasswordSet bool `mapstructure:"-"`

	// Scheme is the variant index. Cipher, when set, wins over it.
	Scheme uint32 `mapstructure:"scheme"`
	Cipher string `mapstructure:"cipher"`

	Verbose   bool          `mapstructure:"verbose"`
	LogFormat logger.Format `mapstructure:"log-format" validate:"oneof=console json"`

	// Encrypt flags
	Fields     []string `mapstructure:"field"`
	FieldsFrom string   `mapstructure:"fields-from" validate:"omitempty,file"`
	All        bool     `mapstructure:"all"         validate:"exclusive=Cipher"`
	Parallel   int      `mapstructure:"parallel"    validate:"gte=0"`
	Stats      bool     `mapstructure:"stats"`

	// Output, when set, receives the result instead of stdout.
	Output string `mapstructure:"output"`

	// Ciphertext is the base64 input of decrypt. Empty means read stdin.
	Ciphertext string `mapstructure:"-"`
}

// Validate validates the configuration against the struct tags.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := registerExclusive(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}

// Variant resolves the selected cipher variant.
func (c *Config) Variant() (encryption.Variant, error) {
	if c.Cipher != "" {
		return encryption.ParseVariant(c.Cipher)
	}

	return encryption.FromIndex(c.Scheme)
}
