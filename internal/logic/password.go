package logic

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/idelchi/encbox/internal/config"
)

// ErrNoPassword is returned when no password source is available.
var ErrNoPassword = errors.New("could not determine password")

// Prompter asks the user for a password without echoing it.
type Prompter func(prompt string) (string, error)

// TerminalPrompt returns a Prompter reading from stdin, or nil when stdin is not a terminal.
// The prompt is written to w.
func TerminalPrompt(w io.Writer) Prompter {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit in int
	if !term.IsTerminal(fd) {
		return nil
	}

	return func(prompt string) (string, error) {
		fmt.Fprint(w, prompt)

		password, err := term.ReadPassword(fd)

		fmt.Fprintln(w)

		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}

		return string(password), nil
	}
}

// passwordSource names where a password came from, for logging.
type passwordSource string

const (
	sourceFlag   passwordSource = "flag"
	sourceFile   passwordSource = "file"
	sourcePrompt passwordSource = "prompt"
)

// resolvePassword picks the password from the flag, then the password file, then the prompt.
// The file content is used verbatim, including any trailing newline.
func resolvePassword(cfg *config.Config, prompt Prompter) (string, passwordSource, error) {
	if cfg.PasswordSet || cfg.Password != "" {
		return cfg.Password, sourceFlag, nil
	}

	data, err := os.ReadFile(cfg.PasswordFile)

	switch {
	case err == nil:
		return string(data), sourceFile, nil
	case !errors.Is(err, os.ErrNotExist):
		return "", "", fmt.Errorf("%w: reading password file: %w", ErrNoPassword, err)
	case prompt != nil:
		password, err := prompt("Password: ")
		if err != nil {
			return "", "", fmt.Errorf("%w: %w", ErrNoPassword, err)
		}

		return password, sourcePrompt, nil
	default:
		return "", "", fmt.Errorf("%w: %w", ErrNoPassword, err)
	}
}
