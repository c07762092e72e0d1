// Command encbox encrypts fields into a password-keyed AES box.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/idelchi/encbox/internal/commands"
	"github.com/idelchi/encbox/internal/config"
	"github.com/idelchi/encbox/internal/logic"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown - unofficial & generated by unknown"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, version, logic.TerminalPrompt(os.Stderr))

	err := root.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
