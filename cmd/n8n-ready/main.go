package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cockroachdb/errors"

	"github.com/doeshing/n8n-ready/internal/infrastructure/cli"
	"github.com/doeshing/n8n-ready/internal/infrastructure/cli/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		ui.PrintError(os.Stderr, err)
		return 1
	}

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, cli.ErrDiagnosticsFailed) {
			ui.PrintError(os.Stderr, err)
		}
		return 1
	}
	return 0
}

func isVerbose() bool {
	v := os.Getenv("N8N_READY_DEBUG")
	return v == "1" || strings.EqualFold(v, "true")
}
