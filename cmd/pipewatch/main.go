package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/pipewatch/cli/internal/errors"
	"github.com/pipewatch/cli/pkg/cmd/factory"
	"github.com/pipewatch/cli/pkg/cmd/root"
)

// overridden at build time via -ldflags "-X main.version=..."
var version = "dev"

var errorHeadline = lipgloss.NewStyle().Foreground(lipgloss.Color("#F45756"))

func main() {
	f := factory.New(version)
	cmd := root.NewCmdRoot(f)

	if err := cmd.Execute(); err != nil {
		// diagnostics go to stderr so JSON on stdout is never interleaved
		// with error text
		fmt.Fprintln(os.Stderr, errorHeadline.Render("🚨")+" "+formatError(err))
		os.Exit(errors.ExitCode(err))
	}
}

func formatError(err error) string {
	var cliErr *errors.Error
	if stderrors.As(err, &cliErr) {
		return cliErr.FormattedError()
	}
	return err.Error()
}
