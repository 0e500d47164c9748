package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/subquery/cli/ui"
	"go.uber.org/zap"
)

// Panic reports a recovered panic. The stack is only shown with --verbose.
func (h *Handler) Panic(ctx context.Context, err string, stacktrace string, command string, args []string) error {
	h.logger.Error("panic",
		zap.String("command", command),
		zap.Strings("args", args),
		zap.String("panic", err),
	)
	fmt.Fprintf(os.Stderr, "🚨 %s %s\n", ui.RedText("Something went wrong running"), ui.Bold(command))
	if h.cfg.IsVerbose() {
		fmt.Fprintln(os.Stderr, ui.PrefixLines(stacktrace, "  "))
	}
	return fmt.Errorf("%s", err)
}
