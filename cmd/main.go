package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/subquery/cli/configs"
	"github.com/subquery/cli/controller"
	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/errors"
	"github.com/subquery/cli/ui"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SkipAuthAnnotation marks commands that run without stored credentials.
const SkipAuthAnnotation = "subquery/skip-auth"

type Handler struct {
	ctrl   *controller.Controller
	cfg    *configs.Configs
	logger *zap.Logger
}

func New() *Handler {
	return &Handler{
		cfg:    configs.New(),
		logger: zap.NewNop(),
	}
}

func (h *Handler) Configs() *configs.Configs {
	return h.cfg
}

// Prepare runs before every command: it builds the logger once flags are
// parsed and enforces the auth gate.
func (h *Handler) Prepare(ctx context.Context, req *entity.CommandRequest) error {
	if h.cfg.IsVerbose() {
		logger, err := newDebugLogger()
		if err != nil {
			return err
		}
		h.logger = logger
	}
	h.ctrl = controller.New(h.cfg, h.logger)

	if skipsAuth(req.Cmd) {
		return nil
	}
	loggedIn, err := h.ctrl.IsLoggedIn(ctx)
	if err != nil {
		return err
	}
	if !loggedIn {
		return errors.UserConfigNotFound
	}
	return nil
}

// stdinIsTerminal gates interactive prompts.
var stdinIsTerminal = func() bool {
	return ui.IsTerminal(os.Stdin)
}

func skipsAuth(cmd *cobra.Command) bool {
	if _, skip := cmd.Annotations[SkipAuthAnnotation]; skip {
		return true
	}
	name := cmd.Name()
	return name == "help" || strings.HasPrefix(name, cobra.ShellCompRequestCmd)
}

// Sync flushes buffered log entries.
func (h *Handler) Sync() {
	_ = h.logger.Sync()
}

func newDebugLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if !ui.IsTerminal(os.Stderr) {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return cfg.Build()
}
