package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/ui"
)

func (h *Handler) Logs(ctx context.Context, req *entity.CommandRequest) error {
	flags := req.Cmd.Flags()
	key, err := projectKey(req)
	if err != nil {
		return err
	}
	stage, err := flags.GetBool("stage")
	if err != nil {
		return err
	}
	level, err := flags.GetString("level")
	if err != nil {
		return err
	}
	keyword, err := flags.GetString("keyword")
	if err != nil {
		return err
	}
	opts, err := pollOptions(req)
	if err != nil {
		return err
	}

	logsReq := entity.LogsRequest{Stage: stage, Level: level, Keyword: keyword}
	for entries, err := range h.ctrl.WatchLogs(ctx, key, logsReq, opts) {
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("[%s] [%s] [%s] %s\n",
				levelText(e.Level), e.Timestamp.Format(time.RFC3339Nano), ui.GrayText(e.Category), e.Message)
		}
	}
	return nil
}

func levelText(level string) string {
	switch level {
	case "error", "fatal":
		return ui.RedText(level)
	case "warn":
		return ui.YellowText(level)
	case "debug", "trace":
		return ui.GrayText(level)
	}
	return ui.CyanText(level)
}
