package cmd

import (
	"context"
	"os"

	"github.com/subquery/cli/entity"
)

func (h *Handler) Completion(ctx context.Context, req *entity.CommandRequest) error {
	root := req.Cmd.Root()
	switch req.Args[0] {
	case "bash":
		return root.GenBashCompletion(os.Stdout)
	case "zsh":
		return root.GenZshCompletion(os.Stdout)
	case "fish":
		return root.GenFishCompletion(os.Stdout, true)
	case "powershell":
		return root.GenPowerShellCompletion(os.Stdout)
	}
	return nil
}
