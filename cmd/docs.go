package cmd

import (
	"context"
	"fmt"

	"github.com/subquery/cli/controller"
	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/ui"
)

// Docs lists the known links, or opens the one named by the first argument.
func (h *Handler) Docs(ctx context.Context, req *entity.CommandRequest) error {
	if len(req.Args) == 0 {
		links := controller.DocsLinks("")
		values := make(map[string]string, len(links))
		for _, link := range links {
			values[link[0]] = link[1]
		}
		fmt.Print(ui.KeyValues(values))
		return nil
	}
	url, err := h.ctrl.OpenShortcut(req.Args[0], "")
	if err != nil {
		if url == "" {
			return err
		}
		fmt.Printf("Open %s in your browser\n", ui.Bold(url))
		return nil
	}
	fmt.Printf("Opened %s\n", ui.Bold(url))
	return nil
}
