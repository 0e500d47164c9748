package cmd

import (
	"context"
	"fmt"

	"github.com/subquery/cli/constants"
	"github.com/subquery/cli/controller"
	"github.com/subquery/cli/entity"
	"go.uber.org/zap"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	fmt.Printf("subquery version %s\n", constants.Version)
	if constants.Version == "source" {
		return nil
	}
	latest, err := h.ctrl.GetLatestVersion(ctx)
	if err != nil {
		// the release check is best effort
		h.logger.Debug("latest release lookup failed", zap.Error(err))
		return nil
	}
	if controller.IsOutdated(constants.Version, latest) {
		fmt.Println("A newer version of the SubQuery CLI is available, please update to:", latest)
	}
	return nil
}
