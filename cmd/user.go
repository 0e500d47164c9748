package cmd

import (
	"context"
	"fmt"

	"github.com/subquery/cli/entity"
)

func (h *Handler) UserInfo(ctx context.Context, req *entity.CommandRequest) error {
	user, err := h.ctrl.GetUser(ctx)
	if err != nil {
		return err
	}
	p, err := printer(req)
	if err != nil {
		return err
	}
	return p.PrintUser(user)
}

func (h *Handler) AccessToken(ctx context.Context, req *entity.CommandRequest) error {
	user, err := h.ctrl.GetUser(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(req.Cmd.OutOrStdout(), user.AccessToken)
	return nil
}

func (h *Handler) Orgs(ctx context.Context, req *entity.CommandRequest) error {
	accounts, err := h.ctrl.GetAccounts(ctx)
	if err != nil {
		return err
	}
	p, err := printer(req)
	if err != nil {
		return err
	}
	return p.PrintAccounts(accounts)
}
