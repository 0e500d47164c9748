package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/errors"
	"github.com/subquery/cli/ui"
)

func (h *Handler) Login(ctx context.Context, req *entity.CommandRequest) error {
	sid, err := req.Cmd.Flags().GetString("sid")
	if err != nil {
		return err
	}
	if sid == "" {
		if sid, err = h.promptSid(); err != nil {
			return err
		}
	}

	user, err := h.ctrl.Login(ctx, strings.TrimSpace(sid))
	if err != nil {
		return err
	}

	name := user.Username
	if user.DisplayName != "" {
		name = user.DisplayName
	}
	fmt.Printf("🎉 Logged in as %s (%s)\n", ui.Bold(name), user.Email)
	return nil
}

// promptSid opens the login page and asks for the connect.sid cookie. Only
// interactive sessions get here; scripts must pass --sid.
func (h *Handler) promptSid() (string, error) {
	if !stdinIsTerminal() {
		return "", errors.SidNotSpecified
	}
	url, err := h.ctrl.OpenLoginPage()
	if err != nil {
		fmt.Printf("Open %s in your browser\n", ui.Bold(url))
	} else {
		fmt.Printf("Opened %s in your browser\n", ui.Bold(url))
	}
	fmt.Println(ui.GrayText("Sign in, then copy the value of the connect.sid cookie."))
	return ui.PromptSecret("Session id")
}

func (h *Handler) Logout(ctx context.Context, req *entity.CommandRequest) error {
	wasLoggedIn, err := h.ctrl.Logout(ctx)
	if err != nil {
		return err
	}
	if !wasLoggedIn {
		fmt.Printf("🚪  %s\n", ui.YellowText("Already logged out"))
		return nil
	}
	fmt.Printf("👋 %s\n", ui.YellowText("Logged out"))
	return nil
}
