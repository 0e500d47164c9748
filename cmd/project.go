package cmd

import (
	"context"
	"fmt"

	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/errors"
	"github.com/subquery/cli/ui"
)

func (h *Handler) CreateProject(ctx context.Context, req *entity.CommandRequest) error {
	flags := req.Cmd.Flags()
	key, err := projectKey(req)
	if err != nil {
		return err
	}
	org, slug := entity.SplitProjectKey(key)

	name, err := flags.GetString("name")
	if err != nil {
		return err
	}
	if name == "" {
		name = slug
	}
	hide, err := flags.GetBool("hide")
	if err != nil {
		return err
	}
	repo, err := repository(flags)
	if err != nil {
		return err
	}
	createReq := &entity.CreateProjectRequest{
		Key:           key,
		Account:       org,
		Name:          name,
		GitRepository: repo,
		Hide:          hide,
	}
	if createReq.Subtitle, err = optionalString(flags, "subtitle"); err != nil {
		return err
	}
	if createReq.Description, err = optionalString(flags, "description"); err != nil {
		return err
	}

	p, err := printer(req)
	if err != nil {
		return err
	}
	resp, err := h.ctrl.CreateProject(ctx, createReq)
	if err != nil {
		return err
	}
	if p.Format == ui.OutputRaw {
		fmt.Fprintln(p.Writer, resp.Key)
		return nil
	}
	project, err := h.ctrl.GetProject(ctx, resp.Key)
	if err != nil {
		return err
	}
	return p.PrintProject(project)
}

func (h *Handler) UpdateProject(ctx context.Context, req *entity.CommandRequest) error {
	flags := req.Cmd.Flags()
	key, err := projectKey(req)
	if err != nil {
		return err
	}
	updateReq := &entity.UpdateProjectRequest{Key: key}
	if updateReq.Name, err = optionalString(flags, "name"); err != nil {
		return err
	}
	if updateReq.Subtitle, err = optionalString(flags, "subtitle"); err != nil {
		return err
	}
	if updateReq.Description, err = optionalString(flags, "description"); err != nil {
		return err
	}
	if updateReq.Hide, err = optionalBool(flags, "hide"); err != nil {
		return err
	}

	if err := h.ctrl.UpdateProject(ctx, updateReq); err != nil {
		return err
	}
	fmt.Println(ui.GreenText("Success"))
	return nil
}

func (h *Handler) DeleteProject(ctx context.Context, req *entity.CommandRequest) error {
	key, err := projectKey(req)
	if err != nil {
		return err
	}
	ok, err := h.confirmDelete(req, "project", key)
	if err != nil || !ok {
		return err
	}
	if err := h.ctrl.DeleteProject(ctx, key); err != nil {
		return err
	}
	fmt.Println(ui.GreenText("Success"))
	return nil
}

func (h *Handler) ListProjects(ctx context.Context, req *entity.CommandRequest) error {
	org, err := req.Cmd.Flags().GetString("org")
	if err != nil {
		return err
	}
	p, err := printer(req)
	if err != nil {
		return err
	}
	projects, err := h.ctrl.GetProjects(ctx, org)
	if err != nil {
		return err
	}
	return p.PrintProjects(projects)
}

func (h *Handler) ListBranches(ctx context.Context, req *entity.CommandRequest) error {
	key, err := projectKey(req)
	if err != nil {
		return err
	}
	p, err := printer(req)
	if err != nil {
		return err
	}
	branches, err := h.ctrl.GetBranches(ctx, key)
	if err != nil {
		return err
	}
	return p.PrintBranches(branches)
}

func (h *Handler) OpenProject(ctx context.Context, req *entity.CommandRequest) error {
	key, err := projectKey(req)
	if err != nil {
		return err
	}
	if _, err := h.ctrl.GetProject(ctx, key); err != nil {
		return err
	}
	url, err := h.ctrl.OpenShortcut("project", key)
	if err != nil {
		fmt.Printf("Open %s in your browser\n", ui.Bold(url))
		return nil
	}
	fmt.Printf("Opened %s\n", ui.Bold(url))
	return nil
}

// confirmDelete asks before a destructive call unless --yes was given.
func (h *Handler) confirmDelete(req *entity.CommandRequest, kind string, name string) (bool, error) {
	yes, err := req.Cmd.Flags().GetBool("yes")
	if err != nil {
		return false, err
	}
	if yes {
		return true, nil
	}
	if !stdinIsTerminal() {
		return false, errors.ConfirmationRequired
	}
	return ui.PromptDelete(kind, name)
}
