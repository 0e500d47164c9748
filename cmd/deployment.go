package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/ui"
)

func (h *Handler) ListDeployments(ctx context.Context, req *entity.CommandRequest) error {
	key, err := projectKey(req)
	if err != nil {
		return err
	}
	p, err := printer(req)
	if err != nil {
		return err
	}
	deployments, err := h.ctrl.GetDeployments(ctx, key)
	if err != nil {
		return err
	}
	return p.PrintDeployments(deployments)
}

func (h *Handler) Deploy(ctx context.Context, req *entity.CommandRequest) error {
	flags := req.Cmd.Flags()
	key, err := projectKey(req)
	if err != nil {
		return err
	}
	deployReq, err := createDeployRequest(flags)
	if err != nil {
		return err
	}
	force, err := flags.GetBool("force")
	if err != nil {
		return err
	}
	p, err := printer(req)
	if err != nil {
		return err
	}
	branch, err := h.deployBranch(req, deployReq)
	if err != nil {
		return err
	}

	ui.StartSpinner(&ui.SpinnerCfg{
		Message: fmt.Sprintf("Deploying %s to %s", ui.Bold(key), deployReq.Type),
		Tokens:  ui.Dots,
	})
	deployment, err := h.ctrl.Deploy(ctx, key, branch, deployReq, force)
	ui.StopSpinner("")
	if err != nil {
		return err
	}
	return p.PrintDeployment(deployment)
}

func (h *Handler) Redeploy(ctx context.Context, req *entity.CommandRequest) error {
	flags := req.Cmd.Flags()
	key, err := projectKey(req)
	if err != nil {
		return err
	}
	id, err := optionalID(flags)
	if err != nil {
		return err
	}
	deployReq, err := createDeployRequest(flags)
	if err != nil {
		return err
	}
	branch, err := h.deployBranch(req, deployReq)
	if err != nil {
		return err
	}

	ui.StartSpinner(&ui.SpinnerCfg{
		Message: fmt.Sprintf("Redeploying %s", ui.Bold(key)),
		Tokens:  ui.Dots,
	})
	target, err := h.ctrl.Redeploy(ctx, key, branch, id, deployReq)
	ui.StopSpinner("")
	if err != nil {
		return err
	}
	fmt.Printf("%s redeployed deployment %d\n", ui.GreenText("Success"), target)
	return nil
}

// deployBranch is only needed when the commit has to be looked up.
func (h *Handler) deployBranch(req *entity.CommandRequest, deployReq entity.CreateDeployRequest) (string, error) {
	if deployReq.Commit != nil {
		return req.Cmd.Flags().GetString("branch")
	}
	return branch(req.Cmd.Flags())
}

func (h *Handler) DeleteDeployment(ctx context.Context, req *entity.CommandRequest) error {
	key, err := projectKey(req)
	if err != nil {
		return err
	}
	id, err := req.Cmd.Flags().GetUint64("id")
	if err != nil {
		return err
	}
	ok, err := h.confirmDelete(req, "deployment", fmt.Sprintf("%s#%d", key, id))
	if err != nil || !ok {
		return err
	}
	if err := h.ctrl.DeleteDeployment(ctx, key, id); err != nil {
		return err
	}
	fmt.Println(ui.GreenText("Success"))
	return nil
}

func (h *Handler) Promote(ctx context.Context, req *entity.CommandRequest) error {
	key, err := projectKey(req)
	if err != nil {
		return err
	}
	id, err := optionalID(req.Cmd.Flags())
	if err != nil {
		return err
	}
	target, found, err := h.ctrl.Promote(ctx, key, id)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(os.Stderr, ui.YellowText("Not found any stage deployment"))
		return nil
	}
	fmt.Printf("%s promoted deployment %d\n", ui.GreenText("Success"), target)
	return nil
}

func (h *Handler) SyncStatus(ctx context.Context, req *entity.CommandRequest) error {
	flags := req.Cmd.Flags()
	key, err := projectKey(req)
	if err != nil {
		return err
	}
	sel, err := deploymentSelector(flags)
	if err != nil {
		return err
	}
	opts, err := pollOptions(req)
	if err != nil {
		return err
	}

	id := sel.ID
	if id == nil {
		deployment, err := h.ctrl.GetDeployment(ctx, key, sel)
		if err != nil {
			return err
		}
		id = &deployment.ID
	}

	for snapshot, err := range h.ctrl.WatchSyncStatus(ctx, key, *id, opts) {
		if err != nil {
			return err
		}
		suffix := ""
		if opts.Rolling {
			suffix = fmt.Sprintf(" [%d]", snapshot.Iteration)
		}
		fmt.Printf("total_entities: %d target_block: %d processing_block: %d percent: %s%%%s\n",
			snapshot.TotalEntities, snapshot.TargetBlock, snapshot.ProcessingBlock, snapshot.FormattedPercent(), suffix)
	}
	return nil
}

func (h *Handler) Metadata(ctx context.Context, req *entity.CommandRequest) error {
	key, err := projectKey(req)
	if err != nil {
		return err
	}
	sel, err := deploymentSelector(req.Cmd.Flags())
	if err != nil {
		return err
	}
	p, err := printer(req)
	if err != nil {
		return err
	}
	metadata, err := h.ctrl.GetMetadata(ctx, key, sel)
	if err != nil {
		return err
	}
	return p.PrintMetadata(metadata)
}

func pollOptions(req *entity.CommandRequest) (entity.PollOptions, error) {
	rolling, err := req.Cmd.Flags().GetBool("rolling")
	if err != nil {
		return entity.PollOptions{}, err
	}
	seconds, err := req.Cmd.Flags().GetUint("interval")
	if err != nil {
		return entity.PollOptions{}, err
	}
	return entity.PollOptions{
		Rolling:  rolling,
		Interval: time.Duration(seconds) * time.Second,
	}, nil
}
