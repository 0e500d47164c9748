package controller

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/errors"
	"github.com/subquery/cli/gateway"
	"go.uber.org/zap"
)

var ErrDeploymentNotFound = errors.DeploymentNotFound

func (c *Controller) GetDeployments(ctx context.Context, key string) ([]*entity.Deployment, error) {
	return c.backend.GetDeployments(ctx, key)
}

// SelectTarget returns the first deployment of type t, or nil.
func SelectTarget(deployments []*entity.Deployment, t entity.DeploymentType) *entity.Deployment {
	d, ok := lo.Find(deployments, func(d *entity.Deployment) bool {
		return d != nil && d.Type == t
	})
	if !ok {
		return nil
	}
	return d
}

// GetDeployment finds a deployment by id, or by type when no id is given.
func (c *Controller) GetDeployment(ctx context.Context, key string, sel entity.DeploymentSelector) (*entity.Deployment, error) {
	deployments, err := c.backend.GetDeployments(ctx, key)
	if err != nil {
		return nil, err
	}
	var found *entity.Deployment
	if sel.ID != nil {
		found, _ = lo.Find(deployments, func(d *entity.Deployment) bool {
			return d != nil && d.ID == *sel.ID
		})
	} else {
		found = SelectTarget(deployments, sel.Type)
	}
	if found == nil {
		return nil, ErrDeploymentNotFound
	}
	return found, nil
}

// Deploy creates a deployment. With force, the existing deployment of the
// same type is deleted first.
func (c *Controller) Deploy(ctx context.Context, key string, branch string, req entity.CreateDeployRequest, force bool) (*entity.Deployment, error) {
	if force {
		deployments, err := c.backend.GetDeployments(ctx, key)
		if err != nil {
			return nil, err
		}
		if existing := SelectTarget(deployments, req.Type); existing != nil {
			c.logger.Info("force mode, deleting deployment",
				zap.String("project", key),
				zap.Uint64("id", existing.ID),
				zap.String("type", string(existing.Type)),
			)
			if err := c.backend.DeleteDeployment(ctx, key, existing.ID); err != nil {
				return nil, err
			}
		}
	}

	deployReq, err := c.resolve(ctx, key, branch, req)
	if err != nil {
		return nil, err
	}
	return c.backend.CreateDeployment(ctx, key, deployReq)
}

// Redeploy replaces a deployment in place and returns the id it targeted.
// Without an explicit id the first deployment of req.Type is used.
func (c *Controller) Redeploy(ctx context.Context, key string, branch string, id *uint64, req entity.CreateDeployRequest) (uint64, error) {
	var target uint64
	if id != nil {
		target = *id
	} else {
		deployments, err := c.backend.GetDeployments(ctx, key)
		if err != nil {
			return 0, err
		}
		existing := SelectTarget(deployments, req.Type)
		if existing == nil {
			return 0, pkgerrors.Wrapf(ErrDeploymentNotFound, "redeploy %s", req.Type)
		}
		target = existing.ID
	}

	deployReq, err := c.resolve(ctx, key, branch, req)
	if err != nil {
		return 0, err
	}
	return target, c.backend.Redeploy(ctx, key, target, deployReq)
}

// Promote releases a stage deployment to primary. Having no stage
// deployment is not an error: found is false.
func (c *Controller) Promote(ctx context.Context, key string, id *uint64) (uint64, bool, error) {
	var target uint64
	if id != nil {
		target = *id
	} else {
		deployments, err := c.backend.GetDeployments(ctx, key)
		if err != nil {
			return 0, false, err
		}
		stage := SelectTarget(deployments, entity.DeploymentTypeStage)
		if stage == nil {
			return 0, false, nil
		}
		target = stage.ID
	}
	if err := c.backend.PromoteDeployment(ctx, key, target); err != nil {
		return 0, false, err
	}
	return target, true, nil
}

func (c *Controller) DeleteDeployment(ctx context.Context, key string, id uint64) error {
	return c.backend.DeleteDeployment(ctx, key, id)
}

// GetMetadata reads _metadata from the query endpoint of the selected
// deployment.
func (c *Controller) GetMetadata(ctx context.Context, key string, sel entity.DeploymentSelector) (*entity.Metadata, error) {
	deployment, err := c.GetDeployment(ctx, key, sel)
	if err != nil {
		return nil, err
	}
	queryURL := deployment.QueryURL
	if queryURL == "" {
		queryURL = deployment.QueryClusterURL
	}
	if queryURL == "" {
		return nil, errors.QueryURLNotFound
	}
	return c.backend.GetMetadata(ctx, queryURL, gateway.AllMetadataFields)
}

func (c *Controller) resolve(ctx context.Context, key string, branch string, req entity.CreateDeployRequest) (*entity.DeployRequest, error) {
	deployReq, err := Resolve(ctx, c.backend, key, branch, req)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("resolved deployment",
		zap.String("project", key),
		zap.String("version", deployReq.Version),
		zap.String("indexer_image", deployReq.IndexerImageVersion),
		zap.String("query_image", deployReq.QueryImageVersion),
	)
	return deployReq, nil
}
