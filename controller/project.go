package controller

import (
	"context"

	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/errors"
)

// GetProject returns the project with the given key, or ProjectNotFound.
func (c *Controller) GetProject(ctx context.Context, key string) (*entity.Project, error) {
	project, err := c.backend.GetProject(ctx, key)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errors.ProjectNotFound
	}
	return project, nil
}

// GetBranches lists the branches of the repository linked to a project.
func (c *Controller) GetBranches(ctx context.Context, key string) ([]*entity.Branch, error) {
	_, repo, err := projectRepository(ctx, c.backend, key)
	if err != nil {
		return nil, err
	}
	return c.backend.GetBranches(ctx, repo)
}

func (c *Controller) GetProjects(ctx context.Context, account string) ([]*entity.Project, error) {
	return c.backend.GetProjects(ctx, account)
}

func (c *Controller) CreateProject(ctx context.Context, req *entity.CreateProjectRequest) (*entity.CreateProjectResponse, error) {
	return c.backend.CreateProject(ctx, req)
}

func (c *Controller) UpdateProject(ctx context.Context, req *entity.UpdateProjectRequest) error {
	return c.backend.UpdateProject(ctx, req)
}

func (c *Controller) DeleteProject(ctx context.Context, key string) error {
	return c.backend.DeleteProject(ctx, key)
}
