package controller

import (
	"context"

	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/errors"
	"github.com/subquery/cli/gateway"
)

// Resolve turns a partially specified deployment into a complete request.
// A missing commit becomes the newest commit on branch of the project's
// linked repository; missing image versions become the newest published
// images. req itself is left untouched.
func Resolve(ctx context.Context, src Catalog, key string, branch string, req entity.CreateDeployRequest) (*entity.DeployRequest, error) {
	out := &entity.DeployRequest{
		Type:         req.Type,
		Endpoint:     deref(req.Endpoint),
		DictEndpoint: deref(req.DictEndpoint),
		SubFolder:    deref(req.SubFolder),
	}

	if req.Commit != nil {
		out.Version = *req.Commit
	} else {
		commit, err := latestCommit(ctx, src, key, branch)
		if err != nil {
			return nil, err
		}
		out.Version = commit
	}

	var images *entity.ImageCatalog
	if req.IndexerImageVersion == nil || req.QueryImageVersion == nil {
		var err error
		if images, err = src.GetImages(ctx); err != nil {
			return nil, err
		}
	}

	if req.QueryImageVersion != nil {
		out.QueryImageVersion = *req.QueryImageVersion
	} else {
		if len(images.Query) == 0 {
			return nil, errors.Custom("Not found query image")
		}
		out.QueryImageVersion = images.Query[0]
	}

	if req.IndexerImageVersion != nil {
		out.IndexerImageVersion = *req.IndexerImageVersion
	} else {
		if len(images.Indexer) == 0 {
			return nil, errors.Custom("Not found indexer image")
		}
		out.IndexerImageVersion = images.Indexer[0]
	}

	return out, nil
}

func latestCommit(ctx context.Context, src Catalog, key string, branch string) (string, error) {
	project, repo, err := projectRepository(ctx, src, key)
	if err != nil {
		return "", err
	}

	commits, err := src.GetCommits(ctx, repo, branch)
	if err != nil {
		return "", err
	}
	if len(commits) == 0 {
		return "", errors.Custom("No commit found in git repository %s#%s", project.GitRepository, branch)
	}
	return commits[0].Sha, nil
}

// projectRepository returns the project together with the org/repo of its
// linked git repository.
func projectRepository(ctx context.Context, src Catalog, key string) (*entity.Project, string, error) {
	project, err := src.GetProject(ctx, key)
	if err != nil {
		return nil, "", err
	}
	if project == nil {
		return nil, "", errors.Custom("The project %s not found", key)
	}
	if project.GitRepository == "" {
		return nil, "", errors.Custom("The project %s has no linked git repository", key)
	}
	repo, err := gateway.ParseRepository(project.GitRepository)
	if err != nil {
		return nil, "", err
	}
	return project, repo, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
