package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/subquery/cli/entity"
)

// GetImages returns the indexer and query image versions, newest first.
func (g *Gateway) GetImages(ctx context.Context) (*entity.ImageCatalog, error) {
	var images entity.ImageCatalog
	err := g.do(ctx, &apiRequest{
		method:   http.MethodGet,
		endpoint: "/info/images",
		auth:     true,
	}, &images)
	if err != nil {
		return nil, err
	}
	return &images, nil
}

// GetBranches lists the branches of a GitHub repository given as org/repo.
func (g *Gateway) GetBranches(ctx context.Context, repo string) ([]*entity.Branch, error) {
	var branches []*entity.Branch
	err := g.do(ctx, &apiRequest{
		method:   http.MethodGet,
		endpoint: "/info/github/" + escapeKey(repo) + "/branches",
		auth:     true,
	}, &branches)
	if err != nil {
		return nil, err
	}
	return branches, nil
}

// GetCommits lists the commits of a branch, most recent first.
func (g *Gateway) GetCommits(ctx context.Context, repo string, branch string) ([]*entity.Commit, error) {
	var commits []*entity.Commit
	err := g.do(ctx, &apiRequest{
		method:   http.MethodGet,
		endpoint: "/info/github/" + escapeKey(repo) + "/commits/" + url.PathEscape(branch),
		auth:     true,
	}, &commits)
	if err != nil {
		return nil, err
	}
	return commits, nil
}
