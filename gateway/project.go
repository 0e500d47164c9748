package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/subquery/cli/entity"
)

// GetProject returns the project with the given key, or nil when the API
// has no such project.
func (g *Gateway) GetProject(ctx context.Context, key string) (*entity.Project, error) {
	var project *entity.Project
	err := g.do(ctx, &apiRequest{
		method:   http.MethodGet,
		endpoint: projectEndpoint(key),
		auth:     true,
	}, &project)
	if err != nil {
		return nil, err
	}
	return project, nil
}

// GetProjects returns every project owned by the account (user or org).
func (g *Gateway) GetProjects(ctx context.Context, account string) ([]*entity.Project, error) {
	var projects []*entity.Project
	err := g.do(ctx, &apiRequest{
		method:   http.MethodGet,
		endpoint: "/user/projects",
		query:    url.Values{"account": []string{account}},
		auth:     true,
	}, &projects)
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (g *Gateway) CreateProject(ctx context.Context, req *entity.CreateProjectRequest) (*entity.CreateProjectResponse, error) {
	var resp entity.CreateProjectResponse
	err := g.do(ctx, &apiRequest{
		method:   http.MethodPost,
		endpoint: "/subqueries",
		body:     req,
		auth:     true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *Gateway) UpdateProject(ctx context.Context, req *entity.UpdateProjectRequest) error {
	return g.do(ctx, &apiRequest{
		method:   http.MethodPut,
		endpoint: projectEndpoint(req.Key),
		body:     req,
		auth:     true,
	}, nil)
}

func (g *Gateway) DeleteProject(ctx context.Context, key string) error {
	return g.do(ctx, &apiRequest{
		method:   http.MethodDelete,
		endpoint: projectEndpoint(key),
		auth:     true,
	}, nil)
}
