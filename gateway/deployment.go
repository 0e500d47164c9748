package gateway

import (
	"context"
	"net/http"

	"github.com/subquery/cli/entity"
)

func (g *Gateway) GetDeployments(ctx context.Context, key string) ([]*entity.Deployment, error) {
	var deployments []*entity.Deployment
	err := g.do(ctx, &apiRequest{
		method:   http.MethodGet,
		endpoint: deploymentsEndpoint(key),
		auth:     true,
	}, &deployments)
	if err != nil {
		return nil, err
	}
	return deployments, nil
}

func (g *Gateway) CreateDeployment(ctx context.Context, key string, req *entity.DeployRequest) (*entity.Deployment, error) {
	var deployment entity.Deployment
	err := g.do(ctx, &apiRequest{
		method:   http.MethodPost,
		endpoint: deploymentsEndpoint(key),
		body:     req,
		auth:     true,
	}, &deployment)
	if err != nil {
		return nil, err
	}
	return &deployment, nil
}

// Redeploy replaces deployment id with the given request.
func (g *Gateway) Redeploy(ctx context.Context, key string, id uint64, req *entity.DeployRequest) error {
	return g.do(ctx, &apiRequest{
		method:   http.MethodPut,
		endpoint: deploymentEndpoint(key, id),
		body:     req,
		auth:     true,
	}, nil)
}

func (g *Gateway) DeleteDeployment(ctx context.Context, key string, id uint64) error {
	return g.do(ctx, &apiRequest{
		method:   http.MethodDelete,
		endpoint: deploymentEndpoint(key, id),
		auth:     true,
	}, nil)
}

// PromoteDeployment asks the server to release a stage deployment to primary.
func (g *Gateway) PromoteDeployment(ctx context.Context, key string, id uint64) error {
	return g.do(ctx, &apiRequest{
		method:   http.MethodPost,
		endpoint: deploymentEndpoint(key, id) + "/release",
		auth:     true,
	}, nil)
}

func (g *Gateway) GetSyncStatus(ctx context.Context, key string, id uint64) (*entity.SyncStatus, error) {
	var status entity.SyncStatus
	err := g.do(ctx, &apiRequest{
		method:   http.MethodGet,
		endpoint: deploymentEndpoint(key, id) + "/sync-status",
		auth:     true,
	}, &status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}
