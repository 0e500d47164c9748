package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/subquery/cli/configs"
	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/gateway"
	"github.com/subquery/cli/gateway/github"
	"go.uber.org/zap"
)

// Catalog is what the defaulting engine reads to fill in a deployment.
type Catalog interface {
	GetProject(ctx context.Context, key string) (*entity.Project, error)
	GetCommits(ctx context.Context, repo string, branch string) ([]*entity.Commit, error)
	GetImages(ctx context.Context) (*entity.ImageCatalog, error)
}

// Backend is the remote API. *gateway.Gateway satisfies it.
type Backend interface {
	Catalog

	GetUser(ctx context.Context, sid string) (*entity.User, error)
	GetBranches(ctx context.Context, repo string) ([]*entity.Branch, error)

	GetProjects(ctx context.Context, account string) ([]*entity.Project, error)
	CreateProject(ctx context.Context, req *entity.CreateProjectRequest) (*entity.CreateProjectResponse, error)
	UpdateProject(ctx context.Context, req *entity.UpdateProjectRequest) error
	DeleteProject(ctx context.Context, key string) error

	GetDeployments(ctx context.Context, key string) ([]*entity.Deployment, error)
	CreateDeployment(ctx context.Context, key string, req *entity.DeployRequest) (*entity.Deployment, error)
	Redeploy(ctx context.Context, key string, id uint64, req *entity.DeployRequest) error
	DeleteDeployment(ctx context.Context, key string, id uint64) error
	PromoteDeployment(ctx context.Context, key string, id uint64) error
	GetSyncStatus(ctx context.Context, key string, id uint64) (*entity.SyncStatus, error)

	SearchLogs(ctx context.Context, key string, req *entity.LogsRequest) ([]*entity.LogEntry, error)
	GetMetadata(ctx context.Context, queryURL string, fields entity.MetadataGQL) (*entity.Metadata, error)
}

var _ Backend = (*gateway.Gateway)(nil)

// ReleaseSource reports the newest published CLI release.
type ReleaseSource interface {
	GetLatestRelease(ctx context.Context, owner string, repo string) (string, error)
}

type sleepFunc func(ctx context.Context, d time.Duration) error

type Controller struct {
	backend  Backend
	releases ReleaseSource
	cfg      *configs.Configs
	logger   *zap.Logger
	sleep    sleepFunc
}

func New(cfg *configs.Configs, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		backend:  gateway.New(cfg, logger.Named("gateway")),
		releases: github.New(&http.Client{Timeout: configs.RequestTimeout}),
		cfg:      cfg,
		logger:   logger,
		sleep:    sleepContext,
	}
}

// sleepContext waits for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
