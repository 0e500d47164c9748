package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/subquery/cli/entity"
	"go.uber.org/zap"
)

// fakeBackend records calls in order and serves canned data.
type fakeBackend struct {
	calls []string

	user        *entity.User
	project     *entity.Project
	projects    []*entity.Project
	commits     []*entity.Commit
	branches    []*entity.Branch
	images      *entity.ImageCatalog
	deployments []*entity.Deployment
	statuses    []*entity.SyncStatus
	logPages    [][]*entity.LogEntry
	metadata    *entity.Metadata

	created    *entity.DeployRequest
	redeployed *entity.DeployRequest
	queryURL   string

	err error
}

func (f *fakeBackend) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBackend) GetProject(ctx context.Context, key string) (*entity.Project, error) {
	f.record("GetProject %s", key)
	return f.project, f.err
}

func (f *fakeBackend) GetCommits(ctx context.Context, repo string, branch string) ([]*entity.Commit, error) {
	f.record("GetCommits %s %s", repo, branch)
	return f.commits, f.err
}

func (f *fakeBackend) GetBranches(ctx context.Context, repo string) ([]*entity.Branch, error) {
	f.record("GetBranches %s", repo)
	return f.branches, f.err
}

func (f *fakeBackend) GetImages(ctx context.Context) (*entity.ImageCatalog, error) {
	f.record("GetImages")
	return f.images, f.err
}

func (f *fakeBackend) GetUser(ctx context.Context, sid string) (*entity.User, error) {
	f.record("GetUser %s", sid)
	return f.user, f.err
}

func (f *fakeBackend) GetProjects(ctx context.Context, account string) ([]*entity.Project, error) {
	f.record("GetProjects %s", account)
	return f.projects, f.err
}

func (f *fakeBackend) CreateProject(ctx context.Context, req *entity.CreateProjectRequest) (*entity.CreateProjectResponse, error) {
	f.record("CreateProject %s", req.Key)
	return &entity.CreateProjectResponse{Key: req.Key}, f.err
}

func (f *fakeBackend) UpdateProject(ctx context.Context, req *entity.UpdateProjectRequest) error {
	f.record("UpdateProject %s", req.Key)
	return f.err
}

func (f *fakeBackend) DeleteProject(ctx context.Context, key string) error {
	f.record("DeleteProject %s", key)
	return f.err
}

func (f *fakeBackend) GetDeployments(ctx context.Context, key string) ([]*entity.Deployment, error) {
	f.record("GetDeployments %s", key)
	return f.deployments, f.err
}

func (f *fakeBackend) CreateDeployment(ctx context.Context, key string, req *entity.DeployRequest) (*entity.Deployment, error) {
	f.record("CreateDeployment %s", key)
	f.created = req
	return &entity.Deployment{ID: 99, ProjectKey: key, Version: req.Version, Type: req.Type, Status: entity.STATUS_PROCESSING}, f.err
}

func (f *fakeBackend) Redeploy(ctx context.Context, key string, id uint64, req *entity.DeployRequest) error {
	f.record("Redeploy %s %d", key, id)
	f.redeployed = req
	return f.err
}

func (f *fakeBackend) DeleteDeployment(ctx context.Context, key string, id uint64) error {
	f.record("DeleteDeployment %s %d", key, id)
	return f.err
}

func (f *fakeBackend) PromoteDeployment(ctx context.Context, key string, id uint64) error {
	f.record("PromoteDeployment %s %d", key, id)
	return f.err
}

func (f *fakeBackend) GetSyncStatus(ctx context.Context, key string, id uint64) (*entity.SyncStatus, error) {
	f.record("GetSyncStatus %s %d", key, id)
	if len(f.statuses) == 0 {
		return nil, fmt.Errorf("no status")
	}
	status := f.statuses[0]
	if len(f.statuses) > 1 {
		f.statuses = f.statuses[1:]
	}
	return status, nil
}

func (f *fakeBackend) SearchLogs(ctx context.Context, key string, req *entity.LogsRequest) ([]*entity.LogEntry, error) {
	f.record("SearchLogs %s", key)
	if len(f.logPages) == 0 {
		return nil, nil
	}
	page := f.logPages[0]
	f.logPages = f.logPages[1:]
	return page, nil
}

func (f *fakeBackend) GetMetadata(ctx context.Context, queryURL string, fields entity.MetadataGQL) (*entity.Metadata, error) {
	f.record("GetMetadata %s", queryURL)
	f.queryURL = queryURL
	return f.metadata, f.err
}

// newTestController wires a controller to backend. Sleeps are recorded
// instead of waited on.
func newTestController(backend *fakeBackend) (*Controller, *[]time.Duration) {
	var slept []time.Duration
	return &Controller{
		backend: backend,
		logger:  zap.NewNop(),
		sleep: func(ctx context.Context, d time.Duration) error {
			slept = append(slept, d)
			return ctx.Err()
		},
	}, &slept
}

func strPtr(s string) *string { return &s }

func idPtr(id uint64) *uint64 { return &id }
