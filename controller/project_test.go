package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/errors"
)

func TestGetBranches(t *testing.T) {
	backend := linkedBackend()
	backend.branches = []*entity.Branch{{Name: "main", Protected: true}, {Name: "develop"}}
	c, _ := newTestController(backend)

	branches, err := c.GetBranches(context.Background(), "org/project")
	require.NoError(t, err)
	require.Len(t, branches, 2)
	require.Equal(t, []string{"GetProject org/project", "GetBranches org/starter"}, backend.calls)

	backend.project.GitRepository = ""
	_, err = c.GetBranches(context.Background(), "org/project")
	require.EqualError(t, err, "Custom: The project org/project has no linked git repository")
}

func TestGetProjectMissing(t *testing.T) {
	c, _ := newTestController(&fakeBackend{})

	_, err := c.GetProject(context.Background(), "org/missing")
	require.Equal(t, errors.ProjectNotFound, err)
}
