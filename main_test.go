package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/subquery/cli/entity"
	cerrors "github.com/subquery/cli/errors"
)

func TestExitCode(t *testing.T) {
	require.Equal(t, 78, exitCode(cerrors.UserConfigNotFound))
	require.Equal(t, 78, exitCode(errors.Wrap(cerrors.UserConfigNotFound, "prepare")))
	require.Equal(t, 1, exitCode(cerrors.NewAPIError("/user", 401, "Unauthorized")))
	require.Equal(t, 1, exitCode(cerrors.Custom("Not found query image")))
	require.Equal(t, 1, exitCode(cerrors.DeploymentNotFound))
}

func TestContextualizeRecoversPanics(t *testing.T) {
	var reported string
	panicFn := func(ctx context.Context, err string, stacktrace string, command string, args []string) error {
		reported = command + ": " + err
		require.NotEmpty(t, stacktrace)
		return fmt.Errorf("%s", err)
	}
	fn := contextualize(func(ctx context.Context, req *entity.CommandRequest) error {
		panic("boom")
	}, panicFn)

	err := fn(&cobra.Command{Use: "deploy"}, nil)
	require.EqualError(t, err, "boom")
	require.Equal(t, "deploy: boom", reported)
}

func TestAuthGateSkips(t *testing.T) {
	for _, name := range []string{"login", "logout", "version", "docs", "completion"} {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		require.Contains(t, c.Annotations, "subquery/skip-auth", name)
	}
	c, _, err := rootCmd.Find([]string{"deployment", "deploy"})
	require.NoError(t, err)
	require.NotContains(t, c.Annotations, "subquery/skip-auth")
}
