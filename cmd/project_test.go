package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/errors"
)

func deleteRequest(t *testing.T, args ...string) *entity.CommandRequest {
	t.Helper()
	c := &cobra.Command{Use: "delete"}
	c.Flags().BoolP("yes", "y", false, "")
	require.NoError(t, c.Flags().Parse(args))
	return &entity.CommandRequest{Cmd: c}
}

func withStdinTerminal(t *testing.T, terminal bool) {
	t.Helper()
	prev := stdinIsTerminal
	stdinIsTerminal = func() bool { return terminal }
	t.Cleanup(func() { stdinIsTerminal = prev })
}

func TestConfirmDeleteWithoutTerminal(t *testing.T) {
	withStdinTerminal(t, false)
	h := New()

	ok, err := h.confirmDelete(deleteRequest(t), "project", "org/project")
	require.Equal(t, errors.ConfirmationRequired, err)
	require.False(t, ok)

	ok, err = h.confirmDelete(deleteRequest(t, "--yes"), "project", "org/project")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPromptSidWithoutTerminal(t *testing.T) {
	withStdinTerminal(t, false)

	_, err := New().promptSid()
	require.Equal(t, errors.SidNotSpecified, err)
}
