package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/subquery/cli/configs"
	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/errors"
)

func newUserController(t *testing.T, backend *fakeBackend) *Controller {
	t.Helper()
	t.Setenv("SUBQUERY_CONFIG_DIR", t.TempDir())
	c, _ := newTestController(backend)
	c.cfg = configs.New()
	return c
}

func TestLoginStoresUser(t *testing.T) {
	backend := &fakeBackend{user: &entity.User{
		Username:    "fewensa",
		AccessToken: "token",
		Accounts: []*entity.Account{
			{Key: "fewensa", Type: entity.AccountTypeUser},
			{Key: "subquery", Type: entity.AccountTypeOrg},
		},
	}}
	c := newUserController(t, backend)
	ctx := context.Background()

	loggedIn, err := c.IsLoggedIn(ctx)
	require.NoError(t, err)
	require.False(t, loggedIn)

	user, err := c.Login(ctx, "s%3Asid")
	require.NoError(t, err)
	require.Equal(t, "fewensa", user.Username)
	require.Equal(t, []string{"GetUser s%3Asid"}, backend.calls)

	stored, err := c.GetUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "token", stored.AccessToken)

	accounts, err := c.GetAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	require.Equal(t, []string{"fewensa", "subquery"}, []string{accounts[0].Key, accounts[1].Key})

	wasLoggedIn, err := c.Logout(ctx)
	require.NoError(t, err)
	require.True(t, wasLoggedIn)

	_, err = c.GetUser(ctx)
	require.Equal(t, errors.UserConfigNotFound, err)

	wasLoggedIn, err = c.Logout(ctx)
	require.NoError(t, err)
	require.False(t, wasLoggedIn)
}

func TestGetAccountsLoggedOut(t *testing.T) {
	c := newUserController(t, &fakeBackend{})

	_, err := c.GetAccounts(context.Background())
	require.Equal(t, errors.UserConfigNotFound, err)
}

func TestLoginWithoutSid(t *testing.T) {
	c := newUserController(t, &fakeBackend{})

	_, err := c.Login(context.Background(), "")
	require.Equal(t, errors.SidNotSpecified, err)
}

func TestLoginWithoutToken(t *testing.T) {
	c := newUserController(t, &fakeBackend{user: &entity.User{Username: "fewensa"}})

	_, err := c.Login(context.Background(), "sid")
	require.Equal(t, errors.LoginFailed, err)

	loggedIn, err := c.IsLoggedIn(context.Background())
	require.NoError(t, err)
	require.False(t, loggedIn)
}

func TestIsOutdated(t *testing.T) {
	require.False(t, IsOutdated("source", "v1.0.0"))
	require.False(t, IsOutdated("v1.0.0", "1.0.0"))
	require.True(t, IsOutdated("v0.9.0", "v1.0.0"))
	require.False(t, IsOutdated("v0.9.0", ""))
}

func TestDocsLinks(t *testing.T) {
	links := DocsLinks("org/project")
	require.Equal(t, "docs", links[0][0])
	for _, link := range links {
		if link[0] == "project" {
			require.Equal(t, "https://explorer.subquery.network/subquery/org/project", link[1])
		}
	}
}
