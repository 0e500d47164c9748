package controller

import (
	"context"

	"github.com/pkg/browser"
	"github.com/subquery/cli/constants"
	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/errors"
	"go.uber.org/zap"
)

// Login exchanges the browser session id for the user and stores it.
func (c *Controller) Login(ctx context.Context, sid string) (*entity.User, error) {
	if sid == "" {
		return nil, errors.SidNotSpecified
	}
	user, err := c.backend.GetUser(ctx, sid)
	if err != nil {
		return nil, err
	}
	if user == nil || user.AccessToken == "" {
		return nil, errors.LoginFailed
	}
	c.logger.Debug("signed in",
		zap.String("username", user.Username),
		zap.String("display_name", user.DisplayName),
	)
	if err := c.cfg.Credentials.Store(user); err != nil {
		return nil, err
	}
	return user, nil
}

// OpenLoginPage opens the page where the session id can be copied from.
// The url is returned so it can be printed when no browser is available.
func (c *Controller) OpenLoginPage() (string, error) {
	url := constants.DocsURLMap["login"]
	return url, browser.OpenURL(url)
}

// Logout reports whether a user was signed in before the credential was
// cleared.
func (c *Controller) Logout(ctx context.Context) (bool, error) {
	loggedIn, err := c.IsLoggedIn(ctx)
	if err != nil {
		return false, err
	}
	if !loggedIn {
		return false, nil
	}
	return true, c.cfg.Credentials.Clear()
}

func (c *Controller) IsLoggedIn(ctx context.Context) (bool, error) {
	return c.cfg.Credentials.IsLoggedIn()
}

// GetUser returns the stored user without calling the API.
func (c *Controller) GetUser(ctx context.Context) (*entity.User, error) {
	user, err := c.cfg.Credentials.Restore()
	if err != nil {
		return nil, err
	}
	if user == nil || user.AccessToken == "" {
		return nil, errors.UserConfigNotFound
	}
	return user, nil
}

// GetAccounts returns every account key the stored user can pass as --org,
// its own user account included.
func (c *Controller) GetAccounts(ctx context.Context) ([]*entity.Account, error) {
	user, err := c.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	return user.Accounts, nil
}
