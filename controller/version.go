package controller

import (
	"context"
	"strings"

	"github.com/subquery/cli/constants"
)

// GetLatestVersion returns the tag of the newest CLI release.
func (c *Controller) GetLatestVersion(ctx context.Context) (string, error) {
	return c.releases.GetLatestRelease(ctx, constants.ReleaseRepoOwner, constants.ReleaseRepoName)
}

// IsOutdated compares the running version with latest, ignoring a leading v.
// Builds from source never count as outdated.
func IsOutdated(current string, latest string) bool {
	if current == "source" || latest == "" {
		return false
	}
	return strings.TrimPrefix(current, "v") != strings.TrimPrefix(latest, "v")
}
