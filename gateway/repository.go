package gateway

import (
	"strings"

	cerrors "github.com/subquery/cli/errors"
)

// ParseRepository turns a repository url into org/repo. The query string
// and a trailing .git are ignored.
func ParseRepository(repoURL string) (string, error) {
	trimmed := repoURL
	if i := strings.Index(trimmed, "?"); i >= 0 {
		trimmed = trimmed[:i]
	}
	trimmed = strings.TrimSuffix(strings.TrimRight(trimmed, "/"), ".git")
	// scp-like remotes: git@github.com:org/repo
	trimmed = strings.ReplaceAll(trimmed, ":", "/")

	segments := strings.Split(trimmed, "/")
	if len(segments) < 2 || segments[len(segments)-2] == "" || segments[len(segments)-1] == "" {
		return "", cerrors.Custom("Can not parse git repository %q, expected a url ending in <org>/<repo>", repoURL)
	}
	return segments[len(segments)-2] + "/" + segments[len(segments)-1], nil
}
