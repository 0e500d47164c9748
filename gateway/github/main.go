package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/github"
)

// Gateway reads CLI release information from GitHub.
type Gateway struct {
	client *github.Client
}

func New(httpClient *http.Client) *Gateway {
	return &Gateway{
		client: github.NewClient(httpClient),
	}
}

// GetLatestRelease returns the tag of the newest published release.
func (g *Gateway) GetLatestRelease(ctx context.Context, owner string, repo string) (string, error) {
	release, _, err := g.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return "", err
	}
	return release.GetTagName(), nil
}
