package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/subquery/cli/entity"
)

// GetUser exchanges a browser session id for the user and its access token.
// This is the only call made without a bearer token.
func (g *Gateway) GetUser(ctx context.Context, sid string) (*entity.User, error) {
	header := http.Header{}
	header.Set("Cookie", fmt.Sprintf("connect.sid=%s", sid))

	var user entity.User
	err := g.do(ctx, &apiRequest{
		method:   http.MethodGet,
		endpoint: "/user",
		header:   header,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
