package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/subquery/cli/entity"
)

func (g *Gateway) SearchLogs(ctx context.Context, key string, req *entity.LogsRequest) ([]*entity.LogEntry, error) {
	query := url.Values{}
	query.Set("stage", strconv.FormatBool(req.Stage))
	query.Set("level", req.Level)
	query.Set("keyword", req.Keyword)

	var resp entity.LogsResponse
	err := g.do(ctx, &apiRequest{
		method:   http.MethodGet,
		endpoint: projectEndpoint(key) + "/logs",
		query:    query,
		auth:     true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Result, nil
}
