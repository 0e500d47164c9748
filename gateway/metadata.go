package gateway

import (
	"context"
	"fmt"

	gql "github.com/machinebox/graphql"
	"github.com/pkg/errors"
	"github.com/subquery/cli/entity"
	cerrors "github.com/subquery/cli/errors"
	gqlgen "github.com/subquery/cli/lib/gql"
	"go.uber.org/zap"
)

// GetMetadata queries _metadata on a deployment's GraphQL query endpoint.
// The endpoint is public, so no credentials are attached.
func (g *Gateway) GetMetadata(ctx context.Context, queryURL string, fields entity.MetadataGQL) (*entity.Metadata, error) {
	selection, err := gqlgen.AsGQL(ctx, fields)
	if err != nil {
		return nil, err
	}
	gqlReq := gql.NewRequest(fmt.Sprintf(`
		query {
			_metadata {
				%s
			}
		}
	`, *selection))
	gqlReq.Header.Set("x-source", CLI_SOURCE_HEADER)

	client := gql.NewClient(queryURL, gql.WithHTTPClient(g.httpClient))
	client.Log = func(s string) { g.logger.Debug(s, zap.String("endpoint", queryURL)) }

	var resp struct {
		Metadata *entity.Metadata `json:"_metadata"`
	}
	if err := client.Run(ctx, gqlReq, &resp); err != nil {
		return nil, &cerrors.TransportError{Endpoint: queryURL, Err: errors.Wrap(err, "query metadata")}
	}
	if resp.Metadata == nil {
		return nil, cerrors.Custom("No metadata returned by %s", queryURL)
	}
	return resp.Metadata, nil
}

// AllMetadataFields selects every field of entity.Metadata.
var AllMetadataFields = entity.MetadataGQL{
	LastProcessedHeight: true,
	TargetHeight:        true,
	Chain:               true,
	SpecName:            true,
	GenesisHash:         true,
	IndexerHealthy:      true,
	IndexerNodeVersion:  true,
	QueryNodeVersion:    true,
}
