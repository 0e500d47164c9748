package gql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/subquery/cli/entity"
)

func TestAsGQL(t *testing.T) {
	q, err := AsGQL(context.Background(), entity.MetadataGQL{
		TargetHeight:        true,
		LastProcessedHeight: true,
		Chain:               false,
	})
	require.NoError(t, err)
	require.Equal(t, "lastProcessedHeight\ntargetHeight", *q)
}

func TestAsGQLRejectsNestedFields(t *testing.T) {
	_, err := AsGQL(context.Background(), struct {
		Nested struct{} `json:"nested"`
	}{})
	require.Error(t, err)
}
