package gateway

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	cerrors "github.com/subquery/cli/errors"
)

func TestParseRepository(t *testing.T) {
	var repoTests = []struct {
		in  string
		out string
	}{
		{in: "https://github.com/subquery/subql-starter", out: "subquery/subql-starter"},
		{in: "https://github.com/subquery/subql-starter.git", out: "subquery/subql-starter"},
		{in: "https://github.com/subquery/subql-starter.git?ref=main", out: "subquery/subql-starter"},
		{in: "https://github.com/subquery/subql-starter/", out: "subquery/subql-starter"},
		{in: "git@github.com:subquery/subql-starter.git", out: "subquery/subql-starter"},
	}
	for _, tt := range repoTests {
		t.Run(tt.in, func(t *testing.T) {
			repo, err := ParseRepository(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.out, repo)
		})
	}
}

func TestParseRepositoryTooShort(t *testing.T) {
	for _, in := range []string{"", "subql-starter", "subql-starter.git?x=1", "/subql-starter"} {
		_, err := ParseRepository(in)

		var customErr *cerrors.CustomError
		require.True(t, errors.As(err, &customErr), in)
	}
}
