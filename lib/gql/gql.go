package gql

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
)

// AsGQL builds a selection set from a flat struct of booleans: every field
// set to true is selected, using its json name.
func AsGQL(ctx context.Context, req interface{}) (*string, error) {
	mp := make(map[string]bool)
	bytes, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(bytes, &mp)
	if err != nil {
		return nil, err
	}
	fields := []string{}
	for k, v := range mp {
		if v {
			fields = append(fields, k)
		}
	}
	sort.Strings(fields)
	q := strings.Join(fields, "\n")
	return &q, nil
}
