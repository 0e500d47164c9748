package entity

import "strings"

// ProjectKey joins an org and a project slug into the qualified key.
func ProjectKey(org, slug string) string {
	return org + "/" + slug
}

// SplitProjectKey is the inverse of ProjectKey. A key without an org yields
// an empty org.
func SplitProjectKey(key string) (org string, slug string) {
	i := strings.LastIndex(key, "/")
	if i < 0 {
		return "", key
	}
	return key[:i], key[i+1:]
}
