package constants

import "fmt"

// Version is replaced at build time with -ldflags.
var Version = "source"

const (
	ReleaseRepoOwner = "fewensa"
	ReleaseRepoName  = "subquery-cli"

	explorerURL = "https://explorer.subquery.network"
	projectsURL = "https://project.subquery.network"
)

var DocsURLMap = map[string]string{
	"docs":     "https://doc.subquery.network",
	"help":     "https://doc.subquery.network/faqs/faqs",
	"login":    projectsURL,
	"projects": projectsURL + "/projects",
	"project":  explorerURL + "/subquery/%s",
}

// ProjectURL is the explorer page of a project key.
func ProjectURL(key string) string {
	return fmt.Sprintf(DocsURLMap["project"], key)
}
