package controller

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/browser"
	"github.com/subquery/cli/constants"
	"github.com/subquery/cli/errors"
)

// DocsLinks lists the shortcuts accepted by OpenShortcut with their urls,
// sorted by shortcut.
func DocsLinks(key string) [][2]string {
	names := make([]string, 0, len(constants.DocsURLMap))
	for name := range constants.DocsURLMap {
		names = append(names, name)
	}
	sort.Strings(names)

	links := make([][2]string, 0, len(names))
	for _, name := range names {
		links = append(links, [2]string{name, shortcutURL(name, key)})
	}
	return links
}

// OpenShortcut opens the url registered under name. Shortcuts that point at
// a project need key.
func (c *Controller) OpenShortcut(name string, key string) (string, error) {
	if _, ok := constants.DocsURLMap[name]; !ok {
		return "", errors.Custom("Unknown shortcut %q", name)
	}
	url := shortcutURL(name, key)
	if strings.Contains(constants.DocsURLMap[name], "%s") && key == "" {
		return "", errors.Custom("The %s shortcut needs a project, pass --org and --key", name)
	}
	return url, browser.OpenURL(url)
}

func shortcutURL(name string, key string) string {
	url := constants.DocsURLMap[name]
	if strings.Contains(url, "%s") {
		if key == "" {
			key = "<org>/<key>"
		}
		url = fmt.Sprintf(url, key)
	}
	return url
}
