package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
)

const maxKeyPadding = 50

func Color(w io.Writer) aurora.Aurora {
	if f, ok := w.(*os.File); ok {
		return aurora.NewAurora(IsTerminal(f))
	}
	return aurora.NewAurora(false)
}

func Bold(text string) string {
	return Color(os.Stdout).Bold(text).String()
}

func RedText(text string) string {
	return Color(os.Stdout).Red(text).String()
}

func GreenText(text string) string {
	return Color(os.Stdout).Green(text).String()
}

func CyanText(text string) string {
	return Color(os.Stdout).Cyan(text).String()
}

func YellowText(text string) string {
	return Color(os.Stdout).Yellow(text).String()
}

func GrayText(text string) string {
	return Color(os.Stdout).BrightBlack(text).String()
}

// KeyValues renders a map as aligned "key: value" lines in key order.
func KeyValues(m map[string]string) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	width := 0
	for k := range m {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	if width > maxKeyPadding {
		width = maxKeyPadding
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%-*s %s\n", width+1, k+":", m[k])
	}
	return sb.String()
}

// OrderedKeyValues is KeyValues for callers that need a fixed row order.
func OrderedKeyValues(keys []string, m map[string]string) string {
	width := 0
	for _, k := range keys {
		if len(k) > width {
			width = len(k)
		}
	}
	if width > maxKeyPadding {
		width = maxKeyPadding
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%-*s %s\n", width+1, k+":", m[k])
	}
	return sb.String()
}

// Truncate shortens s to n characters by cutting out the middle.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	avail := n - 3
	if avail < 2 {
		avail = 2
	}
	head := (avail + 1) / 2
	tail := avail - head
	return s[:head] + "..." + s[len(s)-tail:]
}

func PrefixLines(text string, prefix string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		sb.WriteString(prefix + line + "\n")
	}
	return sb.String()
}
