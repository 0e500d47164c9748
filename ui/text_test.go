package ui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/subquery/cli/ui"
)

var keyValuesTest = []struct {
	name string
	in   map[string]string
	out  string
}{
	{
		name: "Nil map should print nothing",
		in:   nil,
		out:  "",
	},
	{
		name: "Empty map should print nothing",
		in:   map[string]string{},
		out:  "",
	},
	{
		name: "Output should always be alphabetical",
		in: map[string]string{
			"zzz": "ZZZ",
			"BBB": "bbb",
			"AAA": "aaa",
			"aaa": "AAA",
		},
		out: multiline(
			"AAA: aaa",
			"BBB: bbb",
			"aaa: AAA",
			"zzz: ZZZ",
		),
	},
	{
		name: "Varying lengths should align values",
		in: map[string]string{
			"A":   "aaa",
			"BB":  "bbbbbbbb",
			"CCC": "b",
		},
		out: multiline(
			"A:   aaa",
			"BB:  bbbbbbbb",
			"CCC: b",
		),
	},
	{
		name: "Super long keys should only pad others so much",
		in: map[string]string{
			"A": "aaa",
			"BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB": "bbbbbbbb",
			"CCC": "b",
		},
		out: multiline(
			"A:                                                  aaa",
			"BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB: bbbbbbbb",
			"CCC:                                                b",
		),
	},
}

var orderedKeyValuesTest = []struct {
	name string
	keys []string
	in   map[string]string
	out  string
}{
	{
		name: "Keys keep the given order",
		keys: []string{"Id", "Type", "Status"},
		in: map[string]string{
			"Status": "running",
			"Type":   "primary",
			"Id":     "2",
		},
		out: multiline(
			"Id:     2",
			"Type:   primary",
			"Status: running",
		),
	},
	{
		name: "Missing values print empty",
		keys: []string{"Endpoint", "Sub folder"},
		in:   map[string]string{"Endpoint": "wss://example"},
		out: multiline(
			"Endpoint:   wss://example",
			"Sub folder: ",
		),
	},
}

var truncateTest = []struct {
	name  string
	inStr string
	inLen int
	out   string
}{
	{
		name:  "Negative numbers work",
		inStr: "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		inLen: -10,
		out:   "0...Z",
	},
	{
		name:  "Small length works",
		inStr: "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		inLen: 1,
		out:   "0...Z",
	},
	{
		name:  "Odd length works",
		inStr: "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		inLen: 10,
		out:   "0123...XYZ",
	},
	{
		name:  "Even length works",
		inStr: "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		inLen: 11,
		out:   "0123...WXYZ",
	},
	{
		name:  "Commit hashes keep both ends",
		inStr: "6f1ed002ab5595859014ebf0951522d9",
		inLen: 12,
		out:   "6f1ed...22d9",
	},
	{
		name:  "Full length works",
		inStr: "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		inLen: 100,
		out:   "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	},
}

var prefixTest = []struct {
	name     string
	inStr    string
	inPrefix string
	out      string
}{
	{
		name:     "Should prefix lines",
		inStr:    "Line 1\nLine 2\nLine 3",
		inPrefix: "> ",
		out: multiline(
			"> Line 1",
			"> Line 2",
			"> Line 3",
		),
	},
}

func TestKeyValues(t *testing.T) {
	for _, tt := range keyValuesTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, ui.KeyValues(tt.in))
		})
	}
}

func TestOrderedKeyValues(t *testing.T) {
	for _, tt := range orderedKeyValuesTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, ui.OrderedKeyValues(tt.keys, tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	for _, tt := range truncateTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, ui.Truncate(tt.inStr, tt.inLen))
		})
	}
}

func TestPrefixLines(t *testing.T) {
	for _, tt := range prefixTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, ui.PrefixLines(tt.inStr, tt.inPrefix))
		})
	}
}

// multiline provides a human-readable way to create a multiline block of text
func multiline(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
