// Package cmdutil provides shared utilities for ofwirectl commands.
package cmdutil

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ofkit/ofwire/internal/cli/output"
	"github.com/ofkit/ofwire/pkg/openflow/types"
)

// Flags stores global flag values accessible by subcommands.
var Flags = &GlobalFlags{}

// GlobalFlags holds the global flag values.
type GlobalFlags struct {
	Output  string
	Verbose bool
}

// PrintResource writes data to w using the format selected with -o. For
// table output the renderer is used; JSON and YAML marshal data directly.
func PrintResource(w io.Writer, data any, renderer output.TableRenderer) error {
	format, err := output.ParseFormat(Flags.Output)
	if err != nil {
		return err
	}
	if format == output.FormatTable {
		return output.PrintTable(w, renderer)
	}
	return output.Print(w, format, data)
}

// ParseHex decodes a hex dump, tolerating whitespace, newlines, a leading
// 0x and the "xx xx xx" spacing produced by most packet dumpers.
func ParseHex(s string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':', ',':
			return -1
		}
		return r
	}, s)
	cleaned = strings.TrimPrefix(cleaned, "0x")

	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}

// FormatHex renders a buffer as space-separated hex bytes, 16 per line.
func FormatHex(data []byte) string {
	var b strings.Builder
	for i, c := range data {
		if i > 0 {
			if i%16 == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		fmt.Fprintf(&b, "%02x", c)
	}
	return b.String()
}

// ParseVersion accepts a dotted version ("1.0", "1.3") or the raw wire tag
// (1..6, decimal or 0x-prefixed).
func ParseVersion(s string) (types.Version, error) {
	switch strings.TrimSpace(s) {
	case "1.0":
		return types.V1_0, nil
	case "1.1":
		return types.V1_1, nil
	case "1.2":
		return types.V1_2, nil
	case "1.3":
		return types.V1_3, nil
	case "1.4":
		return types.V1_4, nil
	case "1.5":
		return types.V1_5, nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 8)
	if err != nil || !types.Version(n).Known() {
		return 0, fmt.Errorf("unknown OpenFlow version %q", s)
	}
	return types.Version(n), nil
}
