package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ofkit/ofwire/cmd/ofwirectl/cmdutil"
	"github.com/ofkit/ofwire/internal/logger"
	"github.com/ofkit/ofwire/pkg/openflow/message"
)

var decodeFile string

var decodeCmd = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Decode an OpenFlow message header",
	Long: `Decode the header of an OpenFlow message from a hex dump.

The input is the raw message bytes as hex, with or without spacing. Reads
from --file or stdin when no argument is given.

Examples:
  # Decode a 1.3 HELLO
  ofwirectl decode 0400000800000001

  # Copy-pasted from wireshark
  ofwirectl decode "04 0e 00 50 de ad be ef ..."

  # From a file, as JSON
  ofwirectl decode --file capture.hex -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeFile, "file", "f", "", "Read hex input from file (- for stdin)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	var input string
	switch {
	case len(args) == 1:
		input = args[0]
	case decodeFile == "-" || decodeFile == "":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		input = string(data)
	default:
		data, err := os.ReadFile(decodeFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", decodeFile, err)
		}
		input = string(data)
	}

	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("no input: pass hex as an argument, via --file, or on stdin")
	}

	buf, err := cmdutil.ParseHex(input)
	if err != nil {
		return err
	}

	hdr, err := message.ParseHeader(buf)
	if err != nil {
		return fmt.Errorf("cannot decode %d byte buffer: %w", len(buf), err)
	}
	logger.Debug("decoded header",
		"version", hdr.Version.String(),
		"type", uint8(hdr.Type),
		"length", hdr.Length,
		"buffer_len", len(buf))

	if int(hdr.Length) != len(buf) {
		logger.Warn("header length disagrees with buffer size",
			"header_length", hdr.Length,
			"buffer_len", len(buf))
	}

	view := newHeaderView(message.Message(buf))
	return cmdutil.PrintResource(os.Stdout, view, view)
}
