package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/spf13/cobra"

	"github.com/ofkit/ofwire/cmd/ofwirectl/cmdutil"
	"github.com/ofkit/ofwire/internal/logger"
	"github.com/ofkit/ofwire/pkg/openflow/message"
	"github.com/ofkit/ofwire/pkg/openflow/types"
)

var pcapPort uint16

var pcapCmd = &cobra.Command{
	Use:   "pcap <file>",
	Short: "Scan a pcap capture for OpenFlow headers",
	Long: `Scan a packet capture and decode the header of every OpenFlow
message found in TCP payloads on the controller ports (6633 and 6653 by
default, or --port).

Examples:
  # Dump all OpenFlow traffic in a capture
  ofwirectl pcap switch.pcap

  # Controller on a non-standard port, JSON output
  ofwirectl pcap switch.pcap --port 16633 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runPcap,
}

func init() {
	pcapCmd.Flags().Uint16Var(&pcapPort, "port", 0, "Controller TCP port (default: 6633 and 6653)")
}

// pcapEntry is one decoded message within the capture.
type pcapEntry struct {
	Packet int        `json:"packet" yaml:"packet"`
	Header headerView `json:"header" yaml:"header"`
}

type pcapEntryList []pcapEntry

// Headers implements output.TableRenderer.
func (pcapEntryList) Headers() []string {
	return []string{"PACKET", "VERSION", "TYPE", "LENGTH", "XID", "DETAIL"}
}

// Rows implements output.TableRenderer.
func (l pcapEntryList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, e := range l {
		detail := ""
		switch {
		case e.Header.FlowModCommand != "":
			detail = "command=" + e.Header.FlowModCommand
		case e.Header.StatsType != "":
			detail = "stats_type=" + e.Header.StatsType
		case e.Header.ExperimenterID != "":
			detail = "experimenter=" + e.Header.ExperimenterID
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Packet),
			e.Header.Version,
			e.Header.Type,
			fmt.Sprintf("%d", e.Header.Length),
			e.Header.Xid,
			detail,
		})
	}
	return rows
}

func runPcap(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open capture: %w", err)
	}
	defer f.Close()

	r, err := pcapgo.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to read pcap: %w", err)
	}

	var entries pcapEntryList
	packetNum := 0
	for {
		data, _, err := r.ReadPacketData()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read packet %d: %w", packetNum+1, err)
		}
		packetNum++

		pkt := gopacket.NewPacket(data, r.LinkType(), gopacket.Default)
		tcpLayer := pkt.Layer(layers.LayerTypeTCP)
		if tcpLayer == nil {
			continue
		}
		tcp := tcpLayer.(*layers.TCP)
		if !controlPort(uint16(tcp.SrcPort)) && !controlPort(uint16(tcp.DstPort)) {
			continue
		}
		if len(tcp.Payload) == 0 {
			continue
		}

		entries = append(entries, scanPayload(packetNum, tcp.Payload)...)
	}

	logger.Debug("capture scanned", "packets", packetNum, "messages", len(entries))
	if len(entries) == 0 {
		return fmt.Errorf("no OpenFlow messages found in %d packets", packetNum)
	}
	return cmdutil.PrintResource(os.Stdout, entries, entries)
}

// controlPort reports whether p is one of the controller ports we scan.
func controlPort(p uint16) bool {
	if pcapPort != 0 {
		return p == pcapPort
	}
	return p == types.PortHistorical || p == types.PortIANA
}

// scanPayload walks the messages packed back to back in one TCP payload.
// TCP segmentation can split a message across packets; the trailing
// fragment is skipped here, not reassembled.
func scanPayload(packetNum int, payload []byte) pcapEntryList {
	var entries pcapEntryList
	for len(payload) >= message.MinLength {
		hdr, err := message.ParseHeader(payload)
		if err != nil {
			break
		}
		if !hdr.Version.Known() || int(hdr.Length) < message.MinLength {
			logger.Debug("skipping non-OpenFlow payload",
				"packet", packetNum,
				"version", uint8(hdr.Version),
				"length", hdr.Length)
			break
		}

		end := int(hdr.Length)
		if end > len(payload) {
			logger.Debug("message truncated by segmentation",
				"packet", packetNum,
				"header_length", hdr.Length,
				"available", len(payload))
			end = len(payload)
		}

		entries = append(entries, pcapEntry{
			Packet: packetNum,
			Header: newHeaderView(message.Message(payload[:end])),
		})
		if int(hdr.Length) > len(payload) {
			break
		}
		payload = payload[hdr.Length:]
	}
	return entries
}
