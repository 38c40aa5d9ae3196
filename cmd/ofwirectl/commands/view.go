package commands

import (
	"fmt"

	"github.com/ofkit/ofwire/pkg/openflow/message"
	"github.com/ofkit/ofwire/pkg/openflow/types"
)

// headerView is the rendered form of a decoded message header. Optional
// fields are filled only when the message type says they apply and the
// buffer is long enough to hold them.
type headerView struct {
	Version             string `json:"version" yaml:"version"`
	Type                string `json:"type" yaml:"type"`
	Length              uint16 `json:"length" yaml:"length"`
	Xid                 string `json:"xid" yaml:"xid"`
	StatsType           string `json:"stats_type,omitempty" yaml:"stats_type,omitempty"`
	ExperimenterID      string `json:"experimenter_id,omitempty" yaml:"experimenter_id,omitempty"`
	ExperimenterSubtype string `json:"experimenter_subtype,omitempty" yaml:"experimenter_subtype,omitempty"`
	FlowModCommand      string `json:"flow_mod_command,omitempty" yaml:"flow_mod_command,omitempty"`
}

// newHeaderView reads the header fields out of buf, gating the overlaid
// body fields on the message type before touching them.
func newHeaderView(buf message.Message) headerView {
	version := buf.Version()
	msgType := buf.Type()

	view := headerView{
		Version: version.String(),
		Type:    msgType.Name(version),
		Length:  buf.Length(),
		Xid:     fmt.Sprintf("0x%08x", buf.Xid()),
	}

	switch {
	case types.IsStats(version, msgType) && len(buf) >= message.MinStatsLength:
		view.StatsType = fmt.Sprintf("%d", buf.StatsType())
	case types.IsExperimenter(msgType) && len(buf) >= message.MinExperimenterLength:
		view.ExperimenterID = fmt.Sprintf("0x%08x", buf.ExperimenterID())
		view.ExperimenterSubtype = fmt.Sprintf("%d", buf.ExperimenterSubtype())
	case types.IsFlowMod(msgType) && flowModReadable(version, len(buf)):
		view.FlowModCommand = buf.FlowModCommand(version).String()
	}

	return view
}

// flowModReadable reports whether a buffer of n bytes fully contains the
// flow-mod command field under version v.
func flowModReadable(v types.Version, n int) bool {
	offset, width := message.FlowModCommandLayout(v)
	return n >= offset+width
}

// Headers implements output.TableRenderer.
func (v headerView) Headers() []string {
	return []string{"FIELD", "VALUE"}
}

// Rows implements output.TableRenderer.
func (v headerView) Rows() [][]string {
	rows := [][]string{
		{"Version", v.Version},
		{"Type", v.Type},
		{"Length", fmt.Sprintf("%d", v.Length)},
		{"Xid", v.Xid},
	}
	if v.StatsType != "" {
		rows = append(rows, []string{"Stats Type", v.StatsType})
	}
	if v.ExperimenterID != "" {
		rows = append(rows, []string{"Experimenter ID", v.ExperimenterID})
		rows = append(rows, []string{"Experimenter Subtype", v.ExperimenterSubtype})
	}
	if v.FlowModCommand != "" {
		rows = append(rows, []string{"Flow-Mod Command", v.FlowModCommand})
	}
	return rows
}
