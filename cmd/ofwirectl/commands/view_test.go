package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofkit/ofwire/pkg/openflow/message"
	"github.com/ofkit/ofwire/pkg/openflow/types"
)

func TestHeaderViewBareHeader(t *testing.T) {
	buf := make(message.Message, message.HeaderLength)
	buf.SetVersion(types.V1_3)
	buf.SetType(types.TypeEchoRequest)
	buf.SetLength(8)
	buf.SetXid(7)

	view := newHeaderView(buf)
	assert.Equal(t, "1.3", view.Version)
	assert.Equal(t, "ECHO_REQUEST", view.Type)
	assert.Equal(t, uint16(8), view.Length)
	assert.Equal(t, "0x00000007", view.Xid)
	assert.Empty(t, view.StatsType)
	assert.Empty(t, view.FlowModCommand)
}

func TestHeaderViewMultipart(t *testing.T) {
	buf := make(message.Message, message.MinStatsLength)
	buf.SetVersion(types.V1_3)
	buf.SetType(types.TypeMultipartRequest)
	buf.SetStatsType(4)

	view := newHeaderView(buf)
	assert.Equal(t, "MULTIPART_REQUEST", view.Type)
	assert.Equal(t, "4", view.StatsType)
	assert.Empty(t, view.ExperimenterID, "stats message must not expose the overlaid experimenter reading")
}

func TestHeaderViewExperimenter(t *testing.T) {
	buf := make(message.Message, message.MinExperimenterLength)
	buf.SetVersion(types.V1_0)
	buf.SetType(types.TypeVendorV10)
	buf.SetExperimenterID(0x00002320)
	buf.SetExperimenterSubtype(12)

	view := newHeaderView(buf)
	assert.Equal(t, "VENDOR", view.Type)
	assert.Equal(t, "0x00002320", view.ExperimenterID)
	assert.Equal(t, "12", view.ExperimenterSubtype)
	assert.Empty(t, view.StatsType)
}

func TestHeaderViewFlowModPerVersion(t *testing.T) {
	t.Run("V1_0", func(t *testing.T) {
		buf := make(message.Message, 58)
		buf.SetVersion(types.V1_0)
		buf.SetType(types.TypeFlowMod)
		buf.SetFlowModCommand(types.V1_0, types.FlowDelete)

		view := newHeaderView(buf)
		assert.Equal(t, "DELETE", view.FlowModCommand)
	})

	t.Run("V1_3", func(t *testing.T) {
		buf := make(message.Message, 26)
		buf.SetVersion(types.V1_3)
		buf.SetType(types.TypeFlowMod)
		buf.SetFlowModCommand(types.V1_3, types.FlowAdd)

		view := newHeaderView(buf)
		assert.Equal(t, "ADD", view.FlowModCommand)
	})

	t.Run("TooShortForCommand", func(t *testing.T) {
		// A flow-mod truncated before the command field renders without it.
		buf := make(message.Message, message.HeaderLength)
		buf.SetVersion(types.V1_3)
		buf.SetType(types.TypeFlowMod)

		view := newHeaderView(buf)
		assert.Empty(t, view.FlowModCommand)
	})
}

func TestScanPayloadBackToBack(t *testing.T) {
	hello := (&message.Header{Version: types.V1_3, Type: types.TypeHello, Length: 8, Xid: 1}).Encode()
	echo := (&message.Header{Version: types.V1_3, Type: types.TypeEchoRequest, Length: 8, Xid: 2}).Encode()

	entries := scanPayload(1, append(hello, echo...))
	require.Len(t, entries, 2)
	assert.Equal(t, "HELLO", entries[0].Header.Type)
	assert.Equal(t, "ECHO_REQUEST", entries[1].Header.Type)
}

func TestScanPayloadStopsOnGarbage(t *testing.T) {
	garbage := []byte{0x47, 0x45, 0x54, 0x20, 0x2f, 0x20, 0x48, 0x54, 0x54, 0x50}
	assert.Empty(t, scanPayload(1, garbage), "HTTP bytes are not OpenFlow")

	short := []byte{0x04, 0x00}
	assert.Empty(t, scanPayload(2, short))
}

func TestScanPayloadTruncatedMessage(t *testing.T) {
	// Header claims 64 bytes but only 20 made it into this segment.
	flowMod := make(message.Message, 20)
	flowMod.SetVersion(types.V1_3)
	flowMod.SetType(types.TypeFlowMod)
	flowMod.SetLength(64)
	flowMod.SetXid(9)

	entries := scanPayload(3, flowMod)
	require.Len(t, entries, 1)
	assert.Equal(t, "FLOW_MOD", entries[0].Header.Type)
	// Truncated before offset 25, so no command is reported.
	assert.Empty(t, entries[0].Header.FlowModCommand)
}
