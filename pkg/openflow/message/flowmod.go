package message

import (
	"github.com/ofkit/ofwire/pkg/openflow/types"
	"github.com/ofkit/ofwire/pkg/openflow/wire"
)

// The flow-mod command moved and shrank between protocol revisions: in 1.0
// it is a 16-bit field at offset 56, from 1.1 on an 8-bit field at offset
// 25. Callers supply the version explicitly, typically after reading it
// with Message.Version.

// FlowModCommandLayout returns the wire offset and width in bytes of the
// flow-mod command field for the given version.
func FlowModCommandLayout(v types.Version) (offset, width int) {
	if v == types.V1_0 {
		return 56, 2
	}
	return 25, 1
}

// MinFlowModLength returns the protocol's minimum message length constant
// for reaching the flow-mod command field: 57 for 1.0, 26 from 1.1 on.
// Note the 1.0 field spans bytes 56 and 57, so a buffer at exactly the
// 57-byte minimum holds only its first byte; this never binds in practice
// because a complete 1.0 flow-mod is at least 72 bytes.
func MinFlowModLength(v types.Version) int {
	if v == types.V1_0 {
		return 57
	}
	return 26
}

// FlowModCommand returns the command code of a FLOW_MOD message.
//
// On the 1.0 path the 16-bit field is narrowed to 8 bits. The protocol
// never assigns command values above 0xff, so the discarded high byte is
// zero on any conforming message; a malformed one loses it silently. This
// matches what peers put on the wire and is deliberate.
func (m Message) FlowModCommand(v types.Version) types.FlowModCommand {
	offset, width := FlowModCommandLayout(v)
	if width == 2 {
		return types.FlowModCommand(wire.U16(m, offset))
	}
	return types.FlowModCommand(wire.U8(m, offset))
}

// SetFlowModCommand writes the command code of a FLOW_MOD message. On the
// 1.0 path the value is widened into the low byte of the 16-bit field, high
// byte zero.
func (m Message) SetFlowModCommand(v types.Version, cmd types.FlowModCommand) {
	offset, width := FlowModCommandLayout(v)
	if width == 2 {
		wire.PutU16(m, offset, uint16(cmd))
		return
	}
	wire.PutU8(m, offset, uint8(cmd))
}
