// Package message provides low-level field access into OpenFlow message
// buffers.
//
// Every OpenFlow message starts with a fixed 8-byte header:
//
//	Offset  Size  Field
//	  0      1    version
//	  1      1    type
//	  2      2    length (total message length, network order)
//	  4      4    xid (transaction id)
//
// Some message bodies begin with fields the parsing layer needs before it
// has built a typed object, and those are exposed here too:
//
//	Offset  Size  Field                  Valid when
//	  8      2    stats/multipart type   type is a stats or multipart message
//	  8      4    experimenter id        type is experimenter/vendor
//	 12      4    experimenter subtype   type is experimenter/vendor
//
// The stats type and experimenter id overlap at offset 8; which reading
// applies depends on the type field, and deciding that is the caller's job.
//
// These accessors perform no bounds or type checking. They are used during
// parsing and construction, once per message on the wire, and the caller
// contract is that the buffer already has the minimum length for the field
// being touched (the Min* constants). ParseHeader in this package is the
// checked entry point for code that does not want to carry that contract.
package message

import (
	"github.com/ofkit/ofwire/pkg/openflow/types"
	"github.com/ofkit/ofwire/pkg/openflow/wire"
)

// Header field offsets.
const (
	VersionOffset             = 0
	TypeOffset                = 1
	LengthOffset              = 2
	XidOffset                 = 4
	StatsTypeOffset           = 8
	ExperimenterIDOffset      = 8
	ExperimenterSubtypeOffset = 12
)

// HeaderLength is the size of the fixed header common to all versions.
const HeaderLength = 8

// Minimum buffer lengths required to access each field group.
const (
	MinLength             = HeaderLength
	MinStatsLength        = StatsTypeOffset + 2
	MinExperimenterLength = ExperimenterSubtypeOffset + 4
)

// Message is a raw OpenFlow message buffer. The buffer is owned by the
// caller; Message never allocates, frees or resizes it.
type Message []byte

// Version returns the protocol version tag.
func (m Message) Version() types.Version {
	return types.Version(wire.U8(m, VersionOffset))
}

// SetVersion writes the protocol version tag.
func (m Message) SetVersion(v types.Version) {
	wire.PutU8(m, VersionOffset, uint8(v))
}

// Type returns the message type code.
func (m Message) Type() types.MsgType {
	return types.MsgType(wire.U8(m, TypeOffset))
}

// SetType writes the message type code.
func (m Message) SetType(t types.MsgType) {
	wire.PutU8(m, TypeOffset, uint8(t))
}

// Length returns the total message length recorded in the header.
func (m Message) Length() uint16 {
	return wire.U16(m, LengthOffset)
}

// SetLength writes the total message length.
func (m Message) SetLength(length uint16) {
	wire.PutU16(m, LengthOffset, length)
}

// Xid returns the transaction id correlating a request with its response.
func (m Message) Xid() uint32 {
	return wire.U32(m, XidOffset)
}

// SetXid writes the transaction id.
func (m Message) SetXid(xid uint32) {
	wire.PutU32(m, XidOffset, xid)
}

// StatsType returns the stats/multipart sub-type. Meaningful only when the
// type field says this is a stats or multipart message; buffer must be at
// least MinStatsLength.
func (m Message) StatsType() uint16 {
	return wire.U16(m, StatsTypeOffset)
}

// SetStatsType writes the stats/multipart sub-type.
func (m Message) SetStatsType(t uint16) {
	wire.PutU16(m, StatsTypeOffset, t)
}

// ExperimenterID returns the experimenter (vendor) id. Meaningful only for
// experimenter messages; buffer must be at least MinExperimenterLength.
func (m Message) ExperimenterID() uint32 {
	return wire.U32(m, ExperimenterIDOffset)
}

// SetExperimenterID writes the experimenter id.
func (m Message) SetExperimenterID(id uint32) {
	wire.PutU32(m, ExperimenterIDOffset, id)
}

// ExperimenterSubtype returns the vendor-defined message subtype.
func (m Message) ExperimenterSubtype() uint32 {
	return wire.U32(m, ExperimenterSubtypeOffset)
}

// SetExperimenterSubtype writes the vendor-defined message subtype.
func (m Message) SetExperimenterSubtype(subtype uint32) {
	wire.PutU32(m, ExperimenterSubtypeOffset, subtype)
}
