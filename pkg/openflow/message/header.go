package message

import (
	"errors"

	"github.com/ofkit/ofwire/pkg/openflow/types"
)

// ErrTooShort indicates the buffer cannot hold a full OpenFlow header.
var ErrTooShort = errors.New("buffer too short for OpenFlow header")

// Header is a decoded snapshot of the fixed 8-byte header. It exists for
// tooling and tests that want a checked, value-typed view; the parsing hot
// path uses the Message accessors directly.
type Header struct {
	Version types.Version
	Type    types.MsgType
	Length  uint16
	Xid     uint32
}

// ParseHeader extracts the fixed header from wire format. Unlike the
// Message accessors it validates the buffer length.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderLength {
		return nil, ErrTooShort
	}
	m := Message(data)
	return &Header{
		Version: m.Version(),
		Type:    m.Type(),
		Length:  m.Length(),
		Xid:     m.Xid(),
	}, nil
}

// Encode serializes the header to an 8-byte wire image.
func (h *Header) Encode() []byte {
	buf := make(Message, HeaderLength)
	buf.SetVersion(h.Version)
	buf.SetType(h.Type)
	buf.SetLength(h.Length)
	buf.SetXid(h.Xid)
	return buf
}
