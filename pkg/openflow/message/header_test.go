package message

import (
	"errors"
	"testing"

	"github.com/ofkit/ofwire/pkg/openflow/types"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    *Header
		wantErr error
	}{
		{
			name:    "Empty",
			data:    nil,
			wantErr: ErrTooShort,
		},
		{
			name:    "TooShort",
			data:    make([]byte, HeaderLength-1),
			wantErr: ErrTooShort,
		},
		{
			name: "HelloV13",
			data: []byte{0x04, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x2a},
			want: &Header{
				Version: types.V1_3,
				Type:    types.TypeHello,
				Length:  8,
				Xid:     42,
			},
		},
		{
			name: "FlowModV10WithTrailingBody",
			data: append([]byte{0x01, 0x0e, 0x00, 0x48, 0xde, 0xad, 0xbe, 0xef}, make([]byte, 64)...),
			want: &Header{
				Version: types.V1_0,
				Type:    types.TypeFlowMod,
				Length:  72,
				Xid:     0xdeadbeef,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHeader(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseHeader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.want == nil {
				if got != nil {
					t.Errorf("ParseHeader() = %v, want nil", got)
				}
				return
			}
			if *got != *tt.want {
				t.Errorf("ParseHeader() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHeaderEncodeRoundTrip(t *testing.T) {
	h := &Header{
		Version: types.V1_3,
		Type:    types.TypeMultipartRequest,
		Length:  16,
		Xid:     0x01020304,
	}

	encoded := h.Encode()
	if len(encoded) != HeaderLength {
		t.Fatalf("encoded length = %d, want %d", len(encoded), HeaderLength)
	}

	decoded, err := ParseHeader(encoded)
	if err != nil {
		t.Fatalf("failed to parse encoded header: %v", err)
	}
	if *decoded != *h {
		t.Errorf("round-trip = %+v, want %+v", decoded, h)
	}
}
