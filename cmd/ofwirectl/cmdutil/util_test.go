package cmdutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofkit/ofwire/pkg/openflow/types"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"Plain", "04000008", []byte{0x04, 0x00, 0x00, 0x08}},
		{"Spaced", "04 00 00 08", []byte{0x04, 0x00, 0x00, 0x08}},
		{"Prefixed", "0x04000008", []byte{0x04, 0x00, 0x00, 0x08}},
		{"Multiline", "04 00\n00 08", []byte{0x04, 0x00, 0x00, 0x08}},
		{"Colons", "04:00:00:08", []byte{0x04, 0x00, 0x00, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseHex("zz")
	assert.Error(t, err)

	_, err = ParseHex("040")
	assert.Error(t, err, "odd number of digits")
}

func TestFormatHexWraps(t *testing.T) {
	data := make([]byte, 20)
	out := FormatHex(data)
	assert.Contains(t, out, "\n", "should wrap after 16 bytes")
	assert.Equal(t, "00 01", FormatHex([]byte{0, 1}))
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want types.Version
	}{
		{"1.0", types.V1_0},
		{"1.3", types.V1_3},
		{"4", types.V1_3},
		{"0x04", types.V1_3},
		{" 1.5 ", types.V1_5},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}

	for _, bad := range []string{"2.0", "0", "7", "banana"} {
		_, err := ParseVersion(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
