package types

import "testing"

func TestIsStats(t *testing.T) {
	tests := []struct {
		version Version
		typ     MsgType
		want    bool
	}{
		{V1_0, TypeStatsRequestV10, true},
		{V1_0, TypeStatsReplyV10, true},
		{V1_0, TypeMultipartRequest, false}, // code 18 is BARRIER_REQUEST in 1.0
		{V1_0, TypeFlowMod, false},
		{V1_3, TypeMultipartRequest, true},
		{V1_3, TypeMultipartReply, true},
		{V1_3, MsgType(16), false}, // PORT_MOD in 1.3 numbering
		{V1_5, TypeMultipartRequest, true},
	}
	for _, tt := range tests {
		if got := IsStats(tt.version, tt.typ); got != tt.want {
			t.Errorf("IsStats(%v, %d) = %v, want %v", tt.version, uint8(tt.typ), got, tt.want)
		}
	}
}

func TestNamePerVersion(t *testing.T) {
	tests := []struct {
		version Version
		typ     MsgType
		want    string
	}{
		{V1_0, TypeVendorV10, "VENDOR"},
		{V1_3, TypeExperimenter, "EXPERIMENTER"},
		{V1_0, MsgType(16), "STATS_REQUEST"},
		{V1_3, MsgType(16), "PORT_MOD"},
		{V1_0, MsgType(18), "BARRIER_REQUEST"},
		{V1_3, MsgType(18), "MULTIPART_REQUEST"},
		{V1_0, TypeHello, "HELLO"},
		{V1_0, MsgType(22), "unknown(22)"},
	}
	for _, tt := range tests {
		if got := tt.typ.Name(tt.version); got != tt.want {
			t.Errorf("Name(%v, %d) = %q, want %q", tt.version, uint8(tt.typ), got, tt.want)
		}
	}
}
