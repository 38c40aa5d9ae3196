package types

import "fmt"

// Message type numbering is stable from 1.1 on but differs in 1.0 above
// code 13 (and code 4 is named VENDOR there). The helpers below do the
// version gating the raw accessors deliberately leave to the caller.

// IsStats reports whether t carries a stats/multipart sub-type under
// version v.
func IsStats(v Version, t MsgType) bool {
	if v == V1_0 {
		return t == TypeStatsRequestV10 || t == TypeStatsReplyV10
	}
	return t == TypeMultipartRequest || t == TypeMultipartReply
}

// IsExperimenter reports whether t is an experimenter (vendor) message.
// The code is 4 in every version.
func IsExperimenter(t MsgType) bool {
	return t == TypeExperimenter
}

// IsFlowMod reports whether t is a flow modification message. The code is
// 14 in every version.
func IsFlowMod(t MsgType) bool {
	return t == TypeFlowMod
}

// Name returns the type name under the numbering of version v.
func (t MsgType) Name(v Version) string {
	if v != V1_0 {
		return t.String()
	}
	switch t {
	case TypeVendorV10:
		return "VENDOR"
	case 15:
		return "PORT_MOD"
	case TypeStatsRequestV10:
		return "STATS_REQUEST"
	case TypeStatsReplyV10:
		return "STATS_REPLY"
	case 18:
		return "BARRIER_REQUEST"
	case 19:
		return "BARRIER_REPLY"
	case 20:
		return "QUEUE_GET_CONFIG_REQUEST"
	case 21:
		return "QUEUE_GET_CONFIG_REPLY"
	}
	if t <= TypeFlowMod {
		return t.String()
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}
