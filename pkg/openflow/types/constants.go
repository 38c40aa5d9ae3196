// Package types contains OpenFlow protocol constants shared by the wire
// accessors and tooling.
// Reference: OpenFlow Switch Specification 1.0.2 and 1.3.5 (ONF TS-006, TS-023)
package types

import "fmt"

// Version is the wire protocol version tag carried in the first header byte.
type Version uint8

// OpenFlow wire versions.
const (
	V1_0 Version = 0x01
	V1_1 Version = 0x02
	V1_2 Version = 0x03
	V1_3 Version = 0x04
	V1_4 Version = 0x05
	V1_5 Version = 0x06
)

// Known reports whether v is a published OpenFlow version.
func (v Version) Known() bool {
	return v >= V1_0 && v <= V1_5
}

func (v Version) String() string {
	switch v {
	case V1_0:
		return "1.0"
	case V1_1:
		return "1.1"
	case V1_2:
		return "1.2"
	case V1_3:
		return "1.3"
	case V1_4:
		return "1.4"
	case V1_5:
		return "1.5"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(v))
	}
}

// MsgType identifies the OpenFlow message carried after the common header.
type MsgType uint8

// Message type codes, OpenFlow 1.3+ numbering. OFPT_* in the spec.
const (
	TypeHello                 MsgType = 0
	TypeError                 MsgType = 1
	TypeEchoRequest           MsgType = 2
	TypeEchoReply             MsgType = 3
	TypeExperimenter          MsgType = 4
	TypeFeaturesRequest       MsgType = 5
	TypeFeaturesReply         MsgType = 6
	TypeGetConfigRequest      MsgType = 7
	TypeGetConfigReply        MsgType = 8
	TypeSetConfig             MsgType = 9
	TypePacketIn              MsgType = 10
	TypeFlowRemoved           MsgType = 11
	TypePortStatus            MsgType = 12
	TypePacketOut             MsgType = 13
	TypeFlowMod               MsgType = 14
	TypeGroupMod              MsgType = 15
	TypePortMod               MsgType = 16
	TypeTableMod              MsgType = 17
	TypeMultipartRequest      MsgType = 18
	TypeMultipartReply        MsgType = 19
	TypeBarrierRequest        MsgType = 20
	TypeBarrierReply          MsgType = 21
	TypeQueueGetConfigRequest MsgType = 22
	TypeQueueGetConfigReply   MsgType = 23
	TypeRoleRequest           MsgType = 24
	TypeRoleReply             MsgType = 25
	TypeGetAsyncRequest       MsgType = 26
	TypeGetAsyncReply         MsgType = 27
	TypeSetAsync              MsgType = 28
	TypeMeterMod              MsgType = 29
)

// OpenFlow 1.0 codes that moved or were renamed in later versions.
// OFPT_VENDOR became OFPT_EXPERIMENTER (same code); the stats pair became
// the multipart pair at different codes.
const (
	TypeVendorV10       MsgType = 4
	TypeStatsRequestV10 MsgType = 16
	TypeStatsReplyV10   MsgType = 17
)

func (t MsgType) String() string {
	switch t {
	case TypeHello:
		return "HELLO"
	case TypeError:
		return "ERROR"
	case TypeEchoRequest:
		return "ECHO_REQUEST"
	case TypeEchoReply:
		return "ECHO_REPLY"
	case TypeExperimenter:
		return "EXPERIMENTER"
	case TypeFeaturesRequest:
		return "FEATURES_REQUEST"
	case TypeFeaturesReply:
		return "FEATURES_REPLY"
	case TypeGetConfigRequest:
		return "GET_CONFIG_REQUEST"
	case TypeGetConfigReply:
		return "GET_CONFIG_REPLY"
	case TypeSetConfig:
		return "SET_CONFIG"
	case TypePacketIn:
		return "PACKET_IN"
	case TypeFlowRemoved:
		return "FLOW_REMOVED"
	case TypePortStatus:
		return "PORT_STATUS"
	case TypePacketOut:
		return "PACKET_OUT"
	case TypeFlowMod:
		return "FLOW_MOD"
	case TypeGroupMod:
		return "GROUP_MOD"
	case TypePortMod:
		return "PORT_MOD"
	case TypeTableMod:
		return "TABLE_MOD"
	case TypeMultipartRequest:
		return "MULTIPART_REQUEST"
	case TypeMultipartReply:
		return "MULTIPART_REPLY"
	case TypeBarrierRequest:
		return "BARRIER_REQUEST"
	case TypeBarrierReply:
		return "BARRIER_REPLY"
	case TypeQueueGetConfigRequest:
		return "QUEUE_GET_CONFIG_REQUEST"
	case TypeQueueGetConfigReply:
		return "QUEUE_GET_CONFIG_REPLY"
	case TypeRoleRequest:
		return "ROLE_REQUEST"
	case TypeRoleReply:
		return "ROLE_REPLY"
	case TypeGetAsyncRequest:
		return "GET_ASYNC_REQUEST"
	case TypeGetAsyncReply:
		return "GET_ASYNC_REPLY"
	case TypeSetAsync:
		return "SET_ASYNC"
	case TypeMeterMod:
		return "METER_MOD"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// FlowModCommand is the flow table operation code of a FLOW_MOD message.
// OFPFC_* in the spec.
type FlowModCommand uint8

const (
	FlowAdd          FlowModCommand = 0
	FlowModify       FlowModCommand = 1
	FlowModifyStrict FlowModCommand = 2
	FlowDelete       FlowModCommand = 3
	FlowDeleteStrict FlowModCommand = 4
)

func (c FlowModCommand) String() string {
	switch c {
	case FlowAdd:
		return "ADD"
	case FlowModify:
		return "MODIFY"
	case FlowModifyStrict:
		return "MODIFY_STRICT"
	case FlowDelete:
		return "DELETE"
	case FlowDeleteStrict:
		return "DELETE_STRICT"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// Well-known controller TCP ports. 6633 is the historical port, 6653 the
// IANA-assigned one.
const (
	PortHistorical uint16 = 6633
	PortIANA       uint16 = 6653
)
