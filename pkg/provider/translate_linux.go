//go:build linux

package provider

import (
	"math"
	"net"

	"github.com/jsimonetti/rtnetlink"
	"golang.org/x/sys/unix"

	"github.com/steved/routetable/pkg/route"
)

// Routing daemon protocol numbers from rtnetlink.h.
const (
	rtprotBGP  = 186
	rtprotISIS = 187
	rtprotOSPF = 188
	rtprotRIP  = 189
)

var kernelProtocols = map[uint8]uint32{
	unix.RTPROT_KERNEL:   route.ProtocolCodeLocal,
	unix.RTPROT_BOOT:     route.ProtocolCodeNetMgmt,
	unix.RTPROT_STATIC:   route.ProtocolCodeNetMgmt,
	unix.RTPROT_REDIRECT: route.ProtocolCodeICMP,
	rtprotRIP:            route.ProtocolCodeRIP,
	rtprotISIS:           route.ProtocolCodeISIS,
	rtprotOSPF:           route.ProtocolCodeOSPF,
	rtprotBGP:            route.ProtocolCodeBGP,
}

// routeTable prefers RTA_TABLE, which carries table ids above 255.
func routeTable(msg rtnetlink.RouteMessage) uint32 {
	if msg.Attributes.Table != 0 {
		return msg.Attributes.Table
	}

	return uint32(msg.Table)
}

func protocolCode(protocol uint8) uint32 {
	if code, ok := kernelProtocols[protocol]; ok {
		return code
	}

	return route.ProtocolCodeOther
}

func typeCode(kind uint8, gateway net.IP) uint32 {
	switch kind {
	case unix.RTN_UNICAST:
		if hasGateway(gateway) {
			return route.TypeCodeIndirect
		}

		return route.TypeCodeDirect
	case unix.RTN_BLACKHOLE, unix.RTN_UNREACHABLE, unix.RTN_PROHIBIT:
		return route.TypeCodeInvalid
	default:
		return route.TypeCodeOther
	}
}

func hasGateway(gateway net.IP) bool {
	return gateway != nil && !gateway.IsUnspecified()
}

func addressString(ip net.IP) string {
	if ip4 := ip.To4(); ip4 != nil {
		return ip4.String()
	}

	return net.IPv4zero.String()
}

// clampInt32 caps kernel u32 values at the largest value a row field holds.
func clampInt32(v uint32) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}

	return int32(v)
}

// rowsFromMessage returns one row per next hop; multipath routes expand in kernel order.
func rowsFromMessage(msg rtnetlink.RouteMessage) []route.Row {
	destination := addressString(msg.Attributes.Dst)
	mask := net.IP(net.CIDRMask(int(msg.DstLength), 32)).String()
	protocol := protocolCode(msg.Protocol)
	metric := clampInt32(msg.Attributes.Priority)

	row := func(gateway net.IP, ifIndex uint32) route.Row {
		return route.Entry{
			Destination:    destination,
			Mask:           mask,
			NextHop:        addressString(gateway),
			InterfaceIndex: clampInt32(ifIndex),
			TypeCode:       typeCode(msg.Type, gateway),
			ProtocolCode:   protocol,
			Metric:         metric,
		}.Row()
	}

	if len(msg.Attributes.Multipath) == 0 {
		return []route.Row{row(msg.Attributes.Gateway, msg.Attributes.OutIface)}
	}

	rows := make([]route.Row, 0, len(msg.Attributes.Multipath))
	for _, hop := range msg.Attributes.Multipath {
		rows = append(rows, row(hop.Gateway, hop.Hop.IfIndex))
	}

	return rows
}
