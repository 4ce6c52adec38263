package route

import "fmt"

// TypeCategory is the legacy IP-MIB ipRouteType of a route.
type TypeCategory uint8

const (
	TypeUnknown TypeCategory = iota
	TypeOther
	TypeInvalid
	TypeDirect
	TypeIndirect
)

// MIB_IPROUTE_TYPE_* codes.
const (
	TypeCodeOther    uint32 = 1
	TypeCodeInvalid  uint32 = 2
	TypeCodeDirect   uint32 = 3
	TypeCodeIndirect uint32 = 4
)

var typeCategories = map[uint32]TypeCategory{
	TypeCodeOther:    TypeOther,
	TypeCodeInvalid:  TypeInvalid,
	TypeCodeDirect:   TypeDirect,
	TypeCodeIndirect: TypeIndirect,
}

var typeNames = [...]string{
	TypeUnknown:  "Unknown",
	TypeOther:    "Other",
	TypeInvalid:  "Invalid",
	TypeDirect:   "Direct",
	TypeIndirect: "Indirect",
}

var typeDescriptions = [...]string{
	TypeUnknown:  "unknown type value",
	TypeOther:    "other",
	TypeInvalid:  "invalid route",
	TypeDirect:   "local route where next hop is final destination",
	TypeIndirect: "remote route where next hop is not final destination",
}

func (c TypeCategory) String() string {
	if int(c) < len(typeNames) {
		return typeNames[c]
	}

	return typeNames[TypeUnknown]
}

// Description is the fixed English text for the category.
func (c TypeCategory) Description() string {
	if int(c) < len(typeDescriptions) {
		return typeDescriptions[c]
	}

	return typeDescriptions[TypeUnknown]
}

// Type is a classified route type code.
type Type struct {
	Code     uint32
	Category TypeCategory
}

// ClassifyType maps every code to exactly one category; codes outside 1-4 are TypeUnknown.
func ClassifyType(code uint32) Type {
	category, ok := typeCategories[code]
	if !ok {
		category = TypeUnknown
	}

	return Type{Code: code, Category: category}
}

func (t Type) Description() string {
	return t.Category.Description()
}

func (t Type) String() string {
	return fmt.Sprintf("%d - %s", t.Code, t.Description())
}

// ProtocolCategory is the legacy IP-MIB ipRouteProto of a route, plus the
// Windows specific origins.
type ProtocolCategory uint8

const (
	ProtocolUnknown ProtocolCategory = iota
	ProtocolOther
	ProtocolLocal
	ProtocolNetMgmt
	ProtocolICMP
	ProtocolEGP
	ProtocolGGP
	ProtocolHello
	ProtocolRIP
	ProtocolISIS
	ProtocolESIS
	ProtocolCisco
	ProtocolBBN
	ProtocolOSPF
	ProtocolBGP
	ProtocolNTAutoStatic
	ProtocolNTStatic
	ProtocolNTStaticNonDOD
)

// MIB_IPPROTO_* codes.
const (
	ProtocolCodeOther          uint32 = 1
	ProtocolCodeLocal          uint32 = 2
	ProtocolCodeNetMgmt        uint32 = 3
	ProtocolCodeICMP           uint32 = 4
	ProtocolCodeEGP            uint32 = 5
	ProtocolCodeGGP            uint32 = 6
	ProtocolCodeHello          uint32 = 7
	ProtocolCodeRIP            uint32 = 8
	ProtocolCodeISIS           uint32 = 9
	ProtocolCodeESIS           uint32 = 10
	ProtocolCodeCisco          uint32 = 11
	ProtocolCodeBBN            uint32 = 12
	ProtocolCodeOSPF           uint32 = 13
	ProtocolCodeBGP            uint32 = 14
	ProtocolCodeNTAutoStatic   uint32 = 10002
	ProtocolCodeNTStatic       uint32 = 10006
	ProtocolCodeNTStaticNonDOD uint32 = 10007
)

var protocolCategories = map[uint32]ProtocolCategory{
	ProtocolCodeOther:          ProtocolOther,
	ProtocolCodeLocal:          ProtocolLocal,
	ProtocolCodeNetMgmt:        ProtocolNetMgmt,
	ProtocolCodeICMP:           ProtocolICMP,
	ProtocolCodeEGP:            ProtocolEGP,
	ProtocolCodeGGP:            ProtocolGGP,
	ProtocolCodeHello:          ProtocolHello,
	ProtocolCodeRIP:            ProtocolRIP,
	ProtocolCodeISIS:           ProtocolISIS,
	ProtocolCodeESIS:           ProtocolESIS,
	ProtocolCodeCisco:          ProtocolCisco,
	ProtocolCodeBBN:            ProtocolBBN,
	ProtocolCodeOSPF:           ProtocolOSPF,
	ProtocolCodeBGP:            ProtocolBGP,
	ProtocolCodeNTAutoStatic:   ProtocolNTAutoStatic,
	ProtocolCodeNTStatic:       ProtocolNTStatic,
	ProtocolCodeNTStaticNonDOD: ProtocolNTStaticNonDOD,
}

var protocolNames = [...]string{
	ProtocolUnknown:        "Unknown",
	ProtocolOther:          "Other",
	ProtocolLocal:          "Local",
	ProtocolNetMgmt:        "NetMgmt",
	ProtocolICMP:           "ICMP",
	ProtocolEGP:            "EGP",
	ProtocolGGP:            "GGP",
	ProtocolHello:          "Hello",
	ProtocolRIP:            "RIP",
	ProtocolISIS:           "IS_IS",
	ProtocolESIS:           "ES_IS",
	ProtocolCisco:          "Cisco_IGRP",
	ProtocolBBN:            "BBN_IGP_SPF",
	ProtocolOSPF:           "OSPF",
	ProtocolBGP:            "BGP",
	ProtocolNTAutoStatic:   "NT_AutoStatic",
	ProtocolNTStatic:       "NT_Static",
	ProtocolNTStaticNonDOD: "NT_StaticNonDOD",
}

// The BBN spelling is kept as-is; consumers match on the exact text.
var protocolDescriptions = [...]string{
	ProtocolUnknown:        "unknown protocol value",
	ProtocolOther:          "Other",
	ProtocolLocal:          "local interface",
	ProtocolNetMgmt:        "static route set through network management",
	ProtocolICMP:           "result of ICMP redirect",
	ProtocolEGP:            "Exterior Gateway Protocol (EGP)",
	ProtocolGGP:            "Gateway-to-Gateway Protocol (GGP)",
	ProtocolHello:          "Hello protocol",
	ProtocolRIP:            "Routing Information Protocol (RIP)",
	ProtocolISIS:           "Intermediate System-to-Intermediate System (IS-IS) protocol",
	ProtocolESIS:           "End System-to-Intermediate System (ES-IS) protocol",
	ProtocolCisco:          "Cisco Interior Gateway Routing Protocol (IGRP)",
	ProtocolBBN:            "BBN Internel Gateway Protocol (IGP) using SPF",
	ProtocolOSPF:           "Open Shortest Path First (OSPF) protocol",
	ProtocolBGP:            "Border Gateway Protocol (BGP)",
	ProtocolNTAutoStatic:   "special Windows auto static route",
	ProtocolNTStatic:       "special Windows static route",
	ProtocolNTStaticNonDOD: "special Windows static route not based on Internet standards",
}

func (c ProtocolCategory) String() string {
	if int(c) < len(protocolNames) {
		return protocolNames[c]
	}

	return protocolNames[ProtocolUnknown]
}

// Description is the fixed English text for the category.
func (c ProtocolCategory) Description() string {
	if int(c) < len(protocolDescriptions) {
		return protocolDescriptions[c]
	}

	return protocolDescriptions[ProtocolUnknown]
}

// Protocol is a classified route origin protocol code.
type Protocol struct {
	Code     uint32
	Category ProtocolCategory
}

// ClassifyProtocol maps every code to exactly one category; codes outside
// 1-14, 10002, 10006 and 10007 are ProtocolUnknown.
func ClassifyProtocol(code uint32) Protocol {
	category, ok := protocolCategories[code]
	if !ok {
		category = ProtocolUnknown
	}

	return Protocol{Code: code, Category: category}
}

func (p Protocol) Description() string {
	return p.Category.Description()
}

func (p Protocol) String() string {
	return fmt.Sprintf("%d - %s", p.Code, p.Description())
}
