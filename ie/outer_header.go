// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

import "net"

const (
	ohcFlagGTPUUDPIPv4 = 0x0001
	ohcFlagGTPUUDPIPv6 = 0x0002
	ohcFlagUDPIPv4     = 0x0004
	ohcFlagUDPIPv6     = 0x0008
	ohcFlagIPv4        = 0x0010
	ohcFlagIPv6        = 0x0020
	ohcFlagCTag        = 0x0040
	ohcFlagSTag        = 0x0080
)

// OuterHeaderCreation, 3GPP TS 29.244 clause 8.2.56, tells the UP function
// which encapsulation to add when forwarding a packet out a FAR: a 2-octet
// description bitmap selects GTP-U/UDP/IP, plain UDP/IP, or plain IP, and
// the TEID/address/port fields present depend on which bits are set.
type OuterHeaderCreation struct {
	Description uint16
	TEID        uint32
	IPv4        net.IP
	IPv6        net.IP
	PortNumber  uint16
	HasPort     bool
}

// NewOuterHeaderCreationGTPU constructs a GTP-U/UDP/IP encapsulation,
// selecting the v4 or v6 description bit from whichever address is given.
func NewOuterHeaderCreationGTPU(teid uint32, ipv4, ipv6 net.IP) OuterHeaderCreation {
	o := OuterHeaderCreation{TEID: teid}
	if ipv4 != nil {
		o.Description |= ohcFlagGTPUUDPIPv4
		o.IPv4 = ipv4.To4()
	}
	if ipv6 != nil {
		o.Description |= ohcFlagGTPUUDPIPv6
		o.IPv6 = ipv6.To16()
	}
	return o
}

// Marshal encodes the OuterHeaderCreation payload.
func (o OuterHeaderCreation) Marshal() []byte {
	out := make([]byte, 2)
	putUint16(out, o.Description)
	if o.Description&(ohcFlagGTPUUDPIPv4|ohcFlagGTPUUDPIPv6) != 0 {
		teid := make([]byte, 4)
		putUint32(teid, o.TEID)
		out = append(out, teid...)
	}
	if o.Description&(ohcFlagGTPUUDPIPv4|ohcFlagUDPIPv4|ohcFlagIPv4) != 0 {
		out = append(out, o.IPv4.To4()...)
	}
	if o.Description&(ohcFlagGTPUUDPIPv6|ohcFlagUDPIPv6|ohcFlagIPv6) != 0 {
		out = append(out, o.IPv6.To16()...)
	}
	if o.Description&(ohcFlagUDPIPv4|ohcFlagUDPIPv6) != 0 && o.HasPort {
		port := make([]byte, 2)
		putUint16(port, o.PortNumber)
		out = append(out, port...)
	}
	return out
}

// UnmarshalOuterHeaderCreation decodes an OuterHeaderCreation payload.
func UnmarshalOuterHeaderCreation(payload []byte) (OuterHeaderCreation, error) {
	if len(payload) < 2 {
		return OuterHeaderCreation{}, NewInvalidLength("OuterHeaderCreation", TypeOuterHeaderCreation, 2, len(payload))
	}
	desc := getUint16(payload[:2])
	o := OuterHeaderCreation{Description: desc}
	offset := 2

	if desc&(ohcFlagGTPUUDPIPv4|ohcFlagGTPUUDPIPv6) != 0 {
		if len(payload) < offset+4 {
			return OuterHeaderCreation{}, NewInvalidLength("OuterHeaderCreation TEID", TypeOuterHeaderCreation, offset+4, len(payload))
		}
		o.TEID = getUint32(payload[offset : offset+4])
		offset += 4
	}
	if desc&(ohcFlagGTPUUDPIPv4|ohcFlagUDPIPv4|ohcFlagIPv4) != 0 {
		if len(payload) < offset+4 {
			return OuterHeaderCreation{}, NewInvalidLength("OuterHeaderCreation IPv4", TypeOuterHeaderCreation, offset+4, len(payload))
		}
		o.IPv4 = net.IP(append([]byte{}, payload[offset:offset+4]...))
		offset += 4
	}
	if desc&(ohcFlagGTPUUDPIPv6|ohcFlagUDPIPv6|ohcFlagIPv6) != 0 {
		if len(payload) < offset+16 {
			return OuterHeaderCreation{}, NewInvalidLength("OuterHeaderCreation IPv6", TypeOuterHeaderCreation, offset+16, len(payload))
		}
		o.IPv6 = net.IP(append([]byte{}, payload[offset:offset+16]...))
		offset += 16
	}
	if desc&(ohcFlagUDPIPv4|ohcFlagUDPIPv6) != 0 && len(payload) >= offset+2 {
		o.PortNumber = getUint16(payload[offset : offset+2])
		o.HasPort = true
	}
	return o, nil
}

// ToIe wraps the OuterHeaderCreation as a generic Ie.
func (o OuterHeaderCreation) ToIe() *Ie { return New(TypeOuterHeaderCreation, o.Marshal()) }

// OuterHeaderRemovalDescription, 3GPP TS 29.244 clause 8.2.37 (table
// 8.2.37-1), is a strict enum naming which encapsulation a PDR should strip
// before forwarding the payload up the stack.
type OuterHeaderRemovalDescription uint8

const (
	OuterHeaderRemovalGTPUUDPIPv4  OuterHeaderRemovalDescription = 0
	OuterHeaderRemovalGTPUUDPIPv6  OuterHeaderRemovalDescription = 1
	OuterHeaderRemovalUDPIPv4      OuterHeaderRemovalDescription = 2
	OuterHeaderRemovalUDPIPv6      OuterHeaderRemovalDescription = 3
	OuterHeaderRemovalIPv4         OuterHeaderRemovalDescription = 4
	OuterHeaderRemovalIPv6         OuterHeaderRemovalDescription = 5
	OuterHeaderRemovalGTPUUDPIP    OuterHeaderRemovalDescription = 6
	OuterHeaderRemovalVLANSTagIP   OuterHeaderRemovalDescription = 7
	OuterHeaderRemovalSTagCTagIP   OuterHeaderRemovalDescription = 8
)

// OuterHeaderRemoval, 3GPP TS 29.244 clause 8.2.37: a description octet
// plus an optional GTP-U extension-header-deletion flags octet.
type OuterHeaderRemoval struct {
	Description         OuterHeaderRemovalDescription
	GTPUExtHeaderDelete uint8
	HasGTPUExtHeaderDel bool
}

// NewOuterHeaderRemoval constructs an OuterHeaderRemoval with no extension
// header deletion flags.
func NewOuterHeaderRemoval(desc OuterHeaderRemovalDescription) OuterHeaderRemoval {
	return OuterHeaderRemoval{Description: desc}
}

// Marshal encodes the OuterHeaderRemoval payload.
func (o OuterHeaderRemoval) Marshal() []byte {
	out := []byte{byte(o.Description)}
	if o.HasGTPUExtHeaderDel {
		out = append(out, o.GTPUExtHeaderDelete)
	}
	return out
}

// UnmarshalOuterHeaderRemoval decodes an OuterHeaderRemoval payload.
func UnmarshalOuterHeaderRemoval(payload []byte) (OuterHeaderRemoval, error) {
	if len(payload) < 1 {
		return OuterHeaderRemoval{}, NewInvalidLength("OuterHeaderRemoval", TypeOuterHeaderRemoval, 1, len(payload))
	}
	if payload[0] > byte(OuterHeaderRemovalSTagCTagIP) {
		return OuterHeaderRemoval{}, NewInvalidValueString("OuterHeaderRemoval", "Unknown", "must be 0-8 per 3GPP TS 29.244 table 8.2.37-1")
	}
	o := OuterHeaderRemoval{Description: OuterHeaderRemovalDescription(payload[0])}
	if len(payload) >= 2 {
		o.GTPUExtHeaderDelete = payload[1]
		o.HasGTPUExtHeaderDel = true
	}
	return o, nil
}

// ToIe wraps the OuterHeaderRemoval as a generic Ie.
func (o OuterHeaderRemoval) ToIe() *Ie { return New(TypeOuterHeaderRemoval, o.Marshal()) }
