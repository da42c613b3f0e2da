// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

import "net"

// PDNType, 3GPP TS 29.244 clause 8.2.38, names the PDU session type a
// session belongs to. Strict enum per 3GPP table 8.2.38-1.
type PDNType uint8

const (
	PDNTypeIPv4   PDNType = 1
	PDNTypeIPv6   PDNType = 2
	PDNTypeIPv4v6 PDNType = 3
	PDNTypeNonIP  PDNType = 4
	PDNTypeEthernet PDNType = 5
)

func (v PDNType) String() string {
	switch v {
	case PDNTypeIPv4:
		return "IPv4"
	case PDNTypeIPv6:
		return "IPv6"
	case PDNTypeIPv4v6:
		return "IPv4v6"
	case PDNTypeNonIP:
		return "NonIP"
	case PDNTypeEthernet:
		return "Ethernet"
	default:
		return "Unknown"
	}
}

func (v PDNType) Marshal() []byte { return []byte{byte(v) & 0x07} }

func UnmarshalPDNType(payload []byte) (PDNType, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("PDNType", TypePDNType, 1, len(payload))
	}
	v := PDNType(payload[0] & 0x07)
	if v.String() == "Unknown" {
		return 0, NewInvalidValueString("PDNType", v.String(), "must be 1-5 per 3GPP TS 29.244 table 8.2.38-1")
	}
	return v, nil
}

func (v PDNType) ToIe() *Ie { return New(TypePDNType, v.Marshal()) }

// AccessType, 3GPP TS 29.244 clause 8.2.172, names whether a PDU session
// reaches the UE over 3GPP or non-3GPP access. Strict enum.
type AccessType uint8

const (
	AccessType3GPP    AccessType = 0
	AccessTypeNon3GPP AccessType = 1
)

func (v AccessType) String() string {
	switch v {
	case AccessType3GPP:
		return "ThreeGPP"
	case AccessTypeNon3GPP:
		return "NonThreeGPP"
	default:
		return "Unknown"
	}
}

func (v AccessType) Marshal() []byte { return []byte{byte(v) & 0x03} }

func UnmarshalAccessType(payload []byte) (AccessType, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("AccessType", TypeAccessType, 1, len(payload))
	}
	v := AccessType(payload[0] & 0x03)
	if v.String() == "Unknown" {
		return 0, NewInvalidValueString("AccessType", v.String(), "must be 0 (3GPP) or 1 (non-3GPP)")
	}
	return v, nil
}

func (v AccessType) ToIe() *Ie { return New(TypeAccessType, v.Marshal()) }

// RQI, 3GPP TS 29.244 clause 8.2.128, is a single bit flagging a QER's
// reflective QoS behavior. Modeled as a bool rather than a masked byte
// since it carries no other bits.
type RQI bool

func (v RQI) Marshal() []byte {
	if v {
		return []byte{0x01}
	}
	return []byte{0x00}
}

func UnmarshalRQI(payload []byte) (RQI, error) {
	if len(payload) < 1 {
		return false, NewInvalidLength("RQI", TypeRQI, 1, len(payload))
	}
	return RQI(payload[0]&0x01 != 0), nil
}

func (v RQI) ToIe() *Ie { return New(TypeRQI, v.Marshal()) }

// FailedRuleID, 3GPP TS 29.244 clause 8.2.98, names which rule within a
// rejected request failed, tagged with its rule family since PDR/FAR/QER/
// URR/BAR/MAR IDs share no common numeric space.
type FailedRuleIDType uint8

const (
	FailedRuleIDPDR FailedRuleIDType = 1
	FailedRuleIDFAR FailedRuleIDType = 2
	FailedRuleIDQER FailedRuleIDType = 3
	FailedRuleIDURR FailedRuleIDType = 4
	FailedRuleIDBAR FailedRuleIDType = 5
	FailedRuleIDMAR FailedRuleIDType = 6
)

type FailedRuleID struct {
	Type FailedRuleIDType
	ID   uint32
}

func NewFailedRuleID(t FailedRuleIDType, id uint32) FailedRuleID {
	return FailedRuleID{Type: t, ID: id}
}

// Marshal encodes the FailedRuleID payload. BAR IDs are 1 octet wide on
// the wire; every other rule family is 4.
func (v FailedRuleID) Marshal() []byte {
	out := []byte{byte(v.Type)}
	if v.Type == FailedRuleIDBAR {
		return append(out, byte(v.ID))
	}
	id := make([]byte, 4)
	putUint32(id, v.ID)
	return append(out, id...)
}

func UnmarshalFailedRuleID(payload []byte) (FailedRuleID, error) {
	if len(payload) < 1 {
		return FailedRuleID{}, NewInvalidLength("FailedRuleID", TypeFailedRuleID, 1, len(payload))
	}
	t := FailedRuleIDType(payload[0])
	rest := payload[1:]
	if t == FailedRuleIDBAR {
		if len(rest) < 1 {
			return FailedRuleID{}, NewInvalidLength("FailedRuleID BAR id", TypeFailedRuleID, 1, len(rest))
		}
		return FailedRuleID{Type: t, ID: uint32(rest[0])}, nil
	}
	if len(rest) < 4 {
		return FailedRuleID{}, NewInvalidLength("FailedRuleID id", TypeFailedRuleID, 4, len(rest))
	}
	return FailedRuleID{Type: t, ID: getUint32(rest[:4])}, nil
}

func (v FailedRuleID) ToIe() *Ie { return New(TypeFailedRuleID, v.Marshal()) }

// AdditionalUsageReportsInformation, 3GPP TS 29.244 clause 8.2.142, is a
// 15-bit count (plus an AURI overflow flag in the top bit) of usage
// reports still pending beyond those already included in a message.
type AdditionalUsageReportsInformation struct {
	Count     uint16
	Overflow  bool
}

func NewAdditionalUsageReportsInformation(count uint16, overflow bool) AdditionalUsageReportsInformation {
	return AdditionalUsageReportsInformation{Count: count & 0x7FFF, Overflow: overflow}
}

func (v AdditionalUsageReportsInformation) Marshal() []byte {
	val := v.Count & 0x7FFF
	if v.Overflow {
		val |= 0x8000
	}
	out := make([]byte, 2)
	putUint16(out, val)
	return out
}

func UnmarshalAdditionalUsageReportsInformation(payload []byte) (AdditionalUsageReportsInformation, error) {
	if len(payload) < 2 {
		return AdditionalUsageReportsInformation{}, NewInvalidLength("AdditionalUsageReportsInformation", TypeAdditionalUsageReports, 2, len(payload))
	}
	raw := getUint16(payload[:2])
	return AdditionalUsageReportsInformation{Count: raw & 0x7FFF, Overflow: raw&0x8000 != 0}, nil
}

func (v AdditionalUsageReportsInformation) ToIe() *Ie {
	return New(TypeAdditionalUsageReports, v.Marshal())
}

// RemoteGTPUPeer, 3GPP TS 29.244 clause 8.2.70, names a GTP-U peer for
// path-failure monitoring: a flagged-union node address with optional
// network-instance and destination-interface qualifiers, grounded on the
// same flagged-address shape as NodeID.
const (
	remotePeerFlagV4  = 0x01
	remotePeerFlagV6  = 0x02
	remotePeerFlagDI  = 0x04
	remotePeerFlagNI  = 0x08
)

type RemoteGTPUPeer struct {
	IPv4                 net.IP
	IPv6                 net.IP
	DestinationInterface DestinationInterface
	HasDestinationInterface bool
	NetworkInstance      string
	HasNetworkInstance   bool
}

func NewRemoteGTPUPeer(ipv4, ipv6 net.IP) RemoteGTPUPeer {
	r := RemoteGTPUPeer{}
	if ipv4 != nil {
		r.IPv4 = ipv4.To4()
	}
	if ipv6 != nil {
		r.IPv6 = ipv6.To16()
	}
	return r
}

func (r RemoteGTPUPeer) Marshal() []byte {
	var flags byte
	if r.IPv4 != nil {
		flags |= remotePeerFlagV4
	}
	if r.IPv6 != nil {
		flags |= remotePeerFlagV6
	}
	if r.HasDestinationInterface {
		flags |= remotePeerFlagDI
	}
	if r.HasNetworkInstance {
		flags |= remotePeerFlagNI
	}
	out := []byte{flags}
	if r.IPv4 != nil {
		out = append(out, r.IPv4.To4()...)
	}
	if r.IPv6 != nil {
		out = append(out, r.IPv6.To16()...)
	}
	if r.HasDestinationInterface {
		out = append(out, byte(r.DestinationInterface))
	}
	if r.HasNetworkInstance {
		ni := []byte(r.NetworkInstance)
		out = append(out, byte(len(ni)))
		out = append(out, ni...)
	}
	return out
}

func UnmarshalRemoteGTPUPeer(payload []byte) (RemoteGTPUPeer, error) {
	if len(payload) < 1 {
		return RemoteGTPUPeer{}, NewInvalidLength("RemoteGTPUPeer", TypeRemoteGTPUPeer, 1, len(payload))
	}
	flags := payload[0]
	offset := 1
	var r RemoteGTPUPeer
	if flags&remotePeerFlagV4 != 0 {
		if len(payload) < offset+4 {
			return RemoteGTPUPeer{}, NewInvalidLength("RemoteGTPUPeer IPv4", TypeRemoteGTPUPeer, offset+4, len(payload))
		}
		r.IPv4 = net.IP(append([]byte{}, payload[offset:offset+4]...))
		offset += 4
	}
	if flags&remotePeerFlagV6 != 0 {
		if len(payload) < offset+16 {
			return RemoteGTPUPeer{}, NewInvalidLength("RemoteGTPUPeer IPv6", TypeRemoteGTPUPeer, offset+16, len(payload))
		}
		r.IPv6 = net.IP(append([]byte{}, payload[offset:offset+16]...))
		offset += 16
	}
	if flags&remotePeerFlagDI != 0 {
		if len(payload) < offset+1 {
			return RemoteGTPUPeer{}, NewInvalidLength("RemoteGTPUPeer DestinationInterface", TypeRemoteGTPUPeer, offset+1, len(payload))
		}
		r.DestinationInterface = DestinationInterface(payload[offset])
		r.HasDestinationInterface = true
		offset++
	}
	if flags&remotePeerFlagNI != 0 {
		if len(payload) < offset+1 {
			return RemoteGTPUPeer{}, NewInvalidLength("RemoteGTPUPeer NetworkInstance length", TypeRemoteGTPUPeer, offset+1, len(payload))
		}
		niLen := int(payload[offset])
		offset++
		if len(payload) < offset+niLen {
			return RemoteGTPUPeer{}, NewInvalidLength("RemoteGTPUPeer NetworkInstance", TypeRemoteGTPUPeer, offset+niLen, len(payload))
		}
		r.NetworkInstance = string(payload[offset : offset+niLen])
		r.HasNetworkInstance = true
	}
	return r, nil
}

func (r RemoteGTPUPeer) ToIe() *Ie { return New(TypeRemoteGTPUPeer, r.Marshal()) }

// OffendingIE, 3GPP TS 29.244 clause 8.2.68, names the IE type that caused
// a decode failure a message carries it back to report.
type OffendingIE Type

func NewOffendingIE(t Type) OffendingIE { return OffendingIE(t) }

func (v OffendingIE) Marshal() []byte {
	out := make([]byte, 2)
	putUint16(out, uint16(v))
	return out
}

func UnmarshalOffendingIE(payload []byte) (OffendingIE, error) {
	if len(payload) < 2 {
		return 0, NewInvalidLength("OffendingIE", TypeOffendingIE, 2, len(payload))
	}
	return OffendingIE(getUint16(payload)), nil
}

func (v OffendingIE) ToIe() *Ie { return New(TypeOffendingIE, v.Marshal()) }
