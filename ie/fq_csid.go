// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

import "net"

// FQCSID, 3GPP TS 29.244 clause 8.2.75, is the Fully Qualified Control and
// Service Instance Identifier: a node ID plus a set of CSIDs owned by that
// node. Flagged union, family 5:
// NumCSIDs(4 bits) | NodeIDType(4 bits) | NodeID(4/16/var) | CSID(2)*N.
// Grounded on original_source/src/ie/fq_csid.rs.
type FQCSID struct {
	NodeIDType NodeIDType
	IPv4       net.IP
	IPv6       net.IP
	FQDN       string
	CSIDs      []uint16
}

// NewFQCSIDIPv4 constructs an FQCSID with an IPv4 node ID.
func NewFQCSIDIPv4(addr net.IP, csids []uint16) FQCSID {
	return FQCSID{NodeIDType: NodeIDTypeIPv4, IPv4: addr.To4(), CSIDs: csids}
}

// NewFQCSIDIPv6 constructs an FQCSID with an IPv6 node ID.
func NewFQCSIDIPv6(addr net.IP, csids []uint16) FQCSID {
	return FQCSID{NodeIDType: NodeIDTypeIPv6, IPv6: addr.To16(), CSIDs: csids}
}

// NewFQCSIDFQDN constructs an FQCSID with an FQDN node ID.
func NewFQCSIDFQDN(fqdn string, csids []uint16) FQCSID {
	return FQCSID{NodeIDType: NodeIDTypeFQDN, FQDN: fqdn, CSIDs: csids}
}

// Marshal encodes the FQCSID payload. A CSID count above 15 is truncated to
// 15, the maximum the 4-bit count field can express.
func (f FQCSID) Marshal() []byte {
	numCSIDs := len(f.CSIDs)
	if numCSIDs > 15 {
		numCSIDs = 15
	}
	first := byte(numCSIDs<<4) | (byte(f.NodeIDType) & 0x0F)
	out := []byte{first}

	switch f.NodeIDType {
	case NodeIDTypeIPv4:
		out = append(out, f.IPv4.To4()...)
	case NodeIDTypeIPv6:
		out = append(out, f.IPv6.To16()...)
	case NodeIDTypeFQDN:
		out = append(out, encodeFQDN(f.FQDN)...)
	}

	for _, csid := range f.CSIDs[:numCSIDs] {
		b := make([]byte, 2)
		putUint16(b, csid)
		out = append(out, b...)
	}
	return out
}

// UnmarshalFQCSID decodes an FQCSID payload. The FQDN node-ID form's length
// is derived by subtracting the trailing CSID bytes (numCSIDs*2) from the
// remaining payload, per spec.md clause 4.3.
func UnmarshalFQCSID(payload []byte) (FQCSID, error) {
	if len(payload) < 1 {
		return FQCSID{}, NewInvalidLength("FQCSID", TypeFQCSID, 1, len(payload))
	}
	first := payload[0]
	numCSIDs := int(first >> 4)
	nodeIDType := NodeIDType(first & 0x0F)

	offset := 1
	f := FQCSID{NodeIDType: nodeIDType}

	switch nodeIDType {
	case NodeIDTypeIPv4:
		if len(payload) < offset+4 {
			return FQCSID{}, NewInvalidLength("FQCSID IPv4 NodeID", TypeFQCSID, offset+4, len(payload))
		}
		f.IPv4 = net.IP(append([]byte{}, payload[offset:offset+4]...))
		offset += 4
	case NodeIDTypeIPv6:
		if len(payload) < offset+16 {
			return FQCSID{}, NewInvalidLength("FQCSID IPv6 NodeID", TypeFQCSID, offset+16, len(payload))
		}
		f.IPv6 = net.IP(append([]byte{}, payload[offset:offset+16]...))
		offset += 16
	case NodeIDTypeFQDN:
		csidStart := len(payload) - numCSIDs*2
		if csidStart <= offset {
			return FQCSID{}, NewInvalidLength("FQCSID FQDN NodeID", TypeFQCSID, offset+1, csidStart)
		}
		fqdn, err := decodeFQDN(payload[offset:csidStart])
		if err != nil {
			return FQCSID{}, err
		}
		f.FQDN = fqdn
		offset = csidStart
	default:
		return FQCSID{}, NewInvalidValueString("FQCSID NodeID type", "", "must be 0 (IPv4), 1 (IPv6), or 2 (FQDN)")
	}

	for i := 0; i < numCSIDs; i++ {
		if len(payload) < offset+2 {
			return FQCSID{}, NewInvalidLength("FQCSID CSID", TypeFQCSID, offset+2, len(payload))
		}
		f.CSIDs = append(f.CSIDs, getUint16(payload[offset:offset+2]))
		offset += 2
	}

	return f, nil
}

// ToIe wraps the FQCSID as a generic Ie.
func (f FQCSID) ToIe() *Ie { return New(TypeFQCSID, f.Marshal()) }
