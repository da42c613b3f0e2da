// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

import "net"

// NodeIDType selects which union member NodeID carries.
type NodeIDType uint8

const (
	NodeIDTypeIPv4 NodeIDType = 0
	NodeIDTypeIPv6 NodeIDType = 1
	NodeIDTypeFQDN NodeIDType = 2
)

// NodeID, 3GPP TS 29.244 clause 8.2.38, identifies a PFCP node by IPv4,
// IPv6, or FQDN. It is a flagged union: the low nibble of the first octet
// selects the member, and the FQDN form shares its RFC 1035 label encoding
// (no trailing zero label) with FQCSID's node ID field.
type NodeID struct {
	Type NodeIDType
	IPv4 net.IP
	IPv6 net.IP
	FQDN string
}

// NewNodeIDIPv4 constructs an IPv4 NodeID.
func NewNodeIDIPv4(addr net.IP) NodeID {
	return NodeID{Type: NodeIDTypeIPv4, IPv4: addr.To4()}
}

// NewNodeIDIPv6 constructs an IPv6 NodeID.
func NewNodeIDIPv6(addr net.IP) NodeID {
	return NodeID{Type: NodeIDTypeIPv6, IPv6: addr.To16()}
}

// NewNodeIDFQDN constructs an FQDN NodeID.
func NewNodeIDFQDN(fqdn string) NodeID {
	return NodeID{Type: NodeIDTypeFQDN, FQDN: fqdn}
}

// Marshal encodes the NodeID payload.
func (v NodeID) Marshal() []byte {
	out := []byte{byte(v.Type) & 0x0F}
	switch v.Type {
	case NodeIDTypeIPv4:
		out = append(out, v.IPv4.To4()...)
	case NodeIDTypeIPv6:
		out = append(out, v.IPv6.To16()...)
	case NodeIDTypeFQDN:
		out = append(out, encodeFQDN(v.FQDN)...)
	}
	return out
}

// UnmarshalNodeID decodes a NodeID payload. The FQDN form consumes the
// whole remaining payload, since NodeID is never followed by sibling
// fields within its own TLV.
func UnmarshalNodeID(payload []byte) (NodeID, error) {
	if len(payload) < 1 {
		return NodeID{}, NewInvalidLength("NodeID", TypeNodeID, 1, len(payload))
	}
	t := NodeIDType(payload[0] & 0x0F)
	rest := payload[1:]
	switch t {
	case NodeIDTypeIPv4:
		if len(rest) < 4 {
			return NodeID{}, NewInvalidLength("NodeID IPv4", TypeNodeID, 4, len(rest))
		}
		return NodeID{Type: t, IPv4: net.IP(append([]byte{}, rest[:4]...))}, nil
	case NodeIDTypeIPv6:
		if len(rest) < 16 {
			return NodeID{}, NewInvalidLength("NodeID IPv6", TypeNodeID, 16, len(rest))
		}
		return NodeID{Type: t, IPv6: net.IP(append([]byte{}, rest[:16]...))}, nil
	case NodeIDTypeFQDN:
		fqdn, err := decodeFQDN(rest)
		if err != nil {
			return NodeID{}, err
		}
		return NodeID{Type: t, FQDN: fqdn}, nil
	default:
		return NodeID{}, NewInvalidValueString("NodeID type", string(rune(t)), "must be 0 (IPv4), 1 (IPv6), or 2 (FQDN)")
	}
}

// ToIe wraps the NodeID as a generic Ie.
func (v NodeID) ToIe() *Ie { return New(TypeNodeID, v.Marshal()) }

// encodeFQDN and decodeFQDN implement the RFC 1035 clause 3.1 label
// encoding 3GPP reuses for FQDNs in PFCP, deliberately without the
// trailing zero-length label DNS messages normally carry.
func encodeFQDN(fqdn string) []byte {
	if fqdn == "" {
		return nil
	}
	var out []byte
	start := 0
	for i := 0; i <= len(fqdn); i++ {
		if i == len(fqdn) || fqdn[i] == '.' {
			label := fqdn[start:i]
			if len(label) > 63 {
				label = label[:63]
			}
			if len(label) > 0 {
				out = append(out, byte(len(label)))
				out = append(out, label...)
			}
			start = i + 1
		}
	}
	return out
}

func decodeFQDN(data []byte) (string, error) {
	var sb []byte
	offset := 0
	for offset < len(data) {
		labelLen := int(data[offset])
		offset++
		if labelLen == 0 {
			break
		}
		if offset+labelLen > len(data) {
			return "", NewInvalidValueString("FQDN label", "", "label length exceeds available data")
		}
		if len(sb) > 0 {
			sb = append(sb, '.')
		}
		sb = append(sb, data[offset:offset+labelLen]...)
		offset += labelLen
	}
	return string(sb), nil
}
