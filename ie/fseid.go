// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

import "net"

const (
	fseidFlagV6 = 0x01
	fseidFlagV4 = 0x02
)

// FSEID, 3GPP TS 29.244 clause 8.2.37, is the Fully-Qualified SEID: a
// session identifier bundled with the owning node's address(es). Flagged
// union, family 5: flags(1) | SEID(8) | IPv4(4)? | IPv6(16)?. Bit order
// (V6 in bit 0, V4 in bit 1) follows
// original_source/src/ie/fseid.rs, the ground truth for this wire detail.
type FSEID struct {
	SEID uint64
	IPv4 net.IP // nil if not present
	IPv6 net.IP // nil if not present
}

// NewFSEID constructs an FSEID; at least one of ipv4/ipv6 must be non-nil.
func NewFSEID(seid uint64, ipv4, ipv6 net.IP) FSEID {
	f := FSEID{SEID: seid}
	if ipv4 != nil {
		f.IPv4 = ipv4.To4()
	}
	if ipv6 != nil {
		f.IPv6 = ipv6.To16()
	}
	return f
}

// HasV4 and HasV6 report presence without exposing the raw flag byte;
// builders derive these from field presence rather than requiring callers
// to set flags directly.
func (f FSEID) HasV4() bool { return f.IPv4 != nil }
func (f FSEID) HasV6() bool { return f.IPv6 != nil }

// Marshal encodes the FSEID payload.
func (f FSEID) Marshal() []byte {
	var flags byte
	if f.HasV6() {
		flags |= fseidFlagV6
	}
	if f.HasV4() {
		flags |= fseidFlagV4
	}
	out := make([]byte, 9)
	out[0] = flags
	putUint64(out[1:9], f.SEID)
	if f.HasV4() {
		out = append(out, f.IPv4.To4()...)
	}
	if f.HasV6() {
		out = append(out, f.IPv6.To16()...)
	}
	return out
}

// UnmarshalFSEID decodes an FSEID payload.
func UnmarshalFSEID(payload []byte) (FSEID, error) {
	if len(payload) < 9 {
		return FSEID{}, NewInvalidLength("FSEID", TypeFSEID, 9, len(payload))
	}
	flags := payload[0]
	v6 := flags&fseidFlagV6 != 0
	v4 := flags&fseidFlagV4 != 0
	seid := getUint64(payload[1:9])

	offset := 9
	f := FSEID{SEID: seid}
	if v4 {
		if len(payload) < offset+4 {
			return FSEID{}, NewInvalidLength("FSEID IPv4", TypeFSEID, offset+4, len(payload))
		}
		f.IPv4 = net.IP(append([]byte{}, payload[offset:offset+4]...))
		offset += 4
	}
	if v6 {
		if len(payload) < offset+16 {
			return FSEID{}, NewInvalidLength("FSEID IPv6", TypeFSEID, offset+16, len(payload))
		}
		f.IPv6 = net.IP(append([]byte{}, payload[offset:offset+16]...))
		offset += 16
	}
	return f, nil
}

// ToIe wraps the FSEID as a generic Ie.
func (f FSEID) ToIe() *Ie { return New(TypeFSEID, f.Marshal()) }
