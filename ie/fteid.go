// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

import "net"

const (
	fteidFlagV4   = 0x01
	fteidFlagV6   = 0x02
	fteidFlagCh   = 0x04
	fteidFlagChID = 0x08
)

// FTEID, 3GPP TS 29.244 clause 8.2.3, is the Fulsomely-Qualified TEID: the
// GTP-U tunnel endpoint identifier plus the owning node's address(es).
// Flagged union, family 5: flags(1) | TEID(4) | IPv4(4)? | IPv6(16)? |
// ChooseID(1)?. The CH and CHID flags let the UP function choose the TEID
// and/or an opaque choose-identifier instead of the CP function assigning
// one, used when a PDR and FAR on the same UPF must share a local F-TEID.
type FTEID struct {
	TEID     uint32
	IPv4     net.IP
	IPv6     net.IP
	Choose   bool
	ChooseID uint8 // valid only when ChooseIDPresent is true
	ChooseIDPresent bool
}

// NewFTEID constructs an allocated FTEID (CH/CHID unset).
func NewFTEID(teid uint32, ipv4, ipv6 net.IP) FTEID {
	f := FTEID{TEID: teid}
	if ipv4 != nil {
		f.IPv4 = ipv4.To4()
	}
	if ipv6 != nil {
		f.IPv6 = ipv6.To16()
	}
	return f
}

// NewFTEIDChoose constructs an FTEID that asks the UP function to allocate
// the TEID itself (CH set), optionally tagging it with a choose-identifier
// so a later F-TEID referencing the same allocation can reuse it.
func NewFTEIDChoose(ipv4, ipv6 net.IP, chooseID *uint8) FTEID {
	f := FTEID{Choose: true}
	if ipv4 != nil {
		f.IPv4 = ipv4.To4()
	}
	if ipv6 != nil {
		f.IPv6 = ipv6.To16()
	}
	if chooseID != nil {
		f.ChooseID = *chooseID
		f.ChooseIDPresent = true
	}
	return f
}

func (f FTEID) HasV4() bool { return f.IPv4 != nil }
func (f FTEID) HasV6() bool { return f.IPv6 != nil }

// Marshal encodes the FTEID payload.
func (f FTEID) Marshal() []byte {
	var flags byte
	if f.HasV4() {
		flags |= fteidFlagV4
	}
	if f.HasV6() {
		flags |= fteidFlagV6
	}
	if f.Choose {
		flags |= fteidFlagCh
	}
	if f.ChooseIDPresent {
		flags |= fteidFlagChID
	}

	out := make([]byte, 5)
	out[0] = flags
	putUint32(out[1:5], f.TEID)
	if f.HasV4() {
		out = append(out, f.IPv4.To4()...)
	}
	if f.HasV6() {
		out = append(out, f.IPv6.To16()...)
	}
	if f.ChooseIDPresent {
		out = append(out, f.ChooseID)
	}
	return out
}

// UnmarshalFTEID decodes an FTEID payload.
func UnmarshalFTEID(payload []byte) (FTEID, error) {
	if len(payload) < 5 {
		return FTEID{}, NewInvalidLength("FTEID", TypeFTEID, 5, len(payload))
	}
	flags := payload[0]
	f := FTEID{
		TEID:   getUint32(payload[1:5]),
		Choose: flags&fteidFlagCh != 0,
	}
	offset := 5
	if flags&fteidFlagV4 != 0 {
		if len(payload) < offset+4 {
			return FTEID{}, NewInvalidLength("FTEID IPv4", TypeFTEID, offset+4, len(payload))
		}
		f.IPv4 = net.IP(append([]byte{}, payload[offset:offset+4]...))
		offset += 4
	}
	if flags&fteidFlagV6 != 0 {
		if len(payload) < offset+16 {
			return FTEID{}, NewInvalidLength("FTEID IPv6", TypeFTEID, offset+16, len(payload))
		}
		f.IPv6 = net.IP(append([]byte{}, payload[offset:offset+16]...))
		offset += 16
	}
	if flags&fteidFlagChID != 0 {
		if len(payload) < offset+1 {
			return FTEID{}, NewInvalidLength("FTEID ChooseID", TypeFTEID, offset+1, len(payload))
		}
		f.ChooseID = payload[offset]
		f.ChooseIDPresent = true
	}
	return f, nil
}

// ToIe wraps the FTEID as a generic Ie.
func (f FTEID) ToIe() *Ie { return New(TypeFTEID, f.Marshal()) }
