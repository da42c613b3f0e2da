// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// BARID is the Buffering Action Rule ID, 3GPP TS 29.244 clause 8.2.69: a
// 1-octet unsigned integer.
type BARID uint8

// NewBARID constructs a BARID.
func NewBARID(v uint8) BARID { return BARID(v) }

// Marshal encodes the BARID payload.
func (v BARID) Marshal() []byte { return []byte{byte(v)} }

// UnmarshalBARID decodes a BARID payload.
func UnmarshalBARID(payload []byte) (BARID, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("BARID", TypeBARID, 1, len(payload))
	}
	return BARID(payload[0]), nil
}

// ToIe wraps the BARID as a generic Ie.
func (v BARID) ToIe() *Ie { return New(TypeBARID, v.Marshal()) }

// SRRID is the Session Reporting Rule ID, 3GPP TS 29.244 clause 8.2.181: a
// 1-octet unsigned integer (grounded on
// original_source/src/ie/srr_id.rs).
type SRRID uint8

// NewSRRID constructs a SRRID.
func NewSRRID(v uint8) SRRID { return SRRID(v) }

// Marshal encodes the SRRID payload.
func (v SRRID) Marshal() []byte { return []byte{byte(v)} }

// UnmarshalSRRID decodes a SRRID payload.
func UnmarshalSRRID(payload []byte) (SRRID, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("SRRID", TypeSRRID, 1, len(payload))
	}
	return SRRID(payload[0]), nil
}

// ToIe wraps the SRRID as a generic Ie.
func (v SRRID) ToIe() *Ie { return New(TypeSRRID, v.Marshal()) }

// MARID is the Multi-Access Rule ID, 3GPP TS 29.244 clause 8.2.140: a
// 2-octet unsigned integer.
type MARID uint16

// NewMARID constructs a MARID.
func NewMARID(v uint16) MARID { return MARID(v) }

// Marshal encodes the MARID payload.
func (v MARID) Marshal() []byte {
	out := make([]byte, 2)
	putUint16(out, uint16(v))
	return out
}

// UnmarshalMARID decodes a MARID payload.
func UnmarshalMARID(payload []byte) (MARID, error) {
	if len(payload) < 2 {
		return 0, NewInvalidLength("MARID", TypeMARID, 2, len(payload))
	}
	return MARID(getUint16(payload)), nil
}

// ToIe wraps the MARID as a generic Ie.
func (v MARID) ToIe() *Ie { return New(TypeMARID, v.Marshal()) }
