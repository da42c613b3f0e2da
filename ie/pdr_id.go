// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// PDRID is the Packet Detection Rule ID, 3GPP TS 29.244 clause 8.2.2: a
// 2-octet unsigned integer uniquely identifying a PDR within a session.
type PDRID uint16

// NewPDRID constructs a PDRID.
func NewPDRID(v uint16) PDRID { return PDRID(v) }

// Marshal encodes the PDRID payload.
func (v PDRID) Marshal() []byte {
	out := make([]byte, 2)
	putUint16(out, uint16(v))
	return out
}

// UnmarshalPDRID decodes a PDRID payload.
func UnmarshalPDRID(payload []byte) (PDRID, error) {
	if len(payload) < 2 {
		return 0, NewInvalidLength("PDRID", TypePDRID, 2, len(payload))
	}
	return PDRID(getUint16(payload)), nil
}

// ToIe wraps the PDRID as a generic Ie.
func (v PDRID) ToIe() *Ie { return New(TypePDRID, v.Marshal()) }
