// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// FARID is the Forwarding Action Rule ID, 3GPP TS 29.244 clause 8.2.18: a
// 4-octet unsigned integer.
type FARID uint32

// NewFARID constructs a FARID.
func NewFARID(v uint32) FARID { return FARID(v) }

// Marshal encodes the FARID payload.
func (v FARID) Marshal() []byte {
	out := make([]byte, 4)
	putUint32(out, uint32(v))
	return out
}

// UnmarshalFARID decodes a FARID payload.
func UnmarshalFARID(payload []byte) (FARID, error) {
	if len(payload) < 4 {
		return 0, NewInvalidLength("FARID", TypeFARID, 4, len(payload))
	}
	return FARID(getUint32(payload)), nil
}

// ToIe wraps the FARID as a generic Ie.
func (v FARID) ToIe() *Ie { return New(TypeFARID, v.Marshal()) }
