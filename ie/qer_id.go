// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// QERID is the QoS Enforcement Rule ID, 3GPP TS 29.244 clause 8.2.73: a
// 4-octet unsigned integer.
type QERID uint32

// NewQERID constructs a QERID.
func NewQERID(v uint32) QERID { return QERID(v) }

// Marshal encodes the QERID payload.
func (v QERID) Marshal() []byte {
	out := make([]byte, 4)
	putUint32(out, uint32(v))
	return out
}

// UnmarshalQERID decodes a QERID payload.
func UnmarshalQERID(payload []byte) (QERID, error) {
	if len(payload) < 4 {
		return 0, NewInvalidLength("QERID", TypeQERID, 4, len(payload))
	}
	return QERID(getUint32(payload)), nil
}

// ToIe wraps the QERID as a generic Ie.
func (v QERID) ToIe() *Ie { return New(TypeQERID, v.Marshal()) }
