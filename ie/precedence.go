// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// Precedence, 3GPP TS 29.244 clause 8.2.10, ranks PDRs for packet
// detection: lower values are evaluated first.
type Precedence uint32

// NewPrecedence constructs a Precedence.
func NewPrecedence(v uint32) Precedence { return Precedence(v) }

// Marshal encodes the Precedence payload.
func (v Precedence) Marshal() []byte {
	out := make([]byte, 4)
	putUint32(out, uint32(v))
	return out
}

// UnmarshalPrecedence decodes a Precedence payload.
func UnmarshalPrecedence(payload []byte) (Precedence, error) {
	if len(payload) < 4 {
		return 0, NewInvalidLength("Precedence", TypePrecedence, 4, len(payload))
	}
	return Precedence(getUint32(payload)), nil
}

// ToIe wraps the Precedence as a generic Ie.
func (v Precedence) ToIe() *Ie { return New(TypePrecedence, v.Marshal()) }
