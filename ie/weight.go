// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// Weight, 3GPP TS 29.244 clause 8.2.140, carries a relative access-forwarding
// weight (grounded on original_source/src/ie/weight.rs).
type Weight uint8

// NewWeight constructs a Weight.
func NewWeight(v uint8) Weight { return Weight(v) }

// Marshal encodes the Weight payload.
func (v Weight) Marshal() []byte { return []byte{byte(v)} }

// UnmarshalWeight decodes a Weight payload.
func UnmarshalWeight(payload []byte) (Weight, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("Weight", TypeWeight, 1, len(payload))
	}
	return Weight(payload[0]), nil
}

// ToIe wraps the Weight as a generic Ie.
func (v Weight) ToIe() *Ie { return New(TypeWeight, v.Marshal()) }
