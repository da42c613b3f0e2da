// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// Multiplier, 3GPP TS 29.244 clause 8.2.84, is a quotient factor applied to
// a URR's quota values when aggregating several URRs under one
// AggregatedURRID (grounded on original_source/src/ie/multiplier.rs).
type Multiplier uint32

// NewMultiplier constructs a Multiplier.
func NewMultiplier(v uint32) Multiplier { return Multiplier(v) }

// Marshal encodes the Multiplier payload.
func (v Multiplier) Marshal() []byte {
	out := make([]byte, 4)
	putUint32(out, uint32(v))
	return out
}

// UnmarshalMultiplier decodes a Multiplier payload.
func UnmarshalMultiplier(payload []byte) (Multiplier, error) {
	if len(payload) < 4 {
		return 0, NewInvalidLength("Multiplier", TypeMultiplier, 4, len(payload))
	}
	return Multiplier(getUint32(payload)), nil
}

// ToIe wraps the Multiplier as a generic Ie.
func (v Multiplier) ToIe() *Ie { return New(TypeMultiplier, v.Marshal()) }

// AggregatedURRID, 3GPP TS 29.244 clause 8.2.183, names the group ID a URR's
// usage is aggregated under (grounded on
// original_source/src/ie/aggregated_urr_id.rs).
type AggregatedURRID uint32

// NewAggregatedURRID constructs an AggregatedURRID.
func NewAggregatedURRID(v uint32) AggregatedURRID { return AggregatedURRID(v) }

// Marshal encodes the AggregatedURRID payload.
func (v AggregatedURRID) Marshal() []byte {
	out := make([]byte, 4)
	putUint32(out, uint32(v))
	return out
}

// UnmarshalAggregatedURRID decodes an AggregatedURRID payload.
func UnmarshalAggregatedURRID(payload []byte) (AggregatedURRID, error) {
	if len(payload) < 4 {
		return 0, NewInvalidLength("AggregatedURRID", TypeAggregatedURRID, 4, len(payload))
	}
	return AggregatedURRID(getUint32(payload)), nil
}

// ToIe wraps the AggregatedURRID as a generic Ie.
func (v AggregatedURRID) ToIe() *Ie { return New(TypeAggregatedURRID, v.Marshal()) }
