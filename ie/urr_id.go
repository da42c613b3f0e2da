// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// URRID is the Usage Reporting Rule ID, 3GPP TS 29.244 clause 8.2.53: a
// 4-octet unsigned integer.
type URRID uint32

// NewURRID constructs a URRID.
func NewURRID(v uint32) URRID { return URRID(v) }

// Marshal encodes the URRID payload.
func (v URRID) Marshal() []byte {
	out := make([]byte, 4)
	putUint32(out, uint32(v))
	return out
}

// UnmarshalURRID decodes a URRID payload.
func UnmarshalURRID(payload []byte) (URRID, error) {
	if len(payload) < 4 {
		return 0, NewInvalidLength("URRID", TypeURRID, 4, len(payload))
	}
	return URRID(getUint32(payload)), nil
}

// ToIe wraps the URRID as a generic Ie.
func (v URRID) ToIe() *Ie { return New(TypeURRID, v.Marshal()) }

// LinkedURRID, 3GPP TS 29.244 clause 8.2.103, names a second URR whose
// measurement this one aggregates with (grounded on
// original_source/src/ie/linked_urr_id.rs).
type LinkedURRID uint32

// NewLinkedURRID constructs a LinkedURRID.
func NewLinkedURRID(v uint32) LinkedURRID { return LinkedURRID(v) }

// Marshal encodes the LinkedURRID payload.
func (v LinkedURRID) Marshal() []byte {
	out := make([]byte, 4)
	putUint32(out, uint32(v))
	return out
}

// UnmarshalLinkedURRID decodes a LinkedURRID payload.
func UnmarshalLinkedURRID(payload []byte) (LinkedURRID, error) {
	if len(payload) < 4 {
		return 0, NewInvalidLength("LinkedURRID", TypeLinkedURRID, 4, len(payload))
	}
	return LinkedURRID(getUint32(payload)), nil
}

// ToIe wraps the LinkedURRID as a generic Ie.
func (v LinkedURRID) ToIe() *Ie { return New(TypeLinkedURRID, v.Marshal()) }
