// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// qfiMask keeps the low 6 bits of the octet; the top 2 bits are spare and
// discarded on both encode and decode without error, per this codec's
// scalar-IE convention for masked sub-byte fields.
const qfiMask = 0x3F

// QFI is the QoS Flow Identifier, 3GPP TS 29.244 clause 8.2.89 / 3GPP TS
// 38.415: a 1-octet field whose low 6 bits carry the flow identifier
// (value range 0-63).
type QFI uint8

// NewQFI constructs a QFI, masking off the spare bits.
func NewQFI(v uint8) QFI { return QFI(v & qfiMask) }

// Marshal encodes the QFI payload.
func (v QFI) Marshal() []byte { return []byte{byte(v) & qfiMask} }

// UnmarshalQFI decodes a QFI payload, discarding the spare bit.
func UnmarshalQFI(payload []byte) (QFI, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("QFI", TypeQFI, 1, len(payload))
	}
	return QFI(payload[0] & qfiMask), nil
}

// ToIe wraps the QFI as a generic Ie.
func (v QFI) ToIe() *Ie { return New(TypeQFI, v.Marshal()) }
