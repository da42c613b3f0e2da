// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

// Package ie implements the Information Element codec for the Packet
// Forwarding Control Protocol (PFCP), 3GPP TS 29.244. An Ie is the generic
// TLV envelope every typed IE converts to and from; Type dispatches decode
// to the right typed structure.
package ie

import "encoding/binary"

// Type is an Information Element type code, 3GPP TS 29.244 table 8.1.2-1.
// Values >= enterpriseBit carry a 2-octet Enterprise ID immediately after
// the 4-octet TLV header.
type Type uint16

const enterpriseBit Type = 0x8000

// IsEnterprise reports whether t is a vendor-specific IE type requiring the
// enterprise-ID extension on the wire.
func (t Type) IsEnterprise() bool {
	return t&enterpriseBit != 0
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Ie is the generic, untyped form of an Information Element: a type code
// and its payload octets, with no interpretation applied. It is the
// universal shape on the wire and what UnmarshalAll yields for each child
// of a grouped payload. The grouped-IE decoders in this package keep only
// the children their typed fields name; any other child is dropped.
type Ie struct {
	Type         Type
	EnterpriseID uint16
	Payload      []byte
}

// New wraps payload as a generic (non-enterprise) Ie.
func New(t Type, payload []byte) *Ie {
	return &Ie{Type: t, Payload: payload}
}

// NewEnterprise wraps payload as a vendor-specific Ie.
func NewEnterprise(t Type, enterpriseID uint16, payload []byte) *Ie {
	return &Ie{Type: t | enterpriseBit, EnterpriseID: enterpriseID, Payload: payload}
}

// Marshal encodes the generic TLV envelope: 2-octet type, 2-octet length,
// optional 2-octet enterprise ID, then payload. Length never counts the
// enterprise-ID extension, per 3GPP TS 29.244 clause 8.1.1.
func (ie *Ie) Marshal() []byte {
	hdrLen := 4
	if ie.Type.IsEnterprise() {
		hdrLen = 6
	}
	out := make([]byte, hdrLen+len(ie.Payload))
	binary.BigEndian.PutUint16(out[0:2], uint16(ie.Type))
	binary.BigEndian.PutUint16(out[2:4], uint16(len(ie.Payload)))
	if ie.Type.IsEnterprise() {
		binary.BigEndian.PutUint16(out[4:6], ie.EnterpriseID)
	}
	copy(out[hdrLen:], ie.Payload)
	return out
}

// Unmarshal decodes a single Ie from the front of data, returning it and
// the number of octets consumed. It does not validate payload contents;
// that happens in the typed decoders.
func Unmarshal(data []byte) (ie *Ie, consumed int, err error) {
	if len(data) < 4 {
		return nil, 0, NewTlvTruncated(0, 4, len(data))
	}
	t := Type(binary.BigEndian.Uint16(data[0:2]))
	length := int(binary.BigEndian.Uint16(data[2:4]))

	hdrLen := 4
	var enterpriseID uint16
	if t.IsEnterprise() {
		hdrLen = 6
		if len(data) < hdrLen {
			return nil, 0, NewTlvTruncated(0, hdrLen, len(data))
		}
		enterpriseID = binary.BigEndian.Uint16(data[4:6])
	}

	total := hdrLen + length
	if len(data) < total {
		return nil, 0, NewTlvTruncated(hdrLen, length, len(data)-hdrLen)
	}

	payload := make([]byte, length)
	copy(payload, data[hdrLen:total])

	return &Ie{Type: t, EnterpriseID: enterpriseID, Payload: payload}, total, nil
}

// MarshalAll concatenates the Marshal output of each child in order. This
// is the single reusable substrate every grouped IE's Marshal calls.
func MarshalAll(children []*Ie) []byte {
	var out []byte
	for _, c := range children {
		out = append(out, c.Marshal()...)
	}
	return out
}

// Iter is a lazy, finite iterator over TLV records in a grouped IE's or a
// message's payload. Well-formedness is checked one record at a time: a
// declared length exceeding what remains yields exactly one TlvTruncated
// error, after which the iterator is exhausted.
type Iter struct {
	buf []byte
	err error
}

// NewIter returns an iterator over the TLV records in buf.
func NewIter(buf []byte) *Iter {
	return &Iter{buf: buf}
}

// Next returns the next Ie, or nil when the buffer is exhausted or a
// truncation error has already been yielded. Callers must check Err after
// Next returns nil.
func (it *Iter) Next() *Ie {
	if it.err != nil || len(it.buf) == 0 {
		return nil
	}
	rec, consumed, err := Unmarshal(it.buf)
	if err != nil {
		it.err = err
		return nil
	}
	it.buf = it.buf[consumed:]
	return rec
}

// Err returns the truncation error, if the iterator stopped because of one.
func (it *Iter) Err() error {
	return it.err
}

// UnmarshalAll drains an Iter into a slice, for callers that want every
// child IE rather than incremental binning.
func UnmarshalAll(buf []byte) ([]*Ie, error) {
	it := NewIter(buf)
	var out []*Ie
	for {
		rec := it.Next()
		if rec == nil {
			break
		}
		out = append(out, rec)
	}
	if it.Err() != nil {
		return nil, it.Err()
	}
	return out, nil
}
