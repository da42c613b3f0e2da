// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// This file holds IEs whose payload is a variable-length string or blob.
// For NetworkInstance and ApplicationID the IE's length IS the string's
// length, so there is no separate length prefix to manage -- UnmarshalXxx
// just wraps the payload. SDFFilter and MACAddressesRemoved carry their
// own internal structure, described on each.

// NetworkInstance, 3GPP TS 29.244 clause 8.2.4, names an APN-DNN or other
// local network instance as a variable-length identifier string.
type NetworkInstance string

func (v NetworkInstance) Marshal() []byte { return []byte(v) }
func (v NetworkInstance) ToIe() *Ie       { return New(TypeNetworkInstance, v.Marshal()) }

func UnmarshalNetworkInstance(payload []byte) (NetworkInstance, error) {
	return NetworkInstance(payload), nil
}

// ApplicationID, 3GPP TS 29.244 clause 8.2.25, names an application
// detection filter's application identifier string.
type ApplicationID string

func (v ApplicationID) Marshal() []byte { return []byte(v) }
func (v ApplicationID) ToIe() *Ie       { return New(TypeApplicationID, v.Marshal()) }

func UnmarshalApplicationID(payload []byte) (ApplicationID, error) {
	return ApplicationID(payload), nil
}

// SDFFilter, 3GPP TS 29.244 clause 8.2.5, is a service data flow filter: a
// flags octet and a spare octet, then each field whose flag is set, in
// order -- the flow description (2-octet length prefix plus the
// IPFilterRule string), the 2-octet ToS/traffic class, the 4-octet
// security parameter index, the 3-octet flow label, and the 4-octet SDF
// filter ID.
const (
	sdfFlagFD  = 0x01
	sdfFlagTTC = 0x02
	sdfFlagSPI = 0x04
	sdfFlagFL  = 0x08
	sdfFlagBID = 0x10
)

type SDFFilter struct {
	FlowDescription    string
	HasFlowDescription bool
	ToSTrafficClass    uint16
	HasToSTrafficClass bool
	SecurityParamIdx   uint32
	HasSecurityParamIdx bool
	FlowLabel          uint32 // low 3 octets used
	HasFlowLabel       bool
	SDFFilterID        uint32
	HasSDFFilterID     bool
}

func NewSDFFilterIPFilterRule(rule string) SDFFilter {
	return SDFFilter{FlowDescription: rule, HasFlowDescription: true}
}

func (v SDFFilter) Marshal() []byte {
	var flags byte
	if v.HasFlowDescription {
		flags |= sdfFlagFD
	}
	if v.HasToSTrafficClass {
		flags |= sdfFlagTTC
	}
	if v.HasSecurityParamIdx {
		flags |= sdfFlagSPI
	}
	if v.HasFlowLabel {
		flags |= sdfFlagFL
	}
	if v.HasSDFFilterID {
		flags |= sdfFlagBID
	}
	out := []byte{flags, 0x00}
	if v.HasFlowDescription {
		fd := []byte(v.FlowDescription)
		lenBuf := make([]byte, 2)
		putUint16(lenBuf, uint16(len(fd)))
		out = append(out, lenBuf...)
		out = append(out, fd...)
	}
	if v.HasToSTrafficClass {
		b := make([]byte, 2)
		putUint16(b, v.ToSTrafficClass)
		out = append(out, b...)
	}
	if v.HasSecurityParamIdx {
		b := make([]byte, 4)
		putUint32(b, v.SecurityParamIdx)
		out = append(out, b...)
	}
	if v.HasFlowLabel {
		out = append(out, byte(v.FlowLabel>>16), byte(v.FlowLabel>>8), byte(v.FlowLabel))
	}
	if v.HasSDFFilterID {
		b := make([]byte, 4)
		putUint32(b, v.SDFFilterID)
		out = append(out, b...)
	}
	return out
}

func UnmarshalSDFFilter(payload []byte) (SDFFilter, error) {
	if len(payload) < 2 {
		return SDFFilter{}, NewInvalidLength("SDFFilter", TypeSDFFilter, 2, len(payload))
	}
	flags := payload[0]
	offset := 2
	var v SDFFilter
	if flags&sdfFlagFD != 0 {
		if len(payload) < offset+2 {
			return SDFFilter{}, NewInvalidLength("SDFFilter flow description length", TypeSDFFilter, offset+2, len(payload))
		}
		fdLen := int(getUint16(payload[offset : offset+2]))
		offset += 2
		if len(payload) < offset+fdLen {
			return SDFFilter{}, NewInvalidLength("SDFFilter flow description", TypeSDFFilter, offset+fdLen, len(payload))
		}
		v.FlowDescription = string(payload[offset : offset+fdLen])
		v.HasFlowDescription = true
		offset += fdLen
	}
	if flags&sdfFlagTTC != 0 {
		if len(payload) < offset+2 {
			return SDFFilter{}, NewInvalidLength("SDFFilter ToS traffic class", TypeSDFFilter, offset+2, len(payload))
		}
		v.ToSTrafficClass = getUint16(payload[offset : offset+2])
		v.HasToSTrafficClass = true
		offset += 2
	}
	if flags&sdfFlagSPI != 0 {
		if len(payload) < offset+4 {
			return SDFFilter{}, NewInvalidLength("SDFFilter security parameter index", TypeSDFFilter, offset+4, len(payload))
		}
		v.SecurityParamIdx = getUint32(payload[offset : offset+4])
		v.HasSecurityParamIdx = true
		offset += 4
	}
	if flags&sdfFlagFL != 0 {
		if len(payload) < offset+3 {
			return SDFFilter{}, NewInvalidLength("SDFFilter flow label", TypeSDFFilter, offset+3, len(payload))
		}
		v.FlowLabel = uint32(payload[offset])<<16 | uint32(payload[offset+1])<<8 | uint32(payload[offset+2])
		v.HasFlowLabel = true
		offset += 3
	}
	if flags&sdfFlagBID != 0 {
		if len(payload) < offset+4 {
			return SDFFilter{}, NewInvalidLength("SDFFilter SDF filter id", TypeSDFFilter, offset+4, len(payload))
		}
		v.SDFFilterID = getUint32(payload[offset : offset+4])
		v.HasSDFFilterID = true
	}
	return v, nil
}

func (v SDFFilter) ToIe() *Ie { return New(TypeSDFFilter, v.Marshal()) }

// MACAddressesRemoved, 3GPP TS 29.244 clause 8.2.150, lists the MAC
// addresses an ethernet PDR should stop detecting. Length-prefixed-blob
// family: a count octet followed by 6-octet MAC addresses.
type MACAddressesRemoved struct {
	Addresses [][6]byte
}

func NewMACAddressesRemoved(addrs [][6]byte) MACAddressesRemoved {
	return MACAddressesRemoved{Addresses: addrs}
}

func (v MACAddressesRemoved) Marshal() []byte {
	out := []byte{byte(len(v.Addresses))}
	for _, a := range v.Addresses {
		out = append(out, a[:]...)
	}
	return out
}

func UnmarshalMACAddressesRemoved(payload []byte) (MACAddressesRemoved, error) {
	if len(payload) < 1 {
		return MACAddressesRemoved{}, NewInvalidLength("MACAddressesRemoved", TypeMACAddressesRemoved, 1, len(payload))
	}
	count := int(payload[0])
	rest := payload[1:]
	if len(rest) < count*6 {
		return MACAddressesRemoved{}, NewInvalidLength("MACAddressesRemoved addresses", TypeMACAddressesRemoved, count*6, len(rest))
	}
	var v MACAddressesRemoved
	for i := 0; i < count; i++ {
		var addr [6]byte
		copy(addr[:], rest[i*6:i*6+6])
		v.Addresses = append(v.Addresses, addr)
	}
	return v, nil
}

func (v MACAddressesRemoved) ToIe() *Ie { return New(TypeMACAddressesRemoved, v.Marshal()) }
