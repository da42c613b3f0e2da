// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// This file holds the open-enum family: a single octet naming one of a
// known set of values, where an unrecognized value is not an error -- it
// decodes to the Unknown variant carrying the raw octet, so a peer running
// a newer 3GPP release than this codec doesn't break older receivers.

// MediaTransportProtocol, 3GPP TS 29.244 clause 8.2.224, names the
// transport protocol (RTP et al.) used for a media component PDR.
type MediaTransportProtocol struct {
	known   bool
	value   uint8
	unknown uint8
}

const mtpRTP uint8 = 0

func MediaTransportProtocolRTP() MediaTransportProtocol {
	return MediaTransportProtocol{known: true, value: mtpRTP}
}

func MediaTransportProtocolUnknown(raw uint8) MediaTransportProtocol {
	return MediaTransportProtocol{known: false, unknown: raw}
}

func (v MediaTransportProtocol) IsRTP() bool { return v.known && v.value == mtpRTP }

func (v MediaTransportProtocol) Raw() uint8 {
	if v.known {
		return v.value
	}
	return v.unknown
}

func (v MediaTransportProtocol) Marshal() []byte { return []byte{v.Raw()} }

func UnmarshalMediaTransportProtocol(payload []byte) (MediaTransportProtocol, error) {
	if len(payload) < 1 {
		return MediaTransportProtocol{}, NewInvalidLength("MediaTransportProtocol", TypeMediaTransportProtocol, 1, len(payload))
	}
	if payload[0] == mtpRTP {
		return MediaTransportProtocolRTP(), nil
	}
	return MediaTransportProtocolUnknown(payload[0]), nil
}

func (v MediaTransportProtocol) ToIe() *Ie { return New(TypeMediaTransportProtocol, v.Marshal()) }

// RTPPayloadFormat, 3GPP TS 29.244 clause 8.2.225, names the codec/profile
// carried in the RTP payload of a media component PDR.
type RTPPayloadFormat struct {
	raw uint8
}

func NewRTPPayloadFormat(raw uint8) RTPPayloadFormat { return RTPPayloadFormat{raw: raw} }
func (v RTPPayloadFormat) Raw() uint8                { return v.raw }
func (v RTPPayloadFormat) Marshal() []byte           { return []byte{v.raw} }

func UnmarshalRTPPayloadFormat(payload []byte) (RTPPayloadFormat, error) {
	if len(payload) < 1 {
		return RTPPayloadFormat{}, NewInvalidLength("RTPPayloadFormat", TypeRTPPayloadFormat, 1, len(payload))
	}
	return RTPPayloadFormat{raw: payload[0]}, nil
}

func (v RTPPayloadFormat) ToIe() *Ie { return New(TypeRTPPayloadFormat, v.Marshal()) }

// TransportMode, 3GPP TS 29.244 clause 8.2.226, names the transport mode
// (COMM, ONE-WAY, DUP, REDUNDANT) of a redundant media transport.
type TransportMode struct {
	raw uint8
}

const (
	TransportModeCOMM      uint8 = 0
	TransportModeONEWAY    uint8 = 1
	TransportModeDUP       uint8 = 2
	TransportModeREDUNDANT uint8 = 3
)

func NewTransportMode(raw uint8) TransportMode { return TransportMode{raw: raw} }
func (v TransportMode) Raw() uint8             { return v.raw }
func (v TransportMode) Marshal() []byte        { return []byte{v.raw} }

func UnmarshalTransportMode(payload []byte) (TransportMode, error) {
	if len(payload) < 1 {
		return TransportMode{}, NewInvalidLength("TransportMode", TypeTransportMode, 1, len(payload))
	}
	return TransportMode{raw: payload[0]}, nil
}

func (v TransportMode) ToIe() *Ie { return New(TypeTransportMode, v.Marshal()) }

// UeLevelMeasurementsConfiguration, 3GPP TS 29.244 clause 8.2.233, is a
// single-bit flag (UE-wide QoS monitoring) wrapped as an open enum since
// later releases reserve the remaining bits for future flags.
type UeLevelMeasurementsConfiguration struct {
	raw uint8
}

func NewUeLevelMeasurementsConfiguration(raw uint8) UeLevelMeasurementsConfiguration {
	return UeLevelMeasurementsConfiguration{raw: raw}
}
func (v UeLevelMeasurementsConfiguration) Raw() uint8      { return v.raw }
func (v UeLevelMeasurementsConfiguration) IsQoSMON() bool  { return v.raw&0x01 != 0 }
func (v UeLevelMeasurementsConfiguration) Marshal() []byte { return []byte{v.raw} }

func UnmarshalUeLevelMeasurementsConfiguration(payload []byte) (UeLevelMeasurementsConfiguration, error) {
	if len(payload) < 1 {
		return UeLevelMeasurementsConfiguration{}, NewInvalidLength("UeLevelMeasurementsConfiguration", TypeUeLevelMeasurementsConf, 1, len(payload))
	}
	return UeLevelMeasurementsConfiguration{raw: payload[0]}, nil
}

func (v UeLevelMeasurementsConfiguration) ToIe() *Ie {
	return New(TypeUeLevelMeasurementsConf, v.Marshal())
}

// DscpToPpiMappingInformation, 3GPP TS 29.244 clause 8.2.236, maps a
// Paging Policy Indicator value to the DSCP it applies to: a repeating
// 2-octet list of (PPI(6 bits), DSCP(6 bits)) pairs packed into a 12-bit
// field each, so this codec stores the pairs decoded rather than the raw
// bit-packed form.
type DscpToPpiMapping struct {
	PPI  uint8
	DSCP uint8
}

type DscpToPpiMappingInformation struct {
	Mappings []DscpToPpiMapping
}

func NewDscpToPpiMappingInformation(mappings []DscpToPpiMapping) DscpToPpiMappingInformation {
	return DscpToPpiMappingInformation{Mappings: mappings}
}

// Marshal encodes each mapping as 2 octets holding a big-endian 12-bit
// value: PPI in bits 11-6 and DSCP in bits 5-0, so the top 4 bits of the
// first octet are always 0.
func (v DscpToPpiMappingInformation) Marshal() []byte {
	out := make([]byte, 0, len(v.Mappings)*2)
	for _, m := range v.Mappings {
		packed := uint16(m.PPI&0x3F)<<6 | uint16(m.DSCP&0x3F)
		b := make([]byte, 2)
		putUint16(b, packed)
		out = append(out, b...)
	}
	return out
}

func UnmarshalDscpToPpiMappingInformation(payload []byte) (DscpToPpiMappingInformation, error) {
	if len(payload)%2 != 0 {
		return DscpToPpiMappingInformation{}, NewInvalidLength("DscpToPpiMappingInformation", TypeDscpToPpiMappingInfo, len(payload)+1, len(payload))
	}
	var out DscpToPpiMappingInformation
	for offset := 0; offset < len(payload); offset += 2 {
		packed := getUint16(payload[offset : offset+2])
		out.Mappings = append(out.Mappings, DscpToPpiMapping{
			PPI:  uint8(packed >> 6 & 0x3F),
			DSCP: uint8(packed & 0x3F),
		})
	}
	return out, nil
}

func (v DscpToPpiMappingInformation) ToIe() *Ie {
	return New(TypeDscpToPpiMappingInfo, v.Marshal())
}
