// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// This file holds the flag-bitmap family of IEs: a small fixed-width
// integer whose individual bits are independently meaningful. Unlike the
// strict enums elsewhere in this package, an unrecognized bit in one of
// these is not a decode error -- forward compatibility means a peer may
// set a bit this codec's 3GPP release doesn't name, and the decoders keep
// the whole value, so such a bit survives a decode/re-encode round trip
// (clause 4.3's open-flags rule).

// ApplyAction, 3GPP TS 29.244 clause 8.2.26, tells a FAR what to do with a
// matched packet: forward, drop, buffer, notify the CP function, duplicate,
// or redirect it.
type ApplyAction uint16

const (
	ApplyActionDrop   ApplyAction = 1 << 0
	ApplyActionForward ApplyAction = 1 << 1
	ApplyActionBuffer  ApplyAction = 1 << 2
	ApplyActionNotifyCP ApplyAction = 1 << 3
	ApplyActionDuplicate ApplyAction = 1 << 4
	ApplyActionIPReplication ApplyAction = 1 << 5
	ApplyActionDFRT          ApplyAction = 1 << 6
)

func (a ApplyAction) Has(bit ApplyAction) bool { return a&bit != 0 }

// Marshal encodes the ApplyAction payload (2 octets on the wire; only the
// low octet is used by the bits named above, the rest are reserved for
// later 3GPP releases and round-trip transparently).
func (a ApplyAction) Marshal() []byte {
	out := make([]byte, 2)
	putUint16(out, uint16(a))
	return out
}

// UnmarshalApplyAction decodes an ApplyAction payload.
func UnmarshalApplyAction(payload []byte) (ApplyAction, error) {
	if len(payload) < 2 {
		return 0, NewInvalidLength("ApplyAction", TypeApplyAction, 2, len(payload))
	}
	return ApplyAction(getUint16(payload[:2])), nil
}

// ToIe wraps the ApplyAction as a generic Ie.
func (a ApplyAction) ToIe() *Ie { return New(TypeApplyAction, a.Marshal()) }

// CPFunctionFeatures, 3GPP TS 29.244 clause 8.2.64, advertises which
// optional features the CP function's PFCP association supports.
type CPFunctionFeatures uint8

const (
	CPFunctionFeatureLoad  CPFunctionFeatures = 1 << 0
	CPFunctionFeatureOvrl  CPFunctionFeatures = 1 << 1
	CPFunctionFeatureEPFAR CPFunctionFeatures = 1 << 2
	CPFunctionFeatureSSet  CPFunctionFeatures = 1 << 3
)

func (c CPFunctionFeatures) Has(bit CPFunctionFeatures) bool { return c&bit != 0 }

func (c CPFunctionFeatures) Marshal() []byte { return []byte{byte(c)} }

func UnmarshalCPFunctionFeatures(payload []byte) (CPFunctionFeatures, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("CPFunctionFeatures", TypeCPFunctionFeatures, 1, len(payload))
	}
	return CPFunctionFeatures(payload[0]), nil
}

func (c CPFunctionFeatures) ToIe() *Ie { return New(TypeCPFunctionFeatures, c.Marshal()) }

// UPFunctionFeatures, 3GPP TS 29.244 clause 8.2.63, advertises which
// optional features the UP function's PFCP association supports. Wire
// width is 2 octets (with a 3rd added in later releases); this codec
// decodes and re-encodes the first 2 octets only, and drops any further
// octets the peer sends.
type UPFunctionFeatures uint16

const (
	UPFunctionFeatureBUCP UPFunctionFeatures = 1 << 0
	UPFunctionFeatureDDND UPFunctionFeatures = 1 << 1
	UPFunctionFeatureDLBD UPFunctionFeatures = 1 << 2
	UPFunctionFeatureTRST UPFunctionFeatures = 1 << 3
	UPFunctionFeatureFTUP UPFunctionFeatures = 1 << 4
	UPFunctionFeaturePFDM UPFunctionFeatures = 1 << 5
	UPFunctionFeatureHEEU UPFunctionFeatures = 1 << 6
	UPFunctionFeatureTREU UPFunctionFeatures = 1 << 7
)

func (u UPFunctionFeatures) Has(bit UPFunctionFeatures) bool { return u&bit != 0 }

func (u UPFunctionFeatures) Marshal() []byte {
	out := make([]byte, 2)
	putUint16(out, uint16(u))
	return out
}

func UnmarshalUPFunctionFeatures(payload []byte) (UPFunctionFeatures, error) {
	if len(payload) < 2 {
		return 0, NewInvalidLength("UPFunctionFeatures", TypeUPFunctionFeatures, 2, len(payload))
	}
	return UPFunctionFeatures(getUint16(payload[:2])), nil
}

func (u UPFunctionFeatures) ToIe() *Ie { return New(TypeUPFunctionFeatures, u.Marshal()) }

// OCIFlags, 3GPP TS 29.244 clause 8.2.187, signals whether the Offending IE
// Information reported alongside a rejection should be associated with the
// whole association rather than just the rejected request.
type OCIFlags uint8

const OCIFlagAOCI OCIFlags = 1 << 0

func (o OCIFlags) Has(bit OCIFlags) bool { return o&bit != 0 }

func (o OCIFlags) Marshal() []byte { return []byte{byte(o)} }

func UnmarshalOCIFlags(payload []byte) (OCIFlags, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("OCIFlags", TypeOCIFlags, 1, len(payload))
	}
	return OCIFlags(payload[0]), nil
}

func (o OCIFlags) ToIe() *Ie { return New(TypeOCIFlags, o.Marshal()) }

// MeasurementMethod, 3GPP TS 29.244 clause 8.2.65, tells a URR which of
// duration, volume, and event count it should measure.
type MeasurementMethod uint8

const (
	MeasurementMethodDuration MeasurementMethod = 1 << 0
	MeasurementMethodVolume   MeasurementMethod = 1 << 1
	MeasurementMethodEvent    MeasurementMethod = 1 << 2
)

func (m MeasurementMethod) Has(bit MeasurementMethod) bool { return m&bit != 0 }

func (m MeasurementMethod) Marshal() []byte { return []byte{byte(m)} }

func UnmarshalMeasurementMethod(payload []byte) (MeasurementMethod, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("MeasurementMethod", TypeMeasurementMethod, 1, len(payload))
	}
	return MeasurementMethod(payload[0]), nil
}

func (m MeasurementMethod) ToIe() *Ie { return New(TypeMeasurementMethod, m.Marshal()) }

// NodeReportType, 3GPP TS 29.244 clause 8.2.69, classifies what kind of
// unsolicited report a Node Report Request carries.
type NodeReportType uint8

const (
	NodeReportTypeUPFR   NodeReportType = 1 << 0
	NodeReportTypeUPRR   NodeReportType = 1 << 1
	NodeReportTypeCKDR   NodeReportType = 1 << 2
	NodeReportTypeGPQR   NodeReportType = 1 << 3
)

func (n NodeReportType) Has(bit NodeReportType) bool { return n&bit != 0 }

func (n NodeReportType) Marshal() []byte { return []byte{byte(n)} }

func UnmarshalNodeReportType(payload []byte) (NodeReportType, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("NodeReportType", TypeNodeReportType, 1, len(payload))
	}
	return NodeReportType(payload[0]), nil
}

func (n NodeReportType) ToIe() *Ie { return New(TypeNodeReportType, n.Marshal()) }

// ReportType, 3GPP TS 29.244 clause 8.2.61, classifies what kind of
// unsolicited report a Session Report Request carries.
type ReportType uint8

const (
	ReportTypeDLDR ReportType = 1 << 0 // downlink data report
	ReportTypeUSAR ReportType = 1 << 1 // usage report
	ReportTypeERIR ReportType = 1 << 2 // error indication report
	ReportTypeUPIR ReportType = 1 << 3 // user plane inactivity report
)

func (r ReportType) Has(bit ReportType) bool { return r&bit != 0 }

func (r ReportType) Marshal() []byte { return []byte{byte(r)} }

func UnmarshalReportType(payload []byte) (ReportType, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("ReportType", TypeReportType, 1, len(payload))
	}
	return ReportType(payload[0]), nil
}

func (r ReportType) ToIe() *Ie { return New(TypeReportType, r.Marshal()) }

// PFCPSMReqFlags, 3GPP TS 29.244 clause 8.2.53, carries per-request flags
// on a Session Modification Request (drop buffered packets, restart
// buffering on no QoS, send end marker packets).
type PFCPSMReqFlags uint8

const (
	PFCPSMReqFlagDROBU PFCPSMReqFlags = 1 << 0
	PFCPSMReqFlagSNDEM PFCPSMReqFlags = 1 << 1
	PFCPSMReqFlagQAURR PFCPSMReqFlags = 1 << 2
)

func (p PFCPSMReqFlags) Has(bit PFCPSMReqFlags) bool { return p&bit != 0 }

func (p PFCPSMReqFlags) Marshal() []byte { return []byte{byte(p)} }

func UnmarshalPFCPSMReqFlags(payload []byte) (PFCPSMReqFlags, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("PFCPSMReqFlags", TypePFCPSMReqFlags, 1, len(payload))
	}
	return PFCPSMReqFlags(payload[0]), nil
}

func (p PFCPSMReqFlags) ToIe() *Ie { return New(TypePFCPSMReqFlags, p.Marshal()) }

// PFCPSRReqFlags, 3GPP TS 29.244 clause 8.2.54, carries per-request flags
// on a Session Report Request (PSDBU: PFCP Session Deleted By the UP
// function).
type PFCPSRReqFlags uint8

const PFCPSRReqFlagPSDBU PFCPSRReqFlags = 1 << 0

func (p PFCPSRReqFlags) Has(bit PFCPSRReqFlags) bool { return p&bit != 0 }

func (p PFCPSRReqFlags) Marshal() []byte { return []byte{byte(p)} }

func UnmarshalPFCPSRReqFlags(payload []byte) (PFCPSRReqFlags, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("PFCPSRReqFlags", TypePFCPSRReqFlags, 1, len(payload))
	}
	return PFCPSRReqFlags(payload[0]), nil
}

func (p PFCPSRReqFlags) ToIe() *Ie { return New(TypePFCPSRReqFlags, p.Marshal()) }

// UsageReportTrigger, 3GPP TS 29.244 clause 8.2.39, names which condition(s)
// caused a usage report to be generated. Widest bitmap in the protocol (3
// octets); modeled here as a uint32 with the top octet unused.
type UsageReportTrigger uint32

const (
	UsageReportTriggerPERIO UsageReportTrigger = 1 << 0
	UsageReportTriggerVOLTH UsageReportTrigger = 1 << 1
	UsageReportTriggerTIMTH UsageReportTrigger = 1 << 2
	UsageReportTriggerQUHTI UsageReportTrigger = 1 << 3
	UsageReportTriggerSTART UsageReportTrigger = 1 << 4
	UsageReportTriggerSTOPT UsageReportTrigger = 1 << 5
	UsageReportTriggerDROTH UsageReportTrigger = 1 << 6
	UsageReportTriggerIMMER UsageReportTrigger = 1 << 7
	UsageReportTriggerVOLQU UsageReportTrigger = 1 << 8
	UsageReportTriggerTIMQU UsageReportTrigger = 1 << 9
	UsageReportTriggerLIUSA UsageReportTrigger = 1 << 10
	UsageReportTriggerTERMR UsageReportTrigger = 1 << 11
	UsageReportTriggerMONIT UsageReportTrigger = 1 << 12
)

func (u UsageReportTrigger) Has(bit UsageReportTrigger) bool { return u&bit != 0 }

// Marshal encodes the UsageReportTrigger payload as 3 big-endian octets.
func (u UsageReportTrigger) Marshal() []byte {
	return []byte{byte(u >> 16), byte(u >> 8), byte(u)}
}

// UnmarshalUsageReportTrigger decodes a UsageReportTrigger payload.
func UnmarshalUsageReportTrigger(payload []byte) (UsageReportTrigger, error) {
	if len(payload) < 3 {
		return 0, NewInvalidLength("UsageReportTrigger", TypeUsageReportTrigger, 3, len(payload))
	}
	return UsageReportTrigger(payload[0])<<16 | UsageReportTrigger(payload[1])<<8 | UsageReportTrigger(payload[2]), nil
}

func (u UsageReportTrigger) ToIe() *Ie { return New(TypeUsageReportTrigger, u.Marshal()) }

// ReportingTriggers, 3GPP TS 29.244 clause 8.2.40, names which condition(s)
// a URR should watch for and report on as they occur (as opposed to
// UsageReportTrigger, which names why a report already in hand was sent).
type ReportingTriggers uint32

const (
	ReportingTriggerLIUSA ReportingTriggers = 1 << 0
	ReportingTriggerDROTH ReportingTriggers = 1 << 1
	ReportingTriggerSTOPT ReportingTriggers = 1 << 2
	ReportingTriggerSTART ReportingTriggers = 1 << 3
	ReportingTriggerQUHTI ReportingTriggers = 1 << 4
	ReportingTriggerTIMTH ReportingTriggers = 1 << 5
	ReportingTriggerVOLTH ReportingTriggers = 1 << 6
	ReportingTriggerPERIO ReportingTriggers = 1 << 7
	ReportingTriggerQUVTI ReportingTriggers = 1 << 8
	ReportingTriggerIPMJL ReportingTriggers = 1 << 9
	ReportingTriggerEVETH ReportingTriggers = 1 << 10
	ReportingTriggerMACAR ReportingTriggers = 1 << 11
	ReportingTriggerEVEQU ReportingTriggers = 1 << 12
	ReportingTriggerTEBUR ReportingTriggers = 1 << 13
	ReportingTriggerIPMJL6 ReportingTriggers = 1 << 14
)

func (r ReportingTriggers) Has(bit ReportingTriggers) bool { return r&bit != 0 }

// Marshal encodes the ReportingTriggers payload as 3 big-endian octets.
func (r ReportingTriggers) Marshal() []byte {
	return []byte{byte(r >> 16), byte(r >> 8), byte(r)}
}

// UnmarshalReportingTriggers decodes a ReportingTriggers payload.
func UnmarshalReportingTriggers(payload []byte) (ReportingTriggers, error) {
	if len(payload) < 3 {
		return 0, NewInvalidLength("ReportingTriggers", TypeReportingTriggers, 3, len(payload))
	}
	return ReportingTriggers(payload[0])<<16 | ReportingTriggers(payload[1])<<8 | ReportingTriggers(payload[2]), nil
}

func (r ReportingTriggers) ToIe() *Ie { return New(TypeReportingTriggers, r.Marshal()) }
