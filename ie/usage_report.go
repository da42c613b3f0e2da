// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// UsageReport, 3GPP TS 29.244 clauses 7.5.8.3/7.5.9.3, reports a URR's
// accumulated usage. The same field set is reused under three IE type
// codes depending which message carries it (Session Modification Response
// -> UsageReportSMR, Session Deletion Response -> UsageReportSDR, Session
// Report Request -> UsageReportSRR); this codec stores which variant a
// decoded report came from so a round trip re-encodes the same type.
type UsageReportVariant uint8

const (
	UsageReportVariantSMR UsageReportVariant = iota
	UsageReportVariantSDR
	UsageReportVariantSRR
)

func (v UsageReportVariant) ieType() Type {
	switch v {
	case UsageReportVariantSDR:
		return TypeUsageReportSDR
	case UsageReportVariantSRR:
		return TypeUsageReportSRR
	default:
		return TypeUsageReportSMR
	}
}

type UsageReport struct {
	Variant              UsageReportVariant
	URRID                URRID
	URSEQN               uint32
	UsageReportTrigger   UsageReportTrigger
	StartTime            *StartTime
	EndTime              *EndTime
	VolumeMeasurement    *VolumeMeasurement
	DurationMeasurement  *DurationMeasurement
	TimeOfFirstPacket    *EventTimeStamp
	TimeOfLastPacket     *EventTimeStamp
	QueryURRReference    *uint32
}

func (v UsageReport) Marshal() []byte {
	ursqn := make([]byte, 4)
	putUint32(ursqn, v.URSEQN)

	children := []*Ie{
		v.URRID.ToIe(),
		New(TypeURSEQN, ursqn),
		v.UsageReportTrigger.ToIe(),
	}
	if v.StartTime != nil {
		children = append(children, v.StartTime.ToIe())
	}
	if v.EndTime != nil {
		children = append(children, v.EndTime.ToIe())
	}
	if v.VolumeMeasurement != nil {
		children = append(children, v.VolumeMeasurement.ToIe())
	}
	if v.DurationMeasurement != nil {
		children = append(children, v.DurationMeasurement.ToIe())
	}
	if v.TimeOfFirstPacket != nil {
		children = append(children, New(TypeTimeOfFirstPacket, v.TimeOfFirstPacket.Marshal()))
	}
	if v.TimeOfLastPacket != nil {
		children = append(children, New(TypeTimeOfLastPacket, v.TimeOfLastPacket.Marshal()))
	}
	if v.QueryURRReference != nil {
		ref := make([]byte, 4)
		putUint32(ref, *v.QueryURRReference)
		children = append(children, New(TypeQueryURRReference, ref))
	}
	return MarshalAll(children)
}

func unmarshalUsageReport(variant UsageReportVariant, payload []byte) (UsageReport, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return UsageReport{}, err
	}
	t := variant.ieType()

	idIE := findChild(children, TypeURRID)
	if idIE == nil {
		return UsageReport{}, NewMissingMandatoryIe(TypeURRID, t)
	}
	id, err := UnmarshalURRID(idIE.Payload)
	if err != nil {
		return UsageReport{}, err
	}

	seqIE := findChild(children, TypeURSEQN)
	if seqIE == nil {
		return UsageReport{}, NewMissingMandatoryIe(TypeURSEQN, t)
	}
	if len(seqIE.Payload) < 4 {
		return UsageReport{}, NewInvalidLength("URSEQN", TypeURSEQN, 4, len(seqIE.Payload))
	}
	seq := getUint32(seqIE.Payload)

	trigIE := findChild(children, TypeUsageReportTrigger)
	if trigIE == nil {
		return UsageReport{}, NewMissingMandatoryIe(TypeUsageReportTrigger, t)
	}
	trig, err := UnmarshalUsageReportTrigger(trigIE.Payload)
	if err != nil {
		return UsageReport{}, err
	}

	v := UsageReport{Variant: variant, URRID: id, URSEQN: seq, UsageReportTrigger: trig}

	if c := findChild(children, TypeStartTime); c != nil {
		st, err := UnmarshalStartTime(c.Payload)
		if err != nil {
			return UsageReport{}, err
		}
		v.StartTime = &st
	}
	if c := findChild(children, TypeEndTime); c != nil {
		et, err := UnmarshalEndTime(c.Payload)
		if err != nil {
			return UsageReport{}, err
		}
		v.EndTime = &et
	}
	if c := findChild(children, TypeVolumeMeasurement); c != nil {
		vm, err := UnmarshalVolumeMeasurement(c.Payload)
		if err != nil {
			return UsageReport{}, err
		}
		v.VolumeMeasurement = &vm
	}
	if c := findChild(children, TypeDurationMeasurement); c != nil {
		dm, err := UnmarshalDurationMeasurement(c.Payload)
		if err != nil {
			return UsageReport{}, err
		}
		v.DurationMeasurement = &dm
	}
	if c := findChild(children, TypeTimeOfFirstPacket); c != nil {
		ts, err := UnmarshalEventTimeStamp(c.Payload)
		if err != nil {
			return UsageReport{}, err
		}
		v.TimeOfFirstPacket = &ts
	}
	if c := findChild(children, TypeTimeOfLastPacket); c != nil {
		ts, err := UnmarshalEventTimeStamp(c.Payload)
		if err != nil {
			return UsageReport{}, err
		}
		v.TimeOfLastPacket = &ts
	}
	if c := findChild(children, TypeQueryURRReference); c != nil {
		if len(c.Payload) < 4 {
			return UsageReport{}, NewInvalidLength("QueryURRReference", TypeQueryURRReference, 4, len(c.Payload))
		}
		ref := getUint32(c.Payload)
		v.QueryURRReference = &ref
	}

	return v, nil
}

// UnmarshalUsageReportSMR, UnmarshalUsageReportSDR, and
// UnmarshalUsageReportSRR decode the per-message UsageReport variants.
func UnmarshalUsageReportSMR(payload []byte) (UsageReport, error) {
	return unmarshalUsageReport(UsageReportVariantSMR, payload)
}

func UnmarshalUsageReportSDR(payload []byte) (UsageReport, error) {
	return unmarshalUsageReport(UsageReportVariantSDR, payload)
}

func UnmarshalUsageReportSRR(payload []byte) (UsageReport, error) {
	return unmarshalUsageReport(UsageReportVariantSRR, payload)
}

// ToIe wraps the UsageReport as a generic Ie, tagged with its variant's
// IE type.
func (v UsageReport) ToIe() *Ie { return New(v.Variant.ieType(), v.Marshal()) }
