// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// CreateURR, 3GPP TS 29.244 clause 7.5.2.4, is one Usage Reporting Rule:
// a URR ID, the MeasurementMethod and ReportingTriggers that decide what
// and when to measure, and the thresholds/quotas/timers that bound it.
// Grounded directly on original_source/src/ie/create_urr.rs's grouped-IE
// shape.
type CreateURR struct {
	URRID                     URRID
	MeasurementMethod         MeasurementMethod
	ReportingTriggers         ReportingTriggers
	VolumeThreshold           *VolumeThreshold
	VolumeQuota               *VolumeQuota
	TimeThreshold             *TimeThreshold
	TimeQuota                 *TimeQuota
	QuotaHoldingTime          *QuotaHoldingTime
	QuotaValidityTime         *QuotaValidityTime
	MonitoringTime            *MonitoringTime
	SubsequentVolumeThreshold *SubsequentVolumeThreshold
	SubsequentTimeThreshold   *SubsequentTimeThreshold
	InactivityDetectionTime   *InactivityDetectionTime
	LinkedURRID               *LinkedURRID
	AveragingWindow           *AveragingWindow
}

func (v CreateURR) Marshal() []byte {
	children := []*Ie{v.URRID.ToIe(), v.MeasurementMethod.ToIe(), v.ReportingTriggers.ToIe()}
	if v.VolumeThreshold != nil {
		children = append(children, v.VolumeThreshold.ToIe())
	}
	if v.VolumeQuota != nil {
		children = append(children, v.VolumeQuota.ToIe())
	}
	if v.TimeThreshold != nil {
		children = append(children, v.TimeThreshold.ToIe())
	}
	if v.TimeQuota != nil {
		children = append(children, v.TimeQuota.ToIe())
	}
	if v.QuotaHoldingTime != nil {
		children = append(children, v.QuotaHoldingTime.ToIe())
	}
	if v.QuotaValidityTime != nil {
		children = append(children, v.QuotaValidityTime.ToIe())
	}
	if v.MonitoringTime != nil {
		children = append(children, v.MonitoringTime.ToIe())
	}
	if v.SubsequentVolumeThreshold != nil {
		children = append(children, v.SubsequentVolumeThreshold.ToIe())
	}
	if v.SubsequentTimeThreshold != nil {
		children = append(children, v.SubsequentTimeThreshold.ToIe())
	}
	if v.InactivityDetectionTime != nil {
		children = append(children, v.InactivityDetectionTime.ToIe())
	}
	if v.LinkedURRID != nil {
		children = append(children, v.LinkedURRID.ToIe())
	}
	if v.AveragingWindow != nil {
		children = append(children, v.AveragingWindow.ToIe())
	}
	return MarshalAll(children)
}

func UnmarshalCreateURR(payload []byte) (CreateURR, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return CreateURR{}, err
	}

	idIE := findChild(children, TypeURRID)
	if idIE == nil {
		return CreateURR{}, NewMissingMandatoryIe(TypeURRID, TypeCreateURR)
	}
	id, err := UnmarshalURRID(idIE.Payload)
	if err != nil {
		return CreateURR{}, err
	}

	mmIE := findChild(children, TypeMeasurementMethod)
	if mmIE == nil {
		return CreateURR{}, NewMissingMandatoryIe(TypeMeasurementMethod, TypeCreateURR)
	}
	mm, err := UnmarshalMeasurementMethod(mmIE.Payload)
	if err != nil {
		return CreateURR{}, err
	}

	rtIE := findChild(children, TypeReportingTriggers)
	if rtIE == nil {
		return CreateURR{}, NewMissingMandatoryIe(TypeReportingTriggers, TypeCreateURR)
	}
	rt, err := UnmarshalReportingTriggers(rtIE.Payload)
	if err != nil {
		return CreateURR{}, err
	}

	v := CreateURR{URRID: id, MeasurementMethod: mm, ReportingTriggers: rt}

	if c := findChild(children, TypeVolumeThreshold); c != nil {
		vt, err := UnmarshalVolumeThreshold(c.Payload)
		if err != nil {
			return CreateURR{}, err
		}
		v.VolumeThreshold = &vt
	}
	if c := findChild(children, TypeVolumeQuota); c != nil {
		vq, err := UnmarshalVolumeQuota(c.Payload)
		if err != nil {
			return CreateURR{}, err
		}
		v.VolumeQuota = &vq
	}
	if c := findChild(children, TypeTimeThreshold); c != nil {
		tt, err := UnmarshalTimeThreshold(c.Payload)
		if err != nil {
			return CreateURR{}, err
		}
		v.TimeThreshold = &tt
	}
	if c := findChild(children, TypeTimeQuota); c != nil {
		tq, err := UnmarshalTimeQuota(c.Payload)
		if err != nil {
			return CreateURR{}, err
		}
		v.TimeQuota = &tq
	}
	if c := findChild(children, TypeQuotaHoldingTime); c != nil {
		qh, err := UnmarshalQuotaHoldingTime(c.Payload)
		if err != nil {
			return CreateURR{}, err
		}
		v.QuotaHoldingTime = &qh
	}
	if c := findChild(children, TypeQuotaValidityTime); c != nil {
		qv, err := UnmarshalQuotaValidityTime(c.Payload)
		if err != nil {
			return CreateURR{}, err
		}
		v.QuotaValidityTime = &qv
	}
	if c := findChild(children, TypeMonitoringTime); c != nil {
		mt, err := UnmarshalMonitoringTime(c.Payload)
		if err != nil {
			return CreateURR{}, err
		}
		v.MonitoringTime = &mt
	}
	if c := findChild(children, TypeSubsequentVolumeThresh); c != nil {
		svt, err := UnmarshalSubsequentVolumeThreshold(c.Payload)
		if err != nil {
			return CreateURR{}, err
		}
		v.SubsequentVolumeThreshold = &svt
	}
	if c := findChild(children, TypeSubsequentTimeThreshold); c != nil {
		stt, err := UnmarshalSubsequentTimeThreshold(c.Payload)
		if err != nil {
			return CreateURR{}, err
		}
		v.SubsequentTimeThreshold = &stt
	}
	if c := findChild(children, TypeInactivityDetectionTime); c != nil {
		idt, err := UnmarshalInactivityDetectionTime(c.Payload)
		if err != nil {
			return CreateURR{}, err
		}
		v.InactivityDetectionTime = &idt
	}
	if c := findChild(children, TypeLinkedURRID); c != nil {
		lu, err := UnmarshalLinkedURRID(c.Payload)
		if err != nil {
			return CreateURR{}, err
		}
		v.LinkedURRID = &lu
	}
	if c := findChild(children, TypeAveragingWindow); c != nil {
		aw, err := UnmarshalAveragingWindow(c.Payload)
		if err != nil {
			return CreateURR{}, err
		}
		v.AveragingWindow = &aw
	}

	return v, nil
}

func (v CreateURR) ToIe() *Ie { return New(TypeCreateURR, v.Marshal()) }
