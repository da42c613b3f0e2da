// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// This file holds the family of plain fixed-width scalar IEs used as
// thresholds, quotas, and timers throughout the URR/measurement model.
// Each follows the same shape as Precedence: a bare integer with a
// Marshal/Unmarshal/ToIe trio, so they're grouped here rather than given
// one file apiece.

func marshalU32(v uint32) []byte {
	out := make([]byte, 4)
	putUint32(out, v)
	return out
}

func unmarshalU32(name string, t Type, payload []byte) (uint32, error) {
	if len(payload) < 4 {
		return 0, NewInvalidLength(name, t, 4, len(payload))
	}
	return getUint32(payload), nil
}

// TimeThreshold, 3GPP TS 29.244 clause 8.2.42, is a duration in seconds
// after which a URR reports.
type TimeThreshold uint32

func NewTimeThreshold(v uint32) TimeThreshold  { return TimeThreshold(v) }
func (v TimeThreshold) Marshal() []byte        { return marshalU32(uint32(v)) }
func (v TimeThreshold) ToIe() *Ie              { return New(TypeTimeThreshold, v.Marshal()) }
func UnmarshalTimeThreshold(p []byte) (TimeThreshold, error) {
	v, err := unmarshalU32("TimeThreshold", TypeTimeThreshold, p)
	return TimeThreshold(v), err
}

// TimeQuota, 3GPP TS 29.244 clause 8.2.104, is a duration quota in seconds.
type TimeQuota uint32

func NewTimeQuota(v uint32) TimeQuota { return TimeQuota(v) }
func (v TimeQuota) Marshal() []byte   { return marshalU32(uint32(v)) }
func (v TimeQuota) ToIe() *Ie         { return New(TypeTimeQuota, v.Marshal()) }
func UnmarshalTimeQuota(p []byte) (TimeQuota, error) {
	v, err := unmarshalU32("TimeQuota", TypeTimeQuota, p)
	return TimeQuota(v), err
}

// SubsequentTimeThreshold, 3GPP TS 29.244 clause 8.2.46, is the
// TimeThreshold to apply after the first one fires.
type SubsequentTimeThreshold uint32

func NewSubsequentTimeThreshold(v uint32) SubsequentTimeThreshold { return SubsequentTimeThreshold(v) }
func (v SubsequentTimeThreshold) Marshal() []byte                 { return marshalU32(uint32(v)) }
func (v SubsequentTimeThreshold) ToIe() *Ie {
	return New(TypeSubsequentTimeThreshold, v.Marshal())
}
func UnmarshalSubsequentTimeThreshold(p []byte) (SubsequentTimeThreshold, error) {
	v, err := unmarshalU32("SubsequentTimeThreshold", TypeSubsequentTimeThreshold, p)
	return SubsequentTimeThreshold(v), err
}

// SubsequentTimeQuota, 3GPP TS 29.244 clause 8.2.108, is the TimeQuota to
// apply after the first one is exhausted.
type SubsequentTimeQuota uint32

func NewSubsequentTimeQuota(v uint32) SubsequentTimeQuota { return SubsequentTimeQuota(v) }
func (v SubsequentTimeQuota) Marshal() []byte             { return marshalU32(uint32(v)) }
func (v SubsequentTimeQuota) ToIe() *Ie                   { return New(TypeSubsequentTimeQuota, v.Marshal()) }
func UnmarshalSubsequentTimeQuota(p []byte) (SubsequentTimeQuota, error) {
	v, err := unmarshalU32("SubsequentTimeQuota", TypeSubsequentTimeQuota, p)
	return SubsequentTimeQuota(v), err
}

// InactivityDetectionTime, 3GPP TS 29.244 clause 8.2.45, is the idle
// duration in seconds after which a PDR's traffic is considered inactive.
type InactivityDetectionTime uint32

func NewInactivityDetectionTime(v uint32) InactivityDetectionTime {
	return InactivityDetectionTime(v)
}
func (v InactivityDetectionTime) Marshal() []byte { return marshalU32(uint32(v)) }
func (v InactivityDetectionTime) ToIe() *Ie {
	return New(TypeInactivityDetectionTime, v.Marshal())
}
func UnmarshalInactivityDetectionTime(p []byte) (InactivityDetectionTime, error) {
	v, err := unmarshalU32("InactivityDetectionTime", TypeInactivityDetectionTime, p)
	return InactivityDetectionTime(v), err
}

// QuotaHoldingTime, 3GPP TS 29.244 clause 8.2.106, is the duration a
// URR's quota is held without traffic before it is reclaimed.
type QuotaHoldingTime uint32

func NewQuotaHoldingTime(v uint32) QuotaHoldingTime { return QuotaHoldingTime(v) }
func (v QuotaHoldingTime) Marshal() []byte          { return marshalU32(uint32(v)) }
func (v QuotaHoldingTime) ToIe() *Ie                { return New(TypeQuotaHoldingTime, v.Marshal()) }
func UnmarshalQuotaHoldingTime(p []byte) (QuotaHoldingTime, error) {
	v, err := unmarshalU32("QuotaHoldingTime", TypeQuotaHoldingTime, p)
	return QuotaHoldingTime(v), err
}

// QuotaValidityTime, 3GPP TS 29.244 clause 8.2.181, bounds how long a URR's
// quota remains valid regardless of usage.
type QuotaValidityTime uint32

func NewQuotaValidityTime(v uint32) QuotaValidityTime { return QuotaValidityTime(v) }
func (v QuotaValidityTime) Marshal() []byte           { return marshalU32(uint32(v)) }
func (v QuotaValidityTime) ToIe() *Ie                 { return New(TypeQuotaValidityTime, v.Marshal()) }
func UnmarshalQuotaValidityTime(p []byte) (QuotaValidityTime, error) {
	v, err := unmarshalU32("QuotaValidityTime", TypeQuotaValidityTime, p)
	return QuotaValidityTime(v), err
}

// AveragingWindow, 3GPP TS 29.244 clause 8.2.154, is the averaging period
// in milliseconds used for derived-throughput QoS monitoring.
type AveragingWindow uint32

func NewAveragingWindow(v uint32) AveragingWindow { return AveragingWindow(v) }
func (v AveragingWindow) Marshal() []byte         { return marshalU32(uint32(v)) }
func (v AveragingWindow) ToIe() *Ie               { return New(TypeAveragingWindow, v.Marshal()) }
func UnmarshalAveragingWindow(p []byte) (AveragingWindow, error) {
	v, err := unmarshalU32("AveragingWindow", TypeAveragingWindow, p)
	return AveragingWindow(v), err
}

// TimeOffsetThreshold, 3GPP TS 29.244 clause 8.2.215, is the maximum
// tolerated deviation, in milliseconds, between expected and actual packet
// arrival time for N6 jitter measurement.
type TimeOffsetThreshold uint32

func NewTimeOffsetThreshold(v uint32) TimeOffsetThreshold { return TimeOffsetThreshold(v) }
func (v TimeOffsetThreshold) Marshal() []byte             { return marshalU32(uint32(v)) }
func (v TimeOffsetThreshold) ToIe() *Ie {
	return New(TypeTimeOffsetThreshold, v.Marshal())
}
func UnmarshalTimeOffsetThreshold(p []byte) (TimeOffsetThreshold, error) {
	v, err := unmarshalU32("TimeOffsetThreshold", TypeTimeOffsetThreshold, p)
	return TimeOffsetThreshold(v), err
}

// NumberOfReports, 3GPP TS 29.244 clause 8.2.182, is a 16-bit count of
// usage reports batched within one message.
type NumberOfReports uint16

func NewNumberOfReports(v uint16) NumberOfReports { return NumberOfReports(v) }
func (v NumberOfReports) Marshal() []byte {
	out := make([]byte, 2)
	putUint16(out, uint16(v))
	return out
}
func (v NumberOfReports) ToIe() *Ie { return New(TypeNumberOfReports, v.Marshal()) }
func UnmarshalNumberOfReports(payload []byte) (NumberOfReports, error) {
	if len(payload) < 2 {
		return 0, NewInvalidLength("NumberOfReports", TypeNumberOfReports, 2, len(payload))
	}
	return NumberOfReports(getUint16(payload)), nil
}

// GracefulReleasePeriod, 3GPP TS 29.244 clause 8.2.184, encodes a release
// timer the same way GTP timers do: 5-bit value, 3-bit unit (2-second
// steps, 1-minute steps, 10-minute steps, hours, or 10-hour steps).
type GracefulReleasePeriod struct {
	Unit  uint8
	Value uint8
}

func NewGracefulReleasePeriod(unit, value uint8) GracefulReleasePeriod {
	return GracefulReleasePeriod{Unit: unit & 0x07, Value: value & 0x1F}
}

func (v GracefulReleasePeriod) Marshal() []byte {
	return []byte{(v.Unit&0x07)<<5 | (v.Value & 0x1F)}
}

func UnmarshalGracefulReleasePeriod(payload []byte) (GracefulReleasePeriod, error) {
	if len(payload) < 1 {
		return GracefulReleasePeriod{}, NewInvalidLength("GracefulReleasePeriod", TypeGracefulReleasePeriod, 1, len(payload))
	}
	return GracefulReleasePeriod{Unit: payload[0] >> 5, Value: payload[0] & 0x1F}, nil
}

func (v GracefulReleasePeriod) ToIe() *Ie { return New(TypeGracefulReleasePeriod, v.Marshal()) }
