// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

import "time"

// RecoveryTimeStamp, 3GPP TS 29.244 clause 8.2.24, carries the time the
// sending node's PFCP function last (re)started, as 3GPP NTP seconds
// (epoch 1900-01-01 UTC, not Unix time).
type RecoveryTimeStamp struct {
	Time time.Time
}

// NewRecoveryTimeStamp constructs a RecoveryTimeStamp from a wall-clock time.
func NewRecoveryTimeStamp(t time.Time) RecoveryTimeStamp {
	return RecoveryTimeStamp{Time: t}
}

// Marshal encodes the RecoveryTimeStamp payload.
func (v RecoveryTimeStamp) Marshal() []byte {
	out := make([]byte, 4)
	putUint32(out, timeToNTP32(v.Time))
	return out
}

// UnmarshalRecoveryTimeStamp decodes a RecoveryTimeStamp payload.
func UnmarshalRecoveryTimeStamp(payload []byte) (RecoveryTimeStamp, error) {
	if len(payload) < 4 {
		return RecoveryTimeStamp{}, NewInvalidLength("RecoveryTimeStamp", TypeRecoveryTimeStamp, 4, len(payload))
	}
	return RecoveryTimeStamp{Time: ntp32ToTime(getUint32(payload))}, nil
}

// ToIe wraps the RecoveryTimeStamp as a generic Ie.
func (v RecoveryTimeStamp) ToIe() *Ie { return New(TypeRecoveryTimeStamp, v.Marshal()) }

// EventTimeStamp, 3GPP TS 29.244 clause 8.2.146, records when an ethernet
// traffic event occurred, same NTP32 wire format as RecoveryTimeStamp
// (grounded on original_source/src/ie/event_time_stamp.rs).
type EventTimeStamp struct {
	Time time.Time
}

// NewEventTimeStamp constructs an EventTimeStamp.
func NewEventTimeStamp(t time.Time) EventTimeStamp { return EventTimeStamp{Time: t} }

// Marshal encodes the EventTimeStamp payload.
func (v EventTimeStamp) Marshal() []byte {
	out := make([]byte, 4)
	putUint32(out, timeToNTP32(v.Time))
	return out
}

// UnmarshalEventTimeStamp decodes an EventTimeStamp payload.
func UnmarshalEventTimeStamp(payload []byte) (EventTimeStamp, error) {
	if len(payload) < 4 {
		return EventTimeStamp{}, NewInvalidLength("EventTimeStamp", TypeEventTimeStamp, 4, len(payload))
	}
	return EventTimeStamp{Time: ntp32ToTime(getUint32(payload))}, nil
}

// ToIe wraps the EventTimeStamp as a generic Ie.
func (v EventTimeStamp) ToIe() *Ie { return New(TypeEventTimeStamp, v.Marshal()) }

// MonitoringTime, 3GPP TS 29.244 clause 8.2.32, is the NTP32 time at which
// a URR's monitored-period usage report boundary falls.
type MonitoringTime struct {
	Time time.Time
}

// NewMonitoringTime constructs a MonitoringTime.
func NewMonitoringTime(t time.Time) MonitoringTime { return MonitoringTime{Time: t} }

// Marshal encodes the MonitoringTime payload.
func (v MonitoringTime) Marshal() []byte {
	out := make([]byte, 4)
	putUint32(out, timeToNTP32(v.Time))
	return out
}

// UnmarshalMonitoringTime decodes a MonitoringTime payload.
func UnmarshalMonitoringTime(payload []byte) (MonitoringTime, error) {
	if len(payload) < 4 {
		return MonitoringTime{}, NewInvalidLength("MonitoringTime", TypeMonitoringTime, 4, len(payload))
	}
	return MonitoringTime{Time: ntp32ToTime(getUint32(payload))}, nil
}

// ToIe wraps the MonitoringTime as a generic Ie.
func (v MonitoringTime) ToIe() *Ie { return New(TypeMonitoringTime, v.Marshal()) }

// StartTime and EndTime, 3GPP TS 29.244 clauses 8.2.104/8.2.105, bracket a
// usage report's measurement interval.
type StartTime struct{ Time time.Time }

func NewStartTime(t time.Time) StartTime { return StartTime{Time: t} }

func (v StartTime) Marshal() []byte {
	out := make([]byte, 4)
	putUint32(out, timeToNTP32(v.Time))
	return out
}

func UnmarshalStartTime(payload []byte) (StartTime, error) {
	if len(payload) < 4 {
		return StartTime{}, NewInvalidLength("StartTime", TypeStartTime, 4, len(payload))
	}
	return StartTime{Time: ntp32ToTime(getUint32(payload))}, nil
}

func (v StartTime) ToIe() *Ie { return New(TypeStartTime, v.Marshal()) }

type EndTime struct{ Time time.Time }

func NewEndTime(t time.Time) EndTime { return EndTime{Time: t} }

func (v EndTime) Marshal() []byte {
	out := make([]byte, 4)
	putUint32(out, timeToNTP32(v.Time))
	return out
}

func UnmarshalEndTime(payload []byte) (EndTime, error) {
	if len(payload) < 4 {
		return EndTime{}, NewInvalidLength("EndTime", TypeEndTime, 4, len(payload))
	}
	return EndTime{Time: ntp32ToTime(getUint32(payload))}, nil
}

func (v EndTime) ToIe() *Ie { return New(TypeEndTime, v.Marshal()) }
