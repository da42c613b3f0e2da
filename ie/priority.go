// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// Priority, 3GPP TS 29.244 clause 8.2.141, ranks access-forwarding-action
// traffic. It is a strict enum: an out-of-range discriminant is a decode
// error rather than an Unknown(v) value, since no forward-compatible
// meaning is defined for it.
type Priority uint8

const (
	PriorityActive     Priority = 0
	PriorityStandby    Priority = 1
	PriorityNoPriority Priority = 2
	PriorityHigh       Priority = 3
)

func (p Priority) String() string {
	switch p {
	case PriorityActive:
		return "Active"
	case PriorityStandby:
		return "Standby"
	case PriorityNoPriority:
		return "NoPriority"
	case PriorityHigh:
		return "High"
	default:
		return "Invalid"
	}
}

// Marshal encodes the Priority payload.
func (p Priority) Marshal() []byte { return []byte{uint8(p) & 0x0F} }

// UnmarshalPriority decodes a Priority payload, rejecting any discriminant
// outside the closed 0-3 set.
func UnmarshalPriority(payload []byte) (Priority, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("Priority", TypePriority, 1, len(payload))
	}
	v := payload[0] & 0x0F
	switch Priority(v) {
	case PriorityActive, PriorityStandby, PriorityNoPriority, PriorityHigh:
		return Priority(v), nil
	default:
		return 0, NewInvalidValueString("Priority", Priority(v).String(), "must be 0-3")
	}
}

// ToIe wraps the Priority as a generic Ie.
func (p Priority) ToIe() *Ie { return New(TypePriority, p.Marshal()) }

// SteeringFunctionality, 3GPP TS 29.244 clause 8.2.138, selects the ATSSS
// steering mechanism for a MAR. Strict enum, as above.
type SteeringFunctionality uint8

const (
	SteeringFunctionalityATSSSLL SteeringFunctionality = 0
	SteeringFunctionalityMPTCP   SteeringFunctionality = 1
)

func (s SteeringFunctionality) String() string {
	switch s {
	case SteeringFunctionalityATSSSLL:
		return "ATSSS-LL"
	case SteeringFunctionalityMPTCP:
		return "MPTCP"
	default:
		return "Invalid"
	}
}

// Marshal encodes the SteeringFunctionality payload.
func (s SteeringFunctionality) Marshal() []byte { return []byte{uint8(s) & 0x0F} }

// UnmarshalSteeringFunctionality decodes a SteeringFunctionality payload.
func UnmarshalSteeringFunctionality(payload []byte) (SteeringFunctionality, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("SteeringFunctionality", TypeSteeringFunctionality, 1, len(payload))
	}
	v := payload[0] & 0x0F
	switch SteeringFunctionality(v) {
	case SteeringFunctionalityATSSSLL, SteeringFunctionalityMPTCP:
		return SteeringFunctionality(v), nil
	default:
		return 0, NewInvalidValueString("SteeringFunctionality", SteeringFunctionality(v).String(), "must be 0 (ATSSS-LL) or 1 (MPTCP)")
	}
}

// ToIe wraps the SteeringFunctionality as a generic Ie.
func (s SteeringFunctionality) ToIe() *Ie { return New(TypeSteeringFunctionality, s.Marshal()) }
