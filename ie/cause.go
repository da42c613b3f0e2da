// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// Cause, 3GPP TS 29.244 clause 8.2.1, is a strict enum reporting whether a
// PFCP request succeeded and, if not, why. Unknown values are a decode
// error: Cause is used in acceptance-testing logic, so silently accepting
// an unrecognized outcome would be worse than failing loudly.
type Cause uint8

const (
	CauseRequestAccepted             Cause = 1
	CauseRequestRejected             Cause = 64
	CauseSessionContextNotFound      Cause = 65
	CauseMandatoryIeMissing          Cause = 66
	CauseConditionalIeMissing        Cause = 67
	CauseInvalidLength               Cause = 68
	CauseMandatoryIeIncorrect        Cause = 69
	CauseInvalidForwardingPolicy     Cause = 70
	CauseInvalidFTeidAllocOption     Cause = 71
	CauseNoEstablishedPfcpAssoc      Cause = 72
	CauseRuleCreationModFailure      Cause = 73
	CausePfcpEntityInCongestion      Cause = 74
	CauseNoResourcesAvailable        Cause = 75
	CauseServiceNotSupported         Cause = 76
	CauseSystemFailure               Cause = 77
	CauseRedirectionRequested        Cause = 78
	CauseAllDynamicAddrsAreOccupied  Cause = 79
)

var causeNames = map[Cause]string{
	CauseRequestAccepted:            "RequestAccepted",
	CauseRequestRejected:            "RequestRejected",
	CauseSessionContextNotFound:     "SessionContextNotFound",
	CauseMandatoryIeMissing:         "MandatoryIeMissing",
	CauseConditionalIeMissing:       "ConditionalIeMissing",
	CauseInvalidLength:              "InvalidLength",
	CauseMandatoryIeIncorrect:       "MandatoryIeIncorrect",
	CauseInvalidForwardingPolicy:    "InvalidForwardingPolicy",
	CauseInvalidFTeidAllocOption:    "InvalidFTeidAllocationOption",
	CauseNoEstablishedPfcpAssoc:     "NoEstablishedPfcpAssociation",
	CauseRuleCreationModFailure:     "RuleCreationModificationFailure",
	CausePfcpEntityInCongestion:     "PfcpEntityInCongestion",
	CauseNoResourcesAvailable:       "NoResourcesAvailable",
	CauseServiceNotSupported:        "ServiceNotSupported",
	CauseSystemFailure:              "SystemFailure",
	CauseRedirectionRequested:       "RedirectionRequested",
	CauseAllDynamicAddrsAreOccupied: "AllDynamicAddressesAreOccupied",
}

func (c Cause) String() string {
	if name, ok := causeNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Marshal encodes the Cause payload.
func (c Cause) Marshal() []byte { return []byte{byte(c)} }

// UnmarshalCause decodes a Cause payload, rejecting unrecognized values.
func UnmarshalCause(payload []byte) (Cause, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("Cause", TypeCause, 1, len(payload))
	}
	c := Cause(payload[0])
	if _, ok := causeNames[c]; !ok {
		return 0, NewInvalidValue("Cause", nil, "must be a recognized 3GPP TS 29.244 table 8.2.1-1 value")
	}
	return c, nil
}

// ToIe wraps the Cause as a generic Ie.
func (c Cause) ToIe() *Ie { return New(TypeCause, c.Marshal()) }

// SourceInterface, 3GPP TS 29.244 clause 8.2.2, names the ingress interface
// of a PDI. Strict enum: the 3GPP table only names four values, and any
// other value cannot be a legal PDR match condition.
type SourceInterface uint8

const (
	SourceInterfaceAccess       SourceInterface = 0
	SourceInterfaceCore         SourceInterface = 1
	SourceInterfaceSGiLANN6LAN  SourceInterface = 2
	SourceInterfaceCPFunction   SourceInterface = 3
)

func (v SourceInterface) String() string {
	switch v {
	case SourceInterfaceAccess:
		return "Access"
	case SourceInterfaceCore:
		return "Core"
	case SourceInterfaceSGiLANN6LAN:
		return "SGiLANN6LAN"
	case SourceInterfaceCPFunction:
		return "CPFunction"
	default:
		return "Unknown"
	}
}

// Marshal encodes the SourceInterface payload.
func (v SourceInterface) Marshal() []byte { return []byte{byte(v) & 0x0F} }

// UnmarshalSourceInterface decodes a SourceInterface payload.
func UnmarshalSourceInterface(payload []byte) (SourceInterface, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("SourceInterface", TypeSourceInterface, 1, len(payload))
	}
	v := SourceInterface(payload[0] & 0x0F)
	if v.String() == "Unknown" {
		return 0, NewInvalidValueString("SourceInterface", v.String(), "must be 0 (Access), 1 (Core), 2 (SGi-LAN/N6-LAN), or 3 (CP-function)")
	}
	return v, nil
}

// ToIe wraps the SourceInterface as a generic Ie.
func (v SourceInterface) ToIe() *Ie { return New(TypeSourceInterface, v.Marshal()) }

// DestinationInterface, 3GPP TS 29.244 clause 8.2.24, names the egress
// interface of a FAR's forwarding parameters. Two more values than
// SourceInterface: LI function (4) and 5G VN internal (5).
type DestinationInterface uint8

const (
	DestinationInterfaceAccess      DestinationInterface = 0
	DestinationInterfaceCore        DestinationInterface = 1
	DestinationInterfaceSGiLANN6LAN DestinationInterface = 2
	DestinationInterfaceCPFunction  DestinationInterface = 3
	DestinationInterfaceLiFunction  DestinationInterface = 4
	DestinationInterface5GVNInt     DestinationInterface = 5
)

func (v DestinationInterface) String() string {
	switch v {
	case DestinationInterfaceAccess:
		return "Access"
	case DestinationInterfaceCore:
		return "Core"
	case DestinationInterfaceSGiLANN6LAN:
		return "SGiLANN6LAN"
	case DestinationInterfaceCPFunction:
		return "CPFunction"
	case DestinationInterfaceLiFunction:
		return "LiFunction"
	case DestinationInterface5GVNInt:
		return "FiveGVNInternal"
	default:
		return "Unknown"
	}
}

// Marshal encodes the DestinationInterface payload.
func (v DestinationInterface) Marshal() []byte { return []byte{byte(v) & 0x0F} }

// UnmarshalDestinationInterface decodes a DestinationInterface payload.
func UnmarshalDestinationInterface(payload []byte) (DestinationInterface, error) {
	if len(payload) < 1 {
		return 0, NewInvalidLength("DestinationInterface", TypeDestinationInterface, 1, len(payload))
	}
	v := DestinationInterface(payload[0] & 0x0F)
	if v.String() == "Unknown" {
		return 0, NewInvalidValueString("DestinationInterface", v.String(), "must be 0-5 per 3GPP TS 29.244 table 8.2.24-1")
	}
	return v, nil
}

// ToIe wraps the DestinationInterface as a generic Ie.
func (v DestinationInterface) ToIe() *Ie { return New(TypeDestinationInterface, v.Marshal()) }
