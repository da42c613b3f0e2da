// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// ForwardingParameters, 3GPP TS 29.244 clause 7.5.2.3 table 7.5.2.3-1, is
// nested inside a CreateFAR/UpdateForwardingParameters: where and how to
// send a packet a FAR chose to forward.
type ForwardingParameters struct {
	DestinationInterface DestinationInterface
	NetworkInstance      *NetworkInstance
	OuterHeaderCreation  *OuterHeaderCreation
}

func (v ForwardingParameters) Marshal() []byte {
	children := []*Ie{v.DestinationInterface.ToIe()}
	if v.NetworkInstance != nil {
		children = append(children, v.NetworkInstance.ToIe())
	}
	if v.OuterHeaderCreation != nil {
		children = append(children, v.OuterHeaderCreation.ToIe())
	}
	return MarshalAll(children)
}

func UnmarshalForwardingParameters(payload []byte) (ForwardingParameters, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return ForwardingParameters{}, err
	}
	diIE := findChild(children, TypeDestinationInterface)
	if diIE == nil {
		return ForwardingParameters{}, NewMissingMandatoryIe(TypeDestinationInterface, TypeForwardingParameters)
	}
	di, err := UnmarshalDestinationInterface(diIE.Payload)
	if err != nil {
		return ForwardingParameters{}, err
	}
	v := ForwardingParameters{DestinationInterface: di}
	if c := findChild(children, TypeNetworkInstance); c != nil {
		n, err := UnmarshalNetworkInstance(c.Payload)
		if err != nil {
			return ForwardingParameters{}, err
		}
		v.NetworkInstance = &n
	}
	if c := findChild(children, TypeOuterHeaderCreation); c != nil {
		o, err := UnmarshalOuterHeaderCreation(c.Payload)
		if err != nil {
			return ForwardingParameters{}, err
		}
		v.OuterHeaderCreation = &o
	}
	return v, nil
}

func (v ForwardingParameters) ToIe() *Ie { return New(TypeForwardingParameters, v.Marshal()) }

// DuplicatingParameters, 3GPP TS 29.244 clause 7.5.2.3 table 7.5.2.3-2, is
// nested inside a CreateFAR when ApplyAction.DUPL is set: where to send the
// duplicated copy of a packet.
type DuplicatingParameters struct {
	DestinationInterface DestinationInterface
	OuterHeaderCreation  *OuterHeaderCreation
}

func (v DuplicatingParameters) Marshal() []byte {
	children := []*Ie{v.DestinationInterface.ToIe()}
	if v.OuterHeaderCreation != nil {
		children = append(children, v.OuterHeaderCreation.ToIe())
	}
	return MarshalAll(children)
}

func UnmarshalDuplicatingParameters(payload []byte) (DuplicatingParameters, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return DuplicatingParameters{}, err
	}
	diIE := findChild(children, TypeDestinationInterface)
	if diIE == nil {
		return DuplicatingParameters{}, NewMissingMandatoryIe(TypeDestinationInterface, TypeDuplicatingParameters)
	}
	di, err := UnmarshalDestinationInterface(diIE.Payload)
	if err != nil {
		return DuplicatingParameters{}, err
	}
	v := DuplicatingParameters{DestinationInterface: di}
	if c := findChild(children, TypeOuterHeaderCreation); c != nil {
		o, err := UnmarshalOuterHeaderCreation(c.Payload)
		if err != nil {
			return DuplicatingParameters{}, err
		}
		v.OuterHeaderCreation = &o
	}
	return v, nil
}

func (v DuplicatingParameters) ToIe() *Ie { return New(TypeDuplicatingParameters, v.Marshal()) }

// CreateFAR, 3GPP TS 29.244 clause 7.5.2.3 table 7.5.2.3, is one Forwarding
// Action Rule: a FAR ID, the ApplyAction bitmap, and, depending which
// actions are set, ForwardingParameters and/or DuplicatingParameters.
type CreateFAR struct {
	FARID                 FARID
	ApplyAction           ApplyAction
	ForwardingParameters  *ForwardingParameters
	DuplicatingParameters *DuplicatingParameters
}

func (v CreateFAR) Marshal() []byte {
	children := []*Ie{v.FARID.ToIe(), v.ApplyAction.ToIe()}
	if v.ForwardingParameters != nil {
		children = append(children, New(TypeForwardingParameters, v.ForwardingParameters.Marshal()))
	}
	if v.DuplicatingParameters != nil {
		children = append(children, New(TypeDuplicatingParameters, v.DuplicatingParameters.Marshal()))
	}
	return MarshalAll(children)
}

func UnmarshalCreateFAR(payload []byte) (CreateFAR, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return CreateFAR{}, err
	}
	farIE := findChild(children, TypeFARID)
	if farIE == nil {
		return CreateFAR{}, NewMissingMandatoryIe(TypeFARID, TypeCreateFAR)
	}
	farID, err := UnmarshalFARID(farIE.Payload)
	if err != nil {
		return CreateFAR{}, err
	}
	aaIE := findChild(children, TypeApplyAction)
	if aaIE == nil {
		return CreateFAR{}, NewMissingMandatoryIe(TypeApplyAction, TypeCreateFAR)
	}
	aa, err := UnmarshalApplyAction(aaIE.Payload)
	if err != nil {
		return CreateFAR{}, err
	}

	v := CreateFAR{FARID: farID, ApplyAction: aa}
	if c := findChild(children, TypeForwardingParameters); c != nil {
		fp, err := UnmarshalForwardingParameters(c.Payload)
		if err != nil {
			return CreateFAR{}, err
		}
		v.ForwardingParameters = &fp
	}
	if c := findChild(children, TypeDuplicatingParameters); c != nil {
		dp, err := UnmarshalDuplicatingParameters(c.Payload)
		if err != nil {
			return CreateFAR{}, err
		}
		v.DuplicatingParameters = &dp
	}
	return v, nil
}

func (v CreateFAR) ToIe() *Ie { return New(TypeCreateFAR, v.Marshal()) }
