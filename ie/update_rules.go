// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// UpdatePDR, UpdateFAR, UpdateURR, and UpdateQER, 3GPP TS 29.244 clauses
// 7.5.4.3/7.5.4.4/7.5.4.11/7.5.4.12, carry a mandatory rule ID plus
// whichever fields changed. Each Update type declares its own field list
// rather than reusing its rule's Create form.

type UpdatePDR struct {
	PDRID              PDRID
	OuterHeaderRemoval *OuterHeaderRemoval
	FARID              *FARID
	PDI                *PDI
}

func (v UpdatePDR) Marshal() []byte {
	children := []*Ie{v.PDRID.ToIe()}
	if v.PDI != nil {
		children = append(children, v.PDI.ToIe())
	}
	if v.OuterHeaderRemoval != nil {
		children = append(children, v.OuterHeaderRemoval.ToIe())
	}
	if v.FARID != nil {
		children = append(children, v.FARID.ToIe())
	}
	return MarshalAll(children)
}

func UnmarshalUpdatePDR(payload []byte) (UpdatePDR, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return UpdatePDR{}, err
	}
	idIE := findChild(children, TypePDRID)
	if idIE == nil {
		return UpdatePDR{}, NewMissingMandatoryIe(TypePDRID, TypeUpdatePDR)
	}
	id, err := UnmarshalPDRID(idIE.Payload)
	if err != nil {
		return UpdatePDR{}, err
	}
	v := UpdatePDR{PDRID: id}
	if c := findChild(children, TypePDI); c != nil {
		pdi, err := UnmarshalPDI(c.Payload)
		if err != nil {
			return UpdatePDR{}, err
		}
		v.PDI = &pdi
	}
	if c := findChild(children, TypeOuterHeaderRemoval); c != nil {
		o, err := UnmarshalOuterHeaderRemoval(c.Payload)
		if err != nil {
			return UpdatePDR{}, err
		}
		v.OuterHeaderRemoval = &o
	}
	if c := findChild(children, TypeFARID); c != nil {
		f, err := UnmarshalFARID(c.Payload)
		if err != nil {
			return UpdatePDR{}, err
		}
		v.FARID = &f
	}
	return v, nil
}

func (v UpdatePDR) ToIe() *Ie { return New(TypeUpdatePDR, v.Marshal()) }

// UpdateForwardingParameters, 3GPP TS 29.244 clause 7.5.4.3 table
// 7.5.4.3-2, carries the ForwardingParameters fields that changed -- every
// field is optional since Update only sends deltas.
type UpdateForwardingParameters struct {
	DestinationInterface *DestinationInterface
	NetworkInstance      *NetworkInstance
	OuterHeaderCreation  *OuterHeaderCreation
}

func (v UpdateForwardingParameters) Marshal() []byte {
	var children []*Ie
	if v.DestinationInterface != nil {
		children = append(children, v.DestinationInterface.ToIe())
	}
	if v.NetworkInstance != nil {
		children = append(children, v.NetworkInstance.ToIe())
	}
	if v.OuterHeaderCreation != nil {
		children = append(children, v.OuterHeaderCreation.ToIe())
	}
	return MarshalAll(children)
}

func UnmarshalUpdateForwardingParameters(payload []byte) (UpdateForwardingParameters, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return UpdateForwardingParameters{}, err
	}
	var v UpdateForwardingParameters
	if c := findChild(children, TypeDestinationInterface); c != nil {
		di, err := UnmarshalDestinationInterface(c.Payload)
		if err != nil {
			return UpdateForwardingParameters{}, err
		}
		v.DestinationInterface = &di
	}
	if c := findChild(children, TypeNetworkInstance); c != nil {
		n, err := UnmarshalNetworkInstance(c.Payload)
		if err != nil {
			return UpdateForwardingParameters{}, err
		}
		v.NetworkInstance = &n
	}
	if c := findChild(children, TypeOuterHeaderCreation); c != nil {
		o, err := UnmarshalOuterHeaderCreation(c.Payload)
		if err != nil {
			return UpdateForwardingParameters{}, err
		}
		v.OuterHeaderCreation = &o
	}
	return v, nil
}

func (v UpdateForwardingParameters) ToIe() *Ie {
	return New(TypeUpdateForwardingParams, v.Marshal())
}

// UpdateFAR, 3GPP TS 29.244 clause 7.5.4.3 table 7.5.4.3-1.
type UpdateFAR struct {
	FARID                 FARID
	ApplyAction           *ApplyAction
	UpdateForwardingParams *UpdateForwardingParameters
}

func (v UpdateFAR) Marshal() []byte {
	children := []*Ie{v.FARID.ToIe()}
	if v.ApplyAction != nil {
		children = append(children, v.ApplyAction.ToIe())
	}
	if v.UpdateForwardingParams != nil {
		children = append(children, New(TypeUpdateForwardingParams, v.UpdateForwardingParams.Marshal()))
	}
	return MarshalAll(children)
}

func UnmarshalUpdateFAR(payload []byte) (UpdateFAR, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return UpdateFAR{}, err
	}
	idIE := findChild(children, TypeFARID)
	if idIE == nil {
		return UpdateFAR{}, NewMissingMandatoryIe(TypeFARID, TypeUpdateFAR)
	}
	id, err := UnmarshalFARID(idIE.Payload)
	if err != nil {
		return UpdateFAR{}, err
	}
	v := UpdateFAR{FARID: id}
	if c := findChild(children, TypeApplyAction); c != nil {
		aa, err := UnmarshalApplyAction(c.Payload)
		if err != nil {
			return UpdateFAR{}, err
		}
		v.ApplyAction = &aa
	}
	if c := findChild(children, TypeUpdateForwardingParams); c != nil {
		ufp, err := UnmarshalUpdateForwardingParameters(c.Payload)
		if err != nil {
			return UpdateFAR{}, err
		}
		v.UpdateForwardingParams = &ufp
	}
	return v, nil
}

func (v UpdateFAR) ToIe() *Ie { return New(TypeUpdateFAR, v.Marshal()) }

// UpdateURR, 3GPP TS 29.244 clause 7.5.4.4: every field besides URRID is
// optional. Neither the codec nor UpdateURRBuilder checks that an update
// carries any field besides URRID -- the codec round-trips whatever it's
// given.
type UpdateURR struct {
	URRID             URRID
	MeasurementMethod *MeasurementMethod
	ReportingTriggers *ReportingTriggers
	VolumeThreshold   *VolumeThreshold
	TimeThreshold     *TimeThreshold
}

func (v UpdateURR) Marshal() []byte {
	children := []*Ie{v.URRID.ToIe()}
	if v.MeasurementMethod != nil {
		children = append(children, v.MeasurementMethod.ToIe())
	}
	if v.ReportingTriggers != nil {
		children = append(children, v.ReportingTriggers.ToIe())
	}
	if v.VolumeThreshold != nil {
		children = append(children, v.VolumeThreshold.ToIe())
	}
	if v.TimeThreshold != nil {
		children = append(children, v.TimeThreshold.ToIe())
	}
	return MarshalAll(children)
}

func UnmarshalUpdateURR(payload []byte) (UpdateURR, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return UpdateURR{}, err
	}
	idIE := findChild(children, TypeURRID)
	if idIE == nil {
		return UpdateURR{}, NewMissingMandatoryIe(TypeURRID, TypeUpdateURR)
	}
	id, err := UnmarshalURRID(idIE.Payload)
	if err != nil {
		return UpdateURR{}, err
	}
	v := UpdateURR{URRID: id}
	if c := findChild(children, TypeMeasurementMethod); c != nil {
		mm, err := UnmarshalMeasurementMethod(c.Payload)
		if err != nil {
			return UpdateURR{}, err
		}
		v.MeasurementMethod = &mm
	}
	if c := findChild(children, TypeReportingTriggers); c != nil {
		rt, err := UnmarshalReportingTriggers(c.Payload)
		if err != nil {
			return UpdateURR{}, err
		}
		v.ReportingTriggers = &rt
	}
	if c := findChild(children, TypeVolumeThreshold); c != nil {
		vt, err := UnmarshalVolumeThreshold(c.Payload)
		if err != nil {
			return UpdateURR{}, err
		}
		v.VolumeThreshold = &vt
	}
	if c := findChild(children, TypeTimeThreshold); c != nil {
		tt, err := UnmarshalTimeThreshold(c.Payload)
		if err != nil {
			return UpdateURR{}, err
		}
		v.TimeThreshold = &tt
	}
	return v, nil
}

func (v UpdateURR) ToIe() *Ie { return New(TypeUpdateURR, v.Marshal()) }

// UpdateQER, 3GPP TS 29.244 clause 7.5.4.12.
type UpdateQER struct {
	QERID      QERID
	GateStatus *GateStatus
	MBR        *MBR
	GBR        *GBR
}

func (v UpdateQER) Marshal() []byte {
	children := []*Ie{v.QERID.ToIe()}
	if v.GateStatus != nil {
		children = append(children, v.GateStatus.ToIe())
	}
	if v.MBR != nil {
		children = append(children, v.MBR.ToIe())
	}
	if v.GBR != nil {
		children = append(children, v.GBR.ToIe())
	}
	return MarshalAll(children)
}

func UnmarshalUpdateQER(payload []byte) (UpdateQER, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return UpdateQER{}, err
	}
	idIE := findChild(children, TypeQERID)
	if idIE == nil {
		return UpdateQER{}, NewMissingMandatoryIe(TypeQERID, TypeUpdateQER)
	}
	id, err := UnmarshalQERID(idIE.Payload)
	if err != nil {
		return UpdateQER{}, err
	}
	v := UpdateQER{QERID: id}
	if c := findChild(children, TypeGateStatus); c != nil {
		gs, err := UnmarshalGateStatus(c.Payload)
		if err != nil {
			return UpdateQER{}, err
		}
		v.GateStatus = &gs
	}
	if c := findChild(children, TypeMBR); c != nil {
		m, err := UnmarshalMBR(c.Payload)
		if err != nil {
			return UpdateQER{}, err
		}
		v.MBR = &m
	}
	if c := findChild(children, TypeGBR); c != nil {
		g, err := UnmarshalGBR(c.Payload)
		if err != nil {
			return UpdateQER{}, err
		}
		v.GBR = &g
	}
	return v, nil
}

func (v UpdateQER) ToIe() *Ie { return New(TypeUpdateQER, v.Marshal()) }

// UpdateBAR, 3GPP TS 29.244 clause 7.5.4.9, carries the buffering knobs a
// Session Modification Request changed for an existing BAR.
type UpdateBAR struct {
	BARID                         BARID
	DownlinkDataNotificationDelay *uint8
	SuggestedBufferingPackets     *uint8
}

func (v UpdateBAR) Marshal() []byte {
	children := []*Ie{v.BARID.ToIe()}
	if v.DownlinkDataNotificationDelay != nil {
		children = append(children, New(TypeMinimumWaitTime, []byte{*v.DownlinkDataNotificationDelay}))
	}
	return MarshalAll(children)
}

func UnmarshalUpdateBAR(payload []byte) (UpdateBAR, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return UpdateBAR{}, err
	}
	idIE := findChild(children, TypeBARID)
	if idIE == nil {
		return UpdateBAR{}, NewMissingMandatoryIe(TypeBARID, TypeUpdateBARWithinSessionModification)
	}
	id, err := UnmarshalBARID(idIE.Payload)
	if err != nil {
		return UpdateBAR{}, err
	}
	v := UpdateBAR{BARID: id}
	if c := findChild(children, TypeMinimumWaitTime); c != nil && len(c.Payload) >= 1 {
		delay := c.Payload[0]
		v.DownlinkDataNotificationDelay = &delay
	}
	return v, nil
}

func (v UpdateBAR) ToIe() *Ie {
	return New(TypeUpdateBARWithinSessionModification, v.Marshal())
}
