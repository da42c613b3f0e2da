// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// PFDContext, 3GPP TS 29.244 clause 7.5.10.3, is one application's set of
// Packet Flow Descriptions. The ApplicationID it belongs to is carried one
// level up, on the enclosing ApplicationIDsPFDs -- a PFDContext is just a
// group of PFDContents.
type PFDContext struct {
	PFDContents []PFDContents
}

func (v PFDContext) Marshal() []byte {
	var children []*Ie
	for _, c := range v.PFDContents {
		children = append(children, c.ToIe())
	}
	return MarshalAll(children)
}

func UnmarshalPFDContext(payload []byte) (PFDContext, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return PFDContext{}, err
	}

	var v PFDContext
	contentIEs := findChildren(children, TypePFDContents)
	if len(contentIEs) == 0 {
		return PFDContext{}, NewMissingMandatoryIe(TypePFDContents, TypePFDContext)
	}
	for _, c := range contentIEs {
		pc, err := UnmarshalPFDContents(c.Payload)
		if err != nil {
			return PFDContext{}, err
		}
		v.PFDContents = append(v.PFDContents, pc)
	}
	return v, nil
}

func (v PFDContext) ToIe() *Ie { return New(TypePFDContext, v.Marshal()) }

// ApplicationIDsPFDs, 3GPP TS 29.244 clause 7.5.10.2, is one
// PFDManagementRequest entry: an application and the PFDContexts it should
// be provisioned or removed with.
type ApplicationIDsPFDs struct {
	ApplicationID ApplicationID
	PFDContexts   []PFDContext
}

func (v ApplicationIDsPFDs) Marshal() []byte {
	children := []*Ie{v.ApplicationID.ToIe()}
	for _, c := range v.PFDContexts {
		children = append(children, c.ToIe())
	}
	return MarshalAll(children)
}

func UnmarshalApplicationIDsPFDs(payload []byte) (ApplicationIDsPFDs, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return ApplicationIDsPFDs{}, err
	}
	appIE := findChild(children, TypeApplicationID)
	if appIE == nil {
		return ApplicationIDsPFDs{}, NewMissingMandatoryIe(TypeApplicationID, TypeApplicationIDsPFDs)
	}
	app, err := UnmarshalApplicationID(appIE.Payload)
	if err != nil {
		return ApplicationIDsPFDs{}, err
	}

	v := ApplicationIDsPFDs{ApplicationID: app}
	for _, c := range findChildren(children, TypePFDContext) {
		pc, err := UnmarshalPFDContext(c.Payload)
		if err != nil {
			return ApplicationIDsPFDs{}, err
		}
		v.PFDContexts = append(v.PFDContexts, pc)
	}
	return v, nil
}

func (v ApplicationIDsPFDs) ToIe() *Ie { return New(TypeApplicationIDsPFDs, v.Marshal()) }
