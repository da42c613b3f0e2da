// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// CreatePDR, 3GPP TS 29.244 clause 7.5.2.2 table 7.5.2.2-1, is one
// Packet Detection Rule installed by a Session Establishment/Modification
// Request: a PDR ID, its match condition (PDI), a forwarding precedence,
// and the FAR/URR/QER/BAR it's linked to. Grouped IE, family 6.
// Grounded on original_source/src/ie/create_urr.rs's marshal/unmarshal
// shape, the pattern every grouped IE in this package follows.
type CreatePDR struct {
	PDRID              PDRID
	Precedence         Precedence
	PDI                PDI
	OuterHeaderRemoval *OuterHeaderRemoval
	FARID              *FARID
	URRIDs             []URRID
	QERIDs             []QERID
	BARID              *BARID
}

// Marshal encodes the CreatePDR payload.
func (v CreatePDR) Marshal() []byte {
	children := []*Ie{v.PDRID.ToIe(), v.Precedence.ToIe(), v.PDI.ToIe()}
	if v.OuterHeaderRemoval != nil {
		children = append(children, v.OuterHeaderRemoval.ToIe())
	}
	if v.FARID != nil {
		children = append(children, v.FARID.ToIe())
	}
	for _, u := range v.URRIDs {
		children = append(children, u.ToIe())
	}
	for _, q := range v.QERIDs {
		children = append(children, q.ToIe())
	}
	if v.BARID != nil {
		children = append(children, v.BARID.ToIe())
	}
	return MarshalAll(children)
}

// UnmarshalCreatePDR decodes a CreatePDR payload.
func UnmarshalCreatePDR(payload []byte) (CreatePDR, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return CreatePDR{}, err
	}

	pdrIE := findChild(children, TypePDRID)
	if pdrIE == nil {
		return CreatePDR{}, NewMissingMandatoryIe(TypePDRID, TypeCreatePDR)
	}
	pdrID, err := UnmarshalPDRID(pdrIE.Payload)
	if err != nil {
		return CreatePDR{}, err
	}

	precIE := findChild(children, TypePrecedence)
	if precIE == nil {
		return CreatePDR{}, NewMissingMandatoryIe(TypePrecedence, TypeCreatePDR)
	}
	prec, err := UnmarshalPrecedence(precIE.Payload)
	if err != nil {
		return CreatePDR{}, err
	}

	pdiIE := findChild(children, TypePDI)
	if pdiIE == nil {
		return CreatePDR{}, NewMissingMandatoryIe(TypePDI, TypeCreatePDR)
	}
	pdi, err := UnmarshalPDI(pdiIE.Payload)
	if err != nil {
		return CreatePDR{}, err
	}

	v := CreatePDR{PDRID: pdrID, Precedence: prec, PDI: pdi}

	if c := findChild(children, TypeOuterHeaderRemoval); c != nil {
		o, err := UnmarshalOuterHeaderRemoval(c.Payload)
		if err != nil {
			return CreatePDR{}, err
		}
		v.OuterHeaderRemoval = &o
	}
	if c := findChild(children, TypeFARID); c != nil {
		f, err := UnmarshalFARID(c.Payload)
		if err != nil {
			return CreatePDR{}, err
		}
		v.FARID = &f
	}
	for _, c := range findChildren(children, TypeURRID) {
		u, err := UnmarshalURRID(c.Payload)
		if err != nil {
			return CreatePDR{}, err
		}
		v.URRIDs = append(v.URRIDs, u)
	}
	for _, c := range findChildren(children, TypeQERID) {
		q, err := UnmarshalQERID(c.Payload)
		if err != nil {
			return CreatePDR{}, err
		}
		v.QERIDs = append(v.QERIDs, q)
	}
	if c := findChild(children, TypeBARID); c != nil {
		b, err := UnmarshalBARID(c.Payload)
		if err != nil {
			return CreatePDR{}, err
		}
		v.BARID = &b
	}

	return v, nil
}

// ToIe wraps the CreatePDR as a generic Ie.
func (v CreatePDR) ToIe() *Ie { return New(TypeCreatePDR, v.Marshal()) }

// CreatedPDR, 3GPP TS 29.244 clause 7.5.3.2, echoes back a PDR ID plus,
// when the UP function allocated it, the resulting local F-TEID.
type CreatedPDR struct {
	PDRID PDRID
	FTEID *FTEID
}

func (v CreatedPDR) Marshal() []byte {
	children := []*Ie{v.PDRID.ToIe()}
	if v.FTEID != nil {
		children = append(children, v.FTEID.ToIe())
	}
	return MarshalAll(children)
}

func UnmarshalCreatedPDR(payload []byte) (CreatedPDR, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return CreatedPDR{}, err
	}
	pdrIE := findChild(children, TypePDRID)
	if pdrIE == nil {
		return CreatedPDR{}, NewMissingMandatoryIe(TypePDRID, TypeCreatedPDR)
	}
	pdrID, err := UnmarshalPDRID(pdrIE.Payload)
	if err != nil {
		return CreatedPDR{}, err
	}
	v := CreatedPDR{PDRID: pdrID}
	if c := findChild(children, TypeFTEID); c != nil {
		f, err := UnmarshalFTEID(c.Payload)
		if err != nil {
			return CreatedPDR{}, err
		}
		v.FTEID = &f
	}
	return v, nil
}

func (v CreatedPDR) ToIe() *Ie { return New(TypeCreatedPDR, v.Marshal()) }
