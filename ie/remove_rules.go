// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// RemovePDR, RemoveFAR, RemoveURR, RemoveQER, and RemoveBAR, 3GPP TS
// 29.244 clauses 7.5.4.2-7.5.4.5 and 7.5.4.8, are the simplest grouped
// IEs in the protocol: each wraps exactly one mandatory ID child naming
// the rule to delete.

type RemovePDR struct{ PDRID PDRID }

func (v RemovePDR) Marshal() []byte { return MarshalAll([]*Ie{v.PDRID.ToIe()}) }
func (v RemovePDR) ToIe() *Ie       { return New(TypeRemovePDR, v.Marshal()) }

func UnmarshalRemovePDR(payload []byte) (RemovePDR, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return RemovePDR{}, err
	}
	c := findChild(children, TypePDRID)
	if c == nil {
		return RemovePDR{}, NewMissingMandatoryIe(TypePDRID, TypeRemovePDR)
	}
	id, err := UnmarshalPDRID(c.Payload)
	return RemovePDR{PDRID: id}, err
}

type RemoveFAR struct{ FARID FARID }

func (v RemoveFAR) Marshal() []byte { return MarshalAll([]*Ie{v.FARID.ToIe()}) }
func (v RemoveFAR) ToIe() *Ie       { return New(TypeRemoveFAR, v.Marshal()) }

func UnmarshalRemoveFAR(payload []byte) (RemoveFAR, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return RemoveFAR{}, err
	}
	c := findChild(children, TypeFARID)
	if c == nil {
		return RemoveFAR{}, NewMissingMandatoryIe(TypeFARID, TypeRemoveFAR)
	}
	id, err := UnmarshalFARID(c.Payload)
	return RemoveFAR{FARID: id}, err
}

type RemoveURR struct{ URRID URRID }

func (v RemoveURR) Marshal() []byte { return MarshalAll([]*Ie{v.URRID.ToIe()}) }
func (v RemoveURR) ToIe() *Ie       { return New(TypeRemoveURR, v.Marshal()) }

func UnmarshalRemoveURR(payload []byte) (RemoveURR, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return RemoveURR{}, err
	}
	c := findChild(children, TypeURRID)
	if c == nil {
		return RemoveURR{}, NewMissingMandatoryIe(TypeURRID, TypeRemoveURR)
	}
	id, err := UnmarshalURRID(c.Payload)
	return RemoveURR{URRID: id}, err
}

type RemoveQER struct{ QERID QERID }

func (v RemoveQER) Marshal() []byte { return MarshalAll([]*Ie{v.QERID.ToIe()}) }
func (v RemoveQER) ToIe() *Ie       { return New(TypeRemoveQER, v.Marshal()) }

func UnmarshalRemoveQER(payload []byte) (RemoveQER, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return RemoveQER{}, err
	}
	c := findChild(children, TypeQERID)
	if c == nil {
		return RemoveQER{}, NewMissingMandatoryIe(TypeQERID, TypeRemoveQER)
	}
	id, err := UnmarshalQERID(c.Payload)
	return RemoveQER{QERID: id}, err
}

type RemoveBAR struct{ BARID BARID }

func (v RemoveBAR) Marshal() []byte { return MarshalAll([]*Ie{v.BARID.ToIe()}) }
func (v RemoveBAR) ToIe() *Ie       { return New(TypeRemoveBAR, v.Marshal()) }

func UnmarshalRemoveBAR(payload []byte) (RemoveBAR, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return RemoveBAR{}, err
	}
	c := findChild(children, TypeBARID)
	if c == nil {
		return RemoveBAR{}, NewMissingMandatoryIe(TypeBARID, TypeRemoveBAR)
	}
	id, err := UnmarshalBARID(c.Payload)
	return RemoveBAR{BARID: id}, err
}
