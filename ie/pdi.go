// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// PDI, 3GPP TS 29.244 clause 7.5.2.2 table 7.5.2.2-2, is the Packet
// Detection Information nested inside a CreatePDR/UpdatePDR: the match
// condition (interface, F-TEID, network instance, SDF filter, application
// ID) a PDR uses to classify incoming traffic. Grouped IE, family 6:
// concatenated child IE TLVs, SourceInterface mandatory.
type PDI struct {
	SourceInterface SourceInterface
	FTEID           *FTEID
	NetworkInstance *NetworkInstance
	SDFFilter       *SDFFilter
	ApplicationID   *ApplicationID
}

// Marshal encodes the PDI payload by concatenating its present children's
// TLV encodings, in the order spec'd by 3GPP table 7.5.2.2-2.
func (v PDI) Marshal() []byte {
	children := []*Ie{v.SourceInterface.ToIe()}
	if v.FTEID != nil {
		children = append(children, v.FTEID.ToIe())
	}
	if v.NetworkInstance != nil {
		children = append(children, v.NetworkInstance.ToIe())
	}
	if v.SDFFilter != nil {
		children = append(children, v.SDFFilter.ToIe())
	}
	if v.ApplicationID != nil {
		children = append(children, v.ApplicationID.ToIe())
	}
	return MarshalAll(children)
}

// UnmarshalPDI decodes a PDI payload.
func UnmarshalPDI(payload []byte) (PDI, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return PDI{}, err
	}

	srcIE := findChild(children, TypeSourceInterface)
	if srcIE == nil {
		return PDI{}, NewMissingMandatoryIe(TypeSourceInterface, TypePDI)
	}
	src, err := UnmarshalSourceInterface(srcIE.Payload)
	if err != nil {
		return PDI{}, err
	}
	v := PDI{SourceInterface: src}

	if c := findChild(children, TypeFTEID); c != nil {
		f, err := UnmarshalFTEID(c.Payload)
		if err != nil {
			return PDI{}, err
		}
		v.FTEID = &f
	}
	if c := findChild(children, TypeNetworkInstance); c != nil {
		n, err := UnmarshalNetworkInstance(c.Payload)
		if err != nil {
			return PDI{}, err
		}
		v.NetworkInstance = &n
	}
	if c := findChild(children, TypeSDFFilter); c != nil {
		s, err := UnmarshalSDFFilter(c.Payload)
		if err != nil {
			return PDI{}, err
		}
		v.SDFFilter = &s
	}
	if c := findChild(children, TypeApplicationID); c != nil {
		a, err := UnmarshalApplicationID(c.Payload)
		if err != nil {
			return PDI{}, err
		}
		v.ApplicationID = &a
	}

	return v, nil
}

// ToIe wraps the PDI as a generic Ie.
func (v PDI) ToIe() *Ie { return New(TypePDI, v.Marshal()) }
