// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package message

import "github.com/hhorai/go-pfcp/ie"

// SessionEstablishmentRequest, 3GPP TS 29.244 clause 7.5.2, creates a PFCP
// session: the CP function's own F-SEID plus the initial set of
// PDR/FAR/URR/QER/BAR rules the UP function should install. The header
// SEID is always 0 here -- the session doesn't exist yet.
type SessionEstablishmentRequest struct {
	SequenceNumber uint32
	NodeID         ie.NodeID
	FSEID          ie.FSEID
	CreatePDRs     []ie.CreatePDR
	CreateFARs     []ie.CreateFAR
	CreateURRs     []ie.CreateURR
	CreateQERs     []ie.CreateQER
	CreateBAR      *ie.CreateBAR
	PDNType        *ie.PDNType
	FQCSIDs        []ie.FQCSID

	children []*ie.Ie // decoded children, kept for IEs(); nil on a message built directly rather than parsed
}

// SessionEstablishmentRequestKnownIEs is the set of types this message
// promotes to named fields, so IEs().Generic(SessionEstablishmentRequestKnownIEs)
// can surface anything a decode didn't recognize.
var SessionEstablishmentRequestKnownIEs = map[ie.Type]bool{
	ie.TypeNodeID:    true,
	ie.TypeFSEID:     true,
	ie.TypeCreatePDR: true,
	ie.TypeCreateFAR: true,
	ie.TypeCreateURR: true,
	ie.TypeCreateQER: true,
	ie.TypeCreateBAR: true,
	ie.TypePDNType:   true,
	ie.TypeFQCSID:    true,
}

// IEs returns an IEIter over this message's children: Single/Multiple for
// the types already promoted to named fields above, and Generic for
// anything a decode didn't recognize. On a message assembled directly
// (rather than produced by UnmarshalSessionEstablishmentRequest) it
// iterates a fresh encode of Body() instead of a cached decode.
func (m SessionEstablishmentRequest) IEs() IEIter {
	children := m.children
	if children == nil {
		children, _ = ie.UnmarshalAll(m.Body())
	}
	return NewIEIter(children)
}

func (m SessionEstablishmentRequest) MsgType() MsgType { return MsgTypeSessionEstablishmentRequest }

func (m SessionEstablishmentRequest) Header() Header {
	return Header{MessageType: MsgTypeSessionEstablishmentRequest, SequenceNumber: m.SequenceNumber, HasSEID: true}
}

func (m SessionEstablishmentRequest) Body() []byte {
	children := []*ie.Ie{m.NodeID.ToIe(), m.FSEID.ToIe()}
	for _, p := range m.CreatePDRs {
		children = append(children, p.ToIe())
	}
	for _, f := range m.CreateFARs {
		children = append(children, f.ToIe())
	}
	for _, u := range m.CreateURRs {
		children = append(children, u.ToIe())
	}
	for _, q := range m.CreateQERs {
		children = append(children, q.ToIe())
	}
	if m.CreateBAR != nil {
		children = append(children, m.CreateBAR.ToIe())
	}
	if m.PDNType != nil {
		children = append(children, m.PDNType.ToIe())
	}
	for _, f := range m.FQCSIDs {
		children = append(children, f.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalSessionEstablishmentRequest(h Header, body []byte) (SessionEstablishmentRequest, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return SessionEstablishmentRequest{}, err
	}
	t := ie.Type(MsgTypeSessionEstablishmentRequest)

	nodeIE := findChild(children, ie.TypeNodeID)
	if nodeIE == nil {
		return SessionEstablishmentRequest{}, ie.NewMissingMandatoryIe(ie.TypeNodeID, t)
	}
	node, err := ie.UnmarshalNodeID(nodeIE.Payload)
	if err != nil {
		return SessionEstablishmentRequest{}, err
	}

	fseidIE := findChild(children, ie.TypeFSEID)
	if fseidIE == nil {
		return SessionEstablishmentRequest{}, ie.NewMissingMandatoryIe(ie.TypeFSEID, t)
	}
	fseid, err := ie.UnmarshalFSEID(fseidIE.Payload)
	if err != nil {
		return SessionEstablishmentRequest{}, err
	}

	m := SessionEstablishmentRequest{SequenceNumber: h.SequenceNumber, NodeID: node, FSEID: fseid}

	pdrIEs := findChildren(children, ie.TypeCreatePDR)
	if len(pdrIEs) == 0 {
		return SessionEstablishmentRequest{}, ie.NewMissingMandatoryIe(ie.TypeCreatePDR, t)
	}
	for _, c := range pdrIEs {
		p, err := ie.UnmarshalCreatePDR(c.Payload)
		if err != nil {
			return SessionEstablishmentRequest{}, err
		}
		m.CreatePDRs = append(m.CreatePDRs, p)
	}

	farIEs := findChildren(children, ie.TypeCreateFAR)
	if len(farIEs) == 0 {
		return SessionEstablishmentRequest{}, ie.NewMissingMandatoryIe(ie.TypeCreateFAR, t)
	}
	for _, c := range farIEs {
		f, err := ie.UnmarshalCreateFAR(c.Payload)
		if err != nil {
			return SessionEstablishmentRequest{}, err
		}
		m.CreateFARs = append(m.CreateFARs, f)
	}

	for _, c := range findChildren(children, ie.TypeCreateURR) {
		u, err := ie.UnmarshalCreateURR(c.Payload)
		if err != nil {
			return SessionEstablishmentRequest{}, err
		}
		m.CreateURRs = append(m.CreateURRs, u)
	}
	for _, c := range findChildren(children, ie.TypeCreateQER) {
		q, err := ie.UnmarshalCreateQER(c.Payload)
		if err != nil {
			return SessionEstablishmentRequest{}, err
		}
		m.CreateQERs = append(m.CreateQERs, q)
	}
	if c := findChild(children, ie.TypeCreateBAR); c != nil {
		b, err := ie.UnmarshalCreateBAR(c.Payload)
		if err != nil {
			return SessionEstablishmentRequest{}, err
		}
		m.CreateBAR = &b
	}
	if c := findChild(children, ie.TypePDNType); c != nil {
		pt, err := ie.UnmarshalPDNType(c.Payload)
		if err != nil {
			return SessionEstablishmentRequest{}, err
		}
		m.PDNType = &pt
	}
	for _, c := range findChildren(children, ie.TypeFQCSID) {
		f, err := ie.UnmarshalFQCSID(c.Payload)
		if err != nil {
			return SessionEstablishmentRequest{}, err
		}
		m.FQCSIDs = append(m.FQCSIDs, f)
	}
	m.children = children

	return m, nil
}

// SessionEstablishmentResponse, 3GPP TS 29.244 clause 7.5.3, carries the
// UP function's own F-SEID plus the per-PDR results (usually just the
// F-TEID it allocated) back to the CP function.
type SessionEstablishmentResponse struct {
	SequenceNumber uint32
	NodeID         ie.NodeID
	Cause          ie.Cause
	OffendingIE    *ie.OffendingIE
	FSEID          *ie.FSEID
	CreatedPDRs    []ie.CreatedPDR
	FQCSIDs        []ie.FQCSID
}

func (m SessionEstablishmentResponse) MsgType() MsgType { return MsgTypeSessionEstablishmentResponse }

func (m SessionEstablishmentResponse) Header() Header {
	return Header{MessageType: MsgTypeSessionEstablishmentResponse, SequenceNumber: m.SequenceNumber, HasSEID: true}
}

func (m SessionEstablishmentResponse) Body() []byte {
	children := []*ie.Ie{m.NodeID.ToIe(), m.Cause.ToIe()}
	if m.OffendingIE != nil {
		children = append(children, m.OffendingIE.ToIe())
	}
	if m.FSEID != nil {
		children = append(children, m.FSEID.ToIe())
	}
	for _, p := range m.CreatedPDRs {
		children = append(children, p.ToIe())
	}
	for _, f := range m.FQCSIDs {
		children = append(children, f.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalSessionEstablishmentResponse(h Header, body []byte) (SessionEstablishmentResponse, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return SessionEstablishmentResponse{}, err
	}
	t := ie.Type(MsgTypeSessionEstablishmentResponse)

	nodeIE := findChild(children, ie.TypeNodeID)
	if nodeIE == nil {
		return SessionEstablishmentResponse{}, ie.NewMissingMandatoryIe(ie.TypeNodeID, t)
	}
	node, err := ie.UnmarshalNodeID(nodeIE.Payload)
	if err != nil {
		return SessionEstablishmentResponse{}, err
	}

	causeIE := findChild(children, ie.TypeCause)
	if causeIE == nil {
		return SessionEstablishmentResponse{}, ie.NewMissingMandatoryIe(ie.TypeCause, t)
	}
	cause, err := ie.UnmarshalCause(causeIE.Payload)
	if err != nil {
		return SessionEstablishmentResponse{}, err
	}

	m := SessionEstablishmentResponse{SequenceNumber: h.SequenceNumber, NodeID: node, Cause: cause}
	if c := findChild(children, ie.TypeOffendingIE); c != nil {
		off, err := ie.UnmarshalOffendingIE(c.Payload)
		if err != nil {
			return SessionEstablishmentResponse{}, err
		}
		m.OffendingIE = &off
	}
	if c := findChild(children, ie.TypeFSEID); c != nil {
		fseid, err := ie.UnmarshalFSEID(c.Payload)
		if err != nil {
			return SessionEstablishmentResponse{}, err
		}
		m.FSEID = &fseid
	}
	for _, c := range findChildren(children, ie.TypeCreatedPDR) {
		p, err := ie.UnmarshalCreatedPDR(c.Payload)
		if err != nil {
			return SessionEstablishmentResponse{}, err
		}
		m.CreatedPDRs = append(m.CreatedPDRs, p)
	}
	for _, c := range findChildren(children, ie.TypeFQCSID) {
		f, err := ie.UnmarshalFQCSID(c.Payload)
		if err != nil {
			return SessionEstablishmentResponse{}, err
		}
		m.FQCSIDs = append(m.FQCSIDs, f)
	}
	return m, nil
}
