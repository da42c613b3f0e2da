// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package message

import "github.com/hhorai/go-pfcp/ie"

// SessionSetDeletionRequest, 3GPP TS 29.244 clause 7.4.7.1, asks a peer to
// tear down every session sharing one of the given FQ-CSIDs -- used when an
// entire node (not one session) is being taken out of service. This codec
// treats every FQ-CSID child the same regardless of which node role
// (SGW-C/PGW-C/UPF/TWAN/ePDG) it was encoded under, per the forward
// compatibility note on unevenly-specified Session Set IEs.
type SessionSetDeletionRequest struct {
	SequenceNumber uint32
	NodeID         ie.NodeID
	FQCSIDs        []ie.FQCSID
}

func (m SessionSetDeletionRequest) MsgType() MsgType { return MsgTypeSessionSetDeletionRequest }

func (m SessionSetDeletionRequest) Header() Header {
	return Header{MessageType: MsgTypeSessionSetDeletionRequest, SequenceNumber: m.SequenceNumber}
}

func (m SessionSetDeletionRequest) Body() []byte {
	children := []*ie.Ie{m.NodeID.ToIe()}
	for _, f := range m.FQCSIDs {
		children = append(children, f.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalSessionSetDeletionRequest(h Header, body []byte) (SessionSetDeletionRequest, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return SessionSetDeletionRequest{}, err
	}
	nodeIE := findChild(children, ie.TypeNodeID)
	if nodeIE == nil {
		return SessionSetDeletionRequest{}, ie.NewMissingMandatoryIe(ie.TypeNodeID, ie.Type(MsgTypeSessionSetDeletionRequest))
	}
	node, err := ie.UnmarshalNodeID(nodeIE.Payload)
	if err != nil {
		return SessionSetDeletionRequest{}, err
	}
	m := SessionSetDeletionRequest{SequenceNumber: h.SequenceNumber, NodeID: node}
	for _, c := range findChildren(children, ie.TypeFQCSID) {
		f, err := ie.UnmarshalFQCSID(c.Payload)
		if err != nil {
			return SessionSetDeletionRequest{}, err
		}
		m.FQCSIDs = append(m.FQCSIDs, f)
	}
	return m, nil
}

// SessionSetDeletionResponse, 3GPP TS 29.244 clause 7.4.7.2.
type SessionSetDeletionResponse struct {
	SequenceNumber uint32
	NodeID         ie.NodeID
	Cause          ie.Cause
	OffendingIE    *ie.OffendingIE
}

func (m SessionSetDeletionResponse) MsgType() MsgType { return MsgTypeSessionSetDeletionResponse }

func (m SessionSetDeletionResponse) Header() Header {
	return Header{MessageType: MsgTypeSessionSetDeletionResponse, SequenceNumber: m.SequenceNumber}
}

func (m SessionSetDeletionResponse) Body() []byte {
	children := []*ie.Ie{m.NodeID.ToIe(), m.Cause.ToIe()}
	if m.OffendingIE != nil {
		children = append(children, m.OffendingIE.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalSessionSetDeletionResponse(h Header, body []byte) (SessionSetDeletionResponse, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return SessionSetDeletionResponse{}, err
	}
	t := ie.Type(MsgTypeSessionSetDeletionResponse)

	nodeIE := findChild(children, ie.TypeNodeID)
	if nodeIE == nil {
		return SessionSetDeletionResponse{}, ie.NewMissingMandatoryIe(ie.TypeNodeID, t)
	}
	node, err := ie.UnmarshalNodeID(nodeIE.Payload)
	if err != nil {
		return SessionSetDeletionResponse{}, err
	}

	causeIE := findChild(children, ie.TypeCause)
	if causeIE == nil {
		return SessionSetDeletionResponse{}, ie.NewMissingMandatoryIe(ie.TypeCause, t)
	}
	cause, err := ie.UnmarshalCause(causeIE.Payload)
	if err != nil {
		return SessionSetDeletionResponse{}, err
	}

	m := SessionSetDeletionResponse{SequenceNumber: h.SequenceNumber, NodeID: node, Cause: cause}
	if c := findChild(children, ie.TypeOffendingIE); c != nil {
		off, err := ie.UnmarshalOffendingIE(c.Payload)
		if err != nil {
			return SessionSetDeletionResponse{}, err
		}
		m.OffendingIE = &off
	}
	return m, nil
}
