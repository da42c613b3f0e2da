// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package message

import "github.com/hhorai/go-pfcp/ie"

// AssociationSetupRequest, 3GPP TS 29.244 clause 7.4.4.1, establishes a
// PFCP association between a CP and UP function: each side learns the
// other's NodeID, restart epoch, and feature set before any session can
// be created between them.
type AssociationSetupRequest struct {
	SequenceNumber     uint32
	NodeID             ie.NodeID
	RecoveryTimeStamp  ie.RecoveryTimeStamp
	UPFunctionFeatures *ie.UPFunctionFeatures
	CPFunctionFeatures *ie.CPFunctionFeatures
}

func (m AssociationSetupRequest) MsgType() MsgType { return MsgTypeAssociationSetupRequest }

func (m AssociationSetupRequest) Header() Header {
	return Header{MessageType: MsgTypeAssociationSetupRequest, SequenceNumber: m.SequenceNumber}
}

func (m AssociationSetupRequest) Body() []byte {
	children := []*ie.Ie{m.NodeID.ToIe(), m.RecoveryTimeStamp.ToIe()}
	if m.UPFunctionFeatures != nil {
		children = append(children, m.UPFunctionFeatures.ToIe())
	}
	if m.CPFunctionFeatures != nil {
		children = append(children, m.CPFunctionFeatures.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalAssociationSetupRequest(h Header, body []byte) (AssociationSetupRequest, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return AssociationSetupRequest{}, err
	}
	t := ie.Type(MsgTypeAssociationSetupRequest)

	nodeIE := findChild(children, ie.TypeNodeID)
	if nodeIE == nil {
		return AssociationSetupRequest{}, ie.NewMissingMandatoryIe(ie.TypeNodeID, t)
	}
	node, err := ie.UnmarshalNodeID(nodeIE.Payload)
	if err != nil {
		return AssociationSetupRequest{}, err
	}

	rtsIE := findChild(children, ie.TypeRecoveryTimeStamp)
	if rtsIE == nil {
		return AssociationSetupRequest{}, ie.NewMissingMandatoryIe(ie.TypeRecoveryTimeStamp, t)
	}
	rts, err := ie.UnmarshalRecoveryTimeStamp(rtsIE.Payload)
	if err != nil {
		return AssociationSetupRequest{}, err
	}

	m := AssociationSetupRequest{SequenceNumber: h.SequenceNumber, NodeID: node, RecoveryTimeStamp: rts}
	if c := findChild(children, ie.TypeUPFunctionFeatures); c != nil {
		uf, err := ie.UnmarshalUPFunctionFeatures(c.Payload)
		if err != nil {
			return AssociationSetupRequest{}, err
		}
		m.UPFunctionFeatures = &uf
	}
	if c := findChild(children, ie.TypeCPFunctionFeatures); c != nil {
		cf, err := ie.UnmarshalCPFunctionFeatures(c.Payload)
		if err != nil {
			return AssociationSetupRequest{}, err
		}
		m.CPFunctionFeatures = &cf
	}
	return m, nil
}

// AssociationSetupResponse, 3GPP TS 29.244 clause 7.4.4.2.
type AssociationSetupResponse struct {
	SequenceNumber     uint32
	NodeID             ie.NodeID
	Cause              ie.Cause
	RecoveryTimeStamp  ie.RecoveryTimeStamp
	UPFunctionFeatures *ie.UPFunctionFeatures
}

func (m AssociationSetupResponse) MsgType() MsgType { return MsgTypeAssociationSetupResponse }

func (m AssociationSetupResponse) Header() Header {
	return Header{MessageType: MsgTypeAssociationSetupResponse, SequenceNumber: m.SequenceNumber}
}

func (m AssociationSetupResponse) Body() []byte {
	children := []*ie.Ie{m.NodeID.ToIe(), m.Cause.ToIe(), m.RecoveryTimeStamp.ToIe()}
	if m.UPFunctionFeatures != nil {
		children = append(children, m.UPFunctionFeatures.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalAssociationSetupResponse(h Header, body []byte) (AssociationSetupResponse, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return AssociationSetupResponse{}, err
	}
	t := ie.Type(MsgTypeAssociationSetupResponse)

	nodeIE := findChild(children, ie.TypeNodeID)
	if nodeIE == nil {
		return AssociationSetupResponse{}, ie.NewMissingMandatoryIe(ie.TypeNodeID, t)
	}
	node, err := ie.UnmarshalNodeID(nodeIE.Payload)
	if err != nil {
		return AssociationSetupResponse{}, err
	}

	causeIE := findChild(children, ie.TypeCause)
	if causeIE == nil {
		return AssociationSetupResponse{}, ie.NewMissingMandatoryIe(ie.TypeCause, t)
	}
	cause, err := ie.UnmarshalCause(causeIE.Payload)
	if err != nil {
		return AssociationSetupResponse{}, err
	}

	rtsIE := findChild(children, ie.TypeRecoveryTimeStamp)
	if rtsIE == nil {
		return AssociationSetupResponse{}, ie.NewMissingMandatoryIe(ie.TypeRecoveryTimeStamp, t)
	}
	rts, err := ie.UnmarshalRecoveryTimeStamp(rtsIE.Payload)
	if err != nil {
		return AssociationSetupResponse{}, err
	}

	m := AssociationSetupResponse{SequenceNumber: h.SequenceNumber, NodeID: node, Cause: cause, RecoveryTimeStamp: rts}
	if c := findChild(children, ie.TypeUPFunctionFeatures); c != nil {
		uf, err := ie.UnmarshalUPFunctionFeatures(c.Payload)
		if err != nil {
			return AssociationSetupResponse{}, err
		}
		m.UPFunctionFeatures = &uf
	}
	return m, nil
}

// AssociationUpdateRequest, 3GPP TS 29.244 clause 7.4.4.3, lets either
// side revise its advertised feature set without tearing the association
// down.
type AssociationUpdateRequest struct {
	SequenceNumber     uint32
	NodeID             ie.NodeID
	UPFunctionFeatures *ie.UPFunctionFeatures
	CPFunctionFeatures *ie.CPFunctionFeatures
}

func (m AssociationUpdateRequest) MsgType() MsgType { return MsgTypeAssociationUpdateRequest }

func (m AssociationUpdateRequest) Header() Header {
	return Header{MessageType: MsgTypeAssociationUpdateRequest, SequenceNumber: m.SequenceNumber}
}

func (m AssociationUpdateRequest) Body() []byte {
	children := []*ie.Ie{m.NodeID.ToIe()}
	if m.UPFunctionFeatures != nil {
		children = append(children, m.UPFunctionFeatures.ToIe())
	}
	if m.CPFunctionFeatures != nil {
		children = append(children, m.CPFunctionFeatures.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalAssociationUpdateRequest(h Header, body []byte) (AssociationUpdateRequest, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return AssociationUpdateRequest{}, err
	}
	nodeIE := findChild(children, ie.TypeNodeID)
	if nodeIE == nil {
		return AssociationUpdateRequest{}, ie.NewMissingMandatoryIe(ie.TypeNodeID, ie.Type(MsgTypeAssociationUpdateRequest))
	}
	node, err := ie.UnmarshalNodeID(nodeIE.Payload)
	if err != nil {
		return AssociationUpdateRequest{}, err
	}
	m := AssociationUpdateRequest{SequenceNumber: h.SequenceNumber, NodeID: node}
	if c := findChild(children, ie.TypeUPFunctionFeatures); c != nil {
		uf, err := ie.UnmarshalUPFunctionFeatures(c.Payload)
		if err != nil {
			return AssociationUpdateRequest{}, err
		}
		m.UPFunctionFeatures = &uf
	}
	if c := findChild(children, ie.TypeCPFunctionFeatures); c != nil {
		cf, err := ie.UnmarshalCPFunctionFeatures(c.Payload)
		if err != nil {
			return AssociationUpdateRequest{}, err
		}
		m.CPFunctionFeatures = &cf
	}
	return m, nil
}

// AssociationUpdateResponse, 3GPP TS 29.244 clause 7.4.4.4.
type AssociationUpdateResponse struct {
	SequenceNumber uint32
	NodeID         ie.NodeID
	Cause          ie.Cause
}

func (m AssociationUpdateResponse) MsgType() MsgType { return MsgTypeAssociationUpdateResponse }

func (m AssociationUpdateResponse) Header() Header {
	return Header{MessageType: MsgTypeAssociationUpdateResponse, SequenceNumber: m.SequenceNumber}
}

func (m AssociationUpdateResponse) Body() []byte {
	return ie.MarshalAll([]*ie.Ie{m.NodeID.ToIe(), m.Cause.ToIe()})
}

func UnmarshalAssociationUpdateResponse(h Header, body []byte) (AssociationUpdateResponse, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return AssociationUpdateResponse{}, err
	}
	t := ie.Type(MsgTypeAssociationUpdateResponse)
	nodeIE := findChild(children, ie.TypeNodeID)
	if nodeIE == nil {
		return AssociationUpdateResponse{}, ie.NewMissingMandatoryIe(ie.TypeNodeID, t)
	}
	node, err := ie.UnmarshalNodeID(nodeIE.Payload)
	if err != nil {
		return AssociationUpdateResponse{}, err
	}
	causeIE := findChild(children, ie.TypeCause)
	if causeIE == nil {
		return AssociationUpdateResponse{}, ie.NewMissingMandatoryIe(ie.TypeCause, t)
	}
	cause, err := ie.UnmarshalCause(causeIE.Payload)
	if err != nil {
		return AssociationUpdateResponse{}, err
	}
	return AssociationUpdateResponse{SequenceNumber: h.SequenceNumber, NodeID: node, Cause: cause}, nil
}

// AssociationReleaseRequest, 3GPP TS 29.244 clause 7.4.4.5, tears down a
// PFCP association; all sessions between the two nodes are implicitly
// released with it.
type AssociationReleaseRequest struct {
	SequenceNumber uint32
	NodeID         ie.NodeID
}

func (m AssociationReleaseRequest) MsgType() MsgType { return MsgTypeAssociationReleaseRequest }

func (m AssociationReleaseRequest) Header() Header {
	return Header{MessageType: MsgTypeAssociationReleaseRequest, SequenceNumber: m.SequenceNumber}
}

func (m AssociationReleaseRequest) Body() []byte {
	return ie.MarshalAll([]*ie.Ie{m.NodeID.ToIe()})
}

func UnmarshalAssociationReleaseRequest(h Header, body []byte) (AssociationReleaseRequest, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return AssociationReleaseRequest{}, err
	}
	nodeIE := findChild(children, ie.TypeNodeID)
	if nodeIE == nil {
		return AssociationReleaseRequest{}, ie.NewMissingMandatoryIe(ie.TypeNodeID, ie.Type(MsgTypeAssociationReleaseRequest))
	}
	node, err := ie.UnmarshalNodeID(nodeIE.Payload)
	if err != nil {
		return AssociationReleaseRequest{}, err
	}
	return AssociationReleaseRequest{SequenceNumber: h.SequenceNumber, NodeID: node}, nil
}

// AssociationReleaseResponse, 3GPP TS 29.244 clause 7.4.4.6.
type AssociationReleaseResponse struct {
	SequenceNumber uint32
	NodeID         ie.NodeID
	Cause          ie.Cause
}

func (m AssociationReleaseResponse) MsgType() MsgType { return MsgTypeAssociationReleaseResponse }

func (m AssociationReleaseResponse) Header() Header {
	return Header{MessageType: MsgTypeAssociationReleaseResponse, SequenceNumber: m.SequenceNumber}
}

func (m AssociationReleaseResponse) Body() []byte {
	return ie.MarshalAll([]*ie.Ie{m.NodeID.ToIe(), m.Cause.ToIe()})
}

func UnmarshalAssociationReleaseResponse(h Header, body []byte) (AssociationReleaseResponse, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return AssociationReleaseResponse{}, err
	}
	t := ie.Type(MsgTypeAssociationReleaseResponse)
	nodeIE := findChild(children, ie.TypeNodeID)
	if nodeIE == nil {
		return AssociationReleaseResponse{}, ie.NewMissingMandatoryIe(ie.TypeNodeID, t)
	}
	node, err := ie.UnmarshalNodeID(nodeIE.Payload)
	if err != nil {
		return AssociationReleaseResponse{}, err
	}
	causeIE := findChild(children, ie.TypeCause)
	if causeIE == nil {
		return AssociationReleaseResponse{}, ie.NewMissingMandatoryIe(ie.TypeCause, t)
	}
	cause, err := ie.UnmarshalCause(causeIE.Payload)
	if err != nil {
		return AssociationReleaseResponse{}, err
	}
	return AssociationReleaseResponse{SequenceNumber: h.SequenceNumber, NodeID: node, Cause: cause}, nil
}

// VersionNotSupportedResponse, 3GPP TS 29.244 clause 7.4.6, is the bare
// header-only response a node sends when it can't parse a peer's PFCP
// version: it carries no IEs at all.
type VersionNotSupportedResponse struct {
	SequenceNumber uint32
}

func (m VersionNotSupportedResponse) MsgType() MsgType { return MsgTypeVersionNotSupportedResponse }

func (m VersionNotSupportedResponse) Header() Header {
	return Header{MessageType: MsgTypeVersionNotSupportedResponse, SequenceNumber: m.SequenceNumber}
}

func (m VersionNotSupportedResponse) Body() []byte { return nil }

func UnmarshalVersionNotSupportedResponse(h Header, body []byte) (VersionNotSupportedResponse, error) {
	return VersionNotSupportedResponse{SequenceNumber: h.SequenceNumber}, nil
}
