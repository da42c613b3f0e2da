// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package message

import "github.com/hhorai/go-pfcp/ie"

// NodeReportRequest, 3GPP TS 29.244 clause 7.4.5.1, lets a UP function push
// an unsolicited node-level event to its CP peer -- most commonly a User
// Plane Path Failure Report listing the remote GTP-U peers it can no
// longer reach.
type NodeReportRequest struct {
	SequenceNumber          uint32
	NodeID                  ie.NodeID
	NodeReportType          ie.NodeReportType
	UserPlanePathFailureReport *ie.PathFailureReport
}

func (m NodeReportRequest) MsgType() MsgType { return MsgTypeNodeReportRequest }

func (m NodeReportRequest) Header() Header {
	return Header{MessageType: MsgTypeNodeReportRequest, SequenceNumber: m.SequenceNumber}
}

func (m NodeReportRequest) Body() []byte {
	children := []*ie.Ie{m.NodeID.ToIe(), m.NodeReportType.ToIe()}
	if m.UserPlanePathFailureReport != nil {
		children = append(children, m.UserPlanePathFailureReport.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalNodeReportRequest(h Header, body []byte) (NodeReportRequest, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return NodeReportRequest{}, err
	}
	t := ie.Type(MsgTypeNodeReportRequest)

	nodeIE := findChild(children, ie.TypeNodeID)
	if nodeIE == nil {
		return NodeReportRequest{}, ie.NewMissingMandatoryIe(ie.TypeNodeID, t)
	}
	node, err := ie.UnmarshalNodeID(nodeIE.Payload)
	if err != nil {
		return NodeReportRequest{}, err
	}

	typeIE := findChild(children, ie.TypeNodeReportType)
	if typeIE == nil {
		return NodeReportRequest{}, ie.NewMissingMandatoryIe(ie.TypeNodeReportType, t)
	}
	nrt, err := ie.UnmarshalNodeReportType(typeIE.Payload)
	if err != nil {
		return NodeReportRequest{}, err
	}

	m := NodeReportRequest{SequenceNumber: h.SequenceNumber, NodeID: node, NodeReportType: nrt}
	if c := findChild(children, ie.TypePathFailureReport); c != nil {
		pfr, err := ie.UnmarshalPathFailureReport(c.Payload)
		if err != nil {
			return NodeReportRequest{}, err
		}
		m.UserPlanePathFailureReport = &pfr
	}
	return m, nil
}

// NodeReportResponse, 3GPP TS 29.244 clause 7.4.5.2.
type NodeReportResponse struct {
	SequenceNumber uint32
	NodeID         ie.NodeID
	Cause          ie.Cause
	OffendingIE    *ie.OffendingIE
}

func (m NodeReportResponse) MsgType() MsgType { return MsgTypeNodeReportResponse }

func (m NodeReportResponse) Header() Header {
	return Header{MessageType: MsgTypeNodeReportResponse, SequenceNumber: m.SequenceNumber}
}

func (m NodeReportResponse) Body() []byte {
	children := []*ie.Ie{m.NodeID.ToIe(), m.Cause.ToIe()}
	if m.OffendingIE != nil {
		children = append(children, m.OffendingIE.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalNodeReportResponse(h Header, body []byte) (NodeReportResponse, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return NodeReportResponse{}, err
	}
	t := ie.Type(MsgTypeNodeReportResponse)

	nodeIE := findChild(children, ie.TypeNodeID)
	if nodeIE == nil {
		return NodeReportResponse{}, ie.NewMissingMandatoryIe(ie.TypeNodeID, t)
	}
	node, err := ie.UnmarshalNodeID(nodeIE.Payload)
	if err != nil {
		return NodeReportResponse{}, err
	}

	causeIE := findChild(children, ie.TypeCause)
	if causeIE == nil {
		return NodeReportResponse{}, ie.NewMissingMandatoryIe(ie.TypeCause, t)
	}
	cause, err := ie.UnmarshalCause(causeIE.Payload)
	if err != nil {
		return NodeReportResponse{}, err
	}

	m := NodeReportResponse{SequenceNumber: h.SequenceNumber, NodeID: node, Cause: cause}
	if c := findChild(children, ie.TypeOffendingIE); c != nil {
		off, err := ie.UnmarshalOffendingIE(c.Payload)
		if err != nil {
			return NodeReportResponse{}, err
		}
		m.OffendingIE = &off
	}
	return m, nil
}
