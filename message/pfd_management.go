// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package message

import "github.com/hhorai/go-pfcp/ie"

// PFDManagementRequest, 3GPP TS 29.244 clause 7.4.3.1, lets the CP function
// push (or remove) Packet Flow Descriptions for one or more applications,
// ahead of any session that will reference them by ApplicationID.
type PFDManagementRequest struct {
	SequenceNumber      uint32
	ApplicationIDsPFDs []ie.ApplicationIDsPFDs
}

func (m PFDManagementRequest) MsgType() MsgType { return MsgTypePFDManagementRequest }

func (m PFDManagementRequest) Header() Header {
	return Header{MessageType: MsgTypePFDManagementRequest, SequenceNumber: m.SequenceNumber}
}

func (m PFDManagementRequest) Body() []byte {
	children := make([]*ie.Ie, 0, len(m.ApplicationIDsPFDs))
	for _, a := range m.ApplicationIDsPFDs {
		children = append(children, a.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalPFDManagementRequest(h Header, body []byte) (PFDManagementRequest, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return PFDManagementRequest{}, err
	}
	entries := findChildren(children, ie.TypeApplicationIDsPFDs)
	if len(entries) == 0 {
		return PFDManagementRequest{}, ie.NewMissingMandatoryIe(ie.TypeApplicationIDsPFDs, ie.Type(MsgTypePFDManagementRequest))
	}
	m := PFDManagementRequest{SequenceNumber: h.SequenceNumber}
	for _, c := range entries {
		a, err := ie.UnmarshalApplicationIDsPFDs(c.Payload)
		if err != nil {
			return PFDManagementRequest{}, err
		}
		m.ApplicationIDsPFDs = append(m.ApplicationIDsPFDs, a)
	}
	return m, nil
}

// PFDManagementResponse, 3GPP TS 29.244 clause 7.4.3.2.
type PFDManagementResponse struct {
	SequenceNumber uint32
	Cause          ie.Cause
}

func (m PFDManagementResponse) MsgType() MsgType { return MsgTypePFDManagementResponse }

func (m PFDManagementResponse) Header() Header {
	return Header{MessageType: MsgTypePFDManagementResponse, SequenceNumber: m.SequenceNumber}
}

func (m PFDManagementResponse) Body() []byte {
	return ie.MarshalAll([]*ie.Ie{m.Cause.ToIe()})
}

func UnmarshalPFDManagementResponse(h Header, body []byte) (PFDManagementResponse, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return PFDManagementResponse{}, err
	}
	causeIE := findChild(children, ie.TypeCause)
	if causeIE == nil {
		return PFDManagementResponse{}, ie.NewMissingMandatoryIe(ie.TypeCause, ie.Type(MsgTypePFDManagementResponse))
	}
	cause, err := ie.UnmarshalCause(causeIE.Payload)
	if err != nil {
		return PFDManagementResponse{}, err
	}
	return PFDManagementResponse{SequenceNumber: h.SequenceNumber, Cause: cause}, nil
}
