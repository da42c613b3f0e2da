// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package message

import "github.com/hhorai/go-pfcp/ie"

// SessionDeletionRequest, 3GPP TS 29.244 clause 7.5.6, tears a session
// down. It carries no IEs of its own -- the header's SEID identifies the
// session to delete.
type SessionDeletionRequest struct {
	SequenceNumber uint32
	SEID           uint64
}

func (m SessionDeletionRequest) MsgType() MsgType { return MsgTypeSessionDeletionRequest }

func (m SessionDeletionRequest) Header() Header {
	return Header{MessageType: MsgTypeSessionDeletionRequest, SequenceNumber: m.SequenceNumber, HasSEID: true, SEID: m.SEID}
}

func (m SessionDeletionRequest) Body() []byte { return nil }

func UnmarshalSessionDeletionRequest(h Header, body []byte) (SessionDeletionRequest, error) {
	return SessionDeletionRequest{SequenceNumber: h.SequenceNumber, SEID: h.SEID}, nil
}

// SessionDeletionResponse, 3GPP TS 29.244 clause 7.5.7, returns the
// session's final usage for every URR it carried.
type SessionDeletionResponse struct {
	SequenceNumber uint32
	Cause          ie.Cause
	OffendingIE    *ie.OffendingIE
	UsageReports   []ie.UsageReport
}

func (m SessionDeletionResponse) MsgType() MsgType { return MsgTypeSessionDeletionResponse }

func (m SessionDeletionResponse) Header() Header {
	return Header{MessageType: MsgTypeSessionDeletionResponse, SequenceNumber: m.SequenceNumber, HasSEID: true}
}

func (m SessionDeletionResponse) Body() []byte {
	children := []*ie.Ie{m.Cause.ToIe()}
	if m.OffendingIE != nil {
		children = append(children, m.OffendingIE.ToIe())
	}
	for _, u := range m.UsageReports {
		children = append(children, u.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalSessionDeletionResponse(h Header, body []byte) (SessionDeletionResponse, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return SessionDeletionResponse{}, err
	}
	causeIE := findChild(children, ie.TypeCause)
	if causeIE == nil {
		return SessionDeletionResponse{}, ie.NewMissingMandatoryIe(ie.TypeCause, ie.Type(MsgTypeSessionDeletionResponse))
	}
	cause, err := ie.UnmarshalCause(causeIE.Payload)
	if err != nil {
		return SessionDeletionResponse{}, err
	}
	m := SessionDeletionResponse{SequenceNumber: h.SequenceNumber, Cause: cause}
	if c := findChild(children, ie.TypeOffendingIE); c != nil {
		off, err := ie.UnmarshalOffendingIE(c.Payload)
		if err != nil {
			return SessionDeletionResponse{}, err
		}
		m.OffendingIE = &off
	}
	for _, c := range findChildren(children, ie.TypeUsageReportSDR) {
		u, err := ie.UnmarshalUsageReportSDR(c.Payload)
		if err != nil {
			return SessionDeletionResponse{}, err
		}
		m.UsageReports = append(m.UsageReports, u)
	}
	return m, nil
}
