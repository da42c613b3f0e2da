// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package message

import "github.com/hhorai/go-pfcp/ie"

// HeartbeatRequest, 3GPP TS 29.244 clause 7.4.1.1, is the liveness probe a
// PFCP node sends its peer; the peer's RecoveryTimeStamp on the response
// lets the sender detect a peer restart across the probe interval.
type HeartbeatRequest struct {
	SequenceNumber    uint32
	RecoveryTimeStamp ie.RecoveryTimeStamp
}

func NewHeartbeatRequest(seq uint32, recovery ie.RecoveryTimeStamp) HeartbeatRequest {
	return HeartbeatRequest{SequenceNumber: seq, RecoveryTimeStamp: recovery}
}

func (m HeartbeatRequest) MsgType() MsgType { return MsgTypeHeartbeatRequest }

func (m HeartbeatRequest) Header() Header {
	return Header{MessageType: MsgTypeHeartbeatRequest, SequenceNumber: m.SequenceNumber}
}

func (m HeartbeatRequest) Body() []byte {
	return ie.MarshalAll([]*ie.Ie{m.RecoveryTimeStamp.ToIe()})
}

func UnmarshalHeartbeatRequest(h Header, body []byte) (HeartbeatRequest, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return HeartbeatRequest{}, err
	}
	c := findChild(children, ie.TypeRecoveryTimeStamp)
	if c == nil {
		return HeartbeatRequest{}, ie.NewMissingMandatoryIe(ie.TypeRecoveryTimeStamp, ie.Type(MsgTypeHeartbeatRequest))
	}
	rts, err := ie.UnmarshalRecoveryTimeStamp(c.Payload)
	if err != nil {
		return HeartbeatRequest{}, err
	}
	return HeartbeatRequest{SequenceNumber: h.SequenceNumber, RecoveryTimeStamp: rts}, nil
}

// HeartbeatResponse, 3GPP TS 29.244 clause 7.4.1.2, echoes the requester's
// sequence number with the responder's own RecoveryTimeStamp.
type HeartbeatResponse struct {
	SequenceNumber    uint32
	RecoveryTimeStamp ie.RecoveryTimeStamp
}

func NewHeartbeatResponse(seq uint32, recovery ie.RecoveryTimeStamp) HeartbeatResponse {
	return HeartbeatResponse{SequenceNumber: seq, RecoveryTimeStamp: recovery}
}

func (m HeartbeatResponse) MsgType() MsgType { return MsgTypeHeartbeatResponse }

func (m HeartbeatResponse) Header() Header {
	return Header{MessageType: MsgTypeHeartbeatResponse, SequenceNumber: m.SequenceNumber}
}

func (m HeartbeatResponse) Body() []byte {
	return ie.MarshalAll([]*ie.Ie{m.RecoveryTimeStamp.ToIe()})
}

func UnmarshalHeartbeatResponse(h Header, body []byte) (HeartbeatResponse, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return HeartbeatResponse{}, err
	}
	c := findChild(children, ie.TypeRecoveryTimeStamp)
	if c == nil {
		return HeartbeatResponse{}, ie.NewMissingMandatoryIe(ie.TypeRecoveryTimeStamp, ie.Type(MsgTypeHeartbeatResponse))
	}
	rts, err := ie.UnmarshalRecoveryTimeStamp(c.Payload)
	if err != nil {
		return HeartbeatResponse{}, err
	}
	return HeartbeatResponse{SequenceNumber: h.SequenceNumber, RecoveryTimeStamp: rts}, nil
}
