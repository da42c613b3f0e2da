// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

// Package message implements the PFCP message codec, 3GPP TS 29.244
// clause 7: the fixed header every PFCP message carries, the 23
// concrete message types built from it, and a Parse entry point that
// dispatches on message type.
package message

import (
	"encoding/binary"

	"github.com/hhorai/go-pfcp/ie"
)

// MsgType names a PFCP message type, 3GPP TS 29.244 table 7.2.1-1.
type MsgType uint8

const (
	MsgTypeHeartbeatRequest                  MsgType = 1
	MsgTypeHeartbeatResponse                 MsgType = 2
	MsgTypePFDManagementRequest               MsgType = 3
	MsgTypePFDManagementResponse              MsgType = 4
	MsgTypeAssociationSetupRequest            MsgType = 5
	MsgTypeAssociationSetupResponse           MsgType = 6
	MsgTypeAssociationUpdateRequest           MsgType = 7
	MsgTypeAssociationUpdateResponse          MsgType = 8
	MsgTypeAssociationReleaseRequest          MsgType = 9
	MsgTypeAssociationReleaseResponse         MsgType = 10
	MsgTypeVersionNotSupportedResponse        MsgType = 11
	MsgTypeNodeReportRequest                  MsgType = 12
	MsgTypeNodeReportResponse                 MsgType = 13
	MsgTypeSessionSetDeletionRequest          MsgType = 14
	MsgTypeSessionSetDeletionResponse         MsgType = 15
	MsgTypeSessionEstablishmentRequest        MsgType = 50
	MsgTypeSessionEstablishmentResponse       MsgType = 51
	MsgTypeSessionModificationRequest         MsgType = 52
	MsgTypeSessionModificationResponse        MsgType = 53
	MsgTypeSessionDeletionRequest             MsgType = 54
	MsgTypeSessionDeletionResponse            MsgType = 55
	MsgTypeSessionReportRequest               MsgType = 56
	MsgTypeSessionReportResponse              MsgType = 57
)

var msgTypeNames = map[MsgType]string{
	MsgTypeHeartbeatRequest:            "HeartbeatRequest",
	MsgTypeHeartbeatResponse:           "HeartbeatResponse",
	MsgTypePFDManagementRequest:        "PFDManagementRequest",
	MsgTypePFDManagementResponse:       "PFDManagementResponse",
	MsgTypeAssociationSetupRequest:     "AssociationSetupRequest",
	MsgTypeAssociationSetupResponse:    "AssociationSetupResponse",
	MsgTypeAssociationUpdateRequest:    "AssociationUpdateRequest",
	MsgTypeAssociationUpdateResponse:   "AssociationUpdateResponse",
	MsgTypeAssociationReleaseRequest:   "AssociationReleaseRequest",
	MsgTypeAssociationReleaseResponse:  "AssociationReleaseResponse",
	MsgTypeVersionNotSupportedResponse: "VersionNotSupportedResponse",
	MsgTypeNodeReportRequest:           "NodeReportRequest",
	MsgTypeNodeReportResponse:          "NodeReportResponse",
	MsgTypeSessionSetDeletionRequest:   "SessionSetDeletionRequest",
	MsgTypeSessionSetDeletionResponse:  "SessionSetDeletionResponse",
	MsgTypeSessionEstablishmentRequest: "SessionEstablishmentRequest",
	MsgTypeSessionEstablishmentResponse: "SessionEstablishmentResponse",
	MsgTypeSessionModificationRequest:  "SessionModificationRequest",
	MsgTypeSessionModificationResponse: "SessionModificationResponse",
	MsgTypeSessionDeletionRequest:      "SessionDeletionRequest",
	MsgTypeSessionDeletionResponse:     "SessionDeletionResponse",
	MsgTypeSessionReportRequest:        "SessionReportRequest",
	MsgTypeSessionReportResponse:       "SessionReportResponse",
}

func (t MsgType) String() string {
	if name, ok := msgTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// HasSEID reports whether this message type's header carries a Session
// Endpoint ID, per 3GPP TS 29.244 clause 7.2.2: every session-related
// message does, every node-related message doesn't.
func (t MsgType) HasSEID() bool {
	return t >= MsgTypeSessionEstablishmentRequest
}

const pfcpVersion = 1

// Header is the fixed part of every PFCP message, 3GPP TS 29.244 clause
// 7.2.2: 8 octets for node-related messages, 16 for session-related ones
// (the extra 8 being the SEID).
type Header struct {
	Version         uint8
	MessageType     MsgType
	Length          uint16 // octets following the Length field
	SEID            uint64
	HasSEID         bool
	SequenceNumber  uint32 // low 24 bits used
	MessagePriority uint8
	HasMessagePriority bool
}

// Marshal encodes the Header.
func (h Header) Marshal() []byte {
	var b0 byte = pfcpVersion << 5
	if h.HasSEID {
		b0 |= 0x01
	}
	if h.HasMessagePriority {
		b0 |= 0x02
	}

	out := []byte{b0, byte(h.MessageType), 0, 0}
	binary.BigEndian.PutUint16(out[2:4], h.Length)

	if h.HasSEID {
		seid := make([]byte, 8)
		binary.BigEndian.PutUint64(seid, h.SEID)
		out = append(out, seid...)
	}

	seq := h.SequenceNumber & 0x00FFFFFF
	out = append(out, byte(seq>>16), byte(seq>>8), byte(seq))

	if h.HasMessagePriority {
		out = append(out, h.MessagePriority<<4)
	} else {
		out = append(out, 0)
	}
	return out
}

// UnmarshalHeader decodes a Header from the front of data, returning it
// and the number of octets consumed.
func UnmarshalHeader(data []byte) (Header, int, error) {
	if len(data) < 4 {
		return Header{}, 0, ie.NewTlvTruncated(0, 4, len(data))
	}
	b0 := data[0]
	h := Header{
		Version:            b0 >> 5,
		MessageType:        MsgType(data[1]),
		Length:             binary.BigEndian.Uint16(data[2:4]),
		HasSEID:            b0&0x01 != 0,
		HasMessagePriority: b0&0x02 != 0,
	}

	offset := 4
	if h.HasSEID {
		if len(data) < offset+8 {
			return Header{}, 0, ie.NewTlvTruncated(offset, 8, len(data)-offset)
		}
		h.SEID = binary.BigEndian.Uint64(data[offset : offset+8])
		offset += 8
	}

	if len(data) < offset+4 {
		return Header{}, 0, ie.NewTlvTruncated(offset, 4, len(data)-offset)
	}
	h.SequenceNumber = uint32(data[offset])<<16 | uint32(data[offset+1])<<8 | uint32(data[offset+2])
	if h.HasMessagePriority {
		h.MessagePriority = data[offset+3] >> 4
	}
	offset += 4

	return h, offset, nil
}
