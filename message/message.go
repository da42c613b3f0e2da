// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package message

import "github.com/hhorai/go-pfcp/ie"

// Message is implemented by every concrete PFCP message type. Body()
// returns the message's IEs in canonical wire order, already concatenated;
// Marshal prepends the Header.
type Message interface {
	MsgType() MsgType
	Header() Header
	Body() []byte
}

// Marshal encodes a full PFCP message: Header followed by Body, with the
// Header's Length field set to the body's octet count plus the header
// bytes that count towards Length (everything after the Length field
// itself, per 3GPP TS 29.244 clause 7.2.2).
func Marshal(m Message) []byte {
	h := m.Header()
	body := m.Body()

	lengthFields := len(h.Marshal()) - 4 // everything after Version/Type/Length
	h.Length = uint16(lengthFields + len(body))

	return append(h.Marshal(), body...)
}

// findChild and findChildren mirror the ie package's helpers of the same
// name: messages are, structurally, one more level of grouped IE.
func findChild(children []*ie.Ie, t ie.Type) *ie.Ie {
	for _, c := range children {
		if c.Type == t {
			return c
		}
	}
	return nil
}

func findChildren(children []*ie.Ie, t ie.Type) []*ie.Ie {
	var out []*ie.Ie
	for _, c := range children {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// IEIter is a typed view over a message's (or grouped IE's) decoded
// children, following original_source's ies(IeType) iterator: Single for a
// mandatory/optional IE expected at most once, Multiple for a repeated IE
// family (e.g. CreatePDR*N), and Generic for scanning the raw, untyped
// bag of children that weren't promoted to a named field -- the storage
// this codec's forward-compatibility guarantee relies on.
type IEIter struct {
	children []*ie.Ie
}

// NewIEIter wraps a decoded child list for iteration.
func NewIEIter(children []*ie.Ie) IEIter { return IEIter{children: children} }

// Single returns the first child of type t, or nil.
func (it IEIter) Single(t ie.Type) *ie.Ie { return findChild(it.children, t) }

// Multiple returns every child of type t, in wire order.
func (it IEIter) Multiple(t ie.Type) []*ie.Ie { return findChildren(it.children, t) }

// Generic returns every child whose type is not in known, for callers that
// want to preserve unrecognized IEs across a decode/re-encode round trip.
func (it IEIter) Generic(known map[ie.Type]bool) []*ie.Ie {
	var out []*ie.Ie
	for _, c := range it.children {
		if !known[c.Type] {
			out = append(out, c)
		}
	}
	return out
}

// Parse decodes a full PFCP message (header + body) and dispatches on
// message type, returning the concrete typed Message. Unknown message
// types decode the header successfully, then Parse itself returns an
// InvalidValue error for the message type -- a message this codec's release doesn't name
// is not something a caller can safely act on, unlike an unknown IE.
func Parse(data []byte) (Message, error) {
	h, consumed, err := UnmarshalHeader(data)
	if err != nil {
		return nil, err
	}
	body := data[consumed:]

	switch h.MessageType {
	case MsgTypeHeartbeatRequest:
		return UnmarshalHeartbeatRequest(h, body)
	case MsgTypeHeartbeatResponse:
		return UnmarshalHeartbeatResponse(h, body)
	case MsgTypeAssociationSetupRequest:
		return UnmarshalAssociationSetupRequest(h, body)
	case MsgTypeAssociationSetupResponse:
		return UnmarshalAssociationSetupResponse(h, body)
	case MsgTypeAssociationUpdateRequest:
		return UnmarshalAssociationUpdateRequest(h, body)
	case MsgTypeAssociationUpdateResponse:
		return UnmarshalAssociationUpdateResponse(h, body)
	case MsgTypeAssociationReleaseRequest:
		return UnmarshalAssociationReleaseRequest(h, body)
	case MsgTypeAssociationReleaseResponse:
		return UnmarshalAssociationReleaseResponse(h, body)
	case MsgTypeVersionNotSupportedResponse:
		return UnmarshalVersionNotSupportedResponse(h, body)
	case MsgTypeNodeReportRequest:
		return UnmarshalNodeReportRequest(h, body)
	case MsgTypeNodeReportResponse:
		return UnmarshalNodeReportResponse(h, body)
	case MsgTypePFDManagementRequest:
		return UnmarshalPFDManagementRequest(h, body)
	case MsgTypePFDManagementResponse:
		return UnmarshalPFDManagementResponse(h, body)
	case MsgTypeSessionSetDeletionRequest:
		return UnmarshalSessionSetDeletionRequest(h, body)
	case MsgTypeSessionSetDeletionResponse:
		return UnmarshalSessionSetDeletionResponse(h, body)
	case MsgTypeSessionEstablishmentRequest:
		return UnmarshalSessionEstablishmentRequest(h, body)
	case MsgTypeSessionEstablishmentResponse:
		return UnmarshalSessionEstablishmentResponse(h, body)
	case MsgTypeSessionModificationRequest:
		return UnmarshalSessionModificationRequest(h, body)
	case MsgTypeSessionModificationResponse:
		return UnmarshalSessionModificationResponse(h, body)
	case MsgTypeSessionDeletionRequest:
		return UnmarshalSessionDeletionRequest(h, body)
	case MsgTypeSessionDeletionResponse:
		return UnmarshalSessionDeletionResponse(h, body)
	case MsgTypeSessionReportRequest:
		return UnmarshalSessionReportRequest(h, body)
	case MsgTypeSessionReportResponse:
		return UnmarshalSessionReportResponse(h, body)
	default:
		return nil, ie.NewInvalidValueString("MessageType", h.MessageType.String(), "must be a recognized 3GPP TS 29.244 table 7.2.1-1 value")
	}
}
