// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package message

import "github.com/hhorai/go-pfcp/ie"

// SessionEstablishmentRequestBuilder accumulates a session's initial rule
// set before Build() checks the mandatory fields: NodeID, FSEID, and at
// least one each of CreatePDR/CreateFAR (3GPP TS 29.244 table 7.5.2.1-1).
type SessionEstablishmentRequestBuilder struct {
	m SessionEstablishmentRequest
}

func NewSessionEstablishmentRequestBuilder(seq uint32) *SessionEstablishmentRequestBuilder {
	return &SessionEstablishmentRequestBuilder{m: SessionEstablishmentRequest{SequenceNumber: seq}}
}

func (b *SessionEstablishmentRequestBuilder) NodeID(n ie.NodeID) *SessionEstablishmentRequestBuilder {
	b.m.NodeID = n
	return b
}

func (b *SessionEstablishmentRequestBuilder) FSEID(f ie.FSEID) *SessionEstablishmentRequestBuilder {
	b.m.FSEID = f
	return b
}

func (b *SessionEstablishmentRequestBuilder) AddCreatePDR(p ie.CreatePDR) *SessionEstablishmentRequestBuilder {
	b.m.CreatePDRs = append(b.m.CreatePDRs, p)
	return b
}

func (b *SessionEstablishmentRequestBuilder) AddCreateFAR(f ie.CreateFAR) *SessionEstablishmentRequestBuilder {
	b.m.CreateFARs = append(b.m.CreateFARs, f)
	return b
}

func (b *SessionEstablishmentRequestBuilder) AddCreateURR(u ie.CreateURR) *SessionEstablishmentRequestBuilder {
	b.m.CreateURRs = append(b.m.CreateURRs, u)
	return b
}

func (b *SessionEstablishmentRequestBuilder) AddCreateQER(q ie.CreateQER) *SessionEstablishmentRequestBuilder {
	b.m.CreateQERs = append(b.m.CreateQERs, q)
	return b
}

func (b *SessionEstablishmentRequestBuilder) CreateBAR(bar ie.CreateBAR) *SessionEstablishmentRequestBuilder {
	b.m.CreateBAR = &bar
	return b
}

func (b *SessionEstablishmentRequestBuilder) Build() (SessionEstablishmentRequest, error) {
	t := ie.Type(MsgTypeSessionEstablishmentRequest)
	if b.m.NodeID.IPv4 == nil && b.m.NodeID.IPv6 == nil && b.m.NodeID.FQDN == "" {
		return SessionEstablishmentRequest{}, ie.NewMissingMandatoryIe(ie.TypeNodeID, t)
	}
	if b.m.FSEID.IPv4 == nil && b.m.FSEID.IPv6 == nil {
		return SessionEstablishmentRequest{}, ie.NewMissingMandatoryIe(ie.TypeFSEID, t)
	}
	if len(b.m.CreatePDRs) == 0 {
		return SessionEstablishmentRequest{}, ie.NewMissingMandatoryIe(ie.TypeCreatePDR, t)
	}
	if len(b.m.CreateFARs) == 0 {
		return SessionEstablishmentRequest{}, ie.NewMissingMandatoryIe(ie.TypeCreateFAR, t)
	}
	return b.m, nil
}
