// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package message

import "github.com/hhorai/go-pfcp/ie"

// SessionModificationRequest, 3GPP TS 29.244 clause 7.5.4, carries whatever
// combination of Create/Update/Remove rule groups changed an existing
// session -- every group is optional, a modification may touch just one
// rule.
type SessionModificationRequest struct {
	SequenceNumber uint32
	FSEID          *ie.FSEID
	CreatePDRs     []ie.CreatePDR
	CreateFARs     []ie.CreateFAR
	CreateURRs     []ie.CreateURR
	CreateQERs     []ie.CreateQER
	UpdatePDRs     []ie.UpdatePDR
	UpdateFARs     []ie.UpdateFAR
	UpdateURRs     []ie.UpdateURR
	UpdateQERs     []ie.UpdateQER
	UpdateBARs     []ie.UpdateBAR
	RemovePDRs     []ie.RemovePDR
	RemoveFARs     []ie.RemoveFAR
	RemoveURRs     []ie.RemoveURR
	RemoveQERs     []ie.RemoveQER
	RemoveBARs     []ie.RemoveBAR
}

func (m SessionModificationRequest) MsgType() MsgType { return MsgTypeSessionModificationRequest }

func (m SessionModificationRequest) Header() Header {
	return Header{MessageType: MsgTypeSessionModificationRequest, SequenceNumber: m.SequenceNumber, HasSEID: true}
}

func (m SessionModificationRequest) Body() []byte {
	var children []*ie.Ie
	if m.FSEID != nil {
		children = append(children, m.FSEID.ToIe())
	}
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
	for _, p := range m.UpdatePDRs {
		children = append(children, p.ToIe())
	}
	for _, f := range m.UpdateFARs {
		children = append(children, f.ToIe())
	}
	for _, u := range m.UpdateURRs {
		children = append(children, u.ToIe())
	}
	for _, q := range m.UpdateQERs {
		children = append(children, q.ToIe())
	}
	for _, b := range m.UpdateBARs {
		children = append(children, b.ToIe())
	}
	for _, p := range m.RemovePDRs {
		children = append(children, p.ToIe())
	}
	for _, f := range m.RemoveFARs {
		children = append(children, f.ToIe())
	}
	for _, u := range m.RemoveURRs {
		children = append(children, u.ToIe())
	}
	for _, q := range m.RemoveQERs {
		children = append(children, q.ToIe())
	}
	for _, b := range m.RemoveBARs {
		children = append(children, b.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalSessionModificationRequest(h Header, body []byte) (SessionModificationRequest, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return SessionModificationRequest{}, err
	}
	m := SessionModificationRequest{SequenceNumber: h.SequenceNumber}

	if c := findChild(children, ie.TypeFSEID); c != nil {
		fseid, err := ie.UnmarshalFSEID(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.FSEID = &fseid
	}
	for _, c := range findChildren(children, ie.TypeCreatePDR) {
		v, err := ie.UnmarshalCreatePDR(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.CreatePDRs = append(m.CreatePDRs, v)
	}
	for _, c := range findChildren(children, ie.TypeCreateFAR) {
		v, err := ie.UnmarshalCreateFAR(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.CreateFARs = append(m.CreateFARs, v)
	}
	for _, c := range findChildren(children, ie.TypeCreateURR) {
		v, err := ie.UnmarshalCreateURR(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.CreateURRs = append(m.CreateURRs, v)
	}
	for _, c := range findChildren(children, ie.TypeCreateQER) {
		v, err := ie.UnmarshalCreateQER(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.CreateQERs = append(m.CreateQERs, v)
	}
	for _, c := range findChildren(children, ie.TypeUpdatePDR) {
		v, err := ie.UnmarshalUpdatePDR(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.UpdatePDRs = append(m.UpdatePDRs, v)
	}
	for _, c := range findChildren(children, ie.TypeUpdateFAR) {
		v, err := ie.UnmarshalUpdateFAR(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.UpdateFARs = append(m.UpdateFARs, v)
	}
	for _, c := range findChildren(children, ie.TypeUpdateURR) {
		v, err := ie.UnmarshalUpdateURR(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.UpdateURRs = append(m.UpdateURRs, v)
	}
	for _, c := range findChildren(children, ie.TypeUpdateQER) {
		v, err := ie.UnmarshalUpdateQER(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.UpdateQERs = append(m.UpdateQERs, v)
	}
	for _, c := range findChildren(children, ie.TypeUpdateBARWithinSessionModification) {
		v, err := ie.UnmarshalUpdateBAR(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.UpdateBARs = append(m.UpdateBARs, v)
	}
	for _, c := range findChildren(children, ie.TypeRemovePDR) {
		v, err := ie.UnmarshalRemovePDR(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.RemovePDRs = append(m.RemovePDRs, v)
	}
	for _, c := range findChildren(children, ie.TypeRemoveFAR) {
		v, err := ie.UnmarshalRemoveFAR(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.RemoveFARs = append(m.RemoveFARs, v)
	}
	for _, c := range findChildren(children, ie.TypeRemoveURR) {
		v, err := ie.UnmarshalRemoveURR(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.RemoveURRs = append(m.RemoveURRs, v)
	}
	for _, c := range findChildren(children, ie.TypeRemoveQER) {
		v, err := ie.UnmarshalRemoveQER(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.RemoveQERs = append(m.RemoveQERs, v)
	}
	for _, c := range findChildren(children, ie.TypeRemoveBAR) {
		v, err := ie.UnmarshalRemoveBAR(c.Payload)
		if err != nil {
			return SessionModificationRequest{}, err
		}
		m.RemoveBARs = append(m.RemoveBARs, v)
	}

	return m, nil
}

// SessionModificationResponse, 3GPP TS 29.244 clause 7.5.5, reports the
// outcome plus any UsageReports the modification itself triggered (e.g.
// removing a URR reports its final usage).
type SessionModificationResponse struct {
	SequenceNumber uint32
	Cause          ie.Cause
	OffendingIE    *ie.OffendingIE
	CreatedPDRs    []ie.CreatedPDR
	UsageReports   []ie.UsageReport
}

func (m SessionModificationResponse) MsgType() MsgType { return MsgTypeSessionModificationResponse }

func (m SessionModificationResponse) Header() Header {
	return Header{MessageType: MsgTypeSessionModificationResponse, SequenceNumber: m.SequenceNumber, HasSEID: true}
}

func (m SessionModificationResponse) Body() []byte {
	children := []*ie.Ie{m.Cause.ToIe()}
	if m.OffendingIE != nil {
		children = append(children, m.OffendingIE.ToIe())
	}
	for _, p := range m.CreatedPDRs {
		children = append(children, p.ToIe())
	}
	for _, u := range m.UsageReports {
		children = append(children, u.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalSessionModificationResponse(h Header, body []byte) (SessionModificationResponse, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return SessionModificationResponse{}, err
	}
	causeIE := findChild(children, ie.TypeCause)
	if causeIE == nil {
		return SessionModificationResponse{}, ie.NewMissingMandatoryIe(ie.TypeCause, ie.Type(MsgTypeSessionModificationResponse))
	}
	cause, err := ie.UnmarshalCause(causeIE.Payload)
	if err != nil {
		return SessionModificationResponse{}, err
	}
	m := SessionModificationResponse{SequenceNumber: h.SequenceNumber, Cause: cause}
	if c := findChild(children, ie.TypeOffendingIE); c != nil {
		off, err := ie.UnmarshalOffendingIE(c.Payload)
		if err != nil {
			return SessionModificationResponse{}, err
		}
		m.OffendingIE = &off
	}
	for _, c := range findChildren(children, ie.TypeCreatedPDR) {
		p, err := ie.UnmarshalCreatedPDR(c.Payload)
		if err != nil {
			return SessionModificationResponse{}, err
		}
		m.CreatedPDRs = append(m.CreatedPDRs, p)
	}
	for _, c := range findChildren(children, ie.TypeUsageReportSMR) {
		u, err := ie.UnmarshalUsageReportSMR(c.Payload)
		if err != nil {
			return SessionModificationResponse{}, err
		}
		m.UsageReports = append(m.UsageReports, u)
	}
	return m, nil
}
