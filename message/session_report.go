// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package message

import "github.com/hhorai/go-pfcp/ie"

// SessionReportRequest, 3GPP TS 29.244 clause 7.5.8, is the UP function's
// unsolicited push of session-level events to the CP function: buffered
// downlink data arriving, a URR crossing a threshold, a GTP-U error
// indication, or the session going inactive -- ReportType's bits say which
// of the following groups are populated.
type SessionReportRequest struct {
	SequenceNumber         uint32
	ReportType             ie.ReportType
	DownlinkDataReport     *ie.DownlinkDataReport
	UsageReports           []ie.UsageReport
	ErrorIndicationReports []ie.ErrorIndicationReport
}

func (m SessionReportRequest) MsgType() MsgType { return MsgTypeSessionReportRequest }

func (m SessionReportRequest) Header() Header {
	return Header{MessageType: MsgTypeSessionReportRequest, SequenceNumber: m.SequenceNumber, HasSEID: true}
}

func (m SessionReportRequest) Body() []byte {
	children := []*ie.Ie{m.ReportType.ToIe()}
	if m.DownlinkDataReport != nil {
		children = append(children, m.DownlinkDataReport.ToIe())
	}
	for _, u := range m.UsageReports {
		children = append(children, u.ToIe())
	}
	for _, e := range m.ErrorIndicationReports {
		children = append(children, e.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalSessionReportRequest(h Header, body []byte) (SessionReportRequest, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return SessionReportRequest{}, err
	}
	t := ie.Type(MsgTypeSessionReportRequest)

	rtIE := findChild(children, ie.TypeReportType)
	if rtIE == nil {
		return SessionReportRequest{}, ie.NewMissingMandatoryIe(ie.TypeReportType, t)
	}
	rt, err := ie.UnmarshalReportType(rtIE.Payload)
	if err != nil {
		return SessionReportRequest{}, err
	}

	m := SessionReportRequest{SequenceNumber: h.SequenceNumber, ReportType: rt}
	if c := findChild(children, ie.TypeDownlinkDataReport); c != nil {
		ddr, err := ie.UnmarshalDownlinkDataReport(c.Payload)
		if err != nil {
			return SessionReportRequest{}, err
		}
		m.DownlinkDataReport = &ddr
	}
	for _, c := range findChildren(children, ie.TypeUsageReportSRR) {
		u, err := ie.UnmarshalUsageReportSRR(c.Payload)
		if err != nil {
			return SessionReportRequest{}, err
		}
		m.UsageReports = append(m.UsageReports, u)
	}
	for _, c := range findChildren(children, ie.TypeErrorIndicationReport) {
		e, err := ie.UnmarshalErrorIndicationReport(c.Payload)
		if err != nil {
			return SessionReportRequest{}, err
		}
		m.ErrorIndicationReports = append(m.ErrorIndicationReports, e)
	}
	return m, nil
}

// SessionReportResponse, 3GPP TS 29.244 clause 7.5.9, acknowledges a
// Session Report Request; a CP function that can't locate the session it
// names sets Cause and, commonly, requests the session be deleted via
// UpdateBAR-shaped flags carried on an immediately following Session
// Modification/Deletion -- out of scope for this response itself.
type SessionReportResponse struct {
	SequenceNumber uint32
	Cause          ie.Cause
	OffendingIE    *ie.OffendingIE
}

func (m SessionReportResponse) MsgType() MsgType { return MsgTypeSessionReportResponse }

func (m SessionReportResponse) Header() Header {
	return Header{MessageType: MsgTypeSessionReportResponse, SequenceNumber: m.SequenceNumber, HasSEID: true}
}

func (m SessionReportResponse) Body() []byte {
	children := []*ie.Ie{m.Cause.ToIe()}
	if m.OffendingIE != nil {
		children = append(children, m.OffendingIE.ToIe())
	}
	return ie.MarshalAll(children)
}

func UnmarshalSessionReportResponse(h Header, body []byte) (SessionReportResponse, error) {
	children, err := ie.UnmarshalAll(body)
	if err != nil {
		return SessionReportResponse{}, err
	}
	causeIE := findChild(children, ie.TypeCause)
	if causeIE == nil {
		return SessionReportResponse{}, ie.NewMissingMandatoryIe(ie.TypeCause, ie.Type(MsgTypeSessionReportResponse))
	}
	cause, err := ie.UnmarshalCause(causeIE.Payload)
	if err != nil {
		return SessionReportResponse{}, err
	}
	m := SessionReportResponse{SequenceNumber: h.SequenceNumber, Cause: cause}
	if c := findChild(children, ie.TypeOffendingIE); c != nil {
		off, err := ie.UnmarshalOffendingIE(c.Payload)
		if err != nil {
			return SessionReportResponse{}, err
		}
		m.OffendingIE = &off
	}
	return m, nil
}
