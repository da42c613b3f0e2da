// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// DownlinkDataReport, 3GPP TS 29.244 clause 7.5.8.2, names the PDR whose
// downlink packets arrived while the session was buffering -- the trigger
// for a Session Report Request's ReportType.DLDR bit.
type DownlinkDataReport struct {
	PDRID PDRID
}

func (v DownlinkDataReport) Marshal() []byte {
	return MarshalAll([]*Ie{v.PDRID.ToIe()})
}

func UnmarshalDownlinkDataReport(payload []byte) (DownlinkDataReport, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return DownlinkDataReport{}, err
	}
	c := findChild(children, TypePDRID)
	if c == nil {
		return DownlinkDataReport{}, NewMissingMandatoryIe(TypePDRID, TypeDownlinkDataReport)
	}
	id, err := UnmarshalPDRID(c.Payload)
	if err != nil {
		return DownlinkDataReport{}, err
	}
	return DownlinkDataReport{PDRID: id}, nil
}

func (v DownlinkDataReport) ToIe() *Ie { return New(TypeDownlinkDataReport, v.Marshal()) }

// ErrorIndicationReport, 3GPP TS 29.244 clause 7.5.8.4, carries the
// F-TEID a GTP-U Error Indication was received for -- the trigger for a
// Session Report Request's ReportType.ERIR bit.
type ErrorIndicationReport struct {
	FTEID FTEID
}

func (v ErrorIndicationReport) Marshal() []byte {
	return MarshalAll([]*Ie{v.FTEID.ToIe()})
}

func UnmarshalErrorIndicationReport(payload []byte) (ErrorIndicationReport, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return ErrorIndicationReport{}, err
	}
	c := findChild(children, TypeFTEID)
	if c == nil {
		return ErrorIndicationReport{}, NewMissingMandatoryIe(TypeFTEID, TypeErrorIndicationReport)
	}
	f, err := UnmarshalFTEID(c.Payload)
	if err != nil {
		return ErrorIndicationReport{}, err
	}
	return ErrorIndicationReport{FTEID: f}, nil
}

func (v ErrorIndicationReport) ToIe() *Ie { return New(TypeErrorIndicationReport, v.Marshal()) }
