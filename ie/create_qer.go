// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// BitRate holds a GBR/MBR-style pair of uplink/downlink bit rates
// (kbit/s), 3GPP TS 29.244 clauses 8.2.8/8.2.9.
type BitRate struct {
	Uplink   uint64 // 5-octet value on the wire, kbit/s
	Downlink uint64
}

func (v BitRate) marshal() []byte {
	out := make([]byte, 10)
	putU40(out[0:5], v.Uplink)
	putU40(out[5:10], v.Downlink)
	return out
}

func unmarshalBitRate(name string, t Type, payload []byte) (BitRate, error) {
	if len(payload) < 10 {
		return BitRate{}, NewInvalidLength(name, t, 10, len(payload))
	}
	return BitRate{Uplink: getU40(payload[0:5]), Downlink: getU40(payload[5:10])}, nil
}

func putU40(buf []byte, v uint64) {
	buf[0] = byte(v >> 32)
	buf[1] = byte(v >> 24)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 8)
	buf[4] = byte(v)
}

func getU40(buf []byte) uint64 {
	return uint64(buf[0])<<32 | uint64(buf[1])<<24 | uint64(buf[2])<<16 | uint64(buf[3])<<8 | uint64(buf[4])
}

// MBR, 3GPP TS 29.244 clause 8.2.8, is a QER's maximum bit rate.
type MBR struct{ BitRate }

func (v MBR) Marshal() []byte { return v.BitRate.marshal() }
func (v MBR) ToIe() *Ie       { return New(TypeMBR, v.Marshal()) }
func UnmarshalMBR(p []byte) (MBR, error) {
	br, err := unmarshalBitRate("MBR", TypeMBR, p)
	return MBR{br}, err
}

// GBR, 3GPP TS 29.244 clause 8.2.9, is a QER's guaranteed bit rate.
type GBR struct{ BitRate }

func (v GBR) Marshal() []byte { return v.BitRate.marshal() }
func (v GBR) ToIe() *Ie       { return New(TypeGBR, v.Marshal()) }
func UnmarshalGBR(p []byte) (GBR, error) {
	br, err := unmarshalBitRate("GBR", TypeGBR, p)
	return GBR{br}, err
}

// GateStatus, 3GPP TS 29.244 clause 8.2.7, packs the uplink and downlink
// gate (OPEN/CLOSED) into the low 2 bits of each nibble of one octet.
type GateStatus struct {
	Uplink   uint8 // 0 open, 1 closed
	Downlink uint8
}

func (v GateStatus) Marshal() []byte {
	return []byte{(v.Downlink&0x03)<<2 | (v.Uplink & 0x03)}
}

func UnmarshalGateStatus(payload []byte) (GateStatus, error) {
	if len(payload) < 1 {
		return GateStatus{}, NewInvalidLength("GateStatus", TypeGateStatus, 1, len(payload))
	}
	return GateStatus{Uplink: payload[0] & 0x03, Downlink: (payload[0] >> 2) & 0x03}, nil
}

func (v GateStatus) ToIe() *Ie { return New(TypeGateStatus, v.Marshal()) }

// CreateQER, 3GPP TS 29.244 clause 7.5.2.5, is one QoS Enforcement Rule: a
// QER ID, gate status, and optional bit-rate/marking limits.
type CreateQER struct {
	QERID                   QERID
	GateStatus              GateStatus
	MBR                     *MBR
	GBR                     *GBR
	QFI                     *QFI
	RQI                     *RQI
	TransportLevelMarking   *uint16
}

func (v CreateQER) Marshal() []byte {
	children := []*Ie{v.QERID.ToIe(), v.GateStatus.ToIe()}
	if v.MBR != nil {
		children = append(children, v.MBR.ToIe())
	}
	if v.GBR != nil {
		children = append(children, v.GBR.ToIe())
	}
	if v.QFI != nil {
		children = append(children, v.QFI.ToIe())
	}
	if v.RQI != nil {
		children = append(children, v.RQI.ToIe())
	}
	if v.TransportLevelMarking != nil {
		b := make([]byte, 2)
		putUint16(b, *v.TransportLevelMarking)
		children = append(children, New(TypeTransportLevelMarking, b))
	}
	return MarshalAll(children)
}

func UnmarshalCreateQER(payload []byte) (CreateQER, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return CreateQER{}, err
	}
	qIE := findChild(children, TypeQERID)
	if qIE == nil {
		return CreateQER{}, NewMissingMandatoryIe(TypeQERID, TypeCreateQER)
	}
	qID, err := UnmarshalQERID(qIE.Payload)
	if err != nil {
		return CreateQER{}, err
	}
	gsIE := findChild(children, TypeGateStatus)
	if gsIE == nil {
		return CreateQER{}, NewMissingMandatoryIe(TypeGateStatus, TypeCreateQER)
	}
	gs, err := UnmarshalGateStatus(gsIE.Payload)
	if err != nil {
		return CreateQER{}, err
	}

	v := CreateQER{QERID: qID, GateStatus: gs}
	if c := findChild(children, TypeMBR); c != nil {
		m, err := UnmarshalMBR(c.Payload)
		if err != nil {
			return CreateQER{}, err
		}
		v.MBR = &m
	}
	if c := findChild(children, TypeGBR); c != nil {
		g, err := UnmarshalGBR(c.Payload)
		if err != nil {
			return CreateQER{}, err
		}
		v.GBR = &g
	}
	if c := findChild(children, TypeQFI); c != nil {
		q, err := UnmarshalQFI(c.Payload)
		if err != nil {
			return CreateQER{}, err
		}
		v.QFI = &q
	}
	if c := findChild(children, TypeRQI); c != nil {
		r, err := UnmarshalRQI(c.Payload)
		if err != nil {
			return CreateQER{}, err
		}
		v.RQI = &r
	}
	if c := findChild(children, TypeTransportLevelMarking); c != nil {
		if len(c.Payload) < 2 {
			return CreateQER{}, NewInvalidLength("TransportLevelMarking", TypeTransportLevelMarking, 2, len(c.Payload))
		}
		tlm := getUint16(c.Payload)
		v.TransportLevelMarking = &tlm
	}
	return v, nil
}

func (v CreateQER) ToIe() *Ie { return New(TypeCreateQER, v.Marshal()) }
