// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// CreateBAR, 3GPP TS 29.244 clause 7.5.2.6, is one Buffering Action Rule: a
// BAR ID plus buffering knobs (downlink data notification delay, suggested
// buffering packet count).
type CreateBAR struct {
	BARID                         BARID
	DownlinkDataNotificationDelay *uint8 // 50ms units
	SuggestedBufferingPackets     *uint8
}

func (v CreateBAR) Marshal() []byte {
	children := []*Ie{v.BARID.ToIe()}
	if v.DownlinkDataNotificationDelay != nil {
		children = append(children, New(TypeMinimumWaitTime, []byte{*v.DownlinkDataNotificationDelay}))
	}
	return MarshalAll(children)
}

func UnmarshalCreateBAR(payload []byte) (CreateBAR, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return CreateBAR{}, err
	}
	idIE := findChild(children, TypeBARID)
	if idIE == nil {
		return CreateBAR{}, NewMissingMandatoryIe(TypeBARID, TypeCreateBAR)
	}
	id, err := UnmarshalBARID(idIE.Payload)
	if err != nil {
		return CreateBAR{}, err
	}
	v := CreateBAR{BARID: id}
	if c := findChild(children, TypeMinimumWaitTime); c != nil && len(c.Payload) >= 1 {
		delay := c.Payload[0]
		v.DownlinkDataNotificationDelay = &delay
	}
	return v, nil
}

func (v CreateBAR) ToIe() *Ie { return New(TypeCreateBAR, v.Marshal()) }

// PeerUpRestartReport, 3GPP TS 29.244 clause 7.5.4.8, tells the CP function
// that a peer UP function whose F-SEID/NodeID this session shares has
// restarted since it last reported a RecoveryTimeStamp.
type PeerUpRestartReport struct {
	RecoveryTimeStamp RecoveryTimeStamp
}

func (v PeerUpRestartReport) Marshal() []byte {
	return MarshalAll([]*Ie{v.RecoveryTimeStamp.ToIe()})
}

func UnmarshalPeerUpRestartReport(payload []byte) (PeerUpRestartReport, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return PeerUpRestartReport{}, err
	}
	c := findChild(children, TypeRecoveryTimeStamp)
	if c == nil {
		return PeerUpRestartReport{}, NewMissingMandatoryIe(TypeRecoveryTimeStamp, TypePeerUpRestartReport)
	}
	rts, err := UnmarshalRecoveryTimeStamp(c.Payload)
	if err != nil {
		return PeerUpRestartReport{}, err
	}
	return PeerUpRestartReport{RecoveryTimeStamp: rts}, nil
}

func (v PeerUpRestartReport) ToIe() *Ie { return New(TypePeerUpRestartReport, v.Marshal()) }

// PathFailureReport, 3GPP TS 29.244 clause 7.4.5.1.2, carries the set of
// RemoteGTPUPeer addresses a Node Report Request found unreachable. The
// 3GPP grouped-IE wire form nests one RemoteGTPUPeer child per unreachable
// peer, so -- unlike most "list of X" shapes in this package that need an
// explicit count prefix -- it reuses the plain repeated-TLV convention.
type PathFailureReport struct {
	RemoteGTPUPeers []RemoteGTPUPeer
}

func (v PathFailureReport) Marshal() []byte {
	children := make([]*Ie, 0, len(v.RemoteGTPUPeers))
	for _, p := range v.RemoteGTPUPeers {
		children = append(children, p.ToIe())
	}
	return MarshalAll(children)
}

func UnmarshalPathFailureReport(payload []byte) (PathFailureReport, error) {
	children, err := UnmarshalAll(payload)
	if err != nil {
		return PathFailureReport{}, err
	}
	peerIEs := findChildren(children, TypeRemoteGTPUPeer)
	if len(peerIEs) == 0 {
		return PathFailureReport{}, NewMissingMandatoryIe(TypeRemoteGTPUPeer, TypePathFailureReport)
	}
	var v PathFailureReport
	for _, c := range peerIEs {
		p, err := UnmarshalRemoteGTPUPeer(c.Payload)
		if err != nil {
			return PathFailureReport{}, err
		}
		v.RemoteGTPUPeers = append(v.RemoteGTPUPeers, p)
	}
	return v, nil
}

func (v PathFailureReport) ToIe() *Ie { return New(TypePathFailureReport, v.Marshal()) }
