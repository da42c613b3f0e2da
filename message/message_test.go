// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package message

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hhorai/go-pfcp/ie"
)

func mustParseIPv4(s string) net.IP { return net.ParseIP(s).To4() }

func samplePDR(t *testing.T) ie.CreatePDR {
	t.Helper()
	return ie.CreatePDR{
		PDRID:      ie.NewPDRID(1),
		Precedence: ie.NewPrecedence(100),
		PDI:        ie.PDI{SourceInterface: ie.SourceInterfaceAccess},
	}
}

func sampleFAR(t *testing.T) ie.CreateFAR {
	t.Helper()
	far, err := ie.NewCreateFARBuilder().UplinkToCore(ie.NewFARID(1), nil).Build()
	require.NoError(t, err)
	return far
}

func TestHeartbeatRequestGoldenBytes(t *testing.T) {
	rts := ie.NewRecoveryTimeStamp(time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC))
	m := NewHeartbeatRequest(0x000001, rts)

	out := Marshal(m)

	// Version=1, S=0 -> 0x20; MessageType=1; Length = 4 (RecoveryTimeStamp
	// TLV header) + 4 (payload) + 4 (sequence+spare) = 12.
	require.Equal(t, byte(0x20), out[0])
	require.Equal(t, byte(MsgTypeHeartbeatRequest), out[1])
	require.Equal(t, uint16(12), uint16(out[2])<<8|uint16(out[3]))
	require.Equal(t, []byte{0x00, 0x00, 0x01, 0x00}, out[4:8]) // sequence + spare
}

func TestHeartbeatRequestRoundTripViaParse(t *testing.T) {
	rts := ie.NewRecoveryTimeStamp(time.Now().Truncate(time.Second).UTC())
	want := NewHeartbeatRequest(42, rts)

	decoded, err := Parse(Marshal(want))
	require.NoError(t, err)

	got, ok := decoded.(HeartbeatRequest)
	require.True(t, ok)
	require.Equal(t, want.SequenceNumber, got.SequenceNumber)
	require.True(t, got.RecoveryTimeStamp.Time.Equal(want.RecoveryTimeStamp.Time))
}

func TestParseRejectsUnknownMessageType(t *testing.T) {
	h := Header{MessageType: MsgType(200), SequenceNumber: 1}
	h.Length = uint16(len(h.Marshal()) - 4)
	_, err := Parse(h.Marshal())
	require.Error(t, err)
}

func TestSessionEstablishmentRequestCarriesZeroSEIDAndRoundTrips(t *testing.T) {
	req, err := NewSessionEstablishmentRequestBuilder(7).
		NodeID(ie.NewNodeIDIPv4(mustParseIPv4("198.51.100.1"))).
		FSEID(ie.NewFSEID(1, mustParseIPv4("198.51.100.1"), nil)).
		AddCreatePDR(samplePDR(t)).
		AddCreateFAR(sampleFAR(t)).
		Build()
	require.NoError(t, err)

	h := req.Header()
	require.True(t, h.HasSEID)
	require.Equal(t, uint64(0), h.SEID)

	decoded, err := Parse(Marshal(req))
	require.NoError(t, err)
	got, ok := decoded.(SessionEstablishmentRequest)
	require.True(t, ok)
	require.Len(t, got.CreatePDRs, 1)
	require.Len(t, got.CreateFARs, 1)
	require.Equal(t, req.CreatePDRs[0].PDRID, got.CreatePDRs[0].PDRID)
}

func TestSessionEstablishmentRequestBuilderRejectsMissingRules(t *testing.T) {
	_, err := NewSessionEstablishmentRequestBuilder(1).
		NodeID(ie.NewNodeIDIPv4(mustParseIPv4("198.51.100.1"))).
		FSEID(ie.NewFSEID(1, mustParseIPv4("198.51.100.1"), nil)).
		Build()
	require.Error(t, err)
}
