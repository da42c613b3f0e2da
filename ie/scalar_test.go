// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

import (
	"net"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRecoveryTimeStampRoundTrip(t *testing.T) {
	want := NewRecoveryTimeStamp(time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC))
	got, err := UnmarshalRecoveryTimeStamp(want.Marshal())
	require.NoError(t, err)
	require.True(t, got.Time.Equal(want.Time))
}

func TestRecoveryTimeStampShortPayload(t *testing.T) {
	_, err := UnmarshalRecoveryTimeStamp([]byte{0x01, 0x02})
	require.Error(t, err)
	var pfcpErr *Error
	require.ErrorAs(t, err, &pfcpErr)
	require.Equal(t, KindInvalidLength, pfcpErr.Kind)
}

func TestNodeIDRoundTripIPv4(t *testing.T) {
	want := NewNodeIDIPv4(net.ParseIP("203.0.113.5"))
	got, err := UnmarshalNodeID(want.Marshal())
	require.NoError(t, err)
	if diff := cmp.Diff(want.IPv4.String(), got.IPv4.String()); diff != "" {
		t.Fatalf("NodeID IPv4 mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, NodeIDTypeIPv4, got.Type)
}

func TestNodeIDRoundTripFQDN(t *testing.T) {
	want := NewNodeIDFQDN("upf.example.com")
	got, err := UnmarshalNodeID(want.Marshal())
	require.NoError(t, err)
	require.Equal(t, want.FQDN, got.FQDN)
	require.Equal(t, NodeIDTypeFQDN, got.Type)
}

func TestCauseRejectsUnknownDiscriminant(t *testing.T) {
	_, err := UnmarshalCause([]byte{0x02})
	require.Error(t, err)
}

func TestFSEIDRoundTripDualStack(t *testing.T) {
	want := NewFSEID(0x1122334455667788, net.ParseIP("192.0.2.1"), net.ParseIP("2001:db8::1"))
	got, err := UnmarshalFSEID(want.Marshal())
	require.NoError(t, err)
	require.Equal(t, want.SEID, got.SEID)
	require.True(t, got.HasV4())
	require.True(t, got.HasV6())
	require.Equal(t, want.IPv4.To4().String(), got.IPv4.String())
	require.Equal(t, want.IPv6.To16().String(), got.IPv6.String())
}

func TestQFIMasksTo6Bits(t *testing.T) {
	v := NewQFI(0xFF)
	require.Equal(t, byte(0x3F), v.Marshal()[0])
}

func TestIterStopsCleanlyOnTruncatedTLV(t *testing.T) {
	// A declared length of 10 with only 2 payload bytes remaining.
	buf := []byte{0x00, 0x01, 0x00, 0x0A, 0x00, 0x00}
	it := NewIter(buf)
	ie := it.Next()
	require.Nil(t, ie)
	require.Error(t, it.Err())
}

func TestUnmarshalAllIgnoresUnknownTypeForwardCompat(t *testing.T) {
	// Two IEs back-to-back: one with a type no constant names (0x7FFE),
	// one ordinary RecoveryTimeStamp. Unmarshal must not error on the
	// unrecognized type -- only a top-level message type is rejected.
	unknown := New(Type(0x7FFE), []byte{0xAA, 0xBB})
	rts := NewRecoveryTimeStamp(time.Unix(0, 0).UTC()).ToIe()
	buf := append(unknown.Marshal(), rts.Marshal()...)

	children, err := UnmarshalAll(buf)
	require.NoError(t, err)
	require.Len(t, children, 2)
	require.Equal(t, Type(0x7FFE), children[0].Type)
	require.Equal(t, TypeRecoveryTimeStamp, children[1].Type)
}
