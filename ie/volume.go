// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

const (
	volFlagTOVOL = 0x01
	volFlagULVOL = 0x02
	volFlagDLVOL = 0x04
)

// Volume is the shared shape behind VolumeThreshold, VolumeQuota,
// SubsequentVolumeThreshold, and SubsequentVolumeQuota: a flags octet
// selecting which of total/uplink/downlink octet counts follow, each
// present only when its flag bit is set and each 8 octets wide.
type Volume struct {
	Total    uint64
	HasTotal bool
	Uplink   uint64
	HasUplink bool
	Downlink  uint64
	HasDownlink bool
}

func (v Volume) marshal() []byte {
	var flags byte
	if v.HasTotal {
		flags |= volFlagTOVOL
	}
	if v.HasUplink {
		flags |= volFlagULVOL
	}
	if v.HasDownlink {
		flags |= volFlagDLVOL
	}
	out := []byte{flags}
	if v.HasTotal {
		b := make([]byte, 8)
		putUint64(b, v.Total)
		out = append(out, b...)
	}
	if v.HasUplink {
		b := make([]byte, 8)
		putUint64(b, v.Uplink)
		out = append(out, b...)
	}
	if v.HasDownlink {
		b := make([]byte, 8)
		putUint64(b, v.Downlink)
		out = append(out, b...)
	}
	return out
}

func unmarshalVolume(name string, t Type, payload []byte) (Volume, error) {
	if len(payload) < 1 {
		return Volume{}, NewInvalidLength(name, t, 1, len(payload))
	}
	flags := payload[0]
	offset := 1
	var v Volume
	if flags&volFlagTOVOL != 0 {
		if len(payload) < offset+8 {
			return Volume{}, NewInvalidLength(name+" total", t, offset+8, len(payload))
		}
		v.Total = getUint64(payload[offset : offset+8])
		v.HasTotal = true
		offset += 8
	}
	if flags&volFlagULVOL != 0 {
		if len(payload) < offset+8 {
			return Volume{}, NewInvalidLength(name+" uplink", t, offset+8, len(payload))
		}
		v.Uplink = getUint64(payload[offset : offset+8])
		v.HasUplink = true
		offset += 8
	}
	if flags&volFlagDLVOL != 0 {
		if len(payload) < offset+8 {
			return Volume{}, NewInvalidLength(name+" downlink", t, offset+8, len(payload))
		}
		v.Downlink = getUint64(payload[offset : offset+8])
		v.HasDownlink = true
		offset += 8
	}
	return v, nil
}

// VolumeThreshold, 3GPP TS 29.244 clause 8.2.41.
type VolumeThreshold struct{ Volume }

func (v VolumeThreshold) Marshal() []byte { return v.Volume.marshal() }
func (v VolumeThreshold) ToIe() *Ie       { return New(TypeVolumeThreshold, v.Marshal()) }
func UnmarshalVolumeThreshold(p []byte) (VolumeThreshold, error) {
	vol, err := unmarshalVolume("VolumeThreshold", TypeVolumeThreshold, p)
	return VolumeThreshold{vol}, err
}

// VolumeQuota, 3GPP TS 29.244 clause 8.2.103.
type VolumeQuota struct{ Volume }

func (v VolumeQuota) Marshal() []byte { return v.Volume.marshal() }
func (v VolumeQuota) ToIe() *Ie       { return New(TypeVolumeQuota, v.Marshal()) }
func UnmarshalVolumeQuota(p []byte) (VolumeQuota, error) {
	vol, err := unmarshalVolume("VolumeQuota", TypeVolumeQuota, p)
	return VolumeQuota{vol}, err
}

// SubsequentVolumeThreshold, 3GPP TS 29.244 clause 8.2.47.
type SubsequentVolumeThreshold struct{ Volume }

func (v SubsequentVolumeThreshold) Marshal() []byte { return v.Volume.marshal() }
func (v SubsequentVolumeThreshold) ToIe() *Ie {
	return New(TypeSubsequentVolumeThresh, v.Marshal())
}
func UnmarshalSubsequentVolumeThreshold(p []byte) (SubsequentVolumeThreshold, error) {
	vol, err := unmarshalVolume("SubsequentVolumeThreshold", TypeSubsequentVolumeThresh, p)
	return SubsequentVolumeThreshold{vol}, err
}

// SubsequentVolumeQuota, 3GPP TS 29.244 clause 8.2.107.
type SubsequentVolumeQuota struct{ Volume }

func (v SubsequentVolumeQuota) Marshal() []byte { return v.Volume.marshal() }
func (v SubsequentVolumeQuota) ToIe() *Ie {
	return New(TypeSubsequentVolumeQuota, v.Marshal())
}
func UnmarshalSubsequentVolumeQuota(p []byte) (SubsequentVolumeQuota, error) {
	vol, err := unmarshalVolume("SubsequentVolumeQuota", TypeSubsequentVolumeQuota, p)
	return SubsequentVolumeQuota{vol}, err
}

// VolumeMeasurement, 3GPP TS 29.244 clause 8.2.63, reports actually-used
// volume on a usage report; same flagged-triplet shape as VolumeThreshold
// but additionally carries total/uplink/downlink packet counts gated by
// three more flag bits.
const (
	volMeasFlagTONOP = 0x08
	volMeasFlagULNOP = 0x10
	volMeasFlagDLNOP = 0x20
)

type VolumeMeasurement struct {
	Volume
	TotalPackets    uint64
	HasTotalPackets bool
	UplinkPackets   uint64
	HasUplinkPackets bool
	DownlinkPackets  uint64
	HasDownlinkPackets bool
}

func (v VolumeMeasurement) Marshal() []byte {
	out := v.Volume.marshal()
	var extra byte
	if v.HasTotalPackets {
		extra |= volMeasFlagTONOP
	}
	if v.HasUplinkPackets {
		extra |= volMeasFlagULNOP
	}
	if v.HasDownlinkPackets {
		extra |= volMeasFlagDLNOP
	}
	out[0] |= extra
	if v.HasTotalPackets {
		b := make([]byte, 8)
		putUint64(b, v.TotalPackets)
		out = append(out, b...)
	}
	if v.HasUplinkPackets {
		b := make([]byte, 8)
		putUint64(b, v.UplinkPackets)
		out = append(out, b...)
	}
	if v.HasDownlinkPackets {
		b := make([]byte, 8)
		putUint64(b, v.DownlinkPackets)
		out = append(out, b...)
	}
	return out
}

func UnmarshalVolumeMeasurement(payload []byte) (VolumeMeasurement, error) {
	if len(payload) < 1 {
		return VolumeMeasurement{}, NewInvalidLength("VolumeMeasurement", TypeVolumeMeasurement, 1, len(payload))
	}
	flags := payload[0]
	vol, err := unmarshalVolume("VolumeMeasurement", TypeVolumeMeasurement, payload)
	if err != nil {
		return VolumeMeasurement{}, err
	}
	offset := 1
	if vol.HasTotal {
		offset += 8
	}
	if vol.HasUplink {
		offset += 8
	}
	if vol.HasDownlink {
		offset += 8
	}
	m := VolumeMeasurement{Volume: vol}
	if flags&volMeasFlagTONOP != 0 {
		if len(payload) < offset+8 {
			return VolumeMeasurement{}, NewInvalidLength("VolumeMeasurement total packets", TypeVolumeMeasurement, offset+8, len(payload))
		}
		m.TotalPackets = getUint64(payload[offset : offset+8])
		m.HasTotalPackets = true
		offset += 8
	}
	if flags&volMeasFlagULNOP != 0 {
		if len(payload) < offset+8 {
			return VolumeMeasurement{}, NewInvalidLength("VolumeMeasurement uplink packets", TypeVolumeMeasurement, offset+8, len(payload))
		}
		m.UplinkPackets = getUint64(payload[offset : offset+8])
		m.HasUplinkPackets = true
		offset += 8
	}
	if flags&volMeasFlagDLNOP != 0 {
		if len(payload) < offset+8 {
			return VolumeMeasurement{}, NewInvalidLength("VolumeMeasurement downlink packets", TypeVolumeMeasurement, offset+8, len(payload))
		}
		m.DownlinkPackets = getUint64(payload[offset : offset+8])
		m.HasDownlinkPackets = true
		offset += 8
	}
	return m, nil
}

func (v VolumeMeasurement) ToIe() *Ie { return New(TypeVolumeMeasurement, v.Marshal()) }

// DurationMeasurement, 3GPP TS 29.244 clause 8.2.64, reports elapsed
// seconds on a usage report.
type DurationMeasurement uint32

func NewDurationMeasurement(v uint32) DurationMeasurement { return DurationMeasurement(v) }
func (v DurationMeasurement) Marshal() []byte             { return marshalU32(uint32(v)) }
func (v DurationMeasurement) ToIe() *Ie                    { return New(TypeDurationMeasurement, v.Marshal()) }
func UnmarshalDurationMeasurement(p []byte) (DurationMeasurement, error) {
	v, err := unmarshalU32("DurationMeasurement", TypeDurationMeasurement, p)
	return DurationMeasurement(v), err
}
