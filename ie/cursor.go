// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

import "encoding/binary"

// readByte, readUint16, readUint32 and readUint64 consume a fixed-width
// big-endian field from the front of *payload and advance it, following
// the teacher package's readPayloadXxx cursor style. They panic on a short
// buffer; every call site first checks remaining length and returns an
// InvalidLength/TlvTruncated error instead of calling these on insufficient
// data.
func readByte(payload *[]byte) (val byte) {
	val = (*payload)[0]
	*payload = (*payload)[1:]
	return
}

func readUint16(payload *[]byte) (val uint16) {
	val = binary.BigEndian.Uint16(*payload)
	*payload = (*payload)[2:]
	return
}

func readUint32(payload *[]byte) (val uint32) {
	val = binary.BigEndian.Uint32(*payload)
	*payload = (*payload)[4:]
	return
}

func readUint64(payload *[]byte) (val uint64) {
	val = binary.BigEndian.Uint64(*payload)
	*payload = (*payload)[8:]
	return
}

func readBytes(payload *[]byte, n int) (val []byte) {
	val = (*payload)[:n]
	*payload = (*payload)[n:]
	return
}

// putUint16, putUint32 and putUint64 write a big-endian field into the
// front of buf; callers size buf exactly, so no bounds checking is done.
func putUint16(buf []byte, v uint16) { binary.BigEndian.PutUint16(buf, v) }
func putUint32(buf []byte, v uint32) { binary.BigEndian.PutUint32(buf, v) }
func putUint64(buf []byte, v uint64) { binary.BigEndian.PutUint64(buf, v) }

func getUint16(buf []byte) uint16 { return binary.BigEndian.Uint16(buf) }
func getUint32(buf []byte) uint32 { return binary.BigEndian.Uint32(buf) }
func getUint64(buf []byte) uint64 { return binary.BigEndian.Uint64(buf) }
