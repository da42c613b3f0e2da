// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

import "time"

// ntpEpochOffset is the number of seconds between the NTP epoch
// (1900-01-01 00:00:00 UTC) and the Unix epoch (1970-01-01 00:00:00 UTC).
// 3GPP TS 29.244 timestamps (Recovery Time Stamp, Monitoring Time, Event
// Time Stamp, Start/End Time, ...) are all 32-bit NTP seconds, distinct
// from Unix time.
const ntpEpochOffset = 2208988800

// timeToNTP32 converts a time.Time to 3GPP's 32-bit NTP seconds field.
func timeToNTP32(t time.Time) uint32 {
	return uint32(t.Unix() + ntpEpochOffset)
}

// ntp32ToTime converts a 32-bit NTP seconds field to a time.Time in UTC.
func ntp32ToTime(v uint32) time.Time {
	return time.Unix(int64(v)-ntpEpochOffset, 0).UTC()
}
