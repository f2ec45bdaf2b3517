// SPDX-License-Identifier: MIT
package strtotime

import "time"

// Mktime yields the unix timestamp of the given local date & time in loc.
//
// Out of range components carry over (month 13 is January of the next year). Years
// 0-100 use the window of ExpandYear, negative years count back from 1970.
func Mktime(loc *time.Location, hour, minute, second, month, day, year int) int64 {
	return time.Date(mktimeYear(year), time.Month(month), day, hour, minute, second, 0, loc).Unix()
}

// Gmmktime is Mktime in GMT.
func Gmmktime(hour, minute, second, month, day, year int) int64 {
	return Mktime(time.UTC, hour, minute, second, month, day, year)
}

func mktimeYear(year int) int {
	if year < 0 {
		return 1970 + year
	}

	return ExpandYear(year)
}
