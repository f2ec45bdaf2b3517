// SPDX-License-Identifier: MIT
package strtotime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	microsDigits = 6

	nanosPerMicro = int(time.Microsecond)

	// maxTimestamp bounds unix seconds to what time.Time represents with calendar arithmetic
	// intact, roughly 146 billion years either side of the epoch.
	maxTimestamp int64 = 1 << 62
)

// ExpandYear maps a year captured with fewer than 4 digits onto 1970..2069.
//
// 0-69 land in 2000-2069, 70-100 in 1970-2000, anything else is returned unchanged.
func ExpandYear(year int) int {
	switch {
	case within(year, 0, 69):
		return year + 2000
	case within(year, 70, 100):
		return year + 1900
	}

	return year
}

// ScaleFraction reads digits as the leading digits of a microsecond value.
//
// Shorter runs are right padded with zeros, longer ones truncated: "3" is 300000 & "12313"
// 123130.
func ScaleFraction(digits string) int {
	if len(digits) > microsDigits {
		digits = digits[:microsDigits]
	}

	return atoi(digits + strings.Repeat("0", microsDigits-len(digits)))
}

// resolve combines the captured fields with now into an instant.
//
// now must already be expressed in loc, the default zone. Unset fields take now's wall clock
// fields, bound to the captured zone when there is one.
func (f *fields) resolve(now time.Time, loc *time.Location) (t time.Time, err error) {
	if f.Timestamp != "" {
		return resolveTimestamp(f.Timestamp)
	}

	if f.Zone != "" {
		if loc, err = ResolveZone(f.Zone); err != nil {
			return
		}
	}

	date, err := f.resolveDate(now, loc)
	if err != nil {
		return
	}

	hour, minute, second, micros, err := f.resolveClock(now)
	if err != nil {
		return
	}

	y, m, d := date.Date()

	return time.Date(y, m, d, hour, minute, second, micros*nanosPerMicro, loc), nil
}

// resolveDate yields midnight of the captured date in loc, unset components come from now.
func (f *fields) resolveDate(now time.Time, loc *time.Location) (date time.Time, err error) {
	year := f.Year
	if year == unset {
		year = now.Year()
	}

	switch {
	case f.Week != unset:
		return isoWeekDate(year, f.Week, f.Weekday, loc), nil
	case f.YearDay != unset:
		if f.YearDay > daysInYear(year) {
			err = fmt.Errorf("%w: day %d of %d", ErrInvalidField, f.YearDay, year)
			return
		}

		return time.Date(year, time.January, f.YearDay, 0, 0, 0, 0, loc), nil
	}

	month, day := f.Month, f.Day
	switch {
	case month == unset && day == unset:
		month, day = int(now.Month()), now.Day()
	case month == unset:
		month = int(now.Month())
	case day == unset:
		day = 1
	}

	if days := daysIn(time.Month(month), year); day > days {
		err = fmt.Errorf("%w: day %d of %s %d has %d days", ErrInvalidField, day, time.Month(month), year, days)
		return
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
}

// resolveClock yields the time of day, captured clocks zero their unset components.
//
// Week & ordinal dates without a clock start at midnight, other dates keep now's clock.
func (f *fields) resolveClock(now time.Time) (hour, minute, second, micros int, err error) {
	if !f.hasTime() {
		if f.Week != unset || f.YearDay != unset {
			return
		}

		return now.Hour(), now.Minute(), now.Second(), now.Nanosecond() / nanosPerMicro, nil
	}

	hour, minute, second, micros = f.Hour, orZero(f.Minute), orZero(f.Second), orZero(f.Micros)

	switch f.Meridian {
	case ante:
		if hour == 12 {
			hour = 0
		}
	case post:
		if hour != 12 {
			hour += 12
		}
	}

	if hour == 24 && (minute != 0 || second != 0 || micros != 0) {
		err = fmt.Errorf("%w: 24:%02d:%02d is past the end of the day", ErrInvalidField, minute, second)
	}

	return
}

// resolveTimestamp reads `[+-]seconds[.fraction]` since the unix epoch, in UTC.
func resolveTimestamp(text string) (t time.Time, err error) {
	whole, frac, _ := strings.Cut(text, ".")

	seconds, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = fmt.Errorf("%w: %s", ErrOverflow, text)
			return
		}
		err = fmt.Errorf("%w: %v", ErrInvalidField, err)

		return
	}

	nanos := int64(0)
	if frac != "" {
		nanos = int64(ScaleFraction(frac) * nanosPerMicro)
		if strings.HasPrefix(whole, "-") {
			nanos = -nanos
		}
	}

	if !within(seconds, -maxTimestamp, maxTimestamp) {
		err = fmt.Errorf("%w: %s", ErrOverflow, text)
		return
	}

	return time.Unix(seconds, nanos).UTC(), nil
}

// isoWeekDate yields the date of weekday (1 Monday .. 7 Sunday, 0 also Sunday) in ISO week
// `week` of year.
func isoWeekDate(year, week, weekday int, loc *time.Location) time.Time {
	switch weekday {
	case unset:
		weekday = 1
	case 0:
		weekday = 7
	}

	// January 4th always falls in week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	monday := 4 - (int(jan4.Weekday())+6)%7

	return time.Date(year, time.January, monday+(week-1)*7+weekday-1, 0, 0, 0, 0, loc)
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int { return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay() }

func orZero(v int) int {
	if v == unset {
		return 0
	}

	return v
}
