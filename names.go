// SPDX-License-Identifier: MIT
package strtotime

import (
	"strings"
	"time"
)

type (
	// MonthNames resolves month & weekday names, plug in an implementation for other locales.
	//
	// Implementations must be safe for concurrent use.
	MonthNames interface {
		Month(name string) (time.Month, bool)
		Weekday(name string) (time.Weekday, bool)
	}

	englishNames struct {
		months   map[string]time.Month
		weekdays map[string]time.Weekday
	}
)

// English matches full & abbreviated English names, ignoring case.
var English MonthNames = newEnglishNames()

func newEnglishNames() *englishNames {
	e := &englishNames{
		months:   make(map[string]time.Month),
		weekdays: make(map[string]time.Weekday),
	}

	for month := time.January; month <= time.December; month++ {
		name := strings.ToLower(month.String())
		e.months[name], e.months[name[:3]] = month, month
	}
	e.months["sept"] = time.September

	for day := time.Sunday; day <= time.Saturday; day++ {
		name := strings.ToLower(day.String())
		e.weekdays[name], e.weekdays[name[:3]] = day, day
	}
	e.weekdays["tues"] = time.Tuesday
	e.weekdays["wednes"] = time.Wednesday
	e.weekdays["thur"] = time.Thursday
	e.weekdays["thurs"] = time.Thursday

	return e
}

func (e *englishNames) Month(name string) (m time.Month, ok bool) {
	m, ok = e.months[strings.ToLower(name)]
	return
}

func (e *englishNames) Weekday(name string) (d time.Weekday, ok bool) {
	d, ok = e.weekdays[strings.ToLower(name)]
	return
}

// romanMonths maps upper case roman numerals to months.
var romanMonths = map[string]time.Month{
	"I": time.January, "II": time.February, "III": time.March, "IV": time.April,
	"V": time.May, "VI": time.June, "VII": time.July, "VIII": time.August,
	"IX": time.September, "X": time.October, "XI": time.November, "XII": time.December,
}
