// SPDX-License-Identifier: MIT

// Package strftime renders instants through C strftime style layouts.
package strftime

// REF: https://pubs.opengroup.org/onlinepubs/9699919799/functions/strftime.html

import (
	"strconv"
	"strings"
	"time"

	"gitlab.com/fisherprime/strtotime"
)

// Composite conversions.
var composites = map[byte]string{
	'c': "%a %b %e %H:%M:%S %Y",
	'D': "%m/%d/%y",
	'x': "%m/%d/%y",
	'F': "%Y-%m-%d",
	'r': "%I:%M:%S %p",
	'R': "%H:%M",
	'T': "%H:%M:%S",
	'X': "%H:%M:%S",
}

// Format renders t through layout.
//
// Supported conversions are `%a %A %d %e %j %u %w %U %W %V %b %h %B %m %C %g %G %y %Y %H %k
// %I %l %M %p %P %r %R %S %T %X %z %Z %c %D %x %F %s %n %t %%`; `%Z` is the zone abbreviation
// from strtotime.AliasFor. Unknown conversions are copied through.
func Format(t time.Time, layout string) string {
	var b strings.Builder
	b.Grow(len(layout) + 10)
	format(&b, t, layout)

	return b.String()
}

func format(b *strings.Builder, t time.Time, layout string) {
	for index := 0; index < len(layout); index++ {
		c := layout[index]
		if c != '%' || index == len(layout)-1 {
			b.WriteByte(c)
			continue
		}

		index++
		c = layout[index]

		if composite, ok := composites[c]; ok {
			format(b, t, composite)
			continue
		}

		convert(b, t, c)
	}
}

// convert writes a single conversion.
func convert(b *strings.Builder, t time.Time, c byte) {
	switch c {
	// Day.
	case 'a':
		b.WriteString(t.Weekday().String()[:3])
	case 'A':
		b.WriteString(t.Weekday().String())
	case 'd':
		pad(b, t.Day(), 2, '0')
	case 'e':
		pad(b, t.Day(), 2, ' ')
	case 'j':
		pad(b, t.YearDay(), 3, '0')
	case 'u':
		b.WriteString(strconv.Itoa(isoWeekday(t)))
	case 'w':
		b.WriteString(strconv.Itoa(int(t.Weekday())))

	// Week.
	case 'U':
		pad(b, (t.YearDay()+6-int(t.Weekday()))/7, 2, '0')
	case 'W':
		pad(b, (t.YearDay()+6-(isoWeekday(t)-1))/7, 2, '0')
	case 'V':
		_, week := t.ISOWeek()
		pad(b, week, 2, '0')

	// Month.
	case 'b', 'h':
		b.WriteString(t.Month().String()[:3])
	case 'B':
		b.WriteString(t.Month().String())
	case 'm':
		pad(b, int(t.Month()), 2, '0')

	// Year.
	case 'C':
		pad(b, t.Year()/100, 2, '0')
	case 'g':
		year, _ := t.ISOWeek()
		pad(b, mod(year, 100), 2, '0')
	case 'G':
		year, _ := t.ISOWeek()
		pad(b, year, 4, '0')
	case 'y':
		pad(b, mod(t.Year(), 100), 2, '0')
	case 'Y':
		pad(b, t.Year(), 4, '0')

	// Time.
	case 'H':
		pad(b, t.Hour(), 2, '0')
	case 'k':
		pad(b, t.Hour(), 2, ' ')
	case 'I':
		pad(b, hour12(t), 2, '0')
	case 'l':
		pad(b, hour12(t), 2, ' ')
	case 'M':
		pad(b, t.Minute(), 2, '0')
	case 'S':
		pad(b, t.Second(), 2, '0')
	case 'p':
		b.WriteString(meridian(t))
	case 'P':
		b.WriteString(strings.ToLower(meridian(t)))

	// Zone.
	case 'z':
		offset := strings.Replace(strtotime.FormatOffset(zoneOffset(t)), ":", "", 1)
		b.WriteString(offset)
	case 'Z':
		b.WriteString(strtotime.AliasFor(t))

	case 's':
		b.WriteString(strconv.FormatInt(t.Unix(), 10))
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case '%':
		b.WriteByte('%')
	default:
		b.WriteByte('%')
		b.WriteByte(c)
	}
}

// pad writes v left padded with fill to width; negative values keep their sign first.
func pad(b *strings.Builder, v, width int, fill byte) {
	if v < 0 {
		b.WriteByte('-')
		v, width = -v, width-1
	}

	digits := strconv.Itoa(v)
	for index := len(digits); index < width; index++ {
		b.WriteByte(fill)
	}
	b.WriteString(digits)
}

// isoWeekday numbers Monday 1 through Sunday 7.
func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}

	return int(t.Weekday())
}

func hour12(t time.Time) int {
	if h := t.Hour() % 12; h > 0 {
		return h
	}

	return 12
}

func meridian(t time.Time) string {
	if t.Hour() < 12 {
		return "AM"
	}

	return "PM"
}

func zoneOffset(t time.Time) int {
	_, offset := t.Zone()
	return offset
}

func mod(v, m int) int {
	if v %= m; v < 0 {
		return v + m
	}

	return v
}
