// SPDX-License-Identifier: MIT
package strtotime

// REF: https://www.php.net/manual/en/datetime.formats.php

type (
	// Format is a named grammar recognising one family of date/time strings.
	Format struct {
		Name string
		node *Node
	}
)

// Shared tails.
var (
	// clock12 is a 12 hour clock, the meridian is mandatory.
	clock12 = seq(
		hour12,
		opt(seq(timeSep, minute, opt(seq(timeSep, second, opt(seq(timeSep, fraction)))))),
		many(space),
		meridianMark,
	)

	// clock24 is a 24 hour clock, the fraction may follow a dot or a colon.
	clock24 = seq(hour24, timeSep, minute, opt(seq(timeSep, second, opt(seq(timeSep, fraction)))))

	compactClock = seq(compactTime, opt(seq(dot, fraction)))

	timeOfDay = or(clock12, clock24, compactClock)

	// dateTimeTail is the optional time following a date.
	dateTimeTail = opt(seq(or(designatorT, spaces), timeOfDay))

	zoneTail = opt(seq(many(space), zone))

	// dayNamePrefix is an ignored leading weekday, `Sat, 30 Jun 2008`.
	dayNamePrefix = opt(seq(dayName, sepRun))
)

// dated wraps a date grammar with the optional time & zone tails.
func dated(n *Node) *Node { return seq(n, dateTimeTail, zoneTail) }

// formats lists the recognised families in priority order, the first whole-input match wins.
var formats = []Format{
	{"timestamp", seq(atSign, opt(timestampSign), timestampDigits, opt(timestampFraction))},
	{"keyword", seq(or(keywordNow, keywordMidnight, keywordNoon), zoneTail)},
	{"timezone", zone},

	{"iso8601 date", dated(seq(year4, minus, month, minus, day))},
	{"gnu date without day", seq(year4, minus, month, opt(or(
		seq(or(designatorT, spaces), timeOfDay, zoneTail),
		seq(spaces, zone),
	)))},
	{"iso8601 week", dated(seq(year4, opt(minus), designatorW, or(weekAndDay, seq(week, opt(seq(opt(minus), weekday))))))},
	{"year & day of year", dated(or(seq(year4, dot, yearDay), compactYearDay))},
	{"exif", dated(seq(year4, colon, month2, colon, day2))},
	{"compact date", dated(compactDate)},
	{"compact date & time", seq(compactDateTime, zoneTail)},
	{"common log format", seq(
		day2, slash, monthName, slash, year4, colon, hour2, colon, minute2, colon, second2, zoneTail,
	)},
	{"slashed iso date", dated(seq(year4, slash, month, slash, day))},
	{"american date", dated(seq(month, slash, day, opt(seq(slash, year))))},
	{"pointed date", dated(seq(day, or(dot, space), month, dot, year))},
	{"dashed date", dated(seq(day, minus, month, minus, year4))},
	{"gnu short date", dated(seq(year, minus, month, minus, day))},

	{"day month year", dated(seq(dayNamePrefix, day, opt(ordinal), sepRun, monthName, sepRun, year))},
	{"month day year", dated(seq(dayNamePrefix, monthName, sepRun, day, opt(ordinal), sepRun, year))},
	{"asctime", seq(dayNamePrefix, monthName, sepRun, day, spaces, timeOfDay, spaces, year4, zoneTail)},
	{"month year", dated(seq(monthName, sepRun, year4))},
	{"day month", dated(seq(dayNamePrefix, day, opt(ordinal), sepRun, monthName))},
	{"month day", dated(seq(dayNamePrefix, monthName, sepRun, day, opt(ordinal)))},

	{"time", seq(opt(designatorT), timeOfDay, zoneTail)},
	{"year", year4},
}

// Formats lists the recognised families in priority order.
func Formats() []Format {
	list := make([]Format, len(formats))
	copy(list, formats)

	return list
}

// String renders the Format's grammar.
func (f Format) String() string { return f.Name + ": " + f.node.String() }

// match trials every Format against the context, returning the first to consume all Tokens.
func match(c *parseContext) (f Format, ok bool) {
	for _, f = range formats {
		c.reset()
		if f.node.matches(c) && c.atEnd() {
			return f, true
		}
	}

	return Format{}, false
}
