// SPDX-License-Identifier: MIT
package strtotime

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/constraints"

	"gitlab.com/fisherprime/strtotime/lexer"
)

// within reports whether lo <= v <= hi.
func within[T constraints.Integer](v, lo, hi T) bool { return v >= lo && v <= hi }

// atoi parses a digit run the lexer produced, the caller bounds its length.
func atoi(text string) int {
	v, _ := strconv.Atoi(text)
	return v
}

// numeric matches a DIGITS Token of minLen..maxLen digits denoting a value in [lo, hi].
func numeric(name string, minLen, maxLen, lo, hi int, set func(f *fields, v int)) *Node {
	return leaf(name, lexer.SymDigits, minLen, maxLen,
		func(_ *parseContext, text string) bool { return within(atoi(text), lo, hi) },
		func(c *parseContext, text string) { set(&c.fields, atoi(text)) },
	)
}

// punct matches a single character Token.
func punct(symbol lexer.Symbol) *Node { return leaf(symbol.String(), symbol, 1, 1, nil, nil) }

// word matches a STRING Token equal to one of words, ignoring case.
func word(words ...string) *Node { return wordSet(nil, words...) }

func wordSet(set setFunc, words ...string) *Node {
	return leaf(strings.ToUpper(strings.Join(words, "|")), lexer.SymString, 1, 0,
		func(_ *parseContext, text string) bool {
			for _, w := range words {
				if strings.EqualFold(text, w) {
					return true
				}
			}

			return false
		},
		set,
	)
}

// Separators.
var (
	space  = punct(lexer.SymSpace)
	colon  = punct(lexer.SymColon)
	dot    = punct(lexer.SymDot)
	minus  = punct(lexer.SymMinus)
	slash  = punct(lexer.SymSlash)
	atSign = punct(lexer.SymAt)

	// spaces is a non-empty whitespace run.
	spaces = many1(space)
	// sepRun is the arbitrary punctuation allowed around textual months.
	sepRun = many(or(space, dot, minus, punct(lexer.SymComma)))

	timeSep = or(colon, dot)

	designatorT = word("t")
	designatorW = word("w")
)

// Date fields.
var (
	year4 = numeric("YEAR4", 4, 4, 0, 9999, func(f *fields, v int) { f.Year = v })

	// year expands runs shorter than 4 digits onto the 2 digit window.
	year = leaf("YEAR", lexer.SymDigits, 1, 4, nil, func(c *parseContext, text string) {
		c.fields.Year = atoi(text)
		if len(text) < 4 {
			c.fields.Year = ExpandYear(c.fields.Year)
		}
	})

	month  = numeric("MONTH", 1, 2, 1, 12, func(f *fields, v int) { f.Month = v })
	month2 = numeric("MM", 2, 2, 1, 12, func(f *fields, v int) { f.Month = v })
	day    = numeric("DAY", 1, 2, 1, 31, func(f *fields, v int) { f.Day = v })
	day2   = numeric("DD", 2, 2, 1, 31, func(f *fields, v int) { f.Day = v })

	yearDay = numeric("DOY", 3, 3, 1, 366, func(f *fields, v int) { f.YearDay = v })
	week    = numeric("WEEK", 2, 2, 1, 53, func(f *fields, v int) { f.Week = v })
	weekday = numeric("WEEKDAY", 1, 1, 0, 7, func(f *fields, v int) { f.Weekday = v })

	// weekAndDay is the compact `www` form, week followed by a weekday digit.
	weekAndDay = leaf("WEEKDAY3", lexer.SymDigits, 3, 3,
		func(_ *parseContext, text string) bool {
			return within(atoi(text[:2]), 1, 53) && within(atoi(text[2:]), 0, 7)
		},
		func(c *parseContext, text string) { c.fields.Week, c.fields.Weekday = atoi(text[:2]), atoi(text[2:]) },
	)

	monthName = leaf("MONTHNAME", lexer.SymString, 1, 0,
		func(c *parseContext, text string) bool {
			_, ok := c.monthOf(text)
			return ok
		},
		func(c *parseContext, text string) {
			m, _ := c.monthOf(text)
			c.fields.Month = int(m)
		},
	)

	dayName = leaf("DAYNAME", lexer.SymString, 1, 0,
		func(c *parseContext, text string) bool {
			_, ok := c.names.Weekday(text)
			return ok
		}, nil,
	)

	ordinal = word("st", "nd", "rd", "th")

	compactDate = leaf("YYYYMMDD", lexer.SymDigits, 8, 8,
		func(_ *parseContext, text string) bool {
			return within(atoi(text[4:6]), 1, 12) && within(atoi(text[6:]), 1, 31)
		},
		func(c *parseContext, text string) {
			c.fields.Year, c.fields.Month, c.fields.Day = atoi(text[:4]), atoi(text[4:6]), atoi(text[6:])
		},
	)

	compactYearDay = leaf("YYYYDOY", lexer.SymDigits, 7, 7,
		func(_ *parseContext, text string) bool { return within(atoi(text[4:]), 1, 366) },
		func(c *parseContext, text string) { c.fields.Year, c.fields.YearDay = atoi(text[:4]), atoi(text[4:]) },
	)

	// compactDateTime is the `YYYYMMDDHHMMSS` run.
	compactDateTime = leaf("YYYYMMDDHHMMSS", lexer.SymDigits, 14, 14,
		func(c *parseContext, text string) bool {
			return compactDate.check(c, text[:8]) && compactTime.check(c, text[8:])
		},
		func(c *parseContext, text string) {
			compactDate.set(c, text[:8])
			compactTime.set(c, text[8:])
		},
	)
)

// Time fields.
var (
	hour24  = numeric("HOUR24", 1, 2, 0, 24, func(f *fields, v int) { f.Hour = v })
	hour12  = numeric("HOUR12", 1, 2, 1, 12, func(f *fields, v int) { f.Hour = v })
	hour2   = numeric("HH", 2, 2, 0, 24, func(f *fields, v int) { f.Hour = v })
	minute  = numeric("MINUTE", 1, 2, 0, 59, func(f *fields, v int) { f.Minute = v })
	minute2 = numeric("II", 2, 2, 0, 59, func(f *fields, v int) { f.Minute = v })
	second  = numeric("SECOND", 1, 2, 0, 60, func(f *fields, v int) { f.Second = v })
	second2 = numeric("SS", 2, 2, 0, 60, func(f *fields, v int) { f.Second = v })

	fraction = leaf("FRAC", lexer.SymDigits, 1, 0, nil,
		func(c *parseContext, text string) { c.fields.Micros = ScaleFraction(text) })

	// compactTime is one of the `HHMM`, `HMMSS` & `HHMMSS` runs.
	compactTime = leaf("HHMMSS", lexer.SymDigits, 4, 6,
		func(_ *parseContext, text string) bool {
			h, m, s := splitClock(text)
			return within(h, 0, 24) && within(m, 0, 59) && within(s, 0, 60)
		},
		func(c *parseContext, text string) {
			h, m, s := splitClock(text)
			c.fields.Hour, c.fields.Minute = h, m
			if len(text) > 4 {
				c.fields.Second = s
			}
		},
	)

	meridianLetter = leaf("A|P", lexer.SymString, 1, 1,
		func(_ *parseContext, text string) bool { return strings.EqualFold(text, "a") || strings.EqualFold(text, "p") },
		func(c *parseContext, text string) { c.fields.Meridian = meridianOf(text) },
	)
	meridianWord = wordSet(func(c *parseContext, text string) { c.fields.Meridian = meridianOf(text) }, "am", "pm")

	// meridianMark covers `am`, `AM.`, `a.m`, `A.M.`.
	meridianMark = or(
		seq(meridianLetter, dot, word("m"), opt(dot)),
		seq(meridianWord, opt(dot)),
	)
)

// Unix timestamp pieces, the raw text is resolved after matching.
var (
	timestampSign = or(
		leaf("MINUS", lexer.SymMinus, 1, 1, nil, appendTimestamp),
		leaf("PLUS", lexer.SymPlus, 1, 1, nil, appendTimestamp),
	)
	timestampDigits   = leaf("SECONDS", lexer.SymDigits, 1, 0, nil, appendTimestamp)
	timestampFraction = seq(leaf("DOT", lexer.SymDot, 1, 1, nil, appendTimestamp),
		leaf("FRAC", lexer.SymDigits, 1, 0, nil, appendTimestamp))
)

// Keywords naming a moment of the current day.
var (
	keywordNow      = word("now")
	keywordMidnight = wordSet(func(c *parseContext, _ string) { c.fields.Hour = 0 }, "today", "midnight")
	keywordNoon     = wordSet(func(c *parseContext, _ string) { c.fields.Hour = 12 }, "noon")
)

// Time zone pieces, each appends its raw text to the captured zone.
var (
	zoneMinus = leaf("MINUS", lexer.SymMinus, 1, 1, nil, appendZone)
	zonePlus  = leaf("PLUS", lexer.SymPlus, 1, 1, nil, appendZone)
	zoneSign  = or(zoneMinus, zonePlus)

	// zoneOffset is `[+-]H`, `[+-]HH`, `[+-]HMM`, `[+-]HHMM` or `[+-]H(H):MM`, ranges are checked
	// by ResolveZone.
	zoneOffset = seq(
		zoneSign,
		leaf("OFFSET", lexer.SymDigits, 1, 4, nil, appendZone),
		opt(seq(
			leaf("COLON", lexer.SymColon, 1, 1, nil, appendZone),
			leaf("MM", lexer.SymDigits, 2, 2, nil, appendZone),
		)),
	)

	zoneUniversal = leaf("GMT|UTC", lexer.SymString, 3, 3,
		func(_ *parseContext, text string) bool {
			return strings.EqualFold(text, "gmt") || strings.EqualFold(text, "utc")
		}, appendZone)

	zoneWord = leaf("ZONEWORD", lexer.SymString, 1, 0, nil, appendZone)

	// zoneName is an IANA name, e.g. `America/Port-au-Prince` or `Etc/GMT+5`.
	zoneName = seq(
		zoneWord,
		many1(seq(
			leaf("SLASH", lexer.SymSlash, 1, 1, nil, appendZone),
			zoneWord,
			many(seq(zoneSign, or(zoneWord, leaf("DIGITS", lexer.SymDigits, 1, 2, nil, appendZone)))),
		)),
	)

	zoneAlias = leaf("ALIAS", lexer.SymString, 1, 5,
		func(_ *parseContext, text string) bool {
			_, ok := LookupAlias(text)
			return ok
		}, appendZone)

	zone = or(seq(zoneUniversal, opt(zoneOffset)), zoneOffset, zoneName, zoneAlias)
)

func appendZone(c *parseContext, text string) { c.appendZone(text) }

func appendTimestamp(c *parseContext, text string) { c.appendTimestamp(text) }

// monthOf resolves a month name or a roman numeral.
func (c *parseContext) monthOf(text string) (time.Month, bool) {
	if m, ok := c.names.Month(text); ok {
		return m, true
	}

	m, ok := romanMonths[strings.ToUpper(text)]

	return m, ok
}

// splitClock splits a 4, 5 or 6 digit clock run into its components.
func splitClock(text string) (h, m, s int) {
	if len(text)%2 == 1 {
		text = "0" + text
	}

	h, m = atoi(text[:2]), atoi(text[2:4])
	if len(text) > 4 {
		s = atoi(text[4:])
	}

	return
}
