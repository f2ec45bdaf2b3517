// SPDX-License-Identifier: MIT
package strtotime

import (
	"strings"

	"gitlab.com/fisherprime/strtotime/lexer"
)

type (
	// parseContext is the mutable state of a single parse.
	parseContext struct {
		input  string
		tokens []lexer.Token
		cursor int

		names MonthNames

		fields fields
	}

	// fields holds the date/time components captured by apply, unset ones hold `unset`.
	fields struct {
		Year, Month, Day             int
		Hour, Minute, Second, Micros int

		Meridian meridian

		// Week & Weekday hold an ISO-8601 week date.
		Week, Weekday int
		// YearDay holds an ordinal date.
		YearDay int

		// Zone is the raw text of a captured time zone.
		Zone string

		// Timestamp is the raw text of a unix timestamp, sign & fraction included.
		Timestamp string
	}

	meridian int
)

const unset = -1

const (
	noMeridian meridian = iota
	ante
	post
)

func newContext(input string, tokens []lexer.Token, names MonthNames) *parseContext {
	return &parseContext{
		input:  input,
		tokens: tokens,
		names:  names,
		fields: newFields(),
	}
}

func newFields() fields {
	return fields{
		Year: unset, Month: unset, Day: unset,
		Hour: unset, Minute: unset, Second: unset, Micros: unset,
		Week: unset, Weekday: unset, YearDay: unset,
	}
}

// reset prepares the context for a fresh trial.
func (c *parseContext) reset() {
	c.cursor = 0
	c.fields = newFields()
}

// peek retrieves the Token at the cursor.
func (c *parseContext) peek() (t lexer.Token, ok bool) {
	if c.cursor < 0 || c.cursor >= len(c.tokens) {
		return
	}

	return c.tokens[c.cursor], true
}

// rewind steps the cursor back by one position.
func (c *parseContext) rewind() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// atEnd reports whether every Token has been consumed.
func (c *parseContext) atEnd() bool { return c.cursor == len(c.tokens) }

func (c *parseContext) appendZone(text string) { c.fields.Zone += text }

func (c *parseContext) appendTimestamp(text string) { c.fields.Timestamp += text }

// hasTime reports whether a clock field was captured.
func (f *fields) hasTime() bool { return f.Hour != unset }

func (m meridian) String() string {
	switch m {
	case ante:
		return "AM"
	case post:
		return "PM"
	}

	return ""
}

// meridianOf maps the leading letter of a meridian marker.
func meridianOf(text string) meridian {
	if strings.HasPrefix(strings.ToLower(text), "p") {
		return post
	}

	return ante
}
