// SPDX-License-Identifier: MIT
package strtotime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	// Long zone names resolve without a system zoneinfo database.
	_ "time/tzdata"
)

const maxOffsetHours = 23

var (
	errEmptyZone           = errors.New("empty zone")
	errUnknownAbbreviation = errors.New("unknown abbreviation")
)

// ResolveZone maps zone text to a Location.
//
// Accepted are `GMT` & `UTC` optionally followed by an offset, numeric offsets (see
// ParseOffset), IANA names such as `Europe/Amsterdam` & the abbreviations listed by Aliases.
func ResolveZone(text string) (loc *time.Location, err error) {
	defer func() {
		if err != nil && !errors.Is(err, ErrUnresolvedZone) {
			err = fmt.Errorf("%w (%s): %v", ErrUnresolvedZone, text, err)
		}
	}()

	if text == "" {
		err = errEmptyZone
		return
	}

	for _, prefix := range []string{"GMT", "UTC"} {
		if len(text) < len(prefix) || !strings.EqualFold(text[:len(prefix)], prefix) {
			continue
		}

		rest := text[len(prefix):]
		if rest == "" {
			a, _ := LookupAlias(prefix)
			return a.Location(), nil
		}

		offset, e := ParseOffset(rest)
		if e != nil {
			err = e
			return
		}

		return time.FixedZone(prefix+FormatOffset(offset), offset), nil
	}

	switch {
	case text[0] == '+' || text[0] == '-':
		offset, e := ParseOffset(text)
		if e != nil {
			err = e
			return
		}

		return time.FixedZone("", offset), nil
	case strings.Contains(text, "/"):
		return time.LoadLocation(text)
	}

	a, ok := LookupAlias(text)
	if !ok {
		err = errUnknownAbbreviation
		return
	}

	return a.Location(), nil
}

// ParseOffset reads `[+-]H`, `[+-]HH`, `[+-]HMM`, `[+-]HHMM` or `[+-]H(H):MM` as seconds east
// of UTC.
func ParseOffset(text string) (offset int, err error) {
	if len(text) < 2 || (text[0] != '+' && text[0] != '-') {
		err = fmt.Errorf("%w: malformed offset %q", ErrUnresolvedZone, text)
		return
	}

	sign, digits := 1, text[1:]
	if text[0] == '-' {
		sign = -1
	}

	hours, minutes, found := strings.Cut(digits, ":")
	if !found {
		switch len(digits) {
		case 1, 2:
			hours, minutes = digits, "0"
		case 3, 4:
			hours, minutes = digits[:len(digits)-2], digits[len(digits)-2:]
		default:
			err = fmt.Errorf("%w: malformed offset %q", ErrUnresolvedZone, text)
			return
		}
	}

	if !isDigits(hours) || !isDigits(minutes) || len(hours) > 2 || len(minutes) > 2 {
		err = fmt.Errorf("%w: malformed offset %q", ErrUnresolvedZone, text)
		return
	}

	h, m := atoi(hours), atoi(minutes)
	if h > maxOffsetHours || m > 59 {
		err = fmt.Errorf("%w: offset %q out of range", ErrUnresolvedZone, text)
		return
	}

	return sign * (h*secondsPerHour + m*secondsPerMinute), nil
}

// FormatOffset renders seconds east of UTC as `+HH:MM`.
func FormatOffset(offset int) string {
	sign := '+'
	if offset < 0 {
		sign, offset = '-', -offset
	}

	return fmt.Sprintf("%c%02d:%02d", sign, offset/secondsPerHour, offset%secondsPerHour/secondsPerMinute)
}

func isDigits(text string) bool {
	if text == "" {
		return false
	}

	for index := 0; index < len(text); index++ {
		if text[index] < '0' || text[index] > '9' {
			return false
		}
	}

	return true
}
