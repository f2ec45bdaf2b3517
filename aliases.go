// SPDX-License-Identifier: MIT
package strtotime

import (
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// REF: https://www.timeanddate.com/time/zones

type (
	// Alias is a short time zone abbreviation bound to a fixed offset.
	Alias struct {
		Name string
		// Offset east of UTC in seconds.
		Offset int
		DST    bool
	}
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
)

// aliases is keyed by the lower case abbreviation, read-only after init.
var aliases = map[string]Alias{}

func init() {
	for _, a := range []Alias{
		{"UTC", 0, false}, {"GMT", 0, false}, {"UT", 0, false}, {"Z", 0, false},
		{"WET", 0, false}, {"WEST", 1 * secondsPerHour, true}, {"BST", 1 * secondsPerHour, true}, {"IST", 1 * secondsPerHour, true},
		{"CET", 1 * secondsPerHour, false}, {"CEST", 2 * secondsPerHour, true}, {"MET", 1 * secondsPerHour, false}, {"MEST", 2 * secondsPerHour, true},
		{"WAT", 1 * secondsPerHour, false}, {"CAT", 2 * secondsPerHour, false}, {"SAST", 2 * secondsPerHour, false},
		{"EET", 2 * secondsPerHour, false}, {"EEST", 3 * secondsPerHour, true}, {"EAT", 3 * secondsPerHour, false}, {"MSK", 3 * secondsPerHour, false},
		{"PKT", 5 * secondsPerHour, false}, {"WIB", 7 * secondsPerHour, false}, {"ICT", 7 * secondsPerHour, false},
		{"HKT", 8 * secondsPerHour, false}, {"SGT", 8 * secondsPerHour, false}, {"PHT", 8 * secondsPerHour, false}, {"AWST", 8 * secondsPerHour, false},
		{"JST", 9 * secondsPerHour, false}, {"KST", 9 * secondsPerHour, false},
		{"ACST", 9*secondsPerHour + 30*secondsPerMinute, false}, {"ACDT", 10*secondsPerHour + 30*secondsPerMinute, true},
		{"AEST", 10 * secondsPerHour, false}, {"AEDT", 11 * secondsPerHour, true},
		{"NZST", 12 * secondsPerHour, false}, {"NZDT", 13 * secondsPerHour, true},
		{"NST", -(3*secondsPerHour + 30*secondsPerMinute), false}, {"NDT", -(2*secondsPerHour + 30*secondsPerMinute), true},
		{"AST", -4 * secondsPerHour, false}, {"ADT", -3 * secondsPerHour, true},
		{"EST", -5 * secondsPerHour, false}, {"EDT", -4 * secondsPerHour, true},
		{"CST", -6 * secondsPerHour, false}, {"CDT", -5 * secondsPerHour, true},
		{"MST", -7 * secondsPerHour, false}, {"MDT", -6 * secondsPerHour, true},
		{"PST", -8 * secondsPerHour, false}, {"PDT", -7 * secondsPerHour, true},
		{"AKST", -9 * secondsPerHour, false}, {"AKDT", -8 * secondsPerHour, true},
		{"HST", -10 * secondsPerHour, false},
	} {
		aliases[strings.ToLower(a.Name)] = a
	}
}

// LookupAlias finds the Alias for an abbreviation, ignoring case.
func LookupAlias(name string) (a Alias, ok bool) {
	a, ok = aliases[strings.ToLower(name)]
	return
}

// Aliases lists the known abbreviations sorted by name.
func Aliases() []Alias {
	keys := maps.Keys(aliases)
	slices.Sort(keys)

	list := make([]Alias, 0, len(keys))
	for _, key := range keys {
		list = append(list, aliases[key])
	}

	return list
}

// Location is the fixed zone the Alias denotes.
func (a Alias) Location() *time.Location {
	if a.Name == "UTC" {
		return time.UTC
	}

	return time.FixedZone(a.Name, a.Offset)
}

// AliasFor produces the display abbreviation of t's zone, falling back to its numeric offset
// (`+05:30`) when no Alias carries the zone's name & offset.
func AliasFor(t time.Time) string {
	name, offset := t.Zone()
	if a, ok := LookupAlias(name); ok && a.Offset == offset {
		return a.Name
	}

	return FormatOffset(offset)
}
