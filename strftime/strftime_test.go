// SPDX-License-Identifier: MIT
package strftime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/strtotime"
)

func TestFormat(t *testing.T) {
	afternoon := time.Date(2008, time.July, 1, 14, 5, 9, 0, time.UTC)
	newYear := time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)

	amsterdam, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)

	tests := []struct {
		name   string
		t      time.Time
		layout string
		want   string
	}{
		{name: "names", t: afternoon, layout: "%a %A %b %h %B", want: "Tue Tuesday Jul Jul July"},
		{name: "day", t: afternoon, layout: "%d|%e|%j|%u|%w", want: "01| 1|183|2|2"},
		{name: "weeks", t: afternoon, layout: "%U %W %V", want: "26 26 27"},
		{name: "iso year boundary", t: newYear, layout: "%G %g %V %U %W %u", want: "2009 09 53 00 00 5"},
		{name: "year", t: afternoon, layout: "%C %y %Y", want: "20 08 2008"},
		{name: "short year", t: time.Date(800, time.March, 1, 0, 0, 0, 0, time.UTC), layout: "%Y %C", want: "0800 08"},
		{name: "clock", t: afternoon, layout: "%H %k %I %l %M %S %p %P", want: "14 14 02  2 05 09 PM pm"},
		{name: "midnight", t: newYear, layout: "%I%p %k", want: "12AM  0"},
		{name: "composites", t: afternoon, layout: "%c|%D|%x|%F|%r|%R|%T|%X", want: "Tue Jul  1 14:05:09 2008|07/01/08|07/01/08|2008-07-01|02:05:09 PM|14:05|14:05:09|14:05:09"},
		{name: "epoch", t: afternoon, layout: "%s", want: "1214921109"},
		{name: "utc zone", t: afternoon, layout: "%z %Z", want: "+0000 UTC"},
		{name: "summer zone", t: afternoon.In(amsterdam), layout: "%H %z %Z", want: "16 +0200 CEST"},
		{name: "unnamed zone", t: afternoon.In(time.FixedZone("", -9000)), layout: "%z %Z", want: "-0230 -02:30"},
		{name: "literals", t: afternoon, layout: "%%%n%t", want: "%\n\t"},
		{name: "unknown conversion", t: afternoon, layout: "%Q", want: "%Q"},
		{name: "trailing percent", t: afternoon, layout: "100%", want: "100%"},
		{name: "plain text", t: afternoon, layout: "at noon", want: "at noon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Format(tt.t, tt.layout))
		})
	}
}

func TestFormat_parses_back(t *testing.T) {
	want := time.Date(2008, time.July, 1, 14, 5, 9, 0, time.UTC)
	p := strtotime.New(strtotime.WithNow(want), strtotime.WithLocation(time.UTC))

	for _, layout := range []string{"%c", "%F %T", "%Y-%m-%dT%H:%M:%S%z", "%d %B %Y %r %Z", "@%s"} {
		got, err := p.Parse(Format(want, layout))
		require.NoError(t, err, layout)
		require.True(t, got.Equal(want), "%s: got %v", layout, got)
	}
}
