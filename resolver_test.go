// SPDX-License-Identifier: MIT
package strtotime

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestExpandYear(t *testing.T) {
	tests := []struct {
		name string
		year int
		want int
	}{
		{name: "zero", year: 0, want: 2000},
		{name: "single digit", year: 6, want: 2006},
		{name: "window end", year: 69, want: 2069},
		{name: "window start", year: 70, want: 1970},
		{name: "two digits", year: 78, want: 1978},
		{name: "hundred", year: 100, want: 2000},
		{name: "three digits", year: 101, want: 101},
		{name: "four digits", year: 1879, want: 1879},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandYear(tt.year); got != tt.want {
				t.Errorf("ExpandYear() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleFraction(t *testing.T) {
	tests := []struct {
		digits string
		want   int
	}{
		{digits: "3", want: 300000},
		{digits: "12313", want: 123130},
		{digits: "81412", want: 814120},
		{digits: "123456", want: 123456},
		{digits: "1234567", want: 123456},
		{digits: "000001", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			if got := ScaleFraction(tt.digits); got != tt.want {
				t.Errorf("ScaleFraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFields_resolve(t *testing.T) {
	tests := []struct {
		name    string
		fields  func(f *fields)
		want    time.Time
		wantErr error
	}{
		{name: "nothing captured", fields: func(*fields) {}, want: testNow},
		{
			name:   "hour zeroes the clock",
			fields: func(f *fields) { f.Hour = 5 },
			want:   today(5, 0, 0, 0),
		},
		{
			name:   "month without day",
			fields: func(f *fields) { f.Year, f.Month = 1879, 3 },
			want:   dateOnly(1879, time.March, 1),
		},
		{
			name:   "day without month",
			fields: func(f *fields) { f.Day = 2 },
			want:   dateOnly(2024, time.March, 2),
		},
		{
			name:   "post meridian",
			fields: func(f *fields) { f.Hour, f.Meridian = 11, post },
			want:   today(23, 0, 0, 0),
		},
		{
			name:   "twelve ante meridian",
			fields: func(f *fields) { f.Hour, f.Meridian = 12, ante },
			want:   today(0, 0, 0, 0),
		},
		{
			name:   "iso week sunday",
			fields: func(f *fields) { f.Year, f.Week, f.Weekday = 2008, 1, 0 },
			want:   at(2008, time.January, 6, 0, 0, 0, 0),
		},
		{
			name:   "leap day of year",
			fields: func(f *fields) { f.Year, f.YearDay = 2008, 366 },
			want:   at(2008, time.December, 31, 0, 0, 0, 0),
		},
		{
			name:   "captured zone keeps the wall clock",
			fields: func(f *fields) { f.Zone = "+0200" },
			want:   time.Date(2024, time.March, 15, 10, 20, 30, 123456000, time.FixedZone("", 2*secondsPerHour)),
		},
		{
			name:    "31st of april",
			fields:  func(f *fields) { f.Year, f.Month, f.Day = 2008, 4, 31 },
			wantErr: ErrInvalidField,
		},
		{
			name:    "unresolved zone",
			fields:  func(f *fields) { f.Zone = "XYZ" },
			wantErr: ErrUnresolvedZone,
		},
		{
			name:    "offset out of range",
			fields:  func(f *fields) { f.Zone = "+2400" },
			wantErr: ErrUnresolvedZone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields()
			tt.fields(&f)

			got, err := f.resolve(testNow, time.UTC)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("fields.resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil || !got.Equal(tt.want) {
				t.Errorf("fields.resolve() = %v, %v, want %v", got, err, tt.want)
			}
		})
	}
}

func TestResolver_properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("two digit years land in 1970-2069", prop.ForAll(
		func(year int) bool {
			got := ExpandYear(year)
			return got >= 1970 && got <= 2069 && got%100 == year%100
		},
		gen.IntRange(0, 99),
	))

	properties.Property("fractions scale to 6 digit microseconds", prop.ForAll(
		func(digits string) bool {
			want := digits + "000000"
			v, _ := strconv.Atoi(want[:6])

			got := ScaleFraction(digits)
			return got == v && got < 1000000
		},
		gen.IntRange(1, 9).FlatMap(func(length interface{}) gopter.Gen {
			return gen.SliceOfN(length.(int), gen.NumChar())
		}, reflect.TypeOf([]rune{})).Map(func(chars []rune) string { return string(chars) }),
	))

	p := New(WithNow(testNow), WithLocation(time.UTC))
	properties.Property("rfc 3339 times round trip", prop.ForAll(
		func(seconds int64, micros int, offsetMinutes int) bool {
			want := time.Unix(seconds, int64(micros)*1000).In(time.FixedZone("", offsetMinutes*secondsPerMinute))

			got, err := p.Parse(want.Format("2006-01-02T15:04:05.999999Z07:00"))
			return err == nil && got.Equal(want)
		},
		gen.Int64Range(-30610224000, 253402214400), // 1000-01-01 .. 9999-12-31
		gen.IntRange(0, 999999),
		gen.IntRange(-23*60, 23*60),
	))

	properties.Property("parsing is deterministic", prop.ForAll(
		func(year, month, day, hour int, layout string) bool {
			input := time.Date(year, time.Month(month), day, hour, 30, 0, 0, time.UTC).Format(layout)

			first, errFirst := p.Parse(input)
			second, errSecond := p.Parse(input)

			return errFirst == nil && errSecond == nil && first.Equal(second)
		},
		gen.IntRange(1970, 2069),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
		gen.IntRange(0, 23),
		gen.OneConstOf(
			time.RFC1123Z, time.RFC822Z, time.ANSIC, "02 Jan 2006", "January 2, 2006 15:04",
			"1/2/06", "2006/1/2", "02.01.06", "2006-01-02 03:04pm", "20060102T150405",
		),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestResolveTimestamp(t *testing.T) {
	tests := []struct {
		text    string
		want    time.Time
		wantErr error
	}{
		{text: "0", want: time.Unix(0, 0)},
		{text: "-0.5", want: time.Unix(0, -500000000)},
		{text: "-1.25", want: time.Unix(-2, 750000000)},
		{text: strings.Repeat("9", 19), wantErr: ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := resolveTimestamp(tt.text)
			if !errors.Is(err, tt.wantErr) || !got.Equal(tt.want) {
				t.Errorf("resolveTimestamp() = %v, %v, want %v, %v", got, err, tt.want, tt.wantErr)
			}
		})
	}
}
