// SPDX-License-Identifier: MIT
package lexer

import (
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "hour & minute",
			input: "00:15",
			want:  []Token{Of(SymDigits, 0, 2), Of(SymColon, 2, 1), Of(SymDigits, 3, 2)},
		},
		{
			name:  "hour, minute & second with micros",
			input: "00:15:00.0000",
			want: []Token{
				Of(SymDigits, 0, 2), Of(SymColon, 2, 1), Of(SymDigits, 3, 2), Of(SymColon, 5, 1),
				Of(SymDigits, 6, 2), Of(SymDot, 8, 1), Of(SymDigits, 9, 4),
			},
		},
		{
			name:  "meridian only",
			input: "A.m.",
			want:  []Token{Of(SymString, 0, 1), Of(SymDot, 1, 1), Of(SymString, 2, 1), Of(SymDot, 3, 1)},
		},
		{
			name:  "hour with meridian",
			input: "4am",
			want:  []Token{Of(SymDigits, 0, 1), Of(SymString, 1, 2)},
		},
		{
			name:  "hour, space & dotted meridian",
			input: "4 A.M.",
			want: []Token{
				Of(SymDigits, 0, 1), Of(SymSpace, 1, 1), Of(SymString, 2, 1), Of(SymDot, 3, 1),
				Of(SymString, 4, 1), Of(SymDot, 5, 1),
			},
		},
		{
			name:  "12 hour clock",
			input: "4:08 am",
			want: []Token{
				Of(SymDigits, 0, 1), Of(SymColon, 1, 1), Of(SymDigits, 2, 2), Of(SymSpace, 4, 1),
				Of(SymString, 5, 2),
			},
		},
		{
			name:  "24 hour clock with T prefix",
			input: "t23:43",
			want:  []Token{Of(SymString, 0, 1), Of(SymDigits, 1, 2), Of(SymColon, 3, 1), Of(SymDigits, 4, 2)},
		},
		{
			name:  "negative timestamp",
			input: "@-1",
			want:  []Token{Of(SymAt, 0, 1), Of(SymMinus, 1, 1), Of(SymDigits, 2, 1)},
		},
		{
			name:  "short dashed date",
			input: "8-6-21",
			want: []Token{
				Of(SymDigits, 0, 1), Of(SymMinus, 1, 1), Of(SymDigits, 2, 1), Of(SymMinus, 3, 1),
				Of(SymDigits, 4, 2),
			},
		},
		{
			name:  "xmlrpc",
			input: "20080701T22:38:07",
			want: []Token{
				Of(SymDigits, 0, 8), Of(SymString, 8, 1), Of(SymDigits, 9, 2), Of(SymColon, 11, 1),
				Of(SymDigits, 12, 2), Of(SymColon, 14, 1), Of(SymDigits, 15, 2),
			},
		},
		{
			name:  "iso year week",
			input: "2008-W27",
			want:  []Token{Of(SymDigits, 0, 4), Of(SymMinus, 4, 1), Of(SymString, 5, 1), Of(SymDigits, 6, 2)},
		},
		{
			name:  "gmt offset",
			input: "GMT+0700",
			want:  []Token{Of(SymString, 0, 3), Of(SymPlus, 3, 1), Of(SymDigits, 4, 4)},
		},
		{
			name:  "long zone name",
			input: "America/Los_Angeles",
			want:  []Token{Of(SymString, 0, 7), Of(SymSlash, 7, 1), Of(SymString, 8, 11)},
		},
		{
			name:  "textual month",
			input: "30-June 2008",
			want: []Token{
				Of(SymDigits, 0, 2), Of(SymMinus, 2, 1), Of(SymString, 3, 4), Of(SymSpace, 7, 1),
				Of(SymDigits, 8, 4),
			},
		},
		{
			name:  "tab & comma",
			input: "Oct\t13,",
			want:  []Token{Of(SymString, 0, 3), Of(SymSpace, 3, 1), Of(SymDigits, 4, 2), Of(SymComma, 6, 1)},
		},
		{
			name:  "multi-byte letters",
			input: "30 März",
			want:  []Token{Of(SymDigits, 0, 2), Of(SymSpace, 2, 1), Of(SymString, 3, 5)},
		},
		{
			name:  "unknown punctuation",
			input: "1#2",
			want:  []Token{Of(SymDigits, 0, 1), Of(SymOther, 1, 1), Of(SymDigits, 2, 1)},
		},
		{
			name:  "empty",
			input: "",
			want:  []Token{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokenize(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToken_Text(t *testing.T) {
	input := "10/Oct/2000"
	tokens := Tokenize(input)

	want := []string{"10", "/", "Oct", "/", "2000"}
	if len(tokens) != len(want) {
		t.Fatalf("Tokenize() = %v, want %d tokens", tokens, len(want))
	}

	for index, token := range tokens {
		if got := token.Text(input); got != want[index] {
			t.Errorf("Token.Text() = %q, want %q", got, want[index])
		}
	}
}

func TestToken_Len_counts_bytes(t *testing.T) {
	input := "30 März"
	tokens := Tokenize(input)

	last := tokens[len(tokens)-1]
	if last.Symbol != SymString || last.Len != len("März") || last.Text(input) != "März" {
		t.Errorf("Tokenize() last token = %v %q, want STRING of %d bytes", last, last.Text(input), len("März"))
	}
}

func TestLexer_Lex_covers_input(t *testing.T) {
	inputs := []string{"dec . . .....--- . \t1978", "T19:19:19 GMT-6:30", "\xff\xfe12", "Zürich"}

	for _, input := range inputs {
		end := 0
		for _, token := range New(input, WithDebug(true), WithLogger(logrus.New())).Lex() {
			if token.Pos != end {
				t.Errorf("Lex(%q) token %v starts at %d, want %d", input, token, token.Pos, end)
			}
			end = token.End()
		}

		if end != len(input) {
			t.Errorf("Lex(%q) covered %d bytes, want %d", input, end, len(input))
		}
	}
}

func TestWithConfig(t *testing.T) {
	cfg := &Config{TokensCap: 32}

	l := New("8-6-21", WithConfig(cfg))
	if cfg.Logger == nil {
		t.Error("WithConfig() left the Logger unset")
	}

	tokens := l.Lex()
	if len(tokens) != 5 || cap(tokens) != 32 {
		t.Errorf("Lex() = %d tokens, cap %d, want 5, cap 32", len(tokens), cap(tokens))
	}

	if got := New("", WithConfig(&Config{})).Lex(); cap(got) != defTokensCap {
		t.Errorf("Lex() cap = %d, want %d", cap(got), defTokensCap)
	}
}

func BenchmarkLexer_Lex(b *testing.B) {
	src := "2005-07-18T22:10:00.123456 Europe/Amsterdam"

	logger := logrus.New()

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_ = New(src, WithLogger(logger)).Lex()
	}
}
