// SPDX-License-Identifier: MIT
package lexer

// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go
// REF: https://github.com/php/php-src/blob/master/ext/date/lib/parse_date.re

import (
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

type (
	// NextOperation type for the next function to be executed
	NextOperation func() NextOperation

	// ValidationFunction type for functions that validate rune identities
	ValidationFunction func(rune) bool

	// Lexer scans a date/time string into a flat sequence of Tokens.
	//
	// Runs of digits & letters are grouped, every other character is a Token of its own;
	// whitespace is kept since the grammars rely on its adjacency.
	Lexer struct {
		debug  bool
		logger logrus.FieldLogger

		input string

		// start is the byte offset of the pending Token.
		start int
		// pos is the current byte offset.
		pos int
		// width of the last rune read, used by Backup.
		width int

		tokens    []Token
		tokensCap int
	}

	// Option defines the Lexer functional option type
	Option func(*Lexer)
)

const (
	defTokensCap = 10

	eof rune = -1
)

// Improves on performance compared to ORs.
//
// Reduces function cost improving probalility of inlining.
var (
	whitespace = [256]bool{
		' ':    true,
		'\t':   true,
		'\r':   true,
		'\n':   true,
		'\v':   true,
		'\f':   true,
		0x00a0: true,
	}

	alphaSymbols = [256]bool{
		'_': true,
	}

	punctuation = [256]Symbol{
		':': SymColon,
		'.': SymDot,
		'-': SymMinus,
		'+': SymPlus,
		'@': SymAt,
		'/': SymSlash,
		',': SymComma,
	}
)

var defConfig = DefaultConfig()

// New creates a new Lexer for the input string.
func New(input string, options ...Option) *Lexer {
	l := &Lexer{
		debug:  defConfig.Debug,
		logger: defConfig.Logger,
		input:  input,

		tokensCap: defConfig.TokensCap,
	}

	for _, opt := range options {
		opt(l)
	}

	l.tokens = make([]Token, 0, l.tokensCap)

	return l
}

// WithConfig configures the Lexer from a Config.
func WithConfig(cfg *Config) Option {
	return func(l *Lexer) {
		cfg.Validate()
		l.debug, l.logger, l.tokensCap = cfg.Debug, cfg.Logger, cfg.TokensCap
	}
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// Tokenize lexes input with the default Config.
func Tokenize(input string) []Token { return New(input).Lex() }

// Input obtains the lexed string.
func (l *Lexer) Input() string { return l.input }

// Lex lexes the input by executing state functions.
//
// The operation is total: every byte of the input ends up in exactly one Token.
func (l *Lexer) Lex() []Token {
	for stateFunction := l.LexAny; stateFunction != nil; {
		stateFunction = stateFunction()
	}

	if l.debug {
		l.logger.Debugf("lexed %q: %v", l.input, l.tokens)
	}

	return l.tokens
}

// LexAny dispatches on the class of the next rune.
func (l *Lexer) LexAny() NextOperation {
	r := l.Next()
	switch {
	case r == eof:
		return nil
	case isNumeric(r):
		return l.LexDigits
	case isAlpha(r):
		return l.LexString
	case isWhitespace(r):
		l.Emit(SymSpace)
	default:
		l.Emit(symbolOf(r))
	}

	return l.LexAny
}

// LexDigits captures a run of digits.
func (l *Lexer) LexDigits() NextOperation {
	l.AcceptWhile(isNumeric)
	l.Emit(SymDigits)

	return l.LexAny
}

// LexString captures a run of letters.
func (l *Lexer) LexString() NextOperation {
	l.AcceptWhile(isAlpha)
	l.Emit(SymString)

	return l.LexAny
}

// Next return the Next rune in the input.
func (l *Lexer) Next() (r rune) {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}

	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width

	return
}

// Backup step back one rune.
//
// Can only be called once per call of Next.
func (l *Lexer) Backup() { l.pos -= l.width }

// AcceptWhile consumes runes while condition is true.
func (l *Lexer) AcceptWhile(fn ValidationFunction) {
	for fn(l.Next()) {
	}

	// Backup if validation fails.
	l.Backup()
}

// Emit appends a Token spanning the input consumed since the previous Emit.
func (l *Lexer) Emit(s Symbol) {
	t := Token{Symbol: s, Pos: l.start, Len: l.pos - l.start}

	if l.debug {
		// Debug operation makes this operation un-inlinable.
		l.logger.Debug("lexer Emit: ", t, " ", t.Text(l.input))
	}

	l.tokens = append(l.tokens, t)
	l.start = l.pos
}

func inTable(r rune) bool { return r >= 0 && r < 256 }

// isWhitespace return true for whitespace, newline & carrier return.
func isWhitespace(r rune) bool {
	if inTable(r) {
		return whitespace[r]
	}

	return unicode.IsSpace(r)
}

// isAlpha return true for an alphabetic sequence.
func isAlpha(r rune) bool {
	if inTable(r) && alphaSymbols[r] {
		return true
	}

	return r != eof && unicode.IsLetter(r)
}

// isNumeric return true for an ASCII digit; the grammars parse digit runs with strconv.
func isNumeric(r rune) bool { return r >= '0' && r <= '9' }

func symbolOf(r rune) Symbol {
	if inTable(r) && punctuation[r] != 0 {
		return punctuation[r]
	}

	return SymOther
}
