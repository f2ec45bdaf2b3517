// SPDX-License-Identifier: MIT
package strtotime

// REF: https://www.php.net/manual/en/function.strtotime.php

import (
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/strtotime/lexer"
)

type (
	// Parser resolves free-form date/time strings into instants.
	//
	// A Parser holds no per-parse state & is safe for concurrent use.
	Parser struct {
		debug  bool
		logger logrus.FieldLogger

		// location is the default zone, applied to zone-less input & the "now" snapshot.
		location *time.Location
		clock    func() time.Time
		names    MonthNames
	}

	// Option defines the Parser functional option type.
	Option func(*Parser)

	// Config defines configuration options for the Parser's operations.
	Config struct {
		Logger   logrus.FieldLogger
		Location *time.Location
		Names    MonthNames
		Debug    bool
	}
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures the logrus.FieldLogger used by Parsers lacking WithLogger.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// New instantiates a Parser; defaults are the local zone, the wall clock & English names.
func New(options ...Option) *Parser {
	p := &Parser{
		logger:   fLogger,
		location: time.Local,
		clock:    time.Now,
		names:    English,
	}

	for _, opt := range options {
		opt(p)
	}

	if p.location == nil {
		p.location = time.Local
	}

	return p
}

// WithConfig configures the Parser from a Config, zero entries keep their defaults.
func WithConfig(cfg *Config) Option {
	return func(p *Parser) {
		p.debug = cfg.Debug
		if cfg.Logger != nil {
			p.logger = cfg.Logger
		}
		if cfg.Location != nil {
			p.location = cfg.Location
		}
		if cfg.Names != nil {
			p.names = cfg.Names
		}
	}
}

// WithLocation configures the default zone.
func WithLocation(loc *time.Location) Option { return func(p *Parser) { p.location = loc } }

// WithNow fixes the "now" snapshot unset fields default to.
func WithNow(now time.Time) Option {
	return func(p *Parser) { p.clock = func() time.Time { return now } }
}

// WithClock configures the source of the "now" snapshot, read once per parse.
func WithClock(clock func() time.Time) Option { return func(p *Parser) { p.clock = clock } }

// WithMonthNames configures the month & weekday name lookup.
func WithMonthNames(names MonthNames) Option { return func(p *Parser) { p.names = names } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(p *Parser) { p.logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(p *Parser) { p.debug = debug } }

// Parse resolves input with a default Parser.
func Parse(input string) (time.Time, error) { return New().Parse(input) }

// ParseIn resolves input with loc as the default zone.
func ParseIn(input string, loc *time.Location) (time.Time, error) {
	return New(WithLocation(loc)).Parse(input)
}

// Parse resolves input into an instant.
//
// Fields the input lacks come from a single "now" snapshot in the default zone: dates without a
// time keep now's clock, times without a date land on now's date & a captured hour zeroes the
// unset minute, second & fraction.
func (p *Parser) Parse(input string) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			t, err = time.Time{}, fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()

	now := p.clock().In(p.location)

	c, f, err := p.match(input)
	if err != nil {
		return
	}

	c.reset()
	f.node.apply(c)

	logger := p.logger.WithFields(logrus.Fields{"input": input, "format": f.Name})
	if p.debug {
		logger.Debugf("applied fields: %s", spew.Sdump(c.fields))
	}

	if t, err = c.fields.resolve(now, p.location); err != nil {
		if p.debug {
			logger.Debugf("resolution failed: %v", err)
		}

		return time.Time{}, err
	}

	if p.debug {
		logger.Debugf("resolved: %s", t)
	}

	return
}

// Detect reports the Format input matches without resolving it.
func (p *Parser) Detect(input string) (f Format, err error) {
	_, f, err = p.match(input)
	return
}

// match tokenizes input & trials the formats against it.
func (p *Parser) match(input string) (c *parseContext, f Format, err error) {
	tokens := lexer.New(input, lexer.WithDebug(p.debug), lexer.WithLogger(p.logger)).Lex()
	if n := len(tokens); n > 0 && tokens[n-1].End() != len(input) {
		err = fmt.Errorf("%w: %q covered up to byte %d", ErrTokenize, input, tokens[n-1].End())
		return
	}

	tokens = trimSpace(tokens)
	if len(tokens) == 0 {
		err = fmt.Errorf("%w (%q)", ErrEmptyInput, input)
		return
	}

	c = newContext(input, tokens, p.names)

	var ok bool
	if f, ok = match(c); !ok {
		if p.debug {
			p.logger.Debugf("no format matched %q, tokens: %s", input, spew.Sdump(tokens))
		}
		err = fmt.Errorf("%w: %q", ErrNoMatch, input)

		return
	}

	if p.debug {
		p.logger.WithFields(logrus.Fields{"input": input, "tokens": tokens}).Debugf("matched %s", f.Name)
	}

	return
}

// trimSpace drops leading & trailing SPACE Tokens.
func trimSpace(tokens []lexer.Token) []lexer.Token {
	for len(tokens) > 0 && tokens[0].Symbol == lexer.SymSpace {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].Symbol == lexer.SymSpace {
		tokens = tokens[:len(tokens)-1]
	}

	return tokens
}
