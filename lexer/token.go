// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// Symbol is the character-class tag of a Token.
	Symbol int

	// Token is a classified, positioned substring of the lexed input.
	//
	// Pos & Len are byte offsets into the input, read the raw text with [Token.Text]. Len counts
	// bytes, not runes: a STRING run of non-ASCII letters is longer than its letter count.
	Token struct {
		Symbol Symbol
		Pos    int
		Len    int
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_          Symbol = iota // Consume 0 to start actual numbering at 1.
	SymDigits                // Run of ASCII digits.
	SymString                // Run of letters (and `_`).
	SymColon                 // ':'.
	SymDot                   // '.'.
	SymMinus                 // '-'.
	SymPlus                  // '+'.
	SymAt                    // '@'.
	SymSpace                 // A single whitespace character.
	SymSlash                 // '/'.
	SymComma                 // ','.
	SymOther                 // Any other single character.
)

var symbolNames = [...]string{
	SymDigits: "DIGITS",
	SymString: "STRING",
	SymColon:  "COLON",
	SymDot:    "DOT",
	SymMinus:  "MINUS",
	SymPlus:   "PLUS",
	SymAt:     "AT",
	SymSpace:  "SPACE",
	SymSlash:  "SLASH",
	SymComma:  "COMMA",
	SymOther:  "OTHER",
}

// String is the fmt.Stringer implementation for Symbol.
func (s Symbol) String() string {
	if s > 0 && int(s) < len(symbolNames) {
		return symbolNames[s]
	}

	return fmt.Sprintf("Symbol(%d)", int(s))
}

// Of instantiates a Token.
func Of(symbol Symbol, pos, length int) Token { return Token{Symbol: symbol, Pos: pos, Len: length} }

// End is the byte offset following the Token.
func (t Token) End() int { return t.Pos + t.Len }

// Text reads the Token's raw character range from the lexed input.
func (t Token) Text(input string) string { return input[t.Pos:t.End()] }

// String is the fmt.Stringer implementation for Token.
func (t Token) String() string { return fmt.Sprintf("%s(%d,%d)", t.Symbol, t.Pos, t.Len) }
