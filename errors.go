// SPDX-License-Identifier: MIT
package strtotime

import (
	"errors"
	"fmt"
)

// Parsing errors.
//
// Every error returned by a Parser wraps exactly one of these, test with errors.Is.
var (
	// ErrTokenize is a safety net, the lexer is total over its input.
	ErrTokenize = errors.New("failed to tokenize input")

	ErrNoMatch    = errors.New("no format matched the input")
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrNoMatch)

	ErrInvalidField   = errors.New("invalid date/time field")
	ErrUnresolvedZone = errors.New("unresolved time zone")
	ErrOverflow       = errors.New("timestamp out of range")

	ErrPanicked = errors.New("recovery from panic")
)
