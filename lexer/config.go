// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Lexer's operations.
	Config struct {
		Logger logrus.FieldLogger
		Debug  bool

		// TokensCap is the initial capacity of the Token slice.
		TokensCap int
	}
)

// DefaultConfig configures the Lexer's Config.
func DefaultConfig() *Config {
	return &Config{
		Logger:    logrus.New(),
		TokensCap: defTokensCap,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.TokensCap < 1 {
		c.TokensCap = defTokensCap
	}
}
