// SPDX-License-Identifier: MIT
package exprtree

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the [Parser]'s operations.
	Config struct {
		// Logger for [Parser] messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool

		// MaxDepth limits the nesting of groups, <1 disables the limit.
		MaxDepth int

		// MaxLength limits the source size in bytes, <1 disables the limit.
		MaxLength int
	}

	// Option defines the Parser functional option type.
	Option func(*Parser)
)

// DefConfig obtains the package's [Parser] default options.
func DefConfig() *Config {
	return &Config{
		Logger: logrus.New(),
		Debug:  false,
	}
}

// WithConfig configures the [Parser] [Config]; a nil cfg keeps the current one.
func WithConfig(cfg *Config) Option {
	return func(p *Parser) {
		if cfg != nil {
			p.cfg = cfg
		}
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Parser) { p.cfg.Logger = logger }
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(p *Parser) { p.cfg.Debug = debug } }

// WithMaxDepth configures the nesting limit.
func WithMaxDepth(depth int) Option { return func(p *Parser) { p.cfg.MaxDepth = depth } }

// WithMaxLength configures the source size limit.
func WithMaxLength(length int) Option { return func(p *Parser) { p.cfg.MaxLength = length } }

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
}
