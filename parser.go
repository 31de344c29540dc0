// SPDX-License-Identifier: MIT
package exprtree

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Parser wraps the package-level parse operations with logging & resource limits.
//
// A Parser holds no per-parse state & is safe for concurrent use.
type Parser struct {
	cfg *Config
}

// Limit errors.
//
// These accompany a partial result rather than replacing it.
var (
	ErrSourceTooLarge   = errors.New("source exceeds the length limit")
	ErrMaxDepthExceeded = errors.New("source exceeds the nesting limit")
)

// New instantiates a [Parser].
func New(options ...Option) *Parser {
	p := &Parser{cfg: DefConfig()}

	for _, opt := range options {
		opt(p)
	}
	p.cfg.Validate()

	return p
}

// Config retrieves the [Parser]'s Config.
func (p *Parser) Config() *Config { return p.cfg }

// Parse transforms src into its top-level expressions, see [Parse].
func (p *Parser) Parse(ctx context.Context, src string) (exprs Group, err error) {
	exprs, _, err = p.ParseWithRemainder(ctx, src)
	return
}

// ParseWithRemainder performs the Parse operation, also returning the unconsumed remainder.
//
// An oversized source is not parsed. On reaching the nesting limit the parse stops, returning the
// tree built so far with an empty remainder.
func (p *Parser) ParseWithRemainder(ctx context.Context, src string) (exprs Group, rest string, err error) {
	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
		if p.cfg.MaxLength > 0 && len(src) > p.cfg.MaxLength {
			err = fmt.Errorf("%w: %d > %d bytes", ErrSourceTooLarge, len(src), p.cfg.MaxLength)
			return
		}

		ps := &parser{maxDepth: p.cfg.MaxDepth}
		exprs, rest = ps.exprs(src)
		if ps.exceeded {
			err = fmt.Errorf("%w: %d", ErrMaxDepthExceeded, p.cfg.MaxDepth)
		}

		if p.cfg.Debug {
			// Skip the expensive dump if not debug.
			p.cfg.Logger.Debugf("parsed: %s\nremainder: %q", spew.Sdump(exprs), rest)
		}
	}

	return
}
