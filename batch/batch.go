// SPDX-License-Identifier: MIT

// Package batch parses many sources concurrently on a bounded goroutine pool.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	lru "github.com/hashicorp/golang-lru"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/exprtree"
)

type (
	// Source is a named text to parse.
	Source struct {
		Name string
		Text string
	}

	// Result holds the outcome of parsing a Source.
	//
	// Exprs may be partial when Err is a limit error.
	Result struct {
		Name  string
		Exprs exprtree.Group
		Rest  string
		Err   error

		// Cached marks results served from the cache.
		Cached bool
	}

	// Stats holds the Processor's counters.
	Stats struct {
		Parsed    int
		CacheHits int
	}

	// Processor parses sources on an ants pool, caching results by source text.
	Processor struct {
		parser *exprtree.Parser
		logger logrus.FieldLogger
		debug  bool

		workers   int
		cacheSize int

		pool  *ants.Pool
		cache *lru.Cache

		parsed    safeCounter
		cacheHits safeCounter
	}

	// Option defines the Processor functional option type.
	Option func(*Processor)

	// cacheEntry holds a parse outcome; trees are immutable & safe to share.
	cacheEntry struct {
		exprs exprtree.Group
		rest  string
		err   error
	}
)

const (
	defWorkers   = 8
	defCacheSize = 256
)

// Batch processing errors.
var (
	ErrInvalidWorkers = errors.New("invalid worker count")
	ErrSubmit         = errors.New("failed to submit source")
	ErrPanicked       = errors.New("recovery from panic")
)

// New instantiates a [Processor].
//
// The Processor's pool must be released with [Processor.Release].
func New(options ...Option) (p *Processor, err error) {
	p = &Processor{
		logger:    logrus.New(),
		workers:   defWorkers,
		cacheSize: defCacheSize,
	}

	for _, opt := range options {
		opt(p)
	}

	if p.workers < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidWorkers, p.workers)
		return
	}
	if p.parser == nil {
		p.parser = exprtree.New(exprtree.WithLogger(p.logger), exprtree.WithDebug(p.debug))
	}

	// A cache size <1 disables caching.
	if p.cacheSize > 0 {
		if p.cache, err = lru.New(p.cacheSize); err != nil {
			return
		}
	}

	p.pool, err = ants.NewPool(p.workers, ants.WithLogger(p.logger))

	return
}

// WithParser configures the parser option.
func WithParser(parser *exprtree.Parser) Option { return func(p *Processor) { p.parser = parser } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(p *Processor) { p.logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(p *Processor) { p.debug = debug } }

// WithWorkers configures the pool size.
func WithWorkers(workers int) Option { return func(p *Processor) { p.workers = workers } }

// WithCacheSize configures the number of cached results.
func WithCacheSize(size int) Option { return func(p *Processor) { p.cacheSize = size } }

// Release the Processor's pool.
func (p *Processor) Release() { p.pool.Release() }

// Stats obtains the Processor's counters.
func (p *Processor) Stats() Stats {
	return Stats{Parsed: p.parsed.Value(), CacheHits: p.cacheHits.Value()}
}

// Process parses the sources concurrently, returning results in source order.
//
// Every source yields a Result; failures are also aggregated into a *multierror.Error.
func (p *Processor) Process(ctx context.Context, sources []Source) (results []Result, err error) {
	results = make([]Result, len(sources))

	wg := new(sync.WaitGroup)
	for index := range sources {
		index := index
		src := sources[index]

		select {
		case <-ctx.Done():
			results[index] = Result{Name: src.Name, Err: ctx.Err()}
			continue
		default:
		}

		wg.Add(1)
		task := func() {
			defer func() {
				if r := recover(); r != nil {
					results[index] = Result{Name: src.Name, Err: fmt.Errorf("%w: %v", ErrPanicked, r)}
				}
				wg.Done()
			}()

			results[index] = p.process(ctx, src)
		}

		if submitErr := p.pool.Submit(task); submitErr != nil {
			wg.Done()
			results[index] = Result{Name: src.Name, Err: fmt.Errorf("%w: %v", ErrSubmit, submitErr)}
		}
	}
	wg.Wait()

	var errs *multierror.Error
	for index := range results {
		if results[index].Err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", results[index].Name, results[index].Err))
		}
	}

	// ErrorOrNil handles a nil *multierror.Error.
	err = errs.ErrorOrNil()

	return
}

// process parses a single Source, consulting the cache first.
func (p *Processor) process(ctx context.Context, src Source) (resl Result) {
	resl.Name = src.Name

	if p.cache != nil {
		if cached, ok := p.cache.Get(src.Text); ok {
			entry := cached.(cacheEntry)
			p.cacheHits.Inc()

			resl.Exprs, resl.Rest, resl.Err, resl.Cached = entry.exprs, entry.rest, entry.err, true
			return
		}
	}

	resl.Exprs, resl.Rest, resl.Err = p.parser.ParseWithRemainder(ctx, src.Text)
	if errors.Is(resl.Err, context.Canceled) || errors.Is(resl.Err, context.DeadlineExceeded) {
		return
	}
	p.parsed.Inc()

	if p.debug {
		p.logger.Debugf("batch parsed %s: %d expressions, remainder %q", src.Name, len(resl.Exprs), resl.Rest)
	}

	if p.cache != nil {
		p.cache.Add(src.Text, cacheEntry{exprs: resl.Exprs, rest: resl.Rest, err: resl.Err})
	}

	return
}
