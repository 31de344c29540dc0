// SPDX-License-Identifier: MIT
package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/exprtree"
)

func newProcessor(t *testing.T, options ...Option) *Processor {
	t.Helper()

	logger, _ := test.NewNullLogger()

	p, err := New(append([]Option{WithLogger(logger)}, options...)...)
	require.NoError(t, err)
	t.Cleanup(p.Release)

	return p
}

func TestProcessor_Process(t *testing.T) {
	p := newProcessor(t, WithWorkers(4))

	sources := make([]Source, 0, 50)
	for index := 0; index < 50; index++ {
		sources = append(sources, Source{
			Name: fmt.Sprintf("src%d", index),
			Text: fmt.Sprintf("Node %d [Leaf' %d, \"s\"]", index, index),
		})
	}

	results, err := p.Process(context.Background(), sources)
	require.NoError(t, err)
	require.Len(t, results, len(sources))

	for index, resl := range results {
		require.Equal(t, sources[index].Name, resl.Name)
		require.NoError(t, resl.Err)
		require.Equal(t, exprtree.Parse(sources[index].Text), resl.Exprs)
		require.Equal(t, sources[index].Text, exprtree.Source(resl.Exprs))
	}
	require.Equal(t, Stats{Parsed: 50}, p.Stats())
}

func TestProcessor_Process_cache(t *testing.T) {
	p := newProcessor(t, WithWorkers(1))

	sources := []Source{{Name: "a", Text: "(1, 2)"}}

	first, err := p.Process(context.Background(), sources)
	require.NoError(t, err)
	require.False(t, first[0].Cached)

	second, err := p.Process(context.Background(), sources)
	require.NoError(t, err)
	require.True(t, second[0].Cached)
	require.Equal(t, first[0].Exprs, second[0].Exprs)

	require.Equal(t, Stats{Parsed: 1, CacheHits: 1}, p.Stats())
}

func TestProcessor_Process_noCache(t *testing.T) {
	p := newProcessor(t, WithCacheSize(0))

	sources := []Source{{Name: "a", Text: "x"}, {Name: "b", Text: "x"}}

	results, err := p.Process(context.Background(), sources)
	require.NoError(t, err)
	for _, resl := range results {
		require.False(t, resl.Cached)
	}
	require.Equal(t, Stats{Parsed: 2}, p.Stats())
}

func TestProcessor_Process_errors(t *testing.T) {
	parser := exprtree.New(exprtree.WithMaxDepth(1), exprtree.WithMaxLength(16))
	p := newProcessor(t, WithParser(parser))

	sources := []Source{
		{Name: "ok", Text: "(a)"},
		{Name: "deep", Text: "((a))"},
		{Name: "long", Text: strings.Repeat("x", 17)},
	}

	results, err := p.Process(context.Background(), sources)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)

	require.NoError(t, results[0].Err)
	require.ErrorIs(t, results[1].Err, exprtree.ErrMaxDepthExceeded)
	require.NotEmpty(t, results[1].Exprs, "partial tree is kept")
	require.ErrorIs(t, results[2].Err, exprtree.ErrSourceTooLarge)
	require.ErrorIs(t, err, exprtree.ErrSourceTooLarge)
}

func TestProcessor_Process_cancelled(t *testing.T) {
	p := newProcessor(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := p.Process(ctx, []Source{{Name: "a", Text: "x"}, {Name: "b", Text: "y"}})
	require.ErrorIs(t, err, context.Canceled)
	for _, resl := range results {
		require.ErrorIs(t, resl.Err, context.Canceled)
	}
	require.Equal(t, Stats{}, p.Stats())
}

func TestNew_invalidWorkers(t *testing.T) {
	_, err := New(WithWorkers(0))
	require.ErrorIs(t, err, ErrInvalidWorkers)
}

func TestReadSources(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		byLine      bool
		wantSources []Source
	}{
		{
			name:        "whole",
			src:         "Leaf 1\nLeaf 2\n",
			wantSources: []Source{{Name: "in", Text: "Leaf 1\nLeaf 2\n"}},
		},
		{
			name:   "by line",
			src:    "Leaf 1\n\n  \nLeaf 2",
			byLine: true,
			wantSources: []Source{
				{Name: "in:1", Text: "Leaf 1"},
				{Name: "in:4", Text: "Leaf 2"},
			},
		},
		{name: "empty by line", src: "", byLine: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSources, err := ReadSources("in", strings.NewReader(tt.src), tt.byLine)
			require.NoError(t, err)
			require.Equal(t, tt.wantSources, gotSources)
		})
	}
}
