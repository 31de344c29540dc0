// SPDX-License-Identifier: MIT
package exprtree

import (
	"context"
	"errors"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// TraverseComm defines a channel message to communicate nodes between [Walk] & it's callers.
	TraverseComm struct {
		Expr Expr

		// Depth is the nesting level of Expr, 0 for top-level expressions.
		Depth int

		// NewPeers marks the first node of a level.
		NewPeers bool
	}

	// LevelList holds expressions by nesting level.
	LevelList []Group

	// KindCount holds the number of expressions per Kind.
	KindCount map[Kind]int
)

const traverseBufferSize = 10

// ErrNoExprs is returned by traversals of an empty tree.
var ErrNoExprs = errors.New("lacks expressions")

// Walk performs breadth-first traversal on expressions, pushing them to its channel argument.
//
// The channel is closed on completion. A context.Context is used to terminate the walk operation;
// callers abandoning the channel early must cancel it.
func Walk(ctx context.Context, exprs Group, traverseChan chan<- TraverseComm) {
	defer close(traverseChan)

	// Level order traversal.
	queue := exprs
	for depth := 0; len(queue) > 0; depth++ {
		var next Group

		newPeers := true
		for _, front := range queue {
			select {
			case <-ctx.Done():
				// Received context cancellation.
				return
			case traverseChan <- TraverseComm{Expr: front, Depth: depth, NewPeers: newPeers}:
			}
			newPeers = false

			next = append(next, Children(front)...)
		}

		queue = next
	}
}

// ByLevel lists expressions by nesting level.
func ByLevel(ctx context.Context, exprs Group) (levels LevelList, err error) {
	traverseChan := make(chan TraverseComm, traverseBufferSize)
	go Walk(ctx, exprs, traverseChan)

	var peers Group
	for resl := range traverseChan {
		if !resl.NewPeers {
			peers = append(peers, resl.Expr)
			continue
		}

		if len(peers) > 0 {
			levels = append(levels, peers)
		}
		peers = Group{resl.Expr}
	}
	if len(peers) > 0 {
		levels = append(levels, peers)
	}

	if err = ctx.Err(); err != nil {
		return
	}
	if len(levels) < 1 {
		err = ErrNoExprs
	}

	return
}

// Leaves lists the literals & free-form text of the expressions, in breadth-first order.
//
// Empty groups are not leaves.
func Leaves(ctx context.Context, exprs Group) (leaves Group, err error) {
	traverseChan := make(chan TraverseComm, traverseBufferSize)
	go Walk(ctx, exprs, traverseChan)

	for resl := range traverseChan {
		if _, _, _, nested := delimiters(resl.Expr); !nested {
			leaves = append(leaves, resl.Expr)
		}
	}

	if err = ctx.Err(); err != nil {
		return
	}
	if len(leaves) < 1 {
		err = ErrNoExprs
	}

	return
}

// Count tallies the expressions by Kind.
func Count(ctx context.Context, exprs Group) (counts KindCount, err error) {
	counts = make(KindCount)

	traverseChan := make(chan TraverseComm, traverseBufferSize)
	go Walk(ctx, exprs, traverseChan)

	for resl := range traverseChan {
		counts[resl.Expr.Kind()]++
	}
	err = ctx.Err()

	return
}

// Kinds returns the counted kinds in declaration order.
func (c KindCount) Kinds() (kinds []Kind) {
	kinds = maps.Keys(c)
	slices.Sort(kinds)

	return
}

// Depth obtains the number of levels in a [LevelList].
func (l LevelList) Depth() int { return len(l) }
