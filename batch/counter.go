// SPDX-License-Identifier: MIT
package batch

import (
	"sync"
)

// safeCounter is a thread-safe counter.
type safeCounter struct {
	m   sync.Mutex
	val int
}

// Inc increments the counter.
func (c *safeCounter) Inc() {
	c.m.Lock()
	defer c.m.Unlock()
	c.val++
}

// Value returns the current value of the counter.
func (c *safeCounter) Value() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.val
}
