// Copyright (C) 2011-2026, The go-bitcoinrpc Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package bitcoinrpc

import "sync/atomic"

// IDCounter hands out JSON-RPC request ids: strictly increasing, never
// reused for the lifetime of the counter. The zero value is ready to
// use, and a counter may be shared between independent clients or kept
// private per client, as the caller decides.
type IDCounter struct {
	n atomic.Uint64
}

// Next returns the next id.
func (c *IDCounter) Next() uint64 {
	return c.n.Add(1)
}

// defaultIDCounter correlates requests across every client not given a
// counter of its own, so log output lines up with wire traffic
// process-wide.
var defaultIDCounter = new(IDCounter)
