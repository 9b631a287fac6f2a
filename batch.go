// Copyright (C) 2011-2026, The go-bitcoinrpc Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package bitcoinrpc

import (
	"context"

	"go.uber.org/zap"
)

// BatchCall is one entry of a batch request: a method name and its
// positional parameters. Batch entries are not affected by the client's
// namespace prefix; Method goes on the wire as given.
type BatchCall struct {
	Method string
	Params []any
}

// Batch posts calls as a single JSON-RPC 2.0 array in one HTTP request
// and returns the results in call order. Each entry draws its own id
// from the shared counter, and the Basic auth header is always attached.
//
// The server is assumed to answer in request order; results are taken as
// they arrive and not re-sorted by id. The first entry carrying a
// non-null error aborts the whole batch, partial results are never
// returned.
func (c *Client) Batch(ctx context.Context, calls []BatchCall) ([]any, error) {
	entries := make([]batchRequest, 0, len(calls))
	for _, call := range calls {
		params, err := encodeParams(call.Params)
		if err != nil {
			return nil, err
		}
		entries = append(entries, batchRequest{
			JSONRPC: "2.0",
			Method:  call.Method,
			Params:  params,
			ID:      c.ids.Next(),
		})
	}

	payload, err := Marshal(entries)
	if err != nil {
		return nil, err
	}

	c.log.Debug("rpc batch request",
		zap.Int("calls", len(entries)),
		zap.ByteString("body", payload))

	defer c.conn.release()

	reply, err := c.post(ctx, payload, true)
	if err != nil {
		return nil, err
	}
	decoded, err := decodeReply(reply)
	if err != nil {
		return nil, err
	}

	responses, ok := decoded.([]any)
	if !ok {
		// A single object means the server rejected the batch outright.
		if env, ok := decoded.(map[string]any); ok {
			if e, present := env["error"]; present && e != nil {
				return nil, peerError(e)
			}
		}
		return nil, errBatchRejected()
	}

	results := make([]any, 0, len(responses))
	for _, response := range responses {
		result, err := resultOf(response)
		if err != nil {
			c.log.Debug("rpc batch response", zap.Error(err))
			return nil, err
		}
		results = append(results, result)
	}
	c.log.Debug("rpc batch response", zap.Int("results", len(results)))
	return results, nil
}
