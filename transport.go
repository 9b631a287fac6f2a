// Copyright (C) 2011-2026, The go-bitcoinrpc Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package bitcoinrpc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
)

// connHandle wraps the shared HTTP connection together with its
// ownership tag. A connection supplied by the caller is externally owned
// and never closed here; a connection the handle creates for itself is
// released after every call, trading persistence for safety.
type connHandle struct {
	once  sync.Once
	hc    *http.Client
	owned bool
}

// get returns the connection, lazily creating a self-owned one on first
// use. The handle is shared by every client derived from the same root,
// so all of them see the same connection.
func (h *connHandle) get() *http.Client {
	h.once.Do(func() {
		if h.hc == nil {
			h.hc = new(http.Client)
			h.owned = true
		}
	})
	return h.hc
}

// release drops idle connections on a self-owned handle. Externally
// supplied connections are left untouched.
func (h *connHandle) release() {
	if h.owned && h.hc != nil {
		h.hc.CloseIdleConnections()
	}
}

// httpReply is a fully-read HTTP response, ready for decoding.
type httpReply struct {
	status      string
	contentType string
	body        []byte
}

// post sends one framed request and reads the whole response within the
// client timeout. The timeout bounds only this network phase; a deadline
// firing here cancels the in-flight request and surfaces the
// timeout-specific failure instead of the generic transport one.
func (c *Client) post(ctx context.Context, payload []byte, withAuth bool) (*httpReply, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, errNoResponse(err)
	}
	req.Host = c.endpoint.Host
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-type", "application/json")
	if withAuth {
		req.Header.Set("Authorization", c.endpoint.AuthHeader())
	}

	resp, err := c.conn.get().Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errTimeout(context.DeadlineExceeded)
		}
		return nil, errNoResponse(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errTimeout(context.DeadlineExceeded)
		}
		return nil, errNoResponse(err)
	}

	return &httpReply{
		status:      resp.Status,
		contentType: resp.Header.Get("Content-Type"),
		body:        body,
	}, nil
}
