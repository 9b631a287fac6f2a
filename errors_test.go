// Copyright (C) 2011-2026, The go-bitcoinrpc Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package bitcoinrpc

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestErrorRendering(t *testing.T) {
	err := &Error{Code: -1, Message: "bad"}
	require.Equal(t, "-1: bad", err.Error())

	err = errMissingResult()
	require.Equal(t, "-343: missing JSON-RPC result", err.Error())

	err = errNonJSON("500 Internal Server Error")
	require.Equal(t, "non-JSON HTTP response with '500 Internal Server Error' from server", err.Message)
}

func TestPeerErrorCoercion(t *testing.T) {
	// Codes arrive through the decimal-preserving decoder as int64.
	err := peerError(map[string]any{"code": int64(-8), "message": "unknown block"})
	require.Equal(t, -8, err.Code)
	require.Equal(t, "unknown block", err.Message)

	// A server quirk may frame the code as a fractional literal.
	err = peerError(map[string]any{"code": decimal.NewFromInt(-8), "message": "unknown block"})
	require.Equal(t, -8, err.Code)

	// Malformed error members still surface something readable.
	err = peerError("boom")
	require.Equal(t, ErrCodeNoResponse, err.Code)
	require.Equal(t, "boom", err.Message)
}

func TestIsTimeout(t *testing.T) {
	require.True(t, IsTimeout(errTimeout(context.DeadlineExceeded)))
	require.False(t, IsTimeout(&Error{Code: -1, Message: "bad"}))
	require.False(t, IsTimeout(errMissingResult()))
	require.False(t, IsTimeout(nil))
}
