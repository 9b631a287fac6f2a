// Copyright (C) 2011-2026, The go-bitcoinrpc Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package bitcoinrpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Error codes used for failures detected on the client side. Any other
// code comes verbatim from the peer.
const (
	ErrCodeNoResponse    = -342   // transport or content-type failure
	ErrCodeMissingResult = -343   // envelope carried neither result nor error
	ErrCodeParse         = -32700 // server rejected a batch outright
)

// Error is the single failure kind surfaced by Call and Batch. Transport
// failures are normalized into it alongside errors reported by the peer,
// so callers handle one type regardless of failure origin.
type Error struct {
	Code    int
	Message string

	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// IsTimeout reports whether err is a call that hit its timeout rather
// than a peer or transport failure.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

func errNoResponse(cause error) *Error {
	return &Error{Code: ErrCodeNoResponse, Message: "missing HTTP response from server", cause: cause}
}

func errNonJSON(status string) *Error {
	return &Error{Code: ErrCodeNoResponse, Message: fmt.Sprintf("non-JSON HTTP response with '%s' from server", status)}
}

func errMissingResult() *Error {
	return &Error{Code: ErrCodeMissingResult, Message: "missing JSON-RPC result"}
}

func errTimeout(cause error) *Error {
	return &Error{Code: ErrCodeNoResponse, Message: "timed out waiting for HTTP response from server", cause: cause}
}

func errBatchRejected() *Error {
	return &Error{Code: ErrCodeParse, Message: "Parse error"}
}

// peerError converts a decoded non-null "error" member into *Error,
// keeping the peer's code and message verbatim.
func peerError(v any) *Error {
	env, ok := v.(map[string]any)
	if !ok {
		return &Error{Code: ErrCodeNoResponse, Message: fmt.Sprint(v)}
	}
	e := &Error{}
	switch code := env["code"].(type) {
	case int64:
		e.Code = int(code)
	case decimal.Decimal:
		e.Code = int(code.IntPart())
	}
	if msg, ok := env["message"].(string); ok {
		e.Message = msg
	}
	return e
}
