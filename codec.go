// Copyright (C) 2011-2026, The go-bitcoinrpc Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package bitcoinrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// decimalPlaces is how many fractional digits survive encoding. Bitcoin
// amounts are defined to 8 places (1 satoshi).
const decimalPlaces = 8

// request is a single-call JSON-RPC 1.1 envelope.
type request struct {
	Version string `json:"version"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      uint64 `json:"id"`
}

// batchRequest is one entry of a JSON-RPC 2.0 batch envelope.
type batchRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      uint64 `json:"id"`
}

// Marshal encodes v as JSON, emitting decimal.Decimal values as plain
// number literals rounded to 8 fractional digits. Everything the
// standard encoder accepts is passed through unchanged; anything it
// rejects is an encoding failure.
func Marshal(v any) ([]byte, error) {
	ev, err := encodeValue(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(ev)
}

// Unmarshal decodes a JSON document with exact numeric fidelity: number
// literals with a fractional or exponent part become decimal.Decimal
// rather than float64, plain integer literals become int64, and integers
// too large for int64 fall back to decimal. Containers decode to
// map[string]any and []any.
func Unmarshal(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return convertNumbers(v)
}

func encodeValue(v any) (any, error) {
	switch t := v.(type) {
	case decimal.Decimal:
		return json.RawMessage(t.Round(decimalPlaces).String()), nil
	case *decimal.Decimal:
		if t == nil {
			return nil, nil
		}
		return json.RawMessage(t.Round(decimalPlaces).String()), nil
	case []any:
		return encodeParams(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			ev, err := encodeValue(e)
			if err != nil {
				return nil, err
			}
			out[k] = ev
		}
		return out, nil
	default:
		return v, nil
	}
}

// encodeParams rewrites a parameter list so the standard encoder emits
// decimals as rounded number literals. The result is never nil: an empty
// parameter list must encode as [] on the wire, not null.
func encodeParams(params []any) ([]any, error) {
	out := make([]any, len(params))
	for i, p := range params {
		ev, err := encodeValue(p)
		if err != nil {
			return nil, fmt.Errorf("encode param %d: %w", i, err)
		}
		out[i] = ev
	}
	return out, nil
}

func convertNumbers(v any) (any, error) {
	switch t := v.(type) {
	case json.Number:
		return convertNumber(t)
	case []any:
		for i, e := range t {
			ev, err := convertNumbers(e)
			if err != nil {
				return nil, err
			}
			t[i] = ev
		}
		return t, nil
	case map[string]any:
		for k, e := range t {
			ev, err := convertNumbers(e)
			if err != nil {
				return nil, err
			}
			t[k] = ev
		}
		return t, nil
	default:
		return v, nil
	}
}

func convertNumber(n json.Number) (any, error) {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		return decimal.NewFromString(s)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	return decimal.NewFromString(s)
}

// decodeReply applies the response contract: the body must parse through
// the decimal-preserving decoder and the declared content type must be
// exactly application/json. A body that fails to parse reports the
// missing-response failure; a wrong content type fails even when the
// body happens to parse.
func decodeReply(reply *httpReply) (any, error) {
	v, err := Unmarshal(reply.body)
	if err != nil {
		return nil, errNoResponse(err)
	}
	if reply.contentType != "application/json" {
		return nil, errNonJSON(reply.status)
	}
	return v, nil
}

// resultOf enforces the envelope contract on one decoded response: a
// non-null error member fails the call with the peer's code and message,
// and exactly one of result/error must be present.
func resultOf(v any) (any, error) {
	env, ok := v.(map[string]any)
	if !ok {
		return nil, errMissingResult()
	}
	if e, ok := env["error"]; ok && e != nil {
		return nil, peerError(e)
	}
	result, ok := env["result"]
	if !ok {
		return nil, errMissingResult()
	}
	return result, nil
}
