// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/H0llyW00dzZ/mcp-client-session/src/internal/helper/jsonrpc"
)

// Kind classifies a decoded Envelope into one of the four JSON-RPC message
// shapes this engine needs to tell apart.
type Kind int

const (
	// KindRequest is a message with both "method" and "id": it expects a
	// Response or ErrorResponse envelope in reply.
	KindRequest Kind = iota
	// KindNotification is a message with "method" but no "id": no reply
	// is expected or permitted.
	KindNotification
	// KindResponse is a successful reply: "id" and "result", no "error".
	KindResponse
	// KindErrorResponse is a failed reply: "id" and "error", no "result".
	KindErrorResponse
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindNotification:
		return "notification"
	case KindResponse:
		return "response"
	case KindErrorResponse:
		return "error_response"
	default:
		return "unknown"
	}
}

// Envelope is the generic JSON-RPC 2.0 wire shape. A decoded message
// populates only the fields relevant to its Kind; Validate checks the
// combination is one of the four legal shapes.
type Envelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      RequestId       `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Kind classifies e per the rules documented on the Kind type. Call
// Validate first if e came from an untrusted source; Kind assumes e is
// well-formed, including that a present ID is a string or number -
// Validate is what turns a method+id message with a malformed id (an
// array, object, or bool) into a rejected envelope instead of a
// misclassified request.
func (e Envelope) Kind() Kind {
	switch {
	case e.Method != "" && e.ID != nil:
		return KindRequest
	case e.Method != "":
		return KindNotification
	case e.Error != nil:
		return KindErrorResponse
	default:
		return KindResponse
	}
}

// Validate reports whether e is exactly one of the four legal JSON-RPC
// message shapes: a method+id message never also carries a result or
// error, and a result/error message never also carries a method. A
// present id must be a string or number; anything else (missing and
// null both decode to a nil ID and are left to Kind's method-without-id
// rule, i.e. they are notifications, not malformed requests) is rejected
// here so a request with, say, an array id is dropped before dispatch
// instead of being handed to a handler that would try to answer it.
func (e Envelope) Validate() error {
	hasMethod := e.Method != ""
	hasResult := len(e.Result) > 0
	hasError := e.Error != nil
	hasID := e.ID != nil

	if hasMethod && (hasResult || hasError) {
		return fmt.Errorf("protocol: envelope has both method and result/error")
	}
	if hasResult && hasError {
		return fmt.Errorf("protocol: envelope has both result and error")
	}
	if !hasMethod && !hasResult && !hasError {
		return fmt.Errorf("protocol: envelope has none of method, result, error")
	}
	if (hasResult || hasError) && !hasID {
		return fmt.Errorf("protocol: response envelope missing id")
	}
	if hasID && !isWireRequestID(e.ID) {
		return fmt.Errorf("protocol: envelope id %v is not a string or number", e.ID)
	}
	return nil
}

// isWireRequestID reports whether v is a legal wire RequestId: a string
// or a number. DecodeEnvelope unmarshals the canonicalized bytes into an
// any-typed ID, so every numeric id read off the wire arrives here as
// float64, integral or not; int and int64 only appear for envelopes built
// in Go. Any of these number types is accepted, including a non-integral
// float64, so the failure mode this check guards against is a value that
// is not a number at all (arrays, objects, bools).
func isWireRequestID(v any) bool {
	switch v.(type) {
	case string, int, int64, float64:
		return true
	default:
		return false
	}
}

// DecodeEnvelope decodes a single JSON-RPC message, canonicalizing key
// case and numeric id representation via the jsonrpc helper before
// unmarshaling, since some servers emit slightly non-canonical JSON.
func DecodeEnvelope(data []byte) (Envelope, error) {
	canon, err := jsonrpc.Marshal(data)
	if err != nil {
		return Envelope{}, fmt.Errorf("protocol: canonicalize envelope: %w", err)
	}
	var e Envelope
	if err := json.Unmarshal(canon, &e); err != nil {
		return Envelope{}, fmt.Errorf("protocol: decode envelope: %w", err)
	}
	return e, nil
}

// DecodeBatch decodes either a single JSON-RPC message or a JSON-RPC batch
// array into a slice of Envelope. The session's receive loop calls it on
// every frame a transport hands over and routes the resulting envelopes
// one at a time, so a transport may pass a batch frame through unchanged.
func DecodeBatch(data []byte) ([]Envelope, error) {
	trimmed := trimLeadingSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("protocol: empty message")
	}
	if trimmed[0] != '[' {
		e, err := DecodeEnvelope(data)
		if err != nil {
			return nil, err
		}
		return []Envelope{e}, nil
	}
	var rawItems []json.RawMessage
	if err := json.Unmarshal(trimmed, &rawItems); err != nil {
		return nil, fmt.Errorf("protocol: decode batch: %w", err)
	}
	out := make([]Envelope, 0, len(rawItems))
	for _, item := range rawItems {
		e, err := DecodeEnvelope(item)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func trimLeadingSpace(data []byte) []byte {
	i := 0
	for i < len(data) {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		}
		break
	}
	return data[i:]
}

// EncodeRequest builds and marshals a JSON-RPC request envelope for req
// under id.
func EncodeRequest(id RequestId, req Request) ([]byte, error) {
	params, err := req.Params()
	if err != nil {
		return nil, fmt.Errorf("protocol: encode %s params: %w", req.Method(), err)
	}
	return json.Marshal(Envelope{
		JSONRPC: jsonrpcVersion,
		ID:      id,
		Method:  req.Method(),
		Params:  params,
	})
}

// EncodeNotification builds and marshals a JSON-RPC notification envelope
// for n.
func EncodeNotification(n Notification) ([]byte, error) {
	params, err := n.Params()
	if err != nil {
		return nil, fmt.Errorf("protocol: encode %s params: %w", n.Method(), err)
	}
	return json.Marshal(Envelope{
		JSONRPC: jsonrpcVersion,
		Method:  n.Method(),
		Params:  params,
	})
}

// EncodeResponse builds and marshals a successful JSON-RPC response
// envelope for id.
func EncodeResponse(id RequestId, result Result) ([]byte, error) {
	raw, err := result.Result()
	if err != nil {
		return nil, fmt.Errorf("protocol: encode result: %w", err)
	}
	if raw == nil {
		raw = json.RawMessage("{}")
	}
	return json.Marshal(Envelope{
		JSONRPC: jsonrpcVersion,
		ID:      id,
		Result:  raw,
	})
}

// EncodeErrorResponse builds and marshals a failed JSON-RPC response
// envelope for id.
func EncodeErrorResponse(id RequestId, err *Error) ([]byte, error) {
	return json.Marshal(Envelope{
		JSONRPC: jsonrpcVersion,
		ID:      id,
		Error:   err,
	})
}

// jsonrpcVersion is the JSON-RPC protocol version string this package
// stamps on every outbound envelope.
const jsonrpcVersion = "2.0"
