// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc canonicalizes [JSON-RPC 2.0] payloads before
// protocol.DecodeEnvelope unmarshals them into an Envelope: it lowercases
// keys (a server that emits "ID" or "Method" should not be rejected),
// defaults a missing "jsonrpc" field to "2.0", and normalizes a
// whole-number id to int64 so a request id sent as 7 and echoed back as
// 7.0 still compare equal once decoded. UnmarshalFromMap is a small
// marshal/unmarshal round trip for converting an already-decoded
// map[string]any (params off an inbound request, say) into a typed
// struct without re-parsing the original bytes.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package jsonrpc
