// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import "encoding/json"

// InitializeRequest is the client's handshake request, sent first on every
// session, negotiating a protocol version and exchanging capabilities.
type InitializeRequest struct {
	ProtocolVersion string             `json:"protocolVersion"`
	ClientInfo      Implementation     `json:"clientInfo"`
	Capabilities    ClientCapabilities `json:"capabilities"`
	Meta            RequestMeta        `json:"-"`
}

// NewInitializeRequest builds an InitializeRequest pinned to this
// package's ProtocolVersion.
func NewInitializeRequest(client Implementation, caps ClientCapabilities) InitializeRequest {
	return InitializeRequest{
		ProtocolVersion: ProtocolVersion,
		ClientInfo:      client,
		Capabilities:    caps,
	}
}

func (InitializeRequest) Method() string { return MethodInitialize }

func (r InitializeRequest) Params() (json.RawMessage, error) {
	return encodeParams(initializeFields{
		ProtocolVersion: r.ProtocolVersion,
		ClientInfo:      r.ClientInfo,
		Capabilities:    r.Capabilities,
	}, r.Meta.ProgressToken, r.Meta.Metadata)
}

func (r *InitializeRequest) UnmarshalParams(data json.RawMessage) error {
	var fields initializeFields
	token, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	r.ProtocolVersion, r.ClientInfo, r.Capabilities = fields.ProtocolVersion, fields.ClientInfo, fields.Capabilities
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *InitializeRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

type initializeFields struct {
	ProtocolVersion string             `json:"protocolVersion"`
	ClientInfo      Implementation     `json:"clientInfo"`
	Capabilities    ClientCapabilities `json:"capabilities"`
}

// InitializedNotification confirms to the server that the client has
// processed the InitializeResult and is ready for normal traffic.
type InitializedNotification struct {
	Metadata Meta
}

func (InitializedNotification) Method() string { return MethodInitialized }

func (n InitializedNotification) Params() (json.RawMessage, error) {
	return encodeParams(nil, nil, n.Metadata)
}

func (n *InitializedNotification) UnmarshalParams(data json.RawMessage) error {
	_, meta, err := decodeParamsMeta(data, nil)
	if err != nil {
		return err
	}
	n.Metadata = meta
	return nil
}

// InitializeResult is the server's response to InitializeRequest,
// completing the handshake.
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      Implementation     `json:"serverInfo"`
	Instructions    string             `json:"instructions,omitempty"`
	Metadata        Meta               `json:"-"`
}

func (r InitializeResult) Result() (json.RawMessage, error) {
	return encodeResult(initializeResultFields{
		ProtocolVersion: r.ProtocolVersion,
		Capabilities:    r.Capabilities,
		ServerInfo:      r.ServerInfo,
		Instructions:    r.Instructions,
	}, r.Metadata)
}

func (r *InitializeResult) UnmarshalResult(data json.RawMessage) error {
	var fields initializeResultFields
	meta, err := decodeResultMeta(data, &fields)
	if err != nil {
		return err
	}
	r.ProtocolVersion, r.Capabilities, r.ServerInfo, r.Instructions =
		fields.ProtocolVersion, fields.Capabilities, fields.ServerInfo, fields.Instructions
	r.Metadata = meta
	return nil
}

type initializeResultFields struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      Implementation     `json:"serverInfo"`
	Instructions    string             `json:"instructions,omitempty"`
}
