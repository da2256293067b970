// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import "encoding/json"

// InputSchema is the JSON Schema for a tool's input parameters.
type InputSchema struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
	Required   []string       `json:"required,omitempty"`
}

// ToolAnnotations are hints a server attaches to a tool describing its
// behavior. Clients must not rely on these for untrusted servers.
type ToolAnnotations struct {
	Title           string `json:"title,omitempty"`
	ReadOnlyHint    bool   `json:"readOnlyHint,omitempty"`
	DestructiveHint bool   `json:"destructiveHint,omitempty"`
	IdempotentHint  bool   `json:"idempotentHint,omitempty"`
	OpenWorldHint   bool   `json:"openWorldHint,omitempty"`
}

// Tool describes one tool a server can execute.
type Tool struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	InputSchema InputSchema      `json:"inputSchema"`
	Annotations *ToolAnnotations `json:"annotations,omitempty"`
}

// ListToolsRequest asks a server for its available tools, optionally
// continuing from a pagination Cursor.
type ListToolsRequest struct {
	Cursor Cursor
	Meta   RequestMeta
}

func (ListToolsRequest) Method() string { return MethodToolsList }

func (r ListToolsRequest) Params() (json.RawMessage, error) {
	return encodeParams(paginatedFields{Cursor: r.Cursor}, r.Meta.ProgressToken, r.Meta.Metadata)
}

func (r *ListToolsRequest) UnmarshalParams(data json.RawMessage) error {
	var fields paginatedFields
	token, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Cursor = fields.Cursor
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *ListToolsRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

type paginatedFields struct {
	Cursor Cursor `json:"cursor,omitempty"`
}

// ListToolsResult answers a ListToolsRequest.
type ListToolsResult struct {
	Tools      []Tool `json:"tools"`
	NextCursor Cursor `json:"nextCursor,omitempty"`
	Metadata   Meta   `json:"-"`
}

func (r ListToolsResult) Result() (json.RawMessage, error) {
	return encodeResult(listToolsFields{Tools: r.Tools, NextCursor: r.NextCursor}, r.Metadata)
}

func (r *ListToolsResult) UnmarshalResult(data json.RawMessage) error {
	var fields listToolsFields
	meta, err := decodeResultMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Tools, r.NextCursor, r.Metadata = fields.Tools, fields.NextCursor, meta
	return nil
}

type listToolsFields struct {
	Tools      []Tool `json:"tools"`
	NextCursor Cursor `json:"nextCursor,omitempty"`
}

// CallToolRequest invokes a named tool with the given arguments.
type CallToolRequest struct {
	Name      string
	Arguments map[string]any
	Meta      RequestMeta
}

func (CallToolRequest) Method() string { return MethodToolsCall }

func (r CallToolRequest) Params() (json.RawMessage, error) {
	return encodeParams(callToolFields{Name: r.Name, Arguments: r.Arguments}, r.Meta.ProgressToken, r.Meta.Metadata)
}

func (r *CallToolRequest) UnmarshalParams(data json.RawMessage) error {
	var fields callToolFields
	token, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Name, r.Arguments = fields.Name, fields.Arguments
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *CallToolRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

type callToolFields struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// CallToolResult is the outcome of a tool invocation. IsError indicates a
// tool-level failure reported inside the result (as opposed to a
// JSON-RPC-level protocol.Error), per the protocol's error-in-result
// convention for tool execution failures.
type CallToolResult struct {
	Content  []ContentBlock `json:"content"`
	IsError  bool           `json:"isError,omitempty"`
	Metadata Meta           `json:"-"`
}

func (r CallToolResult) Result() (json.RawMessage, error) {
	return encodeResult(callToolResultFields{Content: r.Content, IsError: r.IsError}, r.Metadata)
}

func (r *CallToolResult) UnmarshalResult(data json.RawMessage) error {
	var fields callToolResultFields
	meta, err := decodeResultMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Content, r.IsError, r.Metadata = fields.Content, fields.IsError, meta
	return nil
}

type callToolResultFields struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// ToolListChangedNotification tells the client the server's tool list has
// changed and tools/list should be called again.
type ToolListChangedNotification struct {
	Metadata Meta
}

func (ToolListChangedNotification) Method() string { return MethodToolsListChanged }

func (n ToolListChangedNotification) Params() (json.RawMessage, error) {
	return encodeParams(nil, nil, n.Metadata)
}

func (n *ToolListChangedNotification) UnmarshalParams(data json.RawMessage) error {
	_, meta, err := decodeParamsMeta(data, nil)
	if err != nil {
		return err
	}
	n.Metadata = meta
	return nil
}
