// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import "encoding/json"

// PromptArgument describes one templating argument a prompt accepts.
type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// Prompt is a prompt or prompt template a server offers.
type Prompt struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Arguments   []PromptArgument `json:"arguments,omitempty"`
}

// PromptReference refers to a prompt by name, used in completion requests
// to scope argument completion to a specific prompt.
type PromptReference struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// NewPromptReference builds a PromptReference for the given prompt name.
func NewPromptReference(name string) PromptReference {
	return PromptReference{Type: "ref/prompt", Name: name}
}

// PromptMessage is one turn of a rendered prompt.
type PromptMessage struct {
	Role    Role         `json:"role"`
	Content ContentBlock `json:"content"`
}

// ListPromptsRequest asks a server for its available prompts.
type ListPromptsRequest struct {
	Cursor Cursor
	Meta   RequestMeta
}

func (ListPromptsRequest) Method() string { return MethodPromptsList }

func (r ListPromptsRequest) Params() (json.RawMessage, error) {
	return encodeParams(paginatedFields{Cursor: r.Cursor}, r.Meta.ProgressToken, r.Meta.Metadata)
}

func (r *ListPromptsRequest) UnmarshalParams(data json.RawMessage) error {
	var fields paginatedFields
	token, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Cursor = fields.Cursor
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *ListPromptsRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

// ListPromptsResult answers a ListPromptsRequest.
type ListPromptsResult struct {
	Prompts    []Prompt `json:"prompts"`
	NextCursor Cursor   `json:"nextCursor,omitempty"`
	Metadata   Meta     `json:"-"`
}

func (r ListPromptsResult) Result() (json.RawMessage, error) {
	return encodeResult(listPromptsFields{Prompts: r.Prompts, NextCursor: r.NextCursor}, r.Metadata)
}

func (r *ListPromptsResult) UnmarshalResult(data json.RawMessage) error {
	var fields listPromptsFields
	meta, err := decodeResultMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Prompts, r.NextCursor, r.Metadata = fields.Prompts, fields.NextCursor, meta
	return nil
}

type listPromptsFields struct {
	Prompts    []Prompt `json:"prompts"`
	NextCursor Cursor   `json:"nextCursor,omitempty"`
}

// GetPromptRequest asks a server to render a named prompt (or prompt
// template) with the given templating arguments.
type GetPromptRequest struct {
	Name      string
	Arguments map[string]string
	Meta      RequestMeta
}

func (GetPromptRequest) Method() string { return MethodPromptsGet }

func (r GetPromptRequest) Params() (json.RawMessage, error) {
	return encodeParams(getPromptFields{Name: r.Name, Arguments: r.Arguments}, r.Meta.ProgressToken, r.Meta.Metadata)
}

func (r *GetPromptRequest) UnmarshalParams(data json.RawMessage) error {
	var fields getPromptFields
	token, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Name, r.Arguments = fields.Name, fields.Arguments
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *GetPromptRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

type getPromptFields struct {
	Name      string            `json:"name"`
	Arguments map[string]string `json:"arguments,omitempty"`
}

// GetPromptResult is a rendered prompt's messages.
type GetPromptResult struct {
	Description string          `json:"description,omitempty"`
	Messages    []PromptMessage `json:"messages"`
	Metadata    Meta            `json:"-"`
}

func (r GetPromptResult) Result() (json.RawMessage, error) {
	return encodeResult(getPromptResultFields{Description: r.Description, Messages: r.Messages}, r.Metadata)
}

func (r *GetPromptResult) UnmarshalResult(data json.RawMessage) error {
	var fields getPromptResultFields
	meta, err := decodeResultMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Description, r.Messages, r.Metadata = fields.Description, fields.Messages, meta
	return nil
}

type getPromptResultFields struct {
	Description string          `json:"description,omitempty"`
	Messages    []PromptMessage `json:"messages"`
}

// PromptListChangedNotification tells the client the server's prompt list
// has changed.
type PromptListChangedNotification struct {
	Metadata Meta
}

func (PromptListChangedNotification) Method() string { return MethodPromptsListChanged }

func (n PromptListChangedNotification) Params() (json.RawMessage, error) {
	return encodeParams(nil, nil, n.Metadata)
}

func (n *PromptListChangedNotification) UnmarshalParams(data json.RawMessage) error {
	_, meta, err := decodeParamsMeta(data, nil)
	if err != nil {
		return err
	}
	n.Metadata = meta
	return nil
}
