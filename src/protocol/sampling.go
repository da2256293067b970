// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import "encoding/json"

// SamplingMessage is one turn of a conversation sent to, or received from,
// an LLM during a sampling exchange.
type SamplingMessage struct {
	Role    Role         `json:"role"`
	Content ContentBlock `json:"content"`
}

// ModelPreferences hints to the client which model family or tradeoffs a
// server would like it to use for a sampling request. Priorities range
// from 0 (lowest) to 1 (highest) and are advisory only.
type ModelPreferences struct {
	Hints                []string `json:"hints,omitempty"`
	CostPriority         *float64 `json:"costPriority,omitempty"`
	SpeedPriority        *float64 `json:"speedPriority,omitempty"`
	IntelligencePriority *float64 `json:"intelligencePriority,omitempty"`
}

// IncludeContext controls how much of the surrounding MCP context a
// server asks the client to fold into a sampling request.
type IncludeContext string

const (
	IncludeContextNone        IncludeContext = "none"
	IncludeContextThisServer  IncludeContext = "thisServer"
	IncludeContextAllServers  IncludeContext = "allServers"
)

// CreateMessageRequest is an inbound request from a server asking the
// client to perform LLM sampling and return the generated message. It is
// only valid if the client declared the sampling capability and has a
// registered handler.
//
// LLMMetadata is distinct from Meta: LLMMetadata is provider-specific data
// placed directly under params.metadata and forwarded to the model
// provider, while Meta's contents land under params._meta as ordinary MCP
// protocol metadata. The two occupy different wire slots even though both
// are named "metadata" in casual conversation about the protocol.
type CreateMessageRequest struct {
	Messages         []SamplingMessage
	ModelPreferences *ModelPreferences
	SystemPrompt     string
	IncludeContext   IncludeContext
	Temperature      *float64
	MaxTokens        int
	StopSequences    []string
	LLMMetadata      map[string]any
	Meta             RequestMeta
}

func (CreateMessageRequest) Method() string { return MethodSamplingCreate }

func (r CreateMessageRequest) Params() (json.RawMessage, error) {
	obj, err := structToMap(createMessageFields{
		Messages:         r.Messages,
		ModelPreferences: r.ModelPreferences,
		SystemPrompt:     r.SystemPrompt,
		IncludeContext:   r.IncludeContext,
		Temperature:      r.Temperature,
		MaxTokens:        r.MaxTokens,
		StopSequences:    r.StopSequences,
	})
	if err != nil {
		return nil, err
	}
	if len(r.LLMMetadata) > 0 {
		obj["metadata"] = r.LLMMetadata
	}
	if m := mergeMeta(r.Meta.ProgressToken, r.Meta.Metadata); m != nil {
		obj["_meta"] = m
	}
	if len(obj) == 0 {
		return nil, nil
	}
	return json.Marshal(obj)
}

func (r *CreateMessageRequest) UnmarshalParams(data json.RawMessage) error {
	var fields createMessageFields
	if len(data) > 0 {
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
	}
	var wireMeta struct {
		Meta        map[string]any `json:"_meta"`
		LLMMetadata map[string]any `json:"metadata"`
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &wireMeta); err != nil {
			return err
		}
	}
	token, meta := splitMeta(wireMeta.Meta)
	r.Messages = fields.Messages
	r.ModelPreferences = fields.ModelPreferences
	r.SystemPrompt = fields.SystemPrompt
	r.IncludeContext = fields.IncludeContext
	r.Temperature = fields.Temperature
	r.MaxTokens = fields.MaxTokens
	r.StopSequences = fields.StopSequences
	r.LLMMetadata = wireMeta.LLMMetadata
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *CreateMessageRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

type createMessageFields struct {
	Messages         []SamplingMessage `json:"messages"`
	ModelPreferences *ModelPreferences `json:"modelPreferences,omitempty"`
	SystemPrompt     string            `json:"systemPrompt,omitempty"`
	IncludeContext   IncludeContext    `json:"includeContext,omitempty"`
	Temperature      *float64          `json:"temperature,omitempty"`
	MaxTokens        int               `json:"maxTokens"`
	StopSequences    []string          `json:"stopSequences,omitempty"`
}

// StopReason explains why a sampling generation stopped.
type StopReason string

const (
	StopReasonEndTurn       StopReason = "endTurn"
	StopReasonStopSequence  StopReason = "stopSequence"
	StopReasonMaxTokens     StopReason = "maxTokens"
)

// CreateMessageResult is the client's answer to a CreateMessageRequest,
// carrying the generated message and which model produced it.
type CreateMessageResult struct {
	Role       Role         `json:"role"`
	Content    ContentBlock `json:"content"`
	Model      string       `json:"model"`
	StopReason StopReason   `json:"stopReason,omitempty"`
	Metadata   Meta         `json:"-"`
}

func (r CreateMessageResult) Result() (json.RawMessage, error) {
	return encodeResult(createMessageResultFields{
		Role: r.Role, Content: r.Content, Model: r.Model, StopReason: r.StopReason,
	}, r.Metadata)
}

func (r *CreateMessageResult) UnmarshalResult(data json.RawMessage) error {
	var fields createMessageResultFields
	meta, err := decodeResultMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Role, r.Content, r.Model, r.StopReason = fields.Role, fields.Content, fields.Model, fields.StopReason
	r.Metadata = meta
	return nil
}

type createMessageResultFields struct {
	Role       Role         `json:"role"`
	Content    ContentBlock `json:"content"`
	Model      string       `json:"model"`
	StopReason StopReason   `json:"stopReason,omitempty"`
}
