// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import (
	"encoding/json"
	"fmt"
)

// CompletionArgument names the argument a completion request wants
// suggestions for, and the partial value typed so far.
type CompletionArgument struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Completion is a completion response listing up to 100 candidate values.
type Completion struct {
	Values  []string `json:"values"`
	Total   *int     `json:"total,omitempty"`
	HasMore *bool    `json:"hasMore,omitempty"`
}

// CompleteRequest asks a server for completion suggestions for one
// argument of a prompt or resource template.
type CompleteRequest struct {
	Ref      any // PromptReference or ResourceReference
	Argument CompletionArgument
	Meta     RequestMeta
}

func (CompleteRequest) Method() string { return MethodCompletionComplete }

func (r CompleteRequest) Params() (json.RawMessage, error) {
	switch r.Ref.(type) {
	case PromptReference, ResourceReference:
	default:
		return nil, fmt.Errorf("protocol: CompleteRequest.Ref must be a PromptReference or ResourceReference, got %T", r.Ref)
	}
	return encodeParams(completeFields{Ref: r.Ref, Argument: r.Argument}, r.Meta.ProgressToken, r.Meta.Metadata)
}

func (r *CompleteRequest) UnmarshalParams(data json.RawMessage) error {
	var fields rawCompleteFields
	token, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	ref, err := decodeReference(fields.Ref)
	if err != nil {
		return err
	}
	r.Ref = ref
	r.Argument = fields.Argument
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *CompleteRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

// decodeReference sniffs the "type" discriminator to decode a completion
// ref as a PromptReference or ResourceReference.
func decodeReference(raw json.RawMessage) (any, error) {
	var disc struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &disc); err != nil {
		return nil, err
	}
	switch disc.Type {
	case "ref/prompt":
		var p PromptReference
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case "ref/resource":
		var res ResourceReference
		if err := json.Unmarshal(raw, &res); err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, fmt.Errorf("protocol: unknown completion reference type %q", disc.Type)
	}
}

type completeFields struct {
	Ref      any                 `json:"ref"`
	Argument CompletionArgument  `json:"argument"`
}

type rawCompleteFields struct {
	Ref      json.RawMessage    `json:"ref"`
	Argument CompletionArgument `json:"argument"`
}

// CompleteResult answers a CompleteRequest.
type CompleteResult struct {
	Completion Completion `json:"completion"`
	Metadata   Meta       `json:"-"`
}

func (r CompleteResult) Result() (json.RawMessage, error) {
	return encodeResult(completeResultFields{Completion: r.Completion}, r.Metadata)
}

func (r *CompleteResult) UnmarshalResult(data json.RawMessage) error {
	var fields completeResultFields
	meta, err := decodeResultMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Completion, r.Metadata = fields.Completion, meta
	return nil
}

type completeResultFields struct {
	Completion Completion `json:"completion"`
}
