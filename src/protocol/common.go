// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import "encoding/json"

// Method name constants for every request and notification this package
// knows how to encode and decode.
const (
	MethodPing                   = "ping"
	MethodCancelled              = "notifications/cancelled"
	MethodProgress               = "notifications/progress"
	MethodInitialize             = "initialize"
	MethodInitialized            = "notifications/initialized"
	MethodRootsList              = "roots/list"
	MethodRootsListChanged       = "notifications/roots/list_changed"
	MethodSamplingCreate         = "sampling/createMessage"
	MethodToolsList              = "tools/list"
	MethodToolsCall              = "tools/call"
	MethodToolsListChanged       = "notifications/tools/list_changed"
	MethodResourcesList          = "resources/list"
	MethodResourcesTemplatesList = "resources/templates/list"
	MethodResourcesRead          = "resources/read"
	MethodResourcesSubscribe     = "resources/subscribe"
	MethodResourcesUnsub         = "resources/unsubscribe"
	MethodResourcesListChange    = "notifications/resources/list_changed"
	MethodResourceUpdated        = "notifications/resources/updated"
	MethodPromptsList            = "prompts/list"
	MethodPromptsGet             = "prompts/get"
	MethodPromptsListChanged     = "notifications/prompts/list_changed"
	MethodLoggingSetLevel        = "logging/setLevel"
	MethodLoggingMessage         = "notifications/message"
	MethodCompletionComplete     = "completion/complete"
)

// Request is implemented by every typed MCP request. Params returns the
// wire-form "params" object (including any "_meta"), or nil if the request
// carries none.
type Request interface {
	Method() string
	Params() (json.RawMessage, error)
}

// RequestWithMeta is implemented by requests that accept a ProgressToken
// or out-of-band Metadata; session code uses it to attach a progress token
// without each request type repeating the plumbing.
type RequestWithMeta interface {
	Request
	SetMeta(token ProgressToken, meta Meta)
}

// ParamDecoder is implemented by the destination value passed to a
// method's decode entry in the dispatch table: it fills itself from a raw
// params object, including recovering "_meta" into its RequestMeta/Meta
// field where the concrete type has one.
type ParamDecoder interface {
	UnmarshalParams(data json.RawMessage) error
}

// Notification is implemented by every typed MCP notification.
type Notification interface {
	Method() string
	Params() (json.RawMessage, error)
}

// Result is implemented by every typed MCP result.
type Result interface {
	Result() (json.RawMessage, error)
}

// ResultDecoder is implemented by the destination value passed when
// decoding a response's "result" object.
type ResultDecoder interface {
	UnmarshalResult(data json.RawMessage) error
}

// PingRequest is a heartbeat either side may send to check connection
// health. It carries no parameters and must be answered promptly so it is
// never blocked behind slower in-flight requests.
type PingRequest struct {
	Meta RequestMeta
}

func (PingRequest) Method() string { return MethodPing }

func (r PingRequest) Params() (json.RawMessage, error) {
	return encodeParams(nil, r.Meta.ProgressToken, r.Meta.Metadata)
}

func (r *PingRequest) UnmarshalParams(data json.RawMessage) error {
	token, meta, err := decodeParamsMeta(data, nil)
	if err != nil {
		return err
	}
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *PingRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

// EmptyResult is the result of a request that succeeds without returning
// data, such as ping.
type EmptyResult struct {
	Metadata Meta
}

func (r EmptyResult) Result() (json.RawMessage, error) {
	return encodeResult(nil, r.Metadata)
}

func (r *EmptyResult) UnmarshalResult(data json.RawMessage) error {
	meta, err := decodeResultMeta(data, nil)
	if err != nil {
		return err
	}
	r.Metadata = meta
	return nil
}

// CancelledNotification tells the peer that a previously sent request
// should be treated as abandoned; a response may still arrive and must be
// discarded rather than reported as an error.
type CancelledNotification struct {
	RequestId RequestId `json:"requestId"`
	Reason    string    `json:"reason,omitempty"`
	Metadata  Meta      `json:"-"`
}

func (CancelledNotification) Method() string { return MethodCancelled }

func (n CancelledNotification) Params() (json.RawMessage, error) {
	return encodeParams(cancelledFields{RequestId: n.RequestId, Reason: n.Reason}, nil, n.Metadata)
}

func (n *CancelledNotification) UnmarshalParams(data json.RawMessage) error {
	var fields cancelledFields
	_, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	n.RequestId, n.Reason, n.Metadata = fields.RequestId, fields.Reason, meta
	return nil
}

type cancelledFields struct {
	RequestId RequestId `json:"requestId"`
	Reason    string    `json:"reason,omitempty"`
}

// ProgressNotification reports incremental progress on a long-running
// operation previously tagged with a ProgressToken.
type ProgressNotification struct {
	ProgressToken ProgressToken
	Progress      float64
	Total         *float64
	Message       string
	Metadata      Meta
}

func (ProgressNotification) Method() string { return MethodProgress }

func (n ProgressNotification) Params() (json.RawMessage, error) {
	return encodeParams(progressFields{
		ProgressToken: n.ProgressToken,
		Progress:      n.Progress,
		Total:         n.Total,
		Message:       n.Message,
	}, nil, n.Metadata)
}

func (n *ProgressNotification) UnmarshalParams(data json.RawMessage) error {
	var fields progressFields
	_, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	n.ProgressToken, n.Progress, n.Total, n.Message, n.Metadata =
		fields.ProgressToken, fields.Progress, fields.Total, fields.Message, meta
	return nil
}

type progressFields struct {
	ProgressToken ProgressToken `json:"progressToken"`
	Progress      float64       `json:"progress"`
	Total         *float64      `json:"total,omitempty"`
	Message       string        `json:"message,omitempty"`
}
