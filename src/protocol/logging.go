// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import "encoding/json"

// LoggingLevel is the RFC 5424 severity level a client requests from, or
// a server reports to, a session's log stream.
type LoggingLevel string

// The eight severities the protocol defines, ordered least to most severe.
const (
	LoggingLevelDebug     LoggingLevel = "debug"
	LoggingLevelInfo      LoggingLevel = "info"
	LoggingLevelNotice    LoggingLevel = "notice"
	LoggingLevelWarning   LoggingLevel = "warning"
	LoggingLevelError     LoggingLevel = "error"
	LoggingLevelCritical  LoggingLevel = "critical"
	LoggingLevelAlert     LoggingLevel = "alert"
	LoggingLevelEmergency LoggingLevel = "emergency"
)

// SetLevelRequest asks a server to emit log messages at level and more
// severe only.
type SetLevelRequest struct {
	Level LoggingLevel
	Meta  RequestMeta
}

func (SetLevelRequest) Method() string { return MethodLoggingSetLevel }

func (r SetLevelRequest) Params() (json.RawMessage, error) {
	return encodeParams(setLevelFields{Level: r.Level}, r.Meta.ProgressToken, r.Meta.Metadata)
}

func (r *SetLevelRequest) UnmarshalParams(data json.RawMessage) error {
	var fields setLevelFields
	token, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Level = fields.Level
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *SetLevelRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

type setLevelFields struct {
	Level LoggingLevel `json:"level"`
}

// LoggingMessageNotification is a single log line a server pushes to the
// client, independent of SetLevelRequest if the client never called it.
type LoggingMessageNotification struct {
	Level    LoggingLevel
	Logger   string
	Data     json.RawMessage
	Metadata Meta
}

func (LoggingMessageNotification) Method() string { return MethodLoggingMessage }

func (n LoggingMessageNotification) Params() (json.RawMessage, error) {
	return encodeParams(loggingMessageFields{Level: n.Level, Logger: n.Logger, Data: n.Data}, nil, n.Metadata)
}

func (n *LoggingMessageNotification) UnmarshalParams(data json.RawMessage) error {
	var fields loggingMessageFields
	_, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	n.Level, n.Logger, n.Data, n.Metadata = fields.Level, fields.Logger, fields.Data, meta
	return nil
}

type loggingMessageFields struct {
	Level  LoggingLevel    `json:"level"`
	Logger string          `json:"logger,omitempty"`
	Data   json.RawMessage `json:"data"`
}
