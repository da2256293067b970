// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

// requestFactories maps a method name to a constructor for the typed,
// mutable request value used to decode inbound params for that method.
// Only methods a client session is expected to *receive* as a request
// need an entry here (ping, roots/list, sampling/createMessage); methods
// the client only *sends* are encoded directly from their typed value and
// never need to be decoded from the inbound side.
var requestFactories = map[string]func() ParamDecoder{
	MethodPing:           func() ParamDecoder { return &PingRequest{} },
	MethodRootsList:      func() ParamDecoder { return &ListRootsRequest{} },
	MethodSamplingCreate: func() ParamDecoder { return &CreateMessageRequest{} },
}

// NewRequestDecoder returns a zero-value, pointer ParamDecoder for the
// given inbound request method, or ok=false if this package has no typed
// shape registered for it (the caller should fall back to generic
// map[string]any decoding and still be able to reply with MethodNotFound).
func NewRequestDecoder(method string) (dec ParamDecoder, ok bool) {
	factory, ok := requestFactories[method]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// notificationFactories maps a method name to a constructor for the typed
// notification value used to decode inbound notification params. This
// covers every *server-to-client* notification the session may observe.
var notificationFactories = map[string]func() ParamDecoder{
	MethodCancelled:           func() ParamDecoder { return &CancelledNotification{} },
	MethodProgress:            func() ParamDecoder { return &ProgressNotification{} },
	MethodToolsListChanged:    func() ParamDecoder { return &ToolListChangedNotification{} },
	MethodResourcesListChange: func() ParamDecoder { return &ResourceListChangedNotification{} },
	MethodResourceUpdated:     func() ParamDecoder { return &ResourceUpdatedNotification{} },
	MethodPromptsListChanged:  func() ParamDecoder { return &PromptListChangedNotification{} },
	MethodRootsListChanged:    func() ParamDecoder { return &RootsListChangedNotification{} },
	MethodLoggingMessage:      func() ParamDecoder { return &LoggingMessageNotification{} },
}

// NewNotificationDecoder returns a zero-value, pointer ParamDecoder for
// the given inbound notification method, or ok=false if unrecognized.
func NewNotificationDecoder(method string) (dec ParamDecoder, ok bool) {
	factory, ok := notificationFactories[method]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// resultFactories maps the *request* method that produced a pending call
// to a constructor for its typed result, used by the correlator to decode
// a response body once it knows which outbound request the id belongs to.
var resultFactories = map[string]func() ResultDecoder{
	MethodPing:               func() ResultDecoder { return &EmptyResult{} },
	MethodInitialize:         func() ResultDecoder { return &InitializeResult{} },
	MethodRootsList:          func() ResultDecoder { return &ListRootsResult{} },
	MethodToolsList:          func() ResultDecoder { return &ListToolsResult{} },
	MethodToolsCall:          func() ResultDecoder { return &CallToolResult{} },
	MethodResourcesList:      func() ResultDecoder { return &ListResourcesResult{} },
	MethodResourcesTemplatesList: func() ResultDecoder { return &ListResourceTemplatesResult{} },
	MethodResourcesRead:      func() ResultDecoder { return &ReadResourceResult{} },
	MethodResourcesSubscribe: func() ResultDecoder { return &EmptyResult{} },
	MethodResourcesUnsub:     func() ResultDecoder { return &EmptyResult{} },
	MethodPromptsList:        func() ResultDecoder { return &ListPromptsResult{} },
	MethodPromptsGet:         func() ResultDecoder { return &GetPromptResult{} },
	MethodSamplingCreate:     func() ResultDecoder { return &CreateMessageResult{} },
	MethodLoggingSetLevel:    func() ResultDecoder { return &EmptyResult{} },
	MethodCompletionComplete: func() ResultDecoder { return &CompleteResult{} },
}

// NewResultDecoder returns a zero-value, pointer ResultDecoder for the
// request method that a response correlates to, or ok=false if
// unrecognized (the caller should fall back to storing the raw result
// bytes for the caller to decode itself).
func NewResultDecoder(requestMethod string) (dec ResultDecoder, ok bool) {
	factory, ok := resultFactories[requestMethod]
	if !ok {
		return nil, false
	}
	return factory(), true
}
