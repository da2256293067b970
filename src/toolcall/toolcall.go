// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package toolcall provides thin, typed wrappers over session.SendRequest
// for the request/response method pairs a CLI or application most often
// drives directly: listing and calling tools, listing and reading
// resources, and listing and getting prompts. Apart from CallTool's
// optional argument validation, none of these add behavior beyond
// decoding convenience; they exist so callers do not have to thread
// protocol request/result types and method-name strings through every
// call site themselves.
package toolcall

import (
	"context"
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"
	"github.com/H0llyW00dzZ/mcp-client-session/src/session"
	"github.com/H0llyW00dzZ/mcp-client-session/src/validate"
)

// requester is the subset of *session.Session these helpers need, so
// tests can substitute a fake.
type requester interface {
	SendRequest(ctx context.Context, req protocol.Request, timeout time.Duration) (protocol.ResultDecoder, map[string]any, error)
}

// ListTools fetches one page of the server's tool catalogue.
func ListTools(ctx context.Context, s requester, cursor protocol.Cursor) (*protocol.ListToolsResult, error) {
	dec, _, err := s.SendRequest(ctx, &protocol.ListToolsRequest{Cursor: cursor}, 0)
	if err != nil {
		return nil, err
	}
	result, ok := dec.(*protocol.ListToolsResult)
	if !ok {
		return nil, fmt.Errorf("toolcall: unexpected result type %T for tools/list", dec)
	}
	return result, nil
}

// AllTools pages through the entire tool catalogue.
func AllTools(ctx context.Context, s requester) ([]protocol.Tool, error) {
	var all []protocol.Tool
	cursor := protocol.Cursor("")
	for {
		page, err := ListTools(ctx, s, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Tools...)
		if page.NextCursor == "" {
			return all, nil
		}
		cursor = page.NextCursor
	}
}

// CallTool invokes a tool by name. If tool is non-nil, arguments are
// validated against its InputSchema before the request is sent.
func CallTool(ctx context.Context, s requester, tool *protocol.Tool, name string, arguments map[string]any) (*protocol.CallToolResult, error) {
	if tool != nil {
		if err := validate.ToolArguments(*tool, arguments); err != nil {
			return nil, err
		}
	}
	dec, _, err := s.SendRequest(ctx, &protocol.CallToolRequest{Name: name, Arguments: arguments}, 0)
	if err != nil {
		return nil, err
	}
	result, ok := dec.(*protocol.CallToolResult)
	if !ok {
		return nil, fmt.Errorf("toolcall: unexpected result type %T for tools/call", dec)
	}
	return result, nil
}

// ListResources fetches one page of the server's resource catalogue.
func ListResources(ctx context.Context, s requester, cursor protocol.Cursor) (*protocol.ListResourcesResult, error) {
	dec, _, err := s.SendRequest(ctx, &protocol.ListResourcesRequest{Cursor: cursor}, 0)
	if err != nil {
		return nil, err
	}
	result, ok := dec.(*protocol.ListResourcesResult)
	if !ok {
		return nil, fmt.Errorf("toolcall: unexpected result type %T for resources/list", dec)
	}
	return result, nil
}

// ListResourceTemplates fetches one page of the server's resource
// template catalogue.
func ListResourceTemplates(ctx context.Context, s requester, cursor protocol.Cursor) (*protocol.ListResourceTemplatesResult, error) {
	dec, _, err := s.SendRequest(ctx, &protocol.ListResourceTemplatesRequest{Cursor: cursor}, 0)
	if err != nil {
		return nil, err
	}
	result, ok := dec.(*protocol.ListResourceTemplatesResult)
	if !ok {
		return nil, fmt.Errorf("toolcall: unexpected result type %T for resources/templates/list", dec)
	}
	return result, nil
}

// ReadResource fetches the contents of one resource by URI.
func ReadResource(ctx context.Context, s requester, uri string) (*protocol.ReadResourceResult, error) {
	dec, _, err := s.SendRequest(ctx, &protocol.ReadResourceRequest{URI: uri}, 0)
	if err != nil {
		return nil, err
	}
	result, ok := dec.(*protocol.ReadResourceResult)
	if !ok {
		return nil, fmt.Errorf("toolcall: unexpected result type %T for resources/read", dec)
	}
	return result, nil
}

// ListPrompts fetches one page of the server's prompt catalogue.
func ListPrompts(ctx context.Context, s requester, cursor protocol.Cursor) (*protocol.ListPromptsResult, error) {
	dec, _, err := s.SendRequest(ctx, &protocol.ListPromptsRequest{Cursor: cursor}, 0)
	if err != nil {
		return nil, err
	}
	result, ok := dec.(*protocol.ListPromptsResult)
	if !ok {
		return nil, fmt.Errorf("toolcall: unexpected result type %T for prompts/list", dec)
	}
	return result, nil
}

// GetPrompt renders a prompt template by name with the given arguments.
func GetPrompt(ctx context.Context, s requester, name string, arguments map[string]string) (*protocol.GetPromptResult, error) {
	dec, _, err := s.SendRequest(ctx, &protocol.GetPromptRequest{Name: name, Arguments: arguments}, 0)
	if err != nil {
		return nil, err
	}
	result, ok := dec.(*protocol.GetPromptResult)
	if !ok {
		return nil, fmt.Errorf("toolcall: unexpected result type %T for prompts/get", dec)
	}
	return result, nil
}

// SubscribeResource asks the server to notify the client when the
// resource at uri changes.
func SubscribeResource(ctx context.Context, s requester, uri string) error {
	_, _, err := s.SendRequest(ctx, &protocol.SubscribeRequest{URI: uri}, 0)
	return err
}

// UnsubscribeResource cancels a previous SubscribeResource call.
func UnsubscribeResource(ctx context.Context, s requester, uri string) error {
	_, _, err := s.SendRequest(ctx, &protocol.UnsubscribeRequest{URI: uri}, 0)
	return err
}

// Complete asks the server for completion suggestions for one argument of
// a prompt or resource template. ref must be a protocol.PromptReference or
// protocol.ResourceReference.
func Complete(ctx context.Context, s requester, ref any, arg protocol.CompletionArgument) (*protocol.CompleteResult, error) {
	dec, _, err := s.SendRequest(ctx, &protocol.CompleteRequest{Ref: ref, Argument: arg}, 0)
	if err != nil {
		return nil, err
	}
	result, ok := dec.(*protocol.CompleteResult)
	if !ok {
		return nil, fmt.Errorf("toolcall: unexpected result type %T for completion/complete", dec)
	}
	return result, nil
}

// Ping sends a bare heartbeat request and waits for the EmptyResult.
func Ping(ctx context.Context, s requester) error {
	_, _, err := s.SendRequest(ctx, &protocol.PingRequest{}, 0)
	return err
}

// SetLoggingLevel asks the server to emit logging/message notifications at
// level and above.
func SetLoggingLevel(ctx context.Context, s requester, level protocol.LoggingLevel) error {
	_, _, err := s.SendRequest(ctx, &protocol.SetLevelRequest{Level: level}, 0)
	return err
}

var _ requester = (*session.Session)(nil)
