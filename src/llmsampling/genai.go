// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package llmsampling provides a session.SamplingHandler backed by the
// Gemini API, letting a server's sampling/createMessage requests be
// answered by a real model instead of requiring every client to hand-roll
// one.
package llmsampling

import (
	"context"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"
	"github.com/H0llyW00dzZ/mcp-client-session/src/session"

	"google.golang.org/genai"
)

// GenAIHandler answers CreateMessageRequest by forwarding the conversation
// to a Gemini model through client. ModelName selects which model serves
// every request; there is no per-request override beyond what
// ModelPreferences.Hints already convey to the server's own choice of
// client.
type GenAIHandler struct {
	client    *genai.Client
	modelName string
}

// NewGenAIHandler wraps client so it can be passed to
// session.WithSamplingHandler. modelName is a Gemini model identifier such
// as "gemini-2.5-flash".
func NewGenAIHandler(client *genai.Client, modelName string) *GenAIHandler {
	return &GenAIHandler{client: client, modelName: modelName}
}

// Handle implements session.SamplingHandler.
func (h *GenAIHandler) Handle(ctx context.Context, req *protocol.CreateMessageRequest) (*protocol.CreateMessageResult, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		if m.Content.Type != protocol.ContentTypeText {
			continue
		}
		role := "user"
		if m.Role == protocol.RoleAssistant {
			role = "model"
		}
		contents = append(contents, genai.NewContentFromText(m.Content.Text, role))
	}
	if len(contents) == 0 {
		return nil, fmt.Errorf("llmsampling: request carries no text content to sample from")
	}

	cfg := &genai.GenerateContentConfig{}
	if req.SystemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, "user")
	}
	if req.Temperature != nil {
		t := float32(*req.Temperature)
		cfg.Temperature = &t
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	cfg.StopSequences = req.StopSequences

	resp, err := h.client.Models.GenerateContent(ctx, h.modelName, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("llmsampling: generate content: %w", err)
	}

	var text strings.Builder
	var finishedOnMaxTokens bool
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			text.WriteString(part.Text)
		}
		if string(cand.FinishReason) == "MAX_TOKENS" {
			finishedOnMaxTokens = true
		}
	}

	stopReason := protocol.StopReasonEndTurn
	if finishedOnMaxTokens {
		stopReason = protocol.StopReasonMaxTokens
	}

	return &protocol.CreateMessageResult{
		Role:       protocol.RoleAssistant,
		Content:    protocol.NewTextContent(text.String()),
		Model:      h.modelName,
		StopReason: stopReason,
	}, nil
}

// AsSamplingHandler adapts h to the session.SamplingHandler function type.
func (h *GenAIHandler) AsSamplingHandler() session.SamplingHandler {
	return h.Handle
}
