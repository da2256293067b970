// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import (
	"encoding/json"
	"fmt"
)

// Annotations carries display hints a server attaches to content so a
// client can decide how to present it.
type Annotations struct {
	// Audience lists the roles this content is intended for.
	Audience []Role `json:"audience,omitempty"`
	// Priority ranges from 0 (lowest) to 1 (highest).
	Priority *float64 `json:"priority,omitempty"`
}

// ResourceContents is the shared shape of TextResourceContents and
// BlobResourceContents.
type ResourceContents struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
}

// TextResourceContents represents a resource's contents as UTF-8 text.
type TextResourceContents struct {
	ResourceContents
	Text string `json:"text"`
}

// BlobResourceContents represents a resource's contents as base64-encoded
// binary data.
type BlobResourceContents struct {
	ResourceContents
	Blob string `json:"blob"`
}

// ContentBlock is one unit of content in a prompt, tool result, or sampling
// message: text, an image, audio, or an embedded resource. Type says which
// fields are meaningful: Text for text, Data and MimeType for an image or
// audio, Resource (read with AsTextResource or AsBlobResource) for a resource.
type ContentBlock struct {
	Type        string          `json:"type"`
	Text        string          `json:"text,omitempty"`
	MimeType    string          `json:"mimeType,omitempty"`
	Data        string          `json:"data,omitempty"`
	Resource    json.RawMessage `json:"resource,omitempty"`
	Annotations *Annotations    `json:"annotations,omitempty"`
}

// Content kind discriminators used in ContentBlock.Type.
const (
	ContentTypeText     = "text"
	ContentTypeImage    = "image"
	ContentTypeAudio    = "audio"
	ContentTypeResource = "resource"
)

// NewTextContent builds a text content block.
func NewTextContent(text string) ContentBlock {
	return ContentBlock{Type: ContentTypeText, Text: text}
}

// NewImageContent builds an image content block from base64-encoded data.
func NewImageContent(data, mimeType string) ContentBlock {
	return ContentBlock{Type: ContentTypeImage, Data: data, MimeType: mimeType}
}

// NewAudioContent builds an audio content block from base64-encoded data.
func NewAudioContent(data, mimeType string) ContentBlock {
	return ContentBlock{Type: ContentTypeAudio, Data: data, MimeType: mimeType}
}

// AsTextResource decodes an embedded text resource, returning an error if
// this block is not a resource block or the embedded resource is not text.
func (c ContentBlock) AsTextResource() (TextResourceContents, error) {
	var t TextResourceContents
	if c.Type != ContentTypeResource {
		return t, fmt.Errorf("protocol: content block is %q, not %q", c.Type, ContentTypeResource)
	}
	if err := json.Unmarshal(c.Resource, &t); err != nil {
		return t, fmt.Errorf("protocol: decode embedded resource: %w", err)
	}
	return t, nil
}

// AsBlobResource decodes an embedded binary resource.
func (c ContentBlock) AsBlobResource() (BlobResourceContents, error) {
	var b BlobResourceContents
	if c.Type != ContentTypeResource {
		return b, fmt.Errorf("protocol: content block is %q, not %q", c.Type, ContentTypeResource)
	}
	if err := json.Unmarshal(c.Resource, &b); err != nil {
		return b, fmt.Errorf("protocol: decode embedded resource: %w", err)
	}
	return b, nil
}
