// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import "encoding/json"

// Implementation identifies the name and version of a client or server.
type Implementation struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// RootsCapability declares client support for exposing filesystem roots.
type RootsCapability struct {
	// ListChanged reports whether this side sends notifications/roots/list_changed.
	ListChanged *bool `json:"listChanged,omitempty"`
}

// ClientCapabilities declares what a client supports, sent in InitializeRequest.
//
// Sampling is modeled as a plain bool in Go, rather than the wire's
// optional empty object, because the capability carries no sub-options
// today. MarshalJSON/UnmarshalJSON perform the bool <-> {} (or omitted)
// translation at the wire boundary.
type ClientCapabilities struct {
	Experimental map[string]any   `json:"experimental,omitempty"`
	Roots        *RootsCapability `json:"roots,omitempty"`
	Sampling     bool             `json:"-"`
}

type clientCapabilitiesWire struct {
	Experimental map[string]any   `json:"experimental,omitempty"`
	Roots        *RootsCapability `json:"roots,omitempty"`
	Sampling     *struct{}        `json:"sampling,omitempty"`
}

// MarshalJSON encodes Sampling as an empty object when true and omits the
// field entirely when false, matching the wire's capability-presence idiom.
func (c ClientCapabilities) MarshalJSON() ([]byte, error) {
	wire := clientCapabilitiesWire{
		Experimental: c.Experimental,
		Roots:        c.Roots,
	}
	if c.Sampling {
		wire.Sampling = &struct{}{}
	}
	return json.Marshal(wire)
}

// UnmarshalJSON treats presence of the "sampling" field ({} or null) as
// Sampling=true. A non-object value such as true fails to decode.
func (c *ClientCapabilities) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var wire clientCapabilitiesWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	c.Experimental = wire.Experimental
	c.Roots = wire.Roots
	_, c.Sampling = raw["sampling"]
	return nil
}

// PromptsCapability declares server support for prompt listing.
type PromptsCapability struct {
	ListChanged *bool `json:"listChanged,omitempty"`
}

// ResourcesCapability declares server support for resource listing and
// subscription.
type ResourcesCapability struct {
	Subscribe   *bool `json:"subscribe,omitempty"`
	ListChanged *bool `json:"listChanged,omitempty"`
}

// ToolsCapability declares server support for tool listing.
type ToolsCapability struct {
	ListChanged *bool `json:"listChanged,omitempty"`
}

// ServerCapabilities declares what a server supports, returned in
// InitializeResult.
type ServerCapabilities struct {
	Experimental map[string]any       `json:"experimental,omitempty"`
	Logging      map[string]any       `json:"logging,omitempty"`
	Completions  map[string]any       `json:"completions,omitempty"`
	Prompts      *PromptsCapability   `json:"prompts,omitempty"`
	Resources    *ResourcesCapability `json:"resources,omitempty"`
	Tools        *ToolsCapability     `json:"tools,omitempty"`
}

// HasRoots reports whether the client declared the roots capability,
// gating inbound roots/list requests per the protocol's capability model.
func (c ClientCapabilities) HasRoots() bool { return c.Roots != nil }

// HasSampling reports whether the client declared sampling support,
// gating inbound sampling/createMessage requests.
func (c ClientCapabilities) HasSampling() bool { return c.Sampling }
