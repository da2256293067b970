// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package validate checks tool call arguments against a tool's declared
// JSON Schema before they are sent to a server, so a malformed call fails
// locally instead of round-tripping for an INVALID_PARAMS response.
package validate

import (
	"fmt"

	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"

	"github.com/xeipuuv/gojsonschema"
)

// ToolArguments validates arguments against tool's InputSchema. A tool
// with an empty schema type, no properties and no required fields is
// treated as accepting anything, since MCP does not require every tool to
// declare a schema.
func ToolArguments(tool protocol.Tool, arguments map[string]any) error {
	schema := schemaDocument(tool.InputSchema)
	if schema == nil {
		return nil
	}

	schemaLoader := gojsonschema.NewGoLoader(schema)
	argsLoader := gojsonschema.NewGoLoader(arguments)

	result, err := gojsonschema.Validate(schemaLoader, argsLoader)
	if err != nil {
		return fmt.Errorf("validate: schema for tool %q: %w", tool.Name, err)
	}

	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, e := range result.Errors() {
			msgs[i] = e.String()
		}
		return &ArgumentError{Tool: tool.Name, Violations: msgs}
	}

	return nil
}

// schemaDocument converts protocol.InputSchema into the plain
// map[string]any shape gojsonschema.NewGoLoader expects, or nil if the
// schema carries nothing to validate against.
func schemaDocument(s protocol.InputSchema) map[string]any {
	if s.Type == "" && len(s.Properties) == 0 && len(s.Required) == 0 {
		return nil
	}

	doc := map[string]any{}
	if s.Type != "" {
		doc["type"] = s.Type
	} else {
		doc["type"] = "object"
	}
	if len(s.Properties) > 0 {
		doc["properties"] = s.Properties
	}
	if len(s.Required) > 0 {
		doc["required"] = s.Required
	}
	return doc
}

// ArgumentError reports every schema violation found in one call's
// arguments, rather than just the first.
type ArgumentError struct {
	Tool       string
	Violations []string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("validate: tool %q arguments: %v", e.Tool, e.Violations)
}
