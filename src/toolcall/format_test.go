// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package toolcall

import (
	"testing"

	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"

	"github.com/stretchr/testify/require"
)

func TestFormatToolsTable(t *testing.T) {
	result := &protocol.ListToolsResult{
		Tools: []protocol.Tool{
			{Name: "list_open_files", Description: "Lists files currently open"},
			{Name: "search", Description: "Searches the workspace", Annotations: &protocol.ToolAnnotations{Title: "Search Workspace"}},
		},
	}
	out := FormatToolsTable(result)
	require.Contains(t, out, "List Open Files")
	require.Contains(t, out, "Search Workspace")
	require.Contains(t, out, "Lists files currently open")
}

func TestFormatResourcesTable(t *testing.T) {
	result := &protocol.ListResourcesResult{
		Resources: []protocol.Resource{
			{URI: "file:///a.txt", Name: "a.txt", MimeType: "text/plain"},
		},
	}
	out := FormatResourcesTable(result)
	require.Contains(t, out, "file:///a.txt")
	require.Contains(t, out, "text/plain")
}

func TestHumanizeToolName(t *testing.T) {
	require.Equal(t, "List Open Files", humanizeToolName("list_open_files"))
	require.Equal(t, "Search Files", humanizeToolName("search-files"))
}
