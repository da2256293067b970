// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package toolcall

import (
	"strings"

	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// humanizeToolName turns a wire-format tool identifier such as
// "list_open_files" into a display label such as "List Open Files".
func humanizeToolName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' })
	return titleCaser.String(strings.Join(words, " "))
}

// FormatToolsTable renders a tools/list page as an aligned text table,
// suitable for a host application's diagnostic or CLI output.
func FormatToolsTable(result *protocol.ListToolsResult) string {
	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"NAME", "DESCRIPTION"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	rows := make([][]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		name := tool.Name
		if tool.Annotations != nil && tool.Annotations.Title != "" {
			name = tool.Annotations.Title
		} else {
			name = humanizeToolName(name)
		}
		rows = append(rows, []string{name, tool.Description})
	}
	table.AppendBulk(rows)
	table.Render()
	return buf.String()
}

// FormatResourcesTable renders a resources/list page as an aligned text
// table of URI, name, and MIME type.
func FormatResourcesTable(result *protocol.ListResourcesResult) string {
	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"URI", "NAME", "MIME TYPE"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	rows := make([][]string, 0, len(result.Resources))
	for _, r := range result.Resources {
		rows = append(rows, []string{r.URI, r.Name, r.MimeType})
	}
	table.AppendBulk(rows)
	table.Render()
	return buf.String()
}
