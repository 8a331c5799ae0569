package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vibegraph/internal/application/commands"
)

// RegisterWriteTools adds the tools that write activity data to the MCP server.
func RegisterWriteTools(s *server.MCPServer, gen *commands.GenerateCommand) {
	s.AddTool(generateTool(), generateHandler(gen))
}

// --- generate ---

func generateTool() mcp.Tool {
	return mcp.NewTool("generate",
		mcp.WithDescription("Re-parse the notes folder and rewrite the activity data JSON files."),
	)
}

func generateHandler(gen *commands.GenerateCommand) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := gen.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Generated %d records over %d days (%s to %s).\n",
			result.Summary.TotalRecords, result.Summary.ActiveDays,
			result.Summary.DateRange.Start, result.Summary.DateRange.End)
		for _, d := range result.Destinations {
			fmt.Fprintf(&sb, "Wrote %s\n", d)
		}
		for _, f := range result.Failures {
			fmt.Fprintf(&sb, "Skipped %s\n", f.Error())
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}
