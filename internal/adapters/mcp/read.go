package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vibegraph/internal/application"
	"vibegraph/internal/application/commands"
	"vibegraph/internal/domain"
	"vibegraph/internal/ports"
)

// defaultProjectLimit caps the projects tool when no limit is given
const defaultProjectLimit = 20

// RegisterReadTools adds all read-only activity tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, docs ports.DocumentReader) {
	s.AddTool(summaryTool(), summaryHandler(docs))
	s.AddTool(dayTool(), dayHandler(docs))
	s.AddTool(projectsTool(), projectsHandler(docs))
	s.AddTool(recordTool(), recordHandler(docs))
	s.AddTool(searchTool(), searchHandler(docs))
	s.AddTool(statsTool(), statsHandler(docs))
}

// --- summary ---

func summaryTool() mcp.Tool {
	return mcp.NewTool("summary",
		mcp.WithDescription("Summarize the activity data: record count, active days, date range, tools and stack."),
	)
}

func summaryHandler(docs ports.DocumentReader) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := docs.Load(ctx)
		if err != nil {
			return toolError(err)
		}
		s := commands.SummarizeDocument(doc)

		var sb strings.Builder
		fmt.Fprintf(&sb, "Records: %d\n", s.TotalRecords)
		fmt.Fprintf(&sb, "Active days: %d\n", s.ActiveDays)
		fmt.Fprintf(&sb, "Date range: %s to %s\n", s.DateRange.Start, s.DateRange.End)
		fmt.Fprintf(&sb, "Tools: %s\n", joinOrNone(s.Tools))
		fmt.Fprintf(&sb, "Stack: %s\n", joinOrNone(s.Stack))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- day ---

func dayTool() mcp.Tool {
	return mcp.NewTool("day",
		mcp.WithDescription("Show every activity record for one day."),
		mcp.WithString("date",
			mcp.Description("Day in YYYY-MM-DD format"),
			mcp.Required(),
		),
	)
}

func dayHandler(docs ports.DocumentReader) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", "")

		detail, err := commands.NewShowDayCommand(docs, date).Execute(ctx)
		if errors.Is(err, application.ErrNotFound) {
			return mcp.NewToolResultText(fmt.Sprintf("No activity on %s.", date)), nil
		}
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s  intensity %d  %d project(s)  %s\n\n",
			detail.Date, detail.Summary.Intensity, detail.Summary.ProjectCount, joinOrNone(detail.Summary.Tools))
		for _, r := range detail.Records {
			sb.WriteString(formatRecordDetail(r))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- projects ---

func projectsTool() mcp.Tool {
	return mcp.NewTool("projects",
		mcp.WithDescription("List activity records, newest first. Optionally filter by tool or stack."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of records (default 20, 0 for all)"),
		),
		mcp.WithString("tool",
			mcp.Description("Only records using this tool (e.g. Cursor)"),
		),
		mcp.WithString("stack",
			mcp.Description("Only records using this stack entry (e.g. Go)"),
		),
	)
}

func projectsHandler(docs ports.DocumentReader) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListProjectsCommand(docs, req.GetInt("limit", defaultProjectLimit))
		cmd.Tool = req.GetString("tool", "")
		cmd.Stack = req.GetString("stack", "")

		records, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(records, formatRecord)
	}
}

// --- record ---

func recordTool() mcp.Tool {
	return mcp.NewTool("record",
		mcp.WithDescription("Show one activity record in full, including its description and learnings."),
		mcp.WithString("id",
			mcp.Description("Record ID (e.g. activity-tracker-2026-01-22)"),
			mcp.Required(),
		),
	)
}

func recordHandler(docs ports.DocumentReader) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		r, err := commands.NewShowRecordCommand(docs, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatRecordDetail(*r)), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search activity records by title, tool, stack, description or learnings."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(docs ports.DocumentReader) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(docs, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  %s  %s\n", r.Record.Date, r.Record.ID, r.Record.Title, r.MatchedText)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("stats",
		mcp.WithDescription("Usage statistics: streaks, busiest day, total cost and most used tools."),
	)
}

func statsHandler(docs ports.DocumentReader) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats, err := commands.NewStatsCommand(docs).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Records: %d over %d days\n", stats.TotalRecords, stats.ActiveDays)
		fmt.Fprintf(&sb, "Current streak: %d  Longest streak: %d\n", stats.CurrentStreak, stats.LongestStreak)
		if stats.BusiestDay != "" {
			fmt.Fprintf(&sb, "Busiest day: %s (%d)\n", stats.BusiestDay, stats.BusiestCount)
		}
		fmt.Fprintf(&sb, "Total cost: $%d\n", stats.TotalCost)
		for _, c := range stats.Tools {
			fmt.Fprintf(&sb, "  %-16s %d\n", c.Name, c.Count)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatRecord(r domain.ActivityRecord) string {
	return fmt.Sprintf("%s  %s  %s  [%s]", r.Date, r.ID, r.Title, strings.Join(r.Tools, ", "))
}

func formatRecordDetail(r domain.ActivityRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s (%s)\n", r.Title, r.ID)
	fmt.Fprintf(&sb, "Date: %s  Intensity: %d", r.Date, r.Intensity)
	if r.HasCost() {
		fmt.Fprintf(&sb, "  Cost: %s", r.CostString())
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Tools: %s\n", joinOrNone(r.Tools))
	fmt.Fprintf(&sb, "Stack: %s\n", joinOrNone(r.Stack))
	if r.Description != "" {
		fmt.Fprintf(&sb, "\n%s\n", r.Description)
	}
	if len(r.Learnings) > 0 {
		sb.WriteString("\nLearnings:\n")
		for _, l := range r.Learnings {
			fmt.Fprintf(&sb, "- %s\n", l)
		}
	}
	return sb.String()
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
