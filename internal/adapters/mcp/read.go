package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"compass/internal/application/commands"
	"compass/internal/domain"
	"compass/internal/ports"
)

// RegisterReadTools adds all read-only dashboard tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.StateStore) {
	s.AddTool(radarTool(), radarHandler(store))
	s.AddTool(goalTool(), goalHandler(store))
	s.AddTool(logsTool(), logsHandler(store))
	s.AddTool(crisisTool(), crisisHandler(store))
	s.AddTool(missionTool(), missionHandler(store))
}

// --- radar ---

func radarTool() mcp.Tool {
	return mcp.NewTool("radar",
		mcp.WithDescription("Read the signal/noise self-assessment: the five influence levels, the fog level, and its qualitative band."),
	)
}

func radarHandler(store ports.StateStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		radar := store.LoadRadar()

		var sb strings.Builder
		for _, f := range domain.RadarFields {
			value, _ := radar.Get(f)
			fmt.Fprintf(&sb, "%s: %d\n", f, value)
		}
		fmt.Fprintf(&sb, "band: %s\n", domain.ClassifyFog(radar.Fog))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- goal ---

func goalTool() mcp.Tool {
	return mcp.NewTool("goal",
		mcp.WithDescription("Read the configured objective, its target date, and the three habit anchors."),
	)
}

func goalHandler(store ports.StateStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		goal := store.LoadGoal()

		var sb strings.Builder
		fmt.Fprintf(&sb, "title: %s\n", orUnset(goal.Title))
		fmt.Fprintf(&sb, "date: %s\n", orUnset(goal.Date))
		fmt.Fprintf(&sb, "cognitive anchor: %s\n", orUnset(goal.CarbCognitive))
		fmt.Fprintf(&sb, "physical anchor: %s\n", orUnset(goal.CarbPhysical))
		fmt.Fprintf(&sb, "recovery anchor: %s\n", orUnset(goal.CarbRecovery))
		fmt.Fprintf(&sb, "anchors set: %d/3\n", goal.AnchorCount())
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- logs ---

func logsTool() mcp.Tool {
	return mcp.NewTool("logs",
		mcp.WithDescription("List the progress log, newest first."),
	)
}

func logsHandler(store ports.StateStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries := store.LoadLogs()
		if len(entries) == 0 {
			return mcp.NewToolResultText("No entries logged."), nil
		}

		var sb strings.Builder
		for _, e := range domain.NewestFirst(entries) {
			fmt.Fprintf(&sb, "%s  %s\n", e.Date, e.Domain)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- crisis ---

func crisisTool() mcp.Tool {
	return mcp.NewTool("crisis",
		mcp.WithDescription("Read the emergency support plan: the support person and the booster."),
	)
}

func crisisHandler(store ports.StateStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		crisis := store.LoadCrisis()

		var sb strings.Builder
		fmt.Fprintf(&sb, "support person: %s\n", orUnset(crisis.SupportPerson))
		fmt.Fprintf(&sb, "booster: %s\n", orUnset(crisis.Booster))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- mission ---

func missionTool() mcp.Tool {
	return mcp.NewTool("mission",
		mcp.WithDescription("Compute the derived mastery/impact scores, the fog band, and the authorization signal."),
	)
}

func missionHandler(store ports.StateStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := commands.NewMissionReportCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(report.Summary()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func orUnset(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(not set)"
	}
	return s
}
