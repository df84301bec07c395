package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"compass/internal/application/commands"
	"compass/internal/ports"
)

// RegisterWriteTools adds all mutating dashboard tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.StateStore) {
	s.AddTool(radarSetTool(), radarSetHandler(store))
	s.AddTool(goalSetTool(), goalSetHandler(store))
	s.AddTool(crisisSetTool(), crisisSetHandler(store))
	s.AddTool(logAddTool(), logAddHandler(store))
	s.AddTool(logClearTool(), logClearHandler(store))
}

// --- radar_set ---

func radarSetTool() mcp.Tool {
	return mcp.NewTool("radar_set",
		mcp.WithDescription("Set one radar metric. Value is clamped to [0,100]."),
		mcp.WithString("field",
			mcp.Description("Metric name: inner, peers, family, media, professors, or fog"),
			mcp.Required(),
		),
		mcp.WithNumber("value",
			mcp.Description("New level, 0-100"),
			mcp.Required(),
		),
	)
}

func radarSetHandler(store ports.StateStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		field := req.GetString("field", "")
		value := req.GetInt("value", 0)

		result, err := commands.NewSetRadarFieldCommand(store, field, value).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- goal_set ---

func goalSetTool() mcp.Tool {
	return mcp.NewTool("goal_set",
		mcp.WithDescription("Update goal fields. Only the provided fields change; pass an empty string to clear a field."),
		mcp.WithString("title", mcp.Description("The objective")),
		mcp.WithString("date", mcp.Description("Target date, free text")),
		mcp.WithString("carb_cognitive", mcp.Description("Cognitive habit anchor")),
		mcp.WithString("carb_physical", mcp.Description("Physical habit anchor")),
		mcp.WithString("carb_recovery", mcp.Description("Recovery habit anchor")),
	)
}

func goalSetHandler(store ports.StateStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		goal := store.LoadGoal()

		if args := req.GetArguments(); args != nil {
			if v, ok := args["title"].(string); ok {
				goal.Title = v
			}
			if v, ok := args["date"].(string); ok {
				goal.Date = v
			}
			if v, ok := args["carb_cognitive"].(string); ok {
				goal.CarbCognitive = v
			}
			if v, ok := args["carb_physical"].(string); ok {
				goal.CarbPhysical = v
			}
			if v, ok := args["carb_recovery"].(string); ok {
				goal.CarbRecovery = v
			}
		}

		result, err := commands.NewSetGoalCommand(store, goal).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- crisis_set ---

func crisisSetTool() mcp.Tool {
	return mcp.NewTool("crisis_set",
		mcp.WithDescription("Update the emergency support plan. Only the provided fields change."),
		mcp.WithString("support_person", mcp.Description("Who to call first")),
		mcp.WithString("booster", mcp.Description("What picks you back up")),
	)
}

func crisisSetHandler(store ports.StateStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		crisis := store.LoadCrisis()

		if args := req.GetArguments(); args != nil {
			if v, ok := args["support_person"].(string); ok {
				crisis.SupportPerson = v
			}
			if v, ok := args["booster"].(string); ok {
				crisis.Booster = v
			}
		}

		result, err := commands.NewSetCrisisCommand(store, crisis).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- log_add ---

func logAddTool() mcp.Tool {
	return mcp.NewTool("log_add",
		mcp.WithDescription("Append a progress entry dated today. Whitespace-only text is ignored."),
		mcp.WithString("text",
			mcp.Description("What moved today"),
			mcp.Required(),
		),
	)
}

func logAddHandler(store ports.StateStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := req.GetString("text", "")

		result, err := commands.NewAppendLogCommand(store, text).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- log_clear ---

func logClearTool() mcp.Tool {
	return mcp.NewTool("log_clear",
		mcp.WithDescription("Delete every log entry. Irreversible; requires confirm=true."),
		mcp.WithBoolean("confirm",
			mcp.Description("Must be true to actually clear"),
			mcp.Required(),
		),
	)
}

func logClearHandler(store ports.StateStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !req.GetBool("confirm", false) {
			return toolError(fmt.Errorf("clearing the log is irreversible, pass confirm=true"))
		}

		result, err := commands.NewClearLogsCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
