package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "compass/internal/adapters/mcp"
	"compass/internal/adapters/sqlite"
	"compass/internal/config"
)

func main() {
	dataFlag := flag.String("data", config.DataPath(), "path to the state directory")
	flag.Parse()

	store := sqlite.NewStore()
	if err := store.Open(*dataFlag); err != nil {
		log.Fatalf("compass-mcp: %v", err)
	}
	defer store.Close()

	mcpServer := server.NewMCPServer(
		"compass-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("compass-mcp: %v", err)
	}
}
