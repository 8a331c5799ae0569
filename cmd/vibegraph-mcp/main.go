package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "vibegraph/internal/adapters/mcp"
	"vibegraph/internal/config"
	"vibegraph/internal/logging"
	"vibegraph/internal/session"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	vaultFlag := flag.String("vault", "", "path to the Obsidian vault")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("vibegraph-mcp: %v", err)
	}
	if *vaultFlag != "" {
		cfg.Vault.Path = *vaultFlag
	}

	// stdout carries the protocol
	logger := logging.New(os.Stderr, cfg.Log.Level)

	s, err := session.Open(cfg, logger)
	if err != nil {
		log.Fatalf("vibegraph-mcp: %v", err)
	}
	defer s.Close()

	mcpServer := server.NewMCPServer(
		"vibegraph-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, s.Builder())
	mcpadapter.RegisterWriteTools(mcpServer, s.Generator())

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("vibegraph-mcp: %v", err)
	}
}
