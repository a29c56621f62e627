package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/stringnotation/internal/mcpserver"
)

// HandleMCP starts the MCP server over stdio.
func HandleMCP(_ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
