package mcpserver

import (
	"context"

	"github.com/erraggy/stringnotation/notation"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type notationsInput struct{}

type notationSummary struct {
	Name        string   `json:"name"`
	Example     string   `json:"example"`
	Description string   `json:"description"`
	Aliases     []string `json:"aliases,omitempty"`
}

type notationsOutput struct {
	Notations []notationSummary `json:"notations"`
}

func handleNotations(_ context.Context, _ *mcp.CallToolRequest, _ notationsInput) (*mcp.CallToolResult, notationsOutput, error) {
	all := notation.All()
	output := notationsOutput{Notations: make([]notationSummary, 0, len(all))}
	for _, n := range all {
		output.Notations = append(output.Notations, notationSummary{
			Name:        n.String(),
			Example:     n.Example(),
			Description: n.Description(),
			Aliases:     n.Aliases(),
		})
	}
	return nil, output, nil
}
