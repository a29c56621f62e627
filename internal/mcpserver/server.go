// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes string notation conversion as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/erraggy/stringnotation"
	"github.com/erraggy/stringnotation/notation"
	"github.com/erraggy/stringnotation/notationerrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `strnotation MCP server: splits, joins, and converts identifiers between naming notations (camelCase, PascalCase, snake_case, SCREAMING_SNAKE_CASE, normal words, Java names).

Use the notations tool to list notation names and aliases. Names are matched case-insensitively and ignore '_', '-', '.' and spaces.

Configuration: defaults are configurable via STRNOTATION_* environment variables set in your MCP client config.
- STRNOTATION_MAX_INPUT_SIZE (default: 65536): maximum input text size in bytes (for join, the combined size of all words)
- STRNOTATION_MAX_WORDS (default: 1024): maximum number of words accepted by join
- STRNOTATION_DEFAULT_TARGET: target notation for convert when none is given
- STRNOTATION_INCLUDE_WORDS (default: true): include the intermediate words in convert results`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := newServer()
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "strnotation", Version: stringnotation.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "split",
		Description: "Split text written in a notation into lowercase words. Each word is reported with its kind (alphabetic, numeric, mixed). Fails when the text violates the notation, e.g. lowerCamelCase text starting with an uppercase letter.",
	}, handleSplit)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "join",
		Description: "Join a list of words into a single string written in a notation. Fails on an empty word list, and for Java notations when no legal identifier remains.",
	}, handleJoin)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert text from one notation to another, e.g. myVariable (camel) to MY_VARIABLE (constant). The target defaults to STRNOTATION_DEFAULT_TARGET when omitted.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "notations",
		Description: "List every supported notation with an example, a description, and the aliases accepted as names.",
	}, handleNotations)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// checkInputSize rejects text larger than cfg.MaxInputSize.
func checkInputSize(text string) error {
	if len(text) > cfg.MaxInputSize {
		return &notationerrors.ResourceLimitError{
			ResourceType: "input_size",
			Limit:        int64(cfg.MaxInputSize),
			Actual:       int64(len(text)),
		}
	}
	return nil
}

// wordOutput describes one word of a split result.
type wordOutput struct {
	Word string `json:"word"`
	Kind string `json:"kind"`
}

func describeWords(w notation.Words) []wordOutput {
	if w.IsEmpty() {
		return nil
	}
	out := make([]wordOutput, 0, w.Len())
	for _, word := range w.All() {
		out = append(out, wordOutput{Word: string(word), Kind: word.Kind().String()})
	}
	return out
}
