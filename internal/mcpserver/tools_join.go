package mcpserver

import (
	"context"
	"strings"

	"github.com/erraggy/stringnotation/notation"
	"github.com/erraggy/stringnotation/notationerrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type joinInput struct {
	Words    []string `json:"words"    jsonschema:"The words to join\\, in reading order"`
	Notation string   `json:"notation" jsonschema:"Notation to render the words in"`
}

type joinOutput struct {
	Notation string `json:"notation"`
	Text     string `json:"text"`
}

func handleJoin(_ context.Context, _ *mcp.CallToolRequest, input joinInput) (*mcp.CallToolResult, joinOutput, error) {
	if len(input.Words) > cfg.MaxWords {
		return errResult(&notationerrors.ResourceLimitError{
			ResourceType: "word_count",
			Limit:        int64(cfg.MaxWords),
			Actual:       int64(len(input.Words)),
		}), joinOutput{}, nil
	}
	if err := checkInputSize(strings.Join(input.Words, "")); err != nil {
		return errResult(err), joinOutput{}, nil
	}
	n, err := notation.Parse(input.Notation)
	if err != nil {
		return errResult(err), joinOutput{}, nil
	}

	words, err := notation.NewWords(input.Words...)
	if err != nil {
		return errResult(err), joinOutput{}, nil
	}
	text, err := n.Join(words)
	if err != nil {
		return errResult(err), joinOutput{}, nil
	}

	return nil, joinOutput{Notation: n.String(), Text: text}, nil
}
