package mcpserver

import (
	"context"

	"github.com/erraggy/stringnotation/notation"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type splitInput struct {
	Text     string `json:"text"     jsonschema:"The text to split"`
	Notation string `json:"notation" jsonschema:"Notation the text is written in (e.g. camel\\, pascal\\, snake\\, words)"`
}

type splitOutput struct {
	Notation string       `json:"notation"`
	Count    int          `json:"count"`
	Words    []wordOutput `json:"words,omitempty"`
}

func handleSplit(_ context.Context, _ *mcp.CallToolRequest, input splitInput) (*mcp.CallToolResult, splitOutput, error) {
	if err := checkInputSize(input.Text); err != nil {
		return errResult(err), splitOutput{}, nil
	}
	n, err := notation.Parse(input.Notation)
	if err != nil {
		return errResult(err), splitOutput{}, nil
	}

	words, err := n.Split(input.Text)
	if err != nil {
		return errResult(err), splitOutput{}, nil
	}

	return nil, splitOutput{
		Notation: n.String(),
		Count:    words.Len(),
		Words:    describeWords(words),
	}, nil
}
