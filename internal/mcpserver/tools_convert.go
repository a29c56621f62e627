package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/stringnotation/notation"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Text string `json:"text"         jsonschema:"The text to convert"`
	From string `json:"from"         jsonschema:"Notation the text is written in"`
	To   string `json:"to,omitempty" jsonschema:"Target notation. Defaults to STRNOTATION_DEFAULT_TARGET when omitted."`
}

type convertOutput struct {
	From   string       `json:"from"`
	To     string       `json:"to"`
	Output string       `json:"output"`
	Words  []wordOutput `json:"words,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if err := checkInputSize(input.Text); err != nil {
		return errResult(err), convertOutput{}, nil
	}

	opts, err := buildConvertOptions(input)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	result, err := notation.ConvertWithOptions(opts...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		From:   result.Source.String(),
		To:     result.Target.String(),
		Output: result.Output,
	}
	if cfg.IncludeWords {
		output.Words = describeWords(result.Words)
	}
	return nil, output, nil
}

// buildConvertOptions translates the MCP input into notation options,
// falling back to the configured default target.
func buildConvertOptions(input convertInput) ([]notation.Option, error) {
	opts := []notation.Option{
		notation.WithInput(input.Text),
		notation.WithSourceName(input.From),
	}

	switch {
	case input.To != "":
		opts = append(opts, notation.WithTargetName(input.To))
	case cfg.DefaultTarget != 0:
		opts = append(opts, notation.WithTarget(cfg.DefaultTarget))
	default:
		return nil, fmt.Errorf("target notation is required (set to, or configure STRNOTATION_DEFAULT_TARGET)")
	}

	return opts, nil
}
