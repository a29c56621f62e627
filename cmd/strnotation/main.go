package main

import (
	"fmt"
	"os"

	"github.com/agnivade/levenshtein"
	"github.com/erraggy/stringnotation"
	"github.com/erraggy/stringnotation/cmd/strnotation/commands"
	"github.com/erraggy/stringnotation/internal/cliutil"
)

// commandNames lists the commands suggestCommand can offer.
var commandNames = []string{"convert", "split", "join", "notations", "batch", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var handler func([]string) error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("strnotation v%s\n", stringnotation.Version())
		fmt.Printf("commit: %s\n", stringnotation.Commit())
		fmt.Printf("built: %s\n", stringnotation.BuildTime())
		fmt.Printf("go: %s\n", stringnotation.GoVersion())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "convert":
		handler = commands.HandleConvert
	case "split":
		handler = commands.HandleSplit
	case "join":
		handler = commands.HandleJoin
	case "notations":
		handler = commands.HandleNotations
	case "batch":
		handler = commands.HandleBatch
	case "mcp":
		handler = commands.HandleMCP
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err := handler(args); err != nil {
		cliutil.WriteError(os.Stderr, err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := levenshtein.ComputeDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func printUsage() {
	fmt.Println(`strnotation - Naming notation conversion tools

Usage:
  strnotation <command> [options]

Commands:
  convert     Convert text from one notation to another
  split       Split text written in a notation into words
  join        Render words in a notation
  notations   List supported notations and their aliases
  batch       Run conversions listed in a YAML jobs file
  mcp         Serve split, join, and convert as MCP tools over stdio
  version     Show version information
  help        Show this help message

Examples:
  strnotation convert -f camel -t constant myVariable
  strnotation convert -f words -t JavaTypeName "1 Type Name 4 You!"
  strnotation split -n JavaTypeName TypeName4You
  strnotation join -n snake user profile id
  strnotation batch jobs.yaml

Run 'strnotation <command> --help' for more information on a command.`)
}
