package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/stringnotation/internal/cliutil"
)

// SplitFlags contains flags for the split command
type SplitFlags struct {
	Notation string
	Format   string
}

// SplitResult is the structured output of the split command.
type SplitResult struct {
	Input    string   `json:"input" yaml:"input"`
	Notation string   `json:"notation" yaml:"notation"`
	Words    []string `json:"words" yaml:"words"`
}

// SetupSplitFlags creates and configures a FlagSet for the split command.
// Returns the FlagSet and a SplitFlags struct with bound flag variables.
func SetupSplitFlags() (*flag.FlagSet, *SplitFlags) {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	flags := &SplitFlags{}

	fs.StringVar(&flags.Notation, "n", "", "notation of the input text (required)")
	fs.StringVar(&flags.Notation, "notation", "", "notation of the input text (required)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: strnotation split -n <notation> [flags] <text>...\n\n")
		cliutil.Writef(fs.Output(), "Split text written in a notation into its words.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  strnotation split -n camel myVariableName\n")
		cliutil.Writef(fs.Output(), "  strnotation split -n JavaTypeName --format json TypeName4You\n")
		cliutil.Writef(fs.Output(), "\nOutput:\n")
		cliutil.Writef(fs.Output(), "  text format prints one line per input with words separated by spaces\n")
	}

	return fs, flags
}

// HandleSplit executes the split command
func HandleSplit(args []string) error {
	return runSplit(args, os.Stdout, os.Stderr)
}

func runSplit(args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupSplitFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("split command requires at least one text argument")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	n, err := parseNotationFlag("notation", flags.Notation)
	if err != nil {
		return err
	}

	results := make([]SplitResult, 0, fs.NArg())
	for _, text := range fs.Args() {
		words, err := n.Split(text)
		if err != nil {
			return err
		}
		results = append(results, SplitResult{Input: text, Notation: n.String(), Words: words.Parts()})
	}

	if flags.Format != FormatText {
		return OutputStructured(stdout, results, flags.Format)
	}
	for _, r := range results {
		cliutil.Writef(stdout, "%s\n", strings.Join(r.Words, " "))
	}
	return nil
}
