package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/stringnotation/internal/cliutil"
	"github.com/erraggy/stringnotation/notation"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	From  string
	To    string
	Debug bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.From, "f", "", "source notation (required)")
	fs.StringVar(&flags.From, "from", "", "source notation (required)")
	fs.StringVar(&flags.To, "t", "", "target notation (required)")
	fs.StringVar(&flags.To, "to", "", "target notation (required)")
	fs.BoolVar(&flags.Debug, "debug", false, "log each conversion stage to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: strnotation convert -f <notation> -t <notation> <text>... | -\n\n")
		cliutil.Writef(fs.Output(), "Convert text from one naming notation to another.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  strnotation convert -f camel -t constant myVariable\n")
		cliutil.Writef(fs.Output(), "  strnotation convert --from words --to JavaTypeName \"1 Type Name 4 You!\"\n")
		cliutil.Writef(fs.Output(), "  cat names.txt | strnotation convert -f snake -t pascal -\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  - Use '-' to convert each line read from stdin\n")
		cliutil.Writef(fs.Output(), "\nRun 'strnotation notations' to list notation names.\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	return runConvert(args, os.Stdin, os.Stdout, os.Stderr)
}

func runConvert(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupConvertFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("convert command requires at least one text argument or '-' for stdin")
	}

	from, err := parseNotationFlag("from", flags.From)
	if err != nil {
		return err
	}
	to, err := parseNotationFlag("to", flags.To)
	if err != nil {
		return err
	}

	opts := []notation.Option{notation.WithSource(from), notation.WithTarget(to)}
	if flags.Debug {
		opts = append(opts, notation.WithLogger(debugLogger(stderr)))
	}

	convertOne := func(text string) error {
		result, err := notation.ConvertWithOptions(append(opts, notation.WithInput(text))...)
		if err != nil {
			return err
		}
		cliutil.Writef(stdout, "%s\n", result.Output)
		return nil
	}

	if fs.NArg() == 1 && fs.Arg(0) == StdinFilePath {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if err := convertOne(scanner.Text()); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return nil
	}

	for _, text := range fs.Args() {
		if err := convertOne(text); err != nil {
			return err
		}
	}
	return nil
}
