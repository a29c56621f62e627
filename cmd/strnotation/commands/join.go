package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/stringnotation/internal/cliutil"
	"github.com/erraggy/stringnotation/notation"
)

// JoinFlags contains flags for the join command
type JoinFlags struct {
	Notation string
}

// SetupJoinFlags creates and configures a FlagSet for the join command.
// Returns the FlagSet and a JoinFlags struct with bound flag variables.
func SetupJoinFlags() (*flag.FlagSet, *JoinFlags) {
	fs := flag.NewFlagSet("join", flag.ContinueOnError)
	flags := &JoinFlags{}

	fs.StringVar(&flags.Notation, "n", "", "notation to render the words in (required)")
	fs.StringVar(&flags.Notation, "notation", "", "notation to render the words in (required)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: strnotation join -n <notation> <word>...\n\n")
		cliutil.Writef(fs.Output(), "Render a sequence of words in a notation.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  strnotation join -n pascal my variable name\n")
		cliutil.Writef(fs.Output(), "  strnotation join -n JavaPackageName com example app\n")
	}

	return fs, flags
}

// HandleJoin executes the join command
func HandleJoin(args []string) error {
	return runJoin(args, os.Stdout, os.Stderr)
}

func runJoin(args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupJoinFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("join command requires at least one word")
	}

	n, err := parseNotationFlag("notation", flags.Notation)
	if err != nil {
		return err
	}

	words, err := notation.NewWords(fs.Args()...)
	if err != nil {
		return err
	}
	out, err := n.Join(words)
	if err != nil {
		return err
	}
	cliutil.Writef(stdout, "%s\n", out)
	return nil
}
