package commands

import (
	"errors"
	"flag"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/erraggy/stringnotation/internal/cliutil"
	"github.com/erraggy/stringnotation/notation"
)

// NotationsFlags contains flags for the notations command
type NotationsFlags struct {
	Format string
}

// NotationInfo describes one notation in structured output.
type NotationInfo struct {
	Name        string   `json:"name" yaml:"name"`
	Example     string   `json:"example" yaml:"example"`
	Description string   `json:"description" yaml:"description"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// SetupNotationsFlags creates and configures a FlagSet for the notations command.
func SetupNotationsFlags() (*flag.FlagSet, *NotationsFlags) {
	fs := flag.NewFlagSet("notations", flag.ContinueOnError)
	flags := &NotationsFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: strnotation notations [flags]\n\n")
		cliutil.Writef(fs.Output(), "List supported notations with an example and accepted aliases.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleNotations executes the notations command
func HandleNotations(args []string) error {
	return runNotations(args, os.Stdout, os.Stderr)
}

func runNotations(args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupNotationsFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	all := notation.All()
	infos := make([]NotationInfo, 0, len(all))
	for _, n := range all {
		infos = append(infos, NotationInfo{
			Name:        n.String(),
			Example:     n.Example(),
			Description: n.Description(),
			Aliases:     n.Aliases(),
		})
	}

	if flags.Format != FormatText {
		return OutputStructured(stdout, infos, flags.Format)
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	cliutil.Writef(tw, "NAME\tEXAMPLE\tALIASES\n")
	for _, info := range infos {
		cliutil.Writef(tw, "%s\t%s\t%s\n", info.Name, info.Example, strings.Join(info.Aliases, ", "))
	}
	return tw.Flush()
}
