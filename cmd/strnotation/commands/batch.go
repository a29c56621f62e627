package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/stringnotation/internal/cliutil"
	"github.com/erraggy/stringnotation/notation"
	"go.yaml.in/yaml/v4"
)

// BatchFlags contains flags for the batch command
type BatchFlags struct {
	Format string
	Debug  bool
}

// BatchFile is the YAML document read by the batch command.
//
//	defaults:
//	  from: snake
//	  to: pascal
//	jobs:
//	  - input: user_profile
//	  - input: order id
//	    from: words
type BatchFile struct {
	Defaults BatchDefaults `yaml:"defaults"`
	Jobs     []BatchJob    `yaml:"jobs"`
}

// BatchDefaults holds notations applied to jobs that omit them.
type BatchDefaults struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// BatchJob is a single conversion request.
type BatchJob struct {
	Input string `yaml:"input"`
	From  string `yaml:"from,omitempty"`
	To    string `yaml:"to,omitempty"`
}

// BatchResult is the outcome of one job.
type BatchResult struct {
	Input  string   `json:"input" yaml:"input"`
	From   string   `json:"from" yaml:"from"`
	To     string   `json:"to" yaml:"to"`
	Output string   `json:"output,omitempty" yaml:"output,omitempty"`
	Words  []string `json:"words,omitempty" yaml:"words,omitempty"`
	Error  string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// SetupBatchFlags creates and configures a FlagSet for the batch command.
// Returns the FlagSet and a BatchFlags struct with bound flag variables.
func SetupBatchFlags() (*flag.FlagSet, *BatchFlags) {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	flags := &BatchFlags{}

	fs.StringVar(&flags.Format, "format", FormatYAML, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Debug, "debug", false, "log each conversion stage to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: strnotation batch [flags] <jobs.yaml | ->\n\n")
		cliutil.Writef(fs.Output(), "Run the conversions listed in a YAML jobs file.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nJobs file:\n")
		cliutil.Writef(fs.Output(), "  defaults:\n")
		cliutil.Writef(fs.Output(), "    from: snake\n")
		cliutil.Writef(fs.Output(), "    to: pascal\n")
		cliutil.Writef(fs.Output(), "  jobs:\n")
		cliutil.Writef(fs.Output(), "    - input: user_profile\n")
		cliutil.Writef(fs.Output(), "    - input: order id\n")
		cliutil.Writef(fs.Output(), "      from: words\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    All jobs succeeded\n")
		cliutil.Writef(fs.Output(), "  1    At least one job failed (results are still written)\n")
	}

	return fs, flags
}

// HandleBatch executes the batch command
func HandleBatch(args []string) error {
	return runBatch(args, os.Stdin, os.Stdout, os.Stderr)
}

func runBatch(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupBatchFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("batch command requires exactly one jobs file or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	data, err := readSource(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	var file BatchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing jobs file: %w", err)
	}
	if len(file.Jobs) == 0 {
		return fmt.Errorf("jobs file contains no jobs")
	}

	var logger notation.Logger = notation.NopLogger{}
	if flags.Debug {
		logger = debugLogger(stderr)
	}

	results := make([]BatchResult, 0, len(file.Jobs))
	failed := 0
	for _, job := range file.Jobs {
		result := runJob(job, file.Defaults, logger)
		if result.Error != "" {
			failed++
		}
		results = append(results, result)
	}

	if flags.Format == FormatText {
		for _, r := range results {
			if r.Error != "" {
				cliutil.Writef(stdout, "%s\tERROR: %s\n", r.Input, r.Error)
				continue
			}
			cliutil.Writef(stdout, "%s\t%s\n", r.Input, r.Output)
		}
	} else if err := OutputStructured(stdout, results, flags.Format); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d jobs: %w", failed, len(results), errFailedJobs)
	}
	return nil
}

func runJob(job BatchJob, defaults BatchDefaults, logger notation.Logger) BatchResult {
	from := job.From
	if from == "" {
		from = defaults.From
	}
	to := job.To
	if to == "" {
		to = defaults.To
	}

	result := BatchResult{Input: job.Input, From: from, To: to}
	if from == "" || to == "" {
		result.Error = "both from and to notations are required"
		return result
	}

	converted, err := notation.ConvertWithOptions(
		notation.WithInput(job.Input),
		notation.WithSourceName(from),
		notation.WithTargetName(to),
		notation.WithLogger(logger),
	)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.From = converted.Source.String()
	result.To = converted.Target.String()
	result.Output = converted.Output
	result.Words = converted.Words.Parts()
	return result
}
