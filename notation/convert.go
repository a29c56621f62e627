package notation

// Convert parses text written in notation from and renders it in notation to.
// Errors from either stage are returned unchanged.
func Convert(text string, from, to Notation) (string, error) {
	words, err := from.Split(text)
	if err != nil {
		return "", err
	}
	return to.Join(words)
}

// ConversionResult contains the outcome of ConvertWithOptions.
type ConversionResult struct {
	// Input is the source text, empty when the conversion started from words
	Input string
	// Source is the notation Input was parsed with, zero when starting from words
	Source Notation
	// Target is the notation Output is written in
	Target Notation
	// Words is the intermediate word sequence
	Words Words
	// Output is the rendered text
	Output string
}

// ConvertWithOptions converts using functional options.
//
// Exactly one input source must be given (WithInput or WithWords), and a
// target notation is required. WithInput also requires a source notation.
//
// Example:
//
//	result, err := notation.ConvertWithOptions(
//		notation.WithInput("user_profile"),
//		notation.WithSource(notation.SnakeCase),
//		notation.WithTarget(notation.UpperCamelCase),
//	)
//	// result.Output == "UserProfile"
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	result := &ConversionResult{Target: cfg.target}
	log := cfg.logger.With("target", cfg.target.String())

	if cfg.input != nil {
		result.Input = *cfg.input
		result.Source = cfg.source
		log = log.With("source", cfg.source.String())

		words, err := cfg.source.Split(*cfg.input)
		if err != nil {
			log.Debug("split failed", "input", *cfg.input, "error", err)
			return nil, err
		}
		log.Debug("split input", "input", *cfg.input, "words", words.Len())
		result.Words = words
	} else {
		result.Words = *cfg.words
	}

	out, err := cfg.target.Join(result.Words)
	if err != nil {
		log.Debug("join failed", "words", result.Words.String(), "error", err)
		return nil, err
	}
	log.Debug("joined words", "words", result.Words.Len(), "output", out)
	result.Output = out
	return result, nil
}
