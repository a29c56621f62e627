// Package notation converts strings between naming notations such as
// lowerCamelCase, UpperCamelCase, snake_case and Java identifier styles.
//
// Every conversion goes through a notation-agnostic intermediate form, [Words]:
// an immutable, ordered sequence of lowercase words. A [Notation] splits text
// written in that notation into Words and joins Words back into text.
//
// # Quick Start
//
// Convert directly:
//
//	out, err := notation.Convert("myVariable", notation.LowerCamelCase, notation.ScreamingSnakeCase)
//	// out == "MY_VARIABLE"
//
// Or split once and render in several notations:
//
//	words, err := notation.FromNotation("1 Type Name 4 You!", notation.NormalWords)
//	if err != nil {
//		log.Fatal(err)
//	}
//	typeName, _ := words.ToNotation(notation.JavaTypeName)   // "TypeName4You"
//	member, _ := words.ToNotation(notation.JavaMemberName)   // "typeName4You"
//
// Or use functional options when the notations come from configuration:
//
//	result, err := notation.ConvertWithOptions(
//		notation.WithInput("user_profile"),
//		notation.WithSourceName("snake"),
//		notation.WithTargetName("pascal"),
//	)
//
// # Notations
//
//   - [LowerCamelCase]: myVariableName
//   - [UpperCamelCase]: MyVariableName
//   - [NormalWords]: my variable name
//   - [SnakeCase]: my_variable_name
//   - [ScreamingSnakeCase]: MY_VARIABLE_NAME
//   - [JavaTypeName]: MyVariableName, restricted to legal Java identifiers
//   - [JavaMemberName]: myVariableName, restricted to legal Java identifiers
//   - [JavaPackagePart]: myvariablename
//   - [JavaPackageName]: my.variable.name
//   - [JavaConstantName]: MY_VARIABLE_NAME, restricted to legal Java identifiers
//
// Consecutive uppercase letters are not grouped into acronyms: "HTTPServer"
// splits into h, t, t, p, server under the camel case notations.
//
// # Errors
//
// Split, Join and Convert return errors from
// [github.com/erraggy/stringnotation/notationerrors] unwrapped, so callers
// can tell which stage failed:
//   - [notationerrors.InvalidInputError]: text or words the notation cannot accept
//   - [notationerrors.EmptySequenceError]: joining zero words (every notation refuses)
//   - [notationerrors.ConfigError]: unknown notation values or invalid options
//
// All values in this package are immutable and safe for concurrent use.
package notation
