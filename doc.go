// Package stringnotation converts identifiers and phrases between naming notations.
//
// The library splits a string written in one notation into notation-agnostic
// words and joins those words in another notation:
//
//	myVariable         (LowerCamelCase)
//	MyVariable         (UpperCamelCase)
//	my variable        (NormalWords)
//	my_variable        (SnakeCase)
//	MY_VARIABLE        (ScreamingSnakeCase)
//	MyVariable         (JavaTypeName)
//	my.variable        (JavaPackageName)
//
// # Installation
//
//	go get github.com/erraggy/stringnotation
//
// # Quick Start
//
//	import "github.com/erraggy/stringnotation/notation"
//
//	out, err := notation.Convert("1 Type Name 4 You!", notation.NormalWords, notation.JavaTypeName)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // TypeName4You
//
// # Packages
//
//   - notation: Words, the Notation variants, Split, Join and Convert
//   - notationerrors: structured error types for errors.Is and errors.As
//
// # Command Line
//
// The strnotation command wraps the library:
//
//	strnotation convert --from camel --to constant myVariable
//	strnotation split --notation snake user_profile_id
//	strnotation batch jobs.yaml
//	strnotation mcp
//
// This root package only carries build metadata such as [Version].
package stringnotation
