// Package naming provides the rune-level casing and identifier helpers behind
// the notation package.
//
// Casing goes through golang.org/x/text/cases with the root locale
// ([language.Und]), so results never depend on the host locale. A
// [cases.Caser] is stateful, so every helper builds its own and none is
// shared between goroutines.
//
// The Java helpers mirror the rules of Character.isJavaIdentifierStart and
// Character.isJavaIdentifierPart closely enough for name generation:
//   - Identifier start: letters, letter numbers, currency symbols, connector punctuation
//   - Identifier part: any start rune plus decimal digits and combining marks
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
