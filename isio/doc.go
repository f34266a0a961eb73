// Package isio implements the external text format of spec.md §6: one
// ground-set line followed by zero or more rule lines, plus a process-wide
// registry mapping a file extension to the (reader, writer) pair responsible
// for it.
//
// The rule-line grammar ("p1 p2 -> c1 c2") is parsed with participle/v2,
// grounded on the stateful-lexer grammar in kanso-lang-kanso/grammar; the
// surrounding line structure is read with bufio.Scanner, the idiomatic
// approach for a format whose outermost structure is "one record per line."
package isio

import "github.com/katalvlaran/implication/is"

// Set is re-exported for callers that want to inspect parsed/dropped tokens
// without importing package is directly.
type Set = is.Set
