package isio

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/katalvlaran/implication/is"
)

// wrapParse wraps err (typically a participle.Error) with ErrParse.
func wrapParse(err error) error {
	return fmt.Errorf("%w: %v", ErrParse, err)
}

// Parse reads the ground-set line followed by zero or more rule lines from
// r and builds the corresponding ImplicationalSystem (spec §6).
//
// Any rule token not present on the ground-set line is silently dropped
// from that rule (spec §6: "the token is silently dropped from that
// rule"); a rule whose conclusion is empty after dropping is not added.
func Parse(r io.Reader) (*is.ImplicationalSystem, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, wrapParse(err)
		}

		return nil, wrapParse(fmt.Errorf("missing ground-set line"))
	}
	sys := is.New(strings.Fields(scanner.Text())...)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ast, err := parseRuleLine(line)
		if err != nil {
			return nil, err
		}

		premise := keepKnown(sys, ast.Premise)
		conclusion := keepKnown(sys, ast.Conclusion)
		if len(conclusion) == 0 {
			continue
		}

		sys.AddRule(is.NewRule(premise, conclusion))
	}
	if err := scanner.Err(); err != nil {
		return nil, wrapParse(err)
	}

	return sys, nil
}

// keepKnown filters tokens down to those present in sys's ground set.
func keepKnown(sys *is.ImplicationalSystem, tokens []string) []string {
	gs := sys.GroundSet()

	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if gs.Contains(t) {
			out = append(out, t)
		}
	}

	return out
}

// newline is the platform line terminator Write uses (spec §6: "terminate
// every line with the platform newline").
func newline() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}

	return "\n"
}

// sanitizeToken strips internal whitespace from an element's textual
// representation (spec §6: "defensive token concatenation").
func sanitizeToken(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Write serializes sys to w in the format Parse reads: the ground set on
// the first line, then one rule per following line.
func Write(w io.Writer, sys *is.ImplicationalSystem) error {
	bw := bufio.NewWriter(w)

	gs := sys.GroundSet()
	tokens := make([]string, len(gs))
	for i, e := range gs {
		tokens[i] = sanitizeToken(e)
	}
	if _, err := bw.WriteString(strings.Join(tokens, " ") + newline()); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	for _, r := range sys.Rules() {
		parts := make([]string, 0, r.Premise.Len()+r.Conclusion.Len()+1)
		for _, p := range r.Premise {
			parts = append(parts, sanitizeToken(p))
		}
		parts = append(parts, "->")
		for _, c := range r.Conclusion {
			parts = append(parts, sanitizeToken(c))
		}

		if _, err := bw.WriteString(strings.Join(parts, " ") + newline()); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}
