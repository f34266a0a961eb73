package isio

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ruleLexer tokenizes a single rule line. Arrow is listed before Ident so a
// whitespace-separated "->" lexes as Arrow; an arrow written without
// surrounding whitespace (e.g. "a->b") is lexed as part of one Ident token.
var ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[^\s]+`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// ruleLine is the grammar for "p1 p2 -> c1 c2": zero or more premise
// identifiers, the arrow, then zero or more conclusion identifiers.
type ruleLine struct {
	Premise    []string `@Ident*`
	Conclusion []string `"->" @Ident*`
}

var ruleParser = participle.MustBuild[ruleLine](
	participle.Lexer(ruleLexer),
	participle.Elide("Whitespace"),
)

// parseRuleLine parses one non-blank line of the rules section. The
// returned error, if any, already wraps ErrParse.
func parseRuleLine(line string) (*ruleLine, error) {
	ast, err := ruleParser.ParseString("", line)
	if err != nil {
		return nil, wrapParse(err)
	}

	return ast, nil
}
