package native

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/tinyre/syntax"
)

// Translate renders nodes as an RE2 expression with the same meaning:
//
//	.      -> (?s:.)     wildcard matches '\n' too
//	$      -> \z         only at the very end of the text
//	x?     -> (?:x)?
//	(x)*   -> (?:(x))*
//	[]     -> a class no character belongs to
//	[^]    -> (?s:.)
//
// Literals and class members are escaped.
func Translate(nodes []syntax.Node) string {
	var b strings.Builder
	translateNodes(&b, nodes)
	return b.String()
}

func translateNodes(b *strings.Builder, nodes []syntax.Node) {
	for i := range nodes {
		translateNode(b, &nodes[i])
	}
}

func translateNode(b *strings.Builder, n *syntax.Node) {
	switch n.Op {
	case syntax.OpLiteral:
		b.WriteString(regexp.QuoteMeta(string(n.Rune)))
	case syntax.OpWildcard:
		b.WriteString(`(?s:.)`)
	case syntax.OpAnchorStart:
		b.WriteString(`^`)
	case syntax.OpAnchorEnd:
		b.WriteString(`\z`)
	case syntax.OpCharClass:
		translateClass(b, n)
	case syntax.OpOptional:
		b.WriteString(`(?:`)
		translateNodes(b, n.Sub)
		b.WriteString(`)?`)
	case syntax.OpRepeat:
		b.WriteString(`(?:`)
		translateNodes(b, n.Sub)
		b.WriteString(`)*`)
	case syntax.OpGroup:
		b.WriteByte('(')
		translateNodes(b, n.Sub)
		b.WriteByte(')')
	}
}

func translateClass(b *strings.Builder, n *syntax.Node) {
	if len(n.Class) == 0 {
		if n.Negated {
			b.WriteString(`(?s:.)`)
		} else {
			b.WriteString(`[^\x00-\x{10FFFF}]`)
		}
		return
	}
	b.WriteByte('[')
	if n.Negated {
		b.WriteByte('^')
	}
	for i := 0; i+1 < len(n.Class); i += 2 {
		lo, hi := n.Class[i], n.Class[i+1]
		writeClassRune(b, lo)
		if hi != lo {
			b.WriteByte('-')
			writeClassRune(b, hi)
		}
	}
	b.WriteByte(']')
}

func writeClassRune(b *strings.Builder, r rune) {
	switch {
	case strings.ContainsRune(`\[]^-`, r):
		b.WriteByte('\\')
		b.WriteRune(r)
	case r < utf8.RuneSelf && unicode.IsPrint(r):
		b.WriteRune(r)
	default:
		fmt.Fprintf(b, `\x{%x}`, r)
	}
}
