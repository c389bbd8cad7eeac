// Package syntax compiles tinyre patterns into a sequence of pattern nodes.
//
// The dialect is deliberately small:
//
//	c      literal character
//	.      any character
//	^ $    start / end of input (first / last node only)
//	[abc]  character class, [^abc] negated, [a-z] ranges
//	x?     zero or one x
//	x*     zero or more x, greedy
//	(re)   capture group
//
// Alternation, escapes, lookaround, backreferences and flags are rejected.
//
// A compiled Pattern is immutable and safe for concurrent use.
package syntax

import (
	"strconv"
	"strings"
)

// Op is the kind of a pattern node.
type Op uint8

// Pattern node kinds.
const (
	OpLiteral     Op = iota + 1 // matches Rune
	OpWildcard                  // matches any character
	OpAnchorStart               // zero width, offset 0 only
	OpAnchorEnd                 // zero width, end of input only
	OpCharClass                 // matches a character in (or not in) Class
	OpOptional                  // Sub zero or one time
	OpRepeat                    // Sub zero or more times, greedy
	OpGroup                     // Sub in place, captured
)

var opNames = [...]string{
	OpLiteral:     "Literal",
	OpWildcard:    "Wildcard",
	OpAnchorStart: "AnchorStart",
	OpAnchorEnd:   "AnchorEnd",
	OpCharClass:   "CharClass",
	OpOptional:    "Optional",
	OpRepeat:      "Repeat",
	OpGroup:       "Group",
}

func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Node is one element of a compiled pattern.
//
// Which fields are meaningful depends on Op:
//   - OpLiteral: Rune
//   - OpCharClass: Class, Negated
//   - OpOptional, OpRepeat, OpGroup: Sub
type Node struct {
	Op Op

	// Rune is the character matched by OpLiteral.
	Rune rune

	// Class holds inclusive ranges as flat pairs: lo0, hi0, lo1, hi1, ...
	// A single member c is stored as the pair c, c.
	Class []rune

	// Negated inverts class membership.
	Negated bool

	// Sub is the owned sub-sequence of a quantifier or group.
	Sub []Node
}

// ZeroWidth reports whether the node can never consume a character.
func (n *Node) ZeroWidth() bool {
	return n.Op == OpAnchorStart || n.Op == OpAnchorEnd
}

// MatchRune reports whether r satisfies a single-character node.
// It returns false for every node that does not consume a character.
func (n *Node) MatchRune(r rune) bool {
	switch n.Op {
	case OpLiteral:
		return r == n.Rune
	case OpWildcard:
		return true
	case OpCharClass:
		return n.classContains(r) != n.Negated
	}
	return false
}

func (n *Node) classContains(r rune) bool {
	for i := 0; i+1 < len(n.Class); i += 2 {
		if n.Class[i] <= r && r <= n.Class[i+1] {
			return true
		}
	}
	return false
}

// String renders the node back into pattern syntax.
func (n *Node) String() string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	switch n.Op {
	case OpLiteral:
		b.WriteRune(n.Rune)
	case OpWildcard:
		b.WriteByte('.')
	case OpAnchorStart:
		b.WriteByte('^')
	case OpAnchorEnd:
		b.WriteByte('$')
	case OpCharClass:
		writeClass(b, n)
	case OpOptional, OpRepeat:
		// Compile wraps exactly one node; longer sequences need a group to render.
		if len(n.Sub) == 1 {
			writeNode(b, &n.Sub[0])
		} else {
			b.WriteByte('(')
			writeNodes(b, n.Sub)
			b.WriteByte(')')
		}
		if n.Op == OpOptional {
			b.WriteByte('?')
		} else {
			b.WriteByte('*')
		}
	case OpGroup:
		b.WriteByte('(')
		writeNodes(b, n.Sub)
		b.WriteByte(')')
	}
}

func writeNodes(b *strings.Builder, nodes []Node) {
	for i := range nodes {
		writeNode(b, &nodes[i])
	}
}

// writeClass puts a literal '-' first so it cannot be read back as a range,
// and keeps a literal '^' away from the negation position.
func writeClass(b *strings.Builder, n *Node) {
	b.WriteByte('[')
	if n.Negated {
		b.WriteByte('^')
	}
	var dash, caret bool
	var rest strings.Builder
	for i := 0; i+1 < len(n.Class); i += 2 {
		lo, hi := n.Class[i], n.Class[i+1]
		switch {
		case lo == hi && lo == '-':
			dash = true
		case lo == hi && lo == '^' && !n.Negated && rest.Len() == 0:
			caret = true
		case lo == hi:
			rest.WriteRune(lo)
		default:
			rest.WriteRune(lo)
			rest.WriteByte('-')
			rest.WriteRune(hi)
		}
	}
	if dash {
		b.WriteByte('-')
	}
	b.WriteString(rest.String())
	if caret {
		b.WriteByte('^')
	}
	b.WriteByte(']')
}
