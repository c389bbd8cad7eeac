package syntax

import (
	"strings"
)

// Pattern is a compiled pattern: an ordered sequence of nodes matched as a
// concatenation.
//
// A Pattern is immutable once Compile returns. The node slice returned by
// Nodes is shared and must not be modified.
type Pattern struct {
	expr      string
	nodes     []Node
	numGroups int
}

// Compile compiles expr into a Pattern.
//
// Compile fails fast: on the first malformed or unsupported construct it
// returns a *Error and no pattern.
//
// Example:
//
//	p, err := syntax.Compile("(a*)(aaa)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.NumGroups()) // 2
func Compile(expr string) (*Pattern, error) {
	c := &compiler{
		expr: expr,
		src:  []rune(expr),
	}
	nodes, err := c.sequence(0, len(c.src), true)
	if err != nil {
		return nil, err
	}
	return &Pattern{
		expr:      expr,
		nodes:     nodes,
		numGroups: c.groups,
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic("syntax: Compile(`" + expr + "`): " + err.Error())
	}
	return p
}

// Nodes returns the top-level node sequence.
func (p *Pattern) Nodes() []Node {
	return p.nodes
}

// NumGroups returns the number of capture groups declared in the pattern.
// A group inside a repeat still counts once here, although it may record
// one capture per repetition when matched.
func (p *Pattern) NumGroups() int {
	return p.numGroups
}

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string {
	return p.expr
}

// AnchoredStart reports whether the pattern begins with '^'.
func (p *Pattern) AnchoredStart() bool {
	return len(p.nodes) > 0 && p.nodes[0].Op == OpAnchorStart
}

// Format renders a node sequence in pattern syntax. Compiling the result
// yields an equivalent sequence.
func Format(nodes []Node) string {
	var b strings.Builder
	writeNodes(&b, nodes)
	return b.String()
}

// compiler walks the pattern runes. Groups recurse over the sub-range between
// the parentheses, so one compiler serves every nesting level.
type compiler struct {
	expr   string
	src    []rune
	groups int
}

// sequence compiles src[start:end] into a node list.
// top is true only for the outermost sequence, the one place anchors may appear.
func (c *compiler) sequence(start, end int, top bool) ([]Node, error) {
	nodes := make([]Node, 0, end-start)
	for i := start; i < end; {
		r := c.src[i]
		switch r {
		case '^':
			if !top || i != 0 {
				return nil, c.errorf(ErrMisplacedAnchor, i, i+1)
			}
			nodes = append(nodes, Node{Op: OpAnchorStart})
			i++

		case '$':
			if !top || i != len(c.src)-1 {
				return nil, c.errorf(ErrMisplacedAnchor, i, i+1)
			}
			nodes = append(nodes, Node{Op: OpAnchorEnd})
			i++

		case '.':
			nodes = append(nodes, Node{Op: OpWildcard})
			i++

		case '?', '*':
			if len(nodes) == 0 || nodes[len(nodes)-1].ZeroWidth() {
				return nil, c.errorf(ErrMissingRepeatArgument, i, i+1)
			}
			op := OpOptional
			if r == '*' {
				op = OpRepeat
			}
			last := nodes[len(nodes)-1]
			nodes[len(nodes)-1] = Node{Op: op, Sub: []Node{last}}
			i++

		case '(':
			closing, err := c.matchParen(i, end)
			if err != nil {
				return nil, err
			}
			// Count before recursing so numbering follows opening order.
			c.groups++
			inner, err := c.sequence(i+1, closing, false)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, Node{Op: OpGroup, Sub: inner})
			i = closing + 1

		case ')':
			return nil, c.errorf(ErrUnexpectedParen, 0, len(c.src))

		case '[':
			n, next, err := c.class(i, end)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
			i = next

		case ']':
			return nil, c.errorf(ErrUnexpectedBracket, i, i+1)

		case '|':
			return nil, c.errorf(ErrUnsupported, i, i+1)

		case '\\':
			j := i + 2
			if j > len(c.src) {
				j = len(c.src)
			}
			return nil, c.errorf(ErrUnsupported, i, j)

		default:
			nodes = append(nodes, Node{Op: OpLiteral, Rune: r})
			i++
		}
	}
	return nodes, nil
}

// matchParen returns the index of the ')' closing the '(' at open.
// Bracketed classes are skipped, so "([)])" closes at the last rune.
func (c *compiler) matchParen(open, end int) (int, error) {
	depth := 0
	for j := open + 1; j < end; j++ {
		switch c.src[j] {
		case '[':
			closing := c.classEnd(j, end)
			if closing < 0 {
				return -1, c.errorf(ErrMissingBracket, j, len(c.src))
			}
			j = closing
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return j, nil
			}
			depth--
		}
	}
	return -1, c.errorf(ErrMissingParen, 0, len(c.src))
}

// classEnd returns the index of the ']' closing the '[' at open, or -1.
func (c *compiler) classEnd(open, end int) int {
	for j := open + 1; j < end; j++ {
		if c.src[j] == ']' {
			return j
		}
	}
	return -1
}

// class compiles the character class starting at open and returns the node
// together with the index just past its closing ']'.
func (c *compiler) class(open, end int) (Node, int, error) {
	closing := c.classEnd(open, end)
	if closing < 0 {
		return Node{}, 0, c.errorf(ErrMissingBracket, open, len(c.src))
	}

	n := Node{Op: OpCharClass}
	i := open + 1
	if i < closing && c.src[i] == '^' {
		n.Negated = true
		i++
	}

	n.Class = make([]rune, 0, 2*(closing-i))
	for i < closing {
		lo := c.src[i]
		if i+2 < closing && c.src[i+1] == '-' {
			hi := c.src[i+2]
			if hi < lo {
				return Node{}, 0, c.errorf(ErrInvalidClassRange, i, i+3)
			}
			n.Class = append(n.Class, lo, hi)
			i += 3
			continue
		}
		n.Class = append(n.Class, lo, lo)
		i++
	}
	return n, closing + 1, nil
}

func (c *compiler) errorf(code ErrorCode, from, to int) *Error {
	return &Error{Code: code, Expr: string(c.src[from:to])}
}
