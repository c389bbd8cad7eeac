package literal

import (
	"unicode/utf8"

	"github.com/coregx/tinyre/syntax"
)

// ExtractorConfig configures literal extraction limits.
//
// These limits keep extraction cheap on patterns that fan out:
//   - MaxLiterals: gives up on cross products like [abc][def][ghi]
//   - MaxLiteralLen: truncates long literals
//   - MaxClassSize: classes with more members are not expanded
type ExtractorConfig struct {
	// MaxLiterals limits the number of alternative literals. A node that
	// would exceed it ends extraction with the literals built so far.
	// Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the length in bytes of each literal. Longer
	// literals are truncated and marked incomplete. Default: 64.
	MaxLiteralLen int

	// MaxClassSize limits the number of characters a class may expand to.
	// Default: 10.
	MaxClassSize int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor extracts prefix literals from compiled patterns.
type Extractor struct {
	config ExtractorConfig
}

// New creates a new Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// partial is a literal under construction. Open literals still grow with
// the next node; closed ones are final.
type partial struct {
	bytes []byte
	open  bool
}

// ExtractPrefixes returns literals one of which every match starts with.
//
// Nodes are handled as follows:
//   - Literal: appended to every open literal
//   - CharClass: expanded into a cross product if small and not negated
//   - Group: transparent, its nodes are processed in place
//   - Optional: union of the literals with and without the sub-sequence
//   - Repeat: union of zero repetitions and one repetition (then closed)
//   - Wildcard, negated or large class, '$': close every open literal
//   - U+FFFD, alone or in a class: close every open literal, since the
//     matcher reads any invalid UTF-8 byte as U+FFFD
//   - '^': ignored
//
// Examples:
//
//	"hello"        -> ["hello"] (complete)
//	"[ab]c"        -> ["ac", "bc"] (complete)
//	"ab?c"         -> ["ac", "abc"] (complete)
//	"hello.*"      -> ["hello"]
//	"x*y"          -> ["x", "y"]
//	".*foo"        -> [] (a match may start with anything)
//	"a*"           -> [] (a match may be empty)
//
// An empty Seq means no useful prefix exists.
func (e *Extractor) ExtractPrefixes(nodes []syntax.Node) *Seq {
	parts := e.extend([]partial{{open: true}}, nodes)

	lits := make([]Literal, 0, len(parts))
	for _, p := range parts {
		// An empty literal means some match can start with any character.
		if len(p.bytes) == 0 {
			return NewSeq()
		}
		lits = append(lits, NewLiteral(p.bytes, p.open))
	}

	seq := NewSeq(lits...)
	seq.Minimize()
	return seq
}

// extend processes nodes against parts. A node that would grow the set past
// MaxLiterals is not applied: the literals built so far are closed instead,
// since every match still starts with one of them.
func (e *Extractor) extend(parts []partial, nodes []syntax.Node) []partial {
	for i := range nodes {
		if !anyOpen(parts) {
			return parts
		}

		before := clonePartials(parts)
		n := &nodes[i]
		switch n.Op {
		case syntax.OpAnchorStart:
			continue

		case syntax.OpLiteral:
			if n.Rune == utf8.RuneError {
				return closeAll(parts)
			}
			parts = e.appendRunes(parts, []rune{n.Rune})

		case syntax.OpCharClass:
			members, expandable := e.classMembers(n)
			if !expandable {
				return closeAll(parts)
			}
			parts = e.appendRunes(parts, members)

		case syntax.OpGroup:
			parts = e.extend(parts, n.Sub)

		case syntax.OpOptional:
			more := e.extend(clonePartials(parts), n.Sub)
			parts = union(more, parts)

		case syntax.OpRepeat:
			more := e.extend(clonePartials(parts), n.Sub)
			parts = union(closeAll(more), parts)

		default:
			// Wildcard, '$' and anything unknown end every literal.
			return closeAll(parts)
		}

		if len(parts) > e.config.MaxLiterals {
			return closeAll(before)
		}
	}
	return parts
}

// appendRunes extends every open literal with each rune in alternatives,
// forming a cross product. Literals that reach MaxLiteralLen are closed.
func (e *Extractor) appendRunes(parts []partial, alternatives []rune) []partial {
	out := make([]partial, 0, len(parts)*len(alternatives))
	var buf [utf8.UTFMax]byte
	for _, p := range parts {
		if !p.open {
			out = append(out, p)
			continue
		}
		for _, r := range alternatives {
			n := utf8.EncodeRune(buf[:], r)
			if len(p.bytes)+n > e.config.MaxLiteralLen {
				out = append(out, partial{bytes: p.bytes, open: false})
				continue
			}
			grown := make([]byte, len(p.bytes), len(p.bytes)+n)
			copy(grown, p.bytes)
			out = append(out, partial{bytes: append(grown, buf[:n]...), open: true})
		}
	}
	return dedupe(out)
}

// classMembers expands a non-negated class into its members. It reports
// false when the class is negated, empty, larger than MaxClassSize, or
// contains U+FFFD.
func (e *Extractor) classMembers(n *syntax.Node) ([]rune, bool) {
	if n.Negated || len(n.Class) == 0 {
		return nil, false
	}
	var members []rune
	for i := 0; i+1 < len(n.Class); i += 2 {
		lo, hi := n.Class[i], n.Class[i+1]
		if lo <= utf8.RuneError && utf8.RuneError <= hi {
			return nil, false
		}
		if int(hi-lo)+1+len(members) > e.config.MaxClassSize {
			return nil, false
		}
		for r := lo; r <= hi; r++ {
			members = append(members, r)
		}
	}
	return members, true
}

func anyOpen(parts []partial) bool {
	for _, p := range parts {
		if p.open {
			return true
		}
	}
	return false
}

func closeAll(parts []partial) []partial {
	for i := range parts {
		parts[i].open = false
	}
	return parts
}

func clonePartials(parts []partial) []partial {
	out := make([]partial, len(parts))
	copy(out, parts)
	return out
}

func union(a, b []partial) []partial {
	out := make([]partial, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return dedupe(out)
}

// dedupe drops repeated literals. An open and a closed copy of the same
// bytes collapse into the closed one.
func dedupe(parts []partial) []partial {
	seen := make(map[string]int, len(parts))
	out := parts[:0:0]
	for _, p := range parts {
		key := string(p.bytes)
		if i, ok := seen[key]; ok {
			out[i].open = out[i].open && p.open
			continue
		}
		seen[key] = len(out)
		out = append(out, p)
	}
	return out
}
