package syntax

// ErrorCode describes a failure to compile a pattern.
//
// ErrorCode implements error so the codes double as sentinels:
//
//	if errors.Is(err, syntax.ErrMissingParen) { ... }
type ErrorCode string

// Compile error codes.
const (
	// ErrMissingRepeatArgument indicates a '?' or '*' with nothing to repeat.
	ErrMissingRepeatArgument ErrorCode = "missing argument to repetition operator"

	// ErrMissingParen indicates a '(' without a matching ')'.
	ErrMissingParen ErrorCode = "missing closing )"

	// ErrUnexpectedParen indicates a ')' without a matching '('.
	ErrUnexpectedParen ErrorCode = "unexpected )"

	// ErrMissingBracket indicates a '[' without a matching ']'.
	ErrMissingBracket ErrorCode = "missing closing ]"

	// ErrUnexpectedBracket indicates a ']' outside a character class.
	ErrUnexpectedBracket ErrorCode = "unexpected ]"

	// ErrInvalidClassRange indicates a class range whose low end is above its high end.
	ErrInvalidClassRange ErrorCode = "invalid character class range"

	// ErrMisplacedAnchor indicates '^' that is not the first node or '$' that is
	// not the last node of the top-level sequence.
	ErrMisplacedAnchor ErrorCode = "anchor not at pattern boundary"

	// ErrUnsupported indicates alternation ('|') or escaping ('\').
	ErrUnsupported ErrorCode = "unsupported construct"
)

func (e ErrorCode) String() string {
	return string(e)
}

// Error implements the error interface.
func (e ErrorCode) Error() string {
	return string(e)
}

// Error is returned by Compile. Expr is the offending part of the pattern.
type Error struct {
	Code ErrorCode
	Expr string
}

// Error implements the error interface.
// The format follows regexp/syntax: "error parsing regexp: <code>: `<expr>`".
func (e *Error) Error() string {
	return "error parsing regexp: " + e.Code.String() + ": `" + e.Expr + "`"
}

// Unwrap returns the error code, enabling errors.Is against the code constants.
func (e *Error) Unwrap() error {
	return e.Code
}
