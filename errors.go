package vpack

import "fmt"

// ErrorKind enumerates the closed set of failure modes the codec can report.
type ErrorKind int

const (
	// ParseError covers malformed JSON input; Error.Message carries context.
	ParseError ErrorKind = iota
	InvalidUtf8Sequence
	UnexpectedControlCharacter
	NumberOutOfRange
	InvalidValueType
	IndexOutOfBounds
	NoJsonEquivalent
	NeedAttributeTranslator
	BuilderKeyMustBeString
	InternalError
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case InvalidUtf8Sequence:
		return "InvalidUtf8Sequence"
	case UnexpectedControlCharacter:
		return "UnexpectedControlCharacter"
	case NumberOutOfRange:
		return "NumberOutOfRange"
	case InvalidValueType:
		return "InvalidValueType"
	case IndexOutOfBounds:
		return "IndexOutOfBounds"
	case NoJsonEquivalent:
		return "NoJsonEquivalent"
	case NeedAttributeTranslator:
		return "NeedAttributeTranslator"
	case BuilderKeyMustBeString:
		return "BuilderKeyMustBeString"
	case InternalError:
		return "InternalError"
	default:
		return "Unknown"
	}
}

// Error is the single error type produced by this package. It carries a
// closed-taxonomy Kind so callers can branch on failure class without
// string matching.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}
