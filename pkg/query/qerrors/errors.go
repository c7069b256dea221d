// Package qerrors defines the error taxonomy raised while translating an
// operator tree into Cypher.
package qerrors

import (
	"fmt"
)

// Kind categorizes the failures the translator can raise.
type Kind int

const (
	// UnsupportedOperator is raised when an operator name has no matching handler.
	UnsupportedOperator Kind = iota
	// UnsupportedExpression is raised when the translator cannot encode an expression shape.
	UnsupportedExpression
	// InvalidQuery is raised when the operator tree is structurally impossible.
	InvalidQuery
	// AmbiguousTransaction is raised when more than one transaction is referenced in one query.
	AmbiguousTransaction
	// ExpressionCompilationFailed is raised when evaluating a closure constant fails.
	ExpressionCompilationFailed
	// SchemaMissing is raised when the entity factory has no schema for a type that needs one.
	SchemaMissing
)

// String renders the kind using the taxonomy's canonical names.
func (k Kind) String() string {
	switch k {
	case UnsupportedOperator:
		return "UnsupportedOperator"
	case UnsupportedExpression:
		return "UnsupportedExpression"
	case InvalidQuery:
		return "InvalidQuery"
	case AmbiguousTransaction:
		return "AmbiguousTransaction"
	case ExpressionCompilationFailed:
		return "ExpressionCompilationFailed"
	case SchemaMissing:
		return "SchemaMissing"
	default:
		return "UnknownError"
	}
}

// Error carries the offending expression/operator name, the scope state at
// the point of failure, and the original cause, if any.
type Error struct {
	Kind    Kind
	Message string
	// Context describes where the error occurred: the offending operator or
	// expression name plus the scope's current alias and root type.
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%s): %v", e.Kind, e.Message, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Context)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind Kind, message, context string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Context: context, Cause: cause}
}

// NewUnsupportedOperator builds an UnsupportedOperator error.
func NewUnsupportedOperator(operator, context string) *Error {
	return newError(UnsupportedOperator, "no handler registered for operator "+operator, context, nil)
}

// NewUnsupportedExpression builds an UnsupportedExpression error.
func NewUnsupportedExpression(message, context string) *Error {
	return newError(UnsupportedExpression, message, context, nil)
}

// NewInvalidQuery builds an InvalidQuery error.
func NewInvalidQuery(message, context string) *Error {
	return newError(InvalidQuery, message, context, nil)
}

// NewAmbiguousTransaction builds an AmbiguousTransaction error.
func NewAmbiguousTransaction(count int, context string) *Error {
	return newError(AmbiguousTransaction, fmt.Sprintf("found %d distinct transactions in one query", count), context, nil)
}

// NewExpressionCompilationFailed builds an ExpressionCompilationFailed error.
func NewExpressionCompilationFailed(message, context string, cause error) *Error {
	return newError(ExpressionCompilationFailed, message, context, cause)
}

// NewSchemaMissing builds a SchemaMissing error.
func NewSchemaMissing(typeName, context string) *Error {
	return newError(SchemaMissing, "no schema registered for type "+typeName, context, nil)
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

// IsUnsupportedOperator reports whether err is an UnsupportedOperator error.
func IsUnsupportedOperator(err error) bool { return Is(err, UnsupportedOperator) }

// IsUnsupportedExpression reports whether err is an UnsupportedExpression error.
func IsUnsupportedExpression(err error) bool { return Is(err, UnsupportedExpression) }

// IsInvalidQuery reports whether err is an InvalidQuery error.
func IsInvalidQuery(err error) bool { return Is(err, InvalidQuery) }

// IsAmbiguousTransaction reports whether err is an AmbiguousTransaction error.
func IsAmbiguousTransaction(err error) bool { return Is(err, AmbiguousTransaction) }

// IsExpressionCompilationFailed reports whether err is an ExpressionCompilationFailed error.
func IsExpressionCompilationFailed(err error) bool { return Is(err, ExpressionCompilationFailed) }

// IsSchemaMissing reports whether err is a SchemaMissing error.
func IsSchemaMissing(err error) bool { return Is(err, SchemaMissing) }
