package jsonlogic

import "fmt"

// UnsupportedOperatorError indicates a query used an operator name outside
// the supported set.
type UnsupportedOperatorError struct {
	Operator string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("jsonlogic: unsupported operator %q", e.Operator)
}

// MalformedExpressionError indicates an expression that violates the
// structural rules of the query language, such as an operand count that
// does not match the operator's arity.
type MalformedExpressionError struct {
	Operator string
	Reason   string
}

func (e *MalformedExpressionError) Error() string {
	if e.Operator == "" {
		return fmt.Sprintf("jsonlogic: malformed expression: %s", e.Reason)
	}
	return fmt.Sprintf("jsonlogic: malformed %q expression: %s", e.Operator, e.Reason)
}

// InvalidPatternError indicates a glob or regexp pattern that failed to
// compile.
type InvalidPatternError struct {
	Operator string
	Pattern  string
	Err      error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("jsonlogic: invalid %s pattern %q: %v", e.Operator, e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}
