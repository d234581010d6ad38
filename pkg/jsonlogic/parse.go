package jsonlogic

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/gobwas/glob"
)

// Parse decodes a JSON-encoded query into an expression tree, validating
// operator names and arities up front so a malformed query fails before any
// vault file is touched.
func Parse(raw []byte) (Expr, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &MalformedExpressionError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return FromValue(v)
}

// FromValue builds an expression tree from an already-decoded JSON value,
// such as the arguments object of a tool call.
func FromValue(v any) (Expr, error) {
	switch node := v.(type) {
	case map[string]any:
		if len(node) != 1 {
			return nil, &MalformedExpressionError{
				Reason: fmt.Sprintf("expression object must have exactly one key, got %d", len(node)),
			}
		}
		for name, arg := range node {
			if name == "var" {
				return parseVar(arg)
			}
			return parseOp(name, arg)
		}
		panic("unreachable")
	case []any:
		return nil, &MalformedExpressionError{Reason: "bare array is not a valid expression"}
	default:
		// Scalars and null are literals.
		return Literal{Value: node}, nil
	}
}

// parseVar handles the three accepted var forms: "path", ["path"], and
// ["path", default].
func parseVar(arg any) (Expr, error) {
	switch a := arg.(type) {
	case string:
		return Var{Path: a, Default: ""}, nil
	case []any:
		if len(a) < 1 || len(a) > 2 {
			return nil, &MalformedExpressionError{
				Operator: "var",
				Reason:   fmt.Sprintf("expected 1 or 2 operands, got %d", len(a)),
			}
		}
		path, ok := a[0].(string)
		if !ok {
			return nil, &MalformedExpressionError{Operator: "var", Reason: "field name must be a string"}
		}
		def := any("")
		if len(a) == 2 {
			def = a[1]
		}
		return Var{Path: path, Default: def}, nil
	default:
		return nil, &MalformedExpressionError{Operator: "var", Reason: "operand must be a string or array"}
	}
}

func parseOp(name string, arg any) (Expr, error) {
	operands, ok := arg.([]any)
	if !ok {
		// JsonLogic permits a lone operand without the array wrapper,
		// e.g. {"!": true}.
		operands = []any{arg}
	}

	if err := checkArity(name, len(operands)); err != nil {
		return nil, err
	}

	args := make([]Expr, 0, len(operands))
	for _, operand := range operands {
		sub, err := FromValue(operand)
		if err != nil {
			return nil, err
		}
		args = append(args, sub)
	}

	op := Op{Name: name, Args: args}
	if err := precompilePattern(&op); err != nil {
		return nil, err
	}
	return op, nil
}

// checkArity enforces the operand-count invariant for each operator class.
// Unknown operator names are rejected here rather than at evaluation time.
func checkArity(name string, n int) error {
	switch name {
	case OpAnd, OpOr:
		if n < 1 {
			return &MalformedExpressionError{Operator: name, Reason: "expected at least 1 operand"}
		}
	case OpNot, OpCast:
		if n != 1 {
			return &MalformedExpressionError{
				Operator: name,
				Reason:   fmt.Sprintf("expected exactly 1 operand, got %d", n),
			}
		}
	case OpLt, OpLte:
		// Two-operand comparison or the ternary range form a < b < c.
		if n != 2 && n != 3 {
			return &MalformedExpressionError{
				Operator: name,
				Reason:   fmt.Sprintf("expected 2 or 3 operands, got %d", n),
			}
		}
	case OpEq, OpNeq, OpGt, OpGte, OpGlob, OpRegexp:
		if n != 2 {
			return &MalformedExpressionError{
				Operator: name,
				Reason:   fmt.Sprintf("expected exactly 2 operands, got %d", n),
			}
		}
	default:
		return &UnsupportedOperatorError{Operator: name}
	}
	return nil
}

// precompilePattern compiles glob/regexp patterns whose first operand is a
// literal string, surfacing invalid patterns at parse time.
func precompilePattern(op *Op) error {
	if op.Name != OpGlob && op.Name != OpRegexp {
		return nil
	}
	lit, ok := op.Args[0].(Literal)
	if !ok {
		return nil
	}
	pattern, ok := lit.Value.(string)
	if !ok {
		return nil
	}
	switch op.Name {
	case OpGlob:
		g, err := glob.Compile(pattern)
		if err != nil {
			return &InvalidPatternError{Operator: OpGlob, Pattern: pattern, Err: err}
		}
		op.compiledGlob = g
	case OpRegexp:
		re, err := regexp.Compile(pattern)
		if err != nil {
			return &InvalidPatternError{Operator: OpRegexp, Pattern: pattern, Err: err}
		}
		op.compiledRe = re
	}
	return nil
}
