package jsonlogic

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/gobwas/glob"
)

// Record is the per-file view a query is evaluated against. Path is the
// vault-relative file path and Content the file's full text.
type Record struct {
	Path    string
	Content string
}

func (r Record) field(name string) (any, bool) {
	switch name {
	case "path":
		return r.Path, true
	case "content":
		return r.Content, true
	default:
		return nil, false
	}
}

// Evaluate reduces an expression tree to a single value against one record.
// The result is a bool, float64, string, or nil; callers decide matching by
// applying Truthy to it.
func Evaluate(expr Expr, rec Record) (any, error) {
	switch node := expr.(type) {
	case Literal:
		return node.Value, nil
	case Var:
		if val, ok := rec.field(node.Path); ok {
			return val, nil
		}
		return node.Default, nil
	case Op:
		return evalOp(node, rec)
	case nil:
		return nil, &MalformedExpressionError{Reason: "nil expression"}
	default:
		return nil, &MalformedExpressionError{Reason: fmt.Sprintf("unknown expression node %T", expr)}
	}
}

func evalOp(op Op, rec Record) (any, error) {
	switch op.Name {
	case OpAnd:
		// Short-circuit on the first falsy operand, returning operand
		// values rather than coerced booleans.
		var last any
		for _, arg := range op.Args {
			val, err := Evaluate(arg, rec)
			if err != nil {
				return nil, err
			}
			if !Truthy(val) {
				return val, nil
			}
			last = val
		}
		return last, nil

	case OpOr:
		var last any
		for _, arg := range op.Args {
			val, err := Evaluate(arg, rec)
			if err != nil {
				return nil, err
			}
			if Truthy(val) {
				return val, nil
			}
			last = val
		}
		return last, nil

	case OpNot:
		val, err := Evaluate(op.Args[0], rec)
		if err != nil {
			return nil, err
		}
		return !Truthy(val), nil

	case OpCast:
		val, err := Evaluate(op.Args[0], rec)
		if err != nil {
			return nil, err
		}
		return Truthy(val), nil

	case OpEq, OpNeq, OpGt, OpGte, OpLt, OpLte:
		return evalComparison(op, rec)

	case OpGlob:
		return evalGlob(op, rec)

	case OpRegexp:
		return evalRegexp(op, rec)

	default:
		return nil, &UnsupportedOperatorError{Operator: op.Name}
	}
}

func evalComparison(op Op, rec Record) (any, error) {
	vals := make([]any, len(op.Args))
	for i, arg := range op.Args {
		val, err := Evaluate(arg, rec)
		if err != nil {
			return nil, err
		}
		vals[i] = val
	}

	switch op.Name {
	case OpEq:
		return Compare(vals[0], vals[1]) == 0, nil
	case OpNeq:
		return Compare(vals[0], vals[1]) != 0, nil
	case OpGt:
		return Compare(vals[0], vals[1]) > 0, nil
	case OpGte:
		return Compare(vals[0], vals[1]) >= 0, nil
	case OpLt:
		if len(vals) == 3 {
			return Compare(vals[0], vals[1]) < 0 && Compare(vals[1], vals[2]) < 0, nil
		}
		return Compare(vals[0], vals[1]) < 0, nil
	case OpLte:
		if len(vals) == 3 {
			return Compare(vals[0], vals[1]) <= 0 && Compare(vals[1], vals[2]) <= 0, nil
		}
		return Compare(vals[0], vals[1]) <= 0, nil
	}
	panic("unreachable")
}

func evalGlob(op Op, rec Record) (any, error) {
	pattern, subject, err := patternOperands(op, rec)
	if err != nil {
		return nil, err
	}
	g := op.compiledGlob
	if g == nil {
		g, err = glob.Compile(pattern)
		if err != nil {
			return nil, &InvalidPatternError{Operator: OpGlob, Pattern: pattern, Err: err}
		}
	}
	return g.Match(subject), nil
}

func evalRegexp(op Op, rec Record) (any, error) {
	pattern, subject, err := patternOperands(op, rec)
	if err != nil {
		return nil, err
	}
	re := op.compiledRe
	if re == nil {
		re, err = regexp.Compile(pattern)
		if err != nil {
			return nil, &InvalidPatternError{Operator: OpRegexp, Pattern: pattern, Err: err}
		}
	}
	// Unanchored search: a match anywhere in the subject counts.
	return re.MatchString(subject), nil
}

// patternOperands evaluates the [pattern, subject] operand pair shared by
// glob and regexp.
func patternOperands(op Op, rec Record) (pattern, subject string, err error) {
	pv, err := Evaluate(op.Args[0], rec)
	if err != nil {
		return "", "", err
	}
	sv, err := Evaluate(op.Args[1], rec)
	if err != nil {
		return "", "", err
	}
	return Stringify(pv), Stringify(sv), nil
}

// Truthy implements the falsy set shared by every logical operator and the
// top-level match decision: false, nil, numeric zero, and the empty string
// are falsy; everything else is truthy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// Compare orders two values, returning <0, 0, or >0. When both values are
// numeric (numbers, booleans, or strings that parse as numbers) the
// comparison is numeric, otherwise lexicographic on the string forms.
func Compare(a, b any) int {
	na, aok := toNumber(a)
	nb, bok := toNumber(b)
	if aok && bok {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	sa, sb := Stringify(a), Stringify(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseFloat(t, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// Stringify renders a value for pattern matching and lexicographic
// comparison. Numbers drop a redundant trailing ".0"; nil renders empty.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
