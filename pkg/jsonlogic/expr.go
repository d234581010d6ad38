// Package jsonlogic implements the query expression language used by the
// complex vault search: a JsonLogic-style tree of logical, comparison, and
// pattern operators evaluated against a single file record.
//
// An expression is parsed once per tool call and is immutable afterwards.
// Evaluation is deterministic and side-effect free, so the same tree can be
// evaluated concurrently against many records.
package jsonlogic

import (
	"regexp"

	"github.com/gobwas/glob"
)

// Expr is a node in a parsed query expression tree.
// The three implementations are Literal, Var, and Op.
type Expr interface {
	isExpr()
}

// Literal is a constant JSON value: bool, float64, string, or nil.
type Literal struct {
	Value any
}

func (Literal) isExpr() {}

// Var resolves a named field of the record under evaluation. Only "path"
// and "content" are meaningful field names; any other name resolves to
// Default.
type Var struct {
	Path    string
	Default any
}

func (Var) isExpr() {}

// Op applies a named operator to its operands.
type Op struct {
	Name string
	Args []Expr

	// Patterns that are literal at parse time are compiled once here so a
	// whole-vault scan does not recompile them per file. Evaluation falls
	// back to compiling on demand for hand-built trees and non-literal
	// pattern operands.
	compiledGlob glob.Glob
	compiledRe   *regexp.Regexp
}

func (Op) isExpr() {}

// Operator names understood by the evaluator.
const (
	OpAnd    = "and"
	OpOr     = "or"
	OpNot    = "!"
	OpCast   = "!!"
	OpEq     = "=="
	OpNeq    = "!="
	OpGt     = ">"
	OpGte    = ">="
	OpLt     = "<"
	OpLte    = "<="
	OpGlob   = "glob"
	OpRegexp = "regexp"
)
