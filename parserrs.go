package mathparser

import (
	"strconv"
	"strings"
)

// InputError is an error with position information. Every parse error
// caused by the shape of the input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the token that caused it.
	Pos() int
}

// OperandError is an error indicating an operator with a missing operand,
// including a relational operator at either end of an extended expression.
// It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator token.
	Op string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "missing operand for operator "+strconv.Quote(err.Op))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a token or argument list standing where
// a resolved operand is required. It implements InputError.
type TokenError struct {
	// Col is the position of the offending part.
	Col int
	// Text is a rendering of the offending part.
	Text string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "cannot use "+strconv.Quote(err.Text)+" as an operand")
}

func (err *TokenError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	// Col is the position of the function name, when known.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the call supplied.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

// LeftoverError is an error indicating that resolution finished without
// reducing the expression to a single node. It implements InputError.
type LeftoverError struct {
	// Col is the position of the first unreduced part.
	Col int
	// Parts renders the parts that remained.
	Parts []string
}

func (err *LeftoverError) Error() string {
	if len(err.Parts) == 0 {
		return errpos(err.Col, "cannot process empty expression")
	}
	return errpos(err.Col, "cannot process expression, unresolved: "+strings.Join(err.Parts, " "))
}

func (err *LeftoverError) Pos() int {
	return err.Col
}

// CloseBracketError is an error indicating a closing bracket with no
// matching open bracket. It implements InputError.
type CloseBracketError struct {
	// Col is the position of the bracket.
	Col int
	// Bracket is the closing bracket.
	Bracket string
}

func (err *CloseBracketError) Error() string {
	return errpos(err.Col, "unexpected closing bracket "+err.Bracket)
}

func (err *CloseBracketError) Pos() int {
	return err.Col
}

// OpenBracketError is an error indicating an open bracket that is never
// closed. It implements InputError.
type OpenBracketError struct {
	// Col is the position of the bracket.
	Col int
	// End is the position at which input ended.
	End int
	// Bracket is the opening bracket.
	Bracket string
}

func (err *OpenBracketError) Error() string {
	return errpos(err.Col, "open bracket "+err.Bracket+" is never closed (expression ends at "+strconv.Itoa(err.End)+")")
}

func (err *OpenBracketError) Pos() int {
	return err.Col
}

// DepthError is an error indicating that bracket nesting exceeded the
// parser's recursion cap. It implements InputError.
type DepthError struct {
	// Col is the position at which the cap was exceeded.
	Col int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nests deeper than "+strconv.Itoa(maxDepth)+" levels")
}

func (err *DepthError) Pos() int {
	return err.Col
}

// VarNameError is an error indicating an illegal declared variable name.
type VarNameError struct {
	// Name is the rejected name.
	Name string
}

func (err *VarNameError) Error() string {
	return "invalid variable name " + strconv.Quote(err.Name)
}

// FuncNameError is an error indicating an illegal declared function name.
type FuncNameError struct {
	// Name is the rejected name.
	Name string
}

func (err *FuncNameError) Error() string {
	return "invalid function name " + strconv.Quote(err.Name)
}

// DeclError is an error indicating a name declared as both a variable and a
// function.
type DeclError struct {
	// Name is the name declared twice.
	Name string
}

func (err *DeclError) Error() string {
	return strconv.Quote(err.Name) + " is declared as both a variable and a function"
}

// ArgsDeclError is an error indicating a function declared with an
// impossible arity range.
type ArgsDeclError struct {
	// Name is the function name.
	Name string
	// Min and Max are the declared bounds.
	Min, Max int
}

func (err *ArgsDeclError) Error() string {
	return "function " + strconv.Quote(err.Name) + " declares impossible argument range [" +
		strconv.Itoa(err.Min) + ", " + strconv.Itoa(err.Max) + "]"
}

// ParseFailedError wraps an internal failure that is not one of the
// structured parse error kinds.
type ParseFailedError struct {
	// Err is the underlying error.
	Err error
}

func (err *ParseFailedError) Error() string {
	return "parsing failed: " + err.Err.Error()
}

func (err *ParseFailedError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*OperandError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*LeftoverError)(nil)
	_ InputError = (*CloseBracketError)(nil)
	_ InputError = (*OpenBracketError)(nil)
	_ InputError = (*DepthError)(nil)
)
