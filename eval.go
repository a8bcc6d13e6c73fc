package mathparser

import (
	"math"
	"strconv"
	"strings"
)

// Expr is a parsed expression: either a *Node, which always has a numeric
// value, or a *Compare, which has one only when its relation holds. The
// second result of Calc and Evaluate is false, with a nil error, when the
// expression holds no result.
type Expr interface {
	// Calc evaluates the expression against env. funcs supplies
	// implementations for freeform functions parsed without one; it may be
	// nil.
	Calc(env *Env, funcs Funcs) (v float64, ok bool, err error)
	// Evaluate is Calc for nodes; for comparisons it yields 1 when the
	// relation holds and 0 when it does not.
	Evaluate(env *Env, funcs Funcs) (v float64, ok bool, err error)
	// Vars returns the sorted set of variable names the expression uses.
	Vars() []string
	// FreeFuncs returns the descriptors of the custom functions the
	// expression calls.
	FreeFuncs() []FuncDef
	// String renders the expression in a reparseable form.
	String() string
}

var (
	_ Expr = (*Node)(nil)
	_ Expr = (*Compare)(nil)
)

// Env is a set of variable bindings for evaluation. The zero value and nil
// are both usable as an empty environment.
type Env struct {
	names map[string]float64
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{names: make(map[string]float64)}
}

// ValueOfX creates an environment binding only the variable x.
func ValueOfX(v float64) *Env {
	return NewEnv().Set("x", v)
}

// Set sets the value of a variable. Returns env for chaining. Env is not
// safe to modify while an evaluation using it is in progress.
func (env *Env) Set(name string, value float64) *Env {
	if env.names == nil {
		env.names = make(map[string]float64)
	}
	env.names[name] = value
	return env
}

// Lookup returns the value of a variable and whether it is bound.
func (env *Env) Lookup(name string) (float64, bool) {
	if env == nil {
		return 0, false
	}
	v, ok := env.names[name]
	return v, ok
}

// Calc evaluates the node against env. The ok result is always true when
// the error is nil; it exists to satisfy Expr.
func (n *Node) Calc(env *Env, funcs Funcs) (float64, bool, error) {
	v, err := n.eval(env, funcs)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// Evaluate is identical to Calc for nodes.
func (n *Node) Evaluate(env *Env, funcs Funcs) (float64, bool, error) {
	return n.Calc(env, funcs)
}

// eval computes the node's value. Arithmetic follows IEEE-754 float64
// semantics: division by zero and out-of-domain arguments produce
// infinities or NaN rather than errors.
func (n *Node) eval(env *Env, funcs Funcs) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeVar:
		v, ok := env.Lookup(n.name)
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		return v, nil
	case nodeCall:
		impl := n.def.Impl
		if impl == nil {
			impl = funcs.implFor(n.def)
		}
		if impl == nil {
			return 0, &FuncError{Def: n.def}
		}
		return impl(n.args, env, funcs)
	}
	l, err := n.left.eval(env, funcs)
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case nodeNeg:
		return -l, nil
	case nodeSin:
		return math.Sin(l), nil
	case nodeCos:
		return math.Cos(l), nil
	case nodeTan:
		return math.Tan(l), nil
	case nodeCot:
		return math.Cos(l) / math.Sin(l), nil
	case nodeAsin:
		return math.Asin(l), nil
	case nodeAcos:
		return math.Acos(l), nil
	case nodeAtan:
		return math.Atan(l), nil
	case nodeAcot:
		return math.Pi/2 - math.Atan(l), nil
	case nodeExp:
		return math.Exp(l), nil
	}
	r, err := n.right.eval(env, funcs)
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		return l / r, nil
	case nodePow:
		return math.Pow(l, r), nil
	case nodeLog:
		return math.Log(r) / math.Log(l), nil
	default:
		panic("mathparser: invalid AST node " + n.kind.String())
	}
}

// CalcString is a shortcut to parse a string expression and evaluate it
// against env.
func CalcString(src string, env *Env, opts ...ParseOption) (float64, error) {
	n, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	v, _, err := n.Calc(env, nil)
	return v, err
}

// NameError is an error from a lookup for a variable that is missing from
// the evaluation environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// FuncError is an error from calling a freeform function for which no
// compatible implementation was available.
type FuncError struct {
	// Def is the descriptor of the function that was called.
	Def FuncDef
}

func (err *FuncError) Error() string {
	var b strings.Builder
	b.WriteString("undefined function: ")
	b.WriteString(strconv.Quote(err.Def.Name))
	b.WriteString(" taking ")
	b.WriteString(strconv.Itoa(err.Def.MinArgs))
	if err.Def.MaxArgs != err.Def.MinArgs {
		b.WriteString(" to ")
		b.WriteString(strconv.Itoa(err.Def.MaxArgs))
	}
	b.WriteString(" arguments")
	return b.String()
}
