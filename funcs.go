package mathparser

import "math"

// Impl evaluates a custom function. The arguments are passed as unevaluated
// nodes so that an implementation may inspect them or evaluate them against
// env (possibly several times, as an integration routine would). funcs is
// the implementation table the surrounding Calc was invoked with, so nested
// freeform calls inside the arguments keep resolving.
type Impl func(args []*Node, env *Env, funcs Funcs) (float64, error)

// FuncDef describes a custom function: a name and an inclusive range of
// accepted argument counts, plus an optional implementation. A definition
// without an implementation can still be parsed; evaluation then looks the
// implementation up in the table passed to Calc.
type FuncDef struct {
	Name    string
	MinArgs int
	MaxArgs int
	Impl    Impl
}

// CanCall reports whether the function accepts n arguments.
func (d FuncDef) CanCall(n int) bool {
	return d.MinArgs <= n && n <= d.MaxArgs
}

// Compatible reports whether two descriptors name the same function: equal
// names and equal arity ranges. Implementations are not compared.
func (d FuncDef) Compatible(o FuncDef) bool {
	return d.Name == o.Name && d.MinArgs == o.MinArgs && d.MaxArgs == o.MaxArgs
}

// Funcs is a table of function definitions. It serves both to declare the
// parsing vocabulary and to supply implementations at evaluation time.
type Funcs []FuncDef

// implFor returns the first implementation compatible with def, or nil.
func (fs Funcs) implFor(def FuncDef) Impl {
	for _, d := range fs {
		if d.Impl != nil && d.Compatible(def) {
			return d.Impl
		}
	}
	return nil
}

// builtin describes a built-in bracket function keyword.
type builtin struct {
	minArgs, maxArgs int
	build            func(args []*Node) *Node
}

func monadic(f func(*Node) *Node) builtin {
	return builtin{1, 1, func(args []*Node) *Node { return f(args[0]) }}
}

func fixedLog(base float64) builtin {
	return monadic(func(n *Node) *Node { return Log(Number(base), n) })
}

func sqrtNode(n *Node) *Node { return Pow(n, Number(0.5)) }

// builtinFuncs maps every built-in function keyword, synonyms included, to
// its node constructor. The table is never mutated after startup.
var builtinFuncs = map[string]builtin{
	"sin":    monadic(Sin),
	"cos":    monadic(Cos),
	"tan":    monadic(Tan),
	"tg":     monadic(Tan),
	"cot":    monadic(Cot),
	"ctg":    monadic(Cot),
	"sqrt":   monadic(sqrtNode),
	"√":      monadic(sqrtNode),
	"asin":   monadic(Asin),
	"arcsin": monadic(Asin),
	"acos":   monadic(Acos),
	"arccos": monadic(Acos),
	"atan":   monadic(Atan),
	"arctg":  monadic(Atan),
	"acot":   monadic(Acot),
	"arcctg": monadic(Acot),
	"ln":     fixedLog(math.E),
	"lg":     fixedLog(2),
	"log": {1, 2, func(args []*Node) *Node {
		if len(args) == 2 {
			return Log(args[0], args[1])
		}
		return Log(Number(10), args[0])
	}},
}

// builtinConsts maps the built-in constant keywords to their nodes. Declared
// variable names shadow these.
var builtinConsts = map[string]func() *Node{
	"e":  E,
	"pi": func() *Node { return Number(math.Pi) },
	"π":  func() *Node { return Number(math.Pi) },
}
