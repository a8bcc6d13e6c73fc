package mathparser

import (
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. A Node always
// evaluates to a number (or an evaluation error), unlike a Compare, which may
// hold no result. Nodes are immutable once constructed; the parser is the
// usual producer, but the exported constructors allow building trees
// directly.
type Node struct {
	kind nodeKind

	// val is the literal value of a nodeNum.
	val float64
	// name is the variable name of a nodeVar.
	name string
	// def describes the called function of a nodeCall.
	def FuncDef

	left  *Node
	right *Node
	// args holds the nodeCall argument list in call order.
	args []*Node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push val
	nodeVar // push lookup(name)

	nodeNeg  // negate left
	nodeSin  // sine of left
	nodeCos  // cosine of left
	nodeTan  // tangent of left
	nodeCot  // cotangent of left
	nodeAsin // arcsine of left
	nodeAcos // arccosine of left
	nodeAtan // arctangent of left
	nodeAcot // arccotangent of left
	nodeExp  // e raised to left

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
	nodeLog // logarithm of right in base left

	nodeCall // call def with args
)

var nodeKindNames = [...]string{
	nodeNone: "None",
	nodeNum:  "Num",
	nodeVar:  "Var",
	nodeNeg:  "Neg",
	nodeSin:  "Sin",
	nodeCos:  "Cos",
	nodeTan:  "Tan",
	nodeCot:  "Cot",
	nodeAsin: "Asin",
	nodeAcos: "Acos",
	nodeAtan: "Atan",
	nodeAcot: "Acot",
	nodeExp:  "Exp",
	nodeAdd:  "Add",
	nodeSub:  "Sub",
	nodeMul:  "Mul",
	nodeDiv:  "Div",
	nodePow:  "Pow",
	nodeLog:  "Log",
	nodeCall: "Call",
}

func (k nodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "nodeKind(" + strconv.Itoa(int(k)) + ")"
}

// Number creates a constant node.
func Number(v float64) *Node {
	return &Node{kind: nodeNum, val: v}
}

// Var creates a variable node. Evaluating it looks up name in the Env.
func Var(name string) *Node {
	return &Node{kind: nodeVar, name: name}
}

// E creates the constant e, represented as the natural exponent of 1.
func E() *Node {
	return Exp(Number(1))
}

// Neg creates a negation of n.
func Neg(n *Node) *Node { return &Node{kind: nodeNeg, left: n} }

// Exp creates the natural exponent of n, i.e. e^n.
func Exp(n *Node) *Node { return &Node{kind: nodeExp, left: n} }

// Sin creates the sine of n.
func Sin(n *Node) *Node { return &Node{kind: nodeSin, left: n} }

// Cos creates the cosine of n.
func Cos(n *Node) *Node { return &Node{kind: nodeCos, left: n} }

// Tan creates the tangent of n.
func Tan(n *Node) *Node { return &Node{kind: nodeTan, left: n} }

// Cot creates the cotangent of n.
func Cot(n *Node) *Node { return &Node{kind: nodeCot, left: n} }

// Asin creates the arcsine of n.
func Asin(n *Node) *Node { return &Node{kind: nodeAsin, left: n} }

// Acos creates the arccosine of n.
func Acos(n *Node) *Node { return &Node{kind: nodeAcos, left: n} }

// Atan creates the arctangent of n.
func Atan(n *Node) *Node { return &Node{kind: nodeAtan, left: n} }

// Acot creates the arccotangent of n.
func Acot(n *Node) *Node { return &Node{kind: nodeAcot, left: n} }

// Add creates the sum of l and r.
func Add(l, r *Node) *Node { return &Node{kind: nodeAdd, left: l, right: r} }

// Sub creates the difference of l and r.
func Sub(l, r *Node) *Node { return &Node{kind: nodeSub, left: l, right: r} }

// Mul creates the product of l and r.
func Mul(l, r *Node) *Node { return &Node{kind: nodeMul, left: l, right: r} }

// Div creates the quotient of l by r.
func Div(l, r *Node) *Node { return &Node{kind: nodeDiv, left: l, right: r} }

// Pow creates l raised to r.
func Pow(l, r *Node) *Node { return &Node{kind: nodePow, left: l, right: r} }

// Log creates the logarithm of arg in the given base.
func Log(base, arg *Node) *Node {
	return &Node{kind: nodeLog, left: base, right: arg}
}

// Call creates a call to the function described by def. The number of
// arguments must lie within the descriptor's arity range; otherwise the
// result is nil with a *CallError.
func Call(def FuncDef, args ...*Node) (*Node, error) {
	if !def.CanCall(len(args)) {
		return nil, &CallError{Func: def.Name, Len: len(args)}
	}
	return &Node{kind: nodeCall, def: def, args: append([]*Node(nil), args...)}, nil
}

// isE reports whether n is the constant e, i.e. the natural exponent with
// its default exponent of 1.
func (n *Node) isE() bool {
	return n.kind == nodeExp && n.left.kind == nodeNum && n.left.val == 1
}

// Vars returns the sorted set of variable names the expression uses.
func (n *Node) Vars() []string {
	seen := make(map[string]bool)
	n.vars(seen)
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

func (n *Node) vars(seen map[string]bool) {
	if n == nil {
		return
	}
	if n.kind == nodeVar {
		seen[n.name] = true
	}
	n.left.vars(seen)
	n.right.vars(seen)
	for _, a := range n.args {
		a.vars(seen)
	}
}

// FreeFuncs returns the descriptors of the custom functions the expression
// calls, sorted by name and deduplicated by descriptor compatibility.
func (n *Node) FreeFuncs() []FuncDef {
	var defs []FuncDef
	n.freeFuncs(&defs)
	return defs
}

func (n *Node) freeFuncs(defs *[]FuncDef) {
	if n == nil {
		return
	}
	if n.kind == nodeCall {
		addFuncDef(defs, n.def)
	}
	n.left.freeFuncs(defs)
	n.right.freeFuncs(defs)
	for _, a := range n.args {
		a.freeFuncs(defs)
	}
}

// addFuncDef inserts def into the sorted slice unless a compatible
// descriptor is already present.
func addFuncDef(defs *[]FuncDef, def FuncDef) {
	k := 0
	for ; k < len(*defs); k++ {
		if (*defs)[k].Compatible(def) {
			return
		}
		if (*defs)[k].Name > def.Name {
			break
		}
	}
	*defs = append(*defs, FuncDef{})
	copy((*defs)[k+1:], (*defs)[k:])
	(*defs)[k] = def
}

// String creates a string representation of the node, with alternating round
// and square brackets grouping each term. The text reparses to an equivalent
// tree, though not necessarily to identical text: built-in synonyms like
// sqrt render in their resolved form.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum:
		// The 'f' format keeps the text inside the literal grammar; the
		// exponent forms of 'g' would tokenize as a multiplication by e.
		b.WriteString(strconv.FormatFloat(n.val, 'f', -1, 64))
	case nodeVar:
		b.WriteString(n.name)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeSin, nodeCos, nodeTan, nodeCot, nodeAsin, nodeAcos, nodeAtan, nodeAcot:
		b.WriteString(unaryKeyword[n.kind])
		n.left.fmt(b, !square)
	case nodeExp:
		if n.isE() {
			b.WriteByte('e')
			return
		}
		b.WriteString("e ^ ")
		n.left.fmt(b, !square)
	case nodeAdd:
		n.left.fmt(b, !square)
		b.WriteString(" + ")
		n.right.fmt(b, !square)
	case nodeSub:
		n.left.fmt(b, !square)
		b.WriteString(" - ")
		n.right.fmt(b, !square)
	case nodeMul:
		n.left.fmt(b, !square)
		b.WriteString(" * ")
		n.right.fmt(b, !square)
	case nodeDiv:
		n.left.fmt(b, !square)
		b.WriteString(" / ")
		n.right.fmt(b, !square)
	case nodePow:
		n.left.fmt(b, !square)
		b.WriteString(" ^ ")
		n.right.fmt(b, !square)
	case nodeLog:
		b.WriteString("log")
		var il, ir byte = '(', ')'
		if !square {
			il, ir = '[', ']'
		}
		b.WriteByte(il)
		n.left.fmt(b, square)
		b.WriteString(", ")
		n.right.fmt(b, square)
		b.WriteByte(ir)
	case nodeCall:
		b.WriteString(n.def.Name)
		var il, ir byte = '(', ')'
		if !square {
			il, ir = '[', ']'
		}
		b.WriteByte(il)
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b, square)
		}
		b.WriteByte(ir)
	default:
		panic("mathparser: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// unaryKeyword is the canonical spelling of each fixed-arity unary function.
var unaryKeyword = map[nodeKind]string{
	nodeSin:  "sin",
	nodeCos:  "cos",
	nodeTan:  "tan",
	nodeCot:  "cot",
	nodeAsin: "asin",
	nodeAcos: "acos",
	nodeAtan: "atan",
	nodeAcot: "acot",
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
