package mathparser

import "strings"

// CompareOp is the relation a Compare tests.
type CompareOp int8

const (
	CompareEq CompareOp = iota
	CompareGt
	CompareLt
	CompareGe
	CompareLe
)

var compareText = [...]string{
	CompareEq: "=",
	CompareGt: ">",
	CompareLt: "<",
	CompareGe: ">=",
	CompareLe: "<=",
}

func (op CompareOp) String() string {
	if int(op) < len(compareText) {
		return compareText[op]
	}
	return "CompareOp(?)"
}

// Compare is a relational expression over two sub-expressions. Unlike a
// Node it does not always hold a value: Calc yields one only when the
// relation holds.
type Compare struct {
	op    CompareOp
	left  Expr
	right Expr
}

// Equals creates the relation l = r.
func Equals(l, r Expr) *Compare { return &Compare{op: CompareEq, left: l, right: r} }

// GreaterThan creates the relation l > r.
func GreaterThan(l, r Expr) *Compare { return &Compare{op: CompareGt, left: l, right: r} }

// LessThan creates the relation l < r.
func LessThan(l, r Expr) *Compare { return &Compare{op: CompareLt, left: l, right: r} }

// GreaterOrEqual creates the relation l >= r.
func GreaterOrEqual(l, r Expr) *Compare { return &Compare{op: CompareGe, left: l, right: r} }

// LessOrEqual creates the relation l <= r.
func LessOrEqual(l, r Expr) *Compare { return &Compare{op: CompareLe, left: l, right: r} }

// Op returns the relation the comparison tests.
func (c *Compare) Op() CompareOp { return c.op }

// Left returns the left sub-expression.
func (c *Compare) Left() Expr { return c.left }

// Right returns the right sub-expression.
func (c *Compare) Right() Expr { return c.right }

func (c *Compare) holds(l, r float64) bool {
	switch c.op {
	case CompareEq:
		return l == r
	case CompareGt:
		return l > r
	case CompareLt:
		return l < r
	case CompareGe:
		return l >= r
	case CompareLe:
		return l <= r
	default:
		panic("mathparser: invalid comparison " + c.op.String())
	}
}

// Calc evaluates both sides and, when the relation holds, yields the shared
// value for an equality or the left side's value for an inequality. When
// the relation does not hold, or either side holds no result itself, ok is
// false with a nil error.
func (c *Compare) Calc(env *Env, funcs Funcs) (float64, bool, error) {
	l, ok, err := c.left.Calc(env, funcs)
	if err != nil || !ok {
		return 0, false, err
	}
	r, ok, err := c.right.Calc(env, funcs)
	if err != nil || !ok {
		return 0, false, err
	}
	if !c.holds(l, r) {
		return 0, false, nil
	}
	return l, true, nil
}

// Evaluate evaluates both sides and yields 1 when the relation holds and 0
// when it does not. ok is false only when a side holds no result itself.
func (c *Compare) Evaluate(env *Env, funcs Funcs) (float64, bool, error) {
	l, ok, err := c.left.Calc(env, funcs)
	if err != nil || !ok {
		return 0, false, err
	}
	r, ok, err := c.right.Calc(env, funcs)
	if err != nil || !ok {
		return 0, false, err
	}
	if c.holds(l, r) {
		return 1, true, nil
	}
	return 0, true, nil
}

// Vars returns the sorted union of the variable names used on both sides.
func (c *Compare) Vars() []string {
	names := c.left.Vars()
	for _, name := range c.right.Vars() {
		names = append(names, name)
	}
	sortstrs(names)
	out := names[:0]
	for i, name := range names {
		if i == 0 || name != names[i-1] {
			out = append(out, name)
		}
	}
	return out
}

// FreeFuncs returns the union of the custom function descriptors used on
// both sides.
func (c *Compare) FreeFuncs() []FuncDef {
	defs := c.left.FreeFuncs()
	for _, def := range c.right.FreeFuncs() {
		addFuncDef(&defs, def)
	}
	return defs
}

// String renders the comparison.
func (c *Compare) String() string {
	var b strings.Builder
	b.WriteString(c.left.String())
	b.WriteByte(' ')
	b.WriteString(c.op.String())
	b.WriteByte(' ')
	b.WriteString(c.right.String())
	return b.String()
}

// ParseExtended parses an expression that may compare sub-expressions with
// =, <, >, <= or >= at its top level. Without a relational operator the
// result is the same as Parse. Chains fold left: a=b=c parses as
// (a=b)=c, where the inner comparison's result, when it holds, becomes the
// left operand of the outer one. Relational operators inside brackets are
// not comparisons; they fail the core grammar instead.
func ParseExtended(src string, opts ...ParseOption) (Expr, error) {
	sides, ops := splitRelational(src)
	if len(ops) == 0 {
		return Parse(src, opts...)
	}
	if strings.TrimSpace(sides[0].text) == "" {
		return nil, &OperandError{Col: ops[0].pos, Op: ops[0].text}
	}
	e, err := parseSide(sides[0], opts)
	if err != nil {
		return nil, err
	}
	for k, op := range ops {
		side := sides[k+1]
		if strings.TrimSpace(side.text) == "" {
			return nil, &OperandError{Col: op.pos, Op: op.text}
		}
		r, err := parseSide(side, opts)
		if err != nil {
			return nil, err
		}
		switch op.text {
		case "=":
			e = Equals(e, r)
		case ">":
			e = GreaterThan(e, r)
		case "<":
			e = LessThan(e, r)
		case ">=":
			e = GreaterOrEqual(e, r)
		case "<=":
			e = LessOrEqual(e, r)
		}
	}
	return e, nil
}

func parseSide(side segment, opts []ParseOption) (Expr, error) {
	n, err := Parse(side.text, opts...)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// splitRelational splits src at top-level relational operators. Bracketed
// text is skipped, not validated; the per-side parses report imbalance.
func splitRelational(src string) ([]segment, []token) {
	var sides []segment
	var ops []token
	depth := 0
	col := 1
	start := 0
	startCol := 1
	rs := []rune(src)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case strings.IndexRune(OpenBrackets, r) >= 0:
			depth++
		case strings.IndexRune(CloseBrackets, r) >= 0:
			depth--
		case depth == 0 && (r == '=' || r == '<' || r == '>'):
			text := string(r)
			if (r == '<' || r == '>') && i+1 < len(rs) && rs[i+1] == '=' {
				text += "="
			}
			sides = append(sides, segment{text: string(rs[start:i]), pos: startCol})
			ops = append(ops, token{text: text, pos: col})
			i += len(text) - 1
			col += len(text) - 1
			start = i + 1
			startCol = col + 1
		}
		col++
	}
	sides = append(sides, segment{text: string(rs[start:]), pos: startCol})
	return sides, ops
}
