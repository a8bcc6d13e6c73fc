package mathparser

import "strings"

// Expr   = Span | Expr '(' Expr ')' | Expr '[' Expr ']'
// Span   = { num | word | op | frag }
// Words and numbers resolve to nodes first; functions consume the resolved
// node or argument list to their right; the remaining operator tokens fold
// in fixed priority tiers: unary '-', '^', implicit multiplication, '/' and
// '*', then '-' and '+'.

// maxDepth caps bracket-nesting recursion so pathological input reports a
// DepthError instead of exhausting the stack.
const maxDepth = 64

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	varsopt  []string
	funcsopt []FuncDef
	mulopt   bool
	negopt   bool
)

// parsectx holds general data for parsing.
type parsectx struct {
	// vars is the set of declared variable names.
	vars map[string]bool
	// funcs is the set of declared custom functions, by name.
	funcs map[string]FuncDef
	// vocab is every word the tokenizer may match, longest first.
	vocab []string
	// implicitMul enables folding adjacent resolved nodes into products.
	implicitMul bool
	// negSub rewrites a - b as a + (-b).
	negSub bool
}

// Variables declares variable names for parsing. Options accumulate; when
// no Variables option is given at all, the single variable x is declared.
func Variables(names ...string) ParseOption {
	return varsopt(names)
}

func (o varsopt) parseOption(p parsectx) parsectx {
	if p.vars == nil {
		p.vars = make(map[string]bool, len(o))
	}
	for _, name := range o {
		p.vars[name] = true
	}
	return p
}

// Functions declares custom functions for parsing. A declaration with the
// same name as a built-in keyword shadows the built-in. Redeclaring a name
// keeps the last descriptor.
func Functions(defs ...FuncDef) ParseOption {
	return funcsopt(defs)
}

func (o funcsopt) parseOption(p parsectx) parsectx {
	if p.funcs == nil {
		p.funcs = make(map[string]FuncDef, len(o))
	}
	for _, def := range o {
		p.funcs[def.Name] = def
	}
	return p
}

// ImplicitMultiplication controls whether two adjacent terms multiply
// without an explicit * between them. The default is on.
func ImplicitMultiplication(on bool) ParseOption {
	return mulopt(on)
}

func (o mulopt) parseOption(p parsectx) parsectx {
	p.implicitMul = bool(o)
	return p
}

// MinusAsNegation makes a - b parse as a + (-b) instead of a subtraction
// node. The default is off.
func MinusAsNegation(on bool) ParseOption {
	return negopt(on)
}

func (o negopt) parseOption(p parsectx) parsectx {
	p.negSub = bool(o)
	return p
}

// Parse parses an expression into a node tree. The given options are
// applied in order; declared names are validated before any text is
// scanned.
func Parse(src string, opts ...ParseOption) (*Node, error) {
	p := parsectx{implicitMul: true}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.vars == nil {
		p.vars = map[string]bool{"x": true}
	}
	if err := p.checkDecls(); err != nil {
		return nil, err
	}
	p.buildVocab()
	n, err := p.resolve(src, 1, 0)
	if err != nil {
		return nil, parseErr(err)
	}
	return n, nil
}

// parseErr passes structured parse errors through and wraps anything else.
func parseErr(err error) error {
	if _, ok := err.(InputError); ok {
		return err
	}
	return &ParseFailedError{Err: err}
}

// checkDecls validates the declared variable and function names.
func (p *parsectx) checkDecls() error {
	names := make([]string, 0, len(p.vars))
	for name := range p.vars {
		names = append(names, name)
	}
	sortstrs(names)
	for _, name := range names {
		if !IsNameValid(name, false) {
			return &VarNameError{Name: name}
		}
	}
	names = names[:0]
	for name := range p.funcs {
		names = append(names, name)
	}
	sortstrs(names)
	for _, name := range names {
		def := p.funcs[name]
		if !IsNameValid(name, true) {
			return &FuncNameError{Name: name}
		}
		if def.MinArgs < 0 || def.MinArgs > def.MaxArgs {
			return &ArgsDeclError{Name: name, Min: def.MinArgs, Max: def.MaxArgs}
		}
		if p.vars[name] {
			return &DeclError{Name: name}
		}
	}
	return nil
}

// buildVocab collects every word the tokenizer may match, longest first so
// a short name never matches as a prefix of a longer one.
func (p *parsectx) buildVocab() {
	seen := make(map[string]bool)
	add := func(w string) {
		if !seen[w] {
			seen[w] = true
			p.vocab = append(p.vocab, w)
		}
	}
	for name := range p.vars {
		add(name)
	}
	for name := range p.funcs {
		add(name)
	}
	for name := range builtinFuncs {
		add(name)
	}
	for name := range builtinConsts {
		add(name)
	}
	// Insertion sort, longest first and lexicographic within a length so
	// parses are deterministic.
	v := p.vocab
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && vocabLess(v[j], v[j-1]); j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}

func vocabLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a < b
}

// A part is one element of the resolver's working sequence: an unresolved
// token, a resolved node, or a resolved argument list from a comma-bearing
// bracket group.
type part struct {
	kind partKind
	tok  token
	n    *Node
	// list holds the nodes of a partList, in order. It may be empty for an
	// argument list with no arguments.
	list []*Node
	// pos is the rune position of the part's first rune.
	pos int
}

type partKind int8

const (
	partToken partKind = iota
	partNode
	partList
)

func nodePart(n *Node, pos int) part {
	return part{kind: partNode, n: n, pos: pos}
}

// describe renders a part for error messages.
func (p part) describe() string {
	switch p.kind {
	case partToken:
		return p.tok.text
	case partNode:
		return p.n.String()
	case partList:
		var b strings.Builder
		b.WriteByte('(')
		for i, n := range p.list {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n.String())
		}
		b.WriteByte(')')
		return b.String()
	default:
		return "?"
	}
}

// resolve parses one bracket-delimited or top-level span of the input. pos
// is the rune position of src's first rune; depth counts bracket nesting.
func (p *parsectx) resolve(src string, pos, depth int) (*Node, error) {
	if depth > maxDepth {
		return nil, &DepthError{Col: pos}
	}
	segs, err := splitBrackets(src, pos)
	if err != nil {
		return nil, err
	}
	var parts []part
	for _, seg := range segs {
		if seg.group {
			nodes, err := p.resolveGroup(seg.text, seg.pos, depth+1)
			if err != nil {
				return nil, err
			}
			if len(nodes) == 1 {
				parts = append(parts, nodePart(nodes[0], seg.pos))
			} else {
				parts = append(parts, part{kind: partList, list: nodes, pos: seg.pos})
			}
			continue
		}
		for _, tok := range tokenize(seg.text, p.vocab, seg.pos) {
			if tok.kind == tokenNum {
				parts = append(parts, nodePart(Number(tok.val), tok.pos))
				continue
			}
			parts = append(parts, part{kind: partToken, tok: tok, pos: tok.pos})
		}
	}
	passes := []func([]part) ([]part, error){
		p.passNames,
		p.passFuncs,
		p.passUnaryMinus,
		p.passPow,
		p.passImplicitMul,
		p.passMulDiv,
		p.passAddSub,
	}
	for _, pass := range passes {
		parts, err = pass(parts)
		if err != nil {
			return nil, err
		}
	}
	if len(parts) == 1 && parts[0].kind == partNode {
		return parts[0].n, nil
	}
	left := &LeftoverError{Col: pos}
	if len(parts) > 0 {
		left.Col = parts[0].pos
	}
	for _, q := range parts {
		left.Parts = append(left.Parts, q.describe())
	}
	return nil, left
}

// resolveGroup parses a bracket group body: each top-level comma-separated
// piece parses independently, and pieces that are empty after trimming are
// skipped.
func (p *parsectx) resolveGroup(body string, pos, depth int) ([]*Node, error) {
	nodes := []*Node{}
	for _, piece := range splitTopComma(body, pos) {
		if strings.TrimSpace(piece.text) == "" {
			continue
		}
		n, err := p.resolve(piece.text, piece.pos, depth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// passNames substitutes declared variable names and the built-in constants
// e, pi and π. Declared variables shadow the constants; declared function
// names are left for passFuncs.
func (p *parsectx) passNames(parts []part) ([]part, error) {
	out := make([]part, 0, len(parts))
	for _, q := range parts {
		if q.kind != partToken || q.tok.kind != tokenWord {
			out = append(out, q)
			continue
		}
		name := q.tok.text
		if _, ok := p.funcs[name]; ok {
			out = append(out, q)
			continue
		}
		switch {
		case p.vars[name]:
			out = append(out, nodePart(Var(name), q.pos))
		case builtinConsts[name] != nil:
			out = append(out, nodePart(builtinConsts[name](), q.pos))
		default:
			out = append(out, q)
		}
	}
	return out, nil
}

// passFuncs applies custom and built-in functions to the resolved node or
// argument list immediately to their right.
func (p *parsectx) passFuncs(parts []part) ([]part, error) {
	out := make([]part, 0, len(parts))
	i := 0
	for i < len(parts) {
		q := parts[i]
		if q.kind != partToken || q.tok.kind != tokenWord {
			out = append(out, q)
			i++
			continue
		}
		name := q.tok.text
		def, custom := p.funcs[name]
		bi, isBuiltin := builtinFuncs[name]
		if !custom && !isBuiltin {
			out = append(out, q)
			i++
			continue
		}
		var args []*Node
		switch {
		case i+1 >= len(parts):
			return nil, &CallError{Col: q.pos, Func: name, Len: 0}
		case parts[i+1].kind == partNode:
			args = []*Node{parts[i+1].n}
		case parts[i+1].kind == partList:
			args = parts[i+1].list
		default:
			return nil, &TokenError{Col: parts[i+1].pos, Text: parts[i+1].describe()}
		}
		var n *Node
		if custom {
			c, err := Call(def, args...)
			if err != nil {
				if ce, ok := err.(*CallError); ok {
					ce.Col = q.pos
				}
				return nil, err
			}
			n = c
		} else {
			if len(args) < bi.minArgs || len(args) > bi.maxArgs {
				return nil, &CallError{Col: q.pos, Func: name, Len: len(args)}
			}
			n = bi.build(args)
		}
		out = append(out, nodePart(n, q.pos))
		i += 2
	}
	return out, nil
}

// passUnaryMinus negates the node to the right of any - token that has no
// resolved left operand: one at the start of the sequence or one directly
// following another operator token.
func (p *parsectx) passUnaryMinus(parts []part) ([]part, error) {
	out := make([]part, 0, len(parts))
	for i := 0; i < len(parts); i++ {
		q := parts[i]
		unary := q.kind == partToken && q.tok.text == "-" &&
			(len(out) == 0 || isOpToken(out[len(out)-1]))
		if !unary {
			out = append(out, q)
			continue
		}
		if i+1 >= len(parts) {
			return nil, &OperandError{Col: q.pos, Op: "-"}
		}
		r := parts[i+1]
		if r.kind != partNode {
			return nil, &TokenError{Col: r.pos, Text: r.describe()}
		}
		out = append(out, nodePart(Neg(r.n), q.pos))
		i++
	}
	return out, nil
}

func isOpToken(p part) bool {
	return p.kind == partToken && p.tok.kind == tokenOp
}

// passPow folds ^ pairwise left to right. A base that is the constant e
// folds into the natural exponent of the right operand rather than a
// generic power.
func (p *parsectx) passPow(parts []part) ([]part, error) {
	return foldBinary(parts, func(op string) func(l, r *Node) *Node {
		if op != "^" {
			return nil
		}
		return func(l, r *Node) *Node {
			if l.isE() {
				return Exp(r)
			}
			return Pow(l, r)
		}
	})
}

// passImplicitMul folds adjacent resolved nodes into products in a single
// left-to-right sweep. When implicit multiplication is off, the pass leaves
// the sequence alone and the adjacency surfaces as a LeftoverError.
func (p *parsectx) passImplicitMul(parts []part) ([]part, error) {
	if !p.implicitMul {
		return parts, nil
	}
	out := make([]part, 0, len(parts))
	for _, q := range parts {
		if q.kind == partNode && len(out) > 0 && out[len(out)-1].kind == partNode {
			prev := &out[len(out)-1]
			prev.n = Mul(prev.n, q.n)
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

// passMulDiv folds / and * left to right with equal precedence.
func (p *parsectx) passMulDiv(parts []part) ([]part, error) {
	return foldBinary(parts, func(op string) func(l, r *Node) *Node {
		switch op {
		case "*":
			return Mul
		case "/":
			return Div
		}
		return nil
	})
}

// passAddSub folds - and + left to right with equal precedence.
func (p *parsectx) passAddSub(parts []part) ([]part, error) {
	return foldBinary(parts, func(op string) func(l, r *Node) *Node {
		switch op {
		case "+":
			return Add
		case "-":
			if p.negSub {
				return func(l, r *Node) *Node { return Add(l, Neg(r)) }
			}
			return Sub
		}
		return nil
	})
}

// foldBinary reduces every operator token that sel recognizes, pairing it
// with the resolved nodes on either side. Folding left to right onto the
// output keeps equal-precedence chains left-associative.
func foldBinary(parts []part, sel func(op string) func(l, r *Node) *Node) ([]part, error) {
	out := make([]part, 0, len(parts))
	i := 0
	for i < len(parts) {
		q := parts[i]
		var fold func(l, r *Node) *Node
		if isOpToken(q) {
			fold = sel(q.tok.text)
		}
		if fold == nil {
			out = append(out, q)
			i++
			continue
		}
		if len(out) == 0 || i+1 >= len(parts) {
			return nil, &OperandError{Col: q.pos, Op: q.tok.text}
		}
		l := out[len(out)-1]
		if l.kind != partNode {
			return nil, &TokenError{Col: l.pos, Text: l.describe()}
		}
		r := parts[i+1]
		if r.kind != partNode {
			return nil, &TokenError{Col: r.pos, Text: r.describe()}
		}
		out[len(out)-1] = nodePart(fold(l.n, r.n), l.pos)
		i += 2
	}
	return out, nil
}
