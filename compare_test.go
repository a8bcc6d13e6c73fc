package mathparser_test

import (
	"reflect"
	"regexp"
	"testing"

	mathparser "github.com/Sominemo/math-parser-go"
)

func TestParseExtendedPlain(t *testing.T) {
	e, err := mathparser.ParseExtended("2x+1")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := e.(*mathparser.Node); !ok {
		t.Errorf("expression without a relation parsed to %T, want *Node", e)
	}
}

func TestCompareCalc(t *testing.T) {
	cases := []struct {
		name string
		src  string
		x    float64
		v    float64
		ok   bool
	}{
		{"eq-holds", "x=2", 2, 2, true},
		{"eq-fails", "x=2", 3, 0, false},
		{"lt-holds", "1<2", 0, 1, true},
		{"lt-fails", "2<1", 0, 0, false},
		{"gt-holds", "x>1", 5, 5, true},
		{"ge-edge", "2>=2", 0, 2, true},
		{"le-edge", "2<=2", 0, 2, true},
		{"le-fails", "3<=2", 0, 0, false},
		{"chain", "1<2<3", 0, 1, true},
		{"chain-eq", "x=2x-x=8x/2x-x", 2, 2, true},
		{"chain-inner-fails", "1=2=0", 0, 0, false},
		{"sides", "x+1=2x-1", 2, 3, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := mathparser.ParseExtended(c.src)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			v, ok, err := e.Calc(mathparser.ValueOfX(c.x), nil)
			if err != nil {
				t.Fatalf("failed to evaluate %q: %v", c.src, err)
			}
			if ok != c.ok || v != c.v {
				t.Errorf("%q with x=%g gave (%g, %t), want (%g, %t)", c.src, c.x, v, ok, c.v, c.ok)
			}
		})
	}
}

func TestCompareEvaluate(t *testing.T) {
	cases := []struct {
		src string
		v   float64
	}{
		{"1=1", 1},
		{"1=2", 0},
		{"2>1", 1},
		{"1>2", 0},
	}
	for _, c := range cases {
		e, err := mathparser.ParseExtended(c.src)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", c.src, err)
		}
		v, ok, err := e.Evaluate(nil, nil)
		if err != nil || !ok {
			t.Fatalf("%q gave (ok=%t, err=%v)", c.src, ok, err)
		}
		if v != c.v {
			t.Errorf("%q evaluated to %g, want %g", c.src, v, c.v)
		}
	}
}

func TestCompareChainFoldsLeft(t *testing.T) {
	e, err := mathparser.ParseExtended("1=2=3")
	if err != nil {
		t.Fatal(err)
	}
	c, ok := e.(*mathparser.Compare)
	if !ok {
		t.Fatalf("parsed to %T, want *Compare", e)
	}
	if _, ok := c.Left().(*mathparser.Compare); !ok {
		t.Errorf("left of the outer relation is %T, want the inner *Compare", c.Left())
	}
	if _, ok := c.Right().(*mathparser.Node); !ok {
		t.Errorf("right of the outer relation is %T, want *Node", c.Right())
	}
}

func TestCompareOps(t *testing.T) {
	cases := []struct {
		src string
		op  mathparser.CompareOp
	}{
		{"1=2", mathparser.CompareEq},
		{"1>2", mathparser.CompareGt},
		{"1<2", mathparser.CompareLt},
		{"1>=2", mathparser.CompareGe},
		{"1<=2", mathparser.CompareLe},
	}
	for _, c := range cases {
		e, err := mathparser.ParseExtended(c.src)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", c.src, err)
		}
		cmp, ok := e.(*mathparser.Compare)
		if !ok {
			t.Fatalf("%q parsed to %T, want *Compare", c.src, e)
		}
		if cmp.Op() != c.op {
			t.Errorf("%q parsed relation %v, want %v", c.src, cmp.Op(), c.op)
		}
	}
}

func TestParseExtendedErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		res  []string
	}{
		{"no-left", "=x", new(mathparser.OperandError), []string{`=`}},
		{"no-right", "x=", new(mathparser.OperandError), []string{`=`}},
		{"no-left-le", "<=5", new(mathparser.OperandError), []string{`<=`}},
		{"double", "x==2", new(mathparser.OperandError), []string{`=`}},
		{"bad-side", "x=2+", new(mathparser.OperandError), []string{`\+`}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := mathparser.ParseExtended(c.src)
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Fatalf("wrong error type from %q: want %T, got %T (%v)", c.src, c.err, err, err)
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q does not match %s", msg, re)
				}
			}
		})
	}
}

func TestCompareVars(t *testing.T) {
	e, err := mathparser.ParseExtended("x+y=z+x", mathparser.Variables("x", "y", "z"))
	if err != nil {
		t.Fatal(err)
	}
	got := e.Vars()
	want := []string{"x", "y", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Vars gave %v, want %v", got, want)
	}
}

func TestCompareFreeFuncs(t *testing.T) {
	defs := []mathparser.FuncDef{
		{Name: "f", MinArgs: 1, MaxArgs: 1},
		{Name: "g", MinArgs: 1, MaxArgs: 1},
	}
	e, err := mathparser.ParseExtended("f(x)=g(x)", mathparser.Functions(defs...))
	if err != nil {
		t.Fatal(err)
	}
	got := e.FreeFuncs()
	if len(got) != 2 || got[0].Name != "f" || got[1].Name != "g" {
		t.Errorf("FreeFuncs gave %v, want f then g", got)
	}
}

func TestCompareString(t *testing.T) {
	e, err := mathparser.ParseExtended("x <= 2")
	if err != nil {
		t.Fatal(err)
	}
	s := e.String()
	if !regexp.MustCompile(`<=`).MatchString(s) {
		t.Errorf("%q does not render the relation", s)
	}
	r, err := mathparser.ParseExtended(s)
	if err != nil {
		t.Fatalf("%q does not reparse: %v", s, err)
	}
	if _, ok := r.(*mathparser.Compare); !ok {
		t.Errorf("%q reparsed to %T, want *Compare", s, r)
	}
}

func TestCompareConstructors(t *testing.T) {
	c := mathparser.Equals(mathparser.Var("x"), mathparser.Number(2))
	v, ok, err := c.Calc(mathparser.ValueOfX(2), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v != 2 {
		t.Errorf("built relation gave (%g, %t), want (2, true)", v, ok)
	}
}
