package integrate_test

import (
	"errors"
	"math"
	"testing"

	mathparser "github.com/Sominemo/math-parser-go"
	"github.com/Sominemo/math-parser-go/integrate"
)

type rule func(n *mathparser.Node, steps int, a, b float64) (float64, error)

var rules = map[string]rule{
	"left":      integrate.LeftRect,
	"right":     integrate.RightRect,
	"mid":       integrate.MidRect,
	"trapezoid": integrate.Trapezoid,
	"simpson":   integrate.Simpson,
}

func parse(t *testing.T, src string) *mathparser.Node {
	t.Helper()
	n, err := mathparser.Parse(src)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", src, err)
	}
	return n
}

func TestRulesConverge(t *testing.T) {
	cases := []struct {
		name string
		src  string
		a, b float64
		want float64
	}{
		{"linear", "2x", 0, 1, 1},
		{"quadratic", "3x^2", 0, 2, 8},
		{"cosine", "cos(x)", 0, math.Pi / 2, 1},
		{"exp", "e^x", 0, 1, math.E - 1},
		{"constant", "2", 0, 3, 6},
		{"reversed", "x", 1, 0, -0.5},
	}
	for _, c := range cases {
		n := parse(t, c.src)
		for name, r := range rules {
			t.Run(c.name+"/"+name, func(t *testing.T) {
				v, err := r(n, 10000, c.a, c.b)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(v-c.want) > 1e-2 {
					t.Errorf("integral of %q over [%g, %g] came to %g, want %g", c.src, c.a, c.b, v, c.want)
				}
			})
		}
	}
}

func TestMidpointExactForLinear(t *testing.T) {
	n := parse(t, "x")
	v, err := integrate.MidRect(n, 4, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v-0.5) > 1e-12 {
		t.Errorf("midpoint rule on a linear integrand came to %g, want 0.5", v)
	}
}

func TestSimpsonExactForCubic(t *testing.T) {
	n := parse(t, "x^3")
	v, err := integrate.Simpson(n, 2, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v-0.25) > 1e-12 {
		t.Errorf("Simpson on a cubic came to %g, want 0.25", v)
	}
}

func TestSimpsonOddSteps(t *testing.T) {
	n := parse(t, "x^2")
	odd, err := integrate.Simpson(n, 3, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	even, err := integrate.Simpson(n, 4, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if odd != even {
		t.Errorf("odd step count did not round up: %g versus %g", odd, even)
	}
}

func TestConstantWithoutVariable(t *testing.T) {
	n := parse(t, "pi")
	v, err := integrate.LeftRect(n, 10, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v-2*math.Pi) > 1e-12 {
		t.Errorf("constant integrand came to %g, want %g", v, 2*math.Pi)
	}
}

func TestOtherVariableName(t *testing.T) {
	n, err := mathparser.Parse("2t", mathparser.Variables("t"))
	if err != nil {
		t.Fatal(err)
	}
	v, err := integrate.Trapezoid(n, 100, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v-1) > 1e-12 {
		t.Errorf("integrand in t came to %g, want 1", v)
	}
}

func TestBadSteps(t *testing.T) {
	n := parse(t, "x")
	for name, r := range rules {
		if _, err := r(n, 0, 0, 1); !errors.Is(err, integrate.ErrSteps) {
			t.Errorf("%s with zero steps gave %v, want ErrSteps", name, err)
		}
	}
}

func TestTooManyVariables(t *testing.T) {
	n, err := mathparser.Parse("x+y", mathparser.Variables("x", "y"))
	if err != nil {
		t.Fatal(err)
	}
	for name, r := range rules {
		if _, err := r(n, 10, 0, 1); !errors.Is(err, integrate.ErrVars) {
			t.Errorf("%s with two variables gave %v, want ErrVars", name, err)
		}
	}
}

func TestEvalErrorPropagates(t *testing.T) {
	def := mathparser.FuncDef{Name: "f", MinArgs: 1, MaxArgs: 1}
	n, err := mathparser.Parse("f(x)", mathparser.Functions(def))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := integrate.Simpson(n, 10, 0, 1); err == nil {
		t.Error("unimplemented function did not stop the integration")
	}
}
