package mathparser_test

import (
	"fmt"

	mathparser "github.com/Sominemo/math-parser-go"
)

func ExampleCalcString() {
	v, err := mathparser.CalcString("2 + 2 * 2", nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 6
}

func ExampleParse() {
	n, err := mathparser.Parse("2x^2 + 1")
	if err != nil {
		panic(err)
	}
	v, _, err := n.Calc(mathparser.ValueOfX(3), nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 19
}

func ExampleParse_functions() {
	mean := func(args []*mathparser.Node, env *mathparser.Env, funcs mathparser.Funcs) (float64, error) {
		sum := 0.0
		for _, a := range args {
			v, _, err := a.Calc(env, funcs)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return sum / float64(len(args)), nil
	}
	def := mathparser.FuncDef{Name: "mean", MinArgs: 1, MaxArgs: 4, Impl: mean}
	n, err := mathparser.Parse("mean(1, 2, 9)", mathparser.Functions(def))
	if err != nil {
		panic(err)
	}
	v, _, err := n.Calc(nil, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 4
}

func ExampleParseExtended() {
	e, err := mathparser.ParseExtended("1 < 2 < 3")
	if err != nil {
		panic(err)
	}
	v, ok, err := e.Calc(nil, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(v, ok)
	// Output: 1 true
}

func ExampleDetectDefinable() {
	vars, funcs := mathparser.DetectDefinable("a*f(b) + pi", true)
	fmt.Println(vars, funcs)
	// Output: [a b] [f]
}

func ExampleNode_Vars() {
	n, err := mathparser.Parse("x^2 + y", mathparser.Variables("x", "y"))
	if err != nil {
		panic(err)
	}
	fmt.Println(n.Vars())
	// Output: [x y]
}
