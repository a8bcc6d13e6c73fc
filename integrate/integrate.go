// Package integrate approximates definite integrals of parsed expressions.
//
// The routines treat the node as a black-box function of its single
// variable: each sample point binds that variable in a fresh environment
// and evaluates the node. A node using no variables integrates as a
// constant.
package integrate

import (
	"errors"

	mathparser "github.com/Sominemo/math-parser-go"
)

var (
	// ErrSteps is returned when the step count is not positive.
	ErrSteps = errors.New("integrate: step count must be positive")
	// ErrVars is returned when the node depends on more than one variable.
	ErrVars = errors.New("integrate: expression must use at most one variable")
)

// fn adapts a node to a float64 function of its single variable.
func fn(n *mathparser.Node) (func(x float64) (float64, error), error) {
	vars := n.Vars()
	if len(vars) > 1 {
		return nil, ErrVars
	}
	name := ""
	if len(vars) == 1 {
		name = vars[0]
	}
	return func(x float64) (float64, error) {
		env := mathparser.NewEnv()
		if name != "" {
			env.Set(name, x)
		}
		v, _, err := n.Calc(env, nil)
		return v, err
	}, nil
}

// rects sums steps rectangle areas with sample points offset by shift
// steps: 0 samples each interval's left edge, 1 its right edge, and 0.5
// its midpoint.
func rects(n *mathparser.Node, steps int, a, b, shift float64) (float64, error) {
	if steps < 1 {
		return 0, ErrSteps
	}
	f, err := fn(n)
	if err != nil {
		return 0, err
	}
	h := (b - a) / float64(steps)
	sum := 0.0
	for i := 0; i < steps; i++ {
		v, err := f(a + (float64(i)+shift)*h)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum * h, nil
}

// LeftRect approximates the integral of n from a to b with the left
// rectangle rule over the given number of steps.
func LeftRect(n *mathparser.Node, steps int, a, b float64) (float64, error) {
	return rects(n, steps, a, b, 0)
}

// RightRect approximates the integral of n from a to b with the right
// rectangle rule over the given number of steps.
func RightRect(n *mathparser.Node, steps int, a, b float64) (float64, error) {
	return rects(n, steps, a, b, 1)
}

// MidRect approximates the integral of n from a to b with the midpoint
// rectangle rule over the given number of steps.
func MidRect(n *mathparser.Node, steps int, a, b float64) (float64, error) {
	return rects(n, steps, a, b, 0.5)
}

// Trapezoid approximates the integral of n from a to b with the trapezoid
// rule over the given number of steps.
func Trapezoid(n *mathparser.Node, steps int, a, b float64) (float64, error) {
	if steps < 1 {
		return 0, ErrSteps
	}
	f, err := fn(n)
	if err != nil {
		return 0, err
	}
	h := (b - a) / float64(steps)
	lo, err := f(a)
	if err != nil {
		return 0, err
	}
	hi, err := f(b)
	if err != nil {
		return 0, err
	}
	sum := (lo + hi) / 2
	for i := 1; i < steps; i++ {
		v, err := f(a + float64(i)*h)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum * h, nil
}

// Simpson approximates the integral of n from a to b with the composite
// Simpson rule. An odd step count is rounded up to even.
func Simpson(n *mathparser.Node, steps int, a, b float64) (float64, error) {
	if steps < 1 {
		return 0, ErrSteps
	}
	if steps%2 == 1 {
		steps++
	}
	f, err := fn(n)
	if err != nil {
		return 0, err
	}
	h := (b - a) / float64(steps)
	sum, err := f(a)
	if err != nil {
		return 0, err
	}
	end, err := f(b)
	if err != nil {
		return 0, err
	}
	sum += end
	for i := 1; i < steps; i++ {
		v, err := f(a + float64(i)*h)
		if err != nil {
			return 0, err
		}
		if i%2 == 1 {
			sum += 4 * v
		} else {
			sum += 2 * v
		}
	}
	return sum * h / 3, nil
}
