// Command mathparser parses, evaluates, inspects and integrates math
// expressions from the command line.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	mathparser "github.com/Sominemo/math-parser-go"
	"github.com/Sominemo/math-parser-go/integrate"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// exprFlags are the parsing options shared by every subcommand.
type exprFlags struct {
	vars       []string
	given      []string
	noImplicit bool
	minusNeg   bool
}

func (f *exprFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.vars, "vars", nil, "declared variable names (default x)")
	cmd.Flags().BoolVar(&f.noImplicit, "no-implicit", false, "disable implicit multiplication")
	cmd.Flags().BoolVar(&f.minusNeg, "minus-neg", false, "treat a-b as a+(-b)")
}

func (f *exprFlags) registerGiven(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.given, "given", nil, "name=value variable binding (any number of times)")
}

func (f *exprFlags) options() []mathparser.ParseOption {
	var opts []mathparser.ParseOption
	if len(f.vars) > 0 {
		opts = append(opts, mathparser.Variables(f.vars...))
	}
	if f.noImplicit {
		opts = append(opts, mathparser.ImplicitMultiplication(false))
	}
	if f.minusNeg {
		opts = append(opts, mathparser.MinusAsNegation(true))
	}
	return opts
}

func (f *exprFlags) env() (*mathparser.Env, error) {
	env := mathparser.NewEnv()
	for _, d := range f.given {
		name, val, ok := strings.Cut(d, "=")
		if !ok {
			return nil, fmt.Errorf("variable bindings must be name=value, not %q", d)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", d, err)
		}
		env.Set(strings.TrimSpace(name), v)
	}
	return env, nil
}

func newRootCommand() *cobra.Command {
	var (
		flags    exprFlags
		extended bool
		echo     bool
	)
	cmd := &cobra.Command{
		Use:   "mathparser [expression...]",
		Short: "Evaluate math expressions",
		Long: `Evaluate math expressions given as arguments, or line by line from
standard input when no arguments are given.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := flags.env()
			if err != nil {
				return err
			}
			eval := func(src string) error {
				var e mathparser.Expr
				var err error
				if extended {
					e, err = mathparser.ParseExtended(src, flags.options()...)
				} else {
					e, err = mathparser.Parse(src, flags.options()...)
				}
				if err != nil {
					return err
				}
				if echo {
					fmt.Printf("%v : ", e)
				}
				v, ok, err := e.Calc(env, nil)
				switch {
				case err != nil:
					return err
				case !ok:
					fmt.Println("no result")
				default:
					fmt.Printf("%g\n", v)
				}
				return nil
			}
			if len(args) > 0 {
				for _, src := range args {
					if err := eval(src); err != nil {
						return err
					}
				}
				return nil
			}
			sc := bufio.NewScanner(os.Stdin)
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				if err := eval(line); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}
			return sc.Err()
		},
	}
	flags.register(cmd)
	flags.registerGiven(cmd)
	cmd.Flags().BoolVar(&extended, "extended", false, "allow =, <, >, <=, >= comparisons")
	cmd.Flags().BoolVar(&echo, "echo", false, "print parse trees before results")
	cmd.AddCommand(newDetectCommand(), newIntegrateCommand())
	return cmd
}

func newDetectCommand() *cobra.Command {
	var hideBuiltIns bool
	cmd := &cobra.Command{
		Use:   "detect <expression>",
		Short: "List definable variable and function names in an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, funcs := mathparser.DetectDefinable(args[0], hideBuiltIns)
			fmt.Println("variables:", strings.Join(vars, " "))
			fmt.Println("functions:", strings.Join(funcs, " "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&hideBuiltIns, "hide-builtins", false, "hide the built-in constants e and pi")
	return cmd
}

func newIntegrateCommand() *cobra.Command {
	var (
		flags  exprFlags
		method string
		steps  int
		from   float64
		to     float64
	)
	methods := map[string]func(*mathparser.Node, int, float64, float64) (float64, error){
		"left":      integrate.LeftRect,
		"right":     integrate.RightRect,
		"mid":       integrate.MidRect,
		"trapezoid": integrate.Trapezoid,
		"simpson":   integrate.Simpson,
	}
	cmd := &cobra.Command{
		Use:          "integrate <expression>",
		Short:        "Approximate a definite integral",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule := methods[method]
			if rule == nil {
				return fmt.Errorf("unknown method %q", method)
			}
			n, err := mathparser.Parse(args[0], flags.options()...)
			if err != nil {
				return err
			}
			v, err := rule(n, steps, from, to)
			if err != nil {
				return err
			}
			fmt.Printf("%g\n", v)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&method, "method", "simpson", "integration rule: left, right, mid, trapezoid, simpson")
	cmd.Flags().IntVar(&steps, "steps", 1000, "number of subdivisions")
	cmd.Flags().Float64Var(&from, "from", 0, "lower bound")
	cmd.Flags().Float64Var(&to, "to", 1, "upper bound")
	return cmd
}
