// Package mathparser parses textual math expressions into evaluatable trees.
//
// The grammar is intended to match math you'd write in your notes: "2x" is a
// multiplication when implicit multiplication is on, "sin x" applies a
// function to a bare term, and "(2x)^(e^3+4)" nests freely with round or
// square brackets. An expression is parsed once against a declared set of
// variable names and custom function descriptors, then evaluated any number
// of times against an Env holding the variable values.
//
// ParseExtended additionally understands the relational operators =, <, >,
// <= and >= at the top level, producing comparisons that yield the value of
// a satisfied relation, or no result at all when it does not hold.
package mathparser
