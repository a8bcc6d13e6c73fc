package mathparser

import "unicode"

// DetectDefinable scans a raw expression for identifiers that a caller
// could declare before parsing, split into variable and function
// candidates. An identifier immediately followed by an open bracket is a
// function candidate; every other identifier is a variable candidate.
// Built-in function keywords are never reported, since they parse without
// declaration; hideBuiltIns additionally hides the constants e, pi and π
// from the variable candidates.
//
// The scan is a heuristic meant for workflows that parse with implicit
// multiplication off, declaring whatever it reports. With implicit
// multiplication on, a run like "ab" is one candidate here but may parse as
// a product of declared names, so the result is unreliable by design.
func DetectDefinable(src string, hideBuiltIns bool) (vars, funcs []string) {
	seenVar := make(map[string]bool)
	seenFunc := make(map[string]bool)
	rs := []rune(src)
	for i := 0; i < len(rs); i++ {
		if !nameLetter(rs[i]) && rs[i] != '_' {
			continue
		}
		j := i + 1
		for j < len(rs) && identRune(rs[j]) {
			j++
		}
		for j < len(rs) && rs[j] == '\'' {
			j++
		}
		name := string(rs[i:j])
		k := j
		for k < len(rs) && unicode.IsSpace(rs[k]) {
			k++
		}
		isCall := k < len(rs) && (rs[k] == '(' || rs[k] == '[')
		i = j - 1
		if _, ok := builtinFuncs[name]; ok {
			continue
		}
		if isCall {
			seenFunc[name] = true
			continue
		}
		if hideBuiltIns && builtinConsts[name] != nil {
			continue
		}
		seenVar[name] = true
	}
	for name := range seenFunc {
		funcs = append(funcs, name)
		delete(seenVar, name)
	}
	for name := range seenVar {
		vars = append(vars, name)
	}
	sortstrs(vars)
	sortstrs(funcs)
	return vars, funcs
}

func identRune(r rune) bool {
	return nameLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.'
}
