package mathparser

import "unicode"

// IsNameValid reports whether name is legal for a declared variable, or for
// a custom function when function is true. A name starts with a Latin or
// Greek letter (or an underscore, for functions only), continues with
// letters, digits, underscores and periods, never ends with a period, and
// may carry a trailing run of apostrophes, so names like y' and f'' are
// legal. Variable names must not collide with a built-in function keyword;
// function declarations may shadow one.
func IsNameValid(name string, function bool) bool {
	if !function {
		if _, ok := builtinFuncs[name]; ok {
			return false
		}
	}
	runes := []rune(name)
	// An apostrophe suffix of any length is allowed, but apostrophes may
	// appear nowhere else.
	for len(runes) > 0 && runes[len(runes)-1] == '\'' {
		runes = runes[:len(runes)-1]
	}
	if len(runes) == 0 {
		return false
	}
	if runes[len(runes)-1] == '.' {
		return false
	}
	for i, r := range runes {
		if i == 0 {
			if !nameLetter(r) && !(function && r == '_') {
				return false
			}
			continue
		}
		if !nameLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' {
			return false
		}
	}
	return true
}

// nameLetter reports whether r may carry an identifier: a Latin or Greek
// letter of either case.
func nameLetter(r rune) bool {
	return unicode.Is(unicode.Latin, r) || unicode.Is(unicode.Greek, r)
}
