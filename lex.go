package mathparser

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Operators contains the runes which are considered to be operators.
const Operators = "+-^/*"

type token struct {
	text string
	kind tokenKind
	pos  int
	// val is the parsed value of a tokenNum.
	val float64
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal.
	tokenNum
	// tokenWord is an exact match of a vocabulary word: a declared
	// variable or function name, or a built-in keyword.
	tokenWord
	// tokenOp is a single-character operator.
	tokenOp
	// tokenFrag is a run of characters the scanner does not recognize. It
	// is kept so the resolver can report it instead of silently dropping
	// input.
	tokenFrag
)

var tokenKindNames = [...]string{
	tokenNone: "None",
	tokenNum:  "Num",
	tokenWord: "Word",
	tokenOp:   "Op",
	tokenFrag: "Frag",
}

func (k tokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// tokenize splits a plain span into vocabulary words, numeric literals,
// operators, and opaque fragments. vocab must be sorted longest-first so a
// short name never matches as the prefix of a longer one; matching is
// case-sensitive. Whitespace separates tokens and is otherwise ignored, so
// token positions stay true to the input. pos is the rune position of the
// span's first rune.
func tokenize(span string, vocab []string, pos int) []token {
	src := []rune(span)
	var toks []token
	frag := -1 // start index of the pending fragment, or -1
	flush := func(end int) {
		if frag >= 0 {
			toks = append(toks, token{
				text: string(src[frag:end]),
				kind: tokenFrag,
				pos:  pos + frag,
			})
			frag = -1
		}
	}
	i := 0
	for i < len(src) {
		if unicode.IsSpace(src[i]) {
			flush(i)
			i++
			continue
		}
		if w := matchWord(src[i:], vocab); w != "" {
			flush(i)
			toks = append(toks, token{text: w, kind: tokenWord, pos: pos + i})
			i += len([]rune(w))
			continue
		}
		if '0' <= src[i] && src[i] <= '9' {
			flush(i)
			j := scanNum(src[i:])
			text := string(src[i : i+j])
			v, err := strconv.ParseFloat(text, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				// The scan admits only digits with one interior dot, all
				// of which ParseFloat accepts. Out-of-range literals are
				// fine: ParseFloat clamps them to ±Inf or 0.
				panic("mathparser: invalid number: " + text + " (" + err.Error() + ")")
			}
			toks = append(toks, token{text: text, kind: tokenNum, pos: pos + i, val: v})
			i += j
			continue
		}
		if strings.ContainsRune(Operators, src[i]) {
			flush(i)
			toks = append(toks, token{text: string(src[i]), kind: tokenOp, pos: pos + i})
			i++
			continue
		}
		if frag < 0 {
			frag = i
		}
		i++
	}
	flush(len(src))
	return toks
}

// matchWord returns the longest vocabulary word prefixing src, or "".
func matchWord(src []rune, vocab []string) string {
	s := string(src)
	for _, w := range vocab {
		if strings.HasPrefix(s, w) {
			return w
		}
	}
	return ""
}

// scanNum returns the rune length of the literal \d+(\.\d+)? at the start
// of src. A dot not followed by a digit is left unconsumed.
func scanNum(src []rune) int {
	i := 0
	for i < len(src) && '0' <= src[i] && src[i] <= '9' {
		i++
	}
	if i+1 < len(src) && src[i] == '.' && '0' <= src[i+1] && src[i+1] <= '9' {
		i++
		for i < len(src) && '0' <= src[i] && src[i] <= '9' {
			i++
		}
	}
	return i
}
