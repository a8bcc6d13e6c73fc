package mathparser

import "strings"

// OpenBrackets and CloseBrackets contain the runes which group expressions.
// A bracket in byte position k of OpenBrackets is matched with the bracket
// in byte position k of CloseBrackets. Both kinds group identically; square
// brackets exist as an alternate spelling.
const (
	OpenBrackets  = "(["
	CloseBrackets = ")]"
)

// segment is one piece of a raw expression at a single nesting level:
// either a plain span with no top-level brackets, or the body of a matched
// top-level bracket group.
type segment struct {
	// text is the span text, or the text strictly inside the brackets.
	text string
	// group indicates a bracket group.
	group bool
	// pos is the rune position of the segment's first rune; for a group,
	// of its first inner rune.
	pos int
}

// splitBrackets partitions src into plain spans and top-level bracket
// groups with a single left-to-right scan. pos is the rune position of the
// first rune of src in the whole input, used for error reporting. Empty
// plain spans are not emitted.
func splitBrackets(src string, pos int) ([]segment, error) {
	var segs []segment
	var stack []int
	col := pos
	start := 0    // byte offset of the current span or group body
	startCol := pos
	openCol := 0 // rune position of the outermost open bracket
	for i, r := range src {
		switch {
		case strings.IndexRune(OpenBrackets, r) >= 0:
			k := strings.IndexRune(OpenBrackets, r)
			if len(stack) == 0 {
				if i > start {
					segs = append(segs, segment{text: src[start:i], pos: startCol})
				}
				start = i + len(string(r))
				startCol = col + 1
				openCol = col
			}
			stack = append(stack, k)
		case strings.IndexRune(CloseBrackets, r) >= 0:
			k := strings.IndexRune(CloseBrackets, r)
			if len(stack) == 0 || stack[len(stack)-1] != k {
				return nil, &CloseBracketError{Bracket: CloseBrackets[k : k+1], Col: col}
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				segs = append(segs, segment{text: src[start:i], group: true, pos: startCol})
				start = i + 1
				startCol = col + 1
			}
		}
		col++
	}
	if len(stack) > 0 {
		k := stack[0]
		return nil, &OpenBracketError{Bracket: OpenBrackets[k : k+1], Col: openCol, End: col}
	}
	if len(src) > start {
		segs = append(segs, segment{text: src[start:], pos: startCol})
	}
	return segs, nil
}

// splitTopComma splits a bracket group body on its top-level commas. The
// body's own brackets are skipped over, not validated; the recursive parse
// of each piece reports any imbalance.
func splitTopComma(body string, pos int) []segment {
	var pieces []segment
	depth := 0
	col := pos
	start := 0
	startCol := pos
	for i, r := range body {
		switch {
		case strings.IndexRune(OpenBrackets, r) >= 0:
			depth++
		case strings.IndexRune(CloseBrackets, r) >= 0:
			depth--
		case r == ',' && depth == 0:
			pieces = append(pieces, segment{text: body[start:i], pos: startCol})
			start = i + 1
			startCol = col + 1
		}
		col++
	}
	pieces = append(pieces, segment{text: body[start:], pos: startCol})
	return pieces
}
