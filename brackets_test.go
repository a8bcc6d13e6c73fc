package mathparser

import (
	"reflect"
	"testing"
)

func TestSplitBrackets(t *testing.T) {
	cases := []struct {
		name string
		src  string
		segs []segment
	}{
		{"plain", "a+b", []segment{
			{text: "a+b", pos: 1},
		}},
		{"group", "(a)", []segment{
			{text: "a", group: true, pos: 2},
		}},
		{"square", "[a]", []segment{
			{text: "a", group: true, pos: 2},
		}},
		{"mixed", "a(b)c", []segment{
			{text: "a", pos: 1},
			{text: "b", group: true, pos: 3},
			{text: "c", pos: 5},
		}},
		{"nested", "(a[b])", []segment{
			{text: "a[b]", group: true, pos: 2},
		}},
		{"adjacent", "(a)(b)", []segment{
			{text: "a", group: true, pos: 2},
			{text: "b", group: true, pos: 5},
		}},
		{"empty-group", "()", []segment{
			{text: "", group: true, pos: 2},
		}},
		{"empty", "", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			segs, err := splitBrackets(c.src, 1)
			if err != nil {
				t.Fatalf("%q failed to split: %v", c.src, err)
			}
			if !reflect.DeepEqual(segs, c.segs) {
				t.Errorf("%q split to %+v, want %+v", c.src, segs, c.segs)
			}
		})
	}
}

func TestSplitBracketsErrors(t *testing.T) {
	t.Run("unclosed", func(t *testing.T) {
		_, err := splitBrackets("a(b", 1)
		oerr, ok := err.(*OpenBracketError)
		if !ok {
			t.Fatalf("got %T (%v), want *OpenBracketError", err, err)
		}
		if oerr.Col != 2 || oerr.End != 4 || oerr.Bracket != "(" {
			t.Errorf("wrong report: %+v", oerr)
		}
	})
	t.Run("stray", func(t *testing.T) {
		_, err := splitBrackets("ab)", 1)
		cerr, ok := err.(*CloseBracketError)
		if !ok {
			t.Fatalf("got %T (%v), want *CloseBracketError", err, err)
		}
		if cerr.Col != 3 || cerr.Bracket != ")" {
			t.Errorf("wrong report: %+v", cerr)
		}
	})
	t.Run("mismatch", func(t *testing.T) {
		_, err := splitBrackets("(a]", 1)
		cerr, ok := err.(*CloseBracketError)
		if !ok {
			t.Fatalf("got %T (%v), want *CloseBracketError", err, err)
		}
		if cerr.Col != 3 || cerr.Bracket != "]" {
			t.Errorf("wrong report: %+v", cerr)
		}
	})
	t.Run("interleaved", func(t *testing.T) {
		_, err := splitBrackets("([)]", 1)
		if _, ok := err.(*CloseBracketError); !ok {
			t.Fatalf("got %T (%v), want *CloseBracketError", err, err)
		}
	})
}

func TestSplitTopComma(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		pieces []segment
	}{
		{"single", "a", []segment{
			{text: "a", pos: 1},
		}},
		{"two", "a,b", []segment{
			{text: "a", pos: 1},
			{text: "b", pos: 3},
		}},
		{"nested", "a,(b,c),d", []segment{
			{text: "a", pos: 1},
			{text: "(b,c)", pos: 3},
			{text: "d", pos: 9},
		}},
		{"empty-piece", "a,,b", []segment{
			{text: "a", pos: 1},
			{text: "", pos: 3},
			{text: "b", pos: 4},
		}},
		{"empty", "", []segment{
			{text: "", pos: 1},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pieces := splitTopComma(c.body, 1)
			if !reflect.DeepEqual(pieces, c.pieces) {
				t.Errorf("%q split to %+v, want %+v", c.body, pieces, c.pieces)
			}
		})
	}
}
