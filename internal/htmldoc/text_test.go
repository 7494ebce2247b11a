package htmldoc

import (
	"strings"
	"testing"
)

func TestJoinWords(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want string
	}{
		{"empty", nil, ""},
		{"collapse", []string{"  fn   abs(e:\n T)  "}, "fn abs(e: T)"},
		{"across fragments", []string{"T is ", "f32", ", ", "i32"}, "T is f32, i32"},
		{"no space before punctuation", []string{"one", ".", "two", ",", "three", ":", "x", ";"}, "one. two, three: x;"},
		{"punctuation first", []string{",", "a"}, ", a"},
		{"non-breaking space", []string{"a\u00a0b"}, "a b"},
		{"attached punctuation stays", []string{"a ,b"}, "a ,b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := JoinWords(tc.in); got != tc.want {
				t.Fatalf("JoinWords(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestJoinWordsIdempotent(t *testing.T) {
	inputs := [][]string{
		{"fn", " textureSample", "(t", ": texture_2d<f32>", " , s: sampler)"},
		{"\tReturns:\n\n", "the", " value", " ."},
		{"e\u0301", " caf", "e\u0301"},
		{"", "   ", ";", ";"},
	}
	for _, in := range inputs {
		once := JoinWords(in)
		twice := JoinWords([]string{once})
		if once != twice {
			t.Fatalf("JoinWords not idempotent for %q: %q then %q", in, once, twice)
		}
		if strings.HasSuffix(once, " ") {
			t.Fatalf("JoinWords(%q) = %q has trailing space", in, once)
		}
	}
}

func TestTexts(t *testing.T) {
	doc := mustParse(t, `<div id="x">fn <b>abs</b>(<var>e</var><!-- c -->: T)</div>`)
	div := doc.ByID("x")
	got := Texts(div)
	want := []string{"fn ", "abs", "(", "e", ": T)"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("Texts = %q, want %q", got, want)
	}
	if Text(div) != "fn abs ( e: T)" {
		t.Fatalf("Text = %q", Text(div))
	}
	first, ok := FirstText(div)
	if !ok || first != "fn " {
		t.Fatalf("FirstText = %q, %v", first, ok)
	}
}

func TestJoinWordsComposesNFC(t *testing.T) {
	if got := JoinWords([]string{"cafe\u0301", "au", "lait"}); got != "caf\u00e9 au lait" {
		t.Fatalf("JoinWords = %q, want composed form", got)
	}
	if got := JoinWords([]string{"vec4<f32>"}); got != "vec4<f32>" {
		t.Fatalf("JoinWords changed ASCII text: %q", got)
	}
}
