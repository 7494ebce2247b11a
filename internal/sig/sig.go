// Package sig works on builtin signatures kept as normalized strings.
// Signatures are never parsed into a tree; the tokenizer only finds keyword
// anchors such as `fn`.
package sig

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokens yields the tokens of s: maximal runs of [0-9a-zA-Z_@], or a single
// other character. Whitespace between tokens is skipped. Each call starts over.
func Tokens(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := s
		for {
			rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
			if rest == "" {
				return
			}
			i := 0
			for i < len(rest) && isIdentByte(rest[i]) {
				i++
			}
			if i == 0 {
				_, i = utf8.DecodeRuneInString(rest)
			}
			if !yield(rest[:i]) {
				return
			}
			rest = rest[i:]
		}
	}
}

// Tokenize collects Tokens(s).
func Tokenize(s string) []string {
	var out []string
	for tok := range Tokens(s) {
		out = append(out, tok)
	}
	return out
}

func isIdentByte(b byte) bool {
	return b >= '0' && b <= '9' ||
		b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b == '_' || b == '@'
}

// FunctionName returns the token that follows the first `fn` in s.
func FunctionName(s string) (string, bool) {
	afterFn := false
	for tok := range Tokens(s) {
		if afterFn {
			return tok, true
		}
		afterFn = tok == "fn"
	}
	return "", false
}

// Split cuts text holding several concatenated declarations into one string per
// `fn` declaration. Each piece runs up to the next "fn" or "struct"; text that
// does not start with "fn" (for instance a trailing struct) ends the scan.
func Split(text string) []string {
	var out []string
	rest := strings.TrimLeftFunc(text, unicode.IsSpace)
	for strings.HasPrefix(rest, "fn") {
		end := 1
		for end < len(rest) && !strings.HasPrefix(rest[end:], "fn") && !strings.HasPrefix(rest[end:], "struct") {
			end++
		}
		if piece := strings.TrimSpace(rest[:end]); piece != "" {
			out = append(out, piece)
		}
		rest = rest[end:]
	}
	return out
}

// TightenGenerics removes the spaces that text extraction leaves around generic
// brackets: "vec < T >" becomes "vec<T>".
func TightenGenerics(s string) string {
	s = strings.ReplaceAll(s, " < ", "<")
	return strings.ReplaceAll(s, " >", ">")
}
