package htmldoc

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// JoinWords joins text fragments into one canonical string: whitespace runs become
// a single space, no space is put before a lone ".", ",", ":" or ";", and trailing
// whitespace is dropped. Each word is also put in Unicode NFC form, so a
// decomposed "cafe\u0301" comes back as "café". JoinWords(JoinWords(x)) == JoinWords(x).
func JoinWords(fragments []string) string {
	size := 0
	for _, f := range fragments {
		size += len(f)
	}
	var sb strings.Builder
	sb.Grow(size)
	for _, fragment := range fragments {
		for _, word := range strings.Fields(fragment) {
			if sb.Len() > 0 && !isClosingPunct(word) {
				sb.WriteByte(' ')
			}
			sb.WriteString(norm.NFC.String(word))
		}
	}
	return strings.TrimRightFunc(sb.String(), unicode.IsSpace)
}

func isClosingPunct(word string) bool {
	switch word {
	case ".", ",", ":", ";":
		return true
	}
	return false
}

// Texts returns the text nodes under n in document order.
func Texts(n *html.Node) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			out = append(out, n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return out
}

// Text is the normalized text content of n.
func Text(n *html.Node) string {
	return JoinWords(Texts(n))
}

// FirstText returns the first text fragment under n, verbatim.
func FirstText(n *html.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	if n.Type == html.TextNode {
		return n.Data, true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if s, ok := FirstText(c); ok {
			return s, true
		}
	}
	return "", false
}

// TextContains reports whether the normalized text of n contains sub.
func TextContains(n *html.Node, sub string) bool {
	return strings.Contains(Text(n), sub)
}
