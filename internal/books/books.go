// Package books finds "Acakki <word>" book headings in page text and builds
// the sorted, deduplicated list of headings for a document.
package books

import (
	"regexp"
	"slices"
)

// Token is the literal that starts every book heading.
const Token = "Acakki"

// headingPattern matches Token at the start of a line followed by horizontal
// whitespace and a single word. \p{Zs} covers the no-break and typographic
// spaces PDF text often carries between words.
var headingPattern = regexp.MustCompile(`(?m)^` + Token + `[\t\v\f\r\p{Zs}]+\w+`)

// Match returns every heading in text, in order of appearance.
func Match(text string) []string {
	if text == "" {
		return nil
	}
	return headingPattern.FindAllString(text, -1)
}

// Set is a deduplicated collection of headings.
type Set map[string]struct{}

// Add inserts every heading found in text and returns how many matches text had.
func (s Set) Add(text string) int {
	matches := Match(text)
	for _, m := range matches {
		s[m] = struct{}{}
	}
	return len(matches)
}

// Sorted returns the headings in ascending code-point order. The result is
// never nil.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// Collect unions the headings of all page texts and returns them sorted.
func Collect(pages []string) []string {
	set := make(Set)
	for _, text := range pages {
		set.Add(text)
	}
	return set.Sorted()
}
