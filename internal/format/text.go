package format

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Portuguese articles and prepositions that stay lowercase inside proper
// names and addresses.
var lowercaseWords = map[string]bool{
	"de": true, "do": true, "da": true, "dos": true, "das": true,
}

// CapitalizeWithPreserve capitalizes each word of text while keeping
// all-caps words (acronyms such as "LED") unchanged and keeping Portuguese
// connectives lowercase unless they start the phrase.
//
//	"rua de oliveira"      → "Rua de Oliveira"
//	"casa LED dos santos"  → "Casa LED dos Santos"
//	"de silva"             → "De Silva"
func CapitalizeWithPreserve(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	words := strings.Split(text, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		// All-caps words longer than one rune are assumed intentional.
		if word == strings.ToUpper(word) && utf8.RuneCountInString(word) > 1 {
			continue
		}
		lower := strings.ToLower(word)
		if i > 0 && lowercaseWords[lower] {
			words[i] = lower
			continue
		}
		r, size := utf8.DecodeRuneInString(lower)
		words[i] = string(unicode.ToUpper(r)) + lower[size:]
	}
	return strings.Join(words, " ")
}

// CleanSpaces trims the text and collapses internal whitespace runs to a
// single space. Blank input yields the empty string.
func CleanSpaces(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}
