package textstat

import (
	"regexp"
	"strings"
)

// blankLines matches the boundary between paragraphs: two or more
// consecutive newline characters. A "blank" line containing spaces does
// not separate paragraphs under this rule.
var blankLines = regexp.MustCompile(`\n{2,}`)

// splitWords tokenizes on runs of Unicode whitespace. Tokens are never
// empty, and punctuation-only tokens are kept on purpose: "..." is a word
// under this policy.
func splitWords(text string) []string {
	return strings.Fields(text)
}

// countSentences splits on runs of sentence-terminal punctuation and
// drops segments that contain no words. Consecutive terminators ("?!",
// "...") collapse into a single boundary.
func countSentences(text string) int {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	count := 0
	for _, seg := range segments {
		if strings.TrimSpace(seg) != "" {
			count++
		}
	}
	return count
}

// splitParagraphs splits on blank lines and drops whitespace-only blocks.
func splitParagraphs(text string) []string {
	blocks := blankLines.Split(text, -1)

	paragraphs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if strings.TrimSpace(block) != "" {
			paragraphs = append(paragraphs, block)
		}
	}
	return paragraphs
}

// countSyllables estimates spoken syllables as the number of maximal vowel
// runs (a, e, i, o, u, either case), floored at 1 for any non-empty word.
// A vowel-group count is an approximation, not a phonetic lookup.
func countSyllables(word string) int {
	groups := 0
	inGroup := false

	for _, r := range word {
		if isVowel(r) {
			if !inGroup {
				groups++
				inGroup = true
			}
			continue
		}
		inGroup = false
	}

	if groups == 0 && word != "" {
		return 1
	}
	return groups
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}
