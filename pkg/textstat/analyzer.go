/*
Package textstat computes descriptive statistics and a readability score for
arbitrary text. Analyze is a pure function: it performs no I/O, keeps no
state between calls, and is safe to call from any number of goroutines.

The segmentation and syllable rules are deliberately simple heuristics.
Abbreviations ("Mr.") terminate sentences and silent-e words gain a
syllable; these are fixed policies so output stays reproducible, not
defects to be corrected with a smarter tokenizer.
*/
package textstat

import (
	"unicode"
	"unicode/utf8"
)

// DefaultWordsPerMinute is the reading rate assumed when no rate is
// configured.
const DefaultWordsPerMinute = 200

// Flesch Reading Ease coefficients.
const (
	fleschBase      = 206.835
	fleschSentence  = 1.015
	fleschSyllables = 84.6
)

// Config carries the per-call tuning knobs. The zero value selects all
// defaults, so callers without preferences can pass Config{}.
type Config struct {
	// WordsPerMinute is the assumed reading rate used for the reading
	// time estimate. Values <= 0 fall back to DefaultWordsPerMinute.
	WordsPerMinute int `json:"words_per_minute"`
}

func (cfg Config) wordsPerMinute() int {
	if cfg.WordsPerMinute > 0 {
		return cfg.WordsPerMinute
	}
	return DefaultWordsPerMinute
}

// Metrics is the result of analyzing one text. It is a value, produced
// once and never mutated afterwards.
type Metrics struct {
	// CharacterCount is the number of Unicode code points, whitespace
	// included.
	CharacterCount int `json:"character_count"`
	// CharacterCountNoSpaces excludes all whitespace code points.
	CharacterCountNoSpaces int `json:"character_count_no_spaces"`
	// WordCount is the number of whitespace-separated tokens.
	// Punctuation-only tokens count as words.
	WordCount int `json:"word_count"`
	// SentenceCount is floored at 1 whenever WordCount > 0 so downstream
	// ratios stay defined.
	SentenceCount int `json:"sentence_count"`
	// ParagraphCount is the number of blank-line separated blocks.
	ParagraphCount int `json:"paragraph_count"`
	// AverageWordLength is CharacterCountNoSpaces / WordCount.
	AverageWordLength float64 `json:"average_word_length"`
	// AverageSentenceLength is WordCount / SentenceCount.
	AverageSentenceLength float64 `json:"average_sentence_length"`
	// ReadabilityScore is the raw Flesch Reading Ease value. It is not
	// clamped; values outside [0, 100] mean very easy or very hard text
	// and clamping for display is the caller's concern. Empty input
	// yields the 0 sentinel.
	ReadabilityScore float64 `json:"readability_score"`
	// EstimatedReadingTimeSeconds is WordCount / wpm * 60.
	EstimatedReadingTimeSeconds float64 `json:"estimated_reading_time_seconds"`
}

/*
Analyze maps text to its Metrics. Every string is valid input; empty or
whitespace-only text produces all-zero metrics rather than an error.
Identical text and config always produce identical output.
*/
func Analyze(text string, cfg Config) Metrics {
	var m Metrics

	m.CharacterCount = utf8.RuneCountInString(text)

	for _, r := range text {
		if !unicode.IsSpace(r) {
			m.CharacterCountNoSpaces++
		}
	}

	words := splitWords(text)
	m.WordCount = len(words)
	m.SentenceCount = countSentences(text)
	m.ParagraphCount = len(splitParagraphs(text))

	// Every ratio guards its divisor; no string can produce NaN.
	if m.WordCount > 0 {
		if m.SentenceCount == 0 {
			m.SentenceCount = 1
		}

		m.AverageWordLength = float64(m.CharacterCountNoSpaces) / float64(m.WordCount)
		m.AverageSentenceLength = float64(m.WordCount) / float64(m.SentenceCount)

		totalSyllables := 0
		for _, word := range words {
			totalSyllables += countSyllables(word)
		}
		avgSyllables := float64(totalSyllables) / float64(m.WordCount)

		m.ReadabilityScore = fleschBase -
			fleschSentence*m.AverageSentenceLength -
			fleschSyllables*avgSyllables

		m.EstimatedReadingTimeSeconds = float64(m.WordCount) /
			float64(cfg.wordsPerMinute()) * 60
	}

	return m
}
