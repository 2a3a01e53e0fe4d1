// Package stats contains text statistics calculations and reporting.
package stats

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordsPerMinute is the reading speed used for reading time estimates.
const WordsPerMinute = 200

// Honorifics whose trailing period does not end a sentence.
var honorificRe = regexp.MustCompile(`(?i)\b(Mr|Mrs|Ms|Dr|Prof|Sr|Jr)\.`)

var terminatorRe = regexp.MustCompile(`[.!?]+`)

// CharCount returns the number of characters in text, optionally ignoring whitespace.
func CharCount(text string, excludeSpaces bool) int {
	if !excludeSpaces {
		return utf8.RuneCountInString(text)
	}
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

// WordCount returns the number of maximal non-whitespace runs in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SentenceCount splits text on runs of sentence terminators and counts the
// non-blank segments. Periods after honorifics such as "Dr." are not treated
// as terminators. An honorific must start a word, so the period in "humdr."
// or "items." still ends a sentence.
func SentenceCount(text string) int {
	clean := honorificRe.ReplaceAllString(text, "$1")
	count := 0
	for _, segment := range terminatorRe.Split(clean, -1) {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	return count
}

// ReadingMinutes returns the estimated reading time in whole minutes, rounded up.
func ReadingMinutes(words int) int {
	if words <= 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// FormatReadingTime renders the reading time for a word count.
func FormatReadingTime(words int) string {
	minutes := ReadingMinutes(words)
	switch minutes {
	case 0:
		return "0 minutes"
	case 1:
		return "1 minute"
	default:
		return fmt.Sprintf("~%d minutes", minutes)
	}
}

// PadCount formats a counter with a leading zero below 10.
func PadCount(n int) string {
	if n >= 0 && n < 10 {
		return fmt.Sprintf("0%d", n)
	}
	return fmt.Sprintf("%d", n)
}
