package stats

import (
	"fmt"
	"sort"
	"unicode"

	"github.com/verte-zerg/textstat/internal/model"
)

// TopLetters is the number of histogram rows shown while collapsed.
const TopLetters = 5

// LetterDensity counts A-Z letters case-insensitively and orders them by
// frequency, most frequent first. Ties are broken alphabetically.
func LetterDensity(text string, showAll bool) model.Density {
	var counts [26]int
	total := 0
	for _, r := range text {
		up := unicode.ToUpper(r)
		if up < 'A' || up > 'Z' {
			continue
		}
		counts[up-'A']++
		total++
	}

	density := model.Density{Total: total, Expanded: showAll}
	if total == 0 {
		return density
	}

	letters := make([]model.LetterCount, 0, len(counts))
	for i, c := range counts {
		if c == 0 {
			continue
		}
		letters = append(letters, model.LetterCount{
			Letter:  string(rune('A' + i)),
			Count:   c,
			Percent: float64(c) / float64(total) * 100,
		})
	}
	sort.SliceStable(letters, func(i, j int) bool {
		if letters[i].Count == letters[j].Count {
			return letters[i].Letter < letters[j].Letter
		}
		return letters[i].Count > letters[j].Count
	})

	density.Letters = letters
	density.HasMore = len(letters) > TopLetters
	density.Visible = letters
	if !showAll && len(letters) > TopLetters {
		density.Visible = letters[:TopLetters]
	}
	return density
}

// FormatPercent renders a percentage with two decimals.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f", p)
}

// DensityCaption renders the "count (pct%)" caption of a histogram row.
func DensityCaption(lc model.LetterCount) string {
	return fmt.Sprintf("%d (%s%%)", lc.Count, FormatPercent(lc.Percent))
}

// ExpandLabel returns the label of the see more / see less control.
func ExpandLabel(expanded bool) string {
	if expanded {
		return "see less"
	}
	return "see more"
}
