package stats

import "github.com/verte-zerg/textstat/internal/model"

// Analyze runs one full update cycle over text. The result depends only on
// text and cfg, so repeated calls with the same input are identical.
func Analyze(text string, cfg model.AnalyzerConfig) model.Report {
	words := WordCount(text)
	return model.Report{
		Chars:          CharCount(text, cfg.ExcludeSpaces),
		Words:          words,
		Sentences:      SentenceCount(text),
		ReadingMinutes: ReadingMinutes(words),
		ReadingTime:    FormatReadingTime(words),
		Density:        LetterDensity(text, cfg.ShowAllLetters),
		Limit:          CheckLimit(text, cfg),
		Config: model.ReportOptions{
			ExcludeSpaces: cfg.ExcludeSpaces,
			ShowAll:       cfg.ShowAllLetters,
		},
	}
}
