package stats

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/verte-zerg/textstat/internal/model"
)

func TestAnalyze(t *testing.T) {
	cfg := model.AnalyzerConfig{ExcludeSpaces: true, LimitEnabled: true, LimitInput: "20"}
	report := Analyze("Dr. Smith went home. He left.", cfg)
	if report.Chars != 24 {
		t.Fatalf("expected 24 chars, got %d", report.Chars)
	}
	if report.Words != 6 || report.Sentences != 2 {
		t.Fatalf("unexpected words/sentences: %d/%d", report.Words, report.Sentences)
	}
	if report.ReadingTime != "1 minute" || report.ReadingMinutes != 1 {
		t.Fatalf("unexpected reading time %q", report.ReadingTime)
	}
	if !report.Limit.Reached || report.Limit.Cap != 20 {
		t.Fatalf("expected limit reached at cap 20, got %+v", report.Limit)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	cfg := model.AnalyzerConfig{LimitEnabled: true, LimitInput: "7", ShowAllLetters: true}
	text := "The quick brown fox jumps over the lazy dog."
	first := Analyze(text, cfg)
	second := Analyze(text, cfg)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reports differ:\n%+v\n%+v", first, second)
	}

	var a, b bytes.Buffer
	if err := RenderReport(&a, first, RenderOptions{Width: 80}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := RenderReport(&b, second, RenderOptions{Width: 80}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if a.String() != b.String() {
		t.Fatalf("rendered output differs")
	}
}

func TestAnalyzeTotalOnOddInput(t *testing.T) {
	inputs := []string{"", "   ", "\x00\x1b[31;1", "\x00\x07\x7f", string([]byte{0xff, 0xfe}), "...", "\n\n\n"}
	for _, text := range inputs {
		report := Analyze(text, model.AnalyzerConfig{LimitEnabled: true, LimitInput: "x"})
		if report.Limit.Cap != DefaultLimit {
			t.Fatalf("%q: expected default cap, got %d", text, report.Limit.Cap)
		}
		if report.Density.Total != 0 {
			t.Fatalf("%q: expected no letters, got %d", text, report.Density.Total)
		}
	}
	if got := Analyze("\x00\x1b[31m", model.AnalyzerConfig{}).Density.Total; got != 1 {
		t.Fatalf("expected the escape sequence letter to count once, got %d", got)
	}
}
