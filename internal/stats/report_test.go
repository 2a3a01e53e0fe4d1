package stats

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/textstat/internal/model"
)

func TestRenderReport(t *testing.T) {
	report := Analyze("Hello there. General Kenobi!", model.AnalyzerConfig{LimitEnabled: true, LimitInput: "10"})
	var buf bytes.Buffer
	if err := RenderReport(&buf, report, RenderOptions{Title: "sample.txt", Width: 60}); err != nil {
		t.Fatalf("RenderReport failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"sample.txt",
		"Total characters",
		"Word count",
		"04",
		"Sentence count",
		"02",
		"Approx. reading time: 1 minute",
		"Limit reached! Your text exceeds 10 characters.",
		"Letter Density",
		"E",
		"more letters",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderReportNoLetters(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, Analyze("123 456", model.AnalyzerConfig{}), RenderOptions{}); err != nil {
		t.Fatalf("RenderReport failed: %v", err)
	}
	if !strings.Contains(buf.String(), NoLettersMessage) {
		t.Fatalf("expected no letters message, got:\n%s", buf.String())
	}
}

func TestBar(t *testing.T) {
	if got := Bar(50, 10); got != "█████░░░░░" {
		t.Fatalf("unexpected bar %q", got)
	}
	if got := Bar(150, 4); got != "████" {
		t.Fatalf("expected clamped bar, got %q", got)
	}
	if got := Bar(-1, 3); got != "░░░" {
		t.Fatalf("expected empty bar, got %q", got)
	}
	if BarWidthFor(0) != BarWidthFor(terminalWidthBackup) {
		t.Fatalf("expected fallback width")
	}
	if BarWidthFor(5) != minBarWidth {
		t.Fatalf("expected min width")
	}
}

func TestExportReport(t *testing.T) {
	report := Analyze("aabbc", model.AnalyzerConfig{})

	var jsonBuf bytes.Buffer
	if err := ExportReport(&jsonBuf, report, FormatJSON); err != nil {
		t.Fatalf("json export: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(jsonBuf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["words"].(float64) != 1 {
		t.Fatalf("unexpected words in json: %v", decoded["words"])
	}

	var yamlBuf bytes.Buffer
	if err := ExportReport(&yamlBuf, report, FormatYAML); err != nil {
		t.Fatalf("yaml export: %v", err)
	}
	var fromYAML model.Report
	if err := yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if fromYAML.Density.Total != 5 || len(fromYAML.Density.Letters) != 3 {
		t.Fatalf("unexpected density from yaml: %+v", fromYAML.Density)
	}

	if err := ExportReport(&bytes.Buffer{}, report, "xml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
