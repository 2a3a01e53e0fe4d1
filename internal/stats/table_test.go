package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Letter", "Count"}
	rows := [][]string{
		{"E", "12 (20.00%)"},
		{"Q", "1 (1.67%)"},
	}
	rightAlign := map[int]bool{1: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Letter       Count" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "E      12 (20.00%)" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Q        1 (1.67%)" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWithoutHeaders(t *testing.T) {
	lines := formatTable(nil, [][]string{{"Word count", "08"}, {"Sentence count", "02"}}, map[int]bool{1: true})
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Word count     08" {
		t.Fatalf("unexpected line: %q", lines[0])
	}
}
