package stats

import (
	"math"
	"testing"
)

func TestLetterDensityCounts(t *testing.T) {
	d := LetterDensity("aabbc", false)
	if d.Total != 5 {
		t.Fatalf("expected total 5, got %d", d.Total)
	}
	want := []struct {
		letter string
		count  int
	}{{"A", 2}, {"B", 2}, {"C", 1}}
	if len(d.Letters) != len(want) {
		t.Fatalf("expected %d letters, got %d", len(want), len(d.Letters))
	}
	sum := 0.0
	for i, w := range want {
		if d.Letters[i].Letter != w.letter || d.Letters[i].Count != w.count {
			t.Fatalf("letter %d: got %+v, want %s:%d", i, d.Letters[i], w.letter, w.count)
		}
		sum += d.Letters[i].Percent
	}
	if math.Abs(sum-100) > 0.01 {
		t.Fatalf("percentages sum to %.4f", sum)
	}
	if d.HasMore {
		t.Fatalf("did not expect see more with 3 letters")
	}
}

func TestLetterDensityIgnoresNonLetters(t *testing.T) {
	d := LetterDensity("123 !? éÀ ñ\n\t", false)
	if d.Total != 0 {
		t.Fatalf("expected no letters, got %d", d.Total)
	}
	if len(d.Visible) != 0 || d.HasMore {
		t.Fatalf("expected empty histogram, got %+v", d)
	}
}

func TestLetterDensityCaseInsensitive(t *testing.T) {
	d := LetterDensity("aA", false)
	if len(d.Letters) != 1 || d.Letters[0].Letter != "A" || d.Letters[0].Count != 2 {
		t.Fatalf("unexpected letters: %+v", d.Letters)
	}
}

func TestLetterDensityTopFive(t *testing.T) {
	text := "zzzzzz yyyyy xxxx www vv u"
	collapsed := LetterDensity(text, false)
	if !collapsed.HasMore {
		t.Fatalf("expected see more with 6 letters")
	}
	if len(collapsed.Visible) != TopLetters {
		t.Fatalf("expected %d visible letters, got %d", TopLetters, len(collapsed.Visible))
	}
	if collapsed.Visible[0].Letter != "Z" || collapsed.Visible[4].Letter != "V" {
		t.Fatalf("unexpected order: %+v", collapsed.Visible)
	}

	expanded := LetterDensity(text, true)
	if len(expanded.Visible) != 6 {
		t.Fatalf("expected all 6 letters when expanded, got %d", len(expanded.Visible))
	}
	if !expanded.Expanded || ExpandLabel(expanded.Expanded) != "see less" {
		t.Fatalf("expected see less label when expanded")
	}
}

func TestLetterDensityTieBreak(t *testing.T) {
	d := LetterDensity("cba", false)
	if d.Letters[0].Letter != "A" || d.Letters[1].Letter != "B" || d.Letters[2].Letter != "C" {
		t.Fatalf("expected alphabetical ties, got %+v", d.Letters)
	}
}

func TestDensityCaption(t *testing.T) {
	d := LetterDensity("aab", false)
	if got := DensityCaption(d.Letters[0]); got != "2 (66.67%)" {
		t.Fatalf("unexpected caption %q", got)
	}
	if got := DensityCaption(d.Letters[1]); got != "1 (33.33%)" {
		t.Fatalf("unexpected caption %q", got)
	}
}
