package subtitle

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  안녕   하세요\t ", "안녕 하세요"},
		{"one\ttwo\n three", "one two three"},
		{"   ", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestCharRatios(t *testing.T) {
	// 3 hangul, 2 latin, 1 special, 1 space: 7 runes total.
	r := CharRatios("가나다 ab!")
	if !approxEq(r.Hangul, 3.0/7) || !approxEq(r.LatinNum, 2.0/7) || !approxEq(r.Special, 1.0/7) {
		t.Fatalf("unexpected ratios: %+v", r)
	}
}

func TestCharRatios_EmptyIsSpecial(t *testing.T) {
	r := CharRatios("")
	if r.Special != 1 || r.Hangul != 0 || r.LatinNum != 0 {
		t.Fatalf("empty line should count as fully special, got %+v", r)
	}
}

func TestFilterLines_Default(t *testing.T) {
	raw := []string{
		"안녕하세요 여러분",  // clean Korean, kept
		"hello world", // no hangul, dropped
		"가나",          // too short, dropped
		"!!!!????",    // punctuation, dropped
		"오늘의 menu 입니다", // mixed but mostly Korean, kept
		"  공백이   많은   줄  ", // kept and normalized
	}
	got := FilterLines(raw, FilterOptions{})
	want := []string{"안녕하세요 여러분", "오늘의 menu 입니다", "공백이 많은 줄"}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFilterLines_KoreanOnlyTightens(t *testing.T) {
	// 3 hangul of 8 runes: passes the default thresholds but not KoreanOnly.
	raw := []string{"진짜야 okay"}
	if got := FilterLines(raw, FilterOptions{}); len(got) != 1 {
		t.Fatalf("default thresholds should keep the line, got %v", got)
	}
	if got := FilterLines(raw, FilterOptions{KoreanOnly: true}); len(got) != 0 {
		t.Fatalf("korean-only should drop the mixed line, got %v", got)
	}
}

func TestFilterLines_IncludeEnglishRelaxes(t *testing.T) {
	// 3 hangul of 14 runes: below the default minimum, inside the relaxed one.
	raw := []string{"좋아요 great show"}
	if got := FilterLines(raw, FilterOptions{}); len(got) != 0 {
		t.Fatalf("default thresholds should drop the latin-heavy line, got %v", got)
	}
	if got := FilterLines(raw, FilterOptions{IncludeEnglish: true}); len(got) != 1 {
		t.Fatalf("include-english should keep the bilingual line, got %v", got)
	}
}

func approxEq(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
