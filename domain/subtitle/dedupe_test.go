package subtitle

import "testing"

func TestDedupe_ExactAndFuzzy(t *testing.T) {
	lines := []string{
		"안녕하세요 여러분",
		"안녕하세요 여러분",  // exact duplicate
		"안녕하세요 여러분!", // OCR jitter, fuzzy duplicate
		"감사합니다",
		"",
		"  감사합니다  ", // exact after normalization
	}
	got := Dedupe(lines, 0.88)
	want := []string{"안녕하세요 여러분", "감사합니다"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestDedupe_PreservesFirstSeenOrder(t *testing.T) {
	lines := []string{"둘째 줄 자막입니다", "첫째 줄 자막입니다", "둘째 줄 자막입니다"}
	got := Dedupe(lines, 0.95)
	if len(got) != 2 || got[0] != "둘째 줄 자막입니다" || got[1] != "첫째 줄 자막입니다" {
		t.Fatalf("order not preserved: %v", got)
	}
}

func TestSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"같은 문장", "같은 문장", 1},
		{"안녕하세요", "감사합니다", 0},
		{"abcd", "abXd", 0.75},
		{"", "", 1},
		{"abc", "", 0},
	}
	for _, tc := range cases {
		if got := Similarity(tc.a, tc.b); !approxEq(got, tc.want) {
			t.Fatalf("Similarity(%q, %q): expected %v, got %v", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a, b := "안녕하세요 여러분", "안녕하세요 여러분들"
	if !approxEq(Similarity(a, b), Similarity(b, a)) {
		t.Fatalf("similarity should be symmetric")
	}
}
