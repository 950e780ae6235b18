package subtitle

import "strings"

// Post-processing for OCR output of the cropped subtitle region. Raw OCR
// lines are noisy: UI garnish, stray punctuation and half-recognized latin
// runs. Filtering keeps lines whose character composition looks like a
// Korean subtitle.

// Normalize collapses all interior whitespace runs to single spaces and
// trims the ends.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Ratios describes the character composition of a line. Each ratio is the
// share of the line's runes (spaces included in the denominator).
type Ratios struct {
	Hangul   float64
	LatinNum float64
	Special  float64
}

// CharRatios computes the composition ratios of line. An empty line counts
// as fully special so it is always rejected by the filter.
func CharRatios(line string) Ratios {
	runes := []rune(line)
	total := len(runes)
	if total == 0 {
		return Ratios{Special: 1}
	}
	var hangul, latinNum, special int
	for _, ch := range runes {
		switch {
		case ch >= '가' && ch <= '힣':
			hangul++
		case ch < 128 && isASCIIAlnum(byte(ch)):
			latinNum++
		case ch == ' ' || ch == '\t':
		default:
			special++
		}
	}
	return Ratios{
		Hangul:   float64(hangul) / float64(total),
		LatinNum: float64(latinNum) / float64(total),
		Special:  float64(special) / float64(total),
	}
}

func isASCIIAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// FilterOptions selects the composition thresholds applied by FilterLines.
type FilterOptions struct {
	// KoreanOnly tightens thresholds to drop mixed-script lines.
	KoreanOnly bool
	// IncludeEnglish relaxes the latin limit for bilingual subtitles.
	// Ignored when KoreanOnly is set.
	IncludeEnglish bool
}

// FilterLines normalizes each raw OCR line and keeps those that plausibly
// are subtitle text: longer than three runes, enough Hangul, not dominated
// by latin characters or punctuation.
func FilterLines(raw []string, opt FilterOptions) []string {
	minHangul := 0.3
	maxLatinNum := 0.55
	maxSpecial := 0.45
	if opt.KoreanOnly {
		minHangul = 0.45
		maxLatinNum = 0.35
		maxSpecial = 0.35
	} else if opt.IncludeEnglish {
		minHangul = 0.2
		maxLatinNum = 0.75
	}

	var cleaned []string
	for _, rawLine := range raw {
		line := Normalize(rawLine)
		if line == "" || len([]rune(line)) <= 3 {
			continue
		}
		r := CharRatios(line)
		if r.Hangul < minHangul {
			continue
		}
		if r.LatinNum > maxLatinNum {
			continue
		}
		if r.Special > maxSpecial {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return cleaned
}
