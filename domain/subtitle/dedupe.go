package subtitle

// Dedupe removes exact and near-duplicate lines while preserving first-seen
// order. Subtitles sampled every couple of seconds repeat across frames with
// small OCR jitter, so a fuzzy match against every kept line is required on
// top of the exact-match set. threshold is the minimum Similarity at which
// two lines count as the same subtitle (0.88 matches the upstream default).
func Dedupe(lines []string, threshold float64) []string {
	var results []string
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		normalized := Normalize(line)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		dup := false
		for _, existing := range results {
			if Similarity(normalized, existing) >= threshold {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		results = append(results, normalized)
		seen[normalized] = struct{}{}
	}
	return results
}

// Similarity returns 2*LCS(a,b)/(len(a)+len(b)) over runes, in [0,1].
// Identical strings score 1, disjoint strings 0.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	// Single-row LCS table; rb is the inner dimension.
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	lcs := prev[len(rb)]
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}
