package sample

import "sort"

// Sampling cadence for the downstream OCR pass. The editor itself never
// decodes video; these helpers describe which frame timestamps the
// collaborator will crop with the selected ROI.

// DefaultThumbnailSeconds are the preferred preview timestamps offered when
// picking a reference frame.
var DefaultThumbnailSeconds = []int{0, 5, 10, 20, 30, 40}

// ThumbnailTimestamps returns up to six sorted timestamps within duration
// seconds. The preset list is filtered to the clip length and padded with
// evenly spaced candidates for short clips. A non-positive duration yields
// just timestamp 0.
func ThumbnailTimestamps(duration float64) []int {
	var timestamps []int
	for _, t := range DefaultThumbnailSeconds {
		if float64(t) <= duration {
			timestamps = append(timestamps, t)
		}
	}
	if len(timestamps) == 0 {
		return []int{0}
	}
	if len(timestamps) < 6 && duration > 0 {
		step := duration / 6
		if step < 1 {
			step = 1
		}
		for i := 0; i < 6; i++ {
			candidate := int(float64(i)*step + 0.5)
			if float64(candidate) <= duration && !contains(timestamps, candidate) {
				timestamps = append(timestamps, candidate)
			}
		}
	}
	sort.Ints(timestamps)
	if len(timestamps) > 6 {
		timestamps = timestamps[:6]
	}
	return timestamps
}

// Plan returns the OCR sampling timestamps: every intervalSeconds from 0
// through durationSeconds inclusive. When limit is set the duration is capped
// at maxSeconds. The plan always contains at least timestamp 0.
func Plan(durationSeconds, intervalSeconds, maxSeconds int, limit bool) []int {
	if intervalSeconds < 1 {
		intervalSeconds = 1
	}
	if limit && durationSeconds > maxSeconds {
		durationSeconds = maxSeconds
	}
	if durationSeconds < 1 {
		durationSeconds = 1
	}
	var seconds []int
	for t := 0; t <= durationSeconds; t += intervalSeconds {
		seconds = append(seconds, t)
	}
	return seconds
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
