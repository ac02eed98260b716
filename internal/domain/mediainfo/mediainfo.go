// Package mediainfo extracts facts from ffmpeg's human-readable inspect
// output (the header `ffmpeg -i <file>` prints before exiting non-zero).
// The patterns are a contract with ffmpeg's diagnostic text format; keeping
// them as pure functions over a text blob makes that contract swappable and
// testable without a process.
package mediainfo

import (
	"regexp"
	"strconv"
)

var (
	reDuration    = regexp.MustCompile(`Duration:\s*(\d+):(\d+):(\d+(?:\.\d+)?)`)
	reAudioStream = regexp.MustCompile(`Stream #\d+:\d+.*Audio:`)
)

// ParseDuration finds the `Duration: HH:MM:SS.frac` header token and
// converts it to total seconds. The second return is false when the token
// is absent or the value is not positive.
func ParseDuration(text string) (float64, bool) {
	m := reDuration.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, false
	}

	total := float64(hours)*3600 + float64(minutes)*60 + seconds
	if total <= 0 {
		return 0, false
	}
	return total, true
}

// HasAudioStream reports whether the inspect output declares at least one
// audio stream. No match means no audio; this never errors.
func HasAudioStream(text string) bool {
	return reAudioStream.MatchString(text)
}
