package editplan

import "github.com/mpcruz/clipmark/internal/types"

// startGuard keeps the computed start strictly below the source duration so
// ffmpeg never receives an empty seek range.
const startGuard = 0.001

// ComputeWindow clamps the desired trim offsets against the real source
// duration. Sources that end before the desired start keep their full
// length instead; we deliberately do not shift the window to fit, the only
// goal is to never fail on a short clip.
//
// The result always satisfies 0 <= Start < End <= duration for any
// duration > 0.
func ComputeWindow(duration, desiredStart, desiredEnd float64) types.TrimWindow {
	start := min(desiredStart, max(duration-startGuard, 0))
	end := min(desiredEnd, duration)

	// Source no longer than the desired start: a trimmed window would be
	// empty or near-empty, keep the whole source instead.
	if end <= start || duration <= desiredStart {
		start = 0
		end = duration
	}

	return types.TrimWindow{Start: start, End: end}
}
