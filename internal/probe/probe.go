// Package probe discovers a source's duration through an ordered list of
// strategies, stopping at the first one that yields a usable value.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/mpcruz/clipmark/internal/domain/mediainfo"
	"github.com/mpcruz/clipmark/internal/ports"
)

// ErrDurationUnknown is returned when every strategy came up empty. The
// pipeline aborts on it before any trim window or filter graph is computed.
var ErrDurationUnknown = errors.New(
	"cannot determine source duration; the file may be corrupt or unreadable")

// Strategy yields a positive duration in seconds, or reports that it could
// not. Strategies never fail hard; an unusable invocation is just "no".
type Strategy interface {
	Name() string
	Duration(ctx context.Context, sourcePath string) (float64, bool)
}

// Duration tries each strategy in order and returns the first usable
// value, along with the name of the strategy that produced it.
func Duration(ctx context.Context, sourcePath string, strategies ...Strategy) (float64, string, error) {
	for _, s := range strategies {
		if d, ok := s.Duration(ctx, sourcePath); ok {
			return d, s.Name(), nil
		}
	}
	return 0, "", ErrDurationUnknown
}

// DefaultStrategies is the production chain: structured ffprobe JSON
// first, inspect-text parsing as the fallback.
func DefaultStrategies(tool ports.VideoTool) []Strategy {
	return []Strategy{
		FormatJSON{Tool: tool},
		InspectText{Tool: tool},
	}
}

// FormatJSON asks the structured probe for the container duration.
type FormatJSON struct {
	Tool ports.VideoTool
}

func (FormatJSON) Name() string { return "ffprobe-json" }

func (s FormatJSON) Duration(ctx context.Context, sourcePath string) (float64, bool) {
	b, err := s.Tool.ProbeFormatJSON(ctx, sourcePath)
	if err != nil {
		return 0, false
	}
	return ParseFormatDuration(b)
}

// InspectText parses the `Duration:` header out of ffmpeg's inspect output.
type InspectText struct {
	Tool ports.VideoTool
}

func (InspectText) Name() string { return "ffmpeg-inspect" }

func (s InspectText) Duration(ctx context.Context, sourcePath string) (float64, bool) {
	text, err := s.Tool.Inspect(ctx, sourcePath)
	if err != nil {
		return 0, false
	}
	return mediainfo.ParseDuration(text)
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format ffprobeFormat `json:"format"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

// ParseFormatDuration converts raw ffprobe JSON into a duration in
// seconds. Exported for testing without a real ffprobe binary. A missing
// field, unparsable value, or non-positive duration all report false.
func ParseFormatDuration(data []byte) (float64, bool) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, false
	}
	s := strings.TrimSpace(raw.Format.Duration)
	if s == "" {
		return 0, false
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}
