package editplan

import (
	"strconv"

	"github.com/mpcruz/clipmark/internal/types"
)

// EncodeSpec carries everything BuildEncodeArgs needs to emit the final
// argument list. FilterGraph is the BuildFilterGraph output and must agree
// with IncludeAudio on whether an [aout] label exists.
type EncodeSpec struct {
	SourcePath    string
	WatermarkPath string
	OutputPath    string

	Window       types.TrimWindow
	IncludeAudio bool
	FilterGraph  string

	VideoCodec  string
	PixelFormat string
	AudioCodec  string
	FastStart   bool
}

// BuildEncodeArgs emits the ffmpeg argument list, without the binary itself.
// ffmpeg is positional: the seek flags must precede the source input they
// apply to, the -loop flag must precede the watermark input, the map flags
// must follow -filter_complex, and the output path is the last token.
func BuildEncodeArgs(spec EncodeSpec) []string {
	args := []string{
		"-y",
		"-ss", fmtSeconds(spec.Window.Start),
		"-to", fmtSeconds(spec.Window.End),
		"-i", spec.SourcePath,
		"-loop", "1",
		"-i", spec.WatermarkPath,
		"-filter_complex", spec.FilterGraph,
		"-map", "[vout]",
	}

	if spec.IncludeAudio {
		args = append(args, "-map", "[aout]", "-c:a", spec.AudioCodec)
	}

	args = append(args,
		"-c:v", spec.VideoCodec,
		"-pix_fmt", spec.PixelFormat,
		"-shortest",
	)
	if spec.FastStart {
		args = append(args, "-movflags", "+faststart")
	}
	return append(args, spec.OutputPath)
}

func fmtSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', 3, 64)
}
