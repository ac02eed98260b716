package editplan

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildFilterGraph assembles the -filter_complex expression.
//
// The video chain scales input 0 up by zoom, crops back to the original
// dimensions centered (a zoom that keeps the output resolution), scales the
// watermark (input 1) to ratio of the frame width via scale2ref, and
// overlays it bottom-right inset by padPx. The chain always ends in exactly
// one [vout] label; when includeAudio is set an asetpts stage is appended
// producing exactly one [aout] label with timestamps rebased to zero, since
// the video is independently retrimmed.
func BuildFilterGraph(zoom, watermarkRatio float64, padPx int, includeAudio bool) string {
	z := ftoa(zoom)
	r := ftoa(watermarkRatio)

	var b strings.Builder
	fmt.Fprintf(&b, "[0:v]scale=iw*%s:ih*%s,", z, z)
	fmt.Fprintf(&b, "crop=iw/%s:ih/%s:(in_w-out_w)/2:(in_h-out_h)/2[base];", z, z)
	fmt.Fprintf(&b, "[1:v][base]scale2ref=w=main_w*%s:h=-1[wm][base2];", r)
	fmt.Fprintf(&b, "[base2][wm]overlay=W-w-%d:H-h-%d[vout]", padPx, padPx)

	if includeAudio {
		b.WriteString(";[0:a]asetpts=PTS-STARTPTS[aout]")
	}
	return b.String()
}

// ftoa renders a tunable with the shortest exact representation, so 1.10
// becomes "1.1" and 0.12 stays "0.12" inside filter expressions.
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
