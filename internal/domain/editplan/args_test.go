package editplan

import (
	"slices"
	"testing"

	"github.com/mpcruz/clipmark/internal/types"
)

func specFixture(includeAudio bool) EncodeSpec {
	return EncodeSpec{
		SourcePath:    "/tmp/in.mp4",
		WatermarkPath: "/tmp/logo.png",
		OutputPath:    "/tmp/out.mp4",
		Window:        types.TrimWindow{Start: 5, End: 15},
		IncludeAudio:  includeAudio,
		FilterGraph:   BuildFilterGraph(1.10, 0.12, 20, includeAudio),
		VideoCodec:    "libx264",
		PixelFormat:   "yuv420p",
		AudioCodec:    "aac",
		FastStart:     true,
	}
}

func TestBuildEncodeArgs_TokenOrder(t *testing.T) {
	t.Parallel()

	args := BuildEncodeArgs(specFixture(true))

	if args[len(args)-1] != "/tmp/out.mp4" {
		t.Fatalf("output path must be the last token, got %q", args[len(args)-1])
	}

	ss := slices.Index(args, "-ss")
	to := slices.Index(args, "-to")
	in := slices.Index(args, "/tmp/in.mp4")
	loop := slices.Index(args, "-loop")
	logo := slices.Index(args, "/tmp/logo.png")
	fc := slices.Index(args, "-filter_complex")

	if ss < 0 || to < 0 || in < 0 || loop < 0 || logo < 0 || fc < 0 {
		t.Fatalf("missing expected tokens in %v", args)
	}
	if !(ss < in && to < in) {
		t.Fatalf("seek flags must precede the source input: %v", args)
	}
	if !(in < loop && loop < logo) {
		t.Fatalf("-loop must sit between the inputs: %v", args)
	}
	if fc < logo {
		t.Fatalf("-filter_complex must follow both inputs: %v", args)
	}

	if args[ss+1] != "5.000" || args[to+1] != "15.000" {
		t.Fatalf("seek values must use 3-decimal precision, got %q %q", args[ss+1], args[to+1])
	}
}

func TestBuildEncodeArgs_AudioPassthrough(t *testing.T) {
	t.Parallel()

	with := BuildEncodeArgs(specFixture(true))
	for _, tok := range []string{"[aout]", "-c:a", "aac"} {
		if !slices.Contains(with, tok) {
			t.Fatalf("expected %q in audio args: %v", tok, with)
		}
	}
	// The audio map must reference a label the graph defines, and come
	// after the video map.
	vmap := slices.Index(with, "[vout]")
	amap := slices.Index(with, "[aout]")
	if vmap < 0 || amap < vmap {
		t.Fatalf("map order wrong: %v", with)
	}

	without := BuildEncodeArgs(specFixture(false))
	for _, tok := range []string{"[aout]", "-c:a", "aac"} {
		if slices.Contains(without, tok) {
			t.Fatalf("unexpected %q in silent args: %v", tok, without)
		}
	}
	if !slices.Contains(without, "[vout]") {
		t.Fatalf("video map missing from silent args: %v", without)
	}
}

func TestBuildEncodeArgs_ContainerFlags(t *testing.T) {
	t.Parallel()

	spec := specFixture(false)
	args := BuildEncodeArgs(spec)
	mv := slices.Index(args, "-movflags")
	if mv < 0 || args[mv+1] != "+faststart" {
		t.Fatalf("faststart flags missing: %v", args)
	}
	if !slices.Contains(args, "-shortest") {
		t.Fatalf("-shortest missing: %v", args)
	}

	spec.FastStart = false
	args = BuildEncodeArgs(spec)
	if slices.Contains(args, "-movflags") {
		t.Fatalf("-movflags present with faststart disabled: %v", args)
	}
}

func TestBuildEncodeArgs_ShortWindowPrecision(t *testing.T) {
	t.Parallel()

	spec := specFixture(false)
	spec.Window = types.TrimWindow{Start: 0, End: 3}
	args := BuildEncodeArgs(spec)
	ss := slices.Index(args, "-ss")
	to := slices.Index(args, "-to")
	if args[ss+1] != "0.000" || args[to+1] != "3.000" {
		t.Fatalf("unexpected seek values: %q %q", args[ss+1], args[to+1])
	}
}
