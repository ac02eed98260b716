package editplan

import (
	"strings"
	"testing"
)

func TestBuildFilterGraph_Video(t *testing.T) {
	t.Parallel()

	got := BuildFilterGraph(1.10, 0.12, 20, false)
	want := "[0:v]scale=iw*1.1:ih*1.1," +
		"crop=iw/1.1:ih/1.1:(in_w-out_w)/2:(in_h-out_h)/2[base];" +
		"[1:v][base]scale2ref=w=main_w*0.12:h=-1[wm][base2];" +
		"[base2][wm]overlay=W-w-20:H-h-20[vout]"
	if got != want {
		t.Fatalf("graph mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestBuildFilterGraph_AudioStage(t *testing.T) {
	t.Parallel()

	without := BuildFilterGraph(1.10, 0.12, 20, false)
	if strings.Contains(without, "[aout]") || strings.Contains(without, "asetpts") {
		t.Fatalf("audio stage present without audio: %q", without)
	}

	with := BuildFilterGraph(1.10, 0.12, 20, true)
	if n := strings.Count(with, "[aout]"); n != 1 {
		t.Fatalf("expected exactly one [aout] label, got %d in %q", n, with)
	}
	if !strings.HasSuffix(with, ";[0:a]asetpts=PTS-STARTPTS[aout]") {
		t.Fatalf("audio stage must be the final sub-graph: %q", with)
	}
	if !strings.HasPrefix(with, without) {
		t.Fatalf("video chain must be unchanged by the audio stage:\n%q\n%q", with, without)
	}
}

func TestBuildFilterGraph_SingleVideoOutput(t *testing.T) {
	t.Parallel()

	for _, includeAudio := range []bool{false, true} {
		g := BuildFilterGraph(1.25, 0.2, 10, includeAudio)
		if n := strings.Count(g, "[vout]"); n != 1 {
			t.Fatalf("expected exactly one [vout] label, got %d in %q", n, g)
		}
		// Intermediate labels are produced once and consumed once.
		for _, label := range []string{"[base]", "[wm]", "[base2]"} {
			if n := strings.Count(g, label); n != 2 {
				t.Fatalf("label %s should appear twice (produce+consume), got %d in %q", label, n, g)
			}
		}
	}
}

func TestFtoa(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		1.10: "1.1",
		0.12: "0.12",
		2:    "2",
		1.05: "1.05",
	}
	for in, want := range cases {
		if got := ftoa(in); got != want {
			t.Fatalf("ftoa(%v) = %q, want %q", in, got, want)
		}
	}
}
