package mediainfo

import "testing"

const inspectWithAudio = `ffmpeg version 6.1.1 Copyright (c) 2000-2023 the FFmpeg developers
Input #0, mov,mp4,m4a,3gp,3g2,mj2, from 'input.mp4':
  Metadata:
    major_brand     : isom
  Duration: 00:01:05.50, start: 0.000000, bitrate: 1205 kb/s
  Stream #0:0[0x1](und): Video: h264 (High) (avc1 / 0x31637661), yuv420p(progressive), 1280x720, 25 fps
  Stream #0:1[0x2](und): Audio: aac (LC) (mp4a / 0x6134706D), 44100 Hz, stereo, fltp, 128 kb/s
At least one output file must be specified
`

const inspectVideoOnly = `Input #0, mov,mp4,m4a,3gp,3g2,mj2, from 'silent.mp4':
  Duration: 00:00:03.00, start: 0.000000, bitrate: 800 kb/s
  Stream #0:0[0x1](und): Video: h264 (High), yuv420p, 1920x1080, 30 fps
At least one output file must be specified
`

func TestParseDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{name: "full header", text: inspectWithAudio, want: 65.5, ok: true},
		{name: "short clip", text: inspectVideoOnly, want: 3, ok: true},
		{name: "hours carry", text: "Duration: 01:02:03.25, start: 0", want: 3723.25, ok: true},
		{name: "no fraction", text: "Duration: 00:00:42, start: 0", want: 42, ok: true},
		{name: "zero duration rejected", text: "Duration: 00:00:00.00", ok: false},
		{name: "absent token", text: "At least one output file must be specified", ok: false},
		{name: "empty", text: "", ok: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseDuration(tc.text)
			if ok != tc.ok {
				t.Fatalf("ParseDuration ok = %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("ParseDuration = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasAudioStream(t *testing.T) {
	t.Parallel()

	if !HasAudioStream(inspectWithAudio) {
		t.Fatalf("expected audio stream to be detected")
	}
	if HasAudioStream(inspectVideoOnly) {
		t.Fatalf("video-only output must not report audio")
	}
	if HasAudioStream("") {
		t.Fatalf("empty text must not report audio")
	}
	// The word Audio outside a stream declaration is not a signal.
	if HasAudioStream("Audio: something unrelated") {
		t.Fatalf("bare Audio token must not match without a Stream line")
	}
}
