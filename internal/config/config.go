package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Trim holds the desired trim window offsets, in seconds from the start of
// the source. The planner clamps them against the real duration.
type Trim struct {
	StartSeconds float64 `toml:"start_seconds"`
	EndSeconds   float64 `toml:"end_seconds"`
}

// Overlay holds the zoom and watermark placement tunables.
type Overlay struct {
	ZoomFactor          float64 `toml:"zoom_factor"`
	WatermarkWidthRatio float64 `toml:"watermark_width_ratio"`
	PaddingPx           int     `toml:"padding_px"`
}

// Encode holds the output codec and container tunables.
type Encode struct {
	VideoCodec  string `toml:"video_codec"`
	PixelFormat string `toml:"pixel_format"`
	AudioCodec  string `toml:"audio_codec"`
	FastStart   bool   `toml:"faststart"`
}

type Config struct {
	Trim    Trim    `toml:"trim"`
	Overlay Overlay `toml:"overlay"`
	Encode  Encode  `toml:"encode"`
}

// Default returns the built-in tunables: cut 5s..15s, 110% zoom, watermark
// at 12% of the frame width with a 20px inset, H.264/AAC MP4 output.
func Default() Config {
	return Config{
		Trim: Trim{
			StartSeconds: 5,
			EndSeconds:   15,
		},
		Overlay: Overlay{
			ZoomFactor:          1.10,
			WatermarkWidthRatio: 0.12,
			PaddingPx:           20,
		},
		Encode: Encode{
			VideoCodec:  "libx264",
			PixelFormat: "yuv420p",
			AudioCodec:  "aac",
			FastStart:   true,
		},
	}
}

// Load reads a TOML file over the defaults, so a partial file only
// overrides the keys it names.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects tunables the filter graph or encoder cannot accept.
// These are configuration mistakes, not runtime conditions.
func (c Config) Validate() error {
	if c.Trim.StartSeconds < 0 {
		return fmt.Errorf("trim.start_seconds must be >= 0, got %v", c.Trim.StartSeconds)
	}
	if c.Trim.EndSeconds <= c.Trim.StartSeconds {
		return fmt.Errorf("trim.end_seconds must be > trim.start_seconds, got %v <= %v",
			c.Trim.EndSeconds, c.Trim.StartSeconds)
	}
	if c.Overlay.ZoomFactor <= 0 {
		return fmt.Errorf("overlay.zoom_factor must be > 0, got %v", c.Overlay.ZoomFactor)
	}
	if c.Overlay.WatermarkWidthRatio <= 0 || c.Overlay.WatermarkWidthRatio >= 1 {
		return fmt.Errorf("overlay.watermark_width_ratio must be in (0, 1), got %v",
			c.Overlay.WatermarkWidthRatio)
	}
	if c.Overlay.PaddingPx < 0 {
		return fmt.Errorf("overlay.padding_px must be >= 0, got %d", c.Overlay.PaddingPx)
	}
	if c.Encode.VideoCodec == "" {
		return fmt.Errorf("encode.video_codec is empty")
	}
	if c.Encode.PixelFormat == "" {
		return fmt.Errorf("encode.pixel_format is empty")
	}
	if c.Encode.AudioCodec == "" {
		return fmt.Errorf("encode.audio_codec is empty")
	}
	return nil
}
