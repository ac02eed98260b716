package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mpcruz/clipmark/internal/config"
	"github.com/mpcruz/clipmark/internal/ports"
	"github.com/mpcruz/clipmark/internal/ports/adapters/ffmpeg"
	"github.com/mpcruz/clipmark/internal/usecase"
)

type Config struct {
	SourcePath    string
	WatermarkPath string
	OutputPath    string

	// ReportPath, when set, receives a JSON run report after a
	// successful encode.
	ReportPath string

	FFmpegPath  string
	FFprobePath string

	Tunables config.Config
	Log      zerolog.Logger
}

func (c Config) Validate() error {
	if err := validateInputFile(c.SourcePath, ".mp4", "input video"); err != nil {
		return err
	}
	if err := validateInputFile(c.WatermarkPath, ".png", "watermark"); err != nil {
		return err
	}
	if c.OutputPath == "" {
		return errors.New("output path is empty")
	}
	if !strings.EqualFold(filepath.Ext(c.OutputPath), ".mp4") {
		return fmt.Errorf("output must have a .mp4 extension, got %q", filepath.Base(c.OutputPath))
	}
	return c.Tunables.Validate()
}

func validateInputFile(path, wantExt, label string) error {
	if path == "" {
		return fmt.Errorf("%s path is empty", label)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file: %s", label, path)
	}
	if !strings.EqualFold(filepath.Ext(path), wantExt) {
		return fmt.Errorf("%s must have a %s extension, got %q", label, wantExt, filepath.Base(path))
	}
	return nil
}

// Run validates the configuration, wires the ffmpeg adapter, and executes
// one edit. A failed encode is returned as-is so callers can surface the
// external tool's exit code.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	tool, err := ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath)
	if err != nil {
		return err
	}
	if !tool.HasStructuredProbe() {
		cfg.Log.Warn().Msg("ffprobe not found; falling back to ffmpeg inspect output for duration")
	}

	uc := usecase.New(usecase.Deps{Video: tool, Log: cfg.Log})
	res, err := uc.Run(ctx, usecase.Input{
		SourcePath:    cfg.SourcePath,
		WatermarkPath: cfg.WatermarkPath,
		OutputPath:    cfg.OutputPath,
		Tunables:      cfg.Tunables,
	})
	if err != nil {
		return err
	}

	if res.Report.HasAudio {
		cfg.Log.Info().Str("output", cfg.OutputPath).Msg("edited video written with audio")
	} else {
		cfg.Log.Info().Str("output", cfg.OutputPath).Msg("edited video written (source has no audio)")
	}

	if cfg.ReportPath != "" {
		if err := writeReport(cfg.ReportPath, res); err != nil {
			return err
		}
		cfg.Log.Info().Str("report", cfg.ReportPath).Msg("run report written")
	}
	return nil
}

func writeReport(path string, res usecase.Result) error {
	b, err := json.MarshalIndent(res.Report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

// ensure the adapter implements the port
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
