package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mpcruz/clipmark/internal/config"
	"github.com/mpcruz/clipmark/internal/pipeline"
)

func run(cmd *cobra.Command, input string) error {
	logoPath, _ := cmd.Flags().GetString("logo")
	outputPath, _ := cmd.Flags().GetString("output")
	configPath, _ := cmd.Flags().GetString("config")
	reportPath, _ := cmd.Flags().GetString("report")
	quiet, _ := cmd.Flags().GetBool("quiet")
	ffmpegPath, _ := cmd.Flags().GetString("ffmpeg")
	ffprobePath, _ := cmd.Flags().GetString("ffprobe")

	tunables := config.Default()
	if configPath != "" {
		var err error
		tunables, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	absLogo, err := filepath.Abs(logoPath)
	if err != nil {
		return err
	}
	absOut, err := filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	log := newLogger(quiet)

	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	cfg := pipeline.Config{
		SourcePath:    absIn,
		WatermarkPath: absLogo,
		OutputPath:    absOut,
		ReportPath:    reportPath,

		FFmpegPath:  firstNonEmpty(ffmpegPath, os.Getenv("FFMPEG_PATH")),
		FFprobePath: firstNonEmpty(ffprobePath, os.Getenv("FFPROBE_PATH")),

		Tunables: tunables,
		Log:      log,
	}

	if err := pipeline.Run(ctx, cfg); err != nil {
		return fmt.Errorf("clipmark: %w", err)
	}
	return nil
}

func newLogger(quiet bool) zerolog.Logger {
	level := zerolog.DebugLevel
	if quiet {
		level = zerolog.WarnLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
