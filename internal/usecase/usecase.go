package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mpcruz/clipmark/internal/config"
	"github.com/mpcruz/clipmark/internal/domain/editplan"
	"github.com/mpcruz/clipmark/internal/domain/mediainfo"
	"github.com/mpcruz/clipmark/internal/ports"
	"github.com/mpcruz/clipmark/internal/probe"
	"github.com/mpcruz/clipmark/internal/types"
)

type Deps struct {
	Video ports.VideoTool
	Log   zerolog.Logger
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	SourcePath    string
	WatermarkPath string
	OutputPath    string
	Tunables      config.Config
}

type Result struct {
	Report types.Report
}

// Run drives one edit: probe duration, clamp the trim window, detect
// audio, build the filter graph and argument list, and dispatch the
// encode. Everything is computed fresh per call; nothing is cached.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	duration, via, err := probe.Duration(ctx, in.SourcePath, probe.DefaultStrategies(u.d.Video)...)
	if err != nil {
		return Result{}, err
	}
	u.d.Log.Debug().
		Float64("duration_sec", duration).
		Str("strategy", via).
		Msg("probed source duration")

	window := editplan.ComputeWindow(duration, in.Tunables.Trim.StartSeconds, in.Tunables.Trim.EndSeconds)
	u.d.Log.Debug().
		Float64("start_sec", window.Start).
		Float64("end_sec", window.End).
		Msg("trim window")

	includeAudio := u.detectAudio(ctx, in.SourcePath)

	ov := in.Tunables.Overlay
	graph := editplan.BuildFilterGraph(ov.ZoomFactor, ov.WatermarkWidthRatio, ov.PaddingPx, includeAudio)

	enc := in.Tunables.Encode
	args := editplan.BuildEncodeArgs(editplan.EncodeSpec{
		SourcePath:    in.SourcePath,
		WatermarkPath: in.WatermarkPath,
		OutputPath:    in.OutputPath,
		Window:        window,
		IncludeAudio:  includeAudio,
		FilterGraph:   graph,
		VideoCodec:    enc.VideoCodec,
		PixelFormat:   enc.PixelFormat,
		AudioCodec:    enc.AudioCodec,
		FastStart:     enc.FastStart,
	})

	u.d.Log.Info().Strs("args", args).Msg("running encode")
	if err := u.d.Video.Encode(ctx, args); err != nil {
		return Result{}, err
	}

	return Result{Report: types.Report{
		RunID:       uuid.NewString(),
		Input:       in.SourcePath,
		Watermark:   in.WatermarkPath,
		Output:      in.OutputPath,
		DurationSec: duration,
		StartSec:    window.Start,
		EndSec:      window.End,
		HasAudio:    includeAudio,
		Command:     args,
	}}, nil
}

// detectAudio never fails: an unreadable inspection just means the output
// carries no audio.
func (u Usecase) detectAudio(ctx context.Context, sourcePath string) bool {
	text, err := u.d.Video.Inspect(ctx, sourcePath)
	if err != nil {
		u.d.Log.Warn().Err(err).Msg("audio inspection failed; assuming no audio")
		return false
	}
	return mediainfo.HasAudioStream(text)
}
