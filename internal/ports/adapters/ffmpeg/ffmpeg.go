package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mpcruz/clipmark/internal/ports"
)

// ErrNoFFprobe means no structured probe binary could be resolved. Callers
// fall back to inspect-text parsing, so this is not fatal on its own.
var ErrNoFFprobe = errors.New("ffprobe not available")

type Adapter struct {
	ffmpeg  string
	ffprobe string
}

// New resolves the binaries and returns an adapter. Empty paths resolve
// from PATH; ffprobe additionally falls back to a sibling of the resolved
// ffmpeg binary (keeping any extension, e.g. ffprobe.exe next to
// ffmpeg.exe). A missing ffmpeg is an error; a missing ffprobe is not.
func New(ffmpegPath, ffprobePath string) (*Adapter, error) {
	if ffmpegPath == "" {
		p, err := exec.LookPath("ffmpeg")
		if err != nil {
			return nil, fmt.Errorf("ffmpeg not found in PATH: %w", err)
		}
		ffmpegPath = p
	}
	if ffprobePath == "" {
		ffprobePath = resolveFFprobe(ffmpegPath)
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}, nil
}

// resolveFFprobe tries PATH first, then a sibling of the ffmpeg binary.
// Returns "" when neither exists.
func resolveFFprobe(ffmpegPath string) string {
	if p, err := exec.LookPath("ffprobe"); err == nil {
		return p
	}

	sibling := filepath.Join(filepath.Dir(ffmpegPath), "ffprobe")
	if ext := filepath.Ext(ffmpegPath); ext != "" {
		sibling += ext
	}
	if _, err := os.Stat(sibling); err == nil {
		return sibling
	}
	return ""
}

func (a *Adapter) ProbeFormatJSON(ctx context.Context, sourcePath string) ([]byte, error) {
	if a.ffprobe == "" {
		return nil, ErrNoFFprobe
	}
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "json",
		sourcePath,
	)
	b, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", sourcePath, err)
	}
	return b, nil
}

func (a *Adapter) Inspect(ctx context.Context, sourcePath string) (string, error) {
	cmd := exec.CommandContext(ctx, a.ffmpeg, "-i", sourcePath)
	b, err := cmd.CombinedOutput()
	// A bare `ffmpeg -i` exits non-zero after printing the header; only
	// failures to launch at all are real errors.
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return "", fmt.Errorf("ffmpeg inspect %q: %w", sourcePath, err)
	}
	return string(b), nil
}

func (a *Adapter) Encode(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	b, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ports.ExitError{Code: exitErr.ExitCode(), Output: string(b)}
	}
	return fmt.Errorf("ffmpeg encode: %w\n%s", err, string(b))
}

// Path returns the resolved ffmpeg binary, for logging the full command.
func (a *Adapter) Path() string { return a.ffmpeg }

// HasStructuredProbe reports whether an ffprobe binary was resolved.
func (a *Adapter) HasStructuredProbe() bool { return a.ffprobe != "" }
