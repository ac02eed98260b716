package ports

import (
	"context"
	"fmt"
)

// VideoTool is what the core needs from the external media binaries. The
// core constructs commands and consumes their output; the adapter owns the
// process lifecycle.
type VideoTool interface {
	// ProbeFormatJSON runs the structured probe (ffprobe) requesting
	// container-level metadata as JSON. Returns an error when the probe
	// binary is unavailable or the invocation fails.
	ProbeFormatJSON(ctx context.Context, sourcePath string) ([]byte, error)

	// Inspect runs `ffmpeg -i <source>` and returns the merged
	// stdout+stderr text. The invocation is expected to exit non-zero;
	// that is not an error, the header it prints is the payload.
	Inspect(ctx context.Context, sourcePath string) (string, error)

	// Encode runs ffmpeg with the given argument list and blocks until
	// it exits. A non-zero exit is returned as *ExitError with the
	// tool's own code and diagnostic text preserved.
	Encode(ctx context.Context, args []string) error
}

// ExitError reports a failed encode invocation. Code is the external
// tool's exit code and becomes the pipeline's final status.
type ExitError struct {
	Code   int
	Output string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("ffmpeg exited with code %d\n%s", e.Code, e.Output)
}
