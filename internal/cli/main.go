package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mpcruz/clipmark/internal/ports"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "clipmark <input.mp4>",
		Short:        "Trim, zoom and watermark an MP4 in a single ffmpeg pass",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	// Visible flags
	root.Flags().String("logo", "", "Watermark image (.png)")
	root.Flags().String("output", "edited_video.mp4", "Edited video path (.mp4)")
	root.Flags().String("config", "", "TOML file overriding the tunables")
	root.Flags().String("report", "", "Write a JSON run report to this path")
	root.Flags().Bool("quiet", false, "Only log warnings and errors")
	_ = root.MarkFlagRequired("logo")

	// Hidden binary overrides (internal)
	root.Flags().String("ffmpeg", "", "ffmpeg binary path")
	root.Flags().String("ffprobe", "", "ffprobe binary path")
	_ = root.Flags().MarkHidden("ffmpeg")
	_ = root.Flags().MarkHidden("ffprobe")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		// Preserve the encoder's own exit code as ours.
		var exitErr *ports.ExitError
		if errors.As(err, &exitErr) && exitErr.Code > 0 {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
