package types

// TrimWindow is the retained [Start, End] range of the source, in seconds.
// Invariant: 0 <= Start < End <= source duration.
type TrimWindow struct {
	Start float64
	End   float64
}

func (w TrimWindow) Length() float64 {
	return w.End - w.Start
}

// Report describes a completed run. It is written as JSON when the caller
// asks for one.
type Report struct {
	RunID       string   `json:"run_id"`
	Input       string   `json:"input"`
	Watermark   string   `json:"watermark"`
	Output      string   `json:"output"`
	DurationSec float64  `json:"duration_sec"`
	StartSec    float64  `json:"start_sec"`
	EndSec      float64  `json:"end_sec"`
	HasAudio    bool     `json:"has_audio"`
	Command     []string `json:"command"`
}
