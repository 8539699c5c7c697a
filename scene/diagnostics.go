package scene

import (
	"time"

	"github.com/rs/zerolog"
)

// Diagnostics accumulates frame timings and logs a summary every Interval.
type Diagnostics struct {
	Interval time.Duration

	log      zerolog.Logger
	frames   int
	elapsed  time.Duration
	minFrame time.Duration
	maxFrame time.Duration
}

// NewDiagnostics creates a frame-time logger. A non-positive interval
// defaults to one second.
func NewDiagnostics(log zerolog.Logger, interval time.Duration) *Diagnostics {
	if interval <= 0 {
		interval = time.Second
	}
	return &Diagnostics{Interval: interval, log: log}
}

// Record adds one frame of duration dt. It reports whether a summary was
// logged on this call.
func (d *Diagnostics) Record(dt time.Duration) bool {
	if d.frames == 0 || dt < d.minFrame {
		d.minFrame = dt
	}
	if dt > d.maxFrame {
		d.maxFrame = dt
	}
	d.frames++
	d.elapsed += dt
	if d.elapsed < d.Interval {
		return false
	}

	secs := d.elapsed.Seconds()
	fps := 0.0
	if secs > 0 {
		fps = float64(d.frames) / secs
	}
	d.log.Info().
		Float64("fps", fps).
		Float64("frame_ms_avg", msOf(d.elapsed)/float64(d.frames)).
		Float64("frame_ms_min", msOf(d.minFrame)).
		Float64("frame_ms_max", msOf(d.maxFrame)).
		Int("frames", d.frames).
		Msg("diagnostics")

	d.frames = 0
	d.elapsed = 0
	d.minFrame = 0
	d.maxFrame = 0
	return true
}

func msOf(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
