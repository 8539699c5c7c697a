package barrk

import "time"

// DefaultTickInterval is how often the console bark fires.
const DefaultTickInterval = 2 * time.Second

// Timer is a repeating interval advanced by frame deltas. There is no
// cancellation; a Timer repeats for as long as it is ticked.
type Timer struct {
	interval      time.Duration
	elapsed       time.Duration
	timesFinished int
}

// NewRepeatingTimer creates a timer that finishes every interval.
// A non-positive interval never finishes.
func NewRepeatingTimer(interval time.Duration) *Timer {
	return &Timer{interval: interval}
}

// Tick advances the timer by dt and reports whether it finished during this
// call. A dt spanning several intervals still reports a single finish; the
// number of elapsed intervals is available from TimesFinished.
func (t *Timer) Tick(dt time.Duration) bool {
	t.timesFinished = 0
	if t.interval <= 0 || dt <= 0 {
		return false
	}
	t.elapsed += dt
	for t.elapsed >= t.interval {
		t.elapsed -= t.interval
		t.timesFinished++
	}
	return t.timesFinished > 0
}

// TimesFinished returns how many intervals elapsed during the last Tick.
func (t *Timer) TimesFinished() int { return t.timesFinished }

// Elapsed returns the time accumulated since the last finish.
func (t *Timer) Elapsed() time.Duration { return t.elapsed }

// Interval returns the repeat interval.
func (t *Timer) Interval() time.Duration { return t.interval }
