package scene

import (
	"github.com/phanxgames/barrk"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ColorTween animates the four components of a color toward a target.
// Call Update(dt) each frame; values are written through to the target.
type ColorTween struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	Done   bool
}

// TweenColor creates a ColorTween that eases *target to the given color over
// duration seconds.
func TweenColor(target *barrk.Color, to barrk.Color, duration float32, fn ease.TweenFunc) *ColorTween {
	t := &ColorTween{}
	t.tweens[0] = gween.New(float32(target.R), float32(to.R), duration, fn)
	t.tweens[1] = gween.New(float32(target.G), float32(to.G), duration, fn)
	t.tweens[2] = gween.New(float32(target.B), float32(to.B), duration, fn)
	t.tweens[3] = gween.New(float32(target.A), float32(to.A), duration, fn)
	t.fields[0] = &target.R
	t.fields[1] = &target.G
	t.fields[2] = &target.B
	t.fields[3] = &target.A
	return t
}

// Update advances the tween by dt seconds.
func (t *ColorTween) Update(dt float32) {
	if t.Done {
		return
	}
	allDone := true
	for i := range t.tweens {
		val, finished := t.tweens[i].Update(dt)
		*t.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone
}
