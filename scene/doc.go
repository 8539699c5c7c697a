// Package scene adapts the barrk core to [Ebitengine].
//
// A [Scene] owns the single [Button], the pointer [Input], an optional
// [TestRunner] for scripted runs, queued screenshots and the inspector
// [Overlay]. It does not decide what the button says; the caller polls the
// interaction, lets a barrk.Responder update the display state, and hands
// that state back through [Scene.Apply] before drawing:
//
//	state, changed := sc.PollInteraction()
//	if changed {
//		err = responder.OnInteraction(state, &display)
//	}
//	sc.Apply(display)
//	sc.Advance(dt)
//
// Pointer input comes from the mouse (or the first touch) unless events have
// been injected with [Input.InjectClick] and friends, which is how the test
// runner and the package tests drive the button without a window.
//
// [Ebitengine]: https://ebitengine.org
package scene
