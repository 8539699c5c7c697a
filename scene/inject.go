package scene

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next Poll.
func (in *Input) InjectPress(x, y float64) {
	in.injectDown = true
	in.queue = append(in.queue, PointerSample{X: x, Y: y, Pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (in *Input) InjectRelease(x, y float64) {
	in.injectDown = false
	in.queue = append(in.queue, PointerSample{X: x, Y: y, Pressed: false})
}

// InjectMove queues a pointer move to the given screen coordinates. The
// pressed state carries over from the last injected press or release, so a
// move between InjectPress and InjectRelease is a drag and any other move
// is a hover.
func (in *Input) InjectMove(x, y float64) {
	in.queue = append(in.queue, PointerSample{X: x, Y: y, Pressed: in.injectDown})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same screen coordinates. Consumes two frames.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}
