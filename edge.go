// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package spislave

// An EdgeDetector turns transitions of a line it has no edge-triggered logic
// on into one-tick pulses, by comparing the line's current level against a
// one-tick-delayed sample of it.
//
// Update must be called exactly once per local-clock tick. For the pulses to
// be reliable, the local clock must tick at more than twice the rate of the
// observed line.
//
type EdgeDetector struct {
	prev bool
}

// Update samples the line's current level and reports whether the line rose
// or fell since the previous tick. At most one of the two results is true,
// and each is true for exactly one tick per transition.
//
func (d *EdgeDetector) Update(level bool) (rising, falling bool) {
	rising = level && !d.prev
	falling = !level && d.prev
	d.prev = level
	return rising, falling
}

// Reset clears the delayed sample, as if the line had been low forever.
//
func (d *EdgeDetector) Reset() {
	d.prev = false
}
