// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package spislave

// bitCounter frames byte boundaries by counting qualifying falling edges.
//
// The count only advances on edges seen while the select line is active. A
// deselect in the middle of a byte therefore leaves a partial count behind,
// and counting resumes from it on reselect.
type bitCounter struct {
	n    uint8 // bits exchanged in the current byte, 0..7
	last bool  // registered: count was at max on the previous tick
}

// step registers the delayed count-at-max flag, then advances the count if
// this tick carries a qualifying falling edge. Upon reaching the last bit,
// the next qualifying edge brings the count back to 0.
func (b *bitCounter) step(advance bool) {
	b.last = b.n == wordBits-1
	if !advance {
		return
	}
	if b.n == wordBits-1 {
		b.n = 0
	} else {
		b.n++
	}
}
