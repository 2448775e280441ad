// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package spislave

// shiftReg is the 8-bit register that simultaneously transmits (through its
// top bit) and receives (through its bottom bit), paired with the registered
// single-bit output that actually drives the serial output line.
//
// The output bit is updated only at load time or on a qualifying falling
// edge and holds otherwise. The controller samples it on rising edges, so it
// must never move between those two moments.
type shiftReg struct {
	bits byte
	out  bool
}

// step commits this tick's register update. A load overwrites the register
// wholesale and wins over a shift; a shift moves everything up one position
// and inserts the sampled input bit at the bottom.
//
// The returned value is the register contents after any shift but before
// any load, which is what the data consumer must see on the tick a byte
// completes even when the next byte is loaded on that same tick.
func (r *shiftReg) step(load bool, data byte, shift, in bool) byte {
	cur := r.bits
	if shift {
		cur <<= 1
		if in {
			cur |= 1
		}
	}
	switch {
	case load:
		r.bits = data
		r.out = data&msb != 0
	case shift:
		r.bits = cur
		r.out = cur&msb != 0
	}
	return cur
}
