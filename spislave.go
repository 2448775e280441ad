// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package spislave

const (
	wordBits = 8
	msb      = 0x80
)

// Inputs carries the line levels and the producer handshake presented to the
// core for one local-clock tick. Line levels are raw: SS is the level of the
// select line, which is active low.
type Inputs struct {
	SCK bool // foreign clock line
	SS  bool // select line, active low
	SDI bool // serial data in, driven by the controller

	Data  byte // producer: next byte to transmit
	Valid bool // producer: Data is valid; must be held until Ready is seen
	Reset bool // synchronous reset
}

// Outputs is what the core presents during one tick.
//
// Data holds a completed byte only on the single tick Valid is true; the
// consumer must sample it on that tick, as the register may be overwritten
// starting the following transfer.
type Outputs struct {
	SDO   bool // serial data out; moves only at load time or on a falling edge
	Ready bool // the core accepts a producer byte this tick
	Data  byte // received byte, sample when Valid
	Valid bool // single-tick pulse: Data holds a completed byte
}

// Core is the responder-side byte exchange engine. The zero value is ready
// to use and equivalent to the state after a reset tick.
//
// A Core moves only when Tick is called, once per local-clock tick. All
// state transitions are computed from the previous tick's state and the
// current inputs, then committed together.
type Core struct {
	edge  EdgeDetector
	cnt   bitCounter
	state loadState
	reg   shiftReg
}

// New returns a Core in its reset state.
//
func New() *Core {
	return &Core{}
}

// Tick advances the core by one local-clock tick.
//
// On a tick carrying a qualifying falling edge (foreign clock fell while
// select is active), the register shifts one position, capturing the input
// bit that was stable during the just-ended high half-period. Every eighth
// such edge completes a byte: Valid pulses and Data carries the byte.
//
// Ready is true whenever the core is deselected and holds no pending write,
// and also on the exact tick a byte completes, so that a producer holding
// Data and Valid gets back-to-back transfers with zero idle ticks. A write
// asserted mid-transfer is remembered and satisfied on the completion tick.
//
// A reset tick clears everything, shift and output registers included, and
// produces inactive outputs.
func (c *Core) Tick(in Inputs) Outputs {
	if in.Reset {
		*c = Core{}
		return Outputs{}
	}

	_, falling := c.edge.Update(in.SCK)
	selected := !in.SS

	completed := falling && c.cnt.last
	ready := (in.SS && c.state == stateFree) || completed
	load := ready && in.Valid
	shift := falling && selected

	c.cnt.step(shift)
	c.state = c.state.step(in.Valid, selected, completed)
	data := c.reg.step(load, in.Data, shift, in.SDI)

	return Outputs{
		SDO:   c.reg.out,
		Ready: ready,
		Data:  data,
		Valid: completed,
	}
}

// Busy reports whether a producer write is waiting for the current byte to
// complete.
//
func (c *Core) Busy() bool {
	return c.state == stateLoaded
}

// BitCount returns the number of bits exchanged in the current byte.
//
func (c *Core) BitCount() int {
	return int(c.cnt.n)
}
