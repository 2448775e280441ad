// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package spihost provides a controller-side bus-functional model for
// exercising a responder core: it generates the foreign clock, drives the
// select and data-out lines one local tick at a time, and samples the
// responder's output on rising edges.
//
// The model speaks mode 0 only (clock idle low, data sampled on the rising
// edge, moved after the falling edge), MSB first, and holds select active
// across queued bytes so that back-to-back transfers run with no idle clock
// cycles in between.
//
package spihost

import "github.com/pkg/errors"

const (
	wordBits = 8
	msb      = 0x80
)

// Lines is the set of line levels a Controller drives during one tick.
// SDO is the controller's data out, which is the responder's data in.
type Lines struct {
	SCK bool
	SS  bool // select line level; active low
	SDO bool
}

type hostState uint8

const (
	hostIdle hostState = iota
	hostArm            // transfer picked up, select still inactive
	hostLead           // select active, clock low, first bit presented
	hostHigh
	hostLow
)

// A Controller clocks queued bytes out to a responder. It is itself a
// synchronous state machine: call Tick once per local-clock tick.
type Controller struct {
	phase int // local ticks per half clock period

	queue []byte
	rx    []byte

	st    hostState
	cnt   int // ticks left in the current state
	bit   int // index of the bit currently on the wire, 7..0
	cur   byte
	rxCur byte
	sck   bool
	sdo   bool
}

// New returns a Controller generating a clock with ticksPerPhase local ticks
// per half period. Anything below 2 would outrun the responder's sampler.
func New(ticksPerPhase int) (*Controller, error) {
	if ticksPerPhase < 2 {
		return nil, errors.Errorf("ticks per half period must be at least 2, got %d", ticksPerPhase)
	}
	return &Controller{phase: ticksPerPhase}, nil
}

// Queue appends bytes to be clocked out. Bytes queued while a transfer is
// running are appended to it back to back.
func (c *Controller) Queue(bytes ...byte) {
	c.queue = append(c.queue, bytes...)
}

// Received returns the bytes sampled from the responder so far.
func (c *Controller) Received() []byte {
	return c.rx
}

// Idle reports whether the controller has nothing left to do.
func (c *Controller) Idle() bool {
	return c.st == hostIdle && len(c.queue) == 0
}

// Tick advances the controller by one local-clock tick and returns the line
// levels it drives during that tick. sdi is the level of the responder's
// data-out line as driven on the previous tick, which is what the wire
// carries when the controller samples on a rising edge.
func (c *Controller) Tick(sdi bool) Lines {
	switch c.st {
	case hostIdle:
		if len(c.queue) == 0 {
			return Lines{SS: true}
		}
		// give the producer side a whole phase to stage its byte before
		// select goes active
		c.st = hostArm
		c.cnt = c.phase
		return Lines{SS: true}
	case hostArm:
		if c.cnt--; c.cnt > 0 {
			return Lines{SS: true}
		}
		c.pop()
		c.st = hostLead
		c.cnt = c.phase
		return c.lines()
	}

	if c.cnt--; c.cnt > 0 {
		if c.st == hostLow && c.cnt == c.phase-1 {
			// one tick after the falling edge: safe to move the data line
			c.stage()
		}
		return c.lines()
	}

	switch c.st {
	case hostLead:
		c.rise(sdi)
	case hostHigh:
		c.sck = false
		c.st = hostLow
		c.cnt = c.phase
	case hostLow:
		if c.bit > 0 {
			c.bit--
			c.rise(sdi)
			break
		}
		// byte done
		c.rx = append(c.rx, c.rxCur)
		c.rxCur = 0
		if len(c.queue) > 0 {
			c.pop()
			c.rise(sdi)
			break
		}
		c.st = hostIdle
		c.sck = false
		return Lines{SS: true}
	}
	return c.lines()
}

// rise drives the clock high and samples the responder's output.
func (c *Controller) rise(sdi bool) {
	c.sck = true
	c.rxCur <<= 1
	if sdi {
		c.rxCur |= 1
	}
	c.st = hostHigh
	c.cnt = c.phase
}

// pop starts the next queued byte with its top bit on the wire. On a back to
// back boundary the wire was already staged during the low phase.
func (c *Controller) pop() {
	c.cur = c.queue[0]
	c.queue = c.queue[1:]
	c.bit = wordBits - 1
	c.sdo = c.cur&(1<<uint(c.bit)) != 0
}

// stage presents the next outgoing bit: the current byte's next bit, or the
// following byte's top bit at a back to back boundary.
func (c *Controller) stage() {
	if c.bit > 0 {
		c.sdo = c.cur&(1<<uint(c.bit-1)) != 0
		return
	}
	if len(c.queue) > 0 {
		c.sdo = c.queue[0]&msb != 0
		return
	}
	c.sdo = false
}

func (c *Controller) lines() Lines {
	return Lines{SCK: c.sck, SS: false, SDO: c.sdo}
}
