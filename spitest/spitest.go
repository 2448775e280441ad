// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package spitest provides a test bench wiring a responder core to a
// controller model, running the producer/consumer handshake on the core's
// local data interface and checking the output line discipline on every
// tick.
package spitest

import (
	"github.com/pkg/errors"

	"github.com/db47h/spislave"
	"github.com/db47h/spislave/internal/wave"
	"github.com/db47h/spislave/spihost"
)

// A Bench owns a responder core and a controller and moves both one local
// tick at a time. It plays the producer role on the core's data interface,
// honoring the single-slot handshake: a queued byte is offered whenever the
// slot is free, or while a transfer is in flight so that the core can accept
// it on a completion tick for back-to-back operation. Data and valid are
// held until the accept flag is seen.
type Bench struct {
	core *spislave.Core
	host *spihost.Controller
	rec  *wave.Recorder
	edge spislave.EdgeDetector

	send   []byte // producer queue
	got    []byte // bytes the core received
	sdo    bool   // core's output line level, last tick
	loaded bool   // a byte sits in the core, not yet fully exchanged
	tick   int
}

// New returns a Bench around a freshly reset core and a controller running
// ticksPerPhase local ticks per half clock period.
func New(ticksPerPhase int) (*Bench, error) {
	host, err := spihost.New(ticksPerPhase)
	if err != nil {
		return nil, errors.Wrap(err, "bench controller")
	}
	b := &Bench{
		core: spislave.New(),
		host: host,
		rec:  wave.New("sck", "ss", "sdi", "sdo"),
	}
	b.core.Tick(spislave.Inputs{Reset: true})
	return b, nil
}

// Send queues bytes on the producer side of the core.
func (b *Bench) Send(bytes ...byte) {
	b.send = append(b.send, bytes...)
}

// Queue queues bytes on the controller side.
func (b *Bench) Queue(bytes ...byte) {
	b.host.Queue(bytes...)
}

// Received returns the bytes the core delivered to its consumer.
func (b *Bench) Received() []byte {
	return b.got
}

// HostReceived returns the bytes the controller sampled from the core.
func (b *Bench) HostReceived() []byte {
	return b.host.Received()
}

// Waveform renders the line activity recorded so far.
func (b *Bench) Waveform() string {
	return b.rec.String()
}

// Step advances bench, controller and core by one local tick. It fails if
// the core's output line moves on a tick that is neither a load event nor a
// qualifying falling edge.
func (b *Bench) Step() error {
	lines := b.host.Tick(b.sdo)

	in := spislave.Inputs{SCK: lines.SCK, SS: lines.SS, SDI: lines.SDO}
	if len(b.send) > 0 && (!b.loaded || !lines.SS) {
		in.Data = b.send[0]
		in.Valid = true
	}

	_, falling := b.edge.Update(in.SCK)
	out := b.core.Tick(in)

	accepted := out.Ready && in.Valid
	if accepted {
		b.send = b.send[1:]
	}
	if out.Valid {
		b.got = append(b.got, out.Data)
	}
	// slot bookkeeping: a completion frees it, an accept fills it; both can
	// happen on the same tick
	b.loaded = accepted || (b.loaded && !out.Valid)

	if out.SDO != b.sdo && !(accepted || falling && !in.SS) {
		return errors.Errorf("tick %d: output line changed outside a load or a qualifying falling edge", b.tick)
	}
	b.sdo = out.SDO
	b.rec.Sample(lines.SCK, lines.SS, lines.SDO, out.SDO)
	b.tick++
	return nil
}

// Run advances the bench by n ticks.
func (b *Bench) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := b.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunUntilIdle advances the bench until the controller is idle and the
// producer queue is drained, within at most max ticks.
func (b *Bench) RunUntilIdle(max int) error {
	for i := 0; i < max; i++ {
		if err := b.Step(); err != nil {
			return err
		}
		if b.host.Idle() && len(b.send) == 0 {
			return nil
		}
	}
	return errors.Errorf("bench still active after %d ticks", max)
}
