package spihost_test

import (
	"testing"

	"github.com/db47h/spislave/spihost"
)

func TestNewValidation(t *testing.T) {
	if _, err := spihost.New(1); err == nil {
		t.Fatal("ticksPerPhase=1 accepted, expected an error")
	}
	if _, err := spihost.New(2); err != nil {
		t.Fatal(err)
	}
}

// run steps the controller with sdi fed back from a callback and returns the
// recorded line history.
func run(t *testing.T, c *spihost.Controller, max int, sdi func(prev spihost.Lines) bool) []spihost.Lines {
	t.Helper()
	var hist []spihost.Lines
	var prev spihost.Lines
	prev.SS = true
	for i := 0; i < max; i++ {
		l := c.Tick(sdi(prev))
		hist = append(hist, l)
		prev = l
		if c.Idle() && len(hist) > 1 {
			return hist
		}
	}
	t.Fatalf("controller still running after %d ticks", max)
	return nil
}

// The controller must present each outgoing bit before the rising edge that
// samples it, keep it stable until one tick past the falling edge, and run
// both clock half-periods for the configured number of ticks.
func TestLineDiscipline(t *testing.T) {
	const phase = 3
	const data = 0xb2

	c, err := spihost.New(phase)
	if err != nil {
		t.Fatal(err)
	}
	c.Queue(data)
	hist := run(t, c, 1000, func(spihost.Lines) bool { return false })

	var bits []bool
	prev := spihost.Lines{SS: true}
	width := 0
	risings, fallings := 0, 0
	for i, l := range hist {
		if l.SS && !prev.SS && risings > 0 {
			break // deselected after the transfer
		}
		if l.SCK != prev.SCK {
			if l.SCK {
				risings++
				bits = append(bits, l.SDO)
			} else {
				fallings++
			}
			if risings+fallings > 1 && width != phase {
				t.Fatalf("tick %d: clock half-period of %d ticks, expected %d", i, width, phase)
			}
			width = 0
		}
		if l.SDO != prev.SDO && l.SCK {
			t.Fatalf("tick %d: data line moved during the clock high phase", i)
		}
		width++
		prev = l
	}
	if risings != 8 || fallings != 8 {
		t.Fatalf("saw %d rising and %d falling edges, expected 8 and 8", risings, fallings)
	}
	var got byte
	for _, b := range bits {
		got <<= 1
		if b {
			got |= 1
		}
	}
	if got != data {
		t.Fatalf("bits on the wire = %#02x, expected %#02x", got, data)
	}
}

// Wiring the controller's data out back to its data in one tick later must
// echo every queued byte, back to back.
func TestLoopback(t *testing.T) {
	c, err := spihost.New(2)
	if err != nil {
		t.Fatal(err)
	}
	sent := []byte{0x00, 0xff, 0xa5, 0x12}
	c.Queue(sent...)
	run(t, c, 1000, func(prev spihost.Lines) bool { return prev.SDO })

	got := c.Received()
	if len(got) != len(sent) {
		t.Fatalf("received %d bytes, expected %d", len(got), len(sent))
	}
	for i := range sent {
		if got[i] != sent[i] {
			t.Fatalf("byte %d: received %#02x, expected %#02x", i, got[i], sent[i])
		}
	}
}

// Select must stay active across queued bytes.
func TestBackToBackSelect(t *testing.T) {
	c, err := spihost.New(2)
	if err != nil {
		t.Fatal(err)
	}
	c.Queue(0x55, 0xaa)
	hist := run(t, c, 1000, func(spihost.Lines) bool { return false })

	first, last := -1, -1
	risings := 0
	prev := true
	for i, l := range hist {
		if l.SCK && !prev {
			risings++
		}
		prev = l.SCK
		if !l.SS {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if risings != 16 {
		t.Fatalf("saw %d rising edges, expected 16", risings)
	}
	for i := first; i <= last; i++ {
		if hist[i].SS {
			t.Fatalf("tick %d: select deasserted between back to back bytes", i)
		}
	}
}
