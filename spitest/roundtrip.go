// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package spitest

import (
	"testing"
)

// RoundTrip runs a full exchange on a fresh bench: the controller clocks out
// fromController while the responder's producer supplies fromResponder, and
// both receive sides are checked byte for byte. The recorded waveform is
// logged on failure.
func RoundTrip(t *testing.T, ticksPerPhase int, fromController, fromResponder []byte) {
	t.Helper()

	b, err := New(ticksPerPhase)
	if err != nil {
		t.Fatal(err)
	}
	b.Send(fromResponder...)
	b.Queue(fromController...)

	// generous budget: select setup plus 8 clock periods per byte
	max := (len(fromController) + 2) * 20 * ticksPerPhase
	if err := b.RunUntilIdle(max); err != nil {
		t.Fatalf("%v\n%s", err, b.Waveform())
	}

	check := func(name string, got, want []byte) {
		if len(got) != len(want) {
			t.Fatalf("%s received %d bytes, expected %d\n%s", name, len(got), len(want), b.Waveform())
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s byte %d: received %#02x, expected %#02x\n%s", name, i, got[i], want[i], b.Waveform())
			}
		}
	}
	check("responder", b.Received(), fromController)
	check("controller", b.HostReceived(), fromResponder)
}
