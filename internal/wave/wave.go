// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package wave records single-bit signal levels tick by tick and renders
// them as an ASCII timing diagram, one row per signal, '-' for high and '_'
// for low.
package wave

import "strings"

// A Recorder accumulates one sample per signal per tick.
type Recorder struct {
	names []string
	rows  [][]byte
}

// New returns a Recorder for the named signals, in display order.
func New(names ...string) *Recorder {
	return &Recorder{
		names: names,
		rows:  make([][]byte, len(names)),
	}
}

// Sample appends one tick's levels, in the order the signals were named.
// It panics if the number of levels does not match.
func (r *Recorder) Sample(levels ...bool) {
	if len(levels) != len(r.names) {
		panic("wave: sample width does not match signal count")
	}
	for i, l := range levels {
		c := byte('_')
		if l {
			c = '-'
		}
		r.rows[i] = append(r.rows[i], c)
	}
}

// Len returns the number of ticks recorded.
func (r *Recorder) Len() int {
	if len(r.rows) == 0 {
		return 0
	}
	return len(r.rows[0])
}

// Reset discards all samples, keeping the signal names.
func (r *Recorder) Reset() {
	for i := range r.rows {
		r.rows[i] = nil
	}
}

// String renders the recorded samples, one line per signal, names padded to
// the same width.
func (r *Recorder) String() string {
	w := 0
	for _, n := range r.names {
		if len(n) > w {
			w = len(n)
		}
	}
	var b strings.Builder
	for i, n := range r.names {
		b.WriteString(n)
		b.WriteString(strings.Repeat(" ", w-len(n)+1))
		b.Write(r.rows[i])
		b.WriteByte('\n')
	}
	return b.String()
}
