// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package spislave

// loadState tracks whether a producer write arrived mid-transfer and is
// waiting for the in-flight byte to complete before it can be loaded.
type loadState uint8

const (
	stateFree loadState = iota
	stateLoaded
)

func (s loadState) String() string {
	if s == stateLoaded {
		return "loaded"
	}
	return "free"
}

// step applies the transition table for one tick. completed clears the
// loaded state with top priority. A write request asserted while a byte
// completes, or while the core is deselected, is satisfied immediately and
// never transitions to loaded.
func (s loadState) step(valid, selected, completed bool) loadState {
	switch s {
	case stateLoaded:
		if completed {
			return stateFree
		}
	default:
		if valid && selected && !completed {
			return stateLoaded
		}
	}
	return s
}
