package spislave

import "testing"

func TestLoadStateTable(t *testing.T) {
	td := []struct {
		s                          loadState
		valid, selected, completed bool
		want                       loadState
	}{
		// a write arriving mid-transfer must wait
		{stateFree, true, true, false, stateLoaded},
		// a write arriving on the completion tick is served at once
		{stateFree, true, true, true, stateFree},
		// a write while deselected is served at once
		{stateFree, true, false, false, stateFree},
		{stateFree, false, true, false, stateFree},
		{stateFree, false, false, false, stateFree},
		// a completed byte frees the slot, with top priority
		{stateLoaded, false, true, true, stateFree},
		{stateLoaded, true, true, true, stateFree},
		{stateLoaded, true, true, false, stateLoaded},
		{stateLoaded, false, false, false, stateLoaded},
	}
	for i, d := range td {
		if got := d.s.step(d.valid, d.selected, d.completed); got != d.want {
			t.Errorf("case %d: %v.step(valid=%v, selected=%v, completed=%v) = %v, expected %v",
				i, d.s, d.valid, d.selected, d.completed, got, d.want)
		}
	}
}

func TestLoadStateString(t *testing.T) {
	if stateFree.String() != "free" || stateLoaded.String() != "loaded" {
		t.Fatal("bad state names")
	}
}
