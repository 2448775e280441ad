/*
Package spislave implements the responder side of a mode 0 (clock idle low,
sample on rising edge) serial peripheral byte exchange as a synchronous state
machine driven by a local clock.

The core has no control over the transfer clock: the line clock and the
select line are driven by an external controller. It perceives that foreign
clock purely by sampling it once per local-clock tick, which requires the
local clock to run at more than twice the foreign clock's rate.

The whole core is a total function from (previous state, tick inputs) to
(next state, tick outputs), evaluated once per tick by Core.Tick. There are
no goroutines and no blocking calls; driving the tick loop is the caller's
business.

The spihost package provides the controller side as a bus-functional model,
and the spitest package wires both into a test bench.
*/
package spislave
