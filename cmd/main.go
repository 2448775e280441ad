package main

import (
	"log"

	"github.com/db47h/spislave/spihost"
	"github.com/db47h/spislave/spitest"
)

func main() {
	b, err := spitest.New(3)
	if err != nil {
		log.Fatal(err)
	}

	// the pattern from the wire's point of view
	tx, err := spihost.ParseBits("1,0,1,1,0,0,1,0")
	if err != nil {
		log.Fatal(err)
	}

	b.Send(0x9a, 0x55)
	b.Queue(tx, 0x0f)
	if err := b.RunUntilIdle(1000); err != nil {
		log.Fatal(err)
	}

	log.Printf("controller received: %#02x", b.HostReceived())
	log.Printf("responder received:  %#02x", b.Received())
	log.Print("line activity:\n", b.Waveform())
}
