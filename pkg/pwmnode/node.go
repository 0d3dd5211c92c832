// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pwmnode

import (
	"runtime"

	"github.com/Thermoquad/phare/pkg/phare"
)

// DefaultLocalID is the identity byte a node answers to unless configured
// otherwise.
const DefaultLocalID = 100

// RxBufferSize is the receive ring sizing: headroom for several maximum
// frames so a burst does not immediately overrun.
const RxBufferSize = phare.FrameMaxSize * 4

// Transmitter is the byte sink the node hands serialized response frames
// to. Enqueue accepts up to len(p) bytes and returns how many were taken;
// the node retries the remainder until the whole frame is enqueued.
type Transmitter interface {
	Enqueue(p []byte) int
}

// TransmitterFunc adapts a function to the Transmitter interface.
type TransmitterFunc func(p []byte) int

// Enqueue implements Transmitter.
func (f TransmitterFunc) Enqueue(p []byte) int {
	return f(p)
}

// Node wires the receive ring, the frame extractor, and the command
// dispatcher into one addressed protocol endpoint. Bytes go in via Feed
// from the producer context; HandlePending runs in the single consumer
// context and turns complete frames into executed commands and response
// frames.
type Node struct {
	id        byte
	rx        *phare.RingBuffer
	extractor *phare.Extractor
	disp      *Dispatcher
	tx        Transmitter
}

// NewNode creates a node answering to id, executing commands against dev
// and sending responses through tx.
func NewNode(id byte, dev *Device, tx Transmitter) *Node {
	rx := phare.NewRingBuffer(RxBufferSize)
	return &Node{
		id:        id,
		rx:        rx,
		extractor: phare.NewExtractor(rx),
		disp:      NewDispatcher(dev),
		tx:        tx,
	}
}

// LocalID returns the identity byte this node answers to.
func (n *Node) LocalID() byte {
	return n.id
}

// Feed pushes received bytes into the rx ring. This is the producer side of
// the ring's single-producer/single-consumer contract; on overrun the
// oldest bytes are evicted.
func (n *Node) Feed(p []byte) {
	for _, b := range p {
		n.rx.PushOverwrite(b)
	}
}

// HandlePending drains every complete frame currently in the rx ring.
// Frames addressed elsewhere are skipped without a response; every accepted
// command produces exactly one response frame addressed back to its sender.
func (n *Node) HandlePending() {
	for {
		frame, ok := n.extractor.Next()
		if !ok {
			return
		}

		if frame.Receiver != n.id {
			continue
		}

		args, ok := ParseCommand(frame.Data)
		if !ok {
			continue
		}

		resp := n.disp.Execute(args)
		n.send(frame.Sender, resp)
	}
}

// Stats returns the extractor's link counters.
func (n *Node) Stats() phare.Statistics {
	return n.extractor.Stats()
}

// send wraps data in a frame from this node to receiver and pushes it into
// the transmitter, retrying until every byte is accepted.
func (n *Node) send(receiver byte, data []byte) {
	frame := &phare.Frame{Sender: n.id, Receiver: receiver, Data: data}

	encoded, err := frame.Serialize()
	if err != nil {
		// Response exceeds a frame payload; nothing sane to send back.
		return
	}

	for wrote := 0; wrote < len(encoded); {
		accepted := n.tx.Enqueue(encoded[wrote:])
		wrote += accepted
		if accepted == 0 {
			runtime.Gosched()
		}
	}
}
