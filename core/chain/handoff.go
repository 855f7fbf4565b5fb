/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package chain

import (
	"context"

	"infini.sh/taskchain/core/errors"
	"infini.sh/taskchain/core/stats"
)

// ErrAborted is returned by handoff operations cut short by cancellation of
// the execution.
var ErrAborted = errors.New("handoff aborted")

type message struct {
	record Record
	end    bool
}

// Handoff is the single-slot blocking queue connecting two adjacent stages.
// Put blocks while the slot is occupied and Take blocks while it is empty,
// so a fast upstream stage can never run ahead of a slow downstream stage by
// more than one record. Exactly one end-of-stream token traverses the
// handoff, after the last record.
type Handoff struct {
	name string
	slot chan message
}

func NewHandoff(name string) *Handoff {
	return &Handoff{name: name, slot: make(chan message, 1)}
}

func (h *Handoff) Name() string {
	return h.name
}

// Put hands one record to the downstream stage, blocking until the slot is
// free. Unblocks with ErrAborted once ctx is cancelled.
func (h *Handoff) Put(ctx context.Context, record Record) error {
	select {
	case h.slot <- message{record: record}:
		stats.Increment(h.name+".handoff", "put")
		h.observeDepth()
		return nil
	case <-ctx.Done():
		stats.Increment(h.name+".handoff", "abort")
		return ErrAborted
	}
}

// PutEnd hands the end-of-stream token to the downstream stage.
func (h *Handoff) PutEnd(ctx context.Context) error {
	select {
	case h.slot <- message{end: true}:
		stats.Increment(h.name+".handoff", "end")
		h.observeDepth()
		return nil
	case <-ctx.Done():
		stats.Increment(h.name+".handoff", "abort")
		return ErrAborted
	}
}

// Take receives the next record, blocking until one arrives. ok turns false
// on the end-of-stream token. Unblocks with ErrAborted once ctx is
// cancelled.
func (h *Handoff) Take(ctx context.Context) (record Record, ok bool, err error) {
	select {
	case msg := <-h.slot:
		if msg.end {
			stats.Increment(h.name+".handoff", "drained")
			h.observeDepth()
			return Record{}, false, nil
		}
		stats.Increment(h.name+".handoff", "take")
		h.observeDepth()
		return msg.record, true, nil
	case <-ctx.Done():
		stats.Increment(h.name+".handoff", "abort")
		return Record{}, false, ErrAborted
	}
}

func (h *Handoff) observeDepth() {
	stats.Gauge(h.name+".handoff", "depth", int64(len(h.slot)))
}

// Depth reports the current slot occupancy, 0 or 1.
func (h *Handoff) Depth() int {
	return len(h.slot)
}

// Collector adapts the put side of the handoff to the Collector interface.
func (h *Handoff) Collector(ctx context.Context) Collector {
	return CollectorFunc(func(record Record) error {
		return h.Put(ctx, record)
	})
}
