/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package history

import (
	"sync"

	"infini.sh/taskchain/core/event"
	"infini.sh/taskchain/core/stats"
	"infini.sh/taskchain/core/util"
)

// ringShard keeps the most recent entries in a fixed slice, older entries
// are overwritten once the slot wraps around.
type ringShard struct {
	l       sync.RWMutex
	entries []event.Event
	head    int
	size    int
}

func (shard *ringShard) push(ev event.Event) {
	shard.l.Lock()
	shard.entries[shard.head] = ev
	shard.head = (shard.head + 1) % len(shard.entries)
	if shard.size < len(shard.entries) {
		shard.size++
	}
	shard.l.Unlock()
}

// snapshot returns the retained entries, oldest first.
func (shard *ringShard) snapshot() []event.Event {
	shard.l.RLock()
	defer shard.l.RUnlock()
	out := make([]event.Event, 0, shard.size)
	start := (shard.head - shard.size + len(shard.entries)) % len(shard.entries)
	for i := 0; i < shard.size; i++ {
		out = append(out, shard.entries[(start+i)%len(shard.entries)])
	}
	return out
}

// MemoryStore retains task lifecycle events in sharded ring buffers, the
// shard is picked by hashing the task id so one task's records always land
// in the same shard and stay in arrival order.
type MemoryStore struct {
	shards []*ringShard
}

func NewMemoryStore(shardCount, shardSize int) *MemoryStore {
	if shardCount <= 0 {
		shardCount = 1
	}
	if shardSize <= 0 {
		shardSize = 1
	}
	store := &MemoryStore{}
	for i := 0; i < shardCount; i++ {
		store.shards = append(store.shards, &ringShard{entries: make([]event.Event, shardSize)})
	}
	return store
}

func (store *MemoryStore) shardFor(taskID string) *ringShard {
	return store.shards[util.ModString(taskID, len(store.shards))]
}

// Accept keeps task lifecycle events and ignores everything else.
func (store *MemoryStore) Accept(ev event.Event) {
	if ev.Metadata.Category != "task" {
		return
	}
	taskID, ok := ev.Metadata.Labels["task_id"].(string)
	if !ok || taskID == "" {
		return
	}
	store.shardFor(taskID).push(ev)
	stats.Increment("history", ev.Metadata.Name)
}

// GetTaskHistory returns the retained events of one task, oldest first.
func (store *MemoryStore) GetTaskHistory(taskID string) []event.Event {
	var out []event.Event
	for _, ev := range store.shardFor(taskID).snapshot() {
		if id, ok := ev.Metadata.Labels["task_id"].(string); ok && id == taskID {
			out = append(out, ev)
		}
	}
	return out
}

// GetTaskStatus returns the latest reported status of one task.
func (store *MemoryStore) GetTaskStatus(taskID string) (string, bool) {
	events := store.GetTaskHistory(taskID)
	for i := len(events) - 1; i >= 0; i-- {
		if v, ok := events[i].Fields["status"].(string); ok {
			return v, true
		}
	}
	return "", false
}

// TaskIDs returns the distinct task ids currently retained.
func (store *MemoryStore) TaskIDs() []string {
	seen := map[string]bool{}
	var out []string
	for _, shard := range store.shards {
		for _, ev := range shard.snapshot() {
			id, ok := ev.Metadata.Labels["task_id"].(string)
			if ok && !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}

// Size returns how many events are currently retained across all shards.
func (store *MemoryStore) Size() int {
	total := 0
	for _, shard := range store.shards {
		shard.l.RLock()
		total += shard.size
		shard.l.RUnlock()
	}
	return total
}
