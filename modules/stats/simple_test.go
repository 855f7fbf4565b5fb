/* Copyright © INFINI LTD. All rights reserved.
 * Web: https://infinilabs.com
 * Email: hello#infini.ltd */

package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestModule() *SimpleStatsModule {
	module := &SimpleStatsModule{}
	module.config = &SimpleStatsConfig{Enabled: true, Persist: false, BufferSize: 100}
	module.data = &Stats{}
	module.initStats("test")
	module.data.buffer = make(chan StatItem, module.config.BufferSize)
	return module
}

func waitForStat(s *Stats, category, key string, expect int64) int64 {
	var v int64
	for i := 0; i < 500; i++ {
		v = s.Stat(category, key)
		if v == expect {
			return v
		}
		time.Sleep(10 * time.Millisecond)
	}
	return v
}

func TestIncrementAndStat(t *testing.T) {
	module := newTestModule()
	module.Start()

	for i := 0; i < 10; i++ {
		module.data.Increment("task", "finished")
	}
	module.data.IncrementBy("task", "records_out", 42)
	module.data.Decrement("task", "finished")

	assert.Equal(t, int64(9), waitForStat(module.data, "task", "finished", 9))
	assert.Equal(t, int64(42), waitForStat(module.data, "task", "records_out", 42))

	module.data.Absolute("task", "running", 3)
	assert.Equal(t, int64(3), module.data.Stat("task", "running"))

	module.Stop()

	//writes after close are dropped without blocking
	module.data.Increment("task", "finished")
	assert.Equal(t, int64(9), module.data.Stat("task", "finished"))
}

func TestTimingKeepsLastValue(t *testing.T) {
	module := newTestModule()
	module.data.Timing("chain", "run", 100)
	module.data.Timing("chain", "run", 250)
	assert.Equal(t, int64(250), module.data.Stat("chain", "run"))
}

func TestTimestampRoundTrip(t *testing.T) {
	module := newTestModule()

	_, err := module.data.GetTimestamp("task", "last_run")
	assert.Error(t, err)

	now := time.Now()
	module.data.RecordTimestamp("task", "last_run", now)
	v, err := module.data.GetTimestamp("task", "last_run")
	assert.NoError(t, err)
	assert.Equal(t, now, v)
}

func TestStatsAll(t *testing.T) {
	module := newTestModule()
	module.data.Absolute("chain", "total", 7)
	out := module.data.StatsAll()
	fmt.Println(out)
	assert.Contains(t, out, "chain")
	assert.Contains(t, out, "total")
}
