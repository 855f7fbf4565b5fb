// Copyright (C) INFINI Labs & INFINI LIMITED.
//
// The INFINI Framework is offered under the GNU Affero General Public License v3.0
// and as commercial software.
//
// For commercial licensing, contact us at:
//   - Website: infinilabs.com
//   - Email: hello@infini.ltd
//
// Open Source licensed under AGPL V3:
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package chain

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/cihub/seelog"
	"infini.sh/taskchain/core/errors"
	"infini.sh/taskchain/core/event"
	"infini.sh/taskchain/core/stats"
	"infini.sh/taskchain/core/util"
)

// TaskContext carries the task-scope collaborators of one execution.
type TaskContext struct {
	TaskID  string
	Input   GroupIterator
	Output  Collector
	Context context.Context
}

type countingCollector struct {
	out Collector
	n   int64
}

func (c *countingCollector) Collect(record Record) error {
	err := c.out.Collect(record)
	if err == nil {
		atomic.AddInt64(&c.n, 1)
	}
	return err
}

func (c *countingCollector) Count() int64 {
	return atomic.LoadInt64(&c.n)
}

type stageFailure struct {
	index int
	role  StageRole
	err   error
}

// Run executes the chain against the task's input and output:
//  1. no reduce stage registered, nothing to do;
//  2. reduce stage only, run it inline on the calling goroutine;
//  3. otherwise one goroutine per stage, wired upstream to downstream
//     through single-slot handoffs, the last stage writing to the task
//     output.
//
// Run joins every started runner and surfaces the first stage failure as
// `stage <index> [<role>] failed: <cause>`. The first failure cancels the
// execution so sibling stages blocked in a handoff finish CANCELLED instead
// of hanging, and a cancelled sibling never masks the root failure.
func (c *Chain) Run(task *TaskContext) error {
	if task == nil {
		return errors.New("task context is required")
	}
	if task.TaskID == "" {
		task.TaskID = util.GetUUID()
	}

	c.sealForRun()

	if !c.HasReducer() {
		log.Trace("chain, ", c.name, ", no reduce stage, nothing to run")
		return nil
	}
	if task.Input == nil || task.Output == nil {
		return errors.Errorf("chain %v: task input and output are required", c.name)
	}

	stats.Increment(c.name+".chain", "total")

	launch := time.Now()
	event.Save(event.TaskInited{
		TaskID:        task.TaskID,
		LaunchTime:    launch,
		TotalMappers:  c.MapperCount(),
		TotalReducers: 1,
		Status:        string(STARTING),
	}.ToEvent())

	parent := task.Context
	if parent == nil {
		parent = context.Background()
	}
	execCtx, cancel := context.WithCancel(parent)
	defer cancel()

	sink := &countingCollector{out: task.Output}

	contexts := make([]*Context, len(c.stages))
	for i, d := range c.stages {
		sctx := newStageContext(execCtx, cancel, d.role, i, c.effectiveConfig(i))
		idx, role := i, d.role
		sctx.onStateChange = func(from, to RunningState) {
			event.Save(event.StageStateChanged{
				TaskID:     task.TaskID,
				StageIndex: idx,
				Role:       string(role),
				From:       string(from),
				To:         string(to),
			}.ToEvent())
		}
		contexts[i] = sctx
	}

	results := make([]error, len(c.stages))

	if c.MapperCount() == 0 {
		log.Debug("chain, ", c.name, ", running reduce stage inline")
		results[0] = c.runReduce(contexts[0], task.Input, sink, nil)
		return c.finishRun(task, launch, contexts, results, sink)
	}

	handoffs := make([]*Handoff, c.MapperCount())
	for i := range handoffs {
		handoffs[i] = NewHandoff(fmt.Sprintf("%v.%v", c.name, i))
	}

	wg := sync.WaitGroup{}

	wg.Add(1)
	stats.Increment(c.name+".chain", "runners_started")
	go func(sctx *Context) {
		defer wg.Done()
		results[0] = c.runReduce(sctx, task.Input, handoffs[0].Collector(sctx), handoffs[0])
	}(contexts[0])

	for i := 1; i < len(c.stages); i++ {
		inbound := handoffs[i-1]
		var downstream *Handoff
		var out Collector = sink
		if i < len(c.stages)-1 {
			downstream = handoffs[i]
			out = downstream.Collector(contexts[i])
		}

		wg.Add(1)
		stats.Increment(c.name+".chain", "runners_started")
		go func(sctx *Context, inbound *Handoff, out Collector, downstream *Handoff) {
			defer wg.Done()
			results[sctx.index] = c.runMap(sctx, inbound, out, downstream)
		}(contexts[i], inbound, out, downstream)
	}

	wg.Wait()
	return c.finishRun(task, launch, contexts, results, sink)
}

func (c *Chain) finishRun(task *TaskContext, launch time.Time, contexts []*Context, results []error, sink *countingCollector) error {
	var failures errors.Errors
	var first *stageFailure
	var cancelled *stageFailure

	for i, sctx := range contexts {
		if sctx.StartTime != nil && sctx.EndTime != nil {
			stats.Timing(c.name+".chain", fmt.Sprintf("stage_%v", i), sctx.EndTime.Sub(*sctx.StartTime).Nanoseconds())
		}
		e := results[i]
		if e == nil {
			continue
		}
		switch sctx.GetRunningState() {
		case FAILED:
			if first == nil {
				first = &stageFailure{index: i, role: sctx.role, err: e}
			}
			failures = append(failures, errors.Wrapf(e, "stage %v [%v] failed", i, sctx.role))
		case CANCELLED:
			if cancelled == nil {
				cancelled = &stageFailure{index: i, role: sctx.role, err: e}
			}
		}
	}

	elapsed := time.Since(launch)
	stats.Timing(c.name+".chain", "run", elapsed.Nanoseconds())
	stats.IncrementBy(c.name+".chain", "records_out", sink.Count())

	var err error
	status := FINISHED
	if first != nil {
		status = FAILED
		err = errors.Wrapf(first.err, "stage %v [%v] failed", first.index, first.role)
		if len(failures) > 1 {
			log.Debug("chain, ", c.name, ", all stage failures: ", failures.Err())
		}
		stats.Increment(c.name+".chain", "failed")
	} else if cancelled != nil {
		status = CANCELLED
		err = errors.Wrapf(cancelled.err, "stage %v [%v] cancelled", cancelled.index, cancelled.role)
		stats.Increment(c.name+".chain", "cancelled")
	} else {
		stats.Increment(c.name+".chain", "finished")
	}

	finished := event.TaskFinished{
		TaskID:         task.TaskID,
		FinishTime:     time.Now(),
		Status:         string(status),
		EmittedRecords: sink.Count(),
	}
	if err != nil {
		finished.Error = err.Error()
	}
	event.Save(finished.ToEvent())

	log.Debug("chain, ", c.name, ", task: ", task.TaskID, ", state: ", status, ", records: ", sink.Count(), ", elapsed: ", elapsed)
	return err
}
