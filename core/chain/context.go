/*
Copyright Medcl (m AT medcl.net)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

   http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package chain

import (
	"context"
	"sync"
	"time"

	"infini.sh/taskchain/core/config"
	"infini.sh/taskchain/core/param"
)

type RunningState string

const STARTING RunningState = "STARTING"
const RUNNING RunningState = "RUNNING"
const FINISHED RunningState = "FINISHED"
const FAILED RunningState = "FAILED"
const CANCELLED RunningState = "CANCELLED"

// Context is the execution context of exactly one stage: the stage's
// effective configuration, a scratch parameter bag, the shared cancelable
// context of the whole execution, and the runner state machine. Only the
// stage's own goroutine mutates it.
type Context struct {
	param.Parameters `json:"parameters,omitempty"`

	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	role  StageRole
	index int

	config *config.Properties

	runningState    RunningState
	context.Context `json:"-"`
	cancelFunc      context.CancelFunc
	onStateChange   func(from, to RunningState)
	stateLock       sync.RWMutex
}

func newStageContext(shared context.Context, cancel context.CancelFunc, role StageRole, index int, cfg *config.Properties) *Context {
	ctx := Context{}
	ctx.Context = shared
	ctx.cancelFunc = cancel
	ctx.role = role
	ctx.index = index
	ctx.config = cfg
	t := time.Now()
	ctx.StartTime = &t
	ctx.ResetParameters()
	ctx.runningState = STARTING
	return &ctx
}

func (ctx *Context) Role() StageRole {
	return ctx.role
}

func (ctx *Context) Index() int {
	return ctx.index
}

// Config returns the stage's effective configuration, derived once before
// the stage started and private to it.
func (ctx *Context) Config() *config.Properties {
	return ctx.config
}

func (ctx *Context) GetRunningState() RunningState {
	ctx.stateLock.RLock()
	defer ctx.stateLock.RUnlock()
	return ctx.runningState
}

func (ctx *Context) IsCanceled() bool {
	select {
	case <-ctx.Context.Done():
		return true
	default:
		return false
	}
}

func (ctx *Context) Running() {
	ctx.transition(RUNNING)
}

func (ctx *Context) Finished() {
	ctx.transition(FINISHED)
}

func (ctx *Context) Failed() {
	ctx.transition(FAILED)
}

func (ctx *Context) Cancelled() {
	ctx.transition(CANCELLED)
}

func (ctx *Context) transition(to RunningState) {
	ctx.stateLock.Lock()
	from := ctx.runningState
	ctx.runningState = to
	if to == FINISHED || to == FAILED || to == CANCELLED {
		t := time.Now()
		ctx.EndTime = &t
	}
	ctx.stateLock.Unlock()

	if from != to && ctx.onStateChange != nil {
		ctx.onStateChange(from, to)
	}
}

// CancelTask asks every stage of this execution to stop, waking siblings
// blocked in handoff put/take.
func (ctx *Context) CancelTask() {
	ctx.cancelFunc()
}
