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
	"runtime"

	log "github.com/cihub/seelog"
	"infini.sh/taskchain/core/errors"
	"infini.sh/taskchain/core/global"
)

// runReduce drives the reduce stage: drain the grouped input, invoking the
// handle per group against the outbound sink, then signal end-of-stream when
// a downstream handoff exists.
func (c *Chain) runReduce(ctx *Context, input GroupIterator, out Collector, downstream *Handoff) error {
	err := c.invokeReduce(ctx, input, out)
	return c.finishStage(ctx, err, downstream)
}

func (c *Chain) invokeReduce(ctx *Context, input GroupIterator, out Collector) (err error) {
	defer func() {
		if !global.Env().IsDebug {
			if r := recover(); r != nil {
				var v string
				switch r.(type) {
				case error:
					v = r.(error).Error()
				case runtime.Error:
					v = r.(runtime.Error).Error()
				case string:
					v = r.(string)
				}
				log.Error("error in reduce stage, ", c.name, ", ", v)
				err = errors.Errorf("reduce handle panic: %v", v)
			}
		}
	}()

	ctx.Running()
	handle := c.stages[0].reducer
	for {
		if ctx.IsCanceled() {
			return ErrAborted
		}
		group, ok := input.Next()
		if !ok {
			return nil
		}
		err = handle.Reduce(ctx, group.Key, group.Values, out)
		if err != nil {
			return err
		}
	}
}

// runMap drives one map stage: take from the inbound handoff until
// end-of-stream, invoking the handle per record against the outbound sink,
// then forward the sentinel when a downstream handoff exists.
func (c *Chain) runMap(ctx *Context, inbound *Handoff, out Collector, downstream *Handoff) error {
	err := c.invokeMap(ctx, inbound, out)
	return c.finishStage(ctx, err, downstream)
}

func (c *Chain) invokeMap(ctx *Context, inbound *Handoff, out Collector) (err error) {
	defer func() {
		if !global.Env().IsDebug {
			if r := recover(); r != nil {
				var v string
				switch r.(type) {
				case error:
					v = r.(error).Error()
				case runtime.Error:
					v = r.(runtime.Error).Error()
				case string:
					v = r.(string)
				}
				log.Error("error in map stage, ", c.name, ", ", v)
				err = errors.Errorf("map handle panic: %v", v)
			}
		}
	}()

	ctx.Running()
	handle := c.stages[ctx.index].mapper
	for {
		record, ok, e := inbound.Take(ctx)
		if e != nil {
			return e
		}
		if !ok {
			return nil
		}
		e = handle.Map(ctx, record, out)
		if e != nil {
			return e
		}
	}
}

// finishStage settles the stage's terminal state. A failed stage never
// forwards the end-of-stream token, the stream is not logically complete,
// it cancels the whole execution instead so blocked siblings wake promptly.
func (c *Chain) finishStage(ctx *Context, err error, downstream *Handoff) error {
	if err != nil {
		if errors.Is(err, ErrAborted) {
			ctx.Cancelled()
			return err
		}
		ctx.Failed()
		ctx.CancelTask()
		return err
	}

	if downstream != nil {
		if e := downstream.PutEnd(ctx); e != nil {
			ctx.Cancelled()
			return e
		}
	}
	ctx.Finished()
	return nil
}
