/*
Copyright 2016 Medcl (m AT medcl.net)

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
	"strings"
	"sync"

	"infini.sh/taskchain/core/config"
	"infini.sh/taskchain/core/errors"
	"infini.sh/taskchain/core/util"
)

type StageRole string

const REDUCE StageRole = "reduce"
const MAP StageRole = "map"

// StageOptions carries the optional build-time settings of one stage.
type StageOptions struct {
	// Overlay shadows same-named keys of the task's base configuration, for
	// this stage only.
	Overlay map[string]string

	// Declared record types, kept for documentation and debugging, never
	// enforced by the engine.
	InputKeyType    string
	InputValueType  string
	OutputKeyType   string
	OutputValueType string

	// RequiredProperties must be present in the stage's effective
	// configuration, checked at registration time.
	RequiredProperties []string
}

// StageDescriptor is the immutable build-time description of one stage.
type StageDescriptor struct {
	role    StageRole
	reducer Reducer
	mapper  Mapper
	overlay map[string]string

	inputKeyType    string
	inputValueType  string
	outputKeyType   string
	outputValueType string
}

func (d *StageDescriptor) Role() StageRole {
	return d.role
}

// Chain owns the ordered stage descriptors plus the task's base
// configuration. Built once, read-only during execution.
type Chain struct {
	id   string
	name string

	base   *config.Properties
	stages []*StageDescriptor

	outputKeyType   string
	outputValueType string

	executed  bool
	buildLock sync.Mutex
}

func NewChain(name string, base *config.Properties) *Chain {
	if base == nil {
		base = config.NewProperties()
	}
	c := &Chain{}
	c.id = util.GetUUID()
	c.name = strings.TrimSpace(name)
	c.base = base
	return c
}

func (c *Chain) GetID() string {
	return c.id
}

func (c *Chain) Name() string {
	return c.name
}

// SetReducer registers the reduce stage. It may be called at most once and
// must be the first registration of the chain.
func (c *Chain) SetReducer(handle Reducer, opts *StageOptions) error {
	c.buildLock.Lock()
	defer c.buildLock.Unlock()

	if c.executed {
		return errors.Errorf("chain %v already started, can't register reduce stage", c.name)
	}
	if handle == nil {
		return errors.Errorf("chain %v: reduce stage requires a handle", c.name)
	}
	if len(c.stages) > 0 {
		return errors.Errorf("chain %v: reduce stage must be registered first and only once", c.name)
	}

	d := &StageDescriptor{role: REDUCE, reducer: handle}
	if err := c.applyOptions(d, opts); err != nil {
		return err
	}
	c.stages = append(c.stages, d)
	return nil
}

// AddMapper appends a map stage, in call order.
func (c *Chain) AddMapper(handle Mapper, opts *StageOptions) error {
	c.buildLock.Lock()
	defer c.buildLock.Unlock()

	if c.executed {
		return errors.Errorf("chain %v already started, can't register map stage", c.name)
	}
	if handle == nil {
		return errors.Errorf("chain %v: map stage requires a handle", c.name)
	}

	d := &StageDescriptor{role: MAP, mapper: handle}
	if err := c.applyOptions(d, opts); err != nil {
		return err
	}
	c.stages = append(c.stages, d)
	return nil
}

func (c *Chain) applyOptions(d *StageDescriptor, opts *StageOptions) error {
	if opts != nil {
		d.overlay = opts.Overlay
		d.inputKeyType = opts.InputKeyType
		d.inputValueType = opts.InputValueType
		d.outputKeyType = opts.OutputKeyType
		d.outputValueType = opts.OutputValueType

		if len(opts.RequiredProperties) > 0 {
			effective := c.base.Overlay(opts.Overlay)
			if err := RequireProperties(opts.RequiredProperties...)(effective); err != nil {
				return errors.Wrapf(err, "chain %v: %v stage", c.name, d.role)
			}
		}
	}

	// the last registered stage decides what the whole chain emits
	c.outputKeyType = d.outputKeyType
	c.outputValueType = d.outputValueType
	return nil
}

func (c *Chain) HasReducer() bool {
	return len(c.stages) > 0 && c.stages[0].role == REDUCE
}

func (c *Chain) MapperCount() int {
	n := len(c.stages)
	if c.HasReducer() {
		n--
	}
	return n
}

func (c *Chain) StageCount() int {
	return len(c.stages)
}

// OutputTypes reports the declared key/value types of the chain's final
// output, as recorded by the last stage registration.
func (c *Chain) OutputTypes() (keyType string, valueType string) {
	return c.outputKeyType, c.outputValueType
}

// effectiveConfig derives stage i's configuration: the base properties
// unchanged when the stage has no overlay, otherwise a fresh copy with the
// overlay keys shadowing the base ones. The base is never mutated.
func (c *Chain) effectiveConfig(i int) *config.Properties {
	d := c.stages[i]
	if len(d.overlay) == 0 {
		return c.base
	}
	return c.base.Overlay(d.overlay)
}

func (c *Chain) sealForRun() {
	c.buildLock.Lock()
	c.executed = true
	c.buildLock.Unlock()
}
