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
	"strings"
	"sync"

	log "github.com/cihub/seelog"
	"infini.sh/taskchain/core/config"
	"infini.sh/taskchain/core/errors"
	"infini.sh/taskchain/core/util"
)

type ReducerConstructor func(cfg *config.Properties) (Reducer, error)

type MapperConstructor func(cfg *config.Properties) (Mapper, error)

type registry struct {
	reducerReg map[string]ReducerConstructor
	mapperReg  map[string]MapperConstructor
	sync.RWMutex
}

var reg = &registry{
	reducerReg: map[string]ReducerConstructor{},
	mapperReg:  map[string]MapperConstructor{},
}

func RegisterReducerPlugin(name string, constructor ReducerConstructor) {
	reg.Lock()
	defer reg.Unlock()

	if _, found := reg.reducerReg[name]; found {
		panic(errors.Errorf("reducer plugin %v exists already", name))
	}
	reg.reducerReg[name] = constructor
}

func RegisterMapperPlugin(name string, constructor MapperConstructor) {
	reg.Lock()
	defer reg.Unlock()

	if _, found := reg.mapperReg[name]; found {
		panic(errors.Errorf("mapper plugin %v exists already", name))
	}
	reg.mapperReg[name] = constructor
}

func GetReducerPlugin(name string) (ReducerConstructor, error) {
	reg.RLock()
	defer reg.RUnlock()

	constructor, found := reg.reducerReg[name]
	if !found {
		var validPlugins []string
		for k := range reg.reducerReg {
			validPlugins = append(validPlugins, k)
		}
		return nil, errors.Errorf("the reducer plugin %s does not exist. valid plugins: %v", name, strings.Join(validPlugins, ", "))
	}
	return constructor, nil
}

func GetMapperPlugin(name string) (MapperConstructor, error) {
	reg.RLock()
	defer reg.RUnlock()

	constructor, found := reg.mapperReg[name]
	if !found {
		var validPlugins []string
		for k := range reg.mapperReg {
			validPlugins = append(validPlugins, k)
		}
		return nil, errors.Errorf("the mapper plugin %s does not exist. valid plugins: %v", name, strings.Join(validPlugins, ", "))
	}
	return constructor, nil
}

// StageConfig configs one stage of a chain.
type StageConfig struct {
	Plugin     string            `yaml:"plugin" json:"plugin"`
	Properties map[string]string `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// ChainConfig is the declarative form of a chain, one reduce stage plus any
// number of map stages layered over shared base properties.
type ChainConfig struct {
	Name       string            `yaml:"name" json:"name,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty" json:"properties,omitempty"`
	Reducer    *StageConfig      `yaml:"reducer" json:"reducer,omitempty"`
	Mappers    []*StageConfig    `yaml:"mappers,omitempty" json:"mappers,omitempty"`
}

func (this ChainConfig) Equals(target ChainConfig) bool {
	clog, err := util.DiffTwoObject(this, target)
	if err != nil {
		log.Error(err)
		return false
	}
	return len(clog) == 0
}

// BuildFromConfig turns a declarative chain config into a built chain. Each
// stage's constructor receives the stage's effective properties, base plus
// overlay.
func BuildFromConfig(cfg *ChainConfig) (*Chain, error) {
	if cfg == nil {
		return nil, errors.New("chain config is required")
	}

	base := config.PropertiesFromMap(cfg.Properties)
	c := NewChain(cfg.Name, base)

	if cfg.Reducer != nil {
		if cfg.Reducer.Plugin == "" {
			return nil, errors.Errorf("chain %v: reducer requires a plugin name", cfg.Name)
		}
		constructor, err := GetReducerPlugin(cfg.Reducer.Plugin)
		if err != nil {
			return nil, err
		}
		handle, err := constructor(base.Overlay(cfg.Reducer.Properties))
		if err != nil {
			return nil, errors.Wrapf(err, "build reducer [%v]", cfg.Reducer.Plugin)
		}
		err = c.SetReducer(handle, &StageOptions{Overlay: cfg.Reducer.Properties})
		if err != nil {
			return nil, err
		}
	}

	for _, m := range cfg.Mappers {
		if m == nil || m.Plugin == "" {
			return nil, errors.Errorf("chain %v: mapper requires a plugin name", cfg.Name)
		}
		constructor, err := GetMapperPlugin(m.Plugin)
		if err != nil {
			return nil, err
		}
		handle, err := constructor(base.Overlay(m.Properties))
		if err != nil {
			return nil, errors.Wrapf(err, "build mapper [%v]", m.Plugin)
		}
		err = c.AddMapper(handle, &StageOptions{Overlay: m.Properties})
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}
