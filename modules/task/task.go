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

package task

import (
	log "github.com/cihub/seelog"
	"infini.sh/taskchain/core/env"
	"infini.sh/taskchain/core/errors"
	"infini.sh/taskchain/core/global"
	"infini.sh/taskchain/core/util"
)

var started bool
var runners map[string]*TaskRunner

// TaskModule turns configured chains into running tasks.
type TaskModule struct {
}

func (module *TaskModule) Name() string {
	return "task"
}

var moduleConfig = struct {
	Enabled bool               `json:"enabled" yaml:"enabled"`
	Runners []TaskRunnerConfig `json:"runners,omitempty" yaml:"runners"`
}{
	Enabled: true,
}

func (module *TaskModule) Setup() {

	ok, err := env.ParseConfig("tasks", &moduleConfig)
	if ok && err != nil {
		panic(err)
	}

	if global.Env().IsDebug {
		log.Debug("task module config: ", util.ToJson(moduleConfig, false))
	}
}

func (module *TaskModule) Start() error {
	if started {
		return errors.New("task module already started, please stop it first.")
	}

	if !moduleConfig.Enabled {
		log.Debug("task module was disabled")
		return nil
	}

	runners = map[string]*TaskRunner{}
	for i, v := range moduleConfig.Runners {
		if v.Name == "" {
			panic(errors.Errorf("task runner name can't be null, %v, %v", i, v))
		}
		if v.Chain == nil {
			panic(errors.Errorf("task runner [%v] has no chain config", v.Name))
		}
		runners[v.Name] = &TaskRunner{config: v}
	}

	log.Debug("starting up task runners")
	for _, v := range runners {
		v.Start(v.config)
	}

	started = true
	return nil
}

func (module *TaskModule) Stop() error {
	if started {
		started = false
		log.Debug("shutting down task runners")
		for _, v := range runners {
			v.Stop()
		}
	} else {
		log.Error("task module is not started")
	}

	return nil
}
