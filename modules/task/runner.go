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

package task

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	log "github.com/cihub/seelog"
	"infini.sh/taskchain/core/chain"
	"infini.sh/taskchain/core/config"
	"infini.sh/taskchain/core/event"
	"infini.sh/taskchain/core/global"
	"infini.sh/taskchain/core/stats"
	"infini.sh/taskchain/core/util"
)

// TaskRunner drives one configured chain: it rebuilds the chain from config
// for every run, so a reloaded properties file takes effect on the next run.
type TaskRunner struct {
	config TaskRunnerConfig

	lock        sync.Mutex
	base        *config.Properties
	quitChannel chan bool
	cancelTask  context.CancelFunc
}

func (runner *TaskRunner) Start(cfg TaskRunnerConfig) {
	if !cfg.Enabled {
		log.Debugf("task runner: %s was disabled", cfg.Name)
		return
	}

	runner.lock.Lock()
	defer runner.lock.Unlock()
	runner.config = cfg
	if runner.config.KeySeparator == "" {
		runner.config.KeySeparator = "\t"
	}

	if runner.config.PropertiesFile != "" {
		props, err := config.LoadProperties(runner.config.PropertiesFile)
		if err != nil {
			log.Errorf("task runner: %s, load properties file: %v", runner.config.Name, err)
		} else {
			runner.base = props
		}
		config.EnableWatcher(runner.config.PropertiesFile)
		config.NotifyOnPropertiesFileChange(runner.config.PropertiesFile, runner.onPropertiesChange)
	}

	signalC := make(chan bool, 1)
	runner.quitChannel = signalC
	go runner.run(signalC)
	log.Infof("task runner: %s started", cfg.Name)
}

func (runner *TaskRunner) Stop() {
	if !runner.config.Enabled {
		log.Debugf("task runner: %s was disabled", runner.config.Name)
		return
	}

	runner.lock.Lock()
	defer runner.lock.Unlock()

	if runner.cancelTask != nil {
		runner.cancelTask()
	}
	if runner.quitChannel != nil {
		runner.quitChannel <- true
	}
	log.Debug("send exit signal to task runner: ", runner.config.Name)
}

func (runner *TaskRunner) run(signal chan bool) {

	if runner.config.Schedule == "" || runner.config.Schedule == "once" {
		runner.execute()
		return
	}

	interval := runner.config.IntervalInMs
	if interval <= 0 {
		interval = 10000
	}
	for {
		select {
		case <-signal:
			log.Trace("task runner:", runner.config.Name, " exit")
			return
		case <-time.After(time.Duration(interval) * time.Millisecond):
			runner.execute()
		}
	}
}

func (runner *TaskRunner) execute() {
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
				log.Error("task runner:", runner.config.Name, ", err: ", v)
			}
		}
	}()

	built, err := chain.BuildFromConfig(runner.chainConfig())
	if err != nil {
		stats.Increment("task."+runner.config.Name, "build_failed")
		log.Errorf("task runner: %s, build chain: %v", runner.config.Name, err)
		return
	}

	groups, err := GroupsFromTextFile(runner.config.InputFile, runner.config.KeySeparator)
	if err != nil {
		stats.Increment("task."+runner.config.Name, "input_failed")
		log.Errorf("task runner: %s, read input: %v", runner.config.Name, err)
		return
	}

	sink, err := runner.openSink()
	if err != nil {
		stats.Increment("task."+runner.config.Name, "output_failed")
		log.Errorf("task runner: %s, open output: %v", runner.config.Name, err)
		return
	}
	defer func() {
		if err := sink.Close(); err != nil {
			log.Errorf("task runner: %s, close output: %v", runner.config.Name, err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	runner.lock.Lock()
	runner.cancelTask = cancel
	runner.lock.Unlock()
	defer cancel()

	taskID := fmt.Sprintf("%v-%v", runner.config.Name, util.GetUUID())
	err = built.Run(&chain.TaskContext{
		TaskID:  taskID,
		Input:   groups,
		Output:  sink,
		Context: ctx,
	})
	if err != nil {
		log.Errorf("task runner: %s, task %v: %v", runner.config.Name, taskID, err)
		return
	}
	log.Infof("task runner: %s, task %v finished", runner.config.Name, taskID)
}

// chainConfig merges the reloadable properties file under the inline
// properties, inline entries win.
func (runner *TaskRunner) chainConfig() *chain.ChainConfig {
	runner.lock.Lock()
	base := runner.base
	runner.lock.Unlock()

	cfg := *runner.config.Chain
	if base != nil {
		merged := base.ToMap()
		for k, v := range runner.config.Chain.Properties {
			merged[k] = v
		}
		cfg.Properties = merged
	}
	if cfg.Name == "" {
		cfg.Name = runner.config.Name
	}
	return &cfg
}

func (runner *TaskRunner) onPropertiesChange(prev, curr *config.Properties) {
	if curr == nil {
		return
	}

	runner.lock.Lock()
	old := runner.base
	runner.base = curr
	runner.lock.Unlock()

	if prev == nil {
		prev = old
	}

	activity := event.Activity{
		ID:        util.GetUUID(),
		Timestamp: time.Now(),
		Metadata: event.ActivityMetadata{
			Category: "task",
			Group:    "config",
			Name:     "properties_change",
			Type:     "update",
			Labels:   util.MapStr{"runner": runner.config.Name},
		},
	}
	if prev != nil {
		changelog, err := prev.Diff(curr)
		if err != nil {
			log.Debug("diff properties,", err)
		} else {
			activity.Changelog = changelog
		}
	}

	stats.Increment("task."+runner.config.Name, "config_reload")
	log.Info("task runner: ", runner.config.Name, ", properties reloaded: ", util.ToJson(activity, false))
}
