/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package history

import (
	log "github.com/cihub/seelog"
	"infini.sh/taskchain/core/env"
	"infini.sh/taskchain/core/event"
)

type HistoryConfig struct {
	Enabled   bool `yaml:"enabled" json:"enabled"`
	Shards    int  `yaml:"shards" json:"shards"`
	ShardSize int  `yaml:"shard_size" json:"shard_size"`
}

// HistoryModule subscribes to task lifecycle events and retains a bounded
// window of them for later inspection. Execution never reads it back.
type HistoryModule struct {
	config *HistoryConfig
}

var defaultStore *MemoryStore

func (module *HistoryModule) Name() string {
	return "history"
}

func (module *HistoryModule) Setup() {

	module.config = &HistoryConfig{
		Enabled:   true,
		Shards:    4,
		ShardSize: 100,
	}
	ok, err := env.ParseConfig("history", module.config)
	if ok && err != nil {
		log.Error(err)
	}

	if !module.config.Enabled {
		return
	}

	defaultStore = NewMemoryStore(module.config.Shards, module.config.ShardSize)
	event.RegisterHandler(func(ev event.Event) {
		defaultStore.Accept(ev)
	})
}

func (module *HistoryModule) Start() error {
	return nil
}

func (module *HistoryModule) Stop() error {
	return nil
}

// GetTaskHistory returns the retained events of one task, oldest first.
func GetTaskHistory(taskID string) []event.Event {
	if defaultStore == nil {
		return nil
	}
	return defaultStore.GetTaskHistory(taskID)
}

// GetTaskStatus returns the latest reported status of one task.
func GetTaskStatus(taskID string) (string, bool) {
	if defaultStore == nil {
		return "", false
	}
	return defaultStore.GetTaskStatus(taskID)
}

// TaskIDs returns the distinct task ids currently retained.
func TaskIDs() []string {
	if defaultStore == nil {
		return nil
	}
	return defaultStore.TaskIDs()
}
