/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package event

import (
	"time"

	"infini.sh/taskchain/core/util"
)

// TaskInited is recorded once a task's chain is wired up and its stages are
// about to start.
type TaskInited struct {
	TaskID        string    `json:"task_id"`
	LaunchTime    time.Time `json:"launch_time"`
	TotalMappers  int       `json:"total_mappers"`
	TotalReducers int       `json:"total_reducers"`
	Status        string    `json:"status"`
}

func (e TaskInited) ToEvent() Event {
	return Event{
		Metadata: EventMetadata{
			Category: "task",
			Name:     "task_inited",
			Labels:   util.MapStr{"task_id": e.TaskID},
		},
		Fields: util.MapStr{
			"task_id":        e.TaskID,
			"launch_time":    e.LaunchTime,
			"total_mappers":  e.TotalMappers,
			"total_reducers": e.TotalReducers,
			"status":         e.Status,
		},
	}
}

// TaskFinished is recorded when a task run completes, successfully or not.
type TaskFinished struct {
	TaskID         string    `json:"task_id"`
	FinishTime     time.Time `json:"finish_time"`
	Status         string    `json:"status"`
	Error          string    `json:"error,omitempty"`
	EmittedRecords int64     `json:"emitted_records"`
}

func (e TaskFinished) ToEvent() Event {
	fields := util.MapStr{
		"task_id":         e.TaskID,
		"finish_time":     e.FinishTime,
		"status":          e.Status,
		"emitted_records": e.EmittedRecords,
	}
	if e.Error != "" {
		fields["error"] = e.Error
	}
	return Event{
		Metadata: EventMetadata{
			Category: "task",
			Name:     "task_finished",
			Labels:   util.MapStr{"task_id": e.TaskID},
		},
		Fields: fields,
	}
}

// StageStateChanged is recorded on every stage state transition.
type StageStateChanged struct {
	TaskID     string `json:"task_id"`
	StageIndex int    `json:"stage_index"`
	Role       string `json:"role"`
	From       string `json:"from"`
	To         string `json:"to"`
}

func (e StageStateChanged) ToEvent() Event {
	return Event{
		Metadata: EventMetadata{
			Category: "task",
			Name:     "stage_state_changed",
			Labels:   util.MapStr{"task_id": e.TaskID},
		},
		Fields: util.MapStr{
			"task_id":     e.TaskID,
			"stage_index": e.StageIndex,
			"role":        e.Role,
			"from":        e.From,
			"to":          e.To,
		},
	}
}
