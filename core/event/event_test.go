/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package event

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"infini.sh/taskchain/core/util"
)

func TestEventPutAndGetValue(t *testing.T) {
	e := Event{}
	_, err := e.PutValue("task_id", "t-1")
	assert.NoError(t, err)
	v, err := e.GetValue("task_id")
	assert.NoError(t, err)
	assert.Equal(t, "t-1", v)

	ts := time.Now()
	_, err = e.PutValue("@timestamp", ts)
	assert.NoError(t, err)
	v, err = e.GetValue("@timestamp")
	assert.NoError(t, err)
	assert.Equal(t, ts, v)
}

func TestSaveFanout(t *testing.T) {
	RegisterMeta(&NodeMeta{NodeID: "node-1", Hostname: "localhost"})

	var got []Event
	RegisterHandler(func(e Event) {
		got = append(got, e)
	})

	e := TaskInited{
		TaskID:       "t-1",
		LaunchTime:   time.Now(),
		TotalMappers: 2, TotalReducers: 1,
		Status: "running",
	}.ToEvent()
	err := Save(e)
	assert.NoError(t, err)

	assert.Equal(t, 1, len(got))
	assert.Equal(t, "task", got[0].Metadata.Category)
	assert.Equal(t, "task_inited", got[0].Metadata.Name)
	assert.Equal(t, "node-1", got[0].Node.NodeID)
	assert.False(t, got[0].Timestamp.IsZero())
	fmt.Println(got[0].String())
}

func TestSaveSurvivesPanickingHandler(t *testing.T) {
	RegisterHandler(func(e Event) {
		panic("boom")
	})
	var count int
	RegisterHandler(func(e Event) {
		count++
	})

	err := Save(StageStateChanged{
		TaskID:     "t-2",
		StageIndex: 0,
		Role:       "reduce",
		From:       "STARTING",
		To:         "RUNNING",
	}.ToEvent())
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestTaskFinishedFields(t *testing.T) {
	e := TaskFinished{
		TaskID:     "t-3",
		FinishTime: time.Now(),
		Status:     "failed",
		Error:      "stage 1 [map] failed: bad input",
	}.ToEvent()
	v, err := e.GetValue("error")
	assert.NoError(t, err)
	assert.Equal(t, "stage 1 [map] failed: bad input", v)

	ok := TaskFinished{TaskID: "t-4", FinishTime: time.Now(), Status: "finished"}.ToEvent()
	_, err = ok.GetValue("error")
	assert.Error(t, err)
}

func TestActivityChangelog(t *testing.T) {
	prev := util.MapStr{"factor": "2"}
	curr := util.MapStr{"factor": "3"}
	changes, err := util.DiffTwoObject(prev, curr)
	assert.NoError(t, err)

	a := Activity{
		ID:        util.GetUUID(),
		Timestamp: time.Now(),
		Metadata: ActivityMetadata{
			Category: "task",
			Group:    "config",
			Name:     "properties_reloaded",
			Type:     "update",
		},
		Changelog: changes,
	}
	assert.NotEmpty(t, a.ID)
	assert.NotNil(t, a.Changelog)
}
