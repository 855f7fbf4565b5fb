/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMapStrPutGet(t *testing.T) {
	m := MapStr{}
	_, err := m.Put("task.stage.index", 2)
	assert.NoError(t, err)

	v, err := m.GetValue("task.stage.index")
	assert.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = m.GetValue("task.stage.role")
	assert.Error(t, err)
}

func TestMapStrFlatten(t *testing.T) {
	m := MapStr{
		"task": MapStr{
			"id":     "t1",
			"stages": 3,
		},
	}
	flat := m.Flatten()
	assert.Equal(t, "t1", flat["task.id"])
	assert.Equal(t, 3, flat["task.stages"])
}

func TestMapStrCloneEquals(t *testing.T) {
	m := MapStr{"labels": MapStr{"role": "reduce"}}
	c := m.Clone()
	assert.True(t, m.Equals(c))

	c.Put("labels.role", "map")
	assert.False(t, m.Equals(c))
	// original untouched
	v, _ := m.GetValue("labels.role")
	assert.Equal(t, "reduce", v)
}

func TestMapStrDelete(t *testing.T) {
	m := MapStr{"a": MapStr{"b": 1}}
	assert.NoError(t, m.Delete("a.b"))
	ok, _ := m.HasKey("a.b")
	assert.False(t, ok)
}
