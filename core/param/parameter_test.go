package param

import (
	"fmt"
	"github.com/magiconair/properties/assert"
	"testing"
)

const keyDepth ParaKey = "DEPTH"
const keyMissing ParaKey = "MISSING"

func TestTypedGetters(t *testing.T) {
	para := Parameters{}
	para.Set(keyDepth, 23)
	para.Set("name", "medcl")
	para.Set("flag", true)

	v := para.MustGetInt(keyDepth)
	assert.Equal(t, v, 23)

	v1, ok := para.GetInt(keyMissing, 0)
	fmt.Println(v1, ok)
	assert.Equal(t, v1, 0)

	assert.Equal(t, para.MustGetString("name"), "medcl")
	assert.Equal(t, para.GetStringOrDefault(keyMissing, "fallback"), "fallback")
	assert.Equal(t, para.GetBool("flag", false), true)
	assert.Equal(t, para.GetBool(keyMissing, true), true)
	assert.Equal(t, para.GetInt64OrDefault(keyDepth, 0), int64(23))
}

func TestResetParameters(t *testing.T) {
	para := Parameters{}
	para.Set(keyDepth, 1)
	assert.Equal(t, para.Has(keyDepth), true)

	para.ResetParameters()
	assert.Equal(t, para.Has(keyDepth), false)
	assert.Equal(t, para.GetOrDefault(keyDepth, 42), 42)
}

func TestMustGetPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustGet on a missing key should panic")
		}
	}()
	para := Parameters{}
	para.MustGet(keyMissing)
}
