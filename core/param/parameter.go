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

package param

import (
	"fmt"
	"sync"
	"time"
)

// ParaKey is the type of keys stored in Parameters.
type ParaKey string

// Parameters is a concurrency-safe bag of loosely typed values, used as
// per-stage scratch space inside an execution context.
type Parameters struct {
	Data   map[string]interface{} `json:"data,omitempty"`
	l      *sync.RWMutex
	inited bool
}

func (para *Parameters) init() {
	if para.inited {
		return
	}
	if para.l == nil {
		para.l = &sync.RWMutex{}
	}
	para.l.Lock()
	if para.Data == nil {
		para.Data = map[string]interface{}{}
	}
	para.inited = true
	para.l.Unlock()
}

// ResetParameters drops all stored values.
func (para *Parameters) ResetParameters() {
	para.init()
	para.l.Lock()
	para.Data = map[string]interface{}{}
	para.l.Unlock()
}

func (para *Parameters) Has(key ParaKey) bool {
	para.init()
	para.l.RLock()
	_, ok := para.Data[string(key)]
	para.l.RUnlock()
	return ok
}

func (para *Parameters) Get(key ParaKey) interface{} {
	para.init()
	para.l.RLock()
	v := para.Data[string(key)]
	para.l.RUnlock()
	return v
}

func (para *Parameters) GetOrDefault(key ParaKey, val interface{}) interface{} {
	v := para.Get(key)
	if v == nil {
		return val
	}
	return v
}

func (para *Parameters) Set(key ParaKey, value interface{}) {
	para.init()
	para.l.Lock()
	para.Data[string(key)] = value
	para.l.Unlock()
}

func (para *Parameters) MustGet(key ParaKey) interface{} {
	para.init()

	para.l.RLock()
	v, ok := para.Data[string(key)]
	para.l.RUnlock()

	if !ok {
		panic(fmt.Errorf("%s not found in context", key))
	}

	return v
}

func (para *Parameters) GetString(key ParaKey) (string, bool) {
	v := para.Get(key)
	s, ok := v.(string)
	return s, ok
}

func (para *Parameters) MustGetString(key ParaKey) string {
	s, ok := para.GetString(key)
	if !ok {
		panic(fmt.Errorf("%s not found in context", key))
	}
	return s
}

func (para *Parameters) GetStringOrDefault(key ParaKey, val string) string {
	s, ok := para.GetString(key)
	if (!ok) || len(s) == 0 {
		return val
	}
	return s
}

func (para *Parameters) GetBool(key ParaKey, defaultV bool) bool {
	v := para.Get(key)
	s, ok := v.(bool)
	if ok {
		return s
	}
	return defaultV
}

func (para *Parameters) GetTime(key ParaKey) (time.Time, bool) {
	v := para.Get(key)
	s, ok := v.(time.Time)
	return s, ok
}

func (para *Parameters) GetInt(key ParaKey, defaultV int) (int, bool) {
	v, ok := para.GetInt64(key, 0)
	if ok {
		return int(v), ok
	}
	return defaultV, ok
}

func (para *Parameters) GetIntOrDefault(key ParaKey, defaultV int) int {
	v, ok := para.GetInt(key, defaultV)
	if ok {
		return v
	}
	return defaultV
}

// GetInt64OrDefault normalizes the numeric types a value may arrive as.
func GetInt64OrDefault(v interface{}, defaultV int64) (int64, bool) {

	s, ok := v.(int64)
	if ok {
		return s, ok
	}

	s1, ok := v.(uint64)
	if ok {
		return int64(s1), ok
	}

	s2, ok := v.(int)
	if ok {
		return int64(s2), ok
	}

	s3, ok := v.(uint)
	if ok {
		return int64(s3), ok
	}

	return defaultV, ok
}

func (para *Parameters) GetInt64(key ParaKey, defaultV int64) (int64, bool) {
	v := para.Get(key)

	return GetInt64OrDefault(v, defaultV)
}

func (para *Parameters) GetInt64OrDefault(key ParaKey, defaultV int64) int64 {
	v, ok := para.GetInt64(key, defaultV)
	if ok {
		return v
	}
	return defaultV
}

func (para *Parameters) MustGetInt(key ParaKey) int {
	v, ok := para.GetInt(key, 0)
	if !ok {
		panic(fmt.Errorf("%s not found in context", key))
	}
	return v
}

func (para *Parameters) GetMap(key ParaKey) (map[string]interface{}, bool) {
	v := para.Get(key)
	s, ok := v.(map[string]interface{})
	return s, ok
}

func (para *Parameters) MustGetMap(key ParaKey) map[string]interface{} {
	s, ok := para.GetMap(key)
	if !ok {
		panic(fmt.Errorf("%s not found in context", key))
	}
	return s
}
