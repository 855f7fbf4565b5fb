/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package util

import (
	"sync"
	"testing"
)

func TestIDGenerator(t *testing.T) {
	var set = map[string]interface{}{}
	var s = sync.RWMutex{}
	var wg sync.WaitGroup
	for j := 0; j < 50; j++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				id := GetUUID()
				s.Lock()
				if _, ok := set[id]; ok {
					panic(id)
				} else {
					set[id] = true
				}
				s.Unlock()
			}
		}()
	}
	wg.Wait()
}

func BenchmarkGetUUID(t *testing.B) {

	for i := 0; i < t.N; i++ {
		GetUUID()
	}
}
