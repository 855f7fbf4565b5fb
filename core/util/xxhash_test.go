/* Copyright © INFINI LTD. All rights reserved.
 * Web: https://infinilabs.com
 * Email: hello#infini.ltd */

package util

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestModString(t *testing.T) {
	str := "abc"
	p := ModString(str, 5)
	fmt.Println(p)
	assert.Equal(t, p, 2)
}

func TestXXHashStable(t *testing.T) {
	a := XXHash("group-a")
	b := XXHash("group-a")
	assert.Equal(t, a, b)
	assert.NotEqual(t, XXHash("group-a"), XXHash("group-b"))
}

func TestModStringRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		slot := ModString(fmt.Sprintf("key-%v", i), 8)
		assert.True(t, slot >= 0 && slot < 8)
	}
}

func BenchmarkModString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ModString(fmt.Sprintf("my-%v", i), 5)
	}
}
