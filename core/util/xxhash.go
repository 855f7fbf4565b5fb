/* Copyright © INFINI LTD. All rights reserved.
 * Web: https://infinilabs.com
 * Email: hello#infini.ltd */

package util

import (
	"github.com/OneOfOne/xxhash"
)

// XXHash returns the 32-bit xxHash digest of the string.
func XXHash(data string) uint32 {
	hash := xxhash.New32()
	hash.Write(UnsafeStringToBytes(data))
	return hash.Sum32()
}

// ModString maps the string onto [0,max) by hashing, for stable shard picks.
func ModString(data string, max int) int {
	hash := int(XXHash(data))
	return hash % max
}
