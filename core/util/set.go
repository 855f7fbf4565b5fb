/* Copyright © INFINI LTD. All rights reserved.
 * Web: https://infinilabs.com
 * Email: hello#infini.ltd */

package util

import "github.com/emirpasic/gods/sets/hashset"

// StringSet builds a hashset from the given strings.
func StringSet(items ...string) *hashset.Set {
	s := hashset.New()
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// IsSuperset reports whether a contains every element of b.
func IsSuperset(a, b *hashset.Set) bool {
	for _, item := range b.Values() {
		if !a.Contains(item) {
			return false
		}
	}
	return true
}
