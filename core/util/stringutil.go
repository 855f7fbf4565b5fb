/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package util

import (
	"strings"

	"github.com/segmentio/encoding/json"
)

func ContainStr(s, substr string) bool {
	return strings.Index(s, substr) != -1
}

func TrimSpaces(s string) string {
	return strings.TrimSpace(s)
}

func PrefixStr(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

func SuffixStr(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// ToJson convert the object to json string with optional indent
func ToJson(in interface{}, indent bool) string {
	if in == nil {
		return ""
	}

	var b []byte
	if indent {
		b, _ = json.MarshalIndent(in, " ", " ")
	} else {
		b, _ = json.Marshal(in)
	}
	return string(b)
}

func MustToJSONBytes(in interface{}) []byte {
	b, err := json.Marshal(in)
	if err != nil {
		panic(err)
	}
	return b
}

func FromJSONBytes(b []byte, to interface{}) error {
	return json.Unmarshal(b, to)
}
