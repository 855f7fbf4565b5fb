// Package stages ships the built-in reducer and mapper plugins.
package stages

import (
	"strings"

	"infini.sh/taskchain/core/errors"
	"infini.sh/taskchain/core/util"
)

// toFloat coerces record values to a number, text input arrives as strings.
func toFloat(v interface{}) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		n, err := util.StringToFloat(strings.TrimSpace(x))
		if err != nil {
			return 0, errors.Errorf("not a number: %v", x)
		}
		return n, nil
	default:
		return 0, errors.Errorf("not a number: %v", v)
	}
}
