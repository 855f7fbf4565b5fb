/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package event

import (
	"time"

	"infini.sh/taskchain/core/util"
)

// Activity records a change made to the system, with an optional changelog of
// what exactly changed.
type Activity struct {
	ID        string           `json:"id,omitempty"`
	Timestamp time.Time        `json:"timestamp,omitempty"`
	Metadata  ActivityMetadata `json:"metadata"`
	Changelog interface{}      `json:"changelog,omitempty"`
	Fields    util.MapStr      `json:"payload,omitempty"`
}

type ActivityMetadata struct {
	Labels   util.MapStr `json:"labels,omitempty"`
	Category string      `json:"category,omitempty"`
	Group    string      `json:"group,omitempty"`
	Name     string      `json:"name,omitempty"`
	Type     string      `json:"type,omitempty"`
}
