/* ©INFINI, All Rights Reserved.
 * mail: contact#infini.ltd */

package event

import (
	"errors"
	"fmt"
	"time"

	"infini.sh/taskchain/core/util"
)

type Event struct {
	Node *NodeMeta `json:"node,omitempty"`

	Timestamp time.Time     `json:"timestamp,omitempty"`
	Metadata  EventMetadata `json:"metadata"`
	Fields    util.MapStr   `json:"payload"`
}

type EventMetadata struct {
	Labels   util.MapStr `json:"labels,omitempty"`
	Category string      `json:"category,omitempty"`
	Name     string      `json:"name,omitempty"`
	Version  string      `json:"version,omitempty"`
}

func (e *Event) String() string {
	return fmt.Sprintf("%v %v %v", e.Timestamp.UTC().Unix(), e.Metadata.Category, e.Metadata.Name)
}

type NodeMeta struct {
	NodeID   string `json:"id,omitempty"`
	Hostname string `json:"hostname,omitempty"`
	OS       string `json:"os,omitempty"`
	Arch     string `json:"arch,omitempty"`

	Labels map[string]string `json:"labels,omitempty"`
}

var errNoTimestamp = errors.New("no timestamp found")

func (e *Event) GetValue(key string) (interface{}, error) {
	if key == "@timestamp" {
		return e.Timestamp, nil
	}
	return e.Fields.GetValue(key)
}

func (e *Event) PutValue(key string, v interface{}) (interface{}, error) {
	if key == "@timestamp" {
		ts, ok := v.(time.Time)
		if !ok {
			return nil, errNoTimestamp
		}
		e.Timestamp = ts
		return nil, nil
	}

	if e.Fields == nil {
		e.Fields = util.MapStr{}
	}
	return e.Fields.Put(key, v)
}

func (e *Event) Delete(key string) error {
	return e.Fields.Delete(key)
}
