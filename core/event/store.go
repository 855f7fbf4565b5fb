/* ©INFINI, All Rights Reserved.
 * mail: contact#infini.ltd */

package event

import (
	"runtime"
	"sync"
	"time"

	log "github.com/cihub/seelog"
	"infini.sh/taskchain/core/global"
	"infini.sh/taskchain/core/stats"
	"infini.sh/taskchain/core/util"
)

var meta *NodeMeta

func RegisterMeta(m *NodeMeta) {
	meta = m
}

func getMeta() *NodeMeta {
	if meta == nil {
		meta = &NodeMeta{NodeID: util.GetUUID()}
	}
	return meta
}

func UpdateNodeID(nodeID string) {
	if meta != nil {
		meta.NodeID = nodeID
	}
}

// Handler receives every event passed to Save. Handlers must not block.
type Handler func(event Event)

var (
	handlerLock sync.RWMutex
	handlers    []Handler
)

func RegisterHandler(h Handler) {
	if h == nil {
		panic("event handler can't be nil")
	}
	handlerLock.Lock()
	handlers = append(handlers, h)
	handlerLock.Unlock()
}

func Save(event Event) error {

	event.Timestamp = time.Now()
	event.Node = getMeta()

	if global.Env().IsDebug {
		log.Debugf("%v-%v: %v", event.Metadata.Category, event.Metadata.Name, string(util.MustToJSONBytes(event.Metadata)))
	}

	stats.Increment("event.save", event.Metadata.Category, event.Metadata.Name)

	handlerLock.RLock()
	hs := make([]Handler, len(handlers))
	copy(hs, handlers)
	handlerLock.RUnlock()

	for _, h := range hs {
		dispatch(h, event)
	}

	return nil
}

func dispatch(h Handler, event Event) {
	defer func() {
		if !global.Env().IsDebug {
			if r := recover(); r != nil {
				var v string
				switch r.(type) {
				case error:
					v = r.(error).Error()
				case runtime.Error:
					v = r.(runtime.Error).Error()
				case string:
					v = r.(string)
				}
				log.Errorf("error on handle event [%v-%v]: %v", event.Metadata.Category, event.Metadata.Name, v)
			}
		}
	}()
	h(event)
}
