/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package config

import (
	"runtime"
	"sync"
	"time"

	log "github.com/cihub/seelog"
	"github.com/fsnotify/fsnotify"
	"infini.sh/taskchain/core/util"
)

type Watcher struct {
	path      string
	watcher   *fsnotify.Watcher
	callbacks []CallbackFunc
}

type CallbackFunc func(file string, op fsnotify.Op)

var fsWatchers map[string]*Watcher = map[string]*Watcher{}

func loadPropertiesFile(file string) *Properties {
	if util.SuffixStr(file, ".yml") || util.SuffixStr(file, ".yaml") || util.SuffixStr(file, ".properties") {
		if !util.FileExists(file) {
			return nil
		}
		v1, err := LoadProperties(file)
		if err != nil {
			log.Error(err)
			return nil
		}
		return v1
	}
	return nil
}

// EnableWatcher reloads property files under path when they change on disk.
func EnableWatcher(path string) {
	if !util.FileExists(path) {
		log.Debugf("path: %v not exists, skip watcher", path)
		return
	}
	AddPathToWatch(path, func(file string, op fsnotify.Op) {})

	log.Debugf("enable watcher on path: %v", path)
}

var watcherLock = sync.Once{}
var watcherIsRunning = false

// event bus
var events chan fsnotify.Event = make(chan fsnotify.Event, 10)

func AddPathToWatch(path string, callback CallbackFunc) {

	var err error
	watcher, ok := fsWatchers[path]
	if ok {
		watcher.callbacks = append(watcher.callbacks, callback)
		return
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error(err)
		return
	}

	watcher = &Watcher{
		path:      path,
		watcher:   fsWatcher,
		callbacks: []CallbackFunc{callback},
	}

	fsWatchers[path] = watcher

	watcherLock.Do(func() {
		if watcherIsRunning {
			return
		}
		watcherIsRunning = true

		//handle events
		go func(watcher *Watcher) {

			defer func() {
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
					log.Trace("error on handle configs,", v)
				}
			}()

			//merge changes within 1 second
			lastSeen := map[string]time.Time{}
			for {
				select {
				case ev := <-fsWatcher.Events:
					{
						if util.SuffixStr(ev.Name, "~") {
							log.Trace("skip temp file:", ev.String())
							continue
						}

						if t, ok := lastSeen[ev.Name]; ok && time.Since(t) < 1*time.Second {
							log.Trace("1 seconds within, skip:", ev.String())
							continue
						}
						lastSeen[ev.Name] = time.Now()

						log.Trace("config changed:", ev.String())
						events <- ev
					}
				case err := <-fsWatcher.Errors:
					{
						log.Debug("error : ", err)
						return
					}
				}
			}

		}(watcher)

		//handle config reload
		go func() {
			defer func() {
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
					log.Trace("error on handle configs,", v)
				}
			}()

			var ev fsnotify.Event
			var ok bool
			for {
				ev, ok = <-events
				if !ok {
					return
				}
				log.Trace("2 seconds wait, on:", ev.String())
				time.Sleep(2 * time.Second)
				log.Trace("2 seconds out, on:", ev.String())

				for _, w := range fsWatchers {
					for _, v := range w.callbacks {
						v(ev.Name, ev.Op)
					}
				}

				props := loadPropertiesFile(ev.Name)
				if props == nil {
					continue
				}
				cfgLocker.RLock()
				listeners := notify[ev.Name]
				previous := latestProperties[ev.Name]
				cfgLocker.RUnlock()

				for _, f := range listeners {
					f(previous, props)
				}

				cfgLocker.Lock()
				latestProperties[ev.Name] = props
				cfgLocker.Unlock()
			}
		}()
	})

	err = fsWatcher.Add(path)
	if err != nil {
		log.Error(err)
		return
	}
}

var latestProperties = map[string]*Properties{}

func StopWatchers() {
	for _, v := range fsWatchers {
		if v.watcher != nil {
			v.watcher.Close()
		}
	}
	close(events)
}

var notify = map[string][]func(prev, curr *Properties){}
var cfgLocker = sync.RWMutex{}

// NotifyOnPropertiesFileChange calls f with the previous and freshly loaded
// property sets whenever the watched file changes.
func NotifyOnPropertiesFileChange(file string, f func(prev, curr *Properties)) {
	cfgLocker.Lock()
	defer cfgLocker.Unlock()

	v, ok := notify[file]
	if !ok {
		v = []func(prev, curr *Properties){}
	}
	v = append(v, f)
	notify[file] = v
}
