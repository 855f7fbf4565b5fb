/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package task

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	log "github.com/cihub/seelog"
	"infini.sh/taskchain/core/chain"
	"infini.sh/taskchain/core/util"
)

// GroupsFromTextFile reads a line-oriented file and groups values by key.
// A line splits into key and value at the first separator, a line without
// one becomes a key with the value "1". Groups keep the order in which
// their keys first appear, values keep line order.
func GroupsFromTextFile(path, separator string) (chain.GroupIterator, error) {
	var keys []string
	grouped := map[string][]interface{}{}

	err := util.FileLinesWalk(path, func(line []byte) {
		text := strings.TrimRight(string(line), "\r")
		if text == "" {
			return
		}
		key, value := text, "1"
		if i := strings.Index(text, separator); i >= 0 {
			key, value = text[:i], text[i+len(separator):]
		}
		if _, ok := grouped[key]; !ok {
			keys = append(keys, key)
		}
		grouped[key] = append(grouped[key], value)
	})
	if err != nil {
		return nil, err
	}

	i := 0
	return chain.GroupIteratorFunc(func() (*chain.Group, bool) {
		if i >= len(keys) {
			return nil, false
		}
		key := keys[i]
		i++
		return &chain.Group{Key: key, Values: chain.ValuesFrom(grouped[key]...)}, true
	}), nil
}

type recordWriter interface {
	chain.Collector
	Close() error
}

// TextSink writes records out as separator-joined lines, one per record.
type TextSink struct {
	l         sync.Mutex
	file      *os.File
	writer    *bufio.Writer
	separator string
}

func NewTextSink(path, separator string) (*TextSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &TextSink{file: f, writer: bufio.NewWriter(f), separator: separator}, nil
}

func (sink *TextSink) Collect(record chain.Record) error {
	sink.l.Lock()
	defer sink.l.Unlock()
	_, err := fmt.Fprintf(sink.writer, "%v%v%v\n", record.Key, sink.separator, record.Value)
	return err
}

func (sink *TextSink) Close() error {
	sink.l.Lock()
	defer sink.l.Unlock()
	if err := sink.writer.Flush(); err != nil {
		sink.file.Close()
		return err
	}
	return sink.file.Close()
}

// logSink is the fallback when no output file is configured.
type logSink struct {
	separator string
}

func (sink logSink) Collect(record chain.Record) error {
	log.Infof("output: %v%v%v", record.Key, sink.separator, record.Value)
	return nil
}

func (sink logSink) Close() error {
	return nil
}

func (runner *TaskRunner) openSink() (recordWriter, error) {
	if runner.config.OutputFile == "" {
		return logSink{separator: runner.config.KeySeparator}, nil
	}
	return NewTextSink(runner.config.OutputFile, runner.config.KeySeparator)
}
