/*
Copyright 2016 Medcl (m AT medcl.net)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

   http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logger

import (
	"fmt"
	"os"
	"path"
	"strings"
	"sync"

	log "github.com/cihub/seelog"
	"infini.sh/taskchain/core/config"
	"infini.sh/taskchain/core/util"
)

var file string
var loggingLock sync.RWMutex
var loggingConfig *config.LoggingConfig

var oldQuoteStr = "\""
var newQuoteStr = "”"

func createMyLevelFormatter(params string) log.FormatterFunc {
	return func(message string, level log.LogLevel, context log.LogContextInterface) interface{} {
		if util.ContainStr(message, oldQuoteStr) {
			return strings.ReplaceAll(message, oldQuoteStr, newQuoteStr)
		}
		return message
	}
}

func init() {
	err := log.RegisterCustomFormatter("EscapedMsg", createMyLevelFormatter)
	if err != nil {
		panic(err)
	}
}

// SetLogging init set logging
func SetLogging(loggingCfg *config.LoggingConfig, appName string, baseDir string) {
	if loggingCfg == nil {
		panic("empty logging config")
	}
	if appName == "" {
		appName = "app"
	}
	loggingLock.Lock()
	loggingConfig = loggingCfg
	loggingLock.Unlock()

	if loggingConfig.LogLevel == "" {
		loggingConfig.LogLevel = "info"
	}

	format := "[%Date(01-02) %Time] [%LEV] [%File:%Line] %Msg%n"
	if loggingConfig.LogFormat != "" {
		format = loggingConfig.LogFormat
	}
	formatter, err := log.NewFormatter(format)
	if err != nil {
		fmt.Println(err)
	}

	l, _ := log.LogLevelFromString(strings.ToLower(loggingConfig.LogLevel))

	//logging receivers
	consoleReceiver := NewFileReceiver(os.Stdout, l)
	consoleOutput, err := log.NewCustomReceiverDispatcherByValue(formatter, consoleReceiver, "console", log.CustomReceiverInitArgs{})
	if err != nil {
		fmt.Println(err)
	}
	receivers := []interface{}{consoleOutput}

	if !loggingConfig.DisableFileOutput {
		if baseDir != "" {
			file = path.Join(baseDir, appName+".log")
		} else {
			file = "./log/" + appName + ".log"
		}

		os.MkdirAll(path.Dir(file), 0755)
		fileHandler, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Println(err)
		} else {
			fileReceiver := NewFileReceiver(fileHandler, l)
			fileOutput, err := log.NewCustomReceiverDispatcherByValue(formatter, fileReceiver, "file", log.CustomReceiverInitArgs{})
			if err != nil {
				fmt.Println(err)
			} else {
				receivers = append(receivers, fileOutput)
			}
		}
	}

	root, err := log.NewSplitDispatcher(formatter, receivers)
	if err != nil {
		fmt.Println(err)
	}

	globalConstraints, err := log.NewMinMaxConstraints(log.TraceLvl, log.Off)
	if err != nil {
		panic(err)
	}

	exceptions := []*log.LogLevelException{}

	logger := log.NewAsyncLoopLogger(log.NewLoggerConfig(globalConstraints, exceptions, root))
	err = log.ReplaceLogger(logger)
	if err != nil {
		fmt.Println(err)
	}

}

// GetLoggingConfig return logging configs
func GetLoggingConfig() *config.LoggingConfig {
	loggingLock.RLock()
	defer loggingLock.RUnlock()
	return loggingConfig
}

// Flush is flush logs to output
func Flush() {
	log.Flush()
}
