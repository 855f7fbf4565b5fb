// Copyright (C) INFINI Labs & INFINI LIMITED.
//
// The INFINI Framework is offered under the GNU Affero General Public License v3.0
// and as commercial software.
//
// For commercial licensing, contact us at:
//   - Website: infinilabs.com
//   - Email: hello@infini.ltd
//
// Open Source licensed under AGPL V3:
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	defaultLog "log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	log "github.com/cihub/seelog"
	"infini.sh/taskchain/core/config"
	"infini.sh/taskchain/core/env"
	"infini.sh/taskchain/core/event"
	"infini.sh/taskchain/core/global"
	"infini.sh/taskchain/core/host"
	"infini.sh/taskchain/core/logger"
	"infini.sh/taskchain/core/module"
	"infini.sh/taskchain/core/stats"
	"infini.sh/taskchain/core/util"
	"infini.sh/taskchain/modules"
	_ "infini.sh/taskchain/plugins/stages"
)

var appName = "taskchain"
var appDesc = "Chain configured map stages behind a reduce stage and run them as one task."

// injected at build time
var version = "1.0.0_SNAPSHOT"
var buildNumber = "001"
var commit = ""
var buildDate = ""

const terminalHeader = "   __             __        __          _\n" +
	"  / /_____ ______/ /_______/ /_  ____ _(_)___\n" +
	" / __/ __ `/ ___/ //_/ ___/ __ \\/ __ `/ / __ \\\n" +
	"/ /_/ /_/ (__  ) ,< / /__/ / / / /_/ / / / / /\n" +
	"\\__/\\__,_/____/_/|_|\\___/_/ /_/\\__,_/_/_/ /_/\n\n"

const terminalFooter = "Thanks for using TASKCHAIN, have a good day!\n"

func main() {

	showversion := flag.Bool("v", false, "version")
	logLevel := flag.String("log", "info", "the log level, options: trace,debug,info,warn,error")
	configFile := flag.String("config", appName+".yml", "the location of config file, default: "+appName+".yml")
	isDebug := flag.Bool("debug", false, "run in debug mode, "+appName+" will quit with panic error")
	numCPU := flag.Int("cpu", -1, "the number of CPUs to use")
	flag.Parse()

	appEnv := env.NewEnv(appName, appDesc, version, buildNumber, commit, buildDate, terminalHeader, terminalFooter)

	if *showversion {
		fmt.Println(appName, appEnv.GetVersion(), appEnv.GetBuildDate(), appEnv.GetLastCommitHash())
		os.Exit(1)
	}

	defaultLog.SetOutput(logger.EmptyLogger{})
	logger.SetLogging(&config.LoggingConfig{LogLevel: *logLevel, DisableFileOutput: true}, appName, "")

	appEnv.IsDebug = *isDebug
	appEnv.LoggingLevel = *logLevel
	appEnv.SetConfigFile(*configFile)
	appEnv.Init()

	global.RegisterEnv(appEnv)

	os.MkdirAll(appEnv.GetDataDir(), 0755)
	os.MkdirAll(appEnv.GetLogDir(), 0755)
	logger.SetLogging(&appEnv.SystemConfig.LoggingConfig, appEnv.GetAppLowercaseName(), appEnv.GetLogDir())

	if *numCPU <= 0 {
		runtime.GOMAXPROCS(runtime.NumCPU())
	} else {
		runtime.GOMAXPROCS(*numCPU)
	}

	fmt.Println(appEnv.GetWelcomeMessage())

	if !appEnv.SystemConfig.AllowMultiInstance {
		util.CheckInstanceLock(appEnv.GetDataDir())
	}

	event.RegisterMeta(host.BuildNodeMeta(appEnv.SystemConfig.NodeConfig.ID))

	stats.RegisterStats("runtime", func() interface{} {
		return util.MapStr{"goroutines": runtime.NumGoroutine()}
	})

	modules.Register()
	module.Start()

	quitSignal := make(chan bool)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		os.Interrupt)

	go func() {
		s := <-sigc
		fmt.Printf("\n[%s] got signal: %v, start shutting down\n", appEnv.GetAppCapitalName(), s.String())
		module.Stop()
		quitSignal <- true
	}()

	log.Infof("%s now started.", appEnv.GetAppName())

	<-quitSignal
	shutdown(appEnv)
}

func shutdown(appEnv *env.Env) {
	util.ClearInstanceLock()

	callbacks := global.ShutdownCallback()
	for i, v := range callbacks {
		log.Trace("executing callback: ", i)
		v()
	}

	config.StopWatchers()

	if appEnv.IsDebug {
		if m, err := stats.StatsMap(); err == nil {
			fmt.Println(util.ToJson(m, true))
		}
	}

	log.Infof("%s now terminated.", appEnv.GetAppName())
	log.Flush()
	logger.Flush()

	fmt.Println(appEnv.GetGoodbyeMessage())
	os.Exit(0)
}
