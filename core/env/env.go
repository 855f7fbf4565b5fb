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

package env

import (
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	log "github.com/cihub/seelog"
	"infini.sh/taskchain/core/config"
	"infini.sh/taskchain/core/errors"
	"infini.sh/taskchain/core/util"
)

// Env is environment object of app
type Env struct {
	name          string
	uppercaseName string
	lowercaseName string
	desc          string

	//generated
	version     string
	commit      string
	buildDate   string
	buildNumber string
	//generated

	configFile string

	terminalHeader string
	terminalFooter string

	// static configs
	SystemConfig *config.SystemConfig

	IsDebug bool

	LoggingLevel string

	init bool

	workingDataDir string
	workingLogDir  string
}

func (env *Env) GetLastCommitHash() string {
	return util.TrimSpaces(env.commit)
}

// GetBuildDate returns the build datetime of current package
func (env *Env) GetBuildDate() time.Time {
	t, err := time.Parse(time.RFC3339, util.TrimSpaces(env.buildDate))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (env *Env) GetBuildNumber() string {
	return util.TrimSpaces(env.buildNumber)
}

// GetVersion returns the version of this build
func (env *Env) GetVersion() string {
	return util.TrimSpaces(env.version)
}

func (env *Env) GetAppName() string {
	return env.name
}

func (env *Env) GetAppCapitalName() string {
	return env.uppercaseName
}

func (env *Env) GetAppLowercaseName() string {
	return env.lowercaseName
}

func (env *Env) GetAppDesc() string {
	return env.desc
}

func (env *Env) GetWelcomeMessage() string {
	s := env.terminalHeader

	s += "[" + env.GetAppCapitalName() + "] " + env.GetAppDesc() + "\n"
	s += "[" + env.GetAppCapitalName() + "] " + env.GetVersion() + "#" + env.GetBuildNumber() + ", " + env.GetLastCommitHash()
	return s
}

func (env *Env) GetGoodbyeMessage() string {
	s := "[" + env.GetAppCapitalName() + "] " + env.GetVersion() + ", uptime: " + time.Since(GetStartTime()).String() + "\n\n"
	s += env.terminalFooter
	return s
}

// Init loads the config file and prepares the environment for use
func (env *Env) Init() *Env {
	if env.init {
		return env
	}

	err := env.loadConfig()
	if err != nil {
		panic(err)
	}

	if env.SystemConfig.NodeConfig.ID == "" {
		env.SystemConfig.NodeConfig.ID = util.GetUUID()
	}
	if env.SystemConfig.NodeConfig.Name == "" {
		name, _ := os.Hostname()
		env.SystemConfig.NodeConfig.Name = name
	}

	if env.IsDebug {
		log.Debug(util.ToJson(env.SystemConfig, true))
	}

	env.init = true
	return env
}

var startTime = time.Now().UTC()

var defaultSystemConfig = config.SystemConfig{
	PathConfig: config.PathConfig{
		Data: "data",
		Log:  "log",
	},
	LoggingConfig: config.LoggingConfig{
		LogLevel: "info",
	},
}

var configObject map[string]interface{}

func (env *Env) loadConfig() error {

	var ignoreFileMissing = false
	if env.configFile == "" {
		env.configFile = "./" + env.GetAppLowercaseName() + ".yml"
		ignoreFileMissing = true
	}

	system := defaultSystemConfig
	env.SystemConfig = &system

	filename, _ := filepath.Abs(env.configFile)

	if util.FileExists(filename) {
		err := env.loadEnvFromConfigFile(filename)
		if err != nil {
			return err
		}
	} else {
		if !ignoreFileMissing {
			return errors.Errorf("config not found: %s", filename)
		}
	}

	if env.LoggingLevel != "" {
		env.SystemConfig.LoggingConfig.LogLevel = env.LoggingLevel
	}

	return nil
}

func (env *Env) loadEnvFromConfigFile(filename string) error {
	log.Debug("loading config file:", filename)
	var err error
	configObject, err = config.LoadFile(filename)
	if err != nil {
		return err
	}

	if err := config.Unpack(configObject, env.SystemConfig); err != nil {
		return err
	}

	env.SetConfigFile(filename)

	if env.SystemConfig.Configs.AutoReload {
		log.Info("auto reload config, monitoring path:", filename)
		config.EnableWatcher(filename)
	}

	return nil
}

func (env *Env) GetConfigFile() string {
	return env.configFile
}

func (env *Env) SetConfigFile(configFile string) *Env {
	env.configFile = configFile
	return env
}

// ParseConfig unpacks one top-level config section into configInstance
func ParseConfig(configKey string, configInstance interface{}) (exist bool, err error) {
	if configObject == nil {
		log.Debugf("config: %s not found", configKey)
		return false, errors.Errorf("invalid config: %s", configKey)
	}

	section, ok := configObject[configKey]
	if !ok {
		log.Debugf("config: %s not found", configKey)
		return false, errors.Errorf("invalid config: %s", configKey)
	}

	log.Tracef("found config: %s ", configKey)

	exist = true

	err = config.Unpack(section, configInstance)
	log.Tracef("parsed config: %s, %v", configKey, configInstance)
	if err != nil {
		return exist, err
	}

	return exist, nil
}

// NewEnv creates a new env instance
func NewEnv(name, desc, ver, buildNumber, commit, buildDate, terminalHeader, terminalFooter string) *Env {
	return &Env{
		name:           util.TrimSpaces(name),
		uppercaseName:  strings.ToUpper(util.TrimSpaces(name)),
		lowercaseName:  strings.ToLower(util.TrimSpaces(name)),
		desc:           util.TrimSpaces(desc),
		version:        util.TrimSpaces(ver),
		commit:         util.TrimSpaces(commit),
		buildDate:      buildDate,
		buildNumber:    buildNumber,
		terminalHeader: terminalHeader,
		terminalFooter: terminalFooter,
	}
}

// EmptyEnv return a empty env instance
func EmptyEnv() *Env {
	system := defaultSystemConfig
	system.PathConfig.Data = os.TempDir()
	system.PathConfig.Log = os.TempDir()
	system.LoggingConfig.DisableFileOutput = true
	return &Env{
		name:          "app",
		uppercaseName: "APP",
		lowercaseName: "app",
		SystemConfig:  &system,
	}
}

func GetStartTime() time.Time {
	return startTime
}

// GetDataDir returns root working dir of app instance
func (env *Env) GetDataDir() string {
	if env.workingDataDir != "" {
		return env.workingDataDir
	}
	env.workingDataDir = path.Join(env.SystemConfig.PathConfig.Data, env.GetAppLowercaseName())
	return env.workingDataDir
}

func (env *Env) GetLogDir() string {
	if env.workingLogDir != "" {
		return env.workingLogDir
	}
	env.workingLogDir = path.Join(env.SystemConfig.PathConfig.Log, env.GetAppLowercaseName())
	return env.workingLogDir
}
