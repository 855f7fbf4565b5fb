/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/magiconair/properties/assert"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "taskchain.yml")
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestEmptyEnvInit(t *testing.T) {
	env := EmptyEnv()
	env.Init()

	assert.Equal(t, env.GetAppName(), "app")
	assert.Equal(t, env.SystemConfig.LoggingConfig.DisableFileOutput, true)
	if env.SystemConfig.NodeConfig.ID == "" {
		t.Error("node id should be assigned on init")
	}
}

func TestInitLoadsConfigFile(t *testing.T) {
	file := writeTestConfig(t, `
node:
  name: tester
log:
  log_level: trace
tasks:
  runners:
    - name: wordcount
`)

	env := NewEnv("TASKCHAIN", "stage chaining runner", "1.0.0_SNAPSHOT", "001", "", "", "", "")
	env.SetConfigFile(file)
	env.Init()

	assert.Equal(t, env.SystemConfig.NodeConfig.Name, "tester")
	assert.Equal(t, env.SystemConfig.LoggingConfig.LogLevel, "trace")
	assert.Equal(t, env.GetAppLowercaseName(), "taskchain")
	assert.Equal(t, env.GetAppCapitalName(), "TASKCHAIN")

	taskCfg := struct {
		Runners []struct {
			Name string `yaml:"name"`
		} `yaml:"runners"`
	}{}
	exist, err := ParseConfig("tasks", &taskCfg)
	assert.Equal(t, exist, true)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, len(taskCfg.Runners), 1)
	assert.Equal(t, taskCfg.Runners[0].Name, "wordcount")

	exist, err = ParseConfig("not_there", &taskCfg)
	assert.Equal(t, exist, false)
	if err == nil {
		t.Error("expected error for missing section")
	}
}

func TestLoggingLevelOverride(t *testing.T) {
	file := writeTestConfig(t, `
log:
  log_level: info
`)

	env := NewEnv("TASKCHAIN", "", "1.0.0", "001", "", "", "", "")
	env.SetConfigFile(file)
	env.LoggingLevel = "debug"
	env.Init()

	assert.Equal(t, env.SystemConfig.LoggingConfig.LogLevel, "debug")
}

func TestVersionInfo(t *testing.T) {
	env := NewEnv("TASKCHAIN", "", "1.2.0", "007", "abc123", "2025-01-02T00:00:00Z", "", "")
	v := env.GetVersionInfo()
	assert.Equal(t, v.VersionNumber, "1.2.0")
	assert.Equal(t, v.BuildNumber, "007")
	assert.Equal(t, v.BuildCommitHash, "abc123")
	assert.Equal(t, env.GetBuildDate().Year(), 2025)
}
