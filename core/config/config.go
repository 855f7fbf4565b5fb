// Package config loads layered settings from YAML files, with $[[key]]
// variable rendering on top of the raw bytes before parsing.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/cihub/seelog"
	"github.com/valyala/fasttemplate"
	"gopkg.in/yaml.v2"
	"infini.sh/taskchain/core/errors"
	"infini.sh/taskchain/core/util"
)

// EnvConfig holds the `env` section of a config file, the local part of the
// variable namespace. OS environment variables overwrite these on load.
type EnvConfig struct {
	Environments map[string]interface{} `yaml:"env"`
}

// LoadFile reads a YAML file into a raw config tree. When the file carries
// $[[key]] variables they are rendered first, against the file's own `env`
// section merged with the OS environment.
func LoadFile(path string) (map[string]interface{}, error) {
	cfgBytes, err := util.FileGetContent(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %v", path)
	}

	bytesStr := util.UnsafeBytesToString(cfgBytes)
	if util.ContainStr(bytesStr, "$[[") {
		vars, err := LoadEnvVariables(cfgBytes)
		if err != nil {
			return nil, err
		}
		envObj := util.MapStr{}
		envObj.Put("env", map[string]interface{}(vars))
		bytesStr = NestedRenderingTemplate(bytesStr, envObj)
	}

	obj := map[string]interface{}{}
	if err := yaml.Unmarshal(util.UnsafeStringToBytes(bytesStr), &obj); err != nil {
		return nil, errors.Wrapf(err, "invalid config file: %v", path)
	}

	log.Debugf("load config file '%v'", path)
	return obj, nil
}

// LoadEnvVariables collects the variable namespace for rendering: the `env`
// section of the raw config, overwritten by the OS environment.
func LoadEnvVariables(raw []byte) (map[string]interface{}, error) {
	env1 := EnvConfig{}
	if err := yaml.Unmarshal(raw, &env1); err != nil {
		return nil, err
	}

	log.Debugf("config contain variables, try to parse with environments")
	obj := map[string]interface{}{}

	for k, v := range env1.Environments {
		obj[k] = v
	}

	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			obj[kv[0]] = kv[1]
		}
	}

	return obj, nil
}

// NestedRenderingTemplate renders $[[key]] tags from runKv, recursing while
// rendered output still carries resolvable tags. Unknown tags stay verbatim.
func NestedRenderingTemplate(temp string, runKv util.MapStr) string {
	template, err := fasttemplate.NewTemplate(temp, "$[[", "]]")
	if err != nil {
		panic(err)
	}

	configStr := template.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		variable, ok := GetVariable(runKv, tag)
		if ok {
			return w.Write([]byte(variable))
		}
		return w.Write([]byte("$[[" + tag + "]]"))
	})

	if configStr != temp && strings.Contains(configStr, "$[[") && strings.Contains(configStr, "]]") && strings.Index(configStr, "$[[") < strings.LastIndex(configStr, "]]") {
		newConfigStr := NestedRenderingTemplate(configStr, runKv)
		if newConfigStr != configStr {
			configStr = newConfigStr
		}
	}
	return configStr
}

// GetVariable resolves a dot-path key out of the runtime variables.
func GetVariable(runtimeKV util.MapStr, key string) (string, bool) {
	if runtimeKV == nil {
		return "", false
	}

	x, err := runtimeKV.GetValue(key)
	if err != nil {
		return "", false
	}
	str, ok := x.(string)
	if ok {
		return str, true
	}
	return fmt.Sprintf("%v", x), true
}

// Unpack re-marshals a raw config section into a typed struct.
func Unpack(section interface{}, to interface{}) error {
	bytes, err := yaml.Marshal(section)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(bytes, to)
}
