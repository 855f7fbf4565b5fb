// Copyright (C) INFINI Labs & INFINI LIMITED.
//
// The INFINI Console is offered under the GNU Affero General Public License v3.0
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
package config

import (
	"fmt"
	"testing"

	"github.com/magiconair/properties/assert"
	"github.com/spf13/viper"
	"infini.sh/taskchain/core/util"
)

type testTaskEntry struct {
	Name    string `yaml:"name"`
	Reducer struct {
		Plugin string `yaml:"plugin"`
	} `yaml:"reducer"`
	Mappers []struct {
		Plugin     string            `yaml:"plugin"`
		Properties map[string]string `yaml:"properties"`
	} `yaml:"mappers"`
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile("config_test.yml")
	if err != nil {
		t.Fatalf("Failed to load config file: %v", err)
	}

	sys := SystemConfig{}
	if err := Unpack(cfg, &sys); err != nil {
		t.Fatalf("Failed to unpack config: %v", err)
	}

	assert.Equal(t, sys.NodeConfig.Name, "chain-node-1")
	assert.Equal(t, sys.LoggingConfig.LogLevel, "debug")
	assert.Equal(t, sys.Configs.AutoReload, false)
}

func TestLoadFileRendersVariables(t *testing.T) {
	cfg, err := LoadFile("config_test.yml")
	if err != nil {
		t.Fatalf("Failed to load config file: %v", err)
	}

	tasks := []testTaskEntry{}
	if err := Unpack(cfg["tasks"], &tasks); err != nil {
		t.Fatalf("Failed to unpack tasks: %v", err)
	}

	assert.Equal(t, len(tasks), 1)
	assert.Equal(t, tasks[0].Name, "wordcount")
	assert.Equal(t, tasks[0].Reducer.Plugin, "sum")
	assert.Equal(t, tasks[0].Mappers[0].Properties["factor"], "2")
}

func TestNestedTemplate1(t *testing.T) {
	temp := "prefix_$[[CLUSTER_ID]]_end"
	runKv := map[string]interface{}{}
	runKv["CLUSTER_ID"] = "123"

	configStr := NestedRenderingTemplate(temp, runKv)
	assert.Equal(t, configStr, "prefix_123_end")
	fmt.Println(configStr)
}

func TestNestedTemplate2(t *testing.T) {
	//rendered output carrying more tags gets rendered again
	temp := "$[[indirect]]"
	runKv := map[string]interface{}{}
	runKv["indirect"] = "$[[password]]"
	runKv["password"] = "345"

	configStr := NestedRenderingTemplate(temp, runKv)
	fmt.Println(configStr)
	assert.Equal(t, configStr, "345")
}

func TestNestedTemplate3(t *testing.T) {
	//unknown tags stay verbatim
	temp := "password: $[[keystore.123_password]]"
	runKv := map[string]interface{}{}
	runKv["CLUSTER_ID"] = "123"

	configStr := NestedRenderingTemplate(temp, runKv)
	fmt.Println(configStr)
	assert.Equal(t, configStr, "password: $[[keystore.123_password]]")
}

func TestNestedTemplate4(t *testing.T) {
	//more than one key
	temp := "      PASSWORD: $[[abc.123_password]]\n  USERNAME: $[[abc.efg_username]]"
	runKv := map[string]interface{}{}
	runKv["abc.123_password"] = "345"
	runKv["abc.efg_username"] = "889"

	configStr := NestedRenderingTemplate(temp, runKv)
	fmt.Println(configStr)
	assert.Equal(t, configStr, "      PASSWORD: 345\n  USERNAME: 889")
}

func TestGetVariableScalar(t *testing.T) {
	runKv := util.MapStr{}
	runKv["workers"] = 4

	v, ok := GetVariable(runKv, "workers")
	assert.Equal(t, ok, true)
	assert.Equal(t, v, "4")
}

type viperConfig map[string]interface{}

func defaultViperConfig1() viperConfig {
	return viperConfig{
		"failfast": false,
		"stage": viperConfig{
			"plugin":  "scale",
			"workers": 2,
		},
	}
}
func defaultViperConfig2() viperConfig {
	return viperConfig{
		"stage": viperConfig{
			"filename": "stageConfig",
		},
	}
}
func TestMergeViperCfg(t *testing.T) {
	conf1 := defaultViperConfig1()
	if err := viper.MergeConfigMap(conf1); err != nil {
		panic(err)
	}
	conf2 := defaultViperConfig2()
	if err := viper.MergeConfigMap(conf2); err != nil {
		panic(err)
	}
	fmt.Println(viper.AllSettings())
	assert.Equal(t, viper.GetString("stage.plugin"), "scale")
	assert.Equal(t, viper.GetString("stage.filename"), "stageConfig")
}
