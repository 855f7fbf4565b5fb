/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlayShadowsBase(t *testing.T) {
	base := PropertiesFromMap(map[string]string{
		"separator": "\t",
		"factor":    "1",
	})

	eff := base.Overlay(map[string]string{"factor": "2"})

	assert.Equal(t, "2", eff.Get("factor"))
	assert.Equal(t, "\t", eff.Get("separator"))
	// base stays untouched
	assert.Equal(t, "1", base.Get("factor"))
}

func TestOverlayIsolationBetweenSiblings(t *testing.T) {
	base := PropertiesFromMap(map[string]string{"factor": "1"})

	first := base.Overlay(map[string]string{"factor": "2"})
	second := base.Overlay(map[string]string{"factor": "3"})

	assert.Equal(t, "2", first.Get("factor"))
	assert.Equal(t, "3", second.Get("factor"))
	assert.Equal(t, "1", base.Get("factor"))
}

func TestTypedGetters(t *testing.T) {
	p := PropertiesFromMap(map[string]string{
		"workers": "4",
		"ratio":   "0.5",
		"enabled": "true",
		"broken":  "not-a-number",
	})

	assert.Equal(t, 4, p.GetInt("workers", 1))
	assert.Equal(t, 1, p.GetInt("missing", 1))
	assert.Equal(t, 1, p.GetInt("broken", 1))
	assert.Equal(t, 0.5, p.GetFloat("ratio", 1.0))
	assert.Equal(t, true, p.GetBool("enabled", false))
	assert.Equal(t, "fallback", p.GetOrDefault("missing", "fallback"))

	v, ok := p.Lookup("workers")
	assert.True(t, ok)
	assert.Equal(t, "4", v)
	_, ok = p.Lookup("missing")
	assert.False(t, ok)
}

func TestKeysSorted(t *testing.T) {
	p := PropertiesFromMap(map[string]string{"c": "3", "a": "1", "b": "2"})
	assert.Equal(t, []string{"a", "b", "c"}, p.Keys())
	assert.Equal(t, 3, p.Len())
}

func TestEqualsAndDiff(t *testing.T) {
	a := PropertiesFromMap(map[string]string{"k": "v"})
	b := PropertiesFromMap(map[string]string{"k": "v"})
	assert.True(t, a.Equals(b))

	c := a.Overlay(map[string]string{"k": "v2"})
	assert.False(t, a.Equals(c))

	changes, err := a.Diff(c)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(changes))
	fmt.Println(changes)
}

func TestResolveVariables(t *testing.T) {
	p := PropertiesFromMap(map[string]string{
		"output": "$[[data_dir]]/out.txt",
		"plain":  "untouched",
		"orphan": "$[[unknown]]",
	})

	resolved := p.ResolveVariables(map[string]string{"data_dir": "/tmp/task"})

	assert.Equal(t, "/tmp/task/out.txt", resolved.Get("output"))
	assert.Equal(t, "untouched", resolved.Get("plain"))
	assert.Equal(t, "$[[unknown]]", resolved.Get("orphan"))
	// source set is not modified
	assert.Equal(t, "$[[data_dir]]/out.txt", p.Get("output"))
}

func TestLoadPropertiesFile(t *testing.T) {
	p, err := LoadProperties("testdata/chain.properties")
	assert.NoError(t, err)
	assert.Equal(t, "sum", p.Get("chain.reduce.plugin"))
	assert.Equal(t, 2, p.GetInt("chain.map.0.factor", 0))

	y, err := LoadProperties("testdata/chain.yml")
	assert.NoError(t, err)
	assert.Equal(t, "sum", y.Get("chain.reduce.plugin"))
	assert.Equal(t, 2, y.GetInt("chain.map.0.factor", 0))

	assert.True(t, p.Equals(y))

	_, err = LoadProperties("testdata/chain.toml")
	assert.Error(t, err)
}
