/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package config

import (
	"fmt"
	"sort"
	"strconv"

	goproperties "github.com/magiconair/properties"
	"github.com/r3labs/diff/v2"
	"gopkg.in/yaml.v2"
	"infini.sh/taskchain/core/errors"
	"infini.sh/taskchain/core/util"
)

// Properties is an immutable set of string settings for one task or stage.
// Deriving a stage view via Overlay never touches the base set, so stages
// can't observe each other's overrides.
type Properties struct {
	data map[string]string
}

// NewProperties returns an empty property set.
func NewProperties() *Properties {
	return &Properties{data: map[string]string{}}
}

// PropertiesFromMap copies m into a new property set.
func PropertiesFromMap(m map[string]string) *Properties {
	p := NewProperties()
	for k, v := range m {
		p.data[k] = v
	}
	return p
}

func (p *Properties) Len() int {
	return len(p.data)
}

// Keys returns all keys in sorted order.
func (p *Properties) Keys() []string {
	keys := make([]string, 0, len(p.data))
	for k := range p.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *Properties) Lookup(key string) (string, bool) {
	v, ok := p.data[key]
	return v, ok
}

func (p *Properties) Get(key string) string {
	return p.data[key]
}

func (p *Properties) GetOrDefault(key string, defaultV string) string {
	v, ok := p.data[key]
	if !ok {
		return defaultV
	}
	return v
}

func (p *Properties) GetInt(key string, defaultV int) int {
	v, ok := p.data[key]
	if !ok {
		return defaultV
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultV
	}
	return i
}

func (p *Properties) GetFloat(key string, defaultV float64) float64 {
	v, ok := p.data[key]
	if !ok {
		return defaultV
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultV
	}
	return f
}

func (p *Properties) GetBool(key string, defaultV bool) bool {
	v, ok := p.data[key]
	if !ok {
		return defaultV
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultV
	}
	return b
}

// ToMap returns a copy of the underlying settings.
func (p *Properties) ToMap() map[string]string {
	out := make(map[string]string, len(p.data))
	for k, v := range p.data {
		out[k] = v
	}
	return out
}

func (p *Properties) Clone() *Properties {
	return PropertiesFromMap(p.data)
}

// Overlay returns a new property set where over shadows the receiver.
// The receiver is left untouched.
func (p *Properties) Overlay(over map[string]string) *Properties {
	out := p.Clone()
	for k, v := range over {
		out.data[k] = v
	}
	return out
}

// Equals reports whether both sets hold exactly the same settings.
func (p *Properties) Equals(other *Properties) bool {
	if other == nil {
		return p.Len() == 0
	}
	changes, err := util.DiffTwoObject(p.data, other.data)
	if err != nil {
		return false
	}
	return len(changes) == 0
}

// Diff returns the changelog between two property sets.
func (p *Properties) Diff(other *Properties) (diff.Changelog, error) {
	if other == nil {
		other = NewProperties()
	}
	return util.DiffTwoObject(p.data, other.data)
}

// ResolveVariables renders $[[key]] tags inside every value against vars,
// returning a new property set. Unknown tags stay verbatim.
func (p *Properties) ResolveVariables(vars map[string]string) *Properties {
	kv := util.MapStr{}
	for k, v := range vars {
		kv[k] = v
	}
	out := NewProperties()
	for k, v := range p.data {
		if util.ContainStr(v, "$[[") {
			v = NestedRenderingTemplate(v, kv)
		}
		out.data[k] = v
	}
	return out
}

// LoadProperties reads a property set from a .properties file or from a flat
// YAML mapping, picked by file extension.
func LoadProperties(path string) (*Properties, error) {
	switch {
	case util.SuffixStr(path, ".properties"):
		loaded, err := goproperties.LoadFile(path, goproperties.UTF8)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load properties file: %v", path)
		}
		return PropertiesFromMap(loaded.Map()), nil
	case util.SuffixStr(path, ".yml") || util.SuffixStr(path, ".yaml"):
		content, err := util.FileGetContent(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load properties file: %v", path)
		}
		flat := map[string]interface{}{}
		if err := yaml.Unmarshal(content, &flat); err != nil {
			return nil, errors.Wrapf(err, "invalid properties file: %v", path)
		}
		p := NewProperties()
		for k, v := range flat {
			p.data[k] = fmt.Sprintf("%v", v)
		}
		return p, nil
	}
	return nil, errors.Errorf("unsupported properties file: %v", path)
}
