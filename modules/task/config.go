/*
Copyright Medcl (m AT medcl.net)

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

package task

import "infini.sh/taskchain/core/chain"

// TaskRunnerConfig defines one configured execution of a chain
type TaskRunnerConfig struct {
	Name string `json:"name,omitempty" yaml:"name"`

	Enabled bool `json:"enabled,omitempty" yaml:"enabled"`

	//Schedule is either once (the default) or interval
	Schedule string `json:"schedule,omitempty" yaml:"schedule"`

	IntervalInMs int `json:"interval_in_ms,omitempty" yaml:"interval_in_ms"`

	InputFile  string `json:"input_file,omitempty" yaml:"input_file"`
	OutputFile string `json:"output_file,omitempty" yaml:"output_file"`

	//KeySeparator splits an input line into key and value, defaults to tab
	KeySeparator string `json:"key_separator,omitempty" yaml:"key_separator"`

	//PropertiesFile feeds the chain's base configuration and is reloaded
	//when it changes on disk, the next run picks the new values up
	PropertiesFile string `json:"properties_file,omitempty" yaml:"properties_file"`

	Chain *chain.ChainConfig `json:"chain,omitempty" yaml:"chain"`
}
