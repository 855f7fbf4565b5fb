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

// Licensed to Elasticsearch B.V. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Elasticsearch B.V. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package chain

import (
	"fmt"

	"infini.sh/taskchain/core/config"
	"infini.sh/taskchain/core/util"
)

func ReducerConfigChecked(
	constr ReducerConstructor,
	checks ...func(*config.Properties) error,
) ReducerConstructor {
	validator := checkAll(checks...)
	return func(cfg *config.Properties) (Reducer, error) {
		err := validator(cfg)
		if err != nil {
			return nil, err
		}

		return constr(cfg)
	}
}

func MapperConfigChecked(
	constr MapperConstructor,
	checks ...func(*config.Properties) error,
) MapperConstructor {
	validator := checkAll(checks...)
	return func(cfg *config.Properties) (Mapper, error) {
		err := validator(cfg)
		if err != nil {
			return nil, err
		}

		return constr(cfg)
	}
}

func checkAll(checks ...func(cfg *config.Properties) error) func(*config.Properties) error {
	return func(c *config.Properties) error {
		for _, check := range checks {
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// RequireProperties checks that the required properties are present in the
// configuration.
func RequireProperties(names ...string) func(*config.Properties) error {
	return func(cfg *config.Properties) error {
		required := util.StringSet(names...)
		present := util.StringSet(cfg.Keys()...)
		if util.IsSuperset(present, required) {
			return nil
		}
		for _, name := range names {
			if !present.Contains(name) {
				return fmt.Errorf("missing %v option", name)
			}
		}
		return nil
	}
}
