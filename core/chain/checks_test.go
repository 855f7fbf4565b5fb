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

package chain

import (
	"testing"

	"infini.sh/taskchain/core/config"
)

func TestRequireProperties(t *testing.T) {
	tests := map[string]struct {
		Config   map[string]string
		Required []string
		Valid    bool
	}{
		"one required property present in the configuration": {
			Config: map[string]string{
				"required_property": "1",
				"not_required":      "2",
			},
			Required: []string{
				"required_property",
			},
			Valid: true,
		},
		"two required properties present in the configuration": {
			Config: map[string]string{
				"required_property":         "1",
				"another_required_property": "2",
				"not_required":              "3",
			},
			Required: []string{
				"required_property",
				"another_required_property",
			},
			Valid: true,
		},
		"one required property present and one missing in the configuration": {
			Config: map[string]string{
				"required_property": "1",
				"not_required":      "2",
			},
			Required: []string{
				"required_property",
				"missing_property",
			},
			Valid: false,
		},
		"no required properties": {
			Config: map[string]string{
				"not_required": "1",
			},
			Required: []string{},
			Valid:    true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.PropertiesFromMap(test.Config)
			err := RequireProperties(test.Required...)(cfg)
			if test.Valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !test.Valid && err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestMapperConfigChecked(t *testing.T) {
	built := false
	constructor := MapperConfigChecked(func(cfg *config.Properties) (Mapper, error) {
		built = true
		return doubleMapper{}, nil
	}, RequireProperties("factor"))

	_, err := constructor(config.NewProperties())
	if err == nil {
		t.Error("expected an error for a missing required property")
	}
	if built {
		t.Error("constructor must not run when validation fails")
	}

	_, err = constructor(config.PropertiesFromMap(map[string]string{"factor": "2"}))
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !built {
		t.Error("constructor did not run")
	}
}
