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

package util

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilePutGetContent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "put_get.txt")

	n, err := FilePutContent(file, "hello\nworld")
	assert.NoError(t, err)
	assert.Equal(t, 11, n)

	assert.True(t, FileExists(file))
	assert.True(t, IsFile(file))

	b, err := FileGetContent(file)
	assert.NoError(t, err)
	assert.Equal(t, "hello\nworld", string(b))
}

func TestFileGetContentMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no_such_file")
	_, err := FileGetContent(missing)
	assert.Error(t, err)
	assert.False(t, FileExists(missing))
}

func TestIsFileOnDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, FileExists(dir))
	assert.False(t, IsFile(dir))
}

func TestFileAppendNewLine(t *testing.T) {
	file := filepath.Join(t.TempDir(), "append.txt")

	_, err := FileAppendNewLine(file, "line1")
	assert.NoError(t, err)
	_, err = FileAppendNewLine(file, "line2")
	assert.NoError(t, err)

	b, err := FileGetContent(file)
	assert.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", string(b))
}

func TestFileDelete(t *testing.T) {
	file := filepath.Join(t.TempDir(), "delete_me.txt")
	_, err := FilePutContent(file, "x")
	assert.NoError(t, err)
	assert.True(t, FileExists(file))

	assert.NoError(t, FileDelete(file))
	assert.False(t, FileExists(file))
}

func TestFileLinesWalk(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lines.txt")
	_, err := FilePutContent(file, "a\t1\nb\t2\nc\t3")
	assert.NoError(t, err)

	var lines []string
	err = FileLinesWalk(file, func(line []byte) {
		lines = append(lines, string(line))
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a\t1", "b\t2", "c\t3"}, lines)

	err = FileLinesWalk(filepath.Join(t.TempDir(), "missing.txt"), func(line []byte) {})
	assert.Error(t, err)
}

func TestFileGetLines(t *testing.T) {
	file := filepath.Join(t.TempDir(), "get_lines.txt")
	_, err := FilePutContent(file, "one\ntwo\n")
	assert.NoError(t, err)

	lines := FileGetLines(file)
	fmt.Println(lines)
	assert.Equal(t, []string{"one", "two"}, lines)

	assert.Nil(t, FileGetLines(filepath.Join(t.TempDir(), "missing.txt")))
}
