// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/cstree/extent"
	"github.com/bufbuild/cstree/source"
)

func TestPoint(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "foo\nbar\ncat: 🐈‍⬛\ntail")

	tests := []struct {
		offset uint32
		want   extent.Point
	}{
		{offset: 0, want: extent.Point{}},
		{offset: 3, want: extent.Point{Row: 0, Column: 3}},
		{offset: 4, want: extent.Point{Row: 1, Column: 0}},
		{offset: 23, want: extent.Point{Row: 2, Column: 15}},
		{offset: 28, want: extent.Point{Row: 3, Column: 4}},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, file.Point(test.offset), "offset %d", test.offset)
		assert.Equal(t, test.offset, file.Offset(test.want), "point %v", test.want)
	}

	// Out of range values are clamped.
	assert.Equal(t, extent.Point{Row: 3, Column: 4}, file.Point(100))
	assert.Equal(t, uint32(3), file.Offset(extent.Point{Row: 0, Column: 99}))
	assert.Equal(t, uint32(28), file.Offset(extent.Point{Row: 9}))
}

func TestColumn(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "foo\nbar\ncat: 🐈‍⬛\ntail")
	p := file.Point(23)

	tests := []struct {
		unit source.Unit
		want int
	}{
		{unit: source.Bytes, want: 15},
		{unit: source.Runes, want: 8},
		{unit: source.UTF16, want: 9},
		{unit: source.TermWidth, want: 7},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, file.Column(p, test.unit), "%v", test.unit)
	}

	tabs := source.NewFile("tabs", "\tab\na\tb")
	assert.Equal(t, 6, tabs.Column(extent.Point{Row: 0, Column: 3}, source.TermWidth))
	assert.Equal(t, 5, tabs.Column(extent.Point{Row: 1, Column: 3}, source.TermWidth))
}

func TestLines(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := source.NewFile("test", "foo\nbar\ncat: 🐈‍⬛\ntail")
	assert.Equal(4, file.LineCount())
	assert.Equal("bar\n", file.Line(1))
	assert.Equal("tail", file.Line(3))
	assert.Empty(file.Line(7))

	trailing := source.NewFile("trailing", "x\n")
	assert.Equal(2, trailing.LineCount())
	assert.Equal(extent.Point{Row: 1}, trailing.Point(2))
	assert.Empty(trailing.Line(1))
}

func TestExtent(t *testing.T) {
	t.Parallel()

	text := "foo\nbar\ncat: 🐈‍⬛\ntail"
	file := source.NewFile("test", text)
	for _, r := range [][2]uint32{{0, 0}, {2, 9}, {4, 7}, {8, 28}, {0, 28}} {
		assert.Equal(t, extent.Of(text[r[0]:r[1]]), file.Extent(r[0], r[1]), "%v", r)
		assert.Equal(t, text[r[0]:r[1]], file.Slice(r[0], r[1]))
	}
	assert.Equal(t, "tail", file.Slice(24, 99))
}

func TestNilFile(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var file *source.File
	assert.Empty(file.Path())
	assert.Empty(file.Text())
	assert.Equal(extent.Point{}, file.Point(10))
	assert.Equal(uint32(0), file.Offset(extent.Point{Row: 1}))
	assert.Equal(0, file.LineCount())
	assert.Equal(0, file.Column(extent.Point{Column: 3}, source.Runes))
}
