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

// Package source provides line indexing for the text a syntax tree was parsed
// from, converting between byte offsets and the row/column [extent.Point]s
// that nodes report.
package source

import (
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/cstree/extent"
	"github.com/bufbuild/cstree/internal/interval"
)

// TabstopWidth is the width tabs are rendered with when measuring columns in
// [TermWidth].
const TabstopWidth = 4

// Unit is a unit for measuring columns.
type Unit int

const (
	// Bytes measures columns in bytes. This is the unit of [extent.Point].
	Bytes Unit = iota
	// Runes measures columns in Unicode code points.
	Runes
	// UTF16 measures columns in UTF-16 code units, as the Language Server
	// Protocol does.
	UTF16
	// TermWidth measures columns in approximate terminal cells.
	TermWidth
)

// String implements [fmt.Stringer].
func (u Unit) String() string {
	switch u {
	case Bytes:
		return "Bytes"
	case Runes:
		return "Runes"
	case UTF16:
		return "UTF16"
	case TermWidth:
		return "TermWidth"
	default:
		return "Unit(?)"
	}
}

// File is a source file. Files are immutable once created.
//
// A nil *File behaves like an empty file with the path name "".
type File struct {
	path, text string

	once sync.Once
	// Offsets at which each line starts; starts[row] is the start of row.
	starts []uint32
	// Maps the byte range of each line, including its newline, to its row.
	rows interval.Map[uint32, uint32]
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's path.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Slice returns the text between two byte offsets, clamped to the file.
func (f *File) Slice(start, end uint32) string {
	text := f.Text()
	end = min(end, uint32(len(text)))
	start = min(start, end)
	return text[start:end]
}

// LineCount returns the number of lines in the file. A trailing newline begins
// a final, empty line.
func (f *File) LineCount() int {
	return len(f.lines())
}

// Line returns the text of the given zero-based row, including its trailing
// newline.
func (f *File) Line(row uint32) string {
	starts := f.lines()
	if int(row) >= len(starts) {
		return ""
	}
	end := uint32(len(f.Text()))
	if int(row)+1 < len(starts) {
		end = starts[row+1]
	}
	return f.text[starts[row]:end]
}

// Point converts a byte offset into a row and byte column.
//
// Offsets past the end of the file are clamped to it.
//
// This operation is O(log n).
func (f *File) Point(offset uint32) extent.Point {
	if f == nil {
		return extent.Point{}
	}

	f.lines()
	offset = min(offset, uint32(len(f.Text())))
	line := f.rows.Get(offset)
	if line.Value == nil {
		return extent.Point{}
	}
	return extent.Point{Row: *line.Value, Column: offset - line.Start}
}

// Offset inverts [File.Point]. Columns past the end of their row are clamped
// to the row's end.
func (f *File) Offset(p extent.Point) uint32 {
	starts := f.lines()
	if len(starts) == 0 {
		return 0
	}
	if int(p.Row) >= len(starts) {
		return uint32(len(f.Text()))
	}
	line := strings.TrimSuffix(f.Line(p.Row), "\n")
	return starts[p.Row] + min(p.Column, uint32(len(line)))
}

// Extent returns the extent of the text between two byte offsets, measured
// from start.
func (f *File) Extent(start, end uint32) extent.Extent {
	from := extent.Extent{Bytes: start, Point: f.Point(start)}
	to := extent.Extent{Bytes: end, Point: f.Point(end)}
	return to.Sub(from)
}

// Column converts the byte column of p into the given units.
func (f *File) Column(p extent.Point, unit Unit) int {
	line := f.Line(p.Row)
	chunk := line[:min(int(p.Column), len(line))]

	switch unit {
	case Runes:
		var n int
		for range chunk {
			n++
		}
		return n
	case UTF16:
		var n int
		for _, r := range chunk {
			n += utf16.RuneLen(r)
		}
		return n
	case TermWidth:
		return termWidth(chunk)
	default:
		return len(chunk)
	}
}

func termWidth(text string) int {
	var column int
	for i, chunk := range strings.Split(text, "\t") {
		if i > 0 {
			column += TabstopWidth - column%TabstopWidth
		}
		column += uniseg.StringWidth(chunk)
	}
	return column
}

func (f *File) lines() []uint32 {
	if f == nil {
		return nil
	}

	f.once.Do(func() {
		text := f.text
		var next uint32
		for {
			// Work with the index immediately after the newline.
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}
			f.insertLine(next, next+uint32(newline)-1)
			text = text[newline:]
			next += uint32(newline)
		}
		f.insertLine(next, uint32(len(f.text)))
	})
	return f.starts
}

func (f *File) insertLine(start, end uint32) {
	f.rows.Insert(start, end, uint32(len(f.starts)))
	f.starts = append(f.starts, start)
}
