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

// Package extent provides the combined byte-offset and row/column arithmetic
// used to position nodes in a syntax tree.
//
// An [Extent] is used both as a length (how much text something covers) and
// as an absolute location (how much text precedes it). The two interpretations
// share one addition rule, [Extent.Add], which is the only place where byte
// and point positions are advanced together.
package extent

import (
	"cmp"
	"fmt"
	"strings"
)

// Point is a zero-based row and column in a text document.
//
// Columns are measured in bytes from the start of the row.
type Point struct {
	Row, Column uint32
}

// Extent is a byte length together with the row/column delta it spans.
type Extent struct {
	Bytes uint32
	Point Point
}

// Of measures text: its length in bytes, the number of newlines in it, and the
// number of bytes after the last newline.
func Of(text string) Extent {
	rows := strings.Count(text, "\n")
	column := len(text)
	if rows > 0 {
		column -= strings.LastIndexByte(text, '\n') + 1
	}

	return Extent{
		Bytes: uint32(len(text)),
		Point: Point{Row: uint32(rows), Column: uint32(column)},
	}
}

// Add advances p by delta.
//
// If delta spans at least one newline, the result is on row p.Row+delta.Row
// with delta's trailing column. Otherwise, delta's columns are added to p's.
func (p Point) Add(delta Point) Point {
	if delta.Row > 0 {
		return Point{Row: p.Row + delta.Row, Column: delta.Column}
	}
	return Point{Row: p.Row, Column: p.Column + delta.Column}
}

// Sub computes the delta that, when added to b, produces p. It is the inverse
// of [Point.Add], and assumes that b is not after p.
func (p Point) Sub(b Point) Point {
	if p.Row > b.Row {
		return Point{Row: p.Row - b.Row, Column: p.Column}
	}
	return Point{Column: p.Column - b.Column}
}

// Compare orders points row-major, returning -1, 0, or +1.
func (p Point) Compare(b Point) int {
	if c := cmp.Compare(p.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(p.Column, b.Column)
}

// Less returns whether p comes strictly before b.
func (p Point) Less(b Point) bool {
	return p.Compare(b) < 0
}

// IsZero returns whether this is the origin point.
func (p Point) IsZero() bool {
	return p == Point{}
}

// String implements [fmt.Stringer].
func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// Add advances e by delta. Bytes always sum; the point follows [Point.Add].
func (e Extent) Add(delta Extent) Extent {
	return Extent{
		Bytes: e.Bytes + delta.Bytes,
		Point: e.Point.Add(delta.Point),
	}
}

// Sub computes the extent between b and e, assuming b is not after e.
func (e Extent) Sub(b Extent) Extent {
	return Extent{
		Bytes: e.Bytes - b.Bytes,
		Point: e.Point.Sub(b.Point),
	}
}

// IsZero returns whether this extent covers no text.
func (e Extent) IsZero() bool {
	return e == Extent{}
}

// String implements [fmt.Stringer].
func (e Extent) String() string {
	return fmt.Sprintf("%d@%v", e.Bytes, e.Point)
}
