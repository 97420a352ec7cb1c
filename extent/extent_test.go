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

package extent_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/cstree/extent"
)

func pt(row, col uint32) extent.Point {
	return extent.Point{Row: row, Column: col}
}

func TestPointAdd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want extent.Point
	}{
		{a: pt(0, 0), b: pt(0, 0), want: pt(0, 0)},
		{a: pt(0, 3), b: pt(0, 4), want: pt(0, 7)},
		{a: pt(2, 3), b: pt(0, 4), want: pt(2, 7)},
		// A newline inside the delta resets the column to the delta's.
		{a: pt(2, 30), b: pt(1, 4), want: pt(3, 4)},
		{a: pt(0, 9), b: pt(3, 0), want: pt(3, 0)},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, test.a.Add(test.b), "%v + %v", test.a, test.b)
	}
}

func TestPointSubInvertsAdd(t *testing.T) {
	t.Parallel()

	points := []extent.Point{pt(0, 0), pt(0, 5), pt(1, 0), pt(1, 9), pt(4, 2)}
	for _, a := range points {
		for _, b := range points {
			if b.Less(a) {
				continue
			}
			delta := b.Sub(a)
			assert.Equal(t, b, a.Add(delta), "%v - %v = %v", b, a, delta)
		}
	}
}

func TestPointCompare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, pt(1, 2).Compare(pt(1, 2)))
	assert.Equal(t, -1, pt(1, 2).Compare(pt(1, 3)))
	assert.Equal(t, -1, pt(0, 90).Compare(pt(1, 0)))
	assert.Equal(t, 1, pt(2, 0).Compare(pt(1, 90)))
	assert.True(t, pt(0, 1).Less(pt(0, 2)))
	assert.False(t, pt(0, 2).Less(pt(0, 2)))
}

func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want extent.Extent
	}{
		{text: "", want: extent.Extent{}},
		{text: "abc", want: extent.Extent{Bytes: 3, Point: pt(0, 3)}},
		{text: "abc\n", want: extent.Extent{Bytes: 4, Point: pt(1, 0)}},
		{text: "a\nbc\ndef", want: extent.Extent{Bytes: 8, Point: pt(2, 3)}},
		{text: "é", want: extent.Extent{Bytes: 2, Point: pt(0, 2)}},
	}

	for _, test := range tests {
		if diff := cmp.Diff(test.want, extent.Of(test.text)); diff != "" {
			t.Errorf("Of(%q) mismatch (-want +got):\n%s", test.text, diff)
		}
	}
}

func TestExtentAddMatchesText(t *testing.T) {
	t.Parallel()

	// Measuring concatenated text must agree with adding the measurements.
	chunks := []string{"", "x", "foo\n", "\n\n", "bar baz", "\nq"}
	for _, a := range chunks {
		for _, b := range chunks {
			got := extent.Of(a).Add(extent.Of(b))
			if diff := cmp.Diff(extent.Of(a+b), got); diff != "" {
				t.Errorf("Of(%q)+Of(%q) mismatch (-want +got):\n%s", a, b, diff)
			}
			assert.Equal(t, extent.Of(b), extent.Of(a+b).Sub(extent.Of(a)))
		}
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3:14", pt(3, 14).String())
	assert.Equal(t, "7@1:2", extent.Extent{Bytes: 7, Point: pt(1, 2)}.String())
}
