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

// Package interval provides an ordered map keyed by disjoint integer
// intervals.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Integer has no cmp equivalent.
)

// Map maps disjoint closed intervals with endpoints in K to values of type V.
//
// A zero value is ready to use.
type Map[K constraints.Integer, V any] struct {
	// Keys are interval ends. Because intervals are disjoint, ordering by end
	// is the same as ordering by start.
	tree btree.Map[K, *entry[K, V]]
}

// Interval is an entry of a [Map].
type Interval[K constraints.Integer, V any] struct {
	Start, End K

	// The value associated with the interval. Nil if this Interval is not
	// present in the map.
	Value *V
}

type entry[K constraints.Integer, V any] struct {
	start K
	value V
}

// Len returns the number of intervals in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Get looks up the interval containing key.
//
// If there is no such interval, the returned Value is nil.
func (m *Map[K, V]) Get(key K) Interval[K, V] {
	iter := m.tree.Iter()
	if !iter.Seek(key) || key < iter.Value().start {
		return Interval[K, V]{}
	}
	return m.interval(iter.Key(), iter.Value())
}

// Insert adds [start, end] with the given value.
//
// If [start, end] overlaps an interval already in the map, nothing is
// inserted, and the overlapping interval with the least start is returned
// instead. That case is distinguished by overlap.Value != nil.
func (m *Map[K, V]) Insert(start, end K, value V) (overlap Interval[K, V]) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	// The least interval that ends at or after start is the only one that can
	// overlap without a lesser one also overlapping.
	iter := m.tree.Iter()
	if iter.Seek(start) && iter.Value().start <= end {
		return m.interval(iter.Key(), iter.Value())
	}

	m.tree.Set(end, &entry[K, V]{start: start, value: value})
	return Interval[K, V]{}
}

// Intervals returns an iterator over the intervals in this map, in order.
func (m *Map[K, V]) Intervals() iter.Seq[Interval[K, V]] {
	return func(yield func(Interval[K, V]) bool) {
		m.tree.Scan(func(end K, e *entry[K, V]) bool {
			return yield(m.interval(end, e))
		})
	}
}

func (m *Map[K, V]) interval(end K, e *entry[K, V]) Interval[K, V] {
	return Interval[K, V]{Start: e.start, End: end, Value: &e.value}
}

// Format implements [fmt.Formatter].
func (m *Map[K, V]) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	first := true
	for in := range m.Intervals() {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false

		if in.Start == in.End {
			fmt.Fprintf(s, "%#v: ", in.Start)
		} else {
			fmt.Fprintf(s, "[%#v, %#v]: ", in.Start, in.End)
		}
		fmt.Fprintf(s, fmt.FormatString(s, v), *in.Value)
	}
	fmt.Fprint(s, "}")
}
