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

package cstree

import "github.com/bufbuild/cstree/extent"

// FirstChildForByte returns the first visible child of this node that ends
// after the given byte offset, looking inside hidden children.
//
// Returns the zero [Node] if offset is at or past the end of every child.
func (n Node) FirstChildForByte(offset uint32) Node {
	n.mustExist("FirstChildForByte")
	return n.firstChildForByte(offset, true)
}

// FirstNamedChildForByte is like [Node.FirstChildForByte], but only considers
// named children.
func (n Node) FirstNamedChildForByte(offset uint32) Node {
	n.mustExist("FirstNamedChildForByte")
	return n.firstChildForByte(offset, false)
}

// DescendantForByteRange returns the smallest visible node within this one
// that spans the byte range [start, end].
//
// If no descendant spans the range, returns n itself.
func (n Node) DescendantForByteRange(start, end uint32) Node {
	n.mustExist("DescendantForByteRange")
	return n.descendantForByteRange(start, end, true)
}

// NamedDescendantForByteRange is like [Node.DescendantForByteRange], but only
// returns named nodes (or n itself).
func (n Node) NamedDescendantForByteRange(start, end uint32) Node {
	n.mustExist("NamedDescendantForByteRange")
	return n.descendantForByteRange(start, end, false)
}

// DescendantForPointRange is like [Node.DescendantForByteRange], but the range
// is given in rows and columns.
func (n Node) DescendantForPointRange(start, end extent.Point) Node {
	n.mustExist("DescendantForPointRange")
	return n.descendantForPointRange(start, end, true)
}

// NamedDescendantForPointRange is like [Node.DescendantForPointRange], but
// only returns named nodes (or n itself).
func (n Node) NamedDescendantForPointRange(start, end extent.Point) Node {
	n.mustExist("NamedDescendantForPointRange")
	return n.descendantForPointRange(start, end, false)
}

func (n Node) firstChildForByte(goal uint32, includeAnonymous bool) Node {
	it := n.childIter()
	for child, ok := it.next(); ok; child, ok = it.next() {
		if child.EndByte() <= goal {
			continue
		}

		if child.isRelevant(includeAnonymous) {
			return child
		}
		if child.subtree.ChildCount() > 0 {
			// A hidden child with nothing relevant inside does not end the
			// search; a later child may still qualify.
			if found := child.firstChildForByte(goal, includeAnonymous); !found.IsZero() {
				return found
			}
		}
	}
	return Node{}
}

// descendantForByteRange descends from n through children that contain
// [lo, hi], remembering the deepest relevant one.
//
// A child contains the range if it starts at or before lo, and ends after hi.
// Children are sorted, so only the first child that ends after hi can contain
// the range.
func (n Node) descendantForByteRange(lo, hi uint32, includeAnonymous bool) Node {
	node, last := n, n
descend:
	for {
		it := node.childIter()
		for child, ok := it.next(); ok; child, ok = it.next() {
			if child.EndByte() <= hi {
				continue
			}
			if child.StartByte() > lo {
				break
			}

			node = child
			if node.isRelevant(includeAnonymous) {
				last = node
			}
			continue descend
		}

		return last
	}
}

// descendantForPointRange is like descendantForByteRange, but compares
// points, which it accumulates child by child.
func (n Node) descendantForPointRange(lo, hi extent.Point, includeAnonymous bool) Node {
	node, last := n, n
	start := n.StartPoint()
descend:
	for {
		it := node.childIter()
		for child, ok := it.next(); ok; child, ok = it.next() {
			// The first child's padding is its parent's padding, which start
			// already includes.
			if !it.first() {
				start = start.Add(child.subtree.Padding().Point)
			}
			end := start.Add(child.subtree.Size().Point)

			if hi.Less(end) {
				if lo.Less(start) {
					break
				}

				node = child
				if node.isRelevant(includeAnonymous) {
					last = node
				}
				continue descend
			}
			start = end
		}

		return last
	}
}
