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

import "iter"

// Child returns this node's i-th visible child, or the zero [Node] if there
// is no such child.
func (n Node) Child(i int) Node {
	n.mustExist("Child")
	return n.child(i, true)
}

// NamedChild returns this node's i-th named child, or the zero [Node] if
// there is no such child.
func (n Node) NamedChild(i int) Node {
	n.mustExist("NamedChild")
	return n.child(i, false)
}

// Children returns an iterator over this node's visible children.
//
// Iterating is linear in the number of children, unlike calling [Node.Child]
// for every index.
func (n Node) Children() iter.Seq[Node] {
	n.mustExist("Children")
	return func(yield func(Node) bool) {
		n.walkChildren(true, yield)
	}
}

// NamedChildren is like [Node.Children], but only yields named children.
func (n Node) NamedChildren() iter.Seq[Node] {
	n.mustExist("NamedChildren")
	return func(yield func(Node) bool) {
		n.walkChildren(false, yield)
	}
}

func (n Node) child(index int, includeAnonymous bool) Node {
	if index < 0 {
		return Node{}
	}

	want := uint32(index)
	node := n
descend:
	for {
		// Number of relevant children before the current one.
		var seen uint32

		it := node.childIter()
		for child, ok := it.next(); ok; child, ok = it.next() {
			if child.isRelevant(includeAnonymous) {
				if seen == want {
					return child
				}
				seen++
				continue
			}

			// The child is hidden; if the node we want is among the relevant
			// nodes it hides, look for it there instead.
			hidden := child.relevantChildCount(includeAnonymous)
			if want-seen < hidden {
				node = child
				want -= seen
				continue descend
			}
			seen += hidden
		}

		return Node{}
	}
}

// walkChildren calls yield with each of n's relevant children in order,
// splicing in the relevant children of hidden children. Returns false if
// yield did.
func (n Node) walkChildren(includeAnonymous bool, yield func(Node) bool) bool {
	it := n.childIter()
	for child, ok := it.next(); ok; child, ok = it.next() {
		switch {
		case child.isRelevant(includeAnonymous):
			if !yield(child) {
				return false
			}
		case child.relevantChildCount(includeAnonymous) > 0:
			if !child.walkChildren(includeAnonymous, yield) {
				return false
			}
		}
	}
	return true
}

// firstRelevant returns n's first relevant child.
func (n Node) firstRelevant(includeAnonymous bool) (first Node) {
	n.walkChildren(includeAnonymous, func(child Node) bool {
		first = child
		return false
	})
	return first
}

// lastRelevant returns n's last relevant child.
func (n Node) lastRelevant(includeAnonymous bool) (last Node) {
	n.walkChildren(includeAnonymous, func(child Node) bool {
		last = child
		return true
	})
	return last
}
