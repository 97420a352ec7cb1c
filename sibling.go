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

// NextSibling returns the visible node that follows this one under the same
// parent, or the zero [Node] if this is the last one.
func (n Node) NextSibling() Node {
	n.mustExist("NextSibling")
	return n.nextSibling(true)
}

// NextNamedSibling is like [Node.NextSibling], but skips anonymous nodes.
func (n Node) NextNamedSibling() Node {
	n.mustExist("NextNamedSibling")
	return n.nextSibling(false)
}

// PrevSibling returns the visible node that precedes this one under the same
// parent, or the zero [Node] if this is the first one.
func (n Node) PrevSibling() Node {
	n.mustExist("PrevSibling")
	return n.prevSibling(true)
}

// PrevNamedSibling is like [Node.PrevSibling], but skips anonymous nodes.
func (n Node) PrevNamedSibling() Node {
	n.mustExist("PrevNamedSibling")
	return n.prevSibling(false)
}

// nextSibling searches the physical ancestors of n, innermost first, for a
// relevant node after it. Hidden ancestors are transparent, so the search
// stops once it has looked through n's visible parent.
func (n Node) nextSibling(includeAnonymous bool) Node {
	path := n.ancestors()
	target := n
	for i := len(path) - 1; i >= 0; i-- {
		container := path[i]
		if next := container.relevantAfter(target, includeAnonymous); !next.IsZero() {
			return next
		}
		if container.isRelevant(true) {
			break
		}
		target = container
	}
	return Node{}
}

// prevSibling is the mirror image of nextSibling.
func (n Node) prevSibling(includeAnonymous bool) Node {
	path := n.ancestors()
	target := n
	for i := len(path) - 1; i >= 0; i-- {
		container := path[i]
		if prev := container.relevantBefore(target, includeAnonymous); !prev.IsZero() {
			return prev
		}
		if container.isRelevant(true) {
			break
		}
		target = container
	}
	return Node{}
}

// relevantAfter returns the first relevant node among n's children after
// target, looking inside hidden children.
func (n Node) relevantAfter(target Node, includeAnonymous bool) Node {
	var found bool
	it := n.childIter()
	for child, ok := it.next(); ok; child, ok = it.next() {
		if !found {
			found = child.is(target)
			continue
		}

		if child.isRelevant(includeAnonymous) {
			return child
		}
		if child.relevantChildCount(includeAnonymous) > 0 {
			if first := child.firstRelevant(includeAnonymous); !first.IsZero() {
				return first
			}
		}
	}
	return Node{}
}

// relevantBefore returns the last relevant node among n's children before
// target, looking inside hidden children.
func (n Node) relevantBefore(target Node, includeAnonymous bool) Node {
	// Children before target that are, or may contain, a relevant node.
	var candidates []Node
	it := n.childIter()
	for child, ok := it.next(); ok; child, ok = it.next() {
		if child.is(target) {
			break
		}
		if child.isRelevant(includeAnonymous) || child.relevantChildCount(includeAnonymous) > 0 {
			candidates = append(candidates, child)
		}
	}

	for i := len(candidates) - 1; i >= 0; i-- {
		child := candidates[i]
		if child.isRelevant(includeAnonymous) {
			return child
		}
		if last := child.lastRelevant(includeAnonymous); !last.IsZero() {
			return last
		}
	}
	return Node{}
}
