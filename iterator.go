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

import (
	"github.com/bufbuild/cstree/extent"
	"github.com/bufbuild/cstree/language"
	"github.com/bufbuild/cstree/subtree"
)

// childIterator walks the physical children of a node, resolving the alias of
// each and tracking its absolute position.
type childIterator struct {
	tree   *Tree
	parent *subtree.Subtree

	// The position of the next child, before its padding.
	position   extent.Extent
	index      int // Physical index of the next child.
	structural int // Index of the next non-extra child.
}

// childIter returns an iterator over n's physical children.
//
// The first child starts where n does, before padding: a node's padding is
// always its first child's padding.
func (n Node) childIter() childIterator {
	return childIterator{
		tree:     n.tree,
		parent:   n.subtree,
		position: n.offset,
	}
}

// next returns the next child, or false if there are no more.
func (it *childIterator) next() (Node, bool) {
	children := it.parent.Children()
	if it.index >= len(children) {
		return Node{}, false
	}

	child := children[it.index]
	alias := language.End
	if !child.IsExtra() {
		alias = it.tree.lang.Alias(it.parent.AliasSequence(), it.structural)
		it.structural++
	}

	node := Node{
		tree:    it.tree,
		subtree: child,
		offset:  it.position,
		alias:   alias,
	}

	it.position = it.position.Add(child.TotalSize())
	it.index++
	return node, true
}

// first returns whether the most recent call to next returned the first child.
func (it *childIterator) first() bool {
	return it.index == 1
}
