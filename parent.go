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

// Parent returns this node's parent: its nearest visible ancestor.
//
// Returns the zero [Node] for the root.
//
// Because subtrees do not point to their parents, this searches for n from
// the root of its tree, which takes time proportional to n's depth.
func (n Node) Parent() Node {
	n.mustExist("Parent")

	path := n.ancestors()
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].isRelevant(true) {
			return path[i]
		}
	}
	if len(path) > 0 {
		// The root is the parent of everything, even when hidden.
		return path[0]
	}
	return Node{}
}

// ancestors returns the physical nodes from the root of n's tree down to n's
// physical parent, which may be hidden.
//
// Returns nil if n is the root, or does not occur in its tree.
func (n Node) ancestors() []Node {
	root := n.tree.Root()
	if root.is(n) {
		return nil
	}

	var path []Node
	if !root.search(n, &path) {
		return nil
	}
	return path
}

// search looks for target among the descendants of n, appending the nodes on
// the way to it to path.
//
// Only children whose span contains target are searched. Usually that is just
// one child, but zero-width nodes on a boundary can make two children qualify,
// in which case the first that actually holds target wins.
func (n Node) search(target Node, path *[]Node) bool {
	*path = append(*path, n)

	end := target.EndByte()
	it := n.childIter()
	for child, ok := it.next(); ok; child, ok = it.next() {
		if child.offset.Bytes > target.offset.Bytes {
			break
		}
		if child.is(target) {
			return true
		}
		if child.EndByte() >= end && child.search(target, path) {
			return true
		}
	}

	*path = (*path)[:len(*path)-1]
	return false
}
