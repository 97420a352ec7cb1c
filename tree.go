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
	"github.com/bufbuild/cstree/language"
	"github.com/bufbuild/cstree/subtree"
)

// Tree is a syntax tree: a root subtree, plus the language it was parsed with.
//
// Trees are immutable.
type Tree struct {
	root *subtree.Subtree
	lang *language.Language
}

// NewTree wraps a root subtree into a Tree.
func NewTree(root *subtree.Subtree, lang *language.Language) *Tree {
	return &Tree{root: root, lang: lang}
}

// Root returns the root node of this tree.
//
// Returns the zero [Node] if the tree has no root.
func (t *Tree) Root() Node {
	if t == nil || t.root == nil {
		return Node{}
	}
	return Node{tree: t, subtree: t.root}
}

// Language returns the language this tree's symbols belong to.
func (t *Tree) Language() *language.Language {
	return t.lang
}
