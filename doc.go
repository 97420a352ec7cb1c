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

// Package cstree navigates concrete syntax trees built from shared, immutable
// subtrees.
//
// # Physical and Logical Trees
//
// A [Tree] is made of [subtree.Subtree] values. This physical tree contains
// more structure than a user of the tree wants to see: grammars introduce
// hidden helper rules, and error recovery and trivia add nodes that only some
// consumers care about. Navigation presents a logical view over it instead,
// in one of two flavors: all visible nodes ([Node.Child], [Node.NextSibling],
// and so on), or only named nodes ([Node.NamedChild],
// [Node.NextNamedSibling], and so on). Hidden nodes are never returned; their
// children are spliced into their parent's child list.
//
// The symbol a node reports also depends on where it appears. A parent may
// carry an alias sequence, which renames its structural (non-extra) children
// by position, so the same subtree may be a "statement" under one parent and
// an "expression" under another.
//
// # Node References
//
// Subtrees are shared between trees (for example, between a tree and the tree
// produced by re-parsing it after an edit), so they cannot point at their
// parents or know their absolute position. A [Node] is a cheap value that
// pairs a subtree with the [Tree] it was reached from, its absolute position
// in that tree, and the alias its parent applied to it.
//
// Because there are no parent pointers, upward and sideways queries such as
// [Node.Parent] and [Node.PrevSibling] walk down from the root again. All
// queries are bounded by the height of the tree.
//
// The zero Node means "no such node", and is returned whenever a query has no
// answer. Navigating from the zero Node panics.
//
// # Concurrency
//
// Trees, subtrees, and nodes are never mutated after construction, so any
// number of goroutines may navigate the same tree, or trees that share
// subtrees, without synchronization.
package cstree
