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
	"fmt"
	"strconv"
	"strings"

	"github.com/bufbuild/cstree/extent"
	"github.com/bufbuild/cstree/language"
	"github.com/bufbuild/cstree/source"
	"github.com/bufbuild/cstree/subtree"
)

// Node is a reference to a subtree at a particular position in a [Tree].
//
// Nodes are small values and should be passed by value. The zero Node is the
// "no such node" sentinel returned by queries without an answer; calling any
// method other than IsZero, Equal, or String on it panics.
type Node struct {
	tree    *Tree
	subtree *subtree.Subtree

	// Absolute position of the start of this node's padding.
	offset extent.Extent
	// The symbol this node's parent renames it to, if any.
	alias language.Symbol
}

// Range is the absolute span of a node, in bytes and in rows and columns.
type Range struct {
	StartByte, EndByte   uint32
	StartPoint, EndPoint extent.Point
}

// IsZero returns whether this is the zero Node.
func (n Node) IsZero() bool {
	return n.subtree == nil
}

// Tree returns the tree this node was reached from.
func (n Node) Tree() *Tree {
	n.mustExist("Tree")
	return n.tree
}

// Subtree returns the physical subtree this node refers to.
func (n Node) Subtree() *subtree.Subtree {
	n.mustExist("Subtree")
	return n.subtree
}

// Symbol returns this node's symbol: the alias its parent gives it, if any,
// otherwise its subtree's own symbol.
func (n Node) Symbol() language.Symbol {
	n.mustExist("Symbol")
	if n.alias != language.End {
		return n.alias
	}
	return n.subtree.Symbol()
}

// Type returns the name of this node's [Node.Symbol].
func (n Node) Type() string {
	sym := n.Symbol()
	return n.tree.lang.SymbolName(sym)
}

// IsNamed returns whether this node is named, rather than anonymous syntax
// such as punctuation.
func (n Node) IsNamed() bool {
	n.mustExist("IsNamed")
	if n.alias != language.End {
		return n.tree.lang.Metadata(n.alias).Named
	}
	return n.subtree.IsNamed()
}

// IsMissing returns whether this node was inserted by error recovery and does
// not correspond to any text.
func (n Node) IsMissing() bool {
	n.mustExist("IsMissing")
	return n.subtree.IsMissing()
}

// IsExtra returns whether this node is an extra, such as a comment, which may
// appear anywhere in the tree.
func (n Node) IsExtra() bool {
	n.mustExist("IsExtra")
	return n.subtree.IsExtra()
}

// IsError returns whether this node is an error produced by error recovery.
func (n Node) IsError() bool {
	return n.Symbol() == language.Error
}

// HasChanges returns whether this node was edited since it was parsed.
func (n Node) HasChanges() bool {
	n.mustExist("HasChanges")
	return n.subtree.HasChanges()
}

// HasError returns whether this node is or contains a syntax error.
func (n Node) HasError() bool {
	n.mustExist("HasError")
	return n.subtree.ErrorCost() > 0
}

// StartByte returns the offset of the first byte of this node, after any
// leading trivia.
func (n Node) StartByte() uint32 {
	return n.start().Bytes
}

// EndByte returns the offset just past the last byte of this node.
func (n Node) EndByte() uint32 {
	return n.end().Bytes
}

// StartPoint returns the row and column at which this node starts.
func (n Node) StartPoint() extent.Point {
	return n.start().Point
}

// EndPoint returns the row and column at which this node ends.
func (n Node) EndPoint() extent.Point {
	return n.end().Point
}

// Range returns this node's start and end positions.
func (n Node) Range() Range {
	start, end := n.start(), n.end()
	return Range{
		StartByte:  start.Bytes,
		EndByte:    end.Bytes,
		StartPoint: start.Point,
		EndPoint:   end.Point,
	}
}

// Text returns the text of file that this node covers.
func (n Node) Text(file *source.File) string {
	return file.Slice(n.StartByte(), n.EndByte())
}

// ChildCount returns the number of visible children of this node, including
// those hoisted out of hidden children.
func (n Node) ChildCount() int {
	n.mustExist("ChildCount")
	return int(n.relevantChildCount(true))
}

// NamedChildCount is like [Node.ChildCount], but only counts named children.
func (n Node) NamedChildCount() int {
	n.mustExist("NamedChildCount")
	return int(n.relevantChildCount(false))
}

// Equal returns whether n and other refer to equal subtrees at the same
// offset.
//
// Subtrees are compared by value, so a node in a tree and the corresponding
// node in a re-parse of that tree are equal, even if the subtree was rebuilt
// rather than reused.
func (n Node) Equal(other Node) bool {
	if n.IsZero() || other.IsZero() {
		return n.IsZero() && other.IsZero()
	}
	return n.StartByte() == other.StartByte() && subtree.Equal(n.subtree, other.subtree)
}

// String returns an S-expression for the named nodes in the tree rooted at n.
// Missing nodes are marked with MISSING.
//
// The zero Node is rendered as "<nil>".
func (n Node) String() string {
	if n.IsZero() {
		return "<nil>"
	}

	var out strings.Builder
	n.writeSExpr(&out)
	return out.String()
}

func (n Node) writeSExpr(out *strings.Builder) {
	out.WriteByte('(')
	if n.IsMissing() {
		out.WriteString("MISSING ")
	}
	if n.IsNamed() {
		out.WriteString(n.Type())
	} else {
		out.WriteString(strconv.Quote(n.Type()))
	}

	for child := range n.Children() {
		if child.IsNamed() || child.IsMissing() {
			out.WriteByte(' ')
			child.writeSExpr(out)
		}
	}
	out.WriteByte(')')
}

// is returns whether n and other are the same occurrence of the same subtree.
func (n Node) is(other Node) bool {
	return n.subtree == other.subtree && n.offset.Bytes == other.offset.Bytes
}

func (n Node) start() extent.Extent {
	n.mustExist("start")
	return n.offset.Add(n.subtree.Padding())
}

func (n Node) end() extent.Extent {
	return n.start().Add(n.subtree.Size())
}

func (n Node) mustExist(method string) {
	if n.IsZero() {
		panic(fmt.Sprintf("cstree: called Node.%s on the zero Node", method))
	}
}
