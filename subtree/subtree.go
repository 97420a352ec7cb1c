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

// Package subtree provides the immutable physical nodes that syntax trees are
// built from.
//
// A [Subtree] never changes after construction and carries no reference to its
// parent, so the same subtree may appear in many trees (for example, an old and
// a new tree after an incremental re-parse) and at different offsets within
// them. Positions are therefore stored as lengths: a subtree knows how much
// leading trivia precedes it ([Subtree.Padding]) and how much text it covers
// ([Subtree.Size]), but not where it starts.
package subtree

import (
	"slices"

	"github.com/bufbuild/cstree/extent"
	"github.com/bufbuild/cstree/language"
)

// Error cost weights, used to rank competing error recoveries.
const (
	CostPerRecovery    = 500
	CostPerMissingTree = 110
	CostPerSkippedTree = 100
	CostPerSkippedLine = 30
	CostPerSkippedChar = 1
)

// Flags are the construction-time properties of a [Subtree] that are not
// derived from its symbol or children.
type Flags uint8

const (
	// Extra marks a subtree that may appear anywhere (such as a comment), and
	// which therefore does not occupy a slot in its parent's alias sequence.
	Extra Flags = 1 << iota
	// Missing marks a zero-width leaf synthesized by error recovery.
	Missing
	// Changed marks a subtree that overlaps an edit made since it was parsed.
	Changed
)

// Subtree is an immutable node in a concrete syntax tree.
//
// The zero value is not meaningful; use [NewLeaf] or [NewNode].
type Subtree struct {
	symbol   language.Symbol
	children []*Subtree

	padding, size extent.Extent

	visibleChildCount, namedChildCount uint32
	errorCost                          uint32
	aliasSequence                      uint16

	flags          Flags
	visible, named bool
}

// NewLeaf constructs a subtree with no children, such as a token.
func NewLeaf(lang *language.Language, sym language.Symbol, padding, size extent.Extent, flags Flags) *Subtree {
	meta := lang.Metadata(sym)
	t := &Subtree{
		symbol:  sym,
		padding: padding,
		size:    size,
		flags:   flags,
		visible: meta.Visible,
		named:   meta.Named,
	}

	if flags&Missing != 0 {
		t.errorCost = CostPerMissingTree + CostPerRecovery
	}
	if sym == language.Error {
		t.errorCost += t.ownErrorCost()
	}
	return t
}

// NewNode constructs a subtree with the given children, computing its extents,
// relevant child counts, and error cost from them.
//
// aliasSequence selects the alias sequence in lang that applies to the new
// node's non-extra children; zero means none. children must not be empty, and
// must not be modified after this call.
func NewNode(lang *language.Language, sym language.Symbol, children []*Subtree, aliasSequence uint16, flags Flags) *Subtree {
	if len(children) == 0 {
		panic("cstree/subtree: NewNode called without children")
	}

	meta := lang.Metadata(sym)
	t := &Subtree{
		symbol:        sym,
		children:      slices.Clip(children),
		aliasSequence: aliasSequence,
		flags:         flags,
		visible:       meta.Visible,
		named:         meta.Named,
	}

	var structural int
	for i, child := range children {
		if i == 0 {
			t.padding = child.padding
			t.size = child.size
		} else {
			t.size = t.size.Add(child.TotalSize())
		}
		t.errorCost += child.errorCost

		var alias language.Symbol
		if !child.IsExtra() {
			alias = lang.Alias(aliasSequence, structural)
			structural++
		}

		switch {
		case alias != language.End:
			t.visibleChildCount++
			if lang.Metadata(alias).Named {
				t.namedChildCount++
			}
		case child.visible:
			t.visibleChildCount++
			if child.named {
				t.namedChildCount++
			}
		case len(child.children) > 0:
			t.visibleChildCount += child.visibleChildCount
			t.namedChildCount += child.namedChildCount
		}
	}

	if sym == language.Error {
		t.errorCost += t.ownErrorCost()
		for _, child := range children {
			if !child.IsExtra() {
				t.errorCost += CostPerSkippedTree
			}
		}
	}

	return t
}

func (t *Subtree) ownErrorCost() uint32 {
	return CostPerRecovery +
		CostPerSkippedChar*t.size.Bytes +
		CostPerSkippedLine*t.size.Point.Row
}

// Symbol returns this subtree's own grammar symbol, ignoring any alias a
// parent might apply to it.
func (t *Subtree) Symbol() language.Symbol {
	return t.symbol
}

// Children returns this subtree's children. The returned slice must not be
// modified.
func (t *Subtree) Children() []*Subtree {
	return t.children
}

// ChildCount returns the number of physical children.
func (t *Subtree) ChildCount() int {
	return len(t.children)
}

// Padding returns the extent of the trivia preceding this subtree's content.
func (t *Subtree) Padding() extent.Extent {
	return t.padding
}

// Size returns the extent of this subtree's content, excluding its padding.
func (t *Subtree) Size() extent.Extent {
	return t.size
}

// TotalSize returns the extent of this subtree including its padding.
func (t *Subtree) TotalSize() extent.Extent {
	return t.padding.Add(t.size)
}

// VisibleChildCount returns the number of visible nodes among this subtree's
// children, counting through hidden children.
func (t *Subtree) VisibleChildCount() uint32 {
	return t.visibleChildCount
}

// NamedChildCount is like [Subtree.VisibleChildCount], but only counts named
// nodes.
func (t *Subtree) NamedChildCount() uint32 {
	return t.namedChildCount
}

// AliasSequence returns the id of the alias sequence that applies to this
// subtree's structural children.
func (t *Subtree) AliasSequence() uint16 {
	return t.aliasSequence
}

// ErrorCost returns the total cost of the errors within this subtree.
func (t *Subtree) ErrorCost() uint32 {
	return t.errorCost
}

// Flags returns the flags this subtree was constructed with.
func (t *Subtree) Flags() Flags {
	return t.flags
}

// IsVisible returns whether this subtree's symbol is visible.
func (t *Subtree) IsVisible() bool { return t.visible }

// IsNamed returns whether this subtree's symbol is named.
func (t *Subtree) IsNamed() bool { return t.named }

// IsExtra returns whether this subtree has the [Extra] flag.
func (t *Subtree) IsExtra() bool { return t.flags&Extra != 0 }

// IsMissing returns whether this subtree has the [Missing] flag.
func (t *Subtree) IsMissing() bool { return t.flags&Missing != 0 }

// HasChanges returns whether this subtree has the [Changed] flag.
func (t *Subtree) HasChanges() bool { return t.flags&Changed != 0 }

// Equal returns whether a and b have the same structure and content.
//
// This compares by value, so two subtrees produced by separate parses of the
// same text are equal even though they are distinct objects.
func Equal(a, b *Subtree) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	if a.symbol != b.symbol ||
		a.visible != b.visible ||
		a.named != b.named ||
		a.padding.Bytes != b.padding.Bytes ||
		a.size.Bytes != b.size.Bytes ||
		len(a.children) != len(b.children) ||
		a.visibleChildCount != b.visibleChildCount ||
		a.namedChildCount != b.namedChildCount {
		return false
	}

	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}
