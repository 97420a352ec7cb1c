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

import "github.com/bufbuild/cstree/language"

// isRelevant returns whether n appears in the logical tree: among all visible
// nodes if includeAnonymous is set, otherwise among named nodes.
func (n Node) isRelevant(includeAnonymous bool) bool {
	aliased := n.alias != language.End
	if includeAnonymous {
		return n.subtree.IsVisible() || aliased
	}

	if aliased {
		return n.tree.lang.Metadata(n.alias).Named
	}
	return n.subtree.IsVisible() && n.subtree.IsNamed()
}

// relevantChildCount returns the number of relevant nodes among n's children,
// where the children of a hidden child count as n's own.
//
// Navigation descends into a non-relevant child exactly when this is nonzero
// for it.
func (n Node) relevantChildCount(includeAnonymous bool) uint32 {
	if n.subtree.ChildCount() == 0 {
		return 0
	}
	if includeAnonymous {
		return n.subtree.VisibleChildCount()
	}
	return n.subtree.NamedChildCount()
}
