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

package treetest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bufbuild/cstree"
)

// All returns root and all of its visible descendants, in pre-order.
func All(root cstree.Node) []cstree.Node {
	nodes := []cstree.Node{root}
	for child := range root.Children() {
		nodes = append(nodes, All(child)...)
	}
	return nodes
}

// Find returns the n-th visible node (counting from zero, in pre-order) under
// root with the given type, or the zero node.
func Find(root cstree.Node, typ string, n int) cstree.Node {
	for _, node := range All(root) {
		if node.Type() != typ {
			continue
		}
		if n == 0 {
			return node
		}
		n--
	}
	return cstree.Node{}
}

// Dump renders the visible nodes of the tree rooted at node, one per line,
// with their ranges and flags.
func Dump(node cstree.Node) string {
	var out strings.Builder
	dump(&out, node, 0)
	return out.String()
}

func dump(out *strings.Builder, node cstree.Node, depth int) {
	r := node.Range()

	name := node.Type()
	if !node.IsNamed() {
		name = strconv.Quote(name)
	}
	fmt.Fprintf(out, "%s%s [%d, %d) %v-%v",
		strings.Repeat("  ", depth), name,
		r.StartByte, r.EndByte, r.StartPoint, r.EndPoint)

	for _, flag := range []struct {
		set  bool
		name string
	}{
		{node.IsExtra(), "extra"},
		{node.IsMissing(), "missing"},
		{node.HasChanges(), "changed"},
		{node.HasError(), "error"},
	} {
		if flag.set {
			out.WriteString(" " + flag.name)
		}
	}
	out.WriteByte('\n')

	for child := range node.Children() {
		dump(out, child, depth+1)
	}
}
