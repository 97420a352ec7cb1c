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

// Package treetest builds syntax trees from YAML fixtures, for testing code
// that navigates them.
//
// A fixture describes a grammar, a source text, and the tree a parser would
// have produced for it:
//
//	language:
//	  symbols:
//	    - {name: program, named: true}
//	    - {name: ident, named: true}
//	    - {name: ";"}
//	source: "foo; bar;"
//	tree:
//	  type: program
//	  children:
//	    - {type: ident, text: foo}
//	    - {type: ";", text: ";"}
//	    - {type: ident, text: bar}
//	    - {type: ";", text: ";"}
//
// Leaves give the text they cover, which is searched for starting where the
// previous leaf ended; everything skipped over becomes the leaf's padding.
// A node may be given an id, and referred to again later with ref, which
// reuses the same subtree (the text it covers must repeat verbatim).
package treetest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/cstree"
	"github.com/bufbuild/cstree/language"
	"github.com/bufbuild/cstree/source"
	"github.com/bufbuild/cstree/subtree"
)

// ErrInvalidFixture is returned (wrapped) when a fixture cannot be built.
var ErrInvalidFixture = errors.New("invalid fixture")

// Fixture is the YAML representation of a tree.
type Fixture struct {
	Language language.Grammar `yaml:"language"`
	Source   string           `yaml:"source"`
	Tree     Node             `yaml:"tree"`
}

// Node describes one subtree in a [Fixture].
type Node struct {
	Type string `yaml:"type"`

	// The text of a leaf. Exactly one of Text and Children must be set.
	Text     *string `yaml:"text"`
	Children []Node  `yaml:"children"`

	// The alias sequence applied to Children.
	Aliases uint16 `yaml:"aliases"`

	Extra   bool `yaml:"extra"`
	Missing bool `yaml:"missing"`
	Changed bool `yaml:"changed"`

	ID  string `yaml:"id"`
	Ref string `yaml:"ref"`
}

// Result is a tree built from a [Fixture], along with its source.
type Result struct {
	Tree *cstree.Tree
	File *source.File
}

// Load reads and builds the fixture at path.
func Load(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// Parse builds a fixture from YAML. path is used for the returned file and
// for error messages.
func Parse(path string, data []byte) (*Result, error) {
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrInvalidFixture, err)
	}
	result, err := fixture.Build(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// Build builds the tree described by f.
func (f *Fixture) Build(path string) (*Result, error) {
	lang, err := language.New(f.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}

	b := &builder{
		lang: lang,
		file: source.NewFile(path, f.Source),
		ids:  make(map[string]reused),
	}
	root, err := b.build(&f.Tree, "tree")
	if err != nil {
		return nil, err
	}
	return &Result{Tree: cstree.NewTree(root, lang), File: b.file}, nil
}

type builder struct {
	lang   *language.Language
	file   *source.File
	cursor uint32 // End of the last leaf built.
	ids    map[string]reused
}

type reused struct {
	subtree *subtree.Subtree
	offset  uint32 // Where the subtree's padding first started.
}

func (b *builder) build(node *Node, where string) (*subtree.Subtree, error) {
	if node.Ref != "" {
		return b.reuse(node.Ref, where)
	}

	sym, ok := b.lang.Lookup(node.Type)
	if !ok {
		return nil, b.errorf(where, "unknown symbol %q", node.Type)
	}
	where = fmt.Sprintf("%s(%s)", where, node.Type)

	var flags subtree.Flags
	if node.Extra {
		flags |= subtree.Extra
	}
	if node.Missing {
		flags |= subtree.Missing
	}
	if node.Changed {
		flags |= subtree.Changed
	}

	offset := b.cursor
	var tree *subtree.Subtree
	switch {
	case node.Text != nil && node.Children != nil:
		return nil, b.errorf(where, "a node cannot have both text and children")

	case node.Text != nil:
		text := *node.Text
		idx := strings.Index(b.file.Text()[b.cursor:], text)
		if idx < 0 {
			return nil, b.errorf(where, "%q does not occur after offset %d", text, b.cursor)
		}
		start := b.cursor + uint32(idx)
		end := start + uint32(len(text))
		tree = subtree.NewLeaf(b.lang, sym,
			b.file.Extent(b.cursor, start),
			b.file.Extent(start, end),
			flags)
		b.cursor = end

	case len(node.Children) > 0:
		children := make([]*subtree.Subtree, 0, len(node.Children))
		for i := range node.Children {
			child, err := b.build(&node.Children[i], fmt.Sprintf("%s.%d", where, i))
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		if node.Aliases != 0 && b.lang.AliasSequence(node.Aliases) == nil {
			return nil, b.errorf(where, "unknown alias sequence %d", node.Aliases)
		}
		tree = subtree.NewNode(b.lang, sym, children, node.Aliases, flags)

	default:
		return nil, b.errorf(where, "a node needs text or children")
	}

	if node.ID != "" {
		if _, ok := b.ids[node.ID]; ok {
			return nil, b.errorf(where, "duplicate id %q", node.ID)
		}
		b.ids[node.ID] = reused{subtree: tree, offset: offset}
	}
	return tree, nil
}

func (b *builder) reuse(id, where string) (*subtree.Subtree, error) {
	prev, ok := b.ids[id]
	if !ok {
		return nil, b.errorf(where, "ref to unknown id %q", id)
	}

	size := prev.subtree.TotalSize().Bytes
	want := b.file.Slice(prev.offset, prev.offset+size)
	got := b.file.Slice(b.cursor, b.cursor+size)
	if got != want {
		return nil, b.errorf(where, "ref %q expects %q at offset %d, found %q", id, want, b.cursor, got)
	}

	b.cursor += size
	return prev.subtree, nil
}

func (b *builder) errorf(where, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidFixture, where, fmt.Sprintf(format, args...))
}
