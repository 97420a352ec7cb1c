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

// Package language describes the grammar metadata that syntax trees are
// interpreted against: symbol names, whether each symbol is visible and named,
// and the alias sequences that rename a node's structural children.
//
// A [Language] is immutable once built, and may be shared by any number of
// trees and goroutines.
package language

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Symbol identifies a grammar symbol.
type Symbol uint16

const (
	// End is the builtin end-of-input symbol. As an alias, it means "no alias".
	End Symbol = 0
	// Error is the builtin symbol for nodes produced by error recovery.
	Error Symbol = math.MaxUint16
)

// ErrInvalidGrammar is returned (wrapped) by [New] and [Parse] when a grammar
// description is malformed.
var ErrInvalidGrammar = errors.New("invalid grammar")

// Metadata is the classification of a symbol.
type Metadata struct {
	Name string
	// Whether nodes with this symbol appear when viewing all nodes.
	Visible bool
	// Whether nodes with this symbol appear when viewing only named nodes.
	Named bool
}

// Language is a symbol table plus the alias sequences that apply to it.
type Language struct {
	name    string
	symbols []Metadata // Indexed by Symbol; symbols[0] is End.
	byName  map[string]Symbol
	aliases map[uint16][]Symbol
}

var (
	endMetadata   = Metadata{Name: "end"}
	errorMetadata = Metadata{Name: "ERROR", Visible: true, Named: true}
)

// New builds a Language from its declarative description.
func New(g Grammar) (*Language, error) {
	if len(g.Symbols) >= int(Error)-1 {
		return nil, fmt.Errorf("%w: %d symbols exceeds the maximum of %d", ErrInvalidGrammar, len(g.Symbols), Error-2)
	}

	l := &Language{
		name:    g.Name,
		symbols: make([]Metadata, 0, len(g.Symbols)+1),
		byName:  make(map[string]Symbol, len(g.Symbols)+2),
		aliases: make(map[uint16][]Symbol, len(g.AliasSequences)),
	}
	l.symbols = append(l.symbols, endMetadata)
	l.byName[errorMetadata.Name] = Error

	for i, sym := range g.Symbols {
		if sym.Name == "" {
			return nil, fmt.Errorf("%w: symbol %d has no name", ErrInvalidGrammar, i+1)
		}
		if _, ok := l.byName[sym.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidGrammar, sym.Name)
		}
		l.byName[sym.Name] = Symbol(len(l.symbols))
		l.symbols = append(l.symbols, Metadata{
			Name:    sym.Name,
			Visible: !sym.Hidden,
			Named:   sym.Named,
		})
	}

	for id, names := range g.AliasSequences {
		if id == 0 {
			return nil, fmt.Errorf("%w: alias sequence 0 is reserved", ErrInvalidGrammar)
		}
		seq := make([]Symbol, len(names))
		for i, name := range names {
			if name == "" {
				continue
			}
			sym, ok := l.byName[name]
			if !ok {
				return nil, fmt.Errorf("%w: alias sequence %d refers to unknown symbol %q", ErrInvalidGrammar, id, name)
			}
			seq[i] = sym
		}
		l.aliases[id] = seq
	}

	return l, nil
}

// Name returns the name of this language.
func (l *Language) Name() string {
	return l.name
}

// SymbolCount returns the number of symbols in this language, including [End]
// but not [Error].
func (l *Language) SymbolCount() int {
	return len(l.symbols)
}

// Metadata returns the classification of sym.
//
// Unknown symbols are reported as hidden and anonymous, with an empty name.
func (l *Language) Metadata(sym Symbol) Metadata {
	if sym == Error {
		return errorMetadata
	}
	if int(sym) >= len(l.symbols) {
		return Metadata{}
	}
	return l.symbols[sym]
}

// SymbolName returns the display name of sym.
func (l *Language) SymbolName(sym Symbol) string {
	return l.Metadata(sym).Name
}

// Lookup finds a symbol by name.
func (l *Language) Lookup(name string) (Symbol, bool) {
	sym, ok := l.byName[name]
	return sym, ok
}

// Alias returns the symbol that replaces the structural child at index of a
// node whose alias sequence is seq.
//
// Returns [End] if there is no such alias.
func (l *Language) Alias(seq uint16, index int) Symbol {
	if seq == 0 || index < 0 {
		return End
	}
	aliases := l.aliases[seq]
	if index >= len(aliases) {
		return End
	}
	return aliases[index]
}

// AliasSequence returns a copy of the alias sequence with the given id, or nil
// if there is none.
func (l *Language) AliasSequence(seq uint16) []Symbol {
	return slices.Clone(l.aliases[seq])
}
