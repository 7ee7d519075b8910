// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package ast

import "strings"

// GeneralDataKind distinguishes the five shapes of general_data.
type GeneralDataKind int

const (
	// GeneralFunction is f(args...) or a bare functor with no arguments.
	GeneralFunction GeneralDataKind = iota
	// GeneralVariable is an upper-word standing alone.
	GeneralVariable
	// GeneralNumber wraps a Number.
	GeneralNumber
	// GeneralDistinctObject wraps a double-quoted distinct object.
	GeneralDistinctObject
	// GeneralFormulaData is $thf(...)/$tff(...)/$fof(...)/$cnf(...)/$fot(...).
	GeneralFormulaData
)

// GeneralData is one node of the open-ended annotation vocabulary used in
// the source and info slots of an annotated formula.
type GeneralData struct {
	Kind GeneralDataKind
	// Functor holds the function/variable/distinct-object text for the
	// GeneralFunction, GeneralVariable and GeneralDistinctObject kinds.
	Functor string
	// Args holds the argument list for GeneralFunction (nil when the
	// functor is applied to nothing, i.e. a bare atom).
	Args []GeneralTerm
	// Number holds the payload for GeneralNumber.
	Number *Number
	// Dialect holds the "$thf"/"$tff"/"$fof"/"$cnf"/"$fot" keyword and Body
	// the raw text between its parentheses for GeneralFormulaData. Embedded
	// formulas are not parsed recursively: they sit in an annotation slot
	// which SPEC_FULL.md's non-goals already exclude from semantic
	// processing, so retaining them as opaque text is a faithful, minimal
	// representation.
	Dialect string
	Body    string
}

// Pretty renders general_data in its canonical form.
func (g GeneralData) Pretty(sb *strings.Builder) {
	switch g.Kind {
	case GeneralFunction:
		sb.WriteString(g.Functor)

		if g.Args != nil {
			sb.WriteByte('(')
			prettyJoin(sb, g.Args, ", ")
			sb.WriteByte(')')
		}
	case GeneralVariable:
		sb.WriteString(g.Functor)
	case GeneralNumber:
		g.Number.Pretty(sb)
	case GeneralDistinctObject:
		sb.WriteString(g.Functor)
	case GeneralFormulaData:
		sb.WriteString(g.Dialect)
		sb.WriteByte('(')
		sb.WriteString(g.Body)
		sb.WriteByte(')')
	}
}

// Equal performs structural comparison.
func (g GeneralData) Equal(o GeneralData) bool {
	if g.Kind != o.Kind {
		return false
	}

	switch g.Kind {
	case GeneralFunction:
		if g.Functor != o.Functor || len(g.Args) != len(o.Args) {
			return false
		}

		for i := range g.Args {
			if !g.Args[i].Equal(o.Args[i]) {
				return false
			}
		}

		return true
	case GeneralVariable, GeneralDistinctObject:
		return g.Functor == o.Functor
	case GeneralNumber:
		return g.Number.Equal(*o.Number)
	case GeneralFormulaData:
		return g.Dialect == o.Dialect && g.Body == o.Body
	default:
		return false
	}
}

// Symbols contributes this node's symbols to a symbol set.
func (g GeneralData) Symbols(into SymbolSet) {
	switch g.Kind {
	case GeneralFunction:
		into.Add(g.Functor)

		for _, a := range g.Args {
			a.Symbols(into)
		}
	case GeneralDistinctObject:
		into.Add(g.Functor)
	}
}

// GeneralList is a bracketed, comma-separated sequence of general terms.
type GeneralList struct {
	Items []GeneralTerm
}

// Pretty renders the list as "[a, b, c]".
func (l GeneralList) Pretty(sb *strings.Builder) {
	sb.WriteByte('[')
	prettyJoin(sb, l.Items, ", ")
	sb.WriteByte(']')
}

// Equal performs structural comparison.
func (l GeneralList) Equal(o GeneralList) bool {
	if len(l.Items) != len(o.Items) {
		return false
	}

	for i := range l.Items {
		if !l.Items[i].Equal(o.Items[i]) {
			return false
		}
	}

	return true
}

// GeneralTerm is general_data (: general_data)* (: general_list)? |
// general_list — a colon-joined chain of general_data items, optionally
// ending in a bracketed list, or a bare list. The colon is a
// right-associative pairing/type-annotation operator at this level.
type GeneralTerm struct {
	Items []GeneralData
	List  *GeneralList
}

// Pretty renders the colon-joined chain, followed by the trailing list if
// present.
func (t GeneralTerm) Pretty(sb *strings.Builder) {
	for i, item := range t.Items {
		if i > 0 {
			sb.WriteByte(':')
		}

		item.Pretty(sb)
	}

	if t.List != nil {
		if len(t.Items) > 0 {
			sb.WriteByte(':')
		}

		t.List.Pretty(sb)
	}
}

// Equal performs structural comparison.
func (t GeneralTerm) Equal(o GeneralTerm) bool {
	if len(t.Items) != len(o.Items) {
		return false
	}

	for i := range t.Items {
		if !t.Items[i].Equal(o.Items[i]) {
			return false
		}
	}

	if (t.List == nil) != (o.List == nil) {
		return false
	}

	if t.List != nil {
		return t.List.Equal(*o.List)
	}

	return true
}

// Symbols contributes this node's symbols to a symbol set.
func (t GeneralTerm) Symbols(into SymbolSet) {
	for _, item := range t.Items {
		item.Symbols(into)
	}

	if t.List != nil {
		for _, item := range t.List.Items {
			item.Symbols(into)
		}
	}
}
