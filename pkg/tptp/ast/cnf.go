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

// CNFLiteralKind distinguishes a clause literal's three shapes.
type CNFLiteralKind int

const (
	// CNFPositive is a bare atom.
	CNFPositive CNFLiteralKind = iota
	// CNFNegative is "~ atom".
	CNFNegative
	// CNFEquality is "lhs = rhs" or "lhs != rhs".
	CNFEquality
)

// CNFLiteral is one disjunct of a clause. CNF reuses FOF's term and atom
// shapes directly: clause literals are untyped first-order atoms or
// equations, identical in structure to FOF's.
type CNFLiteral struct {
	Kind CNFLiteralKind
	// Atom holds the payload for Positive and Negative.
	Atom FOFAtomic
	// Lhs, Rhs and Negated hold the payload for Equality.
	Lhs, Rhs FOFTerm
	Negated  bool
}

// Pretty renders the literal.
func (l CNFLiteral) Pretty(sb *strings.Builder) {
	switch l.Kind {
	case CNFPositive:
		l.Atom.Pretty(sb)
	case CNFNegative:
		sb.WriteString("~ ")
		l.Atom.Pretty(sb)
	case CNFEquality:
		l.Lhs.Pretty(sb)

		if l.Negated {
			sb.WriteString(" != ")
		} else {
			sb.WriteString(" = ")
		}

		l.Rhs.Pretty(sb)
	}
}

// Equal performs structural comparison.
func (l CNFLiteral) Equal(o CNFLiteral) bool {
	if l.Kind != o.Kind {
		return false
	}

	switch l.Kind {
	case CNFPositive, CNFNegative:
		return l.Atom.Equal(o.Atom)
	case CNFEquality:
		return l.Negated == o.Negated && l.Lhs.fofEqual(o.Lhs) && l.Rhs.fofEqual(o.Rhs)
	default:
		return false
	}
}

// Symbols contributes this literal's symbols to a symbol set.
func (l CNFLiteral) Symbols(into SymbolSet) {
	switch l.Kind {
	case CNFPositive, CNFNegative:
		l.Atom.Symbols(into)
	case CNFEquality:
		l.Lhs.Symbols(into)
		l.Rhs.Symbols(into)
	}
}

// CNFClause is a disjunction of literals, written "(l1 | l2 | ...)" when
// more than one literal is present and bare when exactly one is.
type CNFClause struct {
	Literals []CNFLiteral
}

// Pretty renders the clause.
func (c CNFClause) Pretty(sb *strings.Builder) {
	if len(c.Literals) == 1 {
		c.Literals[0].Pretty(sb)
		return
	}

	sb.WriteByte('(')
	prettyJoin(sb, c.Literals, " | ")
	sb.WriteByte(')')
}

// Equal performs structural comparison.
func (c CNFClause) Equal(o CNFClause) bool {
	if len(c.Literals) != len(o.Literals) {
		return false
	}

	for i := range c.Literals {
		if !c.Literals[i].Equal(o.Literals[i]) {
			return false
		}
	}

	return true
}

// Symbols contributes this clause's symbols to a symbol set.
func (c CNFClause) Symbols(into SymbolSet) {
	for _, l := range c.Literals {
		l.Symbols(into)
	}
}

// CNFAnnotated is a top-level "cnf(name, role, clause [, annotations])."
// entry.
type CNFAnnotated struct {
	annotatedBase
	Clause CNFClause
}

// NewCNFAnnotated constructs a CNFAnnotated with no annotations and no
// recorded origin; callers set those via SetAnnotations/SetOrigin.
func NewCNFAnnotated(name string, role Role, clause CNFClause) *CNFAnnotated {
	return &CNFAnnotated{annotatedBase: newBase(name, role), Clause: clause}
}

// Pretty renders the full annotated formula.
func (a *CNFAnnotated) Pretty(sb *strings.Builder) {
	a.prettyHeader(sb, "cnf")
	a.Clause.Pretty(sb)
	a.prettyFooter(sb)
}

// Equal performs structural comparison, ignoring Meta.
func (a *CNFAnnotated) Equal(o AnnotatedFormula) bool {
	oa, ok := o.(*CNFAnnotated)
	return ok && a.baseEqual(&oa.annotatedBase) && a.Clause.Equal(oa.Clause)
}

// Symbols returns this formula's symbol set.
func (a *CNFAnnotated) Symbols() SymbolSet {
	s := NewSymbolSet()
	a.Clause.Symbols(s)

	return s
}
