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

// FOFConnective enumerates FOF's binary formula connectives.
type FOFConnective int

// FOF binary connectives.
const (
	FOFAnd FOFConnective = iota
	FOFOr
	FOFIff
	FOFImplies
	FOFImpliedBy
	FOFXor
	FOFNor
	FOFNand
)

func (c FOFConnective) text() string {
	switch c {
	case FOFAnd:
		return "&"
	case FOFOr:
		return "|"
	case FOFIff:
		return "<=>"
	case FOFImplies:
		return "=>"
	case FOFImpliedBy:
		return "<="
	case FOFXor:
		return "<~>"
	case FOFNor:
		return "~|"
	case FOFNand:
		return "~&"
	default:
		return "?"
	}
}

// FOFTerm is implemented by every FOF term variant. CNF and TCF reuse this
// same family: untyped first-order terms have identical shape across all
// three dialects.
type FOFTerm interface {
	Pretty
	Symbolic
	fofTerm()
	fofEqual(FOFTerm) bool
}

// FOFVariable is an upper-case-initial variable reference.
type FOFVariable struct{ Name string }

func (FOFVariable) fofTerm()                       {}
func (v FOFVariable) Pretty(sb *strings.Builder)   { sb.WriteString(v.Name) }
func (v FOFVariable) Symbols(SymbolSet)            {}
func (v FOFVariable) fofEqual(o FOFTerm) bool {
	ov, ok := o.(FOFVariable)
	return ok && v.Name == ov.Name
}

// FOFFunctionTerm is a functor applied to zero or more argument terms (a
// bare functor with Args == nil is a constant).
type FOFFunctionTerm struct {
	Functor string
	Args    []FOFTerm
}

func (FOFFunctionTerm) fofTerm() {}
func (f FOFFunctionTerm) Pretty(sb *strings.Builder) {
	sb.WriteString(f.Functor)

	if f.Args != nil {
		sb.WriteByte('(')
		prettyJoin(sb, f.Args, ", ")
		sb.WriteByte(')')
	}
}
func (f FOFFunctionTerm) Symbols(into SymbolSet) {
	into.Add(f.Functor)

	for _, a := range f.Args {
		a.Symbols(into)
	}
}
func (f FOFFunctionTerm) fofEqual(o FOFTerm) bool {
	of, ok := o.(FOFFunctionTerm)
	if !ok || f.Functor != of.Functor || len(f.Args) != len(of.Args) {
		return false
	}

	for i := range f.Args {
		if !f.Args[i].fofEqual(of.Args[i]) {
			return false
		}
	}

	return true
}

// FOFNumberTerm wraps a numeric literal.
type FOFNumberTerm struct{ Value Number }

func (FOFNumberTerm) fofTerm()                     {}
func (n FOFNumberTerm) Pretty(sb *strings.Builder) { n.Value.Pretty(sb) }
func (n FOFNumberTerm) Symbols(SymbolSet)          {}
func (n FOFNumberTerm) fofEqual(o FOFTerm) bool {
	on, ok := o.(FOFNumberTerm)
	return ok && n.Value.Equal(on.Value)
}

// FOFDistinctObjectTerm wraps a double-quoted distinct object, quotes
// retained.
type FOFDistinctObjectTerm struct{ Text string }

func (FOFDistinctObjectTerm) fofTerm()                     {}
func (d FOFDistinctObjectTerm) Pretty(sb *strings.Builder) { sb.WriteString(d.Text) }
func (d FOFDistinctObjectTerm) Symbols(into SymbolSet)     { into.Add(d.Text) }
func (d FOFDistinctObjectTerm) fofEqual(o FOFTerm) bool {
	od, ok := o.(FOFDistinctObjectTerm)
	return ok && d.Text == od.Text
}

// FOFAtomic is a predicate application (Args == nil for a propositional
// atom, including $true/$false). It is shared, unwrapped, by FOF's
// AtomicFormula and by CNF's literal representation.
type FOFAtomic struct {
	Functor string
	Args    []FOFTerm
}

// Pretty renders "functor(args...)" or a bare functor.
func (a FOFAtomic) Pretty(sb *strings.Builder) {
	sb.WriteString(a.Functor)

	if a.Args != nil {
		sb.WriteByte('(')
		prettyJoin(sb, a.Args, ", ")
		sb.WriteByte(')')
	}
}

// Equal performs structural comparison.
func (a FOFAtomic) Equal(o FOFAtomic) bool {
	if a.Functor != o.Functor || len(a.Args) != len(o.Args) {
		return false
	}

	for i := range a.Args {
		if !a.Args[i].fofEqual(o.Args[i]) {
			return false
		}
	}

	return true
}

// Symbols contributes this atom's symbols to a symbol set.
func (a FOFAtomic) Symbols(into SymbolSet) {
	into.Add(a.Functor)

	for _, arg := range a.Args {
		arg.Symbols(into)
	}
}

// FOFFormula is implemented by every FOF formula variant.
type FOFFormula interface {
	Pretty
	Symbolic
	fofFormula()
	fofFormulaEqual(FOFFormula) bool
}

// FOFQuantifiedFormula is "! [vars]: body" or "? [vars]: body"; FOF
// variables carry no type annotation.
type FOFQuantifiedFormula struct {
	Universal bool
	Vars      []string
	Body      FOFFormula
}

func (FOFQuantifiedFormula) fofFormula() {}
func (q FOFQuantifiedFormula) Pretty(sb *strings.Builder) {
	if q.Universal {
		sb.WriteByte('!')
	} else {
		sb.WriteByte('?')
	}

	sb.WriteString(" [")

	for i, v := range q.Vars {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(v)
	}

	sb.WriteString("]: ")
	q.Body.Pretty(sb)
}
func (q FOFQuantifiedFormula) Symbols(into SymbolSet) { q.Body.Symbols(into) }
func (q FOFQuantifiedFormula) fofFormulaEqual(o FOFFormula) bool {
	oq, ok := o.(FOFQuantifiedFormula)
	if !ok || q.Universal != oq.Universal || len(q.Vars) != len(oq.Vars) {
		return false
	}

	for i := range q.Vars {
		if q.Vars[i] != oq.Vars[i] {
			return false
		}
	}

	return q.Body.fofFormulaEqual(oq.Body)
}

// FOFUnaryFormula is "~ body".
type FOFUnaryFormula struct{ Body FOFFormula }

func (FOFUnaryFormula) fofFormula() {}
func (u FOFUnaryFormula) Pretty(sb *strings.Builder) {
	sb.WriteString("~ ")
	u.Body.Pretty(sb)
}
func (u FOFUnaryFormula) Symbols(into SymbolSet) { u.Body.Symbols(into) }
func (u FOFUnaryFormula) fofFormulaEqual(o FOFFormula) bool {
	ou, ok := o.(FOFUnaryFormula)
	return ok && u.Body.fofFormulaEqual(ou.Body)
}

// FOFBinaryFormula is "(lhs op rhs)"; binary formulas are always
// parenthesized on output.
type FOFBinaryFormula struct {
	Op       FOFConnective
	Lhs, Rhs FOFFormula
}

func (FOFBinaryFormula) fofFormula() {}
func (b FOFBinaryFormula) Pretty(sb *strings.Builder) {
	sb.WriteByte('(')
	b.Lhs.Pretty(sb)
	sb.WriteByte(' ')
	sb.WriteString(b.Op.text())
	sb.WriteByte(' ')
	b.Rhs.Pretty(sb)
	sb.WriteByte(')')
}
func (b FOFBinaryFormula) Symbols(into SymbolSet) {
	b.Lhs.Symbols(into)
	b.Rhs.Symbols(into)
}
func (b FOFBinaryFormula) fofFormulaEqual(o FOFFormula) bool {
	ob, ok := o.(FOFBinaryFormula)
	return ok && b.Op == ob.Op && b.Lhs.fofFormulaEqual(ob.Lhs) && b.Rhs.fofFormulaEqual(ob.Rhs)
}

// FOFAtomicFormula wraps a predicate application at formula position.
type FOFAtomicFormula struct{ Atom FOFAtomic }

func (FOFAtomicFormula) fofFormula()                     {}
func (a FOFAtomicFormula) Pretty(sb *strings.Builder)    { a.Atom.Pretty(sb) }
func (a FOFAtomicFormula) Symbols(into SymbolSet)        { a.Atom.Symbols(into) }
func (a FOFAtomicFormula) fofFormulaEqual(o FOFFormula) bool {
	oa, ok := o.(FOFAtomicFormula)
	return ok && a.Atom.Equal(oa.Atom)
}

// FOFEqualityFormula is "lhs = rhs" or "lhs != rhs".
type FOFEqualityFormula struct {
	Lhs, Rhs FOFTerm
	Negated  bool
}

func (FOFEqualityFormula) fofFormula() {}
func (e FOFEqualityFormula) Pretty(sb *strings.Builder) {
	e.Lhs.Pretty(sb)

	if e.Negated {
		sb.WriteString(" != ")
	} else {
		sb.WriteString(" = ")
	}

	e.Rhs.Pretty(sb)
}
func (e FOFEqualityFormula) Symbols(into SymbolSet) {
	e.Lhs.Symbols(into)
	e.Rhs.Symbols(into)
}
func (e FOFEqualityFormula) fofFormulaEqual(o FOFFormula) bool {
	oe, ok := o.(FOFEqualityFormula)
	return ok && e.Negated == oe.Negated && e.Lhs.fofEqual(oe.Lhs) && e.Rhs.fofEqual(oe.Rhs)
}

// FOFAnnotated is a top-level "fof(name, role, formula [, annotations])."
// entry.
type FOFAnnotated struct {
	annotatedBase
	Formula FOFFormula
}

// NewFOFAnnotated constructs a FOFAnnotated with no annotations and no
// recorded origin; callers set those via SetAnnotations/SetOrigin.
func NewFOFAnnotated(name string, role Role, formula FOFFormula) *FOFAnnotated {
	return &FOFAnnotated{annotatedBase: newBase(name, role), Formula: formula}
}

// Pretty renders the full annotated formula.
func (a *FOFAnnotated) Pretty(sb *strings.Builder) {
	a.prettyHeader(sb, "fof")
	a.Formula.Pretty(sb)
	a.prettyFooter(sb)
}

// Equal performs structural comparison, ignoring Meta.
func (a *FOFAnnotated) Equal(o AnnotatedFormula) bool {
	oa, ok := o.(*FOFAnnotated)
	return ok && a.baseEqual(&oa.annotatedBase) && a.Formula.fofFormulaEqual(oa.Formula)
}

// Symbols returns this formula's symbol set.
func (a *FOFAnnotated) Symbols() SymbolSet {
	s := NewSymbolSet()
	a.Formula.Symbols(s)

	return s
}
