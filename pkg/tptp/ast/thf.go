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

// THFFormula is implemented by every THF node. THF unifies terms, types and
// formulas into one syntactic category (TH1 requires types to be
// expressible as terms), so a single family serves all three roles; a
// later semantic pass, out of scope here, is responsible for telling them
// apart.
type THFFormula interface {
	Pretty
	Symbolic
	thfFormula()
	thfEqual(THFFormula) bool
}

// THFVariable is an upper-case-initial variable reference.
type THFVariable struct{ Name string }

func (THFVariable) thfFormula()                     {}
func (v THFVariable) Pretty(sb *strings.Builder)    { sb.WriteString(v.Name) }
func (v THFVariable) Symbols(SymbolSet)             {}
func (v THFVariable) thfEqual(o THFFormula) bool {
	ov, ok := o.(THFVariable)
	return ok && v.Name == ov.Name
}

// THFAtom is a bare functor, optionally a first-order-style application
// "f(a, b)" (as opposed to THF's curried "f @ a @ b" application, modeled
// separately by THFBinaryFormula with Op "@").
type THFAtom struct {
	Functor string
	Args    []THFFormula
}

func (THFAtom) thfFormula() {}
func (a THFAtom) Pretty(sb *strings.Builder) {
	sb.WriteString(a.Functor)

	if a.Args != nil {
		sb.WriteByte('(')
		prettyJoin(sb, a.Args, ", ")
		sb.WriteByte(')')
	}
}
func (a THFAtom) Symbols(into SymbolSet) {
	into.Add(a.Functor)

	for _, arg := range a.Args {
		arg.Symbols(into)
	}
}
func (a THFAtom) thfEqual(o THFFormula) bool {
	oa, ok := o.(THFAtom)
	if !ok || a.Functor != oa.Functor || len(a.Args) != len(oa.Args) {
		return false
	}

	for i := range a.Args {
		if !a.Args[i].thfEqual(oa.Args[i]) {
			return false
		}
	}

	return true
}

// THFNumber wraps a numeric literal.
type THFNumber struct{ Value Number }

func (THFNumber) thfFormula()                     {}
func (n THFNumber) Pretty(sb *strings.Builder)    { n.Value.Pretty(sb) }
func (n THFNumber) Symbols(SymbolSet)             {}
func (n THFNumber) thfEqual(o THFFormula) bool {
	on, ok := o.(THFNumber)
	return ok && n.Value.Equal(on.Value)
}

// THFDistinctObject wraps a double-quoted distinct object, quotes retained.
type THFDistinctObject struct{ Text string }

func (THFDistinctObject) thfFormula()                     {}
func (d THFDistinctObject) Pretty(sb *strings.Builder)    { sb.WriteString(d.Text) }
func (d THFDistinctObject) Symbols(into SymbolSet)        { into.Add(d.Text) }
func (d THFDistinctObject) thfEqual(o THFFormula) bool {
	od, ok := o.(THFDistinctObject)
	return ok && d.Text == od.Text
}

// THFConnectiveTerm is a reserved connective symbol occurring bare, as a
// term in its own right (e.g. an argument position referring to "&" as a
// value rather than applying it).
type THFConnectiveTerm struct{ Op string }

func (THFConnectiveTerm) thfFormula()                     {}
func (c THFConnectiveTerm) Pretty(sb *strings.Builder)    { sb.WriteByte('('); sb.WriteString(c.Op); sb.WriteByte(')') }
func (c THFConnectiveTerm) Symbols(SymbolSet)             {}
func (c THFConnectiveTerm) thfEqual(o THFFormula) bool {
	oc, ok := o.(THFConnectiveTerm)
	return ok && c.Op == oc.Op
}

// THFQuantifiedFormula covers every THF binder: "!" (universal), "?"
// (existential), "^" (lambda abstraction), "!>" (dependent product type),
// "?*" (dependent sum type), "@+" (choice) and "@-" (description).
type THFQuantifiedFormula struct {
	Quantifier string
	Vars       []TypedVariable
	Body       THFFormula
}

func (THFQuantifiedFormula) thfFormula() {}
func (q THFQuantifiedFormula) Pretty(sb *strings.Builder) {
	sb.WriteString(q.Quantifier)
	sb.WriteString(" [")
	prettyJoin(sb, q.Vars, ", ")
	sb.WriteString("]: ")
	q.Body.Pretty(sb)
}
func (q THFQuantifiedFormula) Symbols(into SymbolSet) { q.Body.Symbols(into) }
func (q THFQuantifiedFormula) thfEqual(o THFFormula) bool {
	oq, ok := o.(THFQuantifiedFormula)
	if !ok || q.Quantifier != oq.Quantifier || len(q.Vars) != len(oq.Vars) {
		return false
	}

	for i := range q.Vars {
		if !q.Vars[i].Equal(oq.Vars[i]) {
			return false
		}
	}

	return q.Body.thfEqual(oq.Body)
}

// THFUnaryFormula is "~ body".
type THFUnaryFormula struct{ Body THFFormula }

func (THFUnaryFormula) thfFormula() {}
func (u THFUnaryFormula) Pretty(sb *strings.Builder) {
	sb.WriteString("~ ")
	u.Body.Pretty(sb)
}
func (u THFUnaryFormula) Symbols(into SymbolSet) { u.Body.Symbols(into) }
func (u THFUnaryFormula) thfEqual(o THFFormula) bool {
	ou, ok := o.(THFUnaryFormula)
	return ok && u.Body.thfEqual(ou.Body)
}

// THFBinaryFormula covers every THF binary operator: "@" (curried
// application, left-assoc), "|"/"&" (right-assoc), the non-associative
// propositional connectives, ">"/"*"/"+" (type constructors) and ":="
// (non-classical-parameter-style assignment occurring at formula level).
type THFBinaryFormula struct {
	Op       string
	Lhs, Rhs THFFormula
}

func (THFBinaryFormula) thfFormula() {}
func (b THFBinaryFormula) Pretty(sb *strings.Builder) {
	sb.WriteByte('(')
	b.Lhs.Pretty(sb)
	sb.WriteByte(' ')
	sb.WriteString(b.Op)
	sb.WriteByte(' ')
	b.Rhs.Pretty(sb)
	sb.WriteByte(')')
}
func (b THFBinaryFormula) Symbols(into SymbolSet) {
	b.Lhs.Symbols(into)
	b.Rhs.Symbols(into)
}
func (b THFBinaryFormula) thfEqual(o THFFormula) bool {
	ob, ok := o.(THFBinaryFormula)
	return ok && b.Op == ob.Op && b.Lhs.thfEqual(ob.Lhs) && b.Rhs.thfEqual(ob.Rhs)
}

// THFEqualityFormula is "lhs = rhs" or "lhs != rhs".
type THFEqualityFormula struct {
	Lhs, Rhs THFFormula
	Negated  bool
}

func (THFEqualityFormula) thfFormula() {}
func (e THFEqualityFormula) Pretty(sb *strings.Builder) {
	e.Lhs.Pretty(sb)

	if e.Negated {
		sb.WriteString(" != ")
	} else {
		sb.WriteString(" = ")
	}

	e.Rhs.Pretty(sb)
}
func (e THFEqualityFormula) Symbols(into SymbolSet) {
	e.Lhs.Symbols(into)
	e.Rhs.Symbols(into)
}
func (e THFEqualityFormula) thfEqual(o THFFormula) bool {
	oe, ok := o.(THFEqualityFormula)
	return ok && e.Negated == oe.Negated && e.Lhs.thfEqual(oe.Lhs) && e.Rhs.thfEqual(oe.Rhs)
}

// THFMetaIdentity is the trailing "lhs == rhs" meta-identity.
type THFMetaIdentity struct{ Lhs, Rhs THFFormula }

func (THFMetaIdentity) thfFormula() {}
func (m THFMetaIdentity) Pretty(sb *strings.Builder) {
	sb.WriteByte('(')
	m.Lhs.Pretty(sb)
	sb.WriteString(") == (")
	m.Rhs.Pretty(sb)
	sb.WriteByte(')')
}
func (m THFMetaIdentity) Symbols(into SymbolSet) {
	m.Lhs.Symbols(into)
	m.Rhs.Symbols(into)
}
func (m THFMetaIdentity) thfEqual(o THFFormula) bool {
	om, ok := o.(THFMetaIdentity)
	return ok && m.Lhs.thfEqual(om.Lhs) && m.Rhs.thfEqual(om.Rhs)
}

// THFTuple is a "[a, b, ...]" tuple term.
type THFTuple struct{ Elems []THFFormula }

func (THFTuple) thfFormula() {}
func (t THFTuple) Pretty(sb *strings.Builder) {
	sb.WriteByte('[')
	prettyJoin(sb, t.Elems, ", ")
	sb.WriteByte(']')
}
func (t THFTuple) Symbols(into SymbolSet) {
	for _, e := range t.Elems {
		e.Symbols(into)
	}
}
func (t THFTuple) thfEqual(o THFFormula) bool {
	ot, ok := o.(THFTuple)
	if !ok || len(t.Elems) != len(ot.Elems) {
		return false
	}

	for i := range t.Elems {
		if !t.Elems[i].thfEqual(ot.Elems[i]) {
			return false
		}
	}

	return true
}

// THFConditional is "$ite(cond, then, else)".
type THFConditional struct {
	Cond, Then, Else THFFormula
}

func (THFConditional) thfFormula() {}
func (c THFConditional) Pretty(sb *strings.Builder) {
	sb.WriteString("$ite(")
	c.Cond.Pretty(sb)
	sb.WriteString(", ")
	c.Then.Pretty(sb)
	sb.WriteString(", ")
	c.Else.Pretty(sb)
	sb.WriteByte(')')
}
func (c THFConditional) Symbols(into SymbolSet) {
	c.Cond.Symbols(into)
	c.Then.Symbols(into)
	c.Else.Symbols(into)
}
func (c THFConditional) thfEqual(o THFFormula) bool {
	oc, ok := o.(THFConditional)
	return ok && c.Cond.thfEqual(oc.Cond) && c.Then.thfEqual(oc.Then) && c.Else.thfEqual(oc.Else)
}

// THFAssignment is a "lhs := rhs" binding inside a $let term.
type THFAssignment struct{ Lhs, Rhs THFFormula }

// Pretty renders "lhs := rhs".
func (a THFAssignment) Pretty(sb *strings.Builder) {
	a.Lhs.Pretty(sb)
	sb.WriteString(" := ")
	a.Rhs.Pretty(sb)
}

// Equal performs structural comparison.
func (a THFAssignment) Equal(o THFAssignment) bool {
	return a.Lhs.thfEqual(o.Lhs) && a.Rhs.thfEqual(o.Rhs)
}

// THFLet is "$let(types, bindings, body)".
type THFLet struct {
	Types    []TFFTyping
	Bindings []THFAssignment
	Body     THFFormula
}

func (THFLet) thfFormula() {}
func (l THFLet) Pretty(sb *strings.Builder) {
	sb.WriteString("$let(")
	writeBracketedOrSingle(sb, len(l.Types), func(i int) Pretty { return l.Types[i] })
	sb.WriteString(", ")
	writeBracketedOrSingle(sb, len(l.Bindings), func(i int) Pretty { return l.Bindings[i] })
	sb.WriteString(", ")
	l.Body.Pretty(sb)
	sb.WriteByte(')')
}
func (l THFLet) Symbols(into SymbolSet) {
	l.Body.Symbols(into)

	for _, b := range l.Bindings {
		b.Lhs.Symbols(into)
		b.Rhs.Symbols(into)
	}
}
func (l THFLet) thfEqual(o THFFormula) bool {
	ol, ok := o.(THFLet)
	if !ok || len(l.Types) != len(ol.Types) || len(l.Bindings) != len(ol.Bindings) {
		return false
	}

	for i := range l.Types {
		if !l.Types[i].Equal(ol.Types[i]) {
			return false
		}
	}

	for i := range l.Bindings {
		if !l.Bindings[i].Equal(ol.Bindings[i]) {
			return false
		}
	}

	return l.Body.thfEqual(ol.Body)
}

// THFStatement is implemented by the three shapes a THF formula body can
// take at the top level: an ordinary logical formula, a typing
// declaration, or a sequent.
type THFStatement interface {
	Pretty
	Symbolic
	thfStatement()
	thfStatementEqual(THFStatement) bool
}

// THFLogicalStatement wraps an ordinary formula body.
type THFLogicalStatement struct{ Formula THFFormula }

func (THFLogicalStatement) thfStatement()               {}
func (s THFLogicalStatement) Pretty(sb *strings.Builder) { s.Formula.Pretty(sb) }
func (s THFLogicalStatement) Symbols(into SymbolSet)     { s.Formula.Symbols(into) }
func (s THFLogicalStatement) thfStatementEqual(o THFStatement) bool {
	os, ok := o.(THFLogicalStatement)
	return ok && s.Formula.thfEqual(os.Formula)
}

// THFTypingStatement wraps a top-level "atom : type" declaration.
type THFTypingStatement struct {
	Atom string
	Type THFFormula
}

func (THFTypingStatement) thfStatement() {}
func (s THFTypingStatement) Pretty(sb *strings.Builder) {
	sb.WriteString(s.Atom)
	sb.WriteString(" : ")
	s.Type.Pretty(sb)
}
func (s THFTypingStatement) Symbols(into SymbolSet) { into.Add(s.Atom) }
func (s THFTypingStatement) thfStatementEqual(o THFStatement) bool {
	os, ok := o.(THFTypingStatement)
	return ok && s.Atom == os.Atom && s.Type.thfEqual(os.Type)
}

// THFSequentStatement is "lhsTuple --> rhsTuple".
type THFSequentStatement struct{ Lhs, Rhs []THFFormula }

func (THFSequentStatement) thfStatement() {}
func (s THFSequentStatement) Pretty(sb *strings.Builder) {
	sb.WriteByte('[')
	prettyJoin(sb, s.Lhs, ", ")
	sb.WriteString("] --> [")
	prettyJoin(sb, s.Rhs, ", ")
	sb.WriteByte(']')
}
func (s THFSequentStatement) Symbols(into SymbolSet) {
	for _, t := range s.Lhs {
		t.Symbols(into)
	}

	for _, t := range s.Rhs {
		t.Symbols(into)
	}
}
func (s THFSequentStatement) thfStatementEqual(o THFStatement) bool {
	os, ok := o.(THFSequentStatement)
	if !ok || len(s.Lhs) != len(os.Lhs) || len(s.Rhs) != len(os.Rhs) {
		return false
	}

	for i := range s.Lhs {
		if !s.Lhs[i].thfEqual(os.Lhs[i]) {
			return false
		}
	}

	for i := range s.Rhs {
		if !s.Rhs[i].thfEqual(os.Rhs[i]) {
			return false
		}
	}

	return true
}

// THFAnnotated is a top-level "thf(name, role, statement [, ...])." entry.
type THFAnnotated struct {
	annotatedBase
	Statement THFStatement
}

// NewTHFAnnotated constructs a THFAnnotated with no annotations and no
// recorded origin; callers set those via SetAnnotations/SetOrigin.
func NewTHFAnnotated(name string, role Role, statement THFStatement) *THFAnnotated {
	return &THFAnnotated{annotatedBase: newBase(name, role), Statement: statement}
}

// Pretty renders the full annotated formula.
func (a *THFAnnotated) Pretty(sb *strings.Builder) {
	a.prettyHeader(sb, "thf")
	a.Statement.Pretty(sb)
	a.prettyFooter(sb)
}

// Equal performs structural comparison, ignoring Meta.
func (a *THFAnnotated) Equal(o AnnotatedFormula) bool {
	oa, ok := o.(*THFAnnotated)
	return ok && a.baseEqual(&oa.annotatedBase) && a.Statement.thfStatementEqual(oa.Statement)
}

// Symbols returns this formula's symbol set.
func (a *THFAnnotated) Symbols() SymbolSet {
	s := NewSymbolSet()
	a.Statement.Symbols(s)

	return s
}
