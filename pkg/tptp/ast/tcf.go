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

// TCFStatement is implemented by TCF's two statement shapes: a typing
// declaration (shared with TFF) or a typed clause.
type TCFStatement interface {
	Pretty
	Symbolic
	tcfStatement()
	tcfStatementEqual(TCFStatement) bool
}

// TCFTypingStatement wraps a top-level "atom : type" declaration, reusing
// TFF's typing shape verbatim.
type TCFTypingStatement struct{ Typing TFFTyping }

func (TCFTypingStatement) tcfStatement()               {}
func (s TCFTypingStatement) Pretty(sb *strings.Builder) { s.Typing.Pretty(sb) }
func (s TCFTypingStatement) Symbols(into SymbolSet)     { into.Add(s.Typing.Atom) }
func (s TCFTypingStatement) tcfStatementEqual(o TCFStatement) bool {
	os, ok := o.(TCFTypingStatement)
	return ok && s.Typing.Equal(os.Typing)
}

// TCFClauseStatement is an optionally-quantified clause: "! [vars]: clause"
// or a bare clause. The quantified variables may carry type annotations;
// the clause body itself is untyped CNF, since typing is expressed
// separately via TCFTypingStatement declarations elsewhere in the problem.
type TCFClauseStatement struct {
	Vars   []TypedVariable // nil when no leading "!" prefix is present
	Clause CNFClause
}

func (TCFClauseStatement) tcfStatement() {}
func (s TCFClauseStatement) Pretty(sb *strings.Builder) {
	if s.Vars != nil {
		sb.WriteString("! [")
		prettyJoin(sb, s.Vars, ", ")
		sb.WriteString("]: ")
	}

	s.Clause.Pretty(sb)
}
func (s TCFClauseStatement) Symbols(into SymbolSet) { s.Clause.Symbols(into) }
func (s TCFClauseStatement) tcfStatementEqual(o TCFStatement) bool {
	os, ok := o.(TCFClauseStatement)
	if !ok || (s.Vars == nil) != (os.Vars == nil) || len(s.Vars) != len(os.Vars) {
		return false
	}

	for i := range s.Vars {
		if !s.Vars[i].Equal(os.Vars[i]) {
			return false
		}
	}

	return s.Clause.Equal(os.Clause)
}

// TCFAnnotated is a top-level "tcf(name, role, statement [, annotations])."
// entry.
type TCFAnnotated struct {
	annotatedBase
	Statement TCFStatement
}

// NewTCFAnnotated constructs a TCFAnnotated with no annotations and no
// recorded origin; callers set those via SetAnnotations/SetOrigin.
func NewTCFAnnotated(name string, role Role, statement TCFStatement) *TCFAnnotated {
	return &TCFAnnotated{annotatedBase: newBase(name, role), Statement: statement}
}

// Pretty renders the full annotated formula.
func (a *TCFAnnotated) Pretty(sb *strings.Builder) {
	a.prettyHeader(sb, "tcf")
	a.Statement.Pretty(sb)
	a.prettyFooter(sb)
}

// Equal performs structural comparison, ignoring Meta.
func (a *TCFAnnotated) Equal(o AnnotatedFormula) bool {
	oa, ok := o.(*TCFAnnotated)
	return ok && a.baseEqual(&oa.annotatedBase) && a.Statement.tcfStatementEqual(oa.Statement)
}

// Symbols returns this formula's symbol set.
func (a *TCFAnnotated) Symbols() SymbolSet {
	s := NewSymbolSet()
	a.Statement.Symbols(s)

	return s
}
