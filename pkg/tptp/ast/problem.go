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

import (
	"strings"

	"github.com/tptp-lang/tptp/pkg/tptp/source"
)

// Role is a formula's role (axiom, conjecture, plain, type, ...), optionally
// refined by a sub-role general term joined with '-'.
type Role struct {
	Name    string
	SubRole *GeneralTerm
}

// Pretty renders "name" or "name-subrole".
func (r Role) Pretty(sb *strings.Builder) {
	sb.WriteString(r.Name)

	if r.SubRole != nil {
		sb.WriteByte('-')
		r.SubRole.Pretty(sb)
	}
}

// Equal performs structural comparison.
func (r Role) Equal(o Role) bool {
	if r.Name != o.Name {
		return false
	}

	if (r.SubRole == nil) != (o.SubRole == nil) {
		return false
	}

	if r.SubRole != nil {
		return r.SubRole.Equal(*o.SubRole)
	}

	return true
}

// Annotations is the optional (source, info) pair trailing an annotated
// formula's body.
type Annotations struct {
	Source GeneralTerm
	// Info is nil when absent, matching the "optional info" grammar rule.
	Info []GeneralTerm
}

// Pretty renders ", source[, [info...]]" including the leading comma.
func (a *Annotations) Pretty(sb *strings.Builder) {
	sb.WriteString(", ")
	a.Source.Pretty(sb)

	if a.Info != nil {
		sb.WriteString(", [")

		for i, g := range a.Info {
			if i > 0 {
				sb.WriteString(", ")
			}

			g.Pretty(sb)
		}

		sb.WriteByte(']')
	}
}

// Equal performs structural comparison. A nil receiver and argument compare
// equal.
func (a *Annotations) Equal(o *Annotations) bool {
	if a == nil || o == nil {
		return a == o
	}

	if !a.Source.Equal(o.Source) {
		return false
	}

	if len(a.Info) != len(o.Info) {
		return false
	}

	for i := range a.Info {
		if !a.Info[i].Equal(o.Info[i]) {
			return false
		}
	}

	return true
}

// Include is a never-expanded include('filename'[, [sel, ...]]). directive.
type Include struct {
	// Filename is the raw single-quoted token text, quotes and escapes
	// retained, exactly as read.
	Filename string
	// Selector is nil (not merely empty) when no selector list was given at
	// all; an empty non-nil selector still means "include everything" per
	// the grammar, but the two are textually distinguishable and both
	// distinctions are preserved for a faithful round trip.
	Selector        []string
	LeadingComments []Comment
}

// Pretty renders "include(filename[, [s1, s2, ...]])."
func (inc Include) Pretty(sb *strings.Builder) {
	sb.WriteString("include(")
	sb.WriteString(inc.Filename)

	if inc.Selector != nil {
		sb.WriteString(", [")

		for i, s := range inc.Selector {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(s)
		}

		sb.WriteByte(']')
	}

	sb.WriteString(").")
}

// Equal performs structural comparison, ignoring LeadingComments (comments
// are compared separately via Problem.FormulaComments-equivalent handling
// at the caller's discretion; Include carries them for the parser's
// convenience but they are not part of an Include's identity any more than
// Meta is part of an AnnotatedFormula's).
func (inc Include) Equal(o Include) bool {
	if inc.Filename != o.Filename {
		return false
	}

	if (inc.Selector == nil) != (o.Selector == nil) {
		return false
	}

	if len(inc.Selector) != len(o.Selector) {
		return false
	}

	for i := range inc.Selector {
		if inc.Selector[i] != o.Selector[i] {
			return false
		}
	}

	return true
}

// Meta is the mutable side-map owned by an annotated formula. The parser
// writes "origin" during construction; callers may add further keys.
// Meta is excluded from every AnnotatedFormula equality comparison.
type Meta map[string]any

// Origin is the well-known meta key holding the (line, column) of an
// annotated formula's leading keyword token.
const Origin = "origin"

// AnnotatedFormula is implemented by each dialect's *XAnnotated wrapper.
type AnnotatedFormula interface {
	Pretty
	Name() string
	RoleValue() Role
	AnnotationsValue() *Annotations
	MetaMap() Meta
	Equal(AnnotatedFormula) bool
	Symbols() SymbolSet
}

// annotatedBase holds the fields shared by every dialect's annotated
// formula wrapper; dialect types embed it and add their own Formula field
// plus Pretty/Equal/Symbols methods that know how to reach into it.
type annotatedBase struct {
	NameValue string
	Role      Role
	Ann       *Annotations
	Meta      Meta
}

func (a *annotatedBase) Name() string                    { return a.NameValue }
func (a *annotatedBase) RoleValue() Role                  { return a.Role }
func (a *annotatedBase) AnnotationsValue() *Annotations   { return a.Ann }
func (a *annotatedBase) MetaMap() Meta                    { return a.Meta }

func (a *annotatedBase) prettyHeader(sb *strings.Builder, keyword string) {
	sb.WriteString(keyword)
	sb.WriteByte('(')
	sb.WriteString(a.NameValue)
	sb.WriteString(", ")
	a.Role.Pretty(sb)
	sb.WriteString(", ")
}

func (a *annotatedBase) prettyFooter(sb *strings.Builder) {
	if a.Ann != nil {
		a.Ann.Pretty(sb)
	}

	sb.WriteString(").")
}

func (a *annotatedBase) baseEqual(o *annotatedBase) bool {
	return a.NameValue == o.NameValue && a.Role.Equal(o.Role) && a.Ann.Equal(o.Ann)
}

func newBase(name string, role Role) annotatedBase {
	return annotatedBase{NameValue: name, Role: role, Meta: Meta{}}
}

// SetAnnotations attaches the optional trailing (source, info) annotations
// parsed after a formula body. Called by the parser once it knows whether a
// trailing comma introduced annotations; nil clears them.
func (a *annotatedBase) SetAnnotations(ann *Annotations) {
	a.Ann = ann
}

// SetOrigin records the one-based position of the leading keyword token
// into Meta, per this module's origin-fidelity convention.
func (a *annotatedBase) SetOrigin(pos source.Position) {
	a.Meta[Origin] = pos
}

// Problem is the top-level parse result: an ordered sequence of includes, an
// ordered sequence of annotated formulas, and the comments attached to each
// named formula.
type Problem struct {
	Includes        []Include
	Formulas        []AnnotatedFormula
	FormulaComments map[string][]Comment
}

// Pretty renders the whole problem, includes first, each on its own line,
// preceded by any leading comments and followed by each formula in order.
func (p *Problem) Pretty(sb *strings.Builder) {
	for _, inc := range p.Includes {
		for _, c := range inc.LeadingComments {
			prettyComment(sb, c)
			sb.WriteByte('\n')
		}

		inc.Pretty(sb)
		sb.WriteByte('\n')
	}

	for _, f := range p.Formulas {
		for _, c := range p.FormulaComments[f.Name()] {
			prettyComment(sb, c)
			sb.WriteByte('\n')
		}

		f.Pretty(sb)
		sb.WriteByte('\n')
	}
}

func prettyComment(sb *strings.Builder, c Comment) {
	switch c.Format {
	case CommentLine:
		sb.WriteByte('%')

		switch c.Kind {
		case CommentDefined:
			sb.WriteByte('$')
		case CommentSystem:
			sb.WriteString("$$")
		}

		sb.WriteString(c.Text)
	case CommentBlock:
		sb.WriteString("/*")

		switch c.Kind {
		case CommentDefined:
			sb.WriteByte('$')
		case CommentSystem:
			sb.WriteString("$$")
		}

		sb.WriteString(c.Text)
		sb.WriteString("*/")
	}
}

// Symbols unions the symbol sets of every formula in the problem.
func (p *Problem) Symbols() SymbolSet {
	all := NewSymbolSet()

	for _, f := range p.Formulas {
		all.Union(f.Symbols())
	}

	return all
}

// Equal performs structural comparison of two problems, ignoring Meta on
// every formula and LeadingComments on every include (matching the
// AnnotatedFormula/Include equality contracts above), but comparing
// FormulaComments and formula/include order exactly.
func (p *Problem) Equal(o *Problem) bool {
	if len(p.Includes) != len(o.Includes) || len(p.Formulas) != len(o.Formulas) {
		return false
	}

	for i := range p.Includes {
		if !p.Includes[i].Equal(o.Includes[i]) {
			return false
		}
	}

	for i := range p.Formulas {
		if !p.Formulas[i].Equal(o.Formulas[i]) {
			return false
		}
	}

	if len(p.FormulaComments) != len(o.FormulaComments) {
		return false
	}

	for name, cs := range p.FormulaComments {
		ocs, ok := o.FormulaComments[name]
		if !ok || len(cs) != len(ocs) {
			return false
		}

		for i := range cs {
			if !cs[i].Equal(ocs[i]) {
				return false
			}
		}
	}

	return true
}
