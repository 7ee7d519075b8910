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

package parser

import (
	"strings"
	"testing"

	"github.com/tptp-lang/tptp/pkg/tptp/ast"
)

func TestParseAnnotatedTHFQuantifiedScenario(t *testing.T) {
	af, err := ParseAnnotatedTHF([]byte("thf(e, axiom, ![X:$i]: (p @ X))."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ls, ok := af.Statement.(ast.THFLogicalStatement)
	if !ok {
		t.Fatalf("expected THFLogicalStatement, got %T", af.Statement)
	}

	q, ok := ls.Formula.(ast.THFQuantifiedFormula)
	if !ok {
		t.Fatalf("expected THFQuantifiedFormula, got %T", ls.Formula)
	}

	if q.Quantifier != "!" || len(q.Vars) != 1 || q.Vars[0].Name != "X" {
		t.Fatalf("expected ![X:$i], got %#v", q)
	}

	if q.Vars[0].Type == nil || q.Vars[0].Type.Functor != "$i" {
		t.Errorf("expected X's type to be $i, got %#v", q.Vars[0].Type)
	}

	bin, ok := q.Body.(ast.THFBinaryFormula)
	if !ok || bin.Op != "@" {
		t.Fatalf("expected body p @ X, got %#v", q.Body)
	}

	fn, ok := bin.Lhs.(ast.THFAtom)
	if !ok || fn.Functor != "p" {
		t.Errorf("expected left operand p, got %#v", bin.Lhs)
	}
}

func TestTHFRoundTrip(t *testing.T) {
	inputs := []string{
		"thf(e, axiom, ![X:$i]: (p @ X)).",
		"thf(a, axiom, (a @ b @ c)).",
		"thf(o, axiom, (p | q | r)).",
		"thf(m, type, f : $i > $i > $o).",
	}

	for _, input := range inputs {
		af, err := ParseAnnotatedTHF([]byte(input))
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", input, err)
		}

		var sb strings.Builder
		af.Pretty(&sb)

		af2, err := ParseAnnotatedTHF([]byte(sb.String()))
		if err != nil {
			t.Fatalf("input %q: re-parsing %q failed: %v", input, sb.String(), err)
		}

		if !af.Equal(af2) {
			t.Errorf("input %q: round trip produced a different AST: %q", input, sb.String())
		}
	}
}

func TestTHFApplicationLeftAssociativity(t *testing.T) {
	af, err := ParseAnnotatedTHF([]byte("thf(a, axiom, (a @ b @ c))."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ls := af.Statement.(ast.THFLogicalStatement)

	top, ok := ls.Formula.(ast.THFBinaryFormula)
	if !ok || top.Op != "@" {
		t.Fatalf("expected top-level @, got %#v", ls.Formula)
	}

	nested, ok := top.Lhs.(ast.THFBinaryFormula)
	if !ok || nested.Op != "@" {
		t.Fatalf("expected (a @ b) @ c: left operand should itself be @, got %#v", top.Lhs)
	}

	if v, ok := nested.Lhs.(ast.THFAtom); !ok || v.Functor != "a" {
		t.Errorf("expected innermost left operand a, got %#v", nested.Lhs)
	}

	if v, ok := top.Rhs.(ast.THFAtom); !ok || v.Functor != "c" {
		t.Errorf("expected outermost right operand c, got %#v", top.Rhs)
	}
}

// TestTHFApplicationAndEqualityRequireParens documents that combining two
// different operator kinds without parentheses is rejected: "@" binds a
// quantified formula's body to only its next unit, so continuing straight
// into "=" without wrapping the application in parens leaves the "="
// unconsumed and the annotated formula's closing "." unreachable.
func TestTHFApplicationAndEqualityRequireParens(t *testing.T) {
	if _, err := ParseAnnotatedTHF([]byte("thf(r, axiom, p @ X = b).")); err == nil {
		t.Fatalf("expected a syntax error: '@' and '=' cannot combine without parens")
	}

	if _, err := ParseAnnotatedTHF([]byte("thf(r, axiom, (p @ X) = b).")); err != nil {
		t.Fatalf("unexpected error once parenthesized: %v", err)
	}
}

// TestTHFEqualityRejectsQuantifiedOperand covers scenario 7 (§8.7): a
// quantifier expression is not a <thf_unitary_term> and so cannot sit on
// either side of "=" even when parenthesized, unlike an application chain.
func TestTHFEqualityRejectsQuantifiedOperand(t *testing.T) {
	if _, err := ParseAnnotatedTHF([]byte("thf(r, axiom, (![X]: p) = b).")); err == nil {
		t.Fatalf("expected a syntax error: a quantified formula is not a <thf_unitary_term>")
	} else if !strings.Contains(err.Error(), "thf_unitary_term") {
		t.Errorf("expected a <thf_unitary_term> error, got %q", err.Error())
	}

	if _, err := ParseAnnotatedTHF([]byte("thf(r, axiom, a = (![X]: p)).")); err == nil {
		t.Fatalf("expected a syntax error: a quantified formula is not a <thf_unitary_term> on the rhs either")
	}
}

// TestTHFNonclassicalShortFormRoundTrips covers worked scenario 6 (§8.6) on
// the THF side: the unary short form takes a single bare unit formula, no
// "@", and round-trips through Pretty() in its original bracket syntax.
func TestTHFNonclassicalShortFormRoundTrips(t *testing.T) {
	af, err := ParseAnnotatedTHF([]byte("thf(a, axiom, [.] (p))."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ls, ok := af.Statement.(ast.THFLogicalStatement)
	if !ok {
		t.Fatalf("expected THFLogicalStatement, got %T", af.Statement)
	}

	nc, ok := ls.Formula.(ast.THFNonclassical)
	if !ok {
		t.Fatalf("expected THFNonclassical, got %T", ls.Formula)
	}

	if nc.Short != ast.NonclassicalBox || len(nc.Args) != 1 {
		t.Fatalf("expected a single-argument NonclassicalBox, got %#v", nc)
	}

	var sb strings.Builder
	af.Pretty(&sb)

	if !strings.Contains(sb.String(), "[.] (p)") {
		t.Errorf("expected Pretty() to keep the unindexed short form [.] (p), got %q", sb.String())
	}
}

// TestTHFNonclassicalIndexedShortFormAccepted covers the spec's actual
// indexed short-form syntax ("[#idx]", distinct from the long form), which
// re-emits in long form on output since the short form has no indexed
// variant to round-trip through.
func TestTHFNonclassicalIndexedShortFormAccepted(t *testing.T) {
	af, err := ParseAnnotatedTHF([]byte("thf(a, axiom, <#2> (p))."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ls := af.Statement.(ast.THFLogicalStatement)

	nc, ok := ls.Formula.(ast.THFNonclassical)
	if !ok {
		t.Fatalf("expected THFNonclassical, got %T", ls.Formula)
	}

	if nc.Short != ast.NonclassicalDiamond || nc.Index == nil || *nc.Index != 2 {
		t.Fatalf("expected an indexed NonclassicalDiamond, got %#v", nc)
	}

	var sb strings.Builder
	af.Pretty(&sb)

	if !strings.Contains(sb.String(), "{$dia(#2)} @ p") {
		t.Errorf("expected Pretty() to re-emit the indexed short form in long form, got %q", sb.String())
	}
}
