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

func TestParseAnnotatedFOFScenario(t *testing.T) {
	af, err := ParseAnnotatedFOF([]byte("fof(f, axiom, (p(X) & q))."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if af.Name() != "f" || af.RoleValue().Name != "axiom" {
		t.Fatalf("got name=%q role=%q", af.Name(), af.RoleValue().Name)
	}

	bin, ok := af.Formula.(ast.FOFBinaryFormula)
	if !ok {
		t.Fatalf("expected FOFBinaryFormula, got %T", af.Formula)
	}

	if bin.Op != ast.FOFAnd {
		t.Errorf("expected AND, got %v", bin.Op)
	}

	lhs, ok := bin.Lhs.(ast.FOFAtomicFormula)
	if !ok || lhs.Atom.Functor != "p" {
		t.Errorf("expected p(X) on the left, got %#v", bin.Lhs)
	}

	rhs, ok := bin.Rhs.(ast.FOFAtomicFormula)
	if !ok || rhs.Atom.Functor != "q" {
		t.Errorf("expected q on the right, got %#v", bin.Rhs)
	}
}

func TestFOFRoundTrip(t *testing.T) {
	inputs := []string{
		"fof(f, axiom, (p(X) & q)).",
		"fof(g, conjecture, ![X]: ?[Y]: (p(X) | ~q(Y))).",
		"fof(h, axiom, f(a) = g(b, c)).",
		"fof(i, axiom, a != b).",
	}

	for _, input := range inputs {
		af, err := ParseAnnotatedFOF([]byte(input))
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", input, err)
		}

		var sb strings.Builder
		af.Pretty(&sb)

		af2, err := ParseAnnotatedFOF([]byte(sb.String()))
		if err != nil {
			t.Fatalf("input %q: re-parsing %q failed: %v", input, sb.String(), err)
		}

		if !af.Equal(af2) {
			t.Errorf("input %q: round trip produced a different AST: %q", input, sb.String())
		}
	}
}

func TestFOFDeterminism(t *testing.T) {
	input := []byte("fof(f, axiom, ![X]: (p(X) => q(X))).")

	af1, err := ParseAnnotatedFOF(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	af2, err := ParseAnnotatedFOF(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !af1.Equal(af2) {
		t.Errorf("two parses of identical input produced different ASTs")
	}
}

func TestFOFOrAssociativity(t *testing.T) {
	af, err := ParseAnnotatedFOF([]byte("fof(f, axiom, (a | b | c))."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	top, ok := af.Formula.(ast.FOFBinaryFormula)
	if !ok || top.Op != ast.FOFOr {
		t.Fatalf("expected top-level OR, got %#v", af.Formula)
	}

	if _, ok := top.Lhs.(ast.FOFAtomicFormula); !ok {
		t.Errorf("expected a | (b | c): left operand should be atomic 'a', got %#v", top.Lhs)
	}

	nested, ok := top.Rhs.(ast.FOFBinaryFormula)
	if !ok || nested.Op != ast.FOFOr {
		t.Fatalf("expected a | (b | c): right operand should itself be an OR, got %#v", top.Rhs)
	}
}

func TestFOFSymbols(t *testing.T) {
	af, err := ParseAnnotatedFOF([]byte("fof(f, axiom, ![X]: (p(X, f(a)) & q))."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	syms := af.Symbols()

	for _, want := range []string{"p", "f", "a", "q"} {
		if _, ok := syms[want]; !ok {
			t.Errorf("expected symbol %q in %v", want, syms)
		}
	}

	if _, ok := syms["X"]; ok {
		t.Errorf("variable X must not appear in Symbols(), got %v", syms)
	}
}
