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

func TestParseAnnotatedTFFTypingScenario(t *testing.T) {
	af, err := ParseAnnotatedTFF([]byte("tff(t, type, king_of_france : human)."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ts, ok := af.Statement.(ast.TFFTypingStatement)
	if !ok {
		t.Fatalf("expected TFFTypingStatement, got %T", af.Statement)
	}

	if ts.Typing.Atom != "king_of_france" {
		t.Errorf("expected atom king_of_france, got %q", ts.Typing.Atom)
	}

	if ts.Typing.Type.Kind != ast.TFFTypeAtomic || ts.Typing.Type.Functor != "human" {
		t.Errorf("expected atomic type human, got %#v", ts.Typing.Type)
	}
}

func TestTFFRoundTrip(t *testing.T) {
	inputs := []string{
		"tff(t, type, king_of_france : human).",
		"tff(f, axiom, ![X:human]: (loves(X) => happy(X))).",
		"tff(m, type, f : (a * b) > c).",
		"tff(n, axiom, [.] (p)).",
	}

	for _, input := range inputs {
		af, err := ParseAnnotatedTFF([]byte(input))
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", input, err)
		}

		var sb strings.Builder
		af.Pretty(&sb)

		af2, err := ParseAnnotatedTFF([]byte(sb.String()))
		if err != nil {
			t.Fatalf("input %q: re-parsing %q failed: %v", input, sb.String(), err)
		}

		if !af.Equal(af2) {
			t.Errorf("input %q: round trip produced a different AST: %q", input, sb.String())
		}
	}
}

func TestTFFMappingTypeRightAssociativity(t *testing.T) {
	af, err := ParseAnnotatedTFF([]byte("tff(t, type, f : a > b > c)."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ts := af.Statement.(ast.TFFTypingStatement)
	top := ts.Typing.Type

	if top.Kind != ast.TFFTypeMapping || len(top.Domain) != 1 || top.Domain[0].Functor != "a" {
		t.Fatalf("expected a > (b > c): top-level domain should be [a], got %#v", top)
	}

	if top.Result == nil || top.Result.Kind != ast.TFFTypeMapping {
		t.Fatalf("expected a > (b > c): result should itself be a mapping, got %#v", top.Result)
	}

	if top.Result.Domain[0].Functor != "b" || top.Result.Result.Functor != "c" {
		t.Errorf("expected b > c nested inside, got %#v", top.Result)
	}
}

func TestTFFProductDomainMappingType(t *testing.T) {
	af, err := ParseAnnotatedTFF([]byte("tff(t, type, f : (a * b) > c)."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ts := af.Statement.(ast.TFFTypingStatement)
	top := ts.Typing.Type

	if top.Kind != ast.TFFTypeMapping {
		t.Fatalf("expected a mapping type, got %#v", top)
	}

	if len(top.Domain) != 2 || top.Domain[0].Functor != "a" || top.Domain[1].Functor != "b" {
		t.Fatalf("expected argument product [a, b], got %#v", top.Domain)
	}

	if top.Result == nil || top.Result.Functor != "c" {
		t.Errorf("expected result c, got %#v", top.Result)
	}
}

// TestTFFNonclassicalShortFormRoundTrips covers worked scenario 6 (§8.6):
// the unary short form takes a single bare unit formula, no "@", and
// round-trips through Pretty() in its original bracket syntax.
func TestTFFNonclassicalShortFormRoundTrips(t *testing.T) {
	af, err := ParseAnnotatedTFF([]byte("tff(a, axiom, [.] (p))."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ls, ok := af.Statement.(ast.TFFLogicalStatement)
	if !ok {
		t.Fatalf("expected TFFLogicalStatement, got %T", af.Statement)
	}

	nc, ok := ls.Formula.(ast.TFFNonclassical)
	if !ok {
		t.Fatalf("expected TFFNonclassical, got %T", ls.Formula)
	}

	if nc.Short != ast.NonclassicalBox {
		t.Errorf("expected NonclassicalBox, got %v", nc.Short)
	}

	if len(nc.Args) != 1 {
		t.Fatalf("expected a single argument, got %#v", nc.Args)
	}

	var sb strings.Builder
	af.Pretty(&sb)

	if !strings.Contains(sb.String(), "[.] (p)") {
		t.Errorf("expected Pretty() to keep the unindexed short form [.] (p), got %q", sb.String())
	}
}

// TestTFFNonclassicalIndexedShortFormLosesShortForm exercises the other half
// of the rule: an *indexed* short form ("[#idx]") has no long-form
// equivalent short syntax to round-trip through, so Pretty always re-emits
// it in long form ("{$box(#idx)}"), per SPEC_FULL.md §4.2.6/§4.3.
func TestTFFNonclassicalIndexedShortFormLosesShortForm(t *testing.T) {
	af, err := ParseAnnotatedTFF([]byte("tff(a, axiom, [#1] (p))."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ls, ok := af.Statement.(ast.TFFLogicalStatement)
	if !ok {
		t.Fatalf("expected TFFLogicalStatement, got %T", af.Statement)
	}

	nc, ok := ls.Formula.(ast.TFFNonclassical)
	if !ok {
		t.Fatalf("expected TFFNonclassical, got %T", ls.Formula)
	}

	if nc.Index == nil || *nc.Index != 1 {
		t.Fatalf("expected index 1, got %#v", nc.Index)
	}

	var sb strings.Builder
	af.Pretty(&sb)

	if !strings.Contains(sb.String(), "{$box(#1)} @ p") {
		t.Errorf("expected Pretty() to re-emit an indexed short form in long form, got %q", sb.String())
	}
}
