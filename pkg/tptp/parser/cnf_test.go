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

func TestParseAnnotatedCNFScenario(t *testing.T) {
	af, err := ParseAnnotatedCNF([]byte("cnf(c, axiom, p(X) | ~q(X,a) | r(f(b)) = s)."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lits := af.Clause.Literals
	if len(lits) != 3 {
		t.Fatalf("expected 3 literals, got %d: %#v", len(lits), lits)
	}

	if lits[0].Kind != ast.CNFPositive || lits[0].Atom.Functor != "p" {
		t.Errorf("literal 0: expected positive p(X), got %#v", lits[0])
	}

	if lits[1].Kind != ast.CNFNegative || lits[1].Atom.Functor != "q" {
		t.Errorf("literal 1: expected negative q(X,a), got %#v", lits[1])
	}

	if lits[2].Kind != ast.CNFEquality || lits[2].Negated {
		t.Errorf("literal 2: expected positive equality r(f(b)) = s, got %#v", lits[2])
	}
}

func TestCNFRoundTrip(t *testing.T) {
	inputs := []string{
		"cnf(c, axiom, p(X) | ~q(X,a) | r(f(b)) = s).",
		"cnf(unit, axiom, p(a)).",
		"cnf(neq, axiom, a != b | p).",
	}

	for _, input := range inputs {
		af, err := ParseAnnotatedCNF([]byte(input))
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", input, err)
		}

		var sb strings.Builder
		af.Pretty(&sb)

		af2, err := ParseAnnotatedCNF([]byte(sb.String()))
		if err != nil {
			t.Fatalf("input %q: re-parsing %q failed: %v", input, sb.String(), err)
		}

		if !af.Equal(af2) {
			t.Errorf("input %q: round trip produced a different AST: %q", input, sb.String())
		}
	}
}
