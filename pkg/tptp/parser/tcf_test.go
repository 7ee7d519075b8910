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

func TestParseAnnotatedTCFQuantifiedClause(t *testing.T) {
	af, err := ParseAnnotatedTCF([]byte("tcf(c, axiom, ! [X:human]: (loves(X) | ~happy(X)))."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cs, ok := af.Statement.(ast.TCFClauseStatement)
	if !ok {
		t.Fatalf("expected TCFClauseStatement, got %T", af.Statement)
	}

	if len(cs.Vars) != 1 || cs.Vars[0].Name != "X" {
		t.Fatalf("expected one typed variable X, got %#v", cs.Vars)
	}

	if len(cs.Clause.Literals) != 2 {
		t.Fatalf("expected 2 literals, got %d", len(cs.Clause.Literals))
	}
}

func TestParseAnnotatedTCFTyping(t *testing.T) {
	af, err := ParseAnnotatedTCF([]byte("tcf(t, type, human : $tType)."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ts, ok := af.Statement.(ast.TCFTypingStatement)
	if !ok {
		t.Fatalf("expected TCFTypingStatement, got %T", af.Statement)
	}

	if ts.Typing.Atom != "human" {
		t.Errorf("expected atom human, got %q", ts.Typing.Atom)
	}
}

func TestTCFRoundTrip(t *testing.T) {
	inputs := []string{
		"tcf(c, axiom, ! [X:human]: (loves(X) | ~happy(X))).",
		"tcf(t, type, human : $tType).",
		"tcf(bare, axiom, p(a) | q(b)).",
	}

	for _, input := range inputs {
		af, err := ParseAnnotatedTCF([]byte(input))
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", input, err)
		}

		var sb strings.Builder
		af.Pretty(&sb)

		af2, err := ParseAnnotatedTCF([]byte(sb.String()))
		if err != nil {
			t.Fatalf("input %q: re-parsing %q failed: %v", input, sb.String(), err)
		}

		if !af.Equal(af2) {
			t.Errorf("input %q: round trip produced a different AST: %q", input, sb.String())
		}
	}
}
