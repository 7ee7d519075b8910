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
	"github.com/tptp-lang/tptp/pkg/tptp/source"
)

func TestParseProblemCommentAttachment(t *testing.T) {
	problem, err := ParseProblem([]byte("/* hi */\nfof(x, axiom, p).\nfof(y, axiom, q)."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	comments, ok := problem.FormulaComments["x"]
	if !ok || len(comments) != 1 {
		t.Fatalf("expected exactly one leading comment on x, got %v", problem.FormulaComments)
	}

	if comments[0].Format != ast.CommentBlock || comments[0].Kind != ast.CommentNormal || comments[0].Text != " hi " {
		t.Errorf("unexpected comment: %#v", comments[0])
	}

	if _, ok := problem.FormulaComments["y"]; ok {
		t.Errorf("y should have no attached comments, got %v", problem.FormulaComments["y"])
	}
}

func TestParseProblemOriginFidelity(t *testing.T) {
	problem, err := ParseProblem([]byte("fof(x, axiom, p).\n\nfof(y, axiom, q)."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x := problem.Formulas[0]

	pos, ok := x.MetaMap()[ast.Origin].(source.Position)
	if !ok {
		t.Fatalf("expected meta[origin] to be a source.Position, got %#v", x.MetaMap()[ast.Origin])
	}

	if pos.Line != 1 || pos.Column != 1 {
		t.Errorf("expected x's origin at 1:1, got %v", pos)
	}

	y := problem.Formulas[1]

	pos, ok = y.MetaMap()[ast.Origin].(source.Position)
	if !ok {
		t.Fatalf("expected meta[origin] to be a source.Position, got %#v", y.MetaMap()[ast.Origin])
	}

	if pos.Line != 3 || pos.Column != 1 {
		t.Errorf("expected y's origin at 3:1, got %v", pos)
	}
}

func TestParseProblemIncludes(t *testing.T) {
	problem, err := ParseProblem([]byte("include('axioms.ax').\ninclude('extra.ax', [foo, bar]).\nfof(x, axiom, p)."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(problem.Includes) != 2 {
		t.Fatalf("expected 2 includes, got %d", len(problem.Includes))
	}

	if problem.Includes[0].Filename != "'axioms.ax'" || problem.Includes[0].Selector != nil {
		t.Errorf("unexpected first include: %#v", problem.Includes[0])
	}

	if len(problem.Includes[1].Selector) != 2 || problem.Includes[1].Selector[0] != "foo" {
		t.Errorf("unexpected second include selector: %#v", problem.Includes[1].Selector)
	}
}

func TestParseProblemRoundTrip(t *testing.T) {
	input := "% leading\nfof(x, axiom, p(a)).\n\ncnf(c, axiom, q(a) | ~r(b)).\n"

	problem, err := ParseProblem([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sb strings.Builder
	problem.Pretty(&sb)

	problem2, err := ParseProblem([]byte(sb.String()))
	if err != nil {
		t.Fatalf("re-parsing %q failed: %v", sb.String(), err)
	}

	if !problem.Equal(problem2) {
		t.Errorf("round trip produced a different AST: %q", sb.String())
	}
}

func TestParseProblemDeterminism(t *testing.T) {
	input := []byte("fof(x, axiom, p(a) & q(b)).\ncnf(c, axiom, p(a) | ~q(b)).")

	p1, err := ParseProblem(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p2, err := ParseProblem(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !p1.Equal(p2) {
		t.Errorf("two parses of identical input produced different ASTs")
	}
}

func TestParseProblemEmptyInputIsError(t *testing.T) {
	if _, err := ParseProblem([]byte("")); err == nil {
		t.Fatalf("expected an error for empty input")
	} else if !err.Pos.IsEmpty() {
		t.Errorf("expected the empty-input sentinel position, got %v", err.Pos)
	}
}

func TestParseAnnotatedDispatchesOnKeyword(t *testing.T) {
	cases := map[string]string{
		"thf": "thf(a, axiom, $true).",
		"tff": "tff(a, axiom, p).",
		"fof": "fof(a, axiom, p).",
		"tcf": "tcf(a, axiom, p).",
		"cnf": "cnf(a, axiom, p).",
		"tpi": "tpi(a, axiom, p).",
	}

	for kw, src := range cases {
		af, err := ParseAnnotated([]byte(src))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", kw, err)
		}

		if af.Name() != "a" {
			t.Errorf("%s: expected name %q, got %q", kw, "a", af.Name())
		}
	}
}

func TestParseAnnotatedRejectsUnknownKeyword(t *testing.T) {
	if _, err := ParseAnnotated([]byte("bogus(a, axiom, p).")); err == nil {
		t.Fatalf("expected an error for an unrecognized dialect keyword")
	}
}
