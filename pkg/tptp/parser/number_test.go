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

func numberTermOf(t *testing.T, atom string) ast.Number {
	t.Helper()

	af, err := ParseAnnotatedFOF([]byte("fof(f, axiom, p(" + atom + "))."))
	if err != nil {
		t.Fatalf("input %q: unexpected error: %v", atom, err)
	}

	af2 := af.Formula.(ast.FOFAtomicFormula)

	nt, ok := af2.Atom.Args[0].(ast.FOFNumberTerm)
	if !ok {
		t.Fatalf("input %q: expected a number term, got %T", atom, af2.Atom.Args[0])
	}

	return nt.Value
}

func TestNumberLiteralKinds(t *testing.T) {
	cases := []struct {
		text string
		kind ast.NumberKind
	}{
		{"42", ast.NumberInteger},
		{"-7", ast.NumberInteger},
		{"1/2", ast.NumberRational},
		{"3.14", ast.NumberReal},
		{"-1.0E10", ast.NumberReal},
	}

	for _, c := range cases {
		n := numberTermOf(t, c.text)
		if n.Kind != c.kind {
			t.Errorf("input %q: expected kind %v, got %v", c.text, c.kind, n.Kind)
		}
	}
}

func TestNumberRoundTrip(t *testing.T) {
	for _, text := range []string{"0", "42", "-7", "1/2", "3.14", "-1.0E10", "2.0E-3"} {
		n := numberTermOf(t, text)

		var sb strings.Builder
		n.Pretty(&sb)

		n2 := numberTermOf(t, sb.String())

		if !n.Equal(n2) {
			t.Errorf("input %q: rendered as %q, which reparses to a different value", text, sb.String())
		}
	}
}

func TestRationalZeroDenominatorIsSyntaxError(t *testing.T) {
	if _, err := ParseAnnotatedFOF([]byte("fof(f, axiom, p(1/0)).")); err == nil {
		t.Fatalf("expected a syntax error for a zero denominator")
	}
}
