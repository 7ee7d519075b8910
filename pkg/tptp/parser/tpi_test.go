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
)

func TestParseAnnotatedTPI(t *testing.T) {
	af, err := ParseAnnotatedTPI([]byte("tpi(f, axiom, p(a) & q(b))."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if af.Name() != "f" {
		t.Fatalf("expected name f, got %q", af.Name())
	}

	syms := af.Symbols()
	for _, want := range []string{"p", "a", "q", "b"} {
		if _, ok := syms[want]; !ok {
			t.Errorf("expected symbol %q in %v", want, syms)
		}
	}
}

func TestTPIRoundTrip(t *testing.T) {
	af, err := ParseAnnotatedTPI([]byte("tpi(f, axiom, ![X]: (p(X) => q(X)))."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sb strings.Builder
	af.Pretty(&sb)

	af2, err := ParseAnnotatedTPI([]byte(sb.String()))
	if err != nil {
		t.Fatalf("re-parsing %q failed: %v", sb.String(), err)
	}

	if !af.Equal(af2) {
		t.Errorf("round trip produced a different AST: %q", sb.String())
	}
}
