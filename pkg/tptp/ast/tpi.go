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

// TPIAnnotated is a top-level "tpi(name, role, formula [, annotations])."
// entry. TPI's formula grammar is identical to FOF's, so it reuses the FOF
// term and formula families directly.
type TPIAnnotated struct {
	annotatedBase
	Formula FOFFormula
}

// NewTPIAnnotated constructs a TPIAnnotated with no annotations and no
// recorded origin; callers set those via SetAnnotations/SetOrigin.
func NewTPIAnnotated(name string, role Role, formula FOFFormula) *TPIAnnotated {
	return &TPIAnnotated{annotatedBase: newBase(name, role), Formula: formula}
}

// Pretty renders the full annotated formula.
func (a *TPIAnnotated) Pretty(sb *strings.Builder) {
	a.prettyHeader(sb, "tpi")
	a.Formula.Pretty(sb)
	a.prettyFooter(sb)
}

// Equal performs structural comparison, ignoring Meta.
func (a *TPIAnnotated) Equal(o AnnotatedFormula) bool {
	oa, ok := o.(*TPIAnnotated)
	return ok && a.baseEqual(&oa.annotatedBase) && a.Formula.fofFormulaEqual(oa.Formula)
}

// Symbols returns this formula's symbol set.
func (a *TPIAnnotated) Symbols() SymbolSet {
	s := NewSymbolSet()
	a.Formula.Symbols(s)

	return s
}
