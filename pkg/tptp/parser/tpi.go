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
	"github.com/tptp-lang/tptp/pkg/tptp/ast"
	"github.com/tptp-lang/tptp/pkg/tptp/lex"
	"github.com/tptp-lang/tptp/pkg/tptp/source"
)

// ParseAnnotatedTPI parses a single "tpi(name, role, formula [, ...])."
// entry. TPI's formula grammar is syntactically FOF.
func ParseAnnotatedTPI(input []byte) (*ast.TPIAnnotated, *source.SyntaxError) {
	p := New(input)

	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	if tok.Kind != lex.LOWERWORD || tok.Text != "tpi" {
		return nil, p.errorf(tok.Pos, "expected 'tpi', found %q", tok.Text)
	}

	af, err := p.parseAnnotated("tpi")
	if err != nil {
		return nil, err
	}

	return af.(*ast.TPIAnnotated), nil
}

// ParseTPI parses a bare TPI formula (syntactically FOF).
func ParseTPI(input []byte) (ast.FOFFormula, *source.SyntaxError) {
	p := New(input)
	return p.fofLogicFormula()
}

func (p *Parser) parseTPIAnnotatedBody(name string, role ast.Role) (annotatedSetter, *source.SyntaxError) {
	f, err := p.fofLogicFormula()
	if err != nil {
		return nil, err
	}

	return ast.NewTPIAnnotated(name, role, f), nil
}
