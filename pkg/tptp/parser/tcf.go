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

// ParseAnnotatedTCF parses a single "tcf(name, role, statement [, ...])."
// entry.
func ParseAnnotatedTCF(input []byte) (*ast.TCFAnnotated, *source.SyntaxError) {
	p := New(input)

	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	if tok.Kind != lex.LOWERWORD || tok.Text != "tcf" {
		return nil, p.errorf(tok.Pos, "expected 'tcf', found %q", tok.Text)
	}

	af, err := p.parseAnnotated("tcf")
	if err != nil {
		return nil, err
	}

	return af.(*ast.TCFAnnotated), nil
}

// ParseTCF parses a bare TCF statement.
func ParseTCF(input []byte) (ast.TCFStatement, *source.SyntaxError) {
	p := New(input)
	return p.parseTCFStatement()
}

func (p *Parser) parseTCFAnnotatedBody(name string, role ast.Role) (annotatedSetter, *source.SyntaxError) {
	s, err := p.parseTCFStatement()
	if err != nil {
		return nil, err
	}

	return ast.NewTCFAnnotated(name, role, s), nil
}

// parseTCFStatement dispatches between a typed variable-quantified clause,
// a top-level typing declaration reusing TFF's typing grammar, and a bare
// CNF clause.
func (p *Parser) parseTCFStatement() (ast.TCFStatement, *source.SyntaxError) {
	if p.is(0, lex.BANG) {
		p.next()

		if _, err := p.expect(lex.LBRACKET, "'['"); err != nil {
			return nil, err
		}

		vars, err := p.parseTypedVariableList()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(lex.RBRACKET, "']'"); err != nil {
			return nil, err
		}

		if _, err := p.expect(lex.COLON, "':'"); err != nil {
			return nil, err
		}

		clause, err := p.parseCNFClause()
		if err != nil {
			return nil, err
		}

		return ast.TCFClauseStatement{Vars: vars, Clause: clause}, nil
	}

	depth := 0
	for p.is(depth, lex.LPAREN) {
		depth++
	}

	if (p.is(depth, lex.LOWERWORD) || p.is(depth, lex.SINGLEQUOTED)) && p.is(depth+1, lex.COLON) {
		for i := 0; i < depth; i++ {
			p.next()
		}

		typing, err := p.parseTFFTyping()
		if err != nil {
			return nil, err
		}

		for i := 0; i < depth; i++ {
			if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
				return nil, err
			}
		}

		return ast.TCFTypingStatement{Typing: typing}, nil
	}

	clause, err := p.parseCNFClause()
	if err != nil {
		return nil, err
	}

	return ast.TCFClauseStatement{Clause: clause}, nil
}
