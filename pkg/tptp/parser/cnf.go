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

// ParseAnnotatedCNF parses a single "cnf(name, role, clause [, ...])."
// entry.
func ParseAnnotatedCNF(input []byte) (*ast.CNFAnnotated, *source.SyntaxError) {
	p := New(input)

	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	if tok.Kind != lex.LOWERWORD || tok.Text != "cnf" {
		return nil, p.errorf(tok.Pos, "expected 'cnf', found %q", tok.Text)
	}

	af, err := p.parseAnnotated("cnf")
	if err != nil {
		return nil, err
	}

	return af.(*ast.CNFAnnotated), nil
}

// ParseCNF parses a bare CNF clause.
func ParseCNF(input []byte) (ast.CNFClause, *source.SyntaxError) {
	p := New(input)
	return p.parseCNFClause()
}

func (p *Parser) parseCNFAnnotatedBody(name string, role ast.Role) (annotatedSetter, *source.SyntaxError) {
	c, err := p.parseCNFClause()
	if err != nil {
		return nil, err
	}

	return ast.NewCNFAnnotated(name, role, c), nil
}

// parseCNFClause parses a non-empty disjunction of literals, optionally
// parenthesized. A lone literal need not be parenthesized.
func (p *Parser) parseCNFClause() (ast.CNFClause, *source.SyntaxError) {
	parenthesized := p.is(0, lex.LPAREN)
	if parenthesized {
		p.next()
	}

	var lits []ast.CNFLiteral

	for {
		lit, err := p.parseCNFLiteral()
		if err != nil {
			return ast.CNFClause{}, err
		}

		lits = append(lits, lit)

		if p.is(0, lex.PIPE) {
			p.next()
			continue
		}

		break
	}

	if parenthesized {
		if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
			return ast.CNFClause{}, err
		}
	}

	return ast.CNFClause{Literals: lits}, nil
}

func (p *Parser) parseCNFLiteral() (ast.CNFLiteral, *source.SyntaxError) {
	if p.is(0, lex.TILDE) {
		p.next()

		functor, args, err := p.parseFunctorApplication()
		if err != nil {
			return ast.CNFLiteral{}, err
		}

		return ast.CNFLiteral{Kind: ast.CNFNegative, Atom: ast.FOFAtomic{Functor: functor, Args: args}}, nil
	}

	tok, err := p.peek(0)
	if err != nil {
		return ast.CNFLiteral{}, err
	}

	switch tok.Kind {
	case lex.LOWERWORD, lex.SINGLEQUOTED, lex.DOLLARWORD, lex.DOLLARDOLLARWORD:
		functor, args, err := p.parseFunctorApplication()
		if err != nil {
			return ast.CNFLiteral{}, err
		}

		if p.is(0, lex.EQUALS) || p.is(0, lex.NEQ) {
			return p.cnfEqualityTail(ast.FOFFunctionTerm{Functor: functor, Args: args})
		}

		return ast.CNFLiteral{Kind: ast.CNFPositive, Atom: ast.FOFAtomic{Functor: functor, Args: args}}, nil
	default:
		term, err := p.parseFOFTerm()
		if err != nil {
			return ast.CNFLiteral{}, err
		}

		return p.cnfEqualityTail(term)
	}
}

func (p *Parser) cnfEqualityTail(lhs ast.FOFTerm) (ast.CNFLiteral, *source.SyntaxError) {
	tok, err := p.peek(0)
	if err != nil {
		return ast.CNFLiteral{}, err
	}

	negated := false

	switch tok.Kind {
	case lex.EQUALS:
		p.next()
	case lex.NEQ:
		p.next()

		negated = true
	default:
		return ast.CNFLiteral{}, p.errorf(tok.Pos, "expected '=' or '!=', found %q", tok.Text)
	}

	rhs, err := p.parseFOFTerm()
	if err != nil {
		return ast.CNFLiteral{}, err
	}

	return ast.CNFLiteral{Kind: ast.CNFEquality, Lhs: lhs, Rhs: rhs, Negated: negated}, nil
}
