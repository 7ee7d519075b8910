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

// parseGeneralTerm parses "general_data (: general_data)* (: general_list)?
// | general_list".
func (p *Parser) parseGeneralTerm() (ast.GeneralTerm, *source.SyntaxError) {
	if p.is(0, lex.LBRACKET) {
		list, err := p.parseGeneralList()
		if err != nil {
			return ast.GeneralTerm{}, err
		}

		return ast.GeneralTerm{List: &list}, nil
	}

	var items []ast.GeneralData

	for {
		item, err := p.parseGeneralData()
		if err != nil {
			return ast.GeneralTerm{}, err
		}

		items = append(items, item)

		if !p.is(0, lex.COLON) {
			break
		}

		// A trailing ": [...]" ends the colon chain in a list rather than
		// another general_data.
		if p.is(1, lex.LBRACKET) {
			p.next()

			list, err := p.parseGeneralList()
			if err != nil {
				return ast.GeneralTerm{}, err
			}

			return ast.GeneralTerm{Items: items, List: &list}, nil
		}

		p.next()
	}

	return ast.GeneralTerm{Items: items}, nil
}

func (p *Parser) parseGeneralList() (ast.GeneralList, *source.SyntaxError) {
	if _, err := p.expect(lex.LBRACKET, "'['"); err != nil {
		return ast.GeneralList{}, err
	}

	items := []ast.GeneralTerm{}

	if !p.is(0, lex.RBRACKET) {
		for {
			g, err := p.parseGeneralTerm()
			if err != nil {
				return ast.GeneralList{}, err
			}

			items = append(items, g)

			if p.is(0, lex.COMMA) {
				p.next()
				continue
			}

			break
		}
	}

	if _, err := p.expect(lex.RBRACKET, "']'"); err != nil {
		return ast.GeneralList{}, err
	}

	return ast.GeneralList{Items: items}, nil
}

var formulaDataDialects = map[string]bool{
	"$thf": true, "$tff": true, "$fof": true, "$cnf": true, "$fot": true,
}

func (p *Parser) parseGeneralData() (ast.GeneralData, *source.SyntaxError) {
	tok, err := p.peek(0)
	if err != nil {
		return ast.GeneralData{}, err
	}

	switch tok.Kind {
	case lex.UPPERWORD:
		p.next()
		return ast.GeneralData{Kind: ast.GeneralVariable, Functor: tok.Text}, nil
	case lex.INT, lex.RATIONAL, lex.REAL:
		n, err := p.parseNumber()
		if err != nil {
			return ast.GeneralData{}, err
		}

		return ast.GeneralData{Kind: ast.GeneralNumber, Number: &n}, nil
	case lex.DOUBLEQUOTED:
		p.next()
		return ast.GeneralData{Kind: ast.GeneralDistinctObject, Functor: tok.Text}, nil
	case lex.DOLLARWORD:
		if formulaDataDialects[tok.Text] && p.is(1, lex.LPAREN) {
			return p.parseGeneralFormulaData()
		}

		return p.parseGeneralFunction()
	case lex.LOWERWORD, lex.SINGLEQUOTED:
		return p.parseGeneralFunction()
	default:
		return ast.GeneralData{}, p.errorf(tok.Pos, "expected a general term, found %q", tok.Text)
	}
}

func (p *Parser) parseGeneralFunction() (ast.GeneralData, *source.SyntaxError) {
	tok, err := p.next()
	if err != nil {
		return ast.GeneralData{}, err
	}

	functor := tok.Text
	if tok.Kind == lex.SINGLEQUOTED {
		functor = ast.CanonicalFunctor(tok.Text)
	}

	g := ast.GeneralData{Kind: ast.GeneralFunction, Functor: functor}

	if p.is(0, lex.LPAREN) {
		p.next()

		args := []ast.GeneralTerm{}

		for {
			a, err := p.parseGeneralTerm()
			if err != nil {
				return ast.GeneralData{}, err
			}

			args = append(args, a)

			if p.is(0, lex.COMMA) {
				p.next()
				continue
			}

			break
		}

		if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
			return ast.GeneralData{}, err
		}

		g.Args = args
	}

	return g, nil
}

// parseGeneralFormulaData parses "$thf(...)"-shaped embedded formula data,
// retaining the parenthesized body as opaque raw text rather than
// recursively parsing it.
func (p *Parser) parseGeneralFormulaData() (ast.GeneralData, *source.SyntaxError) {
	dialect, _ := p.next()

	if _, err := p.expect(lex.LPAREN, "'('"); err != nil {
		return ast.GeneralData{}, err
	}

	depth := 1

	var body []byte

	for depth > 0 {
		tok, err := p.next()
		if err != nil {
			return ast.GeneralData{}, err
		}

		if tok.Kind == lex.EOF {
			return ast.GeneralData{}, p.errorf(tok.Pos, "unclosed %s(...)", dialect.Text)
		}

		switch tok.Kind {
		case lex.LPAREN:
			depth++
		case lex.RPAREN:
			depth--

			if depth == 0 {
				continue
			}
		}

		if len(body) > 0 {
			body = append(body, ' ')
		}

		body = append(body, tok.Text...)
	}

	return ast.GeneralData{Kind: ast.GeneralFormulaData, Dialect: dialect.Text, Body: string(body)}, nil
}
