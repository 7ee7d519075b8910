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
	"strconv"

	"github.com/tptp-lang/tptp/pkg/tptp/ast"
	"github.com/tptp-lang/tptp/pkg/tptp/lex"
	"github.com/tptp-lang/tptp/pkg/tptp/source"
)

// ParseAnnotatedTHF parses a single "thf(name, role, statement [, ...])."
// entry.
func ParseAnnotatedTHF(input []byte) (*ast.THFAnnotated, *source.SyntaxError) {
	p := New(input)

	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	if tok.Kind != lex.LOWERWORD || tok.Text != "thf" {
		return nil, p.errorf(tok.Pos, "expected 'thf', found %q", tok.Text)
	}

	af, err := p.parseAnnotated("thf")
	if err != nil {
		return nil, err
	}

	return af.(*ast.THFAnnotated), nil
}

// ParseTHF parses a bare THF statement.
func ParseTHF(input []byte) (ast.THFStatement, *source.SyntaxError) {
	p := New(input)
	return p.parseTHFStatement()
}

func (p *Parser) parseTHFAnnotatedBody(name string, role ast.Role) (annotatedSetter, *source.SyntaxError) {
	s, err := p.parseTHFStatement()
	if err != nil {
		return nil, err
	}

	return ast.NewTHFAnnotated(name, role, s), nil
}

// parseTHFStatement dispatches between a top-level typing declaration, a
// bracketed sequent or tuple, and an ordinary logic formula.
func (p *Parser) parseTHFStatement() (ast.THFStatement, *source.SyntaxError) {
	if (p.is(0, lex.LOWERWORD) || p.is(0, lex.SINGLEQUOTED)) && p.is(1, lex.COLON) {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}

		functor := tok.Text
		if tok.Kind == lex.SINGLEQUOTED {
			functor = ast.CanonicalFunctor(tok.Text)
		}

		if _, err := p.expect(lex.COLON, "':'"); err != nil {
			return nil, err
		}

		typ, err := p.thfLogicFormula()
		if err != nil {
			return nil, err
		}

		return ast.THFTypingStatement{Atom: functor, Type: typ}, nil
	}

	if p.is(0, lex.LBRACKET) && !p.is(1, lex.DOT) && !p.is(1, lex.HASH) {
		first, err := p.thfTuple()
		if err != nil {
			return nil, err
		}

		if p.is(0, lex.ARROW3) {
			p.next()

			second, err := p.thfTuple()
			if err != nil {
				return nil, err
			}

			return ast.THFSequentStatement{
				Lhs: first.(ast.THFTuple).Elems,
				Rhs: second.(ast.THFTuple).Elems,
			}, nil
		}

		formula, err := p.thfFormulaTail(first)
		if err != nil {
			return nil, err
		}

		return ast.THFLogicalStatement{Formula: formula}, nil
	}

	formula, err := p.thfLogicFormula()
	if err != nil {
		return nil, err
	}

	return ast.THFLogicalStatement{Formula: formula}, nil
}

// thfLogicFormula parses a unit formula optionally followed by one binary
// operator application. THF requires explicit parenthesization whenever
// operators of different kinds would otherwise mix, so — unlike a classic
// precedence table — only a chain of the SAME associative operator needs
// folding here; every other combination is already disambiguated by the
// grammar itself.
func (p *Parser) thfLogicFormula() (ast.THFFormula, *source.SyntaxError) {
	unit, err := p.thfUnitFormula()
	if err != nil {
		return nil, err
	}

	return p.thfFormulaTail(unit)
}

func (p *Parser) thfFormulaTail(unit ast.THFFormula) (ast.THFFormula, *source.SyntaxError) {
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lex.AT:
		units := []ast.THFFormula{unit}

		for p.is(0, lex.AT) {
			p.next()

			u, err := p.thfUnitFormula()
			if err != nil {
				return nil, err
			}

			units = append(units, u)
		}

		return foldTHFLeft("@", units), nil
	case lex.PIPE, lex.AMP:
		op := "|"
		if tok.Kind == lex.AMP {
			op = "&"
		}

		units := []ast.THFFormula{unit}

		for p.is(0, tok.Kind) {
			p.next()

			u, err := p.thfUnitFormula()
			if err != nil {
				return nil, err
			}

			units = append(units, u)
		}

		return foldTHFRight(op, units), nil
	case lex.STAR:
		units := []ast.THFFormula{unit}

		for p.is(0, lex.STAR) {
			p.next()

			u, err := p.thfUnitFormula()
			if err != nil {
				return nil, err
			}

			units = append(units, u)
		}

		return foldTHFLeft("*", units), nil
	case lex.PLUS:
		units := []ast.THFFormula{unit}

		for p.is(0, lex.PLUS) {
			p.next()

			u, err := p.thfUnitFormula()
			if err != nil {
				return nil, err
			}

			units = append(units, u)
		}

		return foldTHFLeft("+", units), nil
	case lex.RANGLE:
		p.next()

		rhs, err := p.thfLogicFormula() // right-assoc: rhs recurses through the same tail
		if err != nil {
			return nil, err
		}

		return ast.THFBinaryFormula{Op: ">", Lhs: unit, Rhs: rhs}, nil
	case lex.IFF, lex.IMPLIES, lex.IMPLIED_BY, lex.XOR, lex.NOR, lex.NAND:
		p.next()

		rhs, err := p.thfUnitFormula()
		if err != nil {
			return nil, err
		}

		return ast.THFBinaryFormula{Op: tok.Text, Lhs: unit, Rhs: rhs}, nil
	case lex.ASSIGN:
		p.next()

		rhs, err := p.thfUnitFormula()
		if err != nil {
			return nil, err
		}

		return ast.THFBinaryFormula{Op: ":=", Lhs: unit, Rhs: rhs}, nil
	case lex.EQUALS, lex.NEQ:
		negated := tok.Kind == lex.NEQ
		eqPos := tok.Pos
		p.next()

		if !isTHFUnitaryTerm(unit) {
			return nil, p.errorf(eqPos, "expected <thf_unitary_term>")
		}

		rhs, err := p.thfUnitFormula()
		if err != nil {
			return nil, err
		}

		if !isTHFUnitaryTerm(rhs) {
			return nil, p.errorf(eqPos, "expected <thf_unitary_term>")
		}

		return ast.THFEqualityFormula{Lhs: unit, Rhs: rhs, Negated: negated}, nil
	case lex.IDENTICAL:
		p.next()

		rhs, err := p.thfUnitFormula()
		if err != nil {
			return nil, err
		}

		return ast.THFMetaIdentity{Lhs: unit, Rhs: rhs}, nil
	default:
		return unit, nil
	}
}

// isTHFUnitaryTerm reports whether f is eligible to sit in an equality
// position. THF's <thf_unitary_term> production excludes quantified
// formulas and unary-connective chains ("~ ...", "![X]: ..."), per
// SPEC_FULL.md §4.2.4.
func isTHFUnitaryTerm(f ast.THFFormula) bool {
	switch f.(type) {
	case ast.THFQuantifiedFormula, ast.THFUnaryFormula:
		return false
	default:
		return true
	}
}

func foldTHFLeft(op string, units []ast.THFFormula) ast.THFFormula {
	result := units[0]

	for _, u := range units[1:] {
		result = ast.THFBinaryFormula{Op: op, Lhs: result, Rhs: u}
	}

	return result
}

func foldTHFRight(op string, units []ast.THFFormula) ast.THFFormula {
	result := units[len(units)-1]

	for i := len(units) - 2; i >= 0; i-- {
		result = ast.THFBinaryFormula{Op: op, Lhs: units[i], Rhs: result}
	}

	return result
}

func (p *Parser) thfUnitFormula() (ast.THFFormula, *source.SyntaxError) {
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lex.BANG, lex.QUESTION, lex.CARET, lex.PI_BINDER, lex.SIGMA_BINDER,
		lex.APP_PLUS, lex.APP_MINUS, lex.FORALL2, lex.EXISTS2:
		return p.thfQuantified()
	case lex.TILDE:
		p.next()

		body, err := p.thfUnitFormula()
		if err != nil {
			return nil, err
		}

		return ast.THFUnaryFormula{Body: body}, nil
	case lex.LPAREN:
		p.next()

		inner, err := p.thfLogicFormula()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
			return nil, err
		}

		return inner, nil
	case lex.LBRACE:
		return p.thfNonclassicalLongForm()
	case lex.LBRACKET:
		if p.is(1, lex.DOT) && p.is(2, lex.RBRACKET) {
			p.next()
			p.next()
			p.next()

			return p.thfNonclassicalShortForm(ast.NonclassicalBox, nil)
		}

		if p.is(1, lex.HASH) && p.is(2, lex.INT) && p.is(3, lex.RBRACKET) {
			index, err := p.nonclassicalShortFormIndex(lex.RBRACKET, "']'")
			if err != nil {
				return nil, err
			}

			return p.thfNonclassicalShortForm(ast.NonclassicalBox, index)
		}

		return p.thfTuple()
	case lex.LANGLE:
		if p.is(1, lex.DOT) && p.is(2, lex.RANGLE) {
			p.next()
			p.next()
			p.next()

			return p.thfNonclassicalShortForm(ast.NonclassicalDiamond, nil)
		}

		if p.is(1, lex.HASH) && p.is(2, lex.INT) && p.is(3, lex.RANGLE) {
			index, err := p.nonclassicalShortFormIndex(lex.RANGLE, "'>'")
			if err != nil {
				return nil, err
			}

			return p.thfNonclassicalShortForm(ast.NonclassicalDiamond, index)
		}

		return nil, p.errorf(tok.Pos, "unexpected %q", tok.Text)
	case lex.SLASH:
		if p.is(1, lex.DOT) && p.is(2, lex.BACKSLASH) {
			p.next()
			p.next()
			p.next()

			return p.thfNonclassicalShortForm(ast.NonclassicalSlash, nil)
		}

		if p.is(1, lex.HASH) && p.is(2, lex.INT) && p.is(3, lex.BACKSLASH) {
			index, err := p.nonclassicalShortFormIndex(lex.BACKSLASH, "'\\'")
			if err != nil {
				return nil, err
			}

			return p.thfNonclassicalShortForm(ast.NonclassicalSlash, index)
		}

		return nil, p.errorf(tok.Pos, "unexpected %q", tok.Text)
	default:
		return p.thfAtomOrTerm()
	}
}

func (p *Parser) thfQuantified() (ast.THFFormula, *source.SyntaxError) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

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

	body, err := p.thfUnitFormula()
	if err != nil {
		return nil, err
	}

	return ast.THFQuantifiedFormula{Quantifier: tok.Text, Vars: vars, Body: body}, nil
}

func (p *Parser) thfAtomOrTerm() (ast.THFFormula, *source.SyntaxError) {
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lex.UPPERWORD:
		p.next()
		return ast.THFVariable{Name: tok.Text}, nil
	case lex.INT, lex.RATIONAL, lex.REAL:
		n, err := p.parseNumber()
		if err != nil {
			return nil, err
		}

		return ast.THFNumber{Value: n}, nil
	case lex.DOUBLEQUOTED:
		p.next()
		return ast.THFDistinctObject{Text: tok.Text}, nil
	case lex.DOLLARWORD:
		switch tok.Text {
		case "$ite":
			return p.thfConditional()
		case "$let":
			return p.thfLet()
		default:
			return p.thfFunctorApplication()
		}
	case lex.LOWERWORD, lex.SINGLEQUOTED, lex.DOLLARDOLLARWORD:
		return p.thfFunctorApplication()
	case lex.IFF, lex.IMPLIES, lex.IMPLIED_BY, lex.XOR, lex.NOR, lex.NAND, lex.AMP, lex.PIPE, lex.TILDE:
		// A bare connective symbol occurring as a term value; only reachable
		// while already inside the parens the grammar requires around it.
		p.next()
		return ast.THFConnectiveTerm{Op: tok.Text}, nil
	default:
		return nil, p.errorf(tok.Pos, "expected a THF term or formula, found %q", tok.Text)
	}
}

func (p *Parser) thfFunctorApplication() (ast.THFFormula, *source.SyntaxError) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	functor := tok.Text
	if tok.Kind == lex.SINGLEQUOTED {
		functor = ast.CanonicalFunctor(tok.Text)
	}

	if !p.is(0, lex.LPAREN) {
		return ast.THFAtom{Functor: functor}, nil
	}

	p.next()

	args := []ast.THFFormula{}

	for {
		a, err := p.thfLogicFormula()
		if err != nil {
			return nil, err
		}

		args = append(args, a)

		if p.is(0, lex.COMMA) {
			p.next()
			continue
		}

		break
	}

	if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
		return nil, err
	}

	return ast.THFAtom{Functor: functor, Args: args}, nil
}

func (p *Parser) thfTuple() (ast.THFFormula, *source.SyntaxError) {
	p.next() // '['

	elems := []ast.THFFormula{}

	if !p.is(0, lex.RBRACKET) {
		for {
			e, err := p.thfLogicFormula()
			if err != nil {
				return nil, err
			}

			elems = append(elems, e)

			if p.is(0, lex.COMMA) {
				p.next()
				continue
			}

			break
		}
	}

	if _, err := p.expect(lex.RBRACKET, "']'"); err != nil {
		return nil, err
	}

	return ast.THFTuple{Elems: elems}, nil
}

func (p *Parser) thfConditional() (ast.THFFormula, *source.SyntaxError) {
	p.next() // '$ite'

	if _, err := p.expect(lex.LPAREN, "'('"); err != nil {
		return nil, err
	}

	cond, err := p.thfLogicFormula()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.COMMA, "','"); err != nil {
		return nil, err
	}

	then, err := p.thfLogicFormula()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.COMMA, "','"); err != nil {
		return nil, err
	}

	els, err := p.thfLogicFormula()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
		return nil, err
	}

	return ast.THFConditional{Cond: cond, Then: then, Else: els}, nil
}

func (p *Parser) thfLet() (ast.THFFormula, *source.SyntaxError) {
	p.next() // '$let'

	if _, err := p.expect(lex.LPAREN, "'('"); err != nil {
		return nil, err
	}

	types, err := p.parseTFFTypingBracketOrSingle()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.COMMA, "','"); err != nil {
		return nil, err
	}

	bindings, err := p.parseTHFAssignmentBracketOrSingle()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.COMMA, "','"); err != nil {
		return nil, err
	}

	body, err := p.thfLogicFormula()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
		return nil, err
	}

	return ast.THFLet{Types: types, Bindings: bindings, Body: body}, nil
}

func (p *Parser) parseTHFAssignmentBracketOrSingle() ([]ast.THFAssignment, *source.SyntaxError) {
	if !p.is(0, lex.LBRACKET) {
		a, err := p.parseTHFAssignment()
		if err != nil {
			return nil, err
		}

		return []ast.THFAssignment{a}, nil
	}

	p.next()

	out := []ast.THFAssignment{}

	if !p.is(0, lex.RBRACKET) {
		for {
			a, err := p.parseTHFAssignment()
			if err != nil {
				return nil, err
			}

			out = append(out, a)

			if p.is(0, lex.COMMA) {
				p.next()
				continue
			}

			break
		}
	}

	if _, err := p.expect(lex.RBRACKET, "']'"); err != nil {
		return nil, err
	}

	return out, nil
}

func (p *Parser) parseTHFAssignment() (ast.THFAssignment, *source.SyntaxError) {
	lhs, err := p.thfLogicFormula()
	if err != nil {
		return ast.THFAssignment{}, err
	}

	if _, err := p.expect(lex.ASSIGN, "':='"); err != nil {
		return ast.THFAssignment{}, err
	}

	rhs, err := p.thfLogicFormula()
	if err != nil {
		return ast.THFAssignment{}, err
	}

	return ast.THFAssignment{Lhs: lhs, Rhs: rhs}, nil
}

// thfNonclassicalLongForm parses "{name(#idx?, k := v, ...)?} @ arg...".
func (p *Parser) thfNonclassicalLongForm() (ast.THFFormula, *source.SyntaxError) {
	p.next() // '{'

	nameTok, err := p.next()
	if err != nil {
		return nil, err
	}

	name := nameTok.Text

	var (
		index  *int
		params []ast.NonclassicalParam
	)

	if p.is(0, lex.LPAREN) {
		p.next()

		if p.is(0, lex.HASH) {
			p.next()

			idxTok, err := p.expect(lex.INT, "an index")
			if err != nil {
				return nil, err
			}

			i, convErr := strconv.Atoi(idxTok.Text)
			if convErr != nil {
				return nil, p.errorf(idxTok.Pos, "malformed index %q", idxTok.Text)
			}

			index = &i

			if p.is(0, lex.COMMA) {
				p.next()
			}
		}

		for !p.is(0, lex.RPAREN) {
			keyTok, err := p.next()
			if err != nil {
				return nil, err
			}

			if _, err := p.expect(lex.ASSIGN, "':='"); err != nil {
				return nil, err
			}

			val, err := p.parseGeneralTerm()
			if err != nil {
				return nil, err
			}

			params = append(params, ast.NonclassicalParam{Key: keyTok.Text, Value: val})

			if p.is(0, lex.COMMA) {
				p.next()
				continue
			}

			break
		}

		if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lex.RBRACE, "'}'"); err != nil {
		return nil, err
	}

	args, err := p.thfNonclassicalArgs()
	if err != nil {
		return nil, err
	}

	return ast.THFNonclassical{Short: ast.NonclassicalLongForm, Name: name, Index: index, Params: params, Args: args}, nil
}

// thfNonclassicalShortForm parses the unary body following a short bracket
// form ("[.]"/"<.>"/"/.\\", optionally indexed); the bracket tokens and any
// index have already been consumed by the caller.
func (p *Parser) thfNonclassicalShortForm(short ast.NonclassicalShort, index *int) (ast.THFFormula, *source.SyntaxError) {
	body, err := p.thfUnitFormula()
	if err != nil {
		return nil, err
	}

	return ast.THFNonclassical{Short: short, Index: index, Args: []ast.THFFormula{body}}, nil
}

func (p *Parser) thfNonclassicalArgs() ([]ast.THFFormula, *source.SyntaxError) {
	var args []ast.THFFormula

	for p.is(0, lex.AT) {
		p.next()

		a, err := p.thfUnitFormula()
		if err != nil {
			return nil, err
		}

		args = append(args, a)
	}

	return args, nil
}
