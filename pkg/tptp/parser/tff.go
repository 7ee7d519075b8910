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

// ParseAnnotatedTFF parses a single "tff(name, role, statement [, ...])."
// entry, accepting both plain TFF and its TFX extensions.
func ParseAnnotatedTFF(input []byte) (*ast.TFFAnnotated, *source.SyntaxError) {
	p := New(input)

	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	if tok.Kind != lex.LOWERWORD || tok.Text != "tff" {
		return nil, p.errorf(tok.Pos, "expected 'tff', found %q", tok.Text)
	}

	af, err := p.parseAnnotated("tff")
	if err != nil {
		return nil, err
	}

	return af.(*ast.TFFAnnotated), nil
}

// ParseTFF parses a bare TFF statement.
func ParseTFF(input []byte) (ast.TFFStatement, *source.SyntaxError) {
	p := New(input)
	return p.parseTFFStatement()
}

func (p *Parser) parseTFFAnnotatedBody(name string, role ast.Role) (annotatedSetter, *source.SyntaxError) {
	s, err := p.parseTFFStatement()
	if err != nil {
		return nil, err
	}

	return ast.NewTFFAnnotated(name, role, s), nil
}

// parseTFFStatement dispatches on the shape of a TFF/TFX statement body: a
// top-level "atom : type" declaration, a TFX sequent, or an ordinary
// logical formula.
func (p *Parser) parseTFFStatement() (ast.TFFStatement, *source.SyntaxError) {
	if (p.is(0, lex.LOWERWORD) || p.is(0, lex.SINGLEQUOTED)) && p.is(1, lex.COLON) {
		typing, err := p.parseTFFTyping()
		if err != nil {
			return nil, err
		}

		return ast.TFFTypingStatement{Typing: typing}, nil
	}

	if p.is(0, lex.LBRACKET) && !p.is(1, lex.DOT) && !p.is(1, lex.HASH) {
		lhs, err := p.parseTFFTermList()
		if err != nil {
			return nil, err
		}

		if p.is(0, lex.ARROW3) {
			p.next()

			rhs, err := p.parseTFFTermList()
			if err != nil {
				return nil, err
			}

			return ast.TFFSequentStatement{Lhs: lhs, Rhs: rhs}, nil
		}

		if len(lhs) != 1 {
			tok, _ := p.peek(0)
			return nil, p.errorf(tok.Pos, "expected '-->' after tuple")
		}

		formula, err := p.tffFormulaTail(ast.TFFTermFormula{Term: lhs[0]})
		if err != nil {
			return nil, err
		}

		return ast.TFFLogicalStatement{Formula: formula}, nil
	}

	formula, err := p.tffLogicFormula()
	if err != nil {
		return nil, err
	}

	return ast.TFFLogicalStatement{Formula: formula}, nil
}

func (p *Parser) parseTFFTermList() ([]ast.TFFTerm, *source.SyntaxError) {
	if _, err := p.expect(lex.LBRACKET, "'['"); err != nil {
		return nil, err
	}

	terms := []ast.TFFTerm{}

	if !p.is(0, lex.RBRACKET) {
		for {
			t, err := p.tffTerm()
			if err != nil {
				return nil, err
			}

			terms = append(terms, t)

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

	return terms, nil
}

// tffFormulaTail extends an already-parsed unit (wrapped as a formula) with
// a trailing binary connective, mirroring fofLogicFormula's tail once the
// leading unit is in hand.
func (p *Parser) tffFormulaTail(unit ast.TFFFormula) (ast.TFFFormula, *source.SyntaxError) {
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lex.PIPE, lex.AMP:
		units := []ast.TFFFormula{unit}

		for p.is(0, tok.Kind) {
			p.next()

			u, err := p.tffUnitFormula()
			if err != nil {
				return nil, err
			}

			units = append(units, u)
		}

		return foldTFFRight(tok.Kind, units), nil
	case lex.IFF, lex.IMPLIES, lex.IMPLIED_BY, lex.XOR, lex.NOR, lex.NAND:
		p.next()

		rhs, err := p.tffUnitFormula()
		if err != nil {
			return nil, err
		}

		return ast.TFFBinaryFormula{Op: tffNonAssocOp(tok.Kind), Lhs: unit, Rhs: rhs}, nil
	default:
		return unit, nil
	}
}

func tffAssocOp(k lex.Kind) ast.TFFConnective {
	if k == lex.AMP {
		return ast.TFFAnd
	}

	return ast.TFFOr
}

func tffNonAssocOp(k lex.Kind) ast.TFFConnective {
	switch k {
	case lex.IFF:
		return ast.TFFIff
	case lex.IMPLIES:
		return ast.TFFImplies
	case lex.IMPLIED_BY:
		return ast.TFFImpliedBy
	case lex.XOR:
		return ast.TFFXor
	case lex.NOR:
		return ast.TFFNor
	default:
		return ast.TFFNand
	}
}

func foldTFFRight(kind lex.Kind, units []ast.TFFFormula) ast.TFFFormula {
	op := tffAssocOp(kind)
	result := units[len(units)-1]

	for i := len(units) - 2; i >= 0; i-- {
		result = ast.TFFBinaryFormula{Op: op, Lhs: units[i], Rhs: result}
	}

	return result
}

// tffLogicFormula parses a unit formula optionally followed by one binary
// operator application, associativity handled exactly as in FOF.
func (p *Parser) tffLogicFormula() (ast.TFFFormula, *source.SyntaxError) {
	unit, err := p.tffUnitFormula()
	if err != nil {
		return nil, err
	}

	return p.tffFormulaTail(unit)
}

func (p *Parser) tffUnitFormula() (ast.TFFFormula, *source.SyntaxError) {
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lex.BANG, lex.QUESTION:
		return p.tffQuantified()
	case lex.TILDE:
		p.next()

		body, err := p.tffUnitFormula()
		if err != nil {
			return nil, err
		}

		return ast.TFFUnaryFormula{Body: body}, nil
	case lex.LPAREN:
		p.next()

		inner, err := p.tffLogicFormula()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
			return nil, err
		}

		return inner, nil
	case lex.LBRACE:
		return p.tffNonclassicalLongForm()
	case lex.LBRACKET:
		if p.is(1, lex.DOT) && p.is(2, lex.RBRACKET) {
			p.next()
			p.next()
			p.next()

			return p.tffNonclassicalShortForm(ast.NonclassicalBox, nil)
		}

		if p.is(1, lex.HASH) && p.is(2, lex.INT) && p.is(3, lex.RBRACKET) {
			index, err := p.nonclassicalShortFormIndex(lex.RBRACKET, "']'")
			if err != nil {
				return nil, err
			}

			return p.tffNonclassicalShortForm(ast.NonclassicalBox, index)
		}

		return p.tffAtomOrEquation()
	case lex.LANGLE:
		if p.is(1, lex.DOT) && p.is(2, lex.RANGLE) {
			p.next()
			p.next()
			p.next()

			return p.tffNonclassicalShortForm(ast.NonclassicalDiamond, nil)
		}

		if p.is(1, lex.HASH) && p.is(2, lex.INT) && p.is(3, lex.RANGLE) {
			index, err := p.nonclassicalShortFormIndex(lex.RANGLE, "'>'")
			if err != nil {
				return nil, err
			}

			return p.tffNonclassicalShortForm(ast.NonclassicalDiamond, index)
		}

		return p.tffAtomOrEquation()
	case lex.SLASH:
		if p.is(1, lex.DOT) && p.is(2, lex.BACKSLASH) {
			p.next()
			p.next()
			p.next()

			return p.tffNonclassicalShortForm(ast.NonclassicalSlash, nil)
		}

		if p.is(1, lex.HASH) && p.is(2, lex.INT) && p.is(3, lex.BACKSLASH) {
			index, err := p.nonclassicalShortFormIndex(lex.BACKSLASH, "'\\'")
			if err != nil {
				return nil, err
			}

			return p.tffNonclassicalShortForm(ast.NonclassicalSlash, index)
		}

		return p.tffAtomOrEquation()
	default:
		return p.tffAtomOrEquation()
	}
}

// tffNonclassicalLongForm parses "{name(#idx?, k := v, ...)?} @ arg...".
func (p *Parser) tffNonclassicalLongForm() (ast.TFFFormula, *source.SyntaxError) {
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

	args, err := p.tffNonclassicalArgs()
	if err != nil {
		return nil, err
	}

	return ast.TFFNonclassical{Short: ast.NonclassicalLongForm, Name: name, Index: index, Params: params, Args: args}, nil
}

// tffNonclassicalShortForm parses the unary body following a short bracket
// form ("[.]"/"<.>"/"/.\\", optionally indexed); the bracket tokens and any
// index have already been consumed by the caller.
func (p *Parser) tffNonclassicalShortForm(short ast.NonclassicalShort, index *int) (ast.TFFFormula, *source.SyntaxError) {
	body, err := p.tffTerm()
	if err != nil {
		return nil, err
	}

	return ast.TFFNonclassical{Short: short, Index: index, Args: []ast.TFFTerm{body}}, nil
}

func (p *Parser) tffNonclassicalArgs() ([]ast.TFFTerm, *source.SyntaxError) {
	var args []ast.TFFTerm

	for p.is(0, lex.AT) {
		p.next()

		a, err := p.tffTerm()
		if err != nil {
			return nil, err
		}

		args = append(args, a)
	}

	return args, nil
}

func (p *Parser) tffQuantified() (ast.TFFFormula, *source.SyntaxError) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	universal := tok.Kind == lex.BANG

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

	body, err := p.tffUnitFormula()
	if err != nil {
		return nil, err
	}

	return ast.TFFQuantifiedFormula{Universal: universal, Vars: vars, Body: body}, nil
}

func (p *Parser) tffAtomOrEquation() (ast.TFFFormula, *source.SyntaxError) {
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lex.UPPERWORD:
		p.next()

		v := ast.TFFVariable{Name: tok.Text}

		switch {
		case p.is(0, lex.EQUALS) || p.is(0, lex.NEQ):
			return p.tffEqualityTail(v)
		case p.is(0, lex.IDENTICAL):
			return p.tffMetaIdentityTail(v)
		default:
			return ast.TFFFormulaVariableFormula{Name: tok.Text}, nil
		}
	case lex.LOWERWORD, lex.SINGLEQUOTED, lex.DOLLARWORD, lex.DOLLARDOLLARWORD:
		functor, args, err := p.parseTFFFunctorApplication()
		if err != nil {
			return nil, err
		}

		switch {
		case p.is(0, lex.EQUALS) || p.is(0, lex.NEQ):
			return p.tffEqualityTail(ast.TFFFunctionTerm{Functor: functor, Args: args})
		case p.is(0, lex.IDENTICAL):
			return p.tffMetaIdentityTail(ast.TFFFunctionTerm{Functor: functor, Args: args})
		default:
			return ast.TFFAtomicFormula{Functor: functor, Args: args}, nil
		}
	default:
		term, err := p.tffTerm()
		if err != nil {
			return nil, err
		}

		switch {
		case p.is(0, lex.EQUALS) || p.is(0, lex.NEQ):
			return p.tffEqualityTail(term)
		case p.is(0, lex.IDENTICAL):
			return p.tffMetaIdentityTail(term)
		default:
			return ast.TFFTermFormula{Term: term}, nil
		}
	}
}

func (p *Parser) tffEqualityTail(lhs ast.TFFTerm) (ast.TFFFormula, *source.SyntaxError) {
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	negated := false

	switch tok.Kind {
	case lex.EQUALS:
		p.next()
	case lex.NEQ:
		p.next()

		negated = true
	default:
		return nil, p.errorf(tok.Pos, "expected '=' or '!=', found %q", tok.Text)
	}

	rhs, err := p.tffTerm()
	if err != nil {
		return nil, err
	}

	return ast.TFFEqualityFormula{Lhs: lhs, Rhs: rhs, Negated: negated}, nil
}

func (p *Parser) tffMetaIdentityTail(lhs ast.TFFTerm) (ast.TFFFormula, *source.SyntaxError) {
	if _, err := p.expect(lex.IDENTICAL, "'=='"); err != nil {
		return nil, err
	}

	rhs, err := p.tffTerm()
	if err != nil {
		return nil, err
	}

	return ast.TFFMetaIdentity{Lhs: lhs, Rhs: rhs}, nil
}

// tffTerm parses every TFF/TFX term shape. A parenthesized term simply
// drops its parentheses; TFX's formulas-as-terms feature is not reached
// from here since $ite/$let/tuple already cover the practical cases.
func (p *Parser) tffTerm() (ast.TFFTerm, *source.SyntaxError) {
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lex.UPPERWORD:
		p.next()
		return ast.TFFVariable{Name: tok.Text}, nil
	case lex.INT, lex.RATIONAL, lex.REAL:
		n, err := p.parseNumber()
		if err != nil {
			return nil, err
		}

		return ast.TFFNumberTerm{Value: n}, nil
	case lex.DOUBLEQUOTED:
		p.next()
		return ast.TFFDistinctObjectTerm{Text: tok.Text}, nil
	case lex.LBRACKET:
		return p.tffTuple()
	case lex.LPAREN:
		p.next()

		inner, err := p.tffTerm()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
			return nil, err
		}

		return inner, nil
	case lex.DOLLARWORD:
		switch tok.Text {
		case "$ite":
			return p.tffConditionalTerm()
		case "$let":
			return p.tffLetTerm()
		default:
			return p.tffFunctorApplicationTerm()
		}
	case lex.LOWERWORD, lex.SINGLEQUOTED, lex.DOLLARDOLLARWORD:
		return p.tffFunctorApplicationTerm()
	default:
		return nil, p.errorf(tok.Pos, "expected a term, found %q", tok.Text)
	}
}

func (p *Parser) tffFunctorApplicationTerm() (ast.TFFTerm, *source.SyntaxError) {
	functor, args, err := p.parseTFFFunctorApplication()
	if err != nil {
		return nil, err
	}

	return ast.TFFFunctionTerm{Functor: functor, Args: args}, nil
}

// parseTFFFunctorApplication is TFF's counterpart to FOF's
// parseFunctorApplication, over TFFTerm arguments.
func (p *Parser) parseTFFFunctorApplication() (string, []ast.TFFTerm, *source.SyntaxError) {
	tok, err := p.next()
	if err != nil {
		return "", nil, err
	}

	functor := tok.Text
	if tok.Kind == lex.SINGLEQUOTED {
		functor = ast.CanonicalFunctor(tok.Text)
	}

	if !p.is(0, lex.LPAREN) {
		return functor, nil, nil
	}

	p.next()

	args := []ast.TFFTerm{}

	for {
		a, err := p.tffTerm()
		if err != nil {
			return "", nil, err
		}

		args = append(args, a)

		if p.is(0, lex.COMMA) {
			p.next()
			continue
		}

		break
	}

	if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
		return "", nil, err
	}

	return functor, args, nil
}

func (p *Parser) tffTuple() (ast.TFFTerm, *source.SyntaxError) {
	p.next() // '['

	elems := []ast.TFFTerm{}

	if !p.is(0, lex.RBRACKET) {
		for {
			e, err := p.tffTerm()
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

	return ast.TFFTuple{Elems: elems}, nil
}

func (p *Parser) tffConditionalTerm() (ast.TFFTerm, *source.SyntaxError) {
	p.next() // '$ite'

	if _, err := p.expect(lex.LPAREN, "'('"); err != nil {
		return nil, err
	}

	cond, err := p.tffLogicFormula()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.COMMA, "','"); err != nil {
		return nil, err
	}

	then, err := p.tffTerm()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.COMMA, "','"); err != nil {
		return nil, err
	}

	els, err := p.tffTerm()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
		return nil, err
	}

	return ast.TFFConditionalTerm{Cond: cond, Then: then, Else: els}, nil
}

func (p *Parser) tffLetTerm() (ast.TFFTerm, *source.SyntaxError) {
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

	bindings, err := p.parseTFFAssignmentBracketOrSingle()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.COMMA, "','"); err != nil {
		return nil, err
	}

	body, err := p.tffTerm()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
		return nil, err
	}

	return ast.TFFLetTerm{Types: types, Bindings: bindings, Body: body}, nil
}

func (p *Parser) parseTFFTypingBracketOrSingle() ([]ast.TFFTyping, *source.SyntaxError) {
	if !p.is(0, lex.LBRACKET) {
		t, err := p.parseTFFTyping()
		if err != nil {
			return nil, err
		}

		return []ast.TFFTyping{t}, nil
	}

	p.next()

	out := []ast.TFFTyping{}

	if !p.is(0, lex.RBRACKET) {
		for {
			t, err := p.parseTFFTyping()
			if err != nil {
				return nil, err
			}

			out = append(out, t)

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

func (p *Parser) parseTFFTyping() (ast.TFFTyping, *source.SyntaxError) {
	tok, err := p.next()
	if err != nil {
		return ast.TFFTyping{}, err
	}

	functor := tok.Text
	if tok.Kind == lex.SINGLEQUOTED {
		functor = ast.CanonicalFunctor(tok.Text)
	}

	if _, err := p.expect(lex.COLON, "':'"); err != nil {
		return ast.TFFTyping{}, err
	}

	typ, err := p.tffTopLevelType()
	if err != nil {
		return ast.TFFTyping{}, err
	}

	return ast.TFFTyping{Atom: functor, Type: typ}, nil
}

func (p *Parser) parseTFFAssignmentBracketOrSingle() ([]ast.TFFAssignment, *source.SyntaxError) {
	if !p.is(0, lex.LBRACKET) {
		a, err := p.parseTFFAssignment()
		if err != nil {
			return nil, err
		}

		return []ast.TFFAssignment{a}, nil
	}

	p.next()

	out := []ast.TFFAssignment{}

	if !p.is(0, lex.RBRACKET) {
		for {
			a, err := p.parseTFFAssignment()
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

func (p *Parser) parseTFFAssignment() (ast.TFFAssignment, *source.SyntaxError) {
	lhs, err := p.tffTerm()
	if err != nil {
		return ast.TFFAssignment{}, err
	}

	if _, err := p.expect(lex.ASSIGN, "':='"); err != nil {
		return ast.TFFAssignment{}, err
	}

	rhs, err := p.tffTerm()
	if err != nil {
		return ast.TFFAssignment{}, err
	}

	return ast.TFFAssignment{Lhs: lhs, Rhs: rhs}, nil
}

// parseTypedVariableList parses a comma-separated "X" or "X:type" list,
// shared by TFF quantifiers, THF-style typed prefixes and TCF clauses.
func (p *Parser) parseTypedVariableList() ([]ast.TypedVariable, *source.SyntaxError) {
	var vars []ast.TypedVariable

	for {
		v, err := p.expect(lex.UPPERWORD, "a variable")
		if err != nil {
			return nil, err
		}

		tv := ast.TypedVariable{Name: v.Text}

		if p.is(0, lex.COLON) {
			p.next()

			t, err := p.tffAtomicType()
			if err != nil {
				return nil, err
			}

			tv.Type = &t
		}

		vars = append(vars, tv)

		if p.is(0, lex.COMMA) {
			p.next()
			continue
		}

		break
	}

	return vars, nil
}

// tffTopLevelType parses tff_top_level_type: a quantified type, or a
// (possibly product-domain) mapping/atomic type.
func (p *Parser) tffTopLevelType() (ast.TFFType, *source.SyntaxError) {
	if p.is(0, lex.PI_BINDER) {
		return p.tffQuantifiedType()
	}

	return p.tffMappingOrAtomicType()
}

func (p *Parser) tffQuantifiedType() (ast.TFFType, *source.SyntaxError) {
	p.next() // '!>'

	if _, err := p.expect(lex.LBRACKET, "'['"); err != nil {
		return ast.TFFType{}, err
	}

	vars, err := p.parseTypedVariableList()
	if err != nil {
		return ast.TFFType{}, err
	}

	if _, err := p.expect(lex.RBRACKET, "']'"); err != nil {
		return ast.TFFType{}, err
	}

	if _, err := p.expect(lex.COLON, "':'"); err != nil {
		return ast.TFFType{}, err
	}

	inner, err := p.tffTopLevelType()
	if err != nil {
		return ast.TFFType{}, err
	}

	return ast.TFFType{Kind: ast.TFFTypeQuantified, Vars: vars, Inner: &inner}, nil
}

func (p *Parser) tffMappingOrAtomicType() (ast.TFFType, *source.SyntaxError) {
	domain, err := p.tffUnitaryOrProductType()
	if err != nil {
		return ast.TFFType{}, err
	}

	if p.is(0, lex.RANGLE) {
		p.next()

		result, err := p.tffMappingOrAtomicType()
		if err != nil {
			return ast.TFFType{}, err
		}

		return ast.TFFType{Kind: ast.TFFTypeMapping, Domain: domain, Result: &result}, nil
	}

	if len(domain) != 1 {
		tok, _ := p.peek(0)
		return ast.TFFType{}, p.errorf(tok.Pos, "product type may only appear as a mapping's domain")
	}

	return domain[0], nil
}

// tffUnitaryOrProductType parses tff_unitary_type | ( tff_xprod_type ),
// returning the domain as a slice (length 1 unless a parenthesized product
// was found).
func (p *Parser) tffUnitaryOrProductType() ([]ast.TFFType, *source.SyntaxError) {
	if !p.is(0, lex.LPAREN) {
		t, err := p.tffAtomicType()
		if err != nil {
			return nil, err
		}

		return []ast.TFFType{t}, nil
	}

	p.next()

	first, err := p.tffTopLevelType()
	if err != nil {
		return nil, err
	}

	elems := []ast.TFFType{first}

	for p.is(0, lex.STAR) {
		p.next()

		next, err := p.tffAtomicType()
		if err != nil {
			return nil, err
		}

		elems = append(elems, next)
	}

	if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
		return nil, err
	}

	return elems, nil
}

// tffAtomicType parses a type constant/functor application, a bare type
// variable, a parenthesized type, or (TFX) a tuple type.
func (p *Parser) tffAtomicType() (ast.TFFType, *source.SyntaxError) {
	tok, err := p.peek(0)
	if err != nil {
		return ast.TFFType{}, err
	}

	switch tok.Kind {
	case lex.LPAREN:
		p.next()

		inner, err := p.tffTopLevelType()
		if err != nil {
			return ast.TFFType{}, err
		}

		if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
			return ast.TFFType{}, err
		}

		return inner, nil
	case lex.LBRACKET:
		p.next()

		elems := []ast.TFFType{}

		if !p.is(0, lex.RBRACKET) {
			for {
				e, err := p.tffTopLevelType()
				if err != nil {
					return ast.TFFType{}, err
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
			return ast.TFFType{}, err
		}

		return ast.TFFType{Kind: ast.TFFTypeTuple, Elems: elems}, nil
	case lex.UPPERWORD:
		p.next()
		return ast.TFFType{Kind: ast.TFFTypeAtomic, Functor: tok.Text}, nil
	case lex.LOWERWORD, lex.SINGLEQUOTED, lex.DOLLARWORD, lex.DOLLARDOLLARWORD:
		p.next()

		functor := tok.Text
		if tok.Kind == lex.SINGLEQUOTED {
			functor = ast.CanonicalFunctor(tok.Text)
		}

		var args []ast.TFFType

		if p.is(0, lex.LPAREN) {
			p.next()

			args = []ast.TFFType{}

			for {
				a, err := p.tffAtomicType()
				if err != nil {
					return ast.TFFType{}, err
				}

				args = append(args, a)

				if p.is(0, lex.COMMA) {
					p.next()
					continue
				}

				break
			}

			if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
				return ast.TFFType{}, err
			}
		}

		return ast.TFFType{Kind: ast.TFFTypeAtomic, Functor: functor, Args: args}, nil
	default:
		return ast.TFFType{}, p.errorf(tok.Pos, "expected a type, found %q", tok.Text)
	}
}
