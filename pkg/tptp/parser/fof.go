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

// ParseAnnotatedFOF parses a single "fof(name, role, formula [, ...])."
// entry.
func ParseAnnotatedFOF(input []byte) (*ast.FOFAnnotated, *source.SyntaxError) {
	p := New(input)

	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	if tok.Kind != lex.LOWERWORD || tok.Text != "fof" {
		return nil, p.errorf(tok.Pos, "expected 'fof', found %q", tok.Text)
	}

	af, err := p.parseAnnotated("fof")
	if err != nil {
		return nil, err
	}

	return af.(*ast.FOFAnnotated), nil
}

// ParseFOF parses a bare FOF formula with no surrounding annotation.
func ParseFOF(input []byte) (ast.FOFFormula, *source.SyntaxError) {
	p := New(input)
	return p.fofLogicFormula()
}

func (p *Parser) parseFOFAnnotatedBody(name string, role ast.Role) (annotatedSetter, *source.SyntaxError) {
	f, err := p.fofLogicFormula()
	if err != nil {
		return nil, err
	}

	return ast.NewFOFAnnotated(name, role, f), nil
}

func fofAssocOp(k lex.Kind) ast.FOFConnective {
	if k == lex.AMP {
		return ast.FOFAnd
	}

	return ast.FOFOr
}

func fofNonAssocOp(k lex.Kind) ast.FOFConnective {
	switch k {
	case lex.IFF:
		return ast.FOFIff
	case lex.IMPLIES:
		return ast.FOFImplies
	case lex.IMPLIED_BY:
		return ast.FOFImpliedBy
	case lex.XOR:
		return ast.FOFXor
	case lex.NOR:
		return ast.FOFNor
	default:
		return ast.FOFNand
	}
}

// fofLogicFormula parses fof_logic_formula: a unit formula optionally
// followed by one binary operator application. Associative operators (|,
// &) collect a maximal chain and right-fold it; the rest consume exactly
// one further unit.
func (p *Parser) fofLogicFormula() (ast.FOFFormula, *source.SyntaxError) {
	unit, err := p.fofUnitFormula()
	if err != nil {
		return nil, err
	}

	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lex.PIPE, lex.AMP:
		units := []ast.FOFFormula{unit}

		for p.is(0, tok.Kind) {
			p.next()

			u, err := p.fofUnitFormula()
			if err != nil {
				return nil, err
			}

			units = append(units, u)
		}

		return foldFOFRight(tok.Kind, units), nil
	case lex.IFF, lex.IMPLIES, lex.IMPLIED_BY, lex.XOR, lex.NOR, lex.NAND:
		p.next()

		rhs, err := p.fofUnitFormula()
		if err != nil {
			return nil, err
		}

		return ast.FOFBinaryFormula{Op: fofNonAssocOp(tok.Kind), Lhs: unit, Rhs: rhs}, nil
	default:
		return unit, nil
	}
}

func foldFOFRight(kind lex.Kind, units []ast.FOFFormula) ast.FOFFormula {
	op := fofAssocOp(kind)
	result := units[len(units)-1]

	for i := len(units) - 2; i >= 0; i-- {
		result = ast.FOFBinaryFormula{Op: op, Lhs: units[i], Rhs: result}
	}

	return result
}

func (p *Parser) fofUnitFormula() (ast.FOFFormula, *source.SyntaxError) {
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lex.BANG, lex.QUESTION:
		return p.fofQuantified()
	case lex.TILDE:
		p.next()

		body, err := p.fofUnitFormula()
		if err != nil {
			return nil, err
		}

		return ast.FOFUnaryFormula{Body: body}, nil
	case lex.LPAREN:
		p.next()

		inner, err := p.fofLogicFormula()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
			return nil, err
		}

		return inner, nil
	default:
		return p.fofAtomOrEquation()
	}
}

func (p *Parser) fofQuantified() (ast.FOFFormula, *source.SyntaxError) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	universal := tok.Kind == lex.BANG

	if _, err := p.expect(lex.LBRACKET, "'['"); err != nil {
		return nil, err
	}

	var vars []string

	for {
		v, err := p.expect(lex.UPPERWORD, "a variable")
		if err != nil {
			return nil, err
		}

		vars = append(vars, v.Text)

		if p.is(0, lex.COMMA) {
			p.next()
			continue
		}

		break
	}

	if _, err := p.expect(lex.RBRACKET, "']'"); err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.COLON, "':'"); err != nil {
		return nil, err
	}

	body, err := p.fofUnitFormula()
	if err != nil {
		return nil, err
	}

	return ast.FOFQuantifiedFormula{Universal: universal, Vars: vars, Body: body}, nil
}

func (p *Parser) fofAtomOrEquation() (ast.FOFFormula, *source.SyntaxError) {
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lex.LOWERWORD, lex.SINGLEQUOTED, lex.DOLLARWORD, lex.DOLLARDOLLARWORD:
		functor, args, err := p.parseFunctorApplication()
		if err != nil {
			return nil, err
		}

		if p.is(0, lex.EQUALS) || p.is(0, lex.NEQ) {
			return p.fofEqualityTail(ast.FOFFunctionTerm{Functor: functor, Args: args})
		}

		return ast.FOFAtomicFormula{Atom: ast.FOFAtomic{Functor: functor, Args: args}}, nil
	default:
		term, err := p.parseFOFTerm()
		if err != nil {
			return nil, err
		}

		return p.fofEqualityTail(term)
	}
}

func (p *Parser) fofEqualityTail(lhs ast.FOFTerm) (ast.FOFFormula, *source.SyntaxError) {
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

	rhs, err := p.parseFOFTerm()
	if err != nil {
		return nil, err
	}

	return ast.FOFEqualityFormula{Lhs: lhs, Rhs: rhs, Negated: negated}, nil
}

// parseFunctorApplication reads a functor token, canonicalizing a quoted
// functor, then an optional parenthesized argument list. It is shared by
// FOF, CNF and TCF term parsing since all three dialects use the same
// untyped first-order term shape.
func (p *Parser) parseFunctorApplication() (string, []ast.FOFTerm, *source.SyntaxError) {
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

	args := []ast.FOFTerm{}

	for {
		a, err := p.parseFOFTerm()
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

// parseFOFTerm parses a term shared by FOF, CNF and TCF: a variable, a
// number, a distinct object, or a functor application.
func (p *Parser) parseFOFTerm() (ast.FOFTerm, *source.SyntaxError) {
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lex.UPPERWORD:
		p.next()
		return ast.FOFVariable{Name: tok.Text}, nil
	case lex.INT, lex.RATIONAL, lex.REAL:
		n, err := p.parseNumber()
		if err != nil {
			return nil, err
		}

		return ast.FOFNumberTerm{Value: n}, nil
	case lex.DOUBLEQUOTED:
		p.next()
		return ast.FOFDistinctObjectTerm{Text: tok.Text}, nil
	case lex.LOWERWORD, lex.SINGLEQUOTED, lex.DOLLARWORD, lex.DOLLARDOLLARWORD:
		functor, args, err := p.parseFunctorApplication()
		if err != nil {
			return nil, err
		}

		return ast.FOFFunctionTerm{Functor: functor, Args: args}, nil
	default:
		return nil, p.errorf(tok.Pos, "expected a term, found %q", tok.Text)
	}
}
