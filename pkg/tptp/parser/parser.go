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

// Package parser implements a hand-written recursive-descent parser over
// the token stream produced by pkg/tptp/lex, turning it into the closed AST
// families defined in pkg/tptp/ast. Each dialect gets its own entry points,
// sharing the top-level file structure, role, and general-term grammar.
package parser

import (
	"fmt"
	"strconv"

	"github.com/tptp-lang/tptp/pkg/tptp/ast"
	"github.com/tptp-lang/tptp/pkg/tptp/lex"
	"github.com/tptp-lang/tptp/pkg/tptp/source"
)

// Parser holds the lexer and nothing else: it is entirely stateless beyond
// the token stream, matching the teacher's parser's lookahead()/expect()
// idiom extended here with PeekUnder for structural disambiguation.
type Parser struct {
	lex *lex.Lexer
}

// New constructs a parser over the given input.
func New(input []byte) *Parser {
	return &Parser{lex: lex.NewLexer(input)}
}

func (p *Parser) peek(i int) (lex.Token, *source.SyntaxError) {
	return p.lex.Peek(i)
}

func (p *Parser) next() (lex.Token, *source.SyntaxError) {
	return p.lex.Next()
}

func (p *Parser) is(i int, k lex.Kind) bool {
	tok, ok := p.lex.SafePeek(i)
	return ok && tok.Kind == k
}

func (p *Parser) errorf(pos source.Position, format string, args ...any) *source.SyntaxError {
	return source.NewSyntaxError(pos, fmt.Sprintf(format, args...))
}

// expect consumes the next token and requires it to have kind k, describing
// what was wanted (in "expected <what>" phrasing) on mismatch.
func (p *Parser) expect(k lex.Kind, what string) (lex.Token, *source.SyntaxError) {
	tok, err := p.next()
	if err != nil {
		return lex.Token{}, err
	}

	if tok.Kind != k {
		return lex.Token{}, p.errorf(tok.Pos, "expected %s, found %q", what, tok.Text)
	}

	return tok, nil
}

// nonclassicalShortFormIndex consumes an indexed non-classical short form's
// opening bracket, "#", integer index, and closing bracket (e.g. "[#1]"),
// already confirmed present by the caller's look-ahead, and returns the
// parsed index.
func (p *Parser) nonclassicalShortFormIndex(closeKind lex.Kind, closeWhat string) (*int, *source.SyntaxError) {
	p.next() // opening bracket
	p.next() // '#'

	idxTok, err := p.expect(lex.INT, "an index")
	if err != nil {
		return nil, err
	}

	i, convErr := strconv.Atoi(idxTok.Text)
	if convErr != nil {
		return nil, p.errorf(idxTok.Pos, "malformed index %q", idxTok.Text)
	}

	if _, err := p.expect(closeKind, closeWhat); err != nil {
		return nil, err
	}

	return &i, nil
}

// emptyInputError reports the one case where no real position exists to
// attribute a syntax error to: an input with no tokens at all.
func (p *Parser) emptyInputError(msg string) *source.SyntaxError {
	return source.NewSyntaxError(source.EmptyPosition, msg)
}

// ParseProblem parses a complete TPTP file: an interleaving of comments,
// include directives and annotated formulas of any dialect.
func ParseProblem(input []byte) (*ast.Problem, *source.SyntaxError) {
	p := New(input)
	return p.parseProblem()
}

// ParseAnnotated parses a single annotated formula of any dialect,
// dispatching on its leading keyword (thf/tff/fof/tcf/cnf/tpi).
func ParseAnnotated(input []byte) (ast.AnnotatedFormula, *source.SyntaxError) {
	p := New(input)

	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	if tok.Kind != lex.LOWERWORD {
		return nil, p.errorf(tok.Pos, "expected a dialect keyword, found %q", tok.Text)
	}

	switch tok.Text {
	case "thf", "tff", "fof", "tcf", "cnf", "tpi":
		return p.parseAnnotated(tok.Text)
	default:
		return nil, p.errorf(tok.Pos, "expected a dialect keyword, found %q", tok.Text)
	}
}

func (p *Parser) parseProblem() (*ast.Problem, *source.SyntaxError) {
	first, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	if first.Kind == lex.EOF {
		return nil, p.emptyInputError("empty input")
	}

	problem := &ast.Problem{FormulaComments: map[string][]ast.Comment{}}

	var pending []ast.Comment

	for {
		tok, err := p.peek(0)
		if err != nil {
			return nil, err
		}

		if tok.Kind == lex.EOF {
			break
		}

		if tok.Kind.IsComment() {
			p.next()
			pending = append(pending, commentFromToken(tok))

			continue
		}

		if tok.Kind != lex.LOWERWORD {
			return nil, p.errorf(tok.Pos, "expected 'include' or a dialect keyword, found %q", tok.Text)
		}

		switch tok.Text {
		case "include":
			inc, err := p.parseInclude()
			if err != nil {
				return nil, err
			}

			inc.LeadingComments = pending
			pending = nil
			problem.Includes = append(problem.Includes, inc)
		case "thf", "tff", "fof", "tcf", "cnf", "tpi":
			af, err := p.parseAnnotated(tok.Text)
			if err != nil {
				return nil, err
			}

			if len(pending) > 0 {
				problem.FormulaComments[af.Name()] = pending
				pending = nil
			}

			problem.Formulas = append(problem.Formulas, af)
		default:
			return nil, p.errorf(tok.Pos, "unrecognized top-level keyword %q", tok.Text)
		}
	}

	return problem, nil
}

func commentFromToken(tok lex.Token) ast.Comment {
	format := ast.CommentLine
	kind := ast.CommentNormal

	switch tok.Kind {
	case lex.LINE_COMMENT:
		format, kind = ast.CommentLine, ast.CommentNormal
	case lex.LINE_COMMENT_DEFINED:
		format, kind = ast.CommentLine, ast.CommentDefined
	case lex.LINE_COMMENT_SYSTEM:
		format, kind = ast.CommentLine, ast.CommentSystem
	case lex.BLOCK_COMMENT:
		format, kind = ast.CommentBlock, ast.CommentNormal
	case lex.BLOCK_COMMENT_DEFINED:
		format, kind = ast.CommentBlock, ast.CommentDefined
	case lex.BLOCK_COMMENT_SYSTEM:
		format, kind = ast.CommentBlock, ast.CommentSystem
	}

	return ast.Comment{Format: format, Kind: kind, Text: tok.Text}
}

func (p *Parser) parseInclude() (ast.Include, *source.SyntaxError) {
	p.next() // 'include'

	if _, err := p.expect(lex.LPAREN, "'('"); err != nil {
		return ast.Include{}, err
	}

	fname, err := p.expect(lex.SINGLEQUOTED, "a quoted filename")
	if err != nil {
		return ast.Include{}, err
	}

	inc := ast.Include{Filename: fname.Text}

	if p.is(0, lex.COMMA) {
		p.next()

		if _, err := p.expect(lex.LBRACKET, "'['"); err != nil {
			return ast.Include{}, err
		}

		sels := []string{}

		if !p.is(0, lex.RBRACKET) {
			for {
				t, err := p.expect(lex.LOWERWORD, "a formula name")
				if err != nil {
					return ast.Include{}, err
				}

				sels = append(sels, t.Text)

				if p.is(0, lex.COMMA) {
					p.next()
					continue
				}

				break
			}
		}

		inc.Selector = sels

		if _, err := p.expect(lex.RBRACKET, "']'"); err != nil {
			return ast.Include{}, err
		}
	}

	if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
		return ast.Include{}, err
	}

	if _, err := p.expect(lex.DOT, "'.'"); err != nil {
		return ast.Include{}, err
	}

	return inc, nil
}

// parseName reads an annotated formula's name, which may be a lower-word or
// a bare non-negative integer.
func (p *Parser) parseName() (string, *source.SyntaxError) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}

	if tok.Kind != lex.LOWERWORD && tok.Kind != lex.INT {
		return "", p.errorf(tok.Pos, "expected a formula name, found %q", tok.Text)
	}

	return tok.Text, nil
}

// parseRole reads "lower-word ('-' general-term)?".
func (p *Parser) parseRole() (ast.Role, *source.SyntaxError) {
	tok, err := p.expect(lex.LOWERWORD, "a role")
	if err != nil {
		return ast.Role{}, err
	}

	role := ast.Role{Name: tok.Text}

	if p.is(0, lex.MINUS) {
		p.next()

		sub, err := p.parseGeneralTerm()
		if err != nil {
			return ast.Role{}, err
		}

		role.SubRole = &sub
	}

	return role, nil
}

// parseAnnotated parses the body and closing punctuation shared by every
// dialect's "keyword(name, role, ...)." template, given that the leading
// keyword token has already been peeked (but not consumed) with text kw.
func (p *Parser) parseAnnotated(kw string) (ast.AnnotatedFormula, *source.SyntaxError) {
	kwTok, err := p.next()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.LPAREN, "'('"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.COMMA, "','"); err != nil {
		return nil, err
	}

	role, err := p.parseRole()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.COMMA, "','"); err != nil {
		return nil, err
	}

	var af annotatedSetter

	switch kw {
	case "thf":
		af, err = p.parseTHFAnnotatedBody(name, role)
	case "tff":
		af, err = p.parseTFFAnnotatedBody(name, role)
	case "fof":
		af, err = p.parseFOFAnnotatedBody(name, role)
	case "tcf":
		af, err = p.parseTCFAnnotatedBody(name, role)
	case "cnf":
		af, err = p.parseCNFAnnotatedBody(name, role)
	case "tpi":
		af, err = p.parseTPIAnnotatedBody(name, role)
	}

	if err != nil {
		return nil, err
	}

	ann, err := p.parseOptionalAnnotations()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.RPAREN, "')'"); err != nil {
		return nil, err
	}

	if _, err := p.expect(lex.DOT, "'.'"); err != nil {
		return nil, err
	}

	af.SetAnnotations(ann)
	af.SetOrigin(kwTok.Pos)

	return af, nil
}

// annotatedSetter is satisfied by every dialect's *XAnnotated pointer type
// via its embedded annotatedBase, whose SetAnnotations/SetOrigin methods
// are promoted and exported even though the embedded type itself is not.
type annotatedSetter interface {
	ast.AnnotatedFormula
	SetAnnotations(*ast.Annotations)
	SetOrigin(source.Position)
}

// parseOptionalAnnotations parses the trailing ", source[, [info, ...]]"
// clause, if a comma follows the formula body.
func (p *Parser) parseOptionalAnnotations() (*ast.Annotations, *source.SyntaxError) {
	if !p.is(0, lex.COMMA) {
		return nil, nil
	}

	p.next()

	src, err := p.parseGeneralTerm()
	if err != nil {
		return nil, err
	}

	ann := &ast.Annotations{Source: src}

	if p.is(0, lex.COMMA) {
		p.next()

		if _, err := p.expect(lex.LBRACKET, "'['"); err != nil {
			return nil, err
		}

		info := []ast.GeneralTerm{}

		if !p.is(0, lex.RBRACKET) {
			for {
				g, err := p.parseGeneralTerm()
				if err != nil {
					return nil, err
				}

				info = append(info, g)

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

		ann.Info = info
	}

	return ann, nil
}
