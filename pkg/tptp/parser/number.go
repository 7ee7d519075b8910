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
	"math/big"
	"strconv"
	"strings"

	"github.com/tptp-lang/tptp/pkg/tptp/ast"
	"github.com/tptp-lang/tptp/pkg/tptp/lex"
	"github.com/tptp-lang/tptp/pkg/tptp/source"
)

// parseNumber consumes an INT/RATIONAL/REAL token and decodes it into an
// ast.Number. The lexer has already folded any leading sign into the token
// text, so decoding here is purely textual.
func (p *Parser) parseNumber() (ast.Number, *source.SyntaxError) {
	tok, err := p.next()
	if err != nil {
		return ast.Number{}, err
	}

	text := tok.Text
	negative := false

	if len(text) > 0 && (text[0] == '+' || text[0] == '-') {
		negative = text[0] == '-'
		text = text[1:]
	}

	switch tok.Kind {
	case lex.INT:
		v, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return ast.Number{}, p.errorf(tok.Pos, "malformed integer literal %q", tok.Text)
		}

		return ast.NewInteger(negative, v), nil
	case lex.RATIONAL:
		parts := strings.SplitN(text, "/", 2)

		numer, ok := new(big.Int).SetString(parts[0], 10)
		if !ok {
			return ast.Number{}, p.errorf(tok.Pos, "malformed rational literal %q", tok.Text)
		}

		denom, ok := new(big.Int).SetString(parts[1], 10)
		if !ok {
			return ast.Number{}, p.errorf(tok.Pos, "malformed rational literal %q", tok.Text)
		}

		return ast.NewRational(negative, numer, denom), nil
	case lex.REAL:
		return parseReal(negative, text, tok, p)
	default:
		return ast.Number{}, p.errorf(tok.Pos, "expected a number, found %q", tok.Text)
	}
}

func parseReal(negative bool, text string, tok lex.Token, p *Parser) (ast.Number, *source.SyntaxError) {
	mantissa := text

	hasExponent := false

	exponent := 0

	if i := strings.IndexAny(text, "eE"); i >= 0 {
		mantissa = text[:i]

		expPart := text[i+1:]

		e, err := strconv.Atoi(expPart)
		if err != nil {
			return ast.Number{}, p.errorf(tok.Pos, "malformed exponent in real literal %q", tok.Text)
		}

		hasExponent = true
		exponent = e
	}

	whole := mantissa
	decimal := ""

	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		whole = mantissa[:i]
		decimal = mantissa[i+1:]
	}

	w, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return ast.Number{}, p.errorf(tok.Pos, "malformed real literal %q", tok.Text)
	}

	return ast.NewReal(negative, w, decimal, hasExponent, exponent), nil
}
