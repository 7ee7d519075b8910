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

package lex

import "testing"

func collect(t *testing.T, input string) []Token {
	t.Helper()

	lexer := NewLexer([]byte(input))

	var tokens []Token

	for {
		tok, err := lexer.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}

		tokens = append(tokens, tok)

		if tok.Kind == EOF {
			return tokens
		}
	}
}

func checkKinds(t *testing.T, input string, expected ...Kind) {
	t.Helper()

	tokens := collect(t, input)
	if len(tokens) != len(expected) {
		t.Fatalf("input %q: got %d tokens, expected %d (%v)", input, len(tokens), len(expected), tokens)
	}

	for i, k := range expected {
		if tokens[i].Kind != k {
			t.Errorf("input %q: token %d has kind %d, expected %d (text %q)", input, i, tokens[i].Kind, k, tokens[i].Text)
		}
	}
}

func TestLexerPunctuation(t *testing.T) {
	checkKinds(t, "()[]{}", LPAREN, RPAREN, LBRACKET, RBRACKET, LBRACE, RBRACE, EOF)
	checkKinds(t, "<=> => <= <~> ~| ~& != !! ?? !> ?* @+ @- @@+ @@- @= := == --> <<",
		IFF, IMPLIES, IMPLIED_BY, XOR, NOR, NAND, NEQ, FORALL2, EXISTS2, PI_BINDER,
		SIGMA_BINDER, APP_PLUS, APP_MINUS, APP_PLUS2, APP_MINUS2, APP_EQ, ASSIGN,
		IDENTICAL, ARROW3, SHL, EOF)
}

func TestLexerWords(t *testing.T) {
	checkKinds(t, "foo Bar $baz $$qux", LOWERWORD, UPPERWORD, DOLLARWORD, DOLLARDOLLARWORD, EOF)
}

func TestLexerNumbers(t *testing.T) {
	checkKinds(t, "0 42 -7 1/2 3.14 -1.0E10 2e-3", INT, INT, INT, RATIONAL, REAL, REAL, REAL, EOF)
}

func TestLexerRationalZeroDenominatorIsError(t *testing.T) {
	lexer := NewLexer([]byte("1/0"))

	for {
		_, err := lexer.Next()
		if err != nil {
			return
		}
	}
}

func TestLexerQuotedLiterals(t *testing.T) {
	tokens := collect(t, `'a\'b' "c\"d"`)
	if tokens[0].Kind != SINGLEQUOTED || tokens[0].Text != `'a\'b'` {
		t.Errorf("got %v", tokens[0])
	}

	if tokens[1].Kind != DOUBLEQUOTED || tokens[1].Text != `"c\"d"` {
		t.Errorf("got %v", tokens[1])
	}
}

func TestLexerUnclosedSingleQuoteIsError(t *testing.T) {
	lexer := NewLexer([]byte("'abc"))
	if _, err := lexer.Next(); err == nil {
		t.Errorf("expected error")
	}
}

func TestLexerLeadingLineCommentIsEmitted(t *testing.T) {
	checkKinds(t, "% a comment\nfoo", LINE_COMMENT, LOWERWORD, EOF)
	checkKinds(t, "%$defined\nfoo", LINE_COMMENT_DEFINED, LOWERWORD, EOF)
	checkKinds(t, "%$$system\nfoo", LINE_COMMENT_SYSTEM, LOWERWORD, EOF)
}

func TestLexerInlineLineCommentIsSkipped(t *testing.T) {
	checkKinds(t, "foo % trailing\nbar", LOWERWORD, LOWERWORD, EOF)
}

func TestLexerBlockComment(t *testing.T) {
	checkKinds(t, "/* block */foo", BLOCK_COMMENT, LOWERWORD, EOF)
	checkKinds(t, "foo /* inline */ bar", LOWERWORD, LOWERWORD, EOF)
}

func TestLexerUnclosedBlockCommentIsError(t *testing.T) {
	lexer := NewLexer([]byte("/* never closed"))
	if _, err := lexer.Next(); err == nil {
		t.Errorf("expected error")
	}
}

func TestLexerSlashNotFollowedByStarIsSlashToken(t *testing.T) {
	checkKinds(t, "/.\\", SLASH, DOT, BACKSLASH, EOF)
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lexer := NewLexer([]byte("foo bar"))

	first, err := lexer.Peek(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Kind != LOWERWORD || first.Text != "foo" {
		t.Fatalf("got %v", first)
	}

	second, err := lexer.Peek(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.Kind != LOWERWORD || second.Text != "bar" {
		t.Fatalf("got %v", second)
	}

	tok, err := lexer.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tok.Text != "foo" {
		t.Fatalf("Peek must not consume: got %v after peeking", tok)
	}
}

func TestLexerPositions(t *testing.T) {
	tokens := collect(t, "foo\nbar")
	if tokens[0].Pos.Line != 1 || tokens[0].Pos.Column != 1 {
		t.Errorf("got %v", tokens[0].Pos)
	}

	if tokens[1].Pos.Line != 2 || tokens[1].Pos.Column != 1 {
		t.Errorf("got %v", tokens[1].Pos)
	}
}
