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

package ast

import (
	"math/big"
	"strconv"
	"strings"
)

// NumberKind distinguishes the three numeric literal shapes TPTP accepts.
type NumberKind int

const (
	// NumberInteger is a plain (optionally signed) integer.
	NumberInteger NumberKind = iota
	// NumberRational is a numerator/positive-denominator pair.
	NumberRational
	// NumberReal is a decimal literal with an optional signed exponent.
	NumberReal
)

// Number is one of Integer(BigInt), Rational(BigInt, BigInt>0), or
// Real(whole, decimal, exponent), matching the shared invariant of every
// TPTP dialect. No numeric evaluation or normalization is performed: the
// components are stored exactly as scanned so that pretty-printing
// reconstructs an equal value, not merely an equivalent one.
type Number struct {
	Kind     NumberKind
	Negative bool
	// Numerator holds the Integer value or the Rational numerator.
	Numerator *big.Int
	// Denominator holds the Rational denominator (always > 0); nil otherwise.
	Denominator *big.Int
	// Whole holds the Real literal's integer part.
	Whole *big.Int
	// Decimal holds the Real literal's digits after the decimal point.
	Decimal     string
	HasExponent bool
	Exponent    int
}

// NewInteger constructs an Integer number.
func NewInteger(negative bool, value *big.Int) Number {
	return Number{Kind: NumberInteger, Negative: negative, Numerator: value}
}

// NewRational constructs a Rational number. denom must be strictly positive.
func NewRational(negative bool, numer, denom *big.Int) Number {
	return Number{Kind: NumberRational, Negative: negative, Numerator: numer, Denominator: denom}
}

// NewReal constructs a Real number.
func NewReal(negative bool, whole *big.Int, decimal string, hasExponent bool, exponent int) Number {
	return Number{
		Kind:        NumberReal,
		Negative:    negative,
		Whole:       whole,
		Decimal:     decimal,
		HasExponent: hasExponent,
		Exponent:    exponent,
	}
}

// Pretty renders the number in its canonical textual form: p/q, w.d, or
// w.dEe.
func (n Number) Pretty(sb *strings.Builder) {
	if n.Negative {
		sb.WriteByte('-')
	}

	switch n.Kind {
	case NumberInteger:
		sb.WriteString(n.Numerator.String())
	case NumberRational:
		sb.WriteString(n.Numerator.String())
		sb.WriteByte('/')
		sb.WriteString(n.Denominator.String())
	case NumberReal:
		sb.WriteString(n.Whole.String())
		sb.WriteByte('.')
		sb.WriteString(n.Decimal)

		if n.HasExponent {
			sb.WriteByte('E')
			sb.WriteString(strconv.Itoa(n.Exponent))
		}
	}
}

// Equal performs structural comparison, ignoring nothing: two Number values
// are equal only when every stored component matches exactly.
func (n Number) Equal(o Number) bool {
	if n.Kind != o.Kind || n.Negative != o.Negative {
		return false
	}

	switch n.Kind {
	case NumberInteger:
		return n.Numerator.Cmp(o.Numerator) == 0
	case NumberRational:
		return n.Numerator.Cmp(o.Numerator) == 0 && n.Denominator.Cmp(o.Denominator) == 0
	case NumberReal:
		return n.Whole.Cmp(o.Whole) == 0 && n.Decimal == o.Decimal &&
			n.HasExponent == o.HasExponent && n.Exponent == o.Exponent
	default:
		return false
	}
}
