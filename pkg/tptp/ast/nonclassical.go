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

import "strings"

// NonclassicalShort identifies which (if any) of the three bracket short
// forms a non-classical operator was written with. Pretty re-emits an
// unindexed short form verbatim; only an *indexed* short form loses it and
// falls back to long form, per the serialization contract's
// indexed-short-form-loses-on-output rule.
type NonclassicalShort int

const (
	// NonclassicalLongForm marks an operator written as "{name(...)}".
	NonclassicalLongForm NonclassicalShort = iota
	// NonclassicalBox is "[.]".
	NonclassicalBox
	// NonclassicalDiamond is "<.>".
	NonclassicalDiamond
	// NonclassicalSlash is "/.\\".
	NonclassicalSlash
)

// name maps a short form to its canonical long-form name.
func (s NonclassicalShort) name() string {
	switch s {
	case NonclassicalBox:
		return "$box"
	case NonclassicalDiamond:
		return "$dia"
	case NonclassicalSlash:
		return "$cube"
	default:
		return ""
	}
}

// bracket maps a short form to its bracket token ("[.]", "<.>", "/.\\").
func (s NonclassicalShort) bracket() string {
	switch s {
	case NonclassicalBox:
		return "[.]"
	case NonclassicalDiamond:
		return "<.>"
	case NonclassicalSlash:
		return "/.\\"
	default:
		return ""
	}
}

// NonclassicalParam is a "k := v" long-form parameter, v being a general
// term (any dialect's non-classical operator parameters are annotation-like
// general terms, not typed formulas).
type NonclassicalParam struct {
	Key   string
	Value GeneralTerm
}

// Pretty renders "key := value".
func (p NonclassicalParam) Pretty(sb *strings.Builder) {
	sb.WriteString(p.Key)
	sb.WriteString(" := ")
	p.Value.Pretty(sb)
}

// Equal performs structural comparison.
func (p NonclassicalParam) Equal(o NonclassicalParam) bool {
	return p.Key == o.Key && p.Value.Equal(o.Value)
}

func prettyNonclassicalHead(sb *strings.Builder, name string, index *int, params []NonclassicalParam) {
	sb.WriteByte('{')
	sb.WriteString(name)

	if index != nil || len(params) > 0 {
		sb.WriteByte('(')

		first := true

		if index != nil {
			sb.WriteByte('#')
			sb.WriteString(itoa(*index))
			first = false
		}

		for _, p := range params {
			if !first {
				sb.WriteString(", ")
			}

			p.Pretty(sb)
			first = false
		}

		sb.WriteByte(')')
	}

	sb.WriteByte('}')
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	neg := n < 0
	if neg {
		n = -n
	}

	var buf [20]byte
	i := len(buf)

	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}

	if neg {
		i--
		buf[i] = '-'
	}

	return string(buf[i:])
}

func nonclassicalIndexEqual(a, b *int) bool {
	if (a == nil) != (b == nil) {
		return false
	}

	return a == nil || *a == *b
}

func nonclassicalParamsEqual(a, b []NonclassicalParam) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// THFNonclassical is THF's NHF non-classical operator formula: either a
// short form ([.], <.>, /.\\, with an optional index as [#idx]/<#idx>/
// /#idx\), which is unary and takes its single argument bare (no "@"), or a
// long form ({name(idx?, k:=v...)}), which is polyary and chains its
// arguments via "@ arg". Args always holds the one short-form argument, or
// however many "@ arg" applications followed a long form.
type THFNonclassical struct {
	Short NonclassicalShort
	Name  string // long-form operator name; derived from Short for short forms
	Index *int
	Params []NonclassicalParam
	Args   []THFFormula
}

func (THFNonclassical) thfFormula() {}
func (n THFNonclassical) Pretty(sb *strings.Builder) {
	if n.Short != NonclassicalLongForm && n.Index == nil {
		sb.WriteString(n.Short.bracket())
		sb.WriteString(" (")

		if len(n.Args) > 0 {
			n.Args[0].Pretty(sb)
		}

		sb.WriteByte(')')

		return
	}

	name := n.Name
	if n.Short != NonclassicalLongForm {
		name = n.Short.name()
	}

	prettyNonclassicalHead(sb, name, n.Index, n.Params)

	for _, a := range n.Args {
		sb.WriteString(" @ ")
		a.Pretty(sb)
	}
}
func (n THFNonclassical) Symbols(into SymbolSet) {
	for _, a := range n.Args {
		a.Symbols(into)
	}
}
func effectiveNonclassicalName(short NonclassicalShort, name string) string {
	if short != NonclassicalLongForm {
		return short.name()
	}

	return name
}

func (n THFNonclassical) thfEqual(o THFFormula) bool {
	on, ok := o.(THFNonclassical)
	if !ok || effectiveNonclassicalName(n.Short, n.Name) != effectiveNonclassicalName(on.Short, on.Name) {
		return false
	}

	if !nonclassicalIndexEqual(n.Index, on.Index) || !nonclassicalParamsEqual(n.Params, on.Params) {
		return false
	}

	if len(n.Args) != len(on.Args) {
		return false
	}

	for i := range n.Args {
		if !n.Args[i].thfEqual(on.Args[i]) {
			return false
		}
	}

	return true
}

// TFFNonclassical is TFF's NXF non-classical operator formula, structurally
// identical to THFNonclassical but over TFF terms.
type TFFNonclassical struct {
	Short  NonclassicalShort
	Name   string
	Index  *int
	Params []NonclassicalParam
	Args   []TFFTerm
}

func (TFFNonclassical) tffFormula() {}
func (n TFFNonclassical) Pretty(sb *strings.Builder) {
	if n.Short != NonclassicalLongForm && n.Index == nil {
		sb.WriteString(n.Short.bracket())
		sb.WriteString(" (")

		if len(n.Args) > 0 {
			n.Args[0].Pretty(sb)
		}

		sb.WriteByte(')')

		return
	}

	name := n.Name
	if n.Short != NonclassicalLongForm {
		name = n.Short.name()
	}

	prettyNonclassicalHead(sb, name, n.Index, n.Params)

	for _, a := range n.Args {
		sb.WriteString(" @ ")
		a.Pretty(sb)
	}
}
func (n TFFNonclassical) Symbols(into SymbolSet) {
	for _, a := range n.Args {
		a.Symbols(into)
	}
}
func (n TFFNonclassical) tffFormulaEqual(o TFFFormula) bool {
	on, ok := o.(TFFNonclassical)
	if !ok || effectiveNonclassicalName(n.Short, n.Name) != effectiveNonclassicalName(on.Short, on.Name) {
		return false
	}

	if !nonclassicalIndexEqual(n.Index, on.Index) || !nonclassicalParamsEqual(n.Params, on.Params) {
		return false
	}

	if len(n.Args) != len(on.Args) {
		return false
	}

	for i := range n.Args {
		if !n.Args[i].tffEqual(on.Args[i]) {
			return false
		}
	}

	return true
}
