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
package cmd

import "testing"

func TestFindLine(t *testing.T) {
	text := "one\ntwo\nthree"

	cases := []struct {
		lineNum int
		want    string
	}{
		{1, "one"},
		{2, "two"},
		{3, "three"},
		{0, ""},
		{4, ""},
	}

	for _, c := range cases {
		if got := findLine(text, c.lineNum); got != c.want {
			t.Errorf("findLine(_, %d) = %q, want %q", c.lineNum, got, c.want)
		}
	}
}
