// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package width measures the number of terminal window cells that a Unicode
// string can be expected to use up.
//
// Characters in the Ambiguous category according to Unicode Standard Annex
// #11 (see http://www.unicode.org/reports/tr11/) are counted as 1 column
// wide, consistent with the recommendation for non-CJK contexts or when the
// context cannot be reliably determined.
//
// This functionality should not be confused with the golang.org/x/text/width
// package, which is about conversion between full- and half-width variants
// of runes as present in East Asian computing.
package width

import "github.com/rivo/uniseg"

// String makes a best-effort guess at the width of s when displayed on a
// terminal, grouping the string into grapheme clusters first so that
// combining marks and emoji sequences are not over-counted.
func String(s string) int {
	return uniseg.StringWidth(s)
}
