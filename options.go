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

package pretty

import "github.com/bufbuild/pretty/internal/width"

// Options specifies configuration for [RenderOptions].
type Options struct {
	// MaxWidth is the column budget for each line. A width of zero is legal
	// and means nothing fits, so every group renders broken.
	MaxWidth int

	// Measure reports the display width of a text fragment in columns.
	//
	// Defaults to a grapheme-aware measure that counts East Asian wide
	// characters as two columns. Substitute it when rendering for a target
	// with different width rules.
	Measure func(text string) int
}

// WithDefaults replaces any unset fields of an Options which specify a
// default value with that default value.
func (o Options) WithDefaults() Options {
	if o.Measure == nil {
		o.Measure = width.String
	}
	return o
}
