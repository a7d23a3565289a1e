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

import (
	"io"
	"strings"
)

// Render lays out d within the given column budget and streams the result to
// sink as render events.
//
// Rendering is deterministic and purely in-process: the only error Render
// can return is one produced by the sink, which aborts the render at the
// point of failure.
func Render[A any](d Doc[A], maxWidth int, sink Sink[A]) error {
	return RenderOptions(d, Options{MaxWidth: maxWidth}, sink)
}

// RenderOptions is like [Render], with full control over options.
func RenderOptions[A any](d Doc[A], options Options, sink Sink[A]) error {
	if d.ptr.Nil() {
		// The empty document produces no events at all.
		return nil
	}
	e := &engine[A]{
		options: options.WithDefaults(),
		arena:   d.arena,
		sink:    sink,
	}
	return e.run(d.ptr)
}

// Format renders d to a string with the default options.
func Format[A any](d Doc[A], maxWidth int) (string, error) {
	var out strings.Builder
	if err := Render(d, maxWidth, NewWriter[A](&out)); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Write renders d to w with the default options, as plain text.
func Write[A any](d Doc[A], maxWidth int, w io.Writer) error {
	return Render(d, maxWidth, NewWriter[A](w))
}
