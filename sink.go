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

import "io"

// Sink consumes the stream of render events produced by [Render].
//
// Events arrive in output order. Any error returned from a sink method
// aborts the render immediately and is surfaced to the [Render] caller
// as-is; output already delivered to the sink is not rolled back.
type Sink[A any] interface {
	// Text emits a fragment of text on the current line. The fragment never
	// contains a line break.
	Text(text string) error

	// Break ends the current line. The next line starts with the given
	// number of columns of indentation, which is never negative.
	Break(indent int) error

	// BeginAnnotation and EndAnnotation bracket the output of an annotated
	// subdocument. Every begin is matched by exactly one end, and nested
	// pairs close in LIFO order.
	BeginAnnotation(tag A) error
	EndAnnotation(tag A) error
}

// NewWriter returns a sink that writes plain text to w, ignoring
// annotations. A break is written as a newline followed by the indentation
// as spaces.
func NewWriter[A any](w io.Writer) Sink[A] {
	return &writerSink[A]{w: w}
}

type writerSink[A any] struct {
	w io.Writer
}

func (s *writerSink[A]) Text(text string) error {
	_, err := io.WriteString(s.w, text)
	return err
}

func (s *writerSink[A]) Break(indent int) error {
	return writeBreak(s.w, indent)
}

func (s *writerSink[A]) BeginAnnotation(A) error { return nil }
func (s *writerSink[A]) EndAnnotation(A) error   { return nil }

// spaces is a block of indentation written in chunks, so that a deeply
// indented line does not cost one write call per column.
const spaces = "                                                                "

func writeBreak(w io.Writer, indent int) error {
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return writeSpaces(w, indent)
}

func writeSpaces(w io.Writer, n int) error {
	for n > 0 {
		chunk := min(n, len(spaces))
		if _, err := io.WriteString(w, spaces[:chunk]); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
