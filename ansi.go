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
	"fmt"
	"io"
	"strings"

	"github.com/bufbuild/pretty/internal/ext/slicesx"
)

// Style is the annotation type understood by the [NewANSI] sink: a terminal
// foreground color and weight.
//
// The zero Style is the terminal's default rendition.
type Style struct {
	Color Color
	Bold  bool
}

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Color is a standard terminal foreground color.
type Color byte

// NewANSI returns a sink that writes to w, mapping annotation styles to ANSI
// escape sequences.
//
// The sink keeps a stack of active styles: ending a nested annotation
// restores the style of the enclosing one, and ending the outermost
// annotation resets the terminal.
func NewANSI(w io.Writer) Sink[Style] {
	return &ansiSink{w: w}
}

type ansiSink struct {
	w     io.Writer
	stack []Style
}

func (s *ansiSink) Text(text string) error {
	_, err := io.WriteString(s.w, text)
	return err
}

func (s *ansiSink) Break(indent int) error {
	return writeBreak(s.w, indent)
}

func (s *ansiSink) BeginAnnotation(tag Style) error {
	s.stack = append(s.stack, tag)
	return s.apply(tag)
}

func (s *ansiSink) EndAnnotation(Style) error {
	slicesx.Pop(&s.stack)
	if prev, ok := slicesx.Last(s.stack); ok {
		return s.apply(prev)
	}
	_, err := io.WriteString(s.w, ansiReset)
	return err
}

const ansiReset = "\033[0m"

// apply emits the escape sequence selecting a style. The sequence leads with
// a reset parameter so that the style replaces whatever was active, rather
// than layering on top of it.
func (s *ansiSink) apply(style Style) error {
	var b strings.Builder
	b.WriteString("\033[0")
	if style.Bold {
		b.WriteString(";1")
	}
	if style.Color != ColorDefault {
		fmt.Fprintf(&b, ";%d", 29+style.Color)
	}
	b.WriteByte('m')
	_, err := io.WriteString(s.w, b.String())
	return err
}
