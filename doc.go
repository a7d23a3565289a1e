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

// Package pretty is a Wadler-style pretty-printing library: it lays out
// trees of text fragments, optional and forced line breaks, indentation
// scopes, and grouping markers into lines that respect a maximum width.
//
// Documents are built from the combinators on an [Arena], which owns the
// backing storage for every [Doc] derived from it:
//
//	a := pretty.New[any]()
//	ab, _ := a.Text("ab")
//	cd, _ := a.Text("cd")
//	doc := a.Group(a.Concat(ab, a.Concat(a.Line(), cd)))
//
// The function [Render] is the primary entry point. It walks the finished
// document once, deciding for every [Arena.Group] whether its contents fit
// on the current line; groups that fit render "flat", with each [Arena.Line]
// becoming a single space, and groups that do not render "broken", with each
// Line becoming a newline at the current indentation:
//
//	s, _ := pretty.Format(doc, 10) // "ab cd"
//	s, _ = pretty.Format(doc, 3)   // "ab\ncd"
//
// The fit decision looks past the group itself at whatever renders
// immediately after it on the same line, so a group that is narrow in
// isolation still breaks when trailing content would push the line over
// the limit.
//
// Rendering streams primitive events to a [Sink] rather than materializing
// output: [NewWriter] accumulates plain text, [NewANSI] maps [Arena.Annotate]
// tags to terminal colors, and callers can implement Sink themselves for
// anything else. Rendering never mutates the document, so any number of
// concurrent renders may share one arena once building is done.
package pretty
