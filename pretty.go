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
	"strings"

	"github.com/bufbuild/pretty/internal/arena"
)

const (
	kindNone kind = iota //nolint:unused

	kindText     // A literal fragment; never contains a line break.
	kindLine     // A space when flat, a newline when broken.
	kindHardLine // Always a newline; never fits flat.
	kindConcat   // Sequential composition of two documents.
	kindNest     // Adjusts the indentation of breaks underneath.
	kindGroup    // A flat-vs-broken layout decision boundary.
	kindAnnotate // Carries an opaque tag through to the sink.
)

// kind is a kind of document [node].
type kind byte

// node is a single document node, stored on an [Arena].
//
// The child of a Nest, Group, or Annotate node is stored in left.
type node[A any] struct {
	kind kind
	cols int    // kindNest: indentation delta, possibly negative.
	text string // kindText.
	tag  A      // kindAnnotate.

	left, right arena.Pointer[node[A]]
}

// Arena owns the backing storage for a set of documents.
//
// All combinators live on the arena, and every [Doc] they return is a
// lightweight handle into it, so composing documents never copies subtrees
// and the same subtree may be reachable from many parents. The arena must
// outlive every handle derived from it.
//
// Building is a single-writer phase: an arena must not be populated from
// multiple goroutines. Once building is done the arena is read-only and any
// number of concurrent [Render] calls may share it.
//
// The type parameter A is the annotation tag type; see [Arena.Annotate].
// A zero Arena is empty and ready to use.
type Arena[A any] struct {
	nodes arena.Arena[node[A]]

	// Memoized payload-free singletons.
	line, hardline, space arena.Pointer[node[A]]
}

// New returns a new, empty document arena.
func New[A any]() *Arena[A] {
	return new(Arena[A])
}

// Doc is an immutable document: a handle to a tree of text fragments,
// breaks, indentation scopes, and groups owned by an [Arena].
//
// The zero Doc is the empty document, which renders as nothing.
type Doc[A any] struct {
	arena *Arena[A]
	ptr   arena.Pointer[node[A]]
}

// IsEmpty reports whether this document is the empty document.
func (d Doc[A]) IsEmpty() bool {
	return d.ptr.Nil()
}

// Empty returns the empty document.
func (a *Arena[A]) Empty() Doc[A] {
	return Doc[A]{}
}

// Text returns a document rendering the given fragment exactly.
//
// The fragment must not contain a line-break character; if it does, Text
// returns an error wrapping [ErrInvalidText]. Use [Arena.Line] or
// [Arena.HardLine] to break lines.
func (a *Arena[A]) Text(text string) (Doc[A], error) {
	if strings.ContainsAny(text, "\n\r") {
		return Doc[A]{}, fmt.Errorf("%w: %q", ErrInvalidText, text)
	}
	if text == "" {
		return Doc[A]{}, nil
	}
	return a.doc(node[A]{kind: kindText, text: text}), nil
}

// Line returns an optional break: it renders as a single space inside a flat
// group and as a newline at the current indentation inside a broken one.
func (a *Arena[A]) Line() Doc[A] {
	if a.line.Nil() {
		a.line = a.nodes.New(node[A]{kind: kindLine})
	}
	return Doc[A]{arena: a, ptr: a.line}
}

// HardLine returns an unconditional break. It always renders as a newline at
// the current indentation, and any group containing one renders broken no
// matter the width budget.
func (a *Arena[A]) HardLine() Doc[A] {
	if a.hardline.Nil() {
		a.hardline = a.nodes.New(node[A]{kind: kindHardLine})
	}
	return Doc[A]{arena: a, ptr: a.hardline}
}

// Concat returns the sequential composition of two documents: left renders
// and then right.
//
// Concat is associative: Concat(Concat(x, y), z) renders identically to
// Concat(x, Concat(y, z)).
func (a *Arena[A]) Concat(left, right Doc[A]) Doc[A] {
	a.check(left)
	a.check(right)
	switch {
	case left.ptr.Nil():
		return right
	case right.ptr.Nil():
		return left
	}
	return a.doc(node[A]{kind: kindConcat, left: left.ptr, right: right.ptr})
}

// Nest increases the indentation used by breaks inside d by the given number
// of columns. It has no effect on flat renderings.
//
// cols may be negative, representing an outdent; the effective indentation
// of a break is clamped at zero, never negative.
func (a *Arena[A]) Nest(cols int, d Doc[A]) Doc[A] {
	a.check(d)
	if cols == 0 || d.ptr.Nil() {
		return d
	}
	return a.doc(node[A]{kind: kindNest, cols: cols, left: d.ptr})
}

// Group marks a layout decision boundary around d.
//
// The layout engine renders all of d flat if doing so would keep the current
// line within the width budget, counting whatever renders immediately after
// the group on the same line; otherwise all of d renders broken. Groups
// nested inside a flat group render flat unconditionally.
func (a *Arena[A]) Group(d Doc[A]) Doc[A] {
	a.check(d)
	if d.ptr.Nil() {
		return d
	}
	return a.doc(node[A]{kind: kindGroup, left: d.ptr})
}

// Annotate attaches an opaque tag to d, delivered to the sink as a
// begin/end event pair around d's output. Annotations have no effect on
// layout.
//
// The pair is emitted even if d renders as nothing.
func (a *Arena[A]) Annotate(tag A, d Doc[A]) Doc[A] {
	a.check(d)
	return a.doc(node[A]{kind: kindAnnotate, tag: tag, left: d.ptr})
}

// Space returns a document rendering a single space, equivalent to
// Text(" ").
func (a *Arena[A]) Space() Doc[A] {
	if a.space.Nil() {
		a.space = a.nodes.New(node[A]{kind: kindText, text: " "})
	}
	return Doc[A]{arena: a, ptr: a.space}
}

// SoftLine returns a break that stands alone in its own group: it renders as
// a space when the rest of the line fits and as a newline when it does not,
// independent of any enclosing group's decision.
func (a *Arena[A]) SoftLine() Doc[A] {
	return a.Group(a.Line())
}

// Join concatenates the given documents with sep between each adjacent pair.
func (a *Arena[A]) Join(sep Doc[A], docs ...Doc[A]) Doc[A] {
	var out Doc[A]
	for i, d := range docs {
		if i > 0 {
			out = a.Concat(out, sep)
		}
		out = a.Concat(out, d)
	}
	return out
}

// Lines concatenates the given documents with an unconditional break between
// each adjacent pair.
func (a *Arena[A]) Lines(docs ...Doc[A]) Doc[A] {
	return a.Join(a.HardLine(), docs...)
}

// doc allocates a node and wraps its pointer in a handle.
func (a *Arena[A]) doc(n node[A]) Doc[A] {
	return Doc[A]{arena: a, ptr: a.nodes.New(n)}
}

// check panics if d was allocated by a different arena.
//
// The empty document belongs to every arena.
func (a *Arena[A]) check(d Doc[A]) {
	if d.arena != nil && d.arena != a {
		panic("pretty: document used with an arena other than the one that allocated it")
	}
}
