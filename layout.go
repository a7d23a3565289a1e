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
	"github.com/bufbuild/pretty/internal/arena"
	"github.com/bufbuild/pretty/internal/ext/slicesx"
)

const (
	modeBreak mode = iota // Lines render as newline plus indentation.
	modeFlat              // Lines render as a single space.
)

// mode is the rendering mode of a pending unit of layout work. It is
// assigned transiently by the engine and is not part of the document.
type mode byte

// cmd is one pending unit of layout work.
type cmd[A any] struct {
	indent int
	mode   mode
	ptr    arena.Pointer[node[A]]
}

// pendingAnnotation records an annotation whose end event is still owed.
type pendingAnnotation[A any] struct {
	// The work-list depth at which the annotated subtree is fully consumed.
	depth int
	tag   A
}

// engine is the layout state machine.
//
// Rather than recursing over the document, the engine processes an explicit
// stack of pending work, so memory is bounded by document breadth rather
// than call-stack depth and deeply nested documents cannot overflow the
// stack. Each step consumes one node and pushes only that node's immediate
// children, making a render linear in the number of nodes.
type engine[A any] struct {
	options Options
	arena   *Arena[A]
	sink    Sink[A]

	// The current output column, tracked so that group decisions know how
	// much of the line is already spent.
	column int

	cmds        []cmd[A]
	fit         []cmd[A] // Scratch space for fits, reused between calls.
	annotations []pendingAnnotation[A]
}

func (e *engine[A]) run(root arena.Pointer[node[A]]) error {
	e.cmds = append(e.cmds, cmd[A]{indent: 0, mode: modeBreak, ptr: root})

	for {
		c, ok := slicesx.Pop(&e.cmds)
		if !ok {
			return nil
		}
		if !c.ptr.Nil() {
			if err := e.step(c); err != nil {
				return err
			}
		}

		// Close every annotation whose subtree has now been fully consumed.
		// The popped annotations nest inside each other, so this emits ends
		// in LIFO order.
		for {
			last, ok := slicesx.Last(e.annotations)
			if !ok || last.depth != len(e.cmds) {
				break
			}
			slicesx.Pop(&e.annotations)
			if err := e.sink.EndAnnotation(last.tag); err != nil {
				return err
			}
		}
	}
}

// step processes a single unit of work, emitting events and pushing the
// node's children as needed.
func (e *engine[A]) step(c cmd[A]) error {
	n := e.arena.nodes.Deref(c.ptr)
	switch n.kind {
	case kindText:
		if err := e.sink.Text(n.text); err != nil {
			return err
		}
		e.column += e.options.Measure(n.text)

	case kindLine:
		if c.mode == modeFlat {
			if err := e.sink.Text(" "); err != nil {
				return err
			}
			e.column++
			return nil
		}
		fallthrough

	case kindHardLine:
		if err := e.sink.Break(c.indent); err != nil {
			return err
		}
		e.column = c.indent

	case kindConcat:
		e.cmds = append(e.cmds, cmd[A]{c.indent, c.mode, n.right})
		// Concatenations lean left, so walking the left spine here saves a
		// push immediately followed by a pop for every link.
		left := n.left
		for {
			l := e.arena.nodes.Deref(left)
			if l.kind != kindConcat {
				break
			}
			e.cmds = append(e.cmds, cmd[A]{c.indent, c.mode, l.right})
			left = l.left
		}
		e.cmds = append(e.cmds, cmd[A]{c.indent, c.mode, left})

	case kindNest:
		// An outdent past column zero clamps; breaks never indent
		// negatively.
		e.cmds = append(e.cmds, cmd[A]{max(c.indent+n.cols, 0), c.mode, n.left})

	case kindGroup:
		// A flat ancestor forces the whole subtree flat: the fit check that
		// admitted it already accounted for everything inside.
		child := cmd[A]{indent: c.indent, mode: modeFlat, ptr: n.left}
		if c.mode == modeBreak && !e.fits(e.options.MaxWidth-e.column, child) {
			child.mode = modeBreak
		}
		e.cmds = append(e.cmds, child)

	case kindAnnotate:
		if err := e.sink.BeginAnnotation(n.tag); err != nil {
			return err
		}
		e.annotations = append(e.annotations, pendingAnnotation[A]{depth: len(e.cmds), tag: n.tag})
		e.cmds = append(e.cmds, cmd[A]{c.indent, c.mode, n.left})
	}
	return nil
}

// fits reports whether candidate, rendered in the mode it carries, followed
// by everything still pending on the work list, stays within the remaining
// column budget up to the next line break.
//
// Scanning the pending work (and not just the candidate) is what makes the
// decision correct: a group that is narrow by itself must still break when
// non-breaking content right after it would overflow the line, while content
// past the next break can never count against it. The scan stops at the
// first break or the first overflow, so its cost is bounded by the budget.
func (e *engine[A]) fits(remaining int, candidate cmd[A]) bool {
	e.fit = append(e.fit[:0], candidate)

	// Index into e.cmds of the next pending item to consult once the
	// candidate is exhausted. The work list is a stack, so pending items
	// are scanned from the top down.
	next := len(e.cmds)

	for remaining >= 0 {
		c, ok := slicesx.Pop(&e.fit)
		if !ok {
			if next == 0 {
				// End of the document settles the line.
				return true
			}
			next--
			c = e.cmds[next]
		}
		if c.ptr.Nil() {
			continue
		}

		n := e.arena.nodes.Deref(c.ptr)
		switch n.kind {
		case kindText:
			remaining -= e.options.Measure(n.text)

		case kindLine:
			if c.mode == modeBreak {
				// A break settles the line; everything before it fit.
				return true
			}
			remaining--

		case kindHardLine:
			if c.mode == modeFlat {
				// A hard line can never render flat.
				return false
			}
			return true

		case kindConcat:
			e.fit = append(e.fit, cmd[A]{c.indent, c.mode, n.right})
			left := n.left
			for {
				l := e.arena.nodes.Deref(left)
				if l.kind != kindConcat {
					break
				}
				e.fit = append(e.fit, cmd[A]{c.indent, c.mode, l.right})
				left = l.left
			}
			e.fit = append(e.fit, cmd[A]{c.indent, c.mode, left})

		case kindNest:
			e.fit = append(e.fit, cmd[A]{max(c.indent+n.cols, 0), c.mode, n.left})

		case kindGroup, kindAnnotate:
			// Groups inherit the scanning mode: inside the flat candidate
			// they must render flat, while pending groups keep whatever
			// mode they were queued with. Annotations have no layout
			// effect.
			e.fit = append(e.fit, cmd[A]{c.indent, c.mode, n.left})
		}
	}
	return false
}
