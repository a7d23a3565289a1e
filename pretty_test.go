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

package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/pretty"
)

// text allocates a text fragment that the test knows to be valid.
func text[A any](t *testing.T, a *pretty.Arena[A], s string) pretty.Doc[A] {
	t.Helper()
	d, err := a.Text(s)
	require.NoError(t, err)
	return d
}

func format[A any](t *testing.T, d pretty.Doc[A], width int) string {
	t.Helper()
	s, err := pretty.Format(d, width)
	require.NoError(t, err)
	return s
}

func TestText(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	a := pretty.New[any]()

	d, err := a.Text("hello")
	assert.NoError(err)
	assert.False(d.IsEmpty())

	d, err = a.Text("")
	assert.NoError(err)
	assert.True(d.IsEmpty())

	for _, invalid := range []string{"\n", "a\nb", "trailing\n", "\r", "a\r\nb"} {
		_, err := a.Text(invalid)
		assert.ErrorIs(err, pretty.ErrInvalidText, "fragment %q", invalid)
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	a := pretty.New[any]()

	assert.True(a.Empty().IsEmpty())

	var zero pretty.Doc[any]
	assert.True(zero.IsEmpty())
	assert.Equal("", format(t, zero, 80))

	// Empty is the unit of Concat.
	d := text(t, a, "x")
	assert.Equal("x", format(t, a.Concat(a.Empty(), d), 80))
	assert.Equal("x", format(t, a.Concat(d, a.Empty()), 80))
}

func TestConcatAssociativity(t *testing.T) {
	t.Parallel()
	a := pretty.New[any]()

	x := text(t, a, "foo")
	y := a.Line()
	z := text(t, a, "barbaz")

	left := a.Group(a.Concat(a.Concat(x, y), z))
	right := a.Group(a.Concat(x, a.Concat(y, z)))

	for _, width := range []int{0, 3, 9, 10, 80} {
		assert.Equal(t,
			format(t, left, width),
			format(t, right, width),
			"width %d", width,
		)
	}
}

func TestNestLaws(t *testing.T) {
	t.Parallel()
	a := pretty.New[any]()

	body := a.Concat(text(t, a, "x"), a.Concat(a.HardLine(), text(t, a, "y")))

	// Nest(0, d) renders identically to d.
	assert.Equal(t, format(t, body, 80), format(t, a.Nest(0, body), 80))

	// Nest(m, Nest(n, d)) renders identically to Nest(m+n, d).
	assert.Equal(t,
		format(t, a.Nest(5, body), 80),
		format(t, a.Nest(2, a.Nest(3, body)), 80),
	)
}

func TestNestClampsAtZero(t *testing.T) {
	t.Parallel()
	a := pretty.New[any]()

	// The outdent exceeds the surrounding indentation, so breaks inside
	// render at column zero rather than a negative column.
	body := a.Concat(text(t, a, "x"), a.Concat(a.HardLine(), text(t, a, "y")))
	d := a.Nest(2, a.Nest(-10, body))
	assert.Equal(t, "x\ny", format(t, d, 80))
}

func TestArenaMismatch(t *testing.T) {
	t.Parallel()

	a := pretty.New[any]()
	b := pretty.New[any]()
	d := text(t, b, "stray")

	assert.Panics(t, func() { a.Group(d) })
	assert.Panics(t, func() { a.Concat(a.Space(), d) })

	// The empty document belongs to every arena.
	assert.NotPanics(t, func() { a.Group(b.Empty()) })
}

func TestDerived(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	a := pretty.New[any]()

	assert.Equal(" ", format(t, a.Space(), 80))

	// A soft line decides for itself, regardless of the enclosing group.
	soft := a.Concat(text(t, a, "aaaa"), a.Concat(a.SoftLine(), text(t, a, "bbbb")))
	assert.Equal("aaaa bbbb", format(t, soft, 9))
	assert.Equal("aaaa\nbbbb", format(t, soft, 8))

	join := a.Join(text(t, a, ", "),
		text(t, a, "a"), text(t, a, "b"), text(t, a, "c"))
	assert.Equal("a, b, c", format(t, join, 80))
	assert.Equal("", format(t, a.Join(text(t, a, ", ")), 80))

	lines := a.Lines(text(t, a, "one"), text(t, a, "two"))
	assert.Equal("one\ntwo", format(t, lines, 80))
}

func TestSharedSubtrees(t *testing.T) {
	t.Parallel()
	a := pretty.New[any]()

	// The same subdocument reachable from several parents renders exactly
	// as if it had been deep-copied.
	shared := a.Group(a.Concat(text(t, a, "ab"), a.Concat(a.Line(), text(t, a, "cd"))))
	both := a.Concat(shared, a.Concat(a.HardLine(), shared))
	assert.Equal(t, "ab cd\nab cd", format(t, both, 80))
	assert.Equal(t, "ab\ncd\nab\ncd", format(t, both, 3))
}
