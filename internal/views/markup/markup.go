// Package markup provides the small HTML writer shared by the view packages.
package markup

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer writes HTML fragments and remembers the first error.
type Writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

// New returns a Writer bound to a render call.
func New(ctx context.Context, w io.Writer) *Writer {
	return &Writer{ctx: ctx, w: w}
}

// Raw writes s without escaping.
func (hw *Writer) Raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// Text writes s escaped for HTML text or attribute context.
func (hw *Writer) Text(s string) {
	hw.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped.
func (hw *Writer) Attr(name, value string) {
	hw.Raw(" ")
	hw.Raw(name)
	hw.Raw(`="`)
	hw.Text(value)
	hw.Raw(`"`)
}

// AttrIf writes the attribute only when cond holds.
func (hw *Writer) AttrIf(cond bool, name, value string) {
	if cond {
		hw.Attr(name, value)
	}
}

// Component renders c in place.
func (hw *Writer) Component(c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(hw.ctx, hw.w)
}

// Err returns the first write or render error.
func (hw *Writer) Err() error {
	return hw.err
}

// Func builds a templ component from a function writing through a Writer.
func Func(fn func(hw *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := New(ctx, w)
		fn(hw)
		return hw.Err()
	})
}
