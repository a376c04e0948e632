package ui

import (
	"html"
	"strconv"
	"strings"
)

// Index assigns stable ids to the buttons of a tree, in walk order.
type Index struct {
	ids     map[*Button]string
	buttons map[string]*Button
}

// NewIndex indexes the buttons reachable from root.
func NewIndex(root Component) *Index {
	ix := &Index{
		ids:     make(map[*Button]string),
		buttons: make(map[string]*Button),
	}
	Walk(root, func(c Component) {
		b, ok := c.(*Button)
		if !ok {
			return
		}
		if _, seen := ix.ids[b]; seen {
			return
		}
		id := "b" + strconv.Itoa(len(ix.ids)+1)
		ix.ids[b] = id
		ix.buttons[id] = b
	})
	return ix
}

// ID returns the id of b, "" when b is not indexed.
func (ix *Index) ID(b *Button) string {
	if ix == nil {
		return ""
	}
	return ix.ids[b]
}

// Button returns the button with the given id.
func (ix *Index) Button(id string) (*Button, bool) {
	if ix == nil {
		return nil, false
	}
	b, ok := ix.buttons[id]
	return b, ok
}

// Len returns the number of indexed buttons.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.ids)
}

// Renderer accumulates the HTML of a component tree.
type Renderer struct {
	b     strings.Builder
	index *Index
}

// NewRenderer creates a renderer resolving button ids through index.
func NewRenderer(index *Index) *Renderer {
	return &Renderer{index: index}
}

// Text writes escaped text.
func (r *Renderer) Text(s string) {
	r.b.WriteString(html.EscapeString(s))
}

// Raw writes markup unescaped.
func (r *Renderer) Raw(s string) {
	r.b.WriteString(s)
}

// Component renders c, nil renders nothing.
func (r *Renderer) Component(c Component) {
	if c == nil {
		return
	}
	c.Render(r)
}

// ButtonID returns the id of b in the renderer's index.
func (r *Renderer) ButtonID(b *Button) string {
	return r.index.ID(b)
}

// String returns the markup written so far.
func (r *Renderer) String() string {
	return r.b.String()
}

// Render renders c with the given index.
func Render(c Component, index *Index) string {
	r := NewRenderer(index)
	r.Component(c)
	return r.String()
}
