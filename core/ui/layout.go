package ui

import "strconv"

type slot struct {
	component Component
	expand    float64
}

// container holds the ordered children of a layout.
type container struct {
	slots []slot
}

// AddComponent appends c to the layout.
func (l *container) AddComponent(c Component) {
	l.slots = append(l.slots, slot{component: c})
}

// RemoveComponent removes c and reports whether it was present.
func (l *container) RemoveComponent(c Component) bool {
	for i, s := range l.slots {
		if s.component == c {
			l.slots = append(l.slots[:i], l.slots[i+1:]...)
			return true
		}
	}
	return false
}

// SetExpandRatio sets how much of the spare space c receives. It returns
// false when c is not part of the layout.
func (l *container) SetExpandRatio(c Component, ratio float64) bool {
	for i := range l.slots {
		if l.slots[i].component == c {
			l.slots[i].expand = ratio
			return true
		}
	}
	return false
}

// ExpandRatio returns the expand ratio of c, 0 when absent.
func (l *container) ExpandRatio(c Component) float64 {
	for _, s := range l.slots {
		if s.component == c {
			return s.expand
		}
	}
	return 0
}

// Components returns the children in order.
func (l *container) Components() []Component {
	out := make([]Component, 0, len(l.slots))
	for _, s := range l.slots {
		out = append(out, s.component)
	}
	return out
}

// Children implements Container.
func (l *container) Children() []Component {
	return l.Components()
}

// Len returns the number of children.
func (l *container) Len() int {
	return len(l.slots)
}

func (l *container) render(r *Renderer, class string, margin, sizeFull bool) {
	r.Raw(`<div class="ui-layout ` + class)
	if margin {
		r.Raw(` ui-margin`)
	}
	if sizeFull {
		r.Raw(` ui-size-full`)
	}
	r.Raw(`">`)
	for _, s := range l.slots {
		if s.expand > 0 {
			r.Raw(`<div class="ui-slot" style="flex: ` + strconv.FormatFloat(s.expand, 'g', -1, 64) + ` 1 auto">`)
		} else {
			r.Raw(`<div class="ui-slot" style="flex: 0 0 auto">`)
		}
		r.Component(s.component)
		r.Raw(`</div>`)
	}
	r.Raw(`</div>`)
}

// VerticalLayout stacks its children top to bottom.
type VerticalLayout struct {
	container
	Margin   bool
	SizeFull bool
}

// NewVerticalLayout creates a vertical layout holding children.
func NewVerticalLayout(children ...Component) *VerticalLayout {
	l := &VerticalLayout{}
	for _, c := range children {
		l.AddComponent(c)
	}
	return l
}

func (l *VerticalLayout) Kind() Kind { return KindLayout }

func (l *VerticalLayout) Render(r *Renderer) {
	l.render(r, "ui-vertical", l.Margin, l.SizeFull)
}

// HorizontalLayout places its children left to right.
type HorizontalLayout struct {
	container
	Margin   bool
	SizeFull bool
}

// NewHorizontalLayout creates a horizontal layout holding children.
func NewHorizontalLayout(children ...Component) *HorizontalLayout {
	l := &HorizontalLayout{}
	for _, c := range children {
		l.AddComponent(c)
	}
	return l
}

func (l *HorizontalLayout) Kind() Kind { return KindLayout }

func (l *HorizontalLayout) Render(r *Renderer) {
	l.render(r, "ui-horizontal", l.Margin, l.SizeFull)
}

// VerticalSplitPanel shows two components above each other, separated at
// SplitPosition pixels from the top.
type VerticalSplitPanel struct {
	First         Component
	Second        Component
	SplitPosition int
	Locked        bool
	SizeFull      bool
}

func (p *VerticalSplitPanel) Kind() Kind { return KindLayout }

func (p *VerticalSplitPanel) Children() []Component {
	var out []Component
	if p.First != nil {
		out = append(out, p.First)
	}
	if p.Second != nil {
		out = append(out, p.Second)
	}
	return out
}

func (p *VerticalSplitPanel) Render(r *Renderer) {
	r.Raw(`<div class="ui-vsplit`)
	if p.Locked {
		r.Raw(` ui-locked`)
	}
	if p.SizeFull {
		r.Raw(` ui-size-full`)
	}
	r.Raw(`" style="grid-template-rows: ` + strconv.Itoa(p.SplitPosition) + `px 1fr">`)
	r.Raw(`<div class="ui-vsplit-first">`)
	r.Component(p.First)
	r.Raw(`</div><div class="ui-vsplit-second">`)
	r.Component(p.Second)
	r.Raw(`</div></div>`)
}
