package ui

import (
	"fmt"
	"reflect"
)

// Kind classifies a component for wrapping decisions.
type Kind int

const (
	// KindLeaf is any widget that is not a container (label, button, ...).
	KindLeaf Kind = iota
	// KindLayout is a container arranging other components.
	KindLayout
	// KindWindow is a top-level window holding one content component.
	KindWindow
	// KindApplication is a complete application with a main window.
	KindApplication
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindLayout:
		return "layout"
	case KindWindow:
		return "window"
	case KindApplication:
		return "application"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Component is a node of the UI tree. Implementations must be pointer types,
// components are compared by identity.
type Component interface {
	Kind() Kind
	Render(r *Renderer)
}

// Container is a component with children.
type Container interface {
	Component
	Children() []Component
}

// IsNil reports whether c is nil or a nil pointer held in the interface.
func IsNil(c Component) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Walk visits c and its descendants depth-first, parents before children.
func Walk(c Component, fn func(Component)) {
	if IsNil(c) {
		return
	}
	fn(c)
	if container, ok := c.(Container); ok {
		for _, child := range container.Children() {
			Walk(child, fn)
		}
	}
}
