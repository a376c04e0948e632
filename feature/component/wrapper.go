package component

import (
	"fmt"

	"embed-ui/core/ui"

	"go.uber.org/zap"
)

// Variant tells how a component was turned into an application.
type Variant int

const (
	// FullApplication means the component already was an application.
	FullApplication Variant = iota
	// WindowWrapped means a window became the main window.
	WindowWrapped
	// LayoutWrapped means a layout became the window content.
	LayoutWrapped
	// GenericWrapped means a widget was placed in a full-size layout first.
	GenericWrapped
)

func (v Variant) String() string {
	switch v {
	case FullApplication:
		return "application"
	case WindowWrapped:
		return "window"
	case LayoutWrapped:
		return "layout"
	case GenericWrapped:
		return "generic"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Wrapped is the application built around a component.
type Wrapped struct {
	Variant     Variant
	Application *ui.Application
}

// Wrapper turns any component into a runnable application.
type Wrapper struct {
	// DevelopmentHeader places a shutdown header above layouts and widgets.
	DevelopmentHeader bool
	// Stopper is stopped by the header's shutdown button.
	Stopper Stopper
	// Logger receives shutdown failures, nil discards them.
	Logger *zap.Logger
}

// Wrap dispatches on the component kind, first match wins:
//
//	application  returned as is
//	window       becomes the main window
//	layout       becomes the window content
//	anything     placed alone in a margined, full-size vertical layout
//	             with expand ratio 1, then wrapped as a layout
//
// A nil component, typed or not, is treated as an empty layout.
func (w Wrapper) Wrap(c ui.Component) *Wrapped {
	if ui.IsNil(c) {
		return w.wrapLayout(fullSizeLayout(), LayoutWrapped)
	}

	switch c.Kind() {
	case ui.KindApplication:
		if app, ok := c.(*ui.Application); ok {
			return &Wrapped{Variant: FullApplication, Application: app}
		}
	case ui.KindWindow:
		if win, ok := c.(*ui.Window); ok {
			return &Wrapped{Variant: WindowWrapped, Application: ui.NewApplication("", win)}
		}
	case ui.KindLayout:
		return w.wrapLayout(c, LayoutWrapped)
	}

	layout := fullSizeLayout()
	layout.AddComponent(c)
	layout.SetExpandRatio(c, 1)
	return w.wrapLayout(layout, GenericWrapped)
}

func (w Wrapper) wrapLayout(layout ui.Component, variant Variant) *Wrapped {
	content := layout
	if w.DevelopmentHeader {
		content = &ui.VerticalSplitPanel{
			First:         NewDevelopmentHeader(w.Stopper, w.Logger),
			Second:        layout,
			SplitPosition: HeaderSplitPosition,
			Locked:        true,
			SizeFull:      true,
		}
	}
	return &Wrapped{
		Variant:     variant,
		Application: ui.NewApplication("", ui.NewWindow("", content)),
	}
}

func fullSizeLayout() *ui.VerticalLayout {
	l := ui.NewVerticalLayout()
	l.Margin = true
	l.SizeFull = true
	return l
}
