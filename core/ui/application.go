package ui

// Application is the root of a UI: a title, an optional theme and a main window.
type Application struct {
	// Title is used as the page title.
	Title string
	// Theme overrides the configured theme when set.
	Theme string

	main *Window
}

// NewApplication creates an application showing main.
func NewApplication(title string, main *Window) *Application {
	return &Application{Title: title, main: main}
}

// MainWindow returns the window shown by the application.
func (a *Application) MainWindow() *Window {
	return a.main
}

// SetMainWindow replaces the main window.
func (a *Application) SetMainWindow(w *Window) {
	a.main = w
}

func (a *Application) Kind() Kind { return KindApplication }

func (a *Application) Children() []Component {
	if a.main == nil {
		return nil
	}
	return []Component{a.main}
}

func (a *Application) Render(r *Renderer) {
	if a.main != nil {
		r.Component(a.main)
	}
}

// Window is a top-level window with a caption and one content component.
type Window struct {
	Caption string

	content Component
}

// NewWindow creates a window holding content.
func NewWindow(caption string, content Component) *Window {
	return &Window{Caption: caption, content: content}
}

// Content returns the window content.
func (w *Window) Content() Component {
	return w.content
}

// SetContent replaces the window content.
func (w *Window) SetContent(c Component) {
	w.content = c
}

func (w *Window) Kind() Kind { return KindWindow }

func (w *Window) Children() []Component {
	if w.content == nil {
		return nil
	}
	return []Component{w.content}
}

func (w *Window) Render(r *Renderer) {
	r.Raw(`<div class="ui-window">`)
	if w.Caption != "" {
		r.Raw(`<div class="ui-window-caption">`)
		r.Text(w.Caption)
		r.Raw(`</div>`)
	}
	r.Raw(`<div class="ui-window-content">`)
	r.Component(w.content)
	r.Raw(`</div></div>`)
}
