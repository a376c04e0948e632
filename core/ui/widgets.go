package ui

// ButtonStyleLink renders a button as a hyperlink.
const ButtonStyleLink = "link"

// Label shows plain text.
type Label struct {
	Text string
}

// NewLabel creates a label.
func NewLabel(text string) *Label {
	return &Label{Text: text}
}

func (l *Label) Kind() Kind { return KindLeaf }

func (l *Label) Render(r *Renderer) {
	r.Raw(`<div class="ui-label">`)
	r.Text(l.Text)
	r.Raw(`</div>`)
}

// HTML shows trusted markup as is.
type HTML struct {
	Content string
}

func (h *HTML) Kind() Kind { return KindLeaf }

func (h *HTML) Render(r *Renderer) {
	r.Raw(`<div class="ui-html">`)
	r.Raw(h.Content)
	r.Raw(`</div>`)
}

// Link navigates to Href.
type Link struct {
	Caption string
	Href    string
}

func (l *Link) Kind() Kind { return KindLeaf }

func (l *Link) Render(r *Renderer) {
	r.Raw(`<a class="ui-link" href="`)
	r.Text(l.Href)
	r.Raw(`">`)
	r.Text(l.Caption)
	r.Raw(`</a>`)
}

// Button runs OnClick when pressed in the browser.
type Button struct {
	Caption     string
	Description string
	Style       string
	OnClick     func(e *Event)
}

// NewButton creates a button with a click listener.
func NewButton(caption string, onClick func(e *Event)) *Button {
	return &Button{Caption: caption, OnClick: onClick}
}

// Click runs the listener and returns the resulting event.
func (b *Button) Click() *Event {
	e := &Event{Button: b}
	if b.OnClick != nil {
		b.OnClick(e)
	}
	return e
}

func (b *Button) Kind() Kind { return KindLeaf }

func (b *Button) Render(r *Renderer) {
	class := "ui-button"
	if b.Style != "" {
		class += " ui-button-" + b.Style
	}
	r.Raw(`<button type="button" class="` + class + `"`)
	if id := r.ButtonID(b); id != "" {
		r.Raw(` data-ui-click="` + id + `"`)
	} else {
		r.Raw(` disabled`)
	}
	if b.Description != "" {
		r.Raw(` title="`)
		r.Text(b.Description)
		r.Raw(`"`)
	}
	r.Raw(`>`)
	r.Text(b.Caption)
	r.Raw(`</button>`)
}

// Event is passed to click listeners. Listeners use it to send instructions
// back to the browser.
type Event struct {
	Button *Button

	closeView     bool
	notifications []string
}

// CloseView asks the browser to close the current tab.
func (e *Event) CloseView() {
	e.closeView = true
}

// ClosesView reports whether CloseView was called.
func (e *Event) ClosesView() bool {
	return e.closeView
}

// Notify shows msg to the user.
func (e *Event) Notify(msg string) {
	e.notifications = append(e.notifications, msg)
}

// Notifications returns the messages queued by Notify.
func (e *Event) Notifications() []string {
	return e.notifications
}
