// Package ui is a small server-rendered component toolkit.
//
// Components form a tree rooted at an Application. Every component reports
// its Kind, which is what the embedding code dispatches on when it has to
// turn an arbitrary component into a runnable application:
//
//	Application  a complete UI with a main window
//	Window       a top-level window with one content component
//	Layout       a container (vertical, horizontal, split panel)
//	Leaf         anything else (label, link, button, raw HTML)
//
// # Rendering
//
// Render turns a tree into HTML. Buttons are addressed by the ids an Index
// assigns in walk order; the browser posts those ids back and the server
// runs the matching Button.OnClick listener.
//
// # Usage
//
//	hello := ui.NewLabel("Hello")
//	layout := ui.NewVerticalLayout(hello)
//	layout.SetExpandRatio(hello, 1)
//	app := ui.NewApplication("Demo", ui.NewWindow("", layout))
package ui
