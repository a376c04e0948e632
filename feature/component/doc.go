// Package component embeds a single UI component in a server.
//
// Any component can be shown: an application, a window, a layout or a single
// widget. The Wrapper builds the missing levels around it (see Wrap) and,
// when the development header is enabled, puts a locked 20px header with a
// "shutdown" link above layouts and widgets. Clicking it stops the server and
// closes the browser tab.
//
// # Usage
//
//	srv, err := component.New(ui.NewLabel("Hello")).
//	    WithDevelopmentHeader(true).
//	    OpenBrowser(true).
//	    Start()
package component
