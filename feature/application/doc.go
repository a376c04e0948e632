// Package application serves a complete UI application.
//
// The application is deployed as is: no wrapping and no development header.
//
//	app := ui.NewApplication("Orders", ui.NewWindow("Orders", layout))
//	srv, err := application.New(app).WithHTTPPort(8080).Start()
package application
