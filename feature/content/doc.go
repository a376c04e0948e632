// Package content serves a UI application over HTTP.
//
// It is the feature both deployment modes register: the single-component mode
// with the application it synthesised, the application mode with the
// caller's application.
//
// # Routes
//
// Relative to the context path:
//   - GET  /                 renders the page (?debug adds a configuration panel
//     outside production mode)
//   - POST /_ui/click/:id    runs a button's click listener; requires the
//     per-server token in the X-UI-Token header
//   - GET  /_ui/docs/*       Swagger UI for these routes, outside production mode
//
// # Click Protocol
//
// The page embeds the server token in a meta tag and a small script posts
// clicks on elements carrying data-ui-click. The JSON answer asks the browser
// to reload, to close the tab, and/or to show notifications.
package content
