// Package browser opens URLs in the user's browser.
//
// The embedded server calls a Launcher once it is started and the OpenBrowser
// option is set. System picks the platform opener (open on macOS, rundll32 on
// Windows, xdg-open and friends elsewhere). Tests and headless callers can
// substitute a LauncherFunc.
package browser
