// Package hook provides process exit hooks.
//
// A started embedded server registers a hook that stops it when the process
// receives SIGINT or SIGTERM. An explicit Stop deregisters the hook again, so
// a long-lived test process that starts and stops many servers does not
// accumulate hooks.
//
// Hooks run concurrently, like JVM shutdown hooks, and the process exits with
// 128 + the signal number once all of them returned.
//
// # Usage
//
//	h := hook.Default.Register("embedded-server", func() { _ = srv.Stop() })
//	defer h.Deregister()
package hook
