// Package server is the embedded HTTP server lifecycle engine.
//
// A Server owns one configuration and one listener. Its lifecycle is linear:
//
//	created -> configured -> started -> stopped
//
// # Start
//
// Start configures the Fiber application exactly once (RayID and request
// logging middleware, the static content root under /static, and the
// features of the Deployment), binds the requested port, resolves it when 0
// was requested, serves in a background goroutine, registers an exit hook,
// optionally opens the browser and optionally blocks until the server stops.
//
// # Stop
//
// Stop gracefully shuts the application down and always removes the exit
// hook. Stopping a server that is not running returns ErrNotStarted and
// leaves every process-wide state alone, so tests can start and stop many
// servers in one process.
//
// # Usage
//
//	srv := server.New(cfg, deployment, server.WithLogger(log))
//	if err := srv.Start(); err != nil {
//	    return err
//	}
//	defer srv.Stop()
//	fmt.Println(srv.DeployURL())
package server
