// Package config provides the configuration model of an embedded server.
//
// It utilizes Viper for loading property files and environment overrides,
// with defaults declared on struct tags.
//
// # Property Keys
//
//	server.port             requested HTTP port, 0 picks a free one (default 0)
//	server.await            block Start until the server stops (default true)
//	context.path            deployment path (default "")
//	context.rootDir         static content directory (default: a new temp dir)
//	vaadin.widgetSet        client widget set (default none)
//	vaadin.productionMode   disable development aids (default false)
//	vaadin.theme            theme name (default "reindeer")
//	development.header      shutdown header above components (default false)
//	open.browser            open the browser after start (default false)
//	browser.customUrl       page to open instead of the deploy URL
//	log.level, log.format   logger settings
//
// Every key can be overridden from the environment with the EMBED_ prefix,
// e.g. EMBED_SERVER_PORT or EMBED_CONTEXT_ROOTDIR, when loading from a file.
//
// # Port Resolution
//
// Config.Port is the requested port. A server started on port 0 records the
// bound port exactly once with ResolvePort; DeployURL and OpenURL use it from
// then on.
//
// # Usage
//
//	cfg, err := config.LoadFile("embed.properties")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.DeployURL())
package config
