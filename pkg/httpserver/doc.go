// Package httpserver runs the tagline daemon's HTTP surface with graceful
// shutdown.
//
// Server.Run blocks until its context is cancelled, then drains in-flight
// requests within the shutdown timeout. Bind process signals to the context
// with signal.NotifyContext. Invalid options panic when the server is built,
// so misconfiguration fails at startup.
//
//	cfg, err := config.Load[httpserver.Config]()
//	if err != nil {
//		return err
//	}
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness ("ALIVE") and, when dependency checks
// are supplied, readiness ("READY" / "NOT_READY") probes.
package httpserver
