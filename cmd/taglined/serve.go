package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/tagline"
	"github.com/dmitrymomot/tagline/handler"
	"github.com/dmitrymomot/tagline/modules/render"
	"github.com/dmitrymomot/tagline/pkg/clientip"
	"github.com/dmitrymomot/tagline/pkg/config"
	"github.com/dmitrymomot/tagline/pkg/environment"
	"github.com/dmitrymomot/tagline/pkg/hooks"
	"github.com/dmitrymomot/tagline/pkg/httpserver"
	"github.com/dmitrymomot/tagline/pkg/legacy"
	"github.com/dmitrymomot/tagline/pkg/logger"
	"github.com/dmitrymomot/tagline/pkg/ratelimiter"
	"github.com/dmitrymomot/tagline/pkg/requestid"
)

func newServeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render server",
		Long:  `Serve block, variation, preview, import/export and legacy endpoints until interrupted.`,
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	c.Flags().String("env-file", "", "Load variables from this .env file first")
	return c
}

func runServe(c *cobra.Command, _ []string) error {
	var files []string
	if path, _ := c.Flags().GetString("env-file"); path != "" {
		files = append(files, path)
	}
	if err := config.LoadEnv(files...); err != nil {
		return err
	}

	cfg, err := config.Load[appConfig]()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, c.ErrOrStderr())
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	ctx := c.Context()
	h, cleanup, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, h)
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithOutput(w),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	}
	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

// newApp wires the plugin, the block registry and the optional legacy store
// into the HTTP router. cleanup releases the store.
func newApp(ctx context.Context, cfg appConfig, log *slog.Logger) (http.Handler, func(), error) {
	registry := hooks.NewRegistry()
	plugin := tagline.New(tagline.WithLogger(log))
	if err := plugin.Register(registry); err != nil {
		return nil, nil, fmt.Errorf("register plugin: %w", err)
	}

	resolver, err := clientip.NewResolver(cfg.TrustedProxies...)
	if err != nil {
		return nil, nil, err
	}

	errorHandler := handler.NewErrorHandler(log)
	opts := render.RouterOptions{
		Render:      render.NewRenderService(registry, errorHandler, log),
		Taglines:    render.NewTaglineService(errorHandler, log),
		Environment: environment.Parse(cfg.Env),
		Logger:      log,
		ClientIP:    resolver.GetIP,
	}

	if cfg.RateLimit.Enabled() {
		bucket, err := ratelimiter.NewBucket(cfg.RateLimit)
		if err != nil {
			return nil, nil, err
		}
		opts.RateLimit = ratelimiter.Middleware(bucket, resolver.GetIP, log)
	}

	cleanup := func() {}
	if cfg.LegacyDSN != "" {
		db, err := legacy.Open(ctx, cfg.LegacyDSN)
		if err != nil {
			return nil, nil, err
		}
		cleanup = closeDB(db, log)

		scanner := legacy.NewScanner(db,
			legacy.WithCacheTTL(cfg.legacyCacheTTL()),
			legacy.WithLogger(log),
		)
		opts.Legacy = render.NewLegacyService(scanner, errorHandler, log)
		opts.ReadinessChecks = append(opts.ReadinessChecks, scanner.Ping)

		if cfg.LegacyRescan != "" {
			stop, err := scanner.ScheduleRefresh(cfg.LegacyRescan, cfg.LegacyRescanTimeout)
			if err != nil {
				cleanup()
				return nil, nil, err
			}
			closeStore := cleanup
			cleanup = func() {
				stop()
				closeStore()
			}
		}
	}

	return render.Router(opts), cleanup, nil
}

func closeDB(db *sql.DB, log *slog.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close legacy store", logger.Error(err))
		}
	}
}
