package render

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/tagline"
	"github.com/dmitrymomot/tagline/handler"
	"github.com/dmitrymomot/tagline/pkg/binder"
	"github.com/dmitrymomot/tagline/pkg/legacy"
	"github.com/dmitrymomot/tagline/pkg/logger"
)

// LegacyScanner finds posts that still use the legacy block.
type LegacyScanner interface {
	FindPosts(ctx context.Context) ([]legacy.Post, error)
	Invalidate()
}

type LegacyService struct {
	scanner      LegacyScanner
	errorHandler handler.ErrorHandler
	log          *slog.Logger
}

func NewLegacyService(scanner LegacyScanner, errorHandler handler.ErrorHandler, log *slog.Logger) *LegacyService {
	if log == nil {
		log = logger.Discard()
	}
	return &LegacyService{
		scanner:      scanner,
		errorHandler: errorHandler,
		log:          log.With(logger.Component("legacy_service")),
	}
}

func (s *LegacyService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.list,
		handler.WithErrorHandler[ListLegacyRequest](s.errorHandler),
	))
	r.Post("/migrate", handler.Wrap(s.migrate,
		handler.WithBinder[MigrateRequest](binder.JSON()),
		handler.WithErrorHandler[MigrateRequest](s.errorHandler),
	))

	return r
}

// ListLegacyRequest accepts ?refresh=1 to bypass the scan cache.
type ListLegacyRequest struct{}

func (s *LegacyService) list(ctx handler.Context, _ ListLegacyRequest) handler.Response {
	if ctx.Request().URL.Query().Get("refresh") != "" {
		s.scanner.Invalidate()
	}

	posts, err := s.scanner.FindPosts(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "legacy scan failed", logger.Error(err))
		return handler.JSONError(handler.ErrServiceUnavailable)
	}
	return handler.JSON(posts, handler.WithJSONMeta(map[string]any{"count": len(posts)}))
}

// MigrateRequest carries the attributes of a legacy block.
type MigrateRequest struct {
	Attributes map[string]any `json:"attributes"`
}

func (s *LegacyService) migrate(ctx handler.Context, req MigrateRequest) handler.Response {
	return handler.JSON(map[string]any{
		"name":  tagline.SiteTaglineBlockName,
		"attrs": legacy.Migrate(req.Attributes),
	})
}
