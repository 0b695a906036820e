package render

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/tagline/handler"
	"github.com/dmitrymomot/tagline/pkg/binder"
	"github.com/dmitrymomot/tagline/pkg/logger"
	"github.com/dmitrymomot/tagline/pkg/taglines"
)

// ExportFilename is the name suggested for exported lists.
const ExportFilename = "taglines.csv"

type TaglineService struct {
	errorHandler handler.ErrorHandler
	log          *slog.Logger
}

func NewTaglineService(errorHandler handler.ErrorHandler, log *slog.Logger) *TaglineService {
	if log == nil {
		log = logger.Discard()
	}
	return &TaglineService{
		errorHandler: errorHandler,
		log:          log.With(logger.Component("tagline_service")),
	}
}

func (s *TaglineService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/import", handler.Wrap(s.importList,
		handler.WithBinder[ImportRequest](bindImport),
		handler.WithErrorHandler[ImportRequest](s.errorHandler),
	))
	r.Get("/export", handler.Wrap(s.exportList,
		handler.WithErrorHandler[ExportRequest](s.errorHandler),
	))

	return r
}

// ImportRequest is either a JSON body with pasted text or a raw CSV upload.
type ImportRequest struct {
	Text           string `json:"text"`
	binder.RawBody `json:"-"`
}

// bindImport dispatches on the media type: text/csv bodies are kept raw,
// everything else must be JSON.
func bindImport(r *http.Request, v any) error {
	if binder.MediaType(r) == "text/csv" {
		return binder.Raw(binder.DefaultMaxJSONSize, "text/csv")(r, v)
	}
	return binder.JSON()(r, v)
}

func (s *TaglineService) importList(ctx handler.Context, req ImportRequest) handler.Response {
	var (
		list  taglines.List
		err   error
		field = "text"
	)
	if req.ContentType == "text/csv" {
		field = "csv"
		list, err = taglines.ParseCSV(bytes.NewReader(req.Data))
	} else {
		list, err = taglines.ParseText(req.Text)
	}
	if err != nil {
		return handler.JSONError(importError(field, err))
	}

	s.log.InfoContext(ctx, "taglines imported",
		slog.String("source", field),
		logger.TaglineCount(list.Len()),
	)
	return handler.JSON(list.Strings(), handler.WithJSONMeta(map[string]any{"count": list.Len()}))
}

// importError turns import failures into field validation errors.
func importError(field string, err error) error {
	verr := handler.NewValidationError()
	switch {
	case errors.Is(err, taglines.ErrInputTooLarge):
		verr.Add(field, "input is too large")
	case errors.Is(err, taglines.ErrNoTaglines):
		verr.Add(field, "no valid taglines found")
	case errors.Is(err, taglines.ErrInvalidCSV):
		verr.Add(field, "invalid csv")
	default:
		return err
	}
	return verr
}

// ExportRequest is empty: taglines come from repeated query values.
type ExportRequest struct{}

func (s *TaglineService) exportList(ctx handler.Context, _ ExportRequest) handler.Response {
	list := taglines.Sanitize(ctx.Request().URL.Query()["taglines"])
	return handler.CSV(ExportFilename, func(w io.Writer) error {
		return taglines.WriteCSV(w, list)
	})
}
