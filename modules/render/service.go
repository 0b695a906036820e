package render

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/tagline"
	"github.com/dmitrymomot/tagline/handler"
	"github.com/dmitrymomot/tagline/pkg/binder"
	"github.com/dmitrymomot/tagline/pkg/hooks"
	"github.com/dmitrymomot/tagline/pkg/logger"
)

// PreviewTarget is the id of the element the preview patches.
const PreviewTarget = "tagline-preview"

// maxPageBlocks bounds the blocks accepted by a single page render.
const maxPageBlocks = 200

// BlockRenderer renders block instances. *hooks.Registry implements it.
type BlockRenderer interface {
	Render(ctx context.Context, b hooks.Block) string
	RenderAll(ctx context.Context, blocks []hooks.Block) string
}

type RenderService struct {
	blocks       BlockRenderer
	errorHandler handler.ErrorHandler
	log          *slog.Logger
}

func NewRenderService(blocks BlockRenderer, errorHandler handler.ErrorHandler, log *slog.Logger) *RenderService {
	if log == nil {
		log = logger.Discard()
	}
	return &RenderService{
		blocks:       blocks,
		errorHandler: errorHandler,
		log:          log.With(logger.Component("render_service")),
	}
}

func (s *RenderService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/block", handler.Wrap(s.block,
		handler.WithBinder[BlockRequest](binder.JSON()),
		handler.WithErrorHandler[BlockRequest](s.errorHandler),
	))
	r.Post("/variation", handler.Wrap(s.variation,
		handler.WithBinder[VariationRequest](binder.JSON()),
		handler.WithErrorHandler[VariationRequest](s.errorHandler),
	))
	r.Post("/page", handler.Wrap(s.page,
		handler.WithBinder[PageRequest](binder.JSON()),
		handler.WithErrorHandler[PageRequest](s.errorHandler),
	))
	r.Get("/preview", handler.Wrap(s.preview,
		handler.WithErrorHandler[PreviewRequest](s.errorHandler),
	))

	return r
}

// BlockRequest carries raw attributes of the standalone block.
type BlockRequest struct {
	Attributes map[string]any `json:"attributes"`
}

func (s *RenderService) block(ctx handler.Context, req BlockRequest) handler.Response {
	return handler.HTML(s.blocks.Render(ctx, hooks.Block{
		Name:  tagline.BlockName,
		Attrs: req.Attributes,
	}))
}

// VariationRequest carries the rendered site tagline markup and the raw
// attributes of the site tagline block.
type VariationRequest struct {
	Content    string         `json:"content"`
	Attributes map[string]any `json:"attributes"`
}

func (s *RenderService) variation(ctx handler.Context, req VariationRequest) handler.Response {
	return handler.HTML(s.blocks.Render(ctx, hooks.Block{
		Name:      tagline.SiteTaglineBlockName,
		Attrs:     req.Attributes,
		InnerHTML: req.Content,
	}))
}

// PageRequest is a sequence of parsed blocks rendered as one document.
type PageRequest struct {
	Blocks []hooks.Block `json:"blocks"`
}

func (s *RenderService) page(ctx handler.Context, req PageRequest) handler.Response {
	if len(req.Blocks) > maxPageBlocks {
		verr := handler.NewValidationError()
		verr.Add("blocks", "too many blocks")
		return handler.JSONError(verr)
	}
	return handler.HTML(s.blocks.RenderAll(ctx, req.Blocks))
}

// PreviewRequest is empty: preview input comes from datastar signals or the
// query string.
type PreviewRequest struct{}

func (s *RenderService) preview(ctx handler.Context, _ PreviewRequest) handler.Response {
	r := ctx.Request()

	attrs := map[string]any{}
	if handler.IsDataStar(r) {
		if err := handler.ReadSignals(r, &attrs); err != nil {
			return handler.JSONError(err)
		}
	} else {
		q := r.URL.Query()
		list := make([]any, 0, len(q["taglines"]))
		for _, t := range q["taglines"] {
			list = append(list, t)
		}
		attrs["taglines"] = list
		for _, key := range []string{"className", "align", "textAlign"} {
			if v := q.Get(key); v != "" {
				attrs[key] = v
			}
		}
	}

	html := s.blocks.Render(ctx, hooks.Block{Name: tagline.BlockName, Attrs: attrs})
	s.log.DebugContext(ctx, "preview rendered", logger.Block(tagline.BlockName))

	return handler.Templ(previewComponent(html),
		handler.WithTarget("#"+PreviewTarget),
		handler.WithPatchMode(handler.PatchOuter),
	)
}

// previewComponent wraps already escaped block markup in the preview target.
func previewComponent(blockHTML string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="`)
		b.WriteString(PreviewTarget)
		b.WriteString(`">`)
		b.WriteString(blockHTML)
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
