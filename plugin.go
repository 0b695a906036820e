package tagline

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/tagline/pkg/attributes"
	"github.com/dmitrymomot/tagline/pkg/hooks"
	"github.com/dmitrymomot/tagline/pkg/logger"
	"github.com/dmitrymomot/tagline/pkg/render"
	"github.com/dmitrymomot/tagline/pkg/taglines"
)

// Block names the plugin attaches to.
const (
	// BlockName is the standalone random tagline block.
	BlockName = "awesome-random-description/random-description"

	// SiteTaglineBlockName is the host's native site tagline block that the
	// variation filters.
	SiteTaglineBlockName = "core/site-tagline"
)

// Host is the set of extension points a block host exposes.
// *hooks.Registry implements it.
type Host interface {
	RegisterBlock(name string, fn hooks.BlockRenderer) error
	AddRenderFilter(name string, fn hooks.RenderFilter)
}

// Plugin renders random taglines. The zero value is not usable; call New.
type Plugin struct {
	selector *taglines.Selector
	log      *slog.Logger
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithSelector overrides the tagline selector. Nil is ignored.
func WithSelector(s *taglines.Selector) Option {
	return func(p *Plugin) {
		if s != nil {
			p.selector = s
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Plugin) {
		if l != nil {
			p.log = l
		}
	}
}

// New returns a Plugin with a default selector and a discarding logger.
func New(opts ...Option) *Plugin {
	p := &Plugin{
		selector: taglines.NewSelector(),
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With(logger.Component("tagline"))
	return p
}

// RenderBlock renders the standalone block from raw, untrusted attributes.
func (p *Plugin) RenderBlock(ctx context.Context, raw map[string]any) (out string) {
	defer p.recover(ctx, "render_block", func() { out = "" })

	attrs := attributes.Sanitize(raw)
	if attrs.Taglines.Empty() {
		p.log.DebugContext(ctx, "block rendered without taglines", logger.Block(BlockName))
	}
	return render.RenderBlock(ctx, attrs, p.selector)
}

// RenderVariation rewrites the markup of the site tagline element when the
// random tagline variation is active. content is returned unchanged otherwise.
func (p *Plugin) RenderVariation(ctx context.Context, content string, raw map[string]any) (out string) {
	defer p.recover(ctx, "render_variation", func() { out = content })

	attrs := attributes.Sanitize(raw)
	if !attrs.IsRandomTagline || attrs.Taglines.Empty() {
		return content
	}

	out = render.Variation(content, true, attrs.Taglines, p.selector)
	if out == content {
		p.log.DebugContext(ctx, "site tagline wrapper not found, content left unchanged",
			logger.Block(SiteTaglineBlockName),
			logger.TaglineCount(attrs.Taglines.Len()),
			slog.Int("content_length", len(content)),
		)
	}
	return out
}

// Register attaches the block renderer and the site tagline filter to host.
func (p *Plugin) Register(host Host) error {
	if err := host.RegisterBlock(BlockName, func(ctx context.Context, attrs map[string]any, _ string) string {
		return p.RenderBlock(ctx, attrs)
	}); err != nil {
		return err
	}

	host.AddRenderFilter(SiteTaglineBlockName, func(ctx context.Context, content string, b hooks.Block) string {
		return p.RenderVariation(ctx, content, b.Attrs)
	})
	return nil
}

// recover keeps a render failure from breaking the page.
func (p *Plugin) recover(ctx context.Context, op string, fallback func()) {
	if r := recover(); r != nil {
		p.log.ErrorContext(ctx, "tagline render panicked",
			slog.String("operation", op),
			slog.Any("panic", r),
		)
		fallback()
	}
}
