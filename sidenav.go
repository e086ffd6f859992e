// Package sidenav renders a collapsible multi-level sidebar navigation
// panel from a declarative menu configuration. The menu is parsed and
// validated up front; rendering itself is pure and cannot fail, so a
// renderer can be shared freely across requests.
package sidenav

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	g "maragu.dev/gomponents"

	navauth "github.com/xraph/sidenav/auth"
	"github.com/xraph/sidenav/menu"
	"github.com/xraph/sidenav/resolve"
	"github.com/xraph/sidenav/ui"
)

// Renderer turns a validated menu configuration into navigation markup.
// It is immutable after construction and safe for concurrent use.
type Renderer struct {
	cfg     *Config
	menu    menu.Config
	routes  resolve.RouteResolver
	assets  resolve.AssetResolver
	logger  Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithConfig applies configuration options to the renderer's config.
func WithConfig(opts ...ConfigOption) Option {
	return func(r *Renderer) {
		for _, opt := range opts {
			opt(r.cfg)
		}
	}
}

// WithRoutes sets the resolver entry hrefs are passed through. Defaults
// to the identity resolver.
func WithRoutes(routes resolve.RouteResolver) Option {
	return func(r *Renderer) {
		r.routes = routes
	}
}

// WithAssets sets the resolver image references are passed through.
// Defaults to a static prefix built from the configured assets path.
func WithAssets(assets resolve.AssetResolver) Option {
	return func(r *Renderer) {
		r.assets = assets
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log Logger) Option {
	return func(r *Renderer) {
		r.logger = log
	}
}

// WithTracer sets the tracer used for render spans. Defaults to the
// global tracer provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Renderer) {
		r.tracer = tracer
	}
}

// New validates the menu and the configuration and builds a renderer.
// All schema and configuration problems surface here, never during
// rendering.
func New(menuCfg menu.Config, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg:  DefaultConfig(),
		menu: menuCfg,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := r.menu.Validate(); err != nil {
		return nil, err
	}

	if r.routes == nil {
		r.routes = resolve.Identity()
	}
	if r.assets == nil {
		r.assets = resolve.StaticPrefix(r.cfg.AssetsPath)
	}
	if r.logger == nil {
		r.logger = NewNoopLogger()
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer("github.com/xraph/sidenav")
	}
	if r.cfg.EnableMetrics && r.metrics == nil {
		r.metrics = NewMetrics(nil)
	}

	return r, nil
}

// Sidebar renders the navigation panel alone, for hosts that embed it in
// their own document. The user selects the header variant; nil renders
// the anonymous one.
func (r *Renderer) Sidebar(user *navauth.UserInfo) g.Node {
	return ui.Shell(r.view(user, nil))
}

// Page renders a complete HTML document: the panel, the toggle script,
// and the given content in the content area.
func (r *Renderer) Page(user *navauth.UserInfo, content g.Node) g.Node {
	return ui.Page(r.view(user, content))
}

// WritePage renders a complete page to w, recording a trace span and
// render metrics along the way.
func (r *Renderer) WritePage(ctx context.Context, w io.Writer, user *navauth.UserInfo, content g.Node) error {
	return r.write(ctx, w, "page", r.Page(user, content))
}

// WriteSidebar renders the panel alone to w, instrumented like WritePage.
func (r *Renderer) WriteSidebar(ctx context.Context, w io.Writer, user *navauth.UserInfo) error {
	return r.write(ctx, w, "sidebar", r.Sidebar(user))
}

// Component adapts a full page render to a templ component, so the panel
// can sit inside a templ layout tree.
func (r *Renderer) Component(user *navauth.UserInfo, content g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.WritePage(ctx, w, user, content)
	})
}

// Manifest returns the navigation as data: the groups and entries that
// would render, with routes resolved, for clients building their own UI.
func (r *Renderer) Manifest() []ResolvedGroup {
	return resolveGroups(r.menu, r.routes)
}

// Menu returns the menu configuration the renderer was built from.
func (r *Renderer) Menu() menu.Config {
	return r.menu
}

func (r *Renderer) view(user *navauth.UserInfo, content g.Node) ui.View {
	return ui.View{
		Title:       r.cfg.Title,
		Menu:        r.menu,
		User:        user,
		Routes:      r.routes,
		Assets:      r.assets,
		ChooserIcon: r.cfg.ChooserIcon,
		ScriptNonce: r.cfg.ScriptNonce,
		Content:     content,
	}
}

func (r *Renderer) write(ctx context.Context, w io.Writer, variant string, node g.Node) error {
	_, span := r.tracer.Start(ctx, "sidenav.render",
		trace.WithAttributes(
			attribute.String("sidenav.variant", variant),
			attribute.Int("sidenav.groups", len(r.menu.Groups)),
			attribute.Int("sidenav.entries", r.menu.RenderableEntries()),
		))
	defer span.End()

	start := time.Now()
	if err := node.Render(w); err != nil {
		r.metrics.IncRenderError()
		span.RecordError(err)
		span.SetStatus(codes.Error, "render write failed")
		r.logger.Error("render write failed",
			String("variant", variant),
			Error(err),
		)
		return fmt.Errorf("sidenav: render %s: %w", variant, err)
	}

	r.metrics.ObserveRender(variant, time.Since(start), r.menu.RenderableEntries())
	return nil
}
