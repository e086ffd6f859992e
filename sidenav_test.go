package sidenav

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	navauth "github.com/xraph/sidenav/auth"
	"github.com/xraph/sidenav/menu"
	"github.com/xraph/sidenav/resolve"
)

// testMenu mirrors a small panel layout: one plain entry, one dropdown
// entry with a linkless child, and one entry with no link at all.
func testMenu() menu.Config {
	return menu.Config{
		Groups: []menu.Group{
			{
				Name: "Overview",
				Entries: []menu.Entry{
					{
						Name:     "Dashboard",
						Href:     "#dashboard",
						HasHref:  true,
						Icon:     "dashboard",
						IconType: menu.IconFA,
					},
				},
			},
			{
				Name: "Serving",
				Meta: map[string]string{"requires": "backend"},
				Entries: []menu.Entry{
					{
						Name:    "Models",
						Href:    "#models",
						HasHref: true,
						Dropdown: []menu.SubEntry{
							{Name: "Instances", Href: "#instances", HasHref: true, Icon: "server"},
							{Name: "Hidden"},
						},
					},
					{Name: "Queue"},
				},
			},
		},
	}
}

func testRouteTable() *resolve.RouteTable {
	table := resolve.NewRouteTable()
	table.RegisterAll(map[string]string{
		"#dashboard": "/panel/dashboard",
		"#models":    "/panel/models",
		"#instances": "/panel/models/instances",
	})
	return table
}

func render(t *testing.T, n g.Node) string {
	t.Helper()

	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func TestNew(t *testing.T) {
	r, err := New(testMenu())
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	if r.routes == nil {
		t.Error("routes not defaulted")
	}
	if r.assets == nil {
		t.Error("assets not defaulted")
	}
	if r.logger == nil {
		t.Error("logger not defaulted")
	}
	if r.tracer == nil {
		t.Error("tracer not defaulted")
	}
	if r.metrics == nil {
		t.Error("metrics not created although enabled by default")
	}
}

func TestNewMetricsDisabled(t *testing.T) {
	r, err := New(testMenu(), WithConfig(WithMetrics(false)))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if r.metrics != nil {
		t.Error("metrics created although disabled")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(testMenu(), WithConfig(WithTitle("")))
	if err == nil {
		t.Fatal("New() = nil error, want config error")
	}
	if !strings.Contains(err.Error(), "title") {
		t.Errorf("New() = %v, want error mentioning title", err)
	}
}

func TestNewRejectsBadMenu(t *testing.T) {
	bad := menu.Config{Groups: []menu.Group{{Name: "Serving"}, {Name: "Serving"}}}

	_, err := New(bad)
	if err == nil {
		t.Fatal("New() = nil error, want menu error")
	}
	if !errors.Is(err, menu.ErrDuplicateKey) {
		t.Errorf("New() = %v, want ErrDuplicateKey", err)
	}
}

func TestSidebar(t *testing.T) {
	r, err := New(testMenu(), WithRoutes(testRouteTable()), WithLogger(NewNoopLogger()))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	out := render(t, r.Sidebar(nil))

	if !strings.HasPrefix(out, `<aside id="main-menu" class="side-menu">`) {
		t.Errorf("sidebar does not open with the panel aside:\n%s", out)
	}
	if !strings.Contains(out, `href="/panel/dashboard"`) {
		t.Errorf("dashboard href not routed:\n%s", out)
	}
	if !strings.Contains(out, "switchContent") {
		t.Error("anonymous header chooser missing")
	}
	if strings.Contains(out, "Queue") {
		t.Error("entry without href leaked into markup")
	}
}

func TestPage(t *testing.T) {
	r, err := New(testMenu(), WithRoutes(testRouteTable()), WithLogger(NewNoopLogger()))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	user := &navauth.UserInfo{Name: "Jane Smith", Role: "Operator"}
	out := render(t, r.Page(user, html.P(g.Text("hello"))))

	if !strings.Contains(out, "<title>Control Panel</title>") {
		t.Error("document title missing")
	}
	if !strings.Contains(out, "Jane Smith") {
		t.Error("authenticated header missing")
	}
	if !strings.Contains(out, `<main id="content" class="content-area"><p>hello</p></main>`) {
		t.Errorf("content area wrong:\n%s", out)
	}
	if !strings.Contains(out, "window.switchContent") {
		t.Error("toggle script missing")
	}
}

func TestWritePage(t *testing.T) {
	r, err := New(testMenu(), WithLogger(NewNoopLogger()))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	var buf bytes.Buffer
	if err := r.WritePage(context.Background(), &buf, nil, nil); err != nil {
		t.Fatalf("WritePage() = %v", err)
	}
	if !strings.Contains(buf.String(), `<aside id="main-menu"`) {
		t.Error("page markup missing the panel")
	}
}

func TestWriteSidebar(t *testing.T) {
	r, err := New(testMenu(), WithLogger(NewNoopLogger()))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	var buf bytes.Buffer
	if err := r.WriteSidebar(context.Background(), &buf, nil); err != nil {
		t.Fatalf("WriteSidebar() = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `<aside id="main-menu"`) {
		t.Error("panel markup missing")
	}
	if strings.Contains(out, "<title>") {
		t.Error("sidebar variant emitted a full document")
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestWritePageWriterError(t *testing.T) {
	r, err := New(testMenu(), WithLogger(NewNoopLogger()))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	err = r.WritePage(context.Background(), failWriter{}, nil, nil)
	if err == nil {
		t.Fatal("WritePage() = nil, want write error")
	}
	if !strings.Contains(err.Error(), "render page") {
		t.Errorf("WritePage() = %v, want render page error", err)
	}
}

func TestComponent(t *testing.T) {
	r, err := New(testMenu(), WithLogger(NewNoopLogger()))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	var buf bytes.Buffer
	c := r.Component(nil, html.P(g.Text("body")))
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Component().Render() = %v", err)
	}
	if !strings.Contains(buf.String(), "<p>body</p>") {
		t.Error("component did not render the page content")
	}
}
