package ui

import (
	"strings"
	"testing"

	"github.com/xraph/sidenav/menu"
)

func testConfig() menu.Config {
	return menu.Config{Groups: []menu.Group{
		{
			Name: "Overview",
			Entries: []menu.Entry{
				{Name: "Dashboard", Href: "dashboard", HasHref: true, Icon: "tachometer", IconType: menu.IconFA},
			},
		},
		{
			Name: "Serving",
			Meta: map[string]string{"section": "serving"},
			Entries: []menu.Entry{
				{
					Name:    "Models",
					Href:    "#models",
					HasHref: true,
					Dropdown: []menu.SubEntry{
						{Name: "All Models", Href: "models", HasHref: true},
					},
				},
			},
		},
		{Name: "Spacer"},
	}}
}

func TestMenuSeparators(t *testing.T) {
	got := renderString(t, Menu(testConfig(), testRoutes(), testAssets()))

	// A divider precedes every group, the first and the empty one
	// included.
	if n := strings.Count(got, `<li class="menu-separator" role="separator"><hr></li>`); n != 3 {
		t.Errorf("separator count = %d, want 3\n%s", n, got)
	}

	if !strings.HasPrefix(got, `<ul class="menu-list"><li class="menu-separator"`) {
		t.Errorf("menu should open with a separator:\n%s", got)
	}
}

func TestMenuOrder(t *testing.T) {
	got := renderString(t, Menu(testConfig(), testRoutes(), testAssets()))

	dashboard := strings.Index(got, "Dashboard")
	models := strings.Index(got, "Models")

	if dashboard < 0 || models < 0 {
		t.Fatalf("Menu() = %s", got)
	}

	if dashboard > models {
		t.Error("groups rendered out of configuration order")
	}
}

func TestMenuMetaNeverRenders(t *testing.T) {
	got := renderString(t, Menu(testConfig(), testRoutes(), testAssets()))

	if strings.Contains(got, "#meta") || strings.Contains(got, "serving") {
		t.Errorf("Menu() leaked group metadata:\n%s", got)
	}
}

func TestMenuEmpty(t *testing.T) {
	got := renderString(t, Menu(menu.Config{}, testRoutes(), testAssets()))

	if got != `<ul class="menu-list"></ul>` {
		t.Errorf("Menu() = %s", got)
	}
}

func TestMenuConcurrentRendersAgree(t *testing.T) {
	cfg := testConfig()
	routes := testRoutes()
	assets := testAssets()

	want := renderString(t, Menu(cfg, routes, assets))

	results := make(chan string, 16)
	for i := 0; i < 16; i++ {
		go func() {
			var b strings.Builder
			if err := Menu(cfg, routes, assets).Render(&b); err != nil {
				results <- "render error: " + err.Error()

				return
			}

			results <- b.String()
		}()
	}

	for i := 0; i < 16; i++ {
		if got := <-results; got != want {
			t.Fatalf("concurrent render diverged:\n%s\nwant:\n%s", got, want)
		}
	}
}
