// Package html renders site pages from embedded templates.
package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sort"

	"github.com/wtlin/groomdir"
)

//go:embed templates assets
var content embed.FS

// Ensure Renderer implements groomdir.SiteRenderer at compile time.
var _ groomdir.SiteRenderer = (*Renderer)(nil)

// Renderer renders shop records into HTML pages using html/template.
// Rendering is deterministic: identical input produces identical bytes.
type Renderer struct {
	index  *template.Template
	store  *template.Template
	assets []*groomdir.Page
}

// NewRenderer parses the embedded templates and loads the shared assets.
func NewRenderer() (*Renderer, error) {
	index, err := template.ParseFS(content, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}

	store, err := template.ParseFS(content, "templates/store.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse store template: %w", err)
	}

	var assets []*groomdir.Page
	for _, name := range []string{"style.css", "script.js"} {
		data, err := content.ReadFile("assets/" + name)
		if err != nil {
			return nil, fmt.Errorf("read asset %s: %w", name, err)
		}
		assets = append(assets, &groomdir.Page{Path: "assets/" + name, Content: data})
	}

	return &Renderer{index: index, store: store, assets: assets}, nil
}

// indexData is the template context for the index page.
type indexData struct {
	Shops      []*groomdir.Shop
	Categories []string
}

// RenderIndex renders the browsable index page for all shops.
// Category options are the sorted distinct non-empty categories.
func (r *Renderer) RenderIndex(shops []*groomdir.Shop) (*groomdir.Page, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, shop := range shops {
		if shop.Category != "" && !seen[shop.Category] {
			seen[shop.Category] = true
			categories = append(categories, shop.Category)
		}
	}
	sort.Strings(categories)

	var buf bytes.Buffer
	if err := r.index.Execute(&buf, indexData{Shops: shops, Categories: categories}); err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}

	return &groomdir.Page{Path: "index.html", Content: buf.Bytes()}, nil
}

// RenderShop renders the detail page for a single shop at
// stores/<slug>/index.html.
func (r *Renderer) RenderShop(shop *groomdir.Shop) (*groomdir.Page, error) {
	if err := shop.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.store.Execute(&buf, shop); err != nil {
		return nil, fmt.Errorf("render shop %q: %w", shop.Slug, err)
	}

	return &groomdir.Page{Path: "stores/" + shop.Slug + "/index.html", Content: buf.Bytes()}, nil
}

// Assets returns the shared stylesheet and filter script.
func (r *Renderer) Assets() []*groomdir.Page {
	return r.assets
}
