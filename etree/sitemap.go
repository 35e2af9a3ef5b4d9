// Package etree renders the site's sitemap document.
package etree

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/wtlin/groomdir"
)

// Ensure SitemapWriter implements groomdir.SitemapWriter at compile time.
var _ groomdir.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter builds sitemap.xml for a generated site: one URL for the
// index page and one per store page, in listing order.
type SitemapWriter struct{}

// NewSitemapWriter creates a new SitemapWriter.
func NewSitemapWriter() *SitemapWriter {
	return &SitemapWriter{}
}

// Sitemap renders the sitemap page. baseURL is the published site root,
// e.g. "https://example.github.io/petshops".
func (w *SitemapWriter) Sitemap(baseURL string, shops []*groomdir.Shop) (*groomdir.Page, error) {
	base := strings.TrimSuffix(baseURL, "/")
	if base == "" {
		return nil, groomdir.Errorf(groomdir.EINVALID, "sitemap base URL required")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", "http://www.sitemaps.org/schemas/sitemap/0.9")

	addURL := func(loc string) {
		el := urlset.CreateElement("url")
		el.CreateElement("loc").SetText(loc)
	}

	addURL(base + "/")
	for _, shop := range shops {
		addURL(base + "/stores/" + shop.Slug + "/")
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("write sitemap: %w", err)
	}

	return &groomdir.Page{Path: "sitemap.xml", Content: out}, nil
}
