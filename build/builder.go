// Package build orchestrates site generation: load, join, render, publish.
package build

import (
	"context"
	"fmt"

	"github.com/wtlin/groomdir"
)

// Builder coordinates the generation of a directory site. Generation is a
// single-threaded, single-pass batch job: read both tables into memory,
// join, render every page into the store, commit.
type Builder struct {
	Images   groomdir.ImageSource
	Shops    groomdir.ShopSource
	Renderer groomdir.SiteRenderer
	Store    groomdir.SiteStore

	// Sitemap is optional; when set, sitemap.xml is published with the site.
	Sitemap groomdir.SitemapWriter
	BaseURL string

	// Catalog is optional; when set, the joined record set is persisted
	// after the site commits. A catalog failure does not unpublish the site.
	Catalog groomdir.ShopService
}

// Result holds the outcome of a generation run.
type Result struct {
	Shops int
	Pages int

	// CatalogErr is set when the site published but the catalog update
	// failed afterwards.
	CatalogErr error
}

// Build generates the whole site. Any failure before the store commits
// aborts the pending output, so a previously published site stays intact.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	images, err := b.Images.LoadImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("load detail table: %w", err)
	}

	shops, err := b.Shops.LoadShops(ctx, images)
	if err != nil {
		return nil, fmt.Errorf("load listing table: %w", err)
	}

	pages, err := b.writePages(ctx, shops)
	if err != nil {
		_ = b.Store.Abort()
		return nil, err
	}

	if err := b.Store.Commit(); err != nil {
		return nil, fmt.Errorf("publish site: %w", err)
	}

	result := &Result{Shops: len(shops), Pages: pages}

	if b.Catalog != nil {
		if err := b.Catalog.ReplaceShops(ctx, shops); err != nil {
			result.CatalogErr = fmt.Errorf("update catalog: %w", err)
		}
	}

	return result, nil
}

// writePages renders every page into the store and returns the page count.
func (b *Builder) writePages(ctx context.Context, shops []*groomdir.Shop) (int, error) {
	pages := 0

	save := func(page *groomdir.Page) error {
		if err := b.Store.Save(ctx, page); err != nil {
			return fmt.Errorf("save %s: %w", page.Path, err)
		}
		pages++
		return nil
	}

	index, err := b.Renderer.RenderIndex(shops)
	if err != nil {
		return 0, err
	}
	if err := save(index); err != nil {
		return 0, err
	}

	for _, shop := range shops {
		page, err := b.Renderer.RenderShop(shop)
		if err != nil {
			return 0, err
		}
		if err := save(page); err != nil {
			return 0, err
		}
	}

	for _, asset := range b.Renderer.Assets() {
		if err := save(asset); err != nil {
			return 0, err
		}
	}

	if b.Sitemap != nil {
		sitemap, err := b.Sitemap.Sitemap(b.BaseURL, shops)
		if err != nil {
			return 0, err
		}
		if err := save(sitemap); err != nil {
			return 0, err
		}
	}

	return pages, nil
}
