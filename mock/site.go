package mock

import (
	"context"

	"github.com/wtlin/groomdir"
)

var _ groomdir.SiteRenderer = (*SiteRenderer)(nil)

// SiteRenderer is a mock implementation of groomdir.SiteRenderer.
type SiteRenderer struct {
	RenderIndexFn func(shops []*groomdir.Shop) (*groomdir.Page, error)
	RenderShopFn  func(shop *groomdir.Shop) (*groomdir.Page, error)
	AssetsFn      func() []*groomdir.Page
}

func (r *SiteRenderer) RenderIndex(shops []*groomdir.Shop) (*groomdir.Page, error) {
	return r.RenderIndexFn(shops)
}

func (r *SiteRenderer) RenderShop(shop *groomdir.Shop) (*groomdir.Page, error) {
	return r.RenderShopFn(shop)
}

func (r *SiteRenderer) Assets() []*groomdir.Page {
	return r.AssetsFn()
}

var _ groomdir.SiteStore = (*SiteStore)(nil)

// SiteStore is a mock implementation of groomdir.SiteStore.
type SiteStore struct {
	SaveFn   func(ctx context.Context, page *groomdir.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *SiteStore) Save(ctx context.Context, page *groomdir.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *SiteStore) Commit() error {
	return s.CommitFn()
}

func (s *SiteStore) Abort() error {
	return s.AbortFn()
}

var _ groomdir.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter is a mock implementation of groomdir.SitemapWriter.
type SitemapWriter struct {
	SitemapFn func(baseURL string, shops []*groomdir.Shop) (*groomdir.Page, error)
}

func (w *SitemapWriter) Sitemap(baseURL string, shops []*groomdir.Shop) (*groomdir.Page, error) {
	return w.SitemapFn(baseURL, shops)
}

var _ groomdir.SiteAuditor = (*SiteAuditor)(nil)

// SiteAuditor is a mock implementation of groomdir.SiteAuditor.
type SiteAuditor struct {
	AuditSiteFn func(ctx context.Context, dir string) (*groomdir.AuditReport, error)
}

func (a *SiteAuditor) AuditSite(ctx context.Context, dir string) (*groomdir.AuditReport, error) {
	return a.AuditSiteFn(ctx, dir)
}
