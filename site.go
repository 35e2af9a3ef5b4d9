package groomdir

import "context"

// Page is a rendered site document ready to be stored.
type Page struct {
	// Path is the page's location relative to the site root,
	// e.g. "stores/happy-paws/index.html".
	Path string

	Content []byte
}

// SiteRenderer renders shop records into site pages.
type SiteRenderer interface {
	// RenderIndex renders the browsable index page for all shops.
	RenderIndex(shops []*Shop) (*Page, error)

	// RenderShop renders the detail page for a single shop.
	RenderShop(shop *Shop) (*Page, error)

	// Assets returns the shared static assets referenced by every page.
	Assets() []*Page
}

// SiteStore persists pages to the output directory with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes. A failed generation never leaves a
// partially written site behind.
type SiteStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}

// SitemapWriter renders the site's sitemap document.
type SitemapWriter interface {
	Sitemap(baseURL string, shops []*Shop) (*Page, error)
}

// SiteAuditor inspects a generated site for publishing problems.
type SiteAuditor interface {
	AuditSite(ctx context.Context, dir string) (*AuditReport, error)
}

// AuditReport summarizes a site audit.
type AuditReport struct {
	// Cards is the number of shop cards found on the index page.
	Cards int

	// Pages is the number of store pages resolved from card links.
	Pages int

	Issues []AuditIssue
}

// OK reports whether the audit found no issues.
func (r *AuditReport) OK() bool {
	return len(r.Issues) == 0
}

// AuditIssue describes a single problem found during a site audit.
type AuditIssue struct {
	// Path locates the problem, e.g. "index.html" or a store page path.
	Path string

	Message string
}
