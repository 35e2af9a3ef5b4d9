// Package goquery inspects generated sites with CSS selectors.
package goquery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/wtlin/groomdir"
)

// Ensure Auditor implements groomdir.SiteAuditor at compile time.
var _ groomdir.SiteAuditor = (*Auditor)(nil)

// Auditor verifies a generated site before it is published: every card
// must be searchable, every store link must resolve to a page, and slugs
// must be unique.
type Auditor struct{}

// NewAuditor creates a new Auditor.
func NewAuditor() *Auditor {
	return &Auditor{}
}

// AuditSite parses dir's index page and checks it against the store pages
// on disk.
func (a *Auditor) AuditSite(ctx context.Context, dir string) (*groomdir.AuditReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	indexPath := filepath.Join(dir, "index.html")
	f, err := os.Open(indexPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, groomdir.Errorf(groomdir.ENOTFOUND, "no index.html in %q", dir)
		}
		return nil, fmt.Errorf("open index page: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse index page: %w", err)
	}

	report := &groomdir.AuditReport{}

	// Category options declared by the selector; cards must stay filterable.
	options := make(map[string]bool)
	doc.Find("select[data-category] option").Each(func(_ int, sel *goquery.Selection) {
		value, _ := sel.Attr("value")
		options[value] = true
	})
	hasSelector := doc.Find("select[data-category]").Length() > 0

	seenSlugs := make(map[string]bool)

	doc.Find("[data-card]").Each(func(i int, card *goquery.Selection) {
		report.Cards++

		if search, _ := card.Attr("data-search"); strings.TrimSpace(search) == "" {
			report.Issues = append(report.Issues, groomdir.AuditIssue{
				Path:    "index.html",
				Message: fmt.Sprintf("card %d has an empty data-search attribute", i),
			})
		}

		if hasSelector {
			if category, _ := card.Attr("data-category"); category != "" && !options[category] {
				report.Issues = append(report.Issues, groomdir.AuditIssue{
					Path:    "index.html",
					Message: fmt.Sprintf("card %d category %q is missing from the category selector", i, category),
				})
			}
		}

		slug, ok := storeSlug(card)
		if !ok {
			report.Issues = append(report.Issues, groomdir.AuditIssue{
				Path:    "index.html",
				Message: fmt.Sprintf("card %d has no store page link", i),
			})
			return
		}

		if seenSlugs[slug] {
			report.Issues = append(report.Issues, groomdir.AuditIssue{
				Path:    "index.html",
				Message: fmt.Sprintf("duplicate store link for slug %q", slug),
			})
			return
		}
		seenSlugs[slug] = true

		pagePath := filepath.Join(dir, "stores", slug, "index.html")
		if _, err := os.Stat(pagePath); err != nil {
			report.Issues = append(report.Issues, groomdir.AuditIssue{
				Path:    filepath.Join("stores", slug, "index.html"),
				Message: fmt.Sprintf("store page for slug %q does not exist", slug),
			})
			return
		}
		report.Pages++
	})

	return report, nil
}

// storeSlug extracts the slug from a card's store page link.
func storeSlug(card *goquery.Selection) (string, bool) {
	var slug string
	card.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok || !strings.HasPrefix(href, "./stores/") {
			return true
		}
		slug = strings.Trim(strings.TrimPrefix(href, "./stores/"), "/")
		return false
	})
	return slug, slug != ""
}
