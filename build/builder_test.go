package build_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wtlin/groomdir"
	"github.com/wtlin/groomdir/build"
	"github.com/wtlin/groomdir/mock"
)

func twoShops() []*groomdir.Shop {
	return []*groomdir.Shop{
		{Name: "Happy Paws", Slug: "happy-paws", Position: 0},
		{Name: "Cat Spa", Slug: "cat-spa", Position: 1},
	}
}

// testRenderer renders trivial pages so tests can focus on orchestration.
func testRenderer() *mock.SiteRenderer {
	return &mock.SiteRenderer{
		RenderIndexFn: func(shops []*groomdir.Shop) (*groomdir.Page, error) {
			return &groomdir.Page{Path: "index.html", Content: []byte("index")}, nil
		},
		RenderShopFn: func(shop *groomdir.Shop) (*groomdir.Page, error) {
			return &groomdir.Page{Path: "stores/" + shop.Slug + "/index.html", Content: []byte(shop.Name)}, nil
		},
		AssetsFn: func() []*groomdir.Page {
			return []*groomdir.Page{
				{Path: "assets/style.css"},
				{Path: "assets/script.js"},
			}
		},
	}
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("publishes every page then commits", func(t *testing.T) {
		t.Parallel()

		var saved []string
		committed := false

		b := &build.Builder{
			Images: &mock.ImageSource{
				LoadImagesFn: func(ctx context.Context) (map[string]string, error) {
					return map[string]string{"https://maps.example/a": "https://img.example/a.jpg"}, nil
				},
			},
			Shops: &mock.ShopSource{
				LoadShopsFn: func(ctx context.Context, images map[string]string) ([]*groomdir.Shop, error) {
					assert.Len(t, images, 1, "images index should reach the shop source")
					return twoShops(), nil
				},
			},
			Renderer: testRenderer(),
			Store: &mock.SiteStore{
				SaveFn: func(ctx context.Context, page *groomdir.Page) error {
					assert.False(t, committed, "saves must happen before commit")
					saved = append(saved, page.Path)
					return nil
				},
				CommitFn: func() error {
					committed = true
					return nil
				},
			},
			Sitemap: &mock.SitemapWriter{
				SitemapFn: func(baseURL string, shops []*groomdir.Shop) (*groomdir.Page, error) {
					assert.Equal(t, "https://example.github.io", baseURL)
					return &groomdir.Page{Path: "sitemap.xml"}, nil
				},
			},
			BaseURL: "https://example.github.io",
		}

		result, err := b.Build(context.Background())

		require.NoError(t, err)
		assert.True(t, committed)
		assert.Equal(t, 2, result.Shops)
		assert.Equal(t, 6, result.Pages)
		assert.Equal(t, []string{
			"index.html",
			"stores/happy-paws/index.html",
			"stores/cat-spa/index.html",
			"assets/style.css",
			"assets/script.js",
			"sitemap.xml",
		}, saved)
	})

	t.Run("aborts the store when rendering fails", func(t *testing.T) {
		t.Parallel()

		aborted := false
		renderer := testRenderer()
		renderer.RenderShopFn = func(shop *groomdir.Shop) (*groomdir.Page, error) {
			return nil, errors.New("template exploded")
		}

		b := &build.Builder{
			Images: &mock.ImageSource{
				LoadImagesFn: func(ctx context.Context) (map[string]string, error) { return nil, nil },
			},
			Shops: &mock.ShopSource{
				LoadShopsFn: func(ctx context.Context, images map[string]string) ([]*groomdir.Shop, error) {
					return twoShops(), nil
				},
			},
			Renderer: renderer,
			Store: &mock.SiteStore{
				SaveFn: func(ctx context.Context, page *groomdir.Page) error { return nil },
				CommitFn: func() error {
					t.Error("commit must not run after a render failure")
					return nil
				},
				AbortFn: func() error {
					aborted = true
					return nil
				},
			},
		}

		_, err := b.Build(context.Background())

		require.Error(t, err)
		assert.True(t, aborted, "pending output should be discarded")
	})

	t.Run("fatal listing error stops generation before any write", func(t *testing.T) {
		t.Parallel()

		listingErr := groomdir.Errorf(groomdir.ENOTFOUND, "listing file \"missing.csv\" not found")

		b := &build.Builder{
			Images: &mock.ImageSource{
				LoadImagesFn: func(ctx context.Context) (map[string]string, error) { return nil, nil },
			},
			Shops: &mock.ShopSource{
				LoadShopsFn: func(ctx context.Context, images map[string]string) ([]*groomdir.Shop, error) {
					return nil, listingErr
				},
			},
			Renderer: testRenderer(),
			Store: &mock.SiteStore{
				SaveFn: func(ctx context.Context, page *groomdir.Page) error {
					t.Error("nothing should be written on a fatal input error")
					return nil
				},
			},
		}

		_, err := b.Build(context.Background())

		require.Error(t, err)
		assert.Equal(t, groomdir.ENOTFOUND, groomdir.ErrorCode(err))
		assert.Contains(t, err.Error(), "missing.csv")
	})

	t.Run("catalog failure does not unpublish the site", func(t *testing.T) {
		t.Parallel()

		b := &build.Builder{
			Images: &mock.ImageSource{
				LoadImagesFn: func(ctx context.Context) (map[string]string, error) { return nil, nil },
			},
			Shops: &mock.ShopSource{
				LoadShopsFn: func(ctx context.Context, images map[string]string) ([]*groomdir.Shop, error) {
					return twoShops(), nil
				},
			},
			Renderer: testRenderer(),
			Store: &mock.SiteStore{
				SaveFn:   func(ctx context.Context, page *groomdir.Page) error { return nil },
				CommitFn: func() error { return nil },
			},
			Catalog: &mock.ShopService{
				ReplaceShopsFn: func(ctx context.Context, shops []*groomdir.Shop) error {
					return errors.New("disk full")
				},
			},
		}

		result, err := b.Build(context.Background())

		require.NoError(t, err)
		require.NotNil(t, result.CatalogErr)
		assert.Contains(t, result.CatalogErr.Error(), "disk full")
	})

	t.Run("skips sitemap and catalog when not configured", func(t *testing.T) {
		t.Parallel()

		b := &build.Builder{
			Images: &mock.ImageSource{
				LoadImagesFn: func(ctx context.Context) (map[string]string, error) { return nil, nil },
			},
			Shops: &mock.ShopSource{
				LoadShopsFn: func(ctx context.Context, images map[string]string) ([]*groomdir.Shop, error) {
					return twoShops(), nil
				},
			},
			Renderer: testRenderer(),
			Store: &mock.SiteStore{
				SaveFn:   func(ctx context.Context, page *groomdir.Page) error { return nil },
				CommitFn: func() error { return nil },
			},
		}

		result, err := b.Build(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 5, result.Pages)
		assert.Nil(t, result.CatalogErr)
	})
}
