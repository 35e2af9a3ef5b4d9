package html_test

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wtlin/groomdir"
	"github.com/wtlin/groomdir/html"
)

func ptr[T any](v T) *T { return &v }

func parseHTML(t *testing.T, page *groomdir.Page) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Content))
	require.NoError(t, err)
	return doc
}

func testShops() []*groomdir.Shop {
	return []*groomdir.Shop{
		{
			Name:     "Happy Paws",
			MapURL:   "https://maps.example/a",
			Rating:   ptr(4.8),
			Reviews:  ptr(123),
			Category: "寵物美容",
			Address:  "台中市西區民生路 100 號",
			Status:   "營業中",
			Hours:    "10:00-20:00",
			Website:  "https://happypaws.example",
			Phone:    "04-1234-5678",
			Features: []string{"美容", "寄宿"},
			ImageURL: "https://img.example/a.jpg",
			Slug:     "happy-paws",
			Position: 0,
		},
		{
			Name:     "Cat Spa",
			Category: "寵物 SPA",
			Slug:     "cat-spa",
			Position: 1,
		},
	}
}

func TestRenderer_RenderIndex(t *testing.T) {
	t.Parallel()

	r, err := html.NewRenderer()
	require.NoError(t, err)

	page, err := r.RenderIndex(testShops())
	require.NoError(t, err)
	assert.Equal(t, "index.html", page.Path)

	doc := parseHTML(t, page)

	t.Run("renders one card per shop with queryable attributes", func(t *testing.T) {
		cards := doc.Find("[data-card]")
		require.Equal(t, 2, cards.Length())

		first := cards.First()
		search, ok := first.Attr("data-search")
		require.True(t, ok)
		assert.Equal(t, "happy paws 寵物美容 台中市西區民生路 100 號 營業中", search)
		category, ok := first.Attr("data-category")
		require.True(t, ok)
		assert.Equal(t, "寵物美容", category)
	})

	t.Run("cards link to the store pages", func(t *testing.T) {
		hrefs := make([]string, 0, 2)
		doc.Find("[data-card] a").Each(func(_ int, sel *goquery.Selection) {
			if href, ok := sel.Attr("href"); ok {
				hrefs = append(hrefs, href)
			}
		})
		assert.Contains(t, hrefs, "./stores/happy-paws/")
		assert.Contains(t, hrefs, "./stores/cat-spa/")
	})

	t.Run("category selector lists sorted distinct categories plus sentinel", func(t *testing.T) {
		options := doc.Find("select[data-category] option")
		require.Equal(t, 3, options.Length())

		sentinel, ok := options.First().Attr("value")
		require.True(t, ok)
		assert.Empty(t, sentinel, "first option is the all-categories sentinel")

		var values []string
		options.Slice(1, 3).Each(func(_ int, sel *goquery.Selection) {
			v, _ := sel.Attr("value")
			values = append(values, v)
		})
		assert.Equal(t, []string{"寵物 SPA", "寵物美容"}, values)
	})

	t.Run("search input and assets are wired", func(t *testing.T) {
		assert.Equal(t, 1, doc.Find("input[data-search]").Length())
		assert.Equal(t, 1, doc.Find(`link[href="./assets/style.css"]`).Length())
		assert.Equal(t, 1, doc.Find(`script[src="./assets/script.js"]`).Length())
	})

	t.Run("visible summary carries rating and address", func(t *testing.T) {
		text := doc.Find("[data-card]").First().Text()
		assert.Contains(t, text, "Happy Paws")
		assert.Contains(t, text, "4.8 / 5 （123 則評論）")
		assert.Contains(t, text, "台中市西區民生路 100 號")
	})
}

func TestRenderer_RenderIndex_Deterministic(t *testing.T) {
	t.Parallel()

	r, err := html.NewRenderer()
	require.NoError(t, err)

	first, err := r.RenderIndex(testShops())
	require.NoError(t, err)
	second, err := r.RenderIndex(testShops())
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
}

func TestRenderer_RenderShop(t *testing.T) {
	t.Parallel()

	r, err := html.NewRenderer()
	require.NoError(t, err)

	t.Run("full record renders every section", func(t *testing.T) {
		t.Parallel()

		page, err := r.RenderShop(testShops()[0])
		require.NoError(t, err)
		assert.Equal(t, "stores/happy-paws/index.html", page.Path)

		doc := parseHTML(t, page)
		assert.Equal(t, "Happy Paws", doc.Find("h1").Text())
		assert.Equal(t, 1, doc.Find(`a[href="https://happypaws.example"]`).Length())
		assert.Equal(t, 1, doc.Find(`a[href="tel:04-1234-5678"]`).Length())
		assert.Equal(t, 1, doc.Find(`img[src="https://img.example/a.jpg"]`).Length())

		text := doc.Text()
		assert.Contains(t, text, "10:00-20:00")
		assert.Contains(t, text, "營業中")
		assert.Contains(t, text, "美容")
	})

	t.Run("sparse record omits optional links and shows placeholders", func(t *testing.T) {
		t.Parallel()

		page, err := r.RenderShop(testShops()[1])
		require.NoError(t, err)

		doc := parseHTML(t, page)
		assert.Equal(t, 0, doc.Find(`a[href^="tel:"]`).Length())
		assert.Equal(t, 0, doc.Find("img").Length())
		assert.Equal(t, 1, doc.Find(".gallery.placeholder").Length())

		text := doc.Text()
		assert.Contains(t, text, "暫無評分")
		assert.Contains(t, text, "未提供")
	})

	t.Run("back link and stylesheet use relative paths", func(t *testing.T) {
		t.Parallel()

		page, err := r.RenderShop(testShops()[0])
		require.NoError(t, err)

		doc := parseHTML(t, page)
		assert.Equal(t, 1, doc.Find(`a[href="../../index.html"]`).Length())
		assert.Equal(t, 1, doc.Find(`link[href="../../assets/style.css"]`).Length())
	})

	t.Run("invalid shop is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := r.RenderShop(&groomdir.Shop{Name: "No Slug"})
		require.Error(t, err)
		assert.Equal(t, groomdir.EINVALID, groomdir.ErrorCode(err))
	})
}

func TestRenderer_Assets(t *testing.T) {
	t.Parallel()

	r, err := html.NewRenderer()
	require.NoError(t, err)

	assets := r.Assets()
	require.Len(t, assets, 2)
	assert.Equal(t, "assets/style.css", assets[0].Path)
	assert.Equal(t, "assets/script.js", assets[1].Path)
	assert.NotEmpty(t, assets[0].Content)
	assert.Contains(t, string(assets[1].Content), "function matches(state, card)")
}
