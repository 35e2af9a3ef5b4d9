// Package mock provides function-field mocks for groomdir interfaces.
package mock

import (
	"context"

	"github.com/wtlin/groomdir"
)

var _ groomdir.ShopSource = (*ShopSource)(nil)

// ShopSource is a mock implementation of groomdir.ShopSource.
type ShopSource struct {
	LoadShopsFn func(ctx context.Context, images map[string]string) ([]*groomdir.Shop, error)
}

func (s *ShopSource) LoadShops(ctx context.Context, images map[string]string) ([]*groomdir.Shop, error) {
	return s.LoadShopsFn(ctx, images)
}

var _ groomdir.ImageSource = (*ImageSource)(nil)

// ImageSource is a mock implementation of groomdir.ImageSource.
type ImageSource struct {
	LoadImagesFn func(ctx context.Context) (map[string]string, error)
}

func (s *ImageSource) LoadImages(ctx context.Context) (map[string]string, error) {
	return s.LoadImagesFn(ctx)
}

var _ groomdir.ShopService = (*ShopService)(nil)

// ShopService is a mock implementation of groomdir.ShopService.
type ShopService struct {
	ReplaceShopsFn   func(ctx context.Context, shops []*groomdir.Shop) error
	FindShopsFn      func(ctx context.Context, filter groomdir.ShopFilter) ([]*groomdir.Shop, error)
	FindShopBySlugFn func(ctx context.Context, slug string) (*groomdir.Shop, error)
}

func (s *ShopService) ReplaceShops(ctx context.Context, shops []*groomdir.Shop) error {
	return s.ReplaceShopsFn(ctx, shops)
}

func (s *ShopService) FindShops(ctx context.Context, filter groomdir.ShopFilter) ([]*groomdir.Shop, error) {
	return s.FindShopsFn(ctx, filter)
}

func (s *ShopService) FindShopBySlug(ctx context.Context, slug string) (*groomdir.Shop, error) {
	return s.FindShopBySlugFn(ctx, slug)
}
