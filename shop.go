package groomdir

import (
	"context"
	"fmt"
	"strings"
)

// Shop represents one business joined from the listing and detail tables.
// Shops are constructed once during generation and never mutated afterward.
type Shop struct {
	Name     string   `json:"name"`
	MapURL   string   `json:"mapUrl"`
	Rating   *float64 `json:"rating"`
	Reviews  *int     `json:"reviews"`
	Category string   `json:"category"`
	Address  string   `json:"address"`
	Status   string   `json:"status"`
	Hours    string   `json:"hours"`
	Website  string   `json:"website"`
	Phone    string   `json:"phone"`
	Features []string `json:"features"`

	// ImageURL is non-empty only when MapURL matched a detail-table row.
	ImageURL string `json:"imageUrl"`

	// Slug is the URL-safe identifier for the shop's page, unique per site.
	Slug string `json:"slug"`

	// Position is the shop's ordinal in the source listing. Output order
	// follows Position.
	Position int `json:"position"`
}

// Validate returns an error if the shop contains invalid fields.
func (s *Shop) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return Errorf(EINVALID, "shop name required")
	}
	if s.Slug == "" {
		return Errorf(EINVALID, "shop slug required")
	}
	return nil
}

// SearchText returns the lowercase haystack the index page's client-side
// filter matches against: name, category, address, and business status.
func (s *Shop) SearchText() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{s.Name, s.Category, s.Address, s.Status} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// RatingLabel returns the display form of the rating, including the review
// count when known.
func (s *Shop) RatingLabel() string {
	if s.Rating == nil {
		return "暫無評分"
	}
	if s.Reviews == nil {
		return fmt.Sprintf("%.1f / 5", *s.Rating)
	}
	return fmt.Sprintf("%.1f / 5 （%d 則評論）", *s.Rating, *s.Reviews)
}

// ShopSource loads the joined shop records from the listing table.
// The images index comes from an ImageSource; shops whose map link appears
// in it get their cover image attached (left join).
type ShopSource interface {
	LoadShops(ctx context.Context, images map[string]string) ([]*Shop, error)
}

// ImageSource loads the map-link to cover-image index from the detail table.
type ImageSource interface {
	LoadImages(ctx context.Context) (map[string]string, error)
}

// ShopService represents a service for the generated shop catalog.
type ShopService interface {
	// ReplaceShops replaces the entire catalog with the given record set.
	// One generation run corresponds to one catalog state.
	ReplaceShops(ctx context.Context, shops []*Shop) error

	// FindShops retrieves shops matching the filter, in listing order.
	FindShops(ctx context.Context, filter ShopFilter) ([]*Shop, error)

	// FindShopBySlug retrieves a shop by its slug.
	// Returns ENOTFOUND if the shop does not exist.
	FindShopBySlug(ctx context.Context, slug string) (*Shop, error)
}

// ShopFilter represents a filter for FindShops.
type ShopFilter struct {
	Category *string `json:"category"`
	Slug     *string `json:"slug"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
