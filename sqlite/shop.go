package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/wtlin/groomdir"
)

// Compile-time interface verification.
var _ groomdir.ShopService = (*ShopService)(nil)

// ShopService implements groomdir.ShopService using SQLite.
type ShopService struct {
	db *DB
}

// NewShopService creates a new ShopService.
func NewShopService(db *DB) *ShopService {
	return &ShopService{db: db}
}

// hashShop computes an xxHash fingerprint over the shop's content fields
// and returns it as a hex string. Unchanged input yields unchanged hashes
// across runs.
func hashShop(shop *groomdir.Shop) string {
	h := xxhash.New()
	fields := []string{
		shop.Name, shop.MapURL, shop.Category, shop.Address, shop.Status,
		shop.Hours, shop.Website, shop.Phone, shop.ImageURL, shop.Slug,
		shop.RatingLabel(), strings.Join(shop.Features, "\n"),
	}
	for _, f := range fields {
		h.WriteString(f)
		h.Write([]byte{0})
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h.Sum64())
	return hex.EncodeToString(b)
}

// ReplaceShops replaces the whole catalog with the given record set in a
// single transaction.
func (s *ShopService) ReplaceShops(ctx context.Context, shops []*groomdir.Shop) error {
	for _, shop := range shops {
		if err := shop.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shops`); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}

	generatedAt := time.Now().UTC().Format(time.RFC3339)

	for _, shop := range shops {
		var rating sql.NullFloat64
		if shop.Rating != nil {
			rating = sql.NullFloat64{Float64: *shop.Rating, Valid: true}
		}
		var reviews sql.NullInt64
		if shop.Reviews != nil {
			reviews = sql.NullInt64{Int64: int64(*shop.Reviews), Valid: true}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO shops (id, slug, name, map_url, rating, reviews, category, address,
				status, hours, website, phone, features, image_url, search_text,
				content_hash, position, generated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), shop.Slug, shop.Name, shop.MapURL, rating, reviews,
			shop.Category, shop.Address, shop.Status, shop.Hours, shop.Website,
			shop.Phone, strings.Join(shop.Features, "\n"), shop.ImageURL,
			shop.SearchText(), hashShop(shop), shop.Position, generatedAt)
		if err != nil {
			return fmt.Errorf("insert shop %q: %w", shop.Slug, err)
		}
	}

	return tx.Commit()
}

// FindShops retrieves shops matching the filter, ordered by listing position.
func (s *ShopService) FindShops(ctx context.Context, filter groomdir.ShopFilter) ([]*groomdir.Shop, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT slug, name, map_url, rating, reviews, category, address,
		status, hours, website, phone, features, image_url, position
		FROM shops WHERE 1=1`)

	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}

	query.WriteString(" ORDER BY position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []*groomdir.Shop
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}

	return shops, rows.Err()
}

// FindShopBySlug retrieves a shop by its slug.
func (s *ShopService) FindShopBySlug(ctx context.Context, slug string) (*groomdir.Shop, error) {
	shops, err := s.FindShops(ctx, groomdir.ShopFilter{Slug: &slug, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(shops) == 0 {
		return nil, groomdir.Errorf(groomdir.ENOTFOUND, "shop %q not found", slug)
	}
	return shops[0], nil
}

// scanShop reads one catalog row into a Shop.
func scanShop(rows *sql.Rows) (*groomdir.Shop, error) {
	var shop groomdir.Shop
	var rating sql.NullFloat64
	var reviews sql.NullInt64
	var features string

	err := rows.Scan(&shop.Slug, &shop.Name, &shop.MapURL, &rating, &reviews,
		&shop.Category, &shop.Address, &shop.Status, &shop.Hours, &shop.Website,
		&shop.Phone, &features, &shop.ImageURL, &shop.Position)
	if err != nil {
		return nil, err
	}

	if rating.Valid {
		shop.Rating = &rating.Float64
	}
	if reviews.Valid {
		n := int(reviews.Int64)
		shop.Reviews = &n
	}
	if features != "" {
		shop.Features = strings.Split(features, "\n")
	}

	return &shop, nil
}
