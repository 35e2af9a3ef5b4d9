// Package csv reads the scraped listing and detail tables.
package csv

import (
	"context"
	stdcsv "encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wtlin/groomdir"
)

// Ensure ShopSource implements groomdir.ShopSource at compile time.
var _ groomdir.ShopSource = (*ShopSource)(nil)

// ShopSource loads shop records from a header-described CSV listing file.
type ShopSource struct {
	path    string
	columns Columns
}

// NewShopSource creates a ShopSource for the listing file at path.
func NewShopSource(path string, columns Columns) *ShopSource {
	return &ShopSource{path: path, columns: columns}
}

// LoadShops reads the listing table, skips rows with a blank name, attaches
// cover images by map-link (left join against the images index), and assigns
// slugs in input order. A missing, unreadable, or dataless listing file is
// a fatal error naming the file.
func (s *ShopSource) LoadShops(ctx context.Context, images map[string]string) ([]*groomdir.Shop, error) {
	if err := s.columns.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, groomdir.Errorf(groomdir.ENOTFOUND, "listing file %q not found", s.path)
		}
		return nil, groomdir.Errorf(groomdir.EINTERNAL, "listing file %q: %v", s.path, err)
	}
	defer f.Close()

	reader := stdcsv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, groomdir.Errorf(groomdir.EINVALID, "listing file %q is empty", s.path)
	}
	if err != nil {
		return nil, groomdir.Errorf(groomdir.EINVALID, "listing file %q: %v", s.path, err)
	}

	index := headerIndex(header)
	if _, ok := index[s.columns.Name]; !ok {
		return nil, groomdir.Errorf(groomdir.EINVALID, "listing file %q missing column %q", s.path, s.columns.Name)
	}

	slugs := groomdir.NewSluggifier()
	var shops []*groomdir.Shop
	rows := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, groomdir.Errorf(groomdir.EINVALID, "listing file %q: %v", s.path, err)
		}
		rows++

		get := func(column string) string {
			return field(row, index, column)
		}

		name := get(s.columns.Name)
		if name == "" {
			continue
		}

		mapURL := get(s.columns.MapURL)

		var features []string
		for _, col := range s.columns.Features {
			if v := get(col); v != "" {
				features = append(features, v)
			}
		}

		shops = append(shops, &groomdir.Shop{
			Name:     name,
			MapURL:   mapURL,
			Rating:   parseRating(get(s.columns.Rating)),
			Reviews:  parseReviews(get(s.columns.Reviews)),
			Category: get(s.columns.Category),
			Address:  get(s.columns.Address),
			Status:   get(s.columns.Status),
			Hours:    get(s.columns.Hours),
			Website:  get(s.columns.Website),
			Phone:    get(s.columns.Phone),
			Features: features,
			ImageURL: images[mapURL],
			Slug:     slugs.Slugify(name),
			Position: len(shops),
		})
	}

	if rows == 0 {
		return nil, groomdir.Errorf(groomdir.EINVALID, "listing file %q has no data rows", s.path)
	}

	return shops, nil
}

// Ensure ImageSource implements groomdir.ImageSource at compile time.
var _ groomdir.ImageSource = (*ImageSource)(nil)

// ImageSource loads the map-link to cover-image index from a detail CSV.
type ImageSource struct {
	path    string
	columns DetailColumns
}

// NewImageSource creates an ImageSource for the detail file at path.
func NewImageSource(path string, columns DetailColumns) *ImageSource {
	return &ImageSource{path: path, columns: columns}
}

// LoadImages reads the detail table into a map keyed by map-link. A missing
// detail file is not an error; the listing is simply published without
// cover images. Rows lacking either field are skipped.
func (s *ImageSource) LoadImages(ctx context.Context) (map[string]string, error) {
	if err := s.columns.Validate(); err != nil {
		return nil, err
	}

	images := make(map[string]string)

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return images, nil
	}
	if err != nil {
		return nil, groomdir.Errorf(groomdir.EINTERNAL, "detail file %q: %v", s.path, err)
	}
	defer f.Close()

	reader := stdcsv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return images, nil
	}
	if err != nil {
		return nil, groomdir.Errorf(groomdir.EINVALID, "detail file %q: %v", s.path, err)
	}

	index := headerIndex(header)
	for _, col := range []string{s.columns.MapURL, s.columns.Image} {
		if _, ok := index[col]; !ok {
			return nil, groomdir.Errorf(groomdir.EINVALID, "detail file %q missing column %q", s.path, col)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, groomdir.Errorf(groomdir.EINVALID, "detail file %q: %v", s.path, err)
		}

		mapURL := field(row, index, s.columns.MapURL)
		imageURL := field(row, index, s.columns.Image)
		if mapURL == "" || imageURL == "" {
			continue
		}
		images[mapURL] = imageURL
	}

	return images, nil
}

// headerIndex maps trimmed header names to their column positions.
// The first occurrence of a duplicated header wins.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	return index
}

// field returns the trimmed value of the named column, or "" when the
// column is unmapped, absent, or the row is too short.
func field(row []string, index map[string]int, column string) string {
	if column == "" {
		return ""
	}
	i, ok := index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseRating parses the raw rating cell. Blank or unparsable → nil.
func parseRating(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseReviews parses the raw review-count cell, which arrives in
// "(1,234)" form. Blank or unparsable → nil.
func parseReviews(raw string) *int {
	cleaned := strings.Trim(raw, "()")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return nil
	}
	v, err := strconv.Atoi(cleaned)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
