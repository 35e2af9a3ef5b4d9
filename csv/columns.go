package csv

import "github.com/wtlin/groomdir"

// Columns maps the listing table's header names to shop fields. The scrape
// exports CSS class names as headers, so the defaults look obfuscated;
// treat the mapping as configuration, not as a constant of the system.
type Columns struct {
	Name     string
	MapURL   string
	Rating   string
	Reviews  string
	Category string
	Address  string
	Status   string
	Hours    string
	Website  string
	Phone    string
	Features []string
}

// DefaultColumns returns the header mapping for the Google Maps scrape
// export this tool was built around.
func DefaultColumns() Columns {
	return Columns{
		Name:     "qBF1Pd",
		MapURL:   "hfpxzc href",
		Rating:   "MW4etd",
		Reviews:  "UY7F9",
		Category: "W4Efsd",
		Address:  "W4Efsd (3)",
		Status:   "W4Efsd (4)",
		Hours:    "W4Efsd (5)",
		Website:  "lcr4fd href",
		Phone:    "UsdlK",
		Features: []string{"ah5Ghc", "ah5Ghc (2)"},
	}
}

// Validate ensures the mapping names the columns the join depends on.
// Only the name column is strictly required; everything else is optional
// data that defaults to empty.
func (c Columns) Validate() error {
	if c.Name == "" {
		return groomdir.Errorf(groomdir.EINVALID, "listing column mapping: name column required")
	}
	return nil
}

// DetailColumns maps the detail table's header names.
type DetailColumns struct {
	MapURL string
	Image  string
}

// DefaultDetailColumns returns the header mapping for the detail export.
func DefaultDetailColumns() DetailColumns {
	return DetailColumns{
		MapURL: "hfpxzc href",
		Image:  "aoRNLd src",
	}
}

// Validate ensures both sides of the image mapping are named.
func (c DetailColumns) Validate() error {
	if c.MapURL == "" {
		return groomdir.Errorf(groomdir.EINVALID, "detail column mapping: map link column required")
	}
	if c.Image == "" {
		return groomdir.Errorf(groomdir.EINVALID, "detail column mapping: image column required")
	}
	return nil
}
