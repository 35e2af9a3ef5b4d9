// Package groomdir generates a static, browsable directory site for local
// pet-grooming businesses. It joins a scraped Google Maps listing table with
// a detail table of cover images, derives a unique URL slug per shop, and
// renders an index page with client-side search/category filtering plus one
// detail page per shop.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., csv/, sqlite/, goquery/).
package groomdir
