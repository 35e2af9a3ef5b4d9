package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/wtlin/groomdir"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	shop, err := deps.Shops.FindShopBySlug(deps.Ctx, c.Slug)
	if err != nil {
		if groomdir.ErrorCode(err) == groomdir.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "shop %q not found. Run 'groomdir list' to see available slugs.\n", c.Slug)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", groomdir.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n", shop.Name)
	fmt.Fprintf(deps.Stdout, "  slug:     %s\n", shop.Slug)
	fmt.Fprintf(deps.Stdout, "  rating:   %s\n", shop.RatingLabel())
	printField(deps.Stdout, "category", shop.Category)
	printField(deps.Stdout, "address", shop.Address)
	printField(deps.Stdout, "status", shop.Status)
	printField(deps.Stdout, "hours", shop.Hours)
	printField(deps.Stdout, "phone", shop.Phone)
	printField(deps.Stdout, "website", shop.Website)
	printField(deps.Stdout, "map", shop.MapURL)
	if len(shop.Features) > 0 {
		printField(deps.Stdout, "features", strings.Join(shop.Features, ", "))
	}

	return nil
}

func printField(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "  %-8s %s\n", label+":", value)
}
