package main

import (
	"fmt"

	"github.com/wtlin/groomdir"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := groomdir.ShopFilter{}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	shops, err := deps.Shops.FindShops(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", groomdir.ErrorMessage(err))
		return err
	}

	if len(shops) == 0 {
		fmt.Fprintln(deps.Stdout, "No shops in catalog. Run 'groomdir build' first.")
		return nil
	}

	for _, s := range shops {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.Slug, s.Name, s.RatingLabel())
	}

	return nil
}
