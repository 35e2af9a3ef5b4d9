package main

import (
	"fmt"

	"github.com/wtlin/groomdir"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	result, err := deps.Builder.Build(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", groomdir.ErrorMessage(err))
		return err
	}

	if result.CatalogErr != nil {
		fmt.Fprintf(deps.Stderr, "warning: site published but catalog update failed: %s\n", result.CatalogErr)
	}

	fmt.Fprintf(deps.Stdout, "Generated %d shop pages.\n", result.Shops)

	return nil
}
