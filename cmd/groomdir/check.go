package main

import (
	"fmt"

	"github.com/wtlin/groomdir"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	report, err := deps.Auditor.AuditSite(deps.Ctx, c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", groomdir.ErrorMessage(err))
		return err
	}

	if report.OK() {
		fmt.Fprintf(deps.Stdout, "ok: %d cards, %d store pages\n", report.Cards, report.Pages)
		return nil
	}

	for _, issue := range report.Issues {
		fmt.Fprintf(deps.Stderr, "%s: %s\n", issue.Path, issue.Message)
	}

	return groomdir.Errorf(groomdir.EINVALID, "audit found %d issue(s) in %q", len(report.Issues), c.Dir)
}
