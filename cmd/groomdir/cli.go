package main

import (
	"context"
	"io"

	"github.com/wtlin/groomdir"
	"github.com/wtlin/groomdir/build"
)

// SiteBuilder generates the whole site in a single pass.
type SiteBuilder interface {
	Build(ctx context.Context) (*build.Result, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Builder SiteBuilder
	Auditor groomdir.SiteAuditor
	Shops   groomdir.ShopService
}

// CLI defines the command-line interface structure for Kong. Build is the
// default command, so a bare invocation regenerates the site.
type CLI struct {
	Build BuildCmd `cmd:"" default:"1" help:"Generate the directory site from the CSV tables"`
	Check CheckCmd `cmd:"" help:"Audit a generated site for broken cards and store pages"`
	List  ListCmd  `cmd:"" help:"List shops in the catalog"`
	Show  ShowCmd  `cmd:"" help:"Show one shop from the catalog"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Listing string `help:"Listing CSV path" default:"${listing_default}"`
	Detail  string `help:"Detail CSV path" default:"${detail_default}"`
	Out     string `help:"Output directory" default:"${out_default}"`
	BaseURL string `name:"base-url" help:"Published site root; enables sitemap.xml" default:"${base_url_default}"`
	Catalog string `help:"Catalog database path; empty disables the catalog" default:"${db_default}"`
	Verbose bool   `short:"v" help:"Log every saved page"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Dir string `arg:"" optional:"" help:"Generated site directory" default:"${out_default}"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `short:"c" help:"Only shops in this category"`
	Catalog  string `help:"Catalog database path" default:"${db_default}"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Slug    string `arg:"" help:"Shop slug"`
	Catalog string `help:"Catalog database path" default:"${db_default}"`
}
