package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/wtlin/groomdir/build"
	"github.com/wtlin/groomdir/csv"
	"github.com/wtlin/groomdir/etree"
	"github.com/wtlin/groomdir/fs"
	"github.com/wtlin/groomdir/goquery"
	"github.com/wtlin/groomdir/html"
	groomslog "github.com/wtlin/groomdir/slog"
	"github.com/wtlin/groomdir/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by catalog commands.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("groomdir"),
		kong.Description("Generates a static directory site for pet grooming shops from exported CSV tables."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"listing_default":  envDefault("GROOMDIR_LISTING", "google-2025-12-28.csv"),
			"detail_default":   envDefault("GROOMDIR_DETAIL", "寵物美容detail.csv"),
			"out_default":      envDefault("GROOMDIR_OUT", "docs"),
			"base_url_default": os.Getenv("GROOMDIR_BASE_URL"),
			"db_default":       envDefault("GROOMDIR_DB", "groomdir.db"),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 {
		switch args[0] {
		case "help", "--help", "-h":
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	// Build is the default command, so empty args land here too.
	cmd := strings.Fields(kongCtx.Command())[0]

	switch cmd {
	case "build":
		builder, err := m.newBuilder(&cli.Build, stderr)
		if err != nil {
			return err
		}
		deps.Builder = builder

	case "check":
		deps.Auditor = goquery.NewAuditor()

	case "list", "show":
		dbPath := cli.List.Catalog
		if cmd == "show" {
			dbPath = cli.Show.Catalog
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set GROOMDIR_DB or --catalog to use a different database path\n")
			return fmt.Errorf("failed to open catalog at %q: %w", dbPath, err)
		}
		deps.Shops = sqlite.NewShopService(m.DB)
	}

	return kongCtx.Run(deps)
}

// newBuilder wires the full generation pipeline from the build flags.
func (m *Main) newBuilder(cmd *BuildCmd, stderr io.Writer) (*build.Builder, error) {
	level := slog.LevelInfo
	if cmd.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	renderer, err := html.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	builder := &build.Builder{
		Images:   groomslog.NewLoggingImageSource(csv.NewImageSource(cmd.Detail, csv.DefaultDetailColumns()), logger),
		Shops:    groomslog.NewLoggingShopSource(csv.NewShopSource(cmd.Listing, csv.DefaultColumns()), logger),
		Renderer: renderer,
		Store:    groomslog.NewLoggingSiteStore(fs.NewSiteStore(filepath.Dir(cmd.Out), filepath.Base(cmd.Out)), logger),
	}

	if cmd.BaseURL != "" {
		builder.Sitemap = etree.NewSitemapWriter()
		builder.BaseURL = cmd.BaseURL
	}

	if cmd.Catalog != "" {
		m.DB = sqlite.NewDB(cmd.Catalog)
		if err := m.DB.Open(); err != nil {
			// The catalog is a convenience; a broken database path must
			// not block site generation.
			fmt.Fprintf(stderr, "warning: catalog disabled, failed to open %q: %s\n", cmd.Catalog, err)
			m.DB = nil
		} else {
			builder.Catalog = sqlite.NewShopService(m.DB)
		}
	}

	return builder, nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
