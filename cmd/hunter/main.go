package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/bikeflip/hunter"
	"github.com/bikeflip/hunter/goquery"
	hunterhttp "github.com/bikeflip/hunter/http"
	hunterslog "github.com/bikeflip/hunter/slog"
	"github.com/bikeflip/hunter/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// EnvConfig is the environment-sourced configuration. A .env file in the
// working directory is honored when present.
type EnvConfig struct {
	ProxyURL     string `env:"HUNTER_PROXY_URL"`
	FetchTimeout string `env:"HUNTER_FETCH_TIMEOUT" envDefault:"10s"`
	GeoDBPath    string `env:"HUNTER_GEO_DB" envDefault:"hunter-geo.db"`
	ReferenceZip string `env:"HUNTER_REFERENCE_ZIP" envDefault:"35037"`
}

// Main represents the program.
type Main struct {
	Env EnvConfig

	// SQLite database backing the postal-code geocoder.
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
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()
	if err := env.Parse(&m.Env); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hunter"),
		kong.Description("Extract normalized reports from marketplace bike listings"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'hunter --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.Env.GeoDBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set HUNTER_GEO_DB to use a different geo database path")
		return fmt.Errorf("failed to open geo database at %q: %w", m.Env.GeoDBPath, err)
	}
	deps.DB = m.DB
	geocoder := sqlite.NewGeocoder(m.DB)
	deps.Geocoder = geocoder

	config := hunter.Config{
		ReferenceZip: m.Env.ReferenceZip,
		Geocoder:     geocoder,
	}
	// Prefer the seeded coordinate for the reference zip over the
	// built-in default.
	if pt, ok, err := geocoder.CoordinatesFor(ctx, m.Env.ReferenceZip); err == nil && ok {
		config.Reference = pt
	}
	deps.Extractor = hunterslog.NewLoggingExtractor(goquery.NewExtractor(config), deps.Logger)

	timeout, err := parseTimeout(m.Env.FetchTimeout)
	if err != nil {
		return err
	}
	fetcher, err := hunterhttp.NewFetcher(
		hunterhttp.WithTimeout(timeout),
		hunterhttp.WithProxy(m.Env.ProxyURL),
	)
	if err != nil {
		return err
	}
	defer fetcher.Close()
	deps.Fetcher = hunterslog.NewLoggingFetcher(fetcher, deps.Logger)

	return kongCtx.Run(deps)
}
