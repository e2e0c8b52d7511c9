package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/distropop"
	"github.com/fwojciec/distropop/goquery"
	dphttp "github.com/fwojciec/distropop/http"
	"github.com/fwojciec/distropop/search"
	dpslog "github.com/fwojciec/distropop/slog"
	"github.com/fwojciec/distropop/sqlite"
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
	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CandidateService distropop.CandidateService
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("distropop"),
		kong.Description("DistroWatch popularity lookup."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'distropop --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if !slices.Contains(distropop.Languages(), cli.Lang) {
		err := distropop.Errorf(distropop.EINVALID, "unsupported language %q (available: %s)", cli.Lang, strings.Join(distropop.Languages(), ", "))
		fmt.Fprintf(stderr, "error: %s\n", distropop.ErrorMessage(err))
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cli.DB), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	m.DB = sqlite.NewDB(cli.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DISTROPOP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	defer m.Close()

	m.CandidateService = sqlite.NewCandidateService(m.DB)

	var fetcher distropop.Fetcher = dphttp.NewFetcher(dphttp.WithTimeout(cli.Timeout))
	var extractor distropop.Extractor = goquery.NewExtractor()
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = dpslog.NewLoggingFetcher(fetcher, logger)
		extractor = dpslog.NewLoggingExtractor(extractor, logger)
	}
	defer fetcher.Close()

	searcher := &search.Searcher{
		Candidates:  m.CandidateService,
		Fetcher:     fetcher,
		Extractor:   extractor,
		BaseURL:     cli.BaseURL,
		Concurrency: cli.Concurrency,
	}
	if cli.RPS > 0 {
		searcher.RateLimiter = search.NewHostLimiter(cli.RPS, cli.Burst)
	}

	deps.DB = m.DB
	deps.Candidates = m.CandidateService
	deps.Searcher = searcher
	deps.Syncer = &search.Syncer{
		Fetcher:    fetcher,
		Parser:     goquery.NewCatalogParser(),
		Candidates: m.CandidateService,
		BaseURL:    cli.BaseURL,
	}
	deps.Lang = cli.Lang
	deps.BaseURL = cli.BaseURL

	return kongCtx.Run(deps)
}
