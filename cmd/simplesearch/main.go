package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/simplesearch"
	"github.com/fwojciec/simplesearch/badger"
	"github.com/fwojciec/simplesearch/blackfriday"
	"github.com/fwojciec/simplesearch/goquery"
	"github.com/fwojciec/simplesearch/search"
	ssslog "github.com/fwojciec/simplesearch/slog"
	"github.com/fwojciec/simplesearch/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when no --db flag is given. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Badger page cache, when selected as the cache backend.
	Badger *badger.PageCache
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Badger != nil {
		if err := m.Badger.Close(); err != nil {
			return err
		}
	}
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
		kong.Name("simplesearch"),
		kong.Description("Case-insensitive substring search over a page and post site."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(kong.JSON),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'simplesearch --help' to see available commands")
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

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	dbPath := cli.DB
	if dbPath == "" {
		dbPath = m.DBPath
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SIMPLESEARCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	documents := sqlite.NewDocumentService(m.DB)
	deps.Documents = documents
	deps.Pages = documents
	deps.Renderer = blackfriday.NewRenderer()
	deps.Stripper = goquery.NewStripper()
	deps.Config = search.NewConfig(cli.PageCache, cli.UsePageCache)

	if cli.PageCache {
		cache, err := m.openPageCache(cli, deps.Logger)
		if err != nil {
			return err
		}
		deps.Cache = ssslog.NewLoggingPageCache(cache, deps.Logger)
	}

	deps.Logger.Debug("configured", "command", kongCtx.Command(), "db", dbPath,
		"cache", cli.PageCache, "backend", cli.CacheBackend, "strategy", deps.Config.Strategy())

	return kongCtx.Run(deps)
}

func (m *Main) openPageCache(cli *CLI, logger *slog.Logger) (simplesearch.PageCache, error) {
	switch cli.CacheBackend {
	case "badger":
		cache, err := badger.Open(cli.BadgerDir, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open badger cache: %w", err)
		}
		m.Badger = cache
		return cache, nil
	default:
		return sqlite.NewPageCache(m.DB), nil
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "simplesearch.db"
	}
	dir := filepath.Join(home, ".simplesearch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "simplesearch.db")
}
