package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
	"github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System/discover"
	"github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System/dummy"
	"github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System/fs"
	apigoquery "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System/goquery"
	apihttp "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System/http"
	apislog "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System/slog"
	"github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System/sqlite"
	"github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System/yaml"
	"github.com/alecthomas/kong"
)

// duckduckgoRPS rate-limits the scraping provider to stay polite.
const duckduckgoRPS = 1.0

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
	// History database path. Set before calling Run().
	DBPath string

	// SQLite database used by the run history service.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
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
		kong.Name("apidisco"),
		kong.Description("Discover candidate API documentation URLs for a domain."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'apidisco --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Global flags may precede the subcommand, so dispatch on the parsed
	// command rather than the raw argument list.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	// Settings feed query loading and scoring; history runs without them.
	if cmd == "discover" || cmd == "queries" {
		settingsSvc := yaml.NewSettingsService(cli.Config)
		settings, err := settingsSvc.Load(ctx)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set APIDISCO_CONFIG or pass --config to use a different settings file")
			return err
		}
		deps.Settings = settings
		deps.Queries = yaml.NewQuerySource(settings.Search)
	}

	// Run history is needed by discover and history commands.
	if cmd == "discover" || cmd == "history" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set APIDISCO_DB to use a different history database path\n")
			return fmt.Errorf("failed to open history database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Runs = sqlite.NewRunService(m.DB)
	}

	if cmd == "discover" {
		provider, err := buildProvider(cli.Discover.Provider, stderr)
		if err != nil {
			return err
		}

		// --limit overrides the configured default query limit for this run.
		engineQueries := deps.Queries
		if cli.Discover.Limit > 0 {
			cfg := deps.Settings.Search
			cfg.DefaultQueryLimit = cli.Discover.Limit
			engineQueries = yaml.NewQuerySource(cfg)
		}

		deps.Engine = &discover.Engine{
			Queries:   engineQueries,
			Provider:  provider,
			Artifacts: fs.NewArtifactStore(cli.Discover.Out),
			Runs:      deps.Runs,
			Scorer:    apidisco.NewScorer(deps.Settings.Search),
			Config:    deps.Settings.Search,
		}
	}

	return kongCtx.Run(deps)
}

// buildProvider wires the selected search provider. The scraping provider
// gets rate limiting, retries, and logging; the dummy provider needs none.
func buildProvider(name string, stderr io.Writer) (apidisco.SearchProvider, error) {
	switch name {
	case dummy.ProviderName:
		return dummy.NewProvider(), nil
	case apigoquery.ProviderName:
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		var provider apidisco.SearchProvider = apigoquery.NewProvider()
		provider = apihttp.NewRateLimitedProvider(provider, duckduckgoRPS)
		provider = apislog.NewLoggingProvider(provider, logger)
		return provider, nil
	default:
		return nil, apidisco.Errorf(apidisco.EINVALID, "unknown provider %q", name)
	}
}

func defaultDBPath() string {
	if path := os.Getenv("APIDISCO_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "apidisco.db"
	}
	return filepath.Join(home, ".apidisco", "apidisco.db")
}
